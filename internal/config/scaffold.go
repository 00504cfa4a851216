package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const defaultConfig = `version: 1
data_file: "quiz.csv"

ui:
  mode: auto
  no_color: false
  title: "Quiz"

messages:
  complete: "Quiz complete!"
  correct_prefix: "System: "
  wrong_prefix: "System: "
  hint_prefix: "Hint: "
`

const defaultData = `question,answer,correct_feedback,wrong_feedback,hint
2+2?,4,Right,No,count
What is the capital of France?,Paris,Correct!,Not quite.,It has a famous iron tower
"Which keyword starts a goroutine, in Go?",go,Exactly.,Try again.,It is two letters long
`

// Scaffold writes a starter config and data file. Existing files are never
// overwritten. It returns the paths it created.
func Scaffold(configPath string) ([]string, error) {
	if configPath == "" {
		return nil, fmt.Errorf("config path is required")
	}
	dataPath := filepath.Join(filepath.Dir(configPath), DefaultDataFile)
	for _, path := range []string{configPath, dataPath} {
		if info, err := os.Stat(path); err == nil {
			if info.IsDir() {
				return nil, fmt.Errorf("path %q is a directory", path)
			}
			return nil, fmt.Errorf("file already exists at %q", path)
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("stat %q: %w", path, err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(configPath, []byte(defaultConfig), 0o644); err != nil {
		return nil, fmt.Errorf("write config: %w", err)
	}
	if err := os.WriteFile(dataPath, []byte(defaultData), 0o644); err != nil {
		return nil, fmt.Errorf("write data file: %w", err)
	}
	return []string{configPath, dataPath}, nil
}
