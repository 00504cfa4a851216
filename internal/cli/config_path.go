package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"quizdesk/internal/config"
	"quizdesk/internal/ui"
)

// settings is the resolved configuration for one command invocation.
type settings struct {
	configPath string
	config     config.Config
	dataPath   string
}

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// resolveSettings loads the config and picks the data file. --data wins over
// data_file. Without a usable config file, --data is required.
func resolveSettings(configFlag, dataFlag string) (settings, error) {
	dataFlag = strings.TrimSpace(dataFlag)
	configPath, err := resolveConfigPath(configFlag)
	if err != nil {
		if dataFlag == "" {
			if errors.Is(err, config.ErrConfigNotFound) {
				return settings{}, fmt.Errorf("%w (run \"quizdesk init\" or pass --data)", err)
			}
			return settings{}, err
		}
		// --data stands in for any config that could not be discovered.
		dataPath, absErr := filepath.Abs(dataFlag)
		if absErr != nil {
			return settings{}, fmt.Errorf("resolve data path: %w", absErr)
		}
		return settings{config: config.Default(), dataPath: dataPath}, nil
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return settings{}, err
	}
	resolved := settings{
		configPath: configPath,
		config:     cfg,
		dataPath:   config.ResolveDataPath(cfg, configPath),
	}
	if dataFlag != "" {
		dataPath, err := filepath.Abs(dataFlag)
		if err != nil {
			return settings{}, fmt.Errorf("resolve data path: %w", err)
		}
		resolved.dataPath = dataPath
	}
	return resolved, nil
}

// messages converts configured text into display messages.
func (s settings) messages() ui.Messages {
	return ui.Messages{
		Title:         s.config.UI.Title,
		Complete:      s.config.Messages.Complete,
		CorrectPrefix: s.config.Messages.CorrectPrefix,
		WrongPrefix:   s.config.Messages.WrongPrefix,
		HintPrefix:    s.config.Messages.HintPrefix,
	}.WithDefaults()
}
