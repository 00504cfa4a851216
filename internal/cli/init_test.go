package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdesk/internal/config"
)

func TestInitCommandCreatesFiles(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, config.ConfigDirName, config.ConfigFileName)
	dataPath := filepath.Join(dir, config.ConfigDirName, config.DefaultDataFile)

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if !strings.Contains(out.String(), "Wrote") {
		t.Fatalf("expected output to include writes, got %q", out.String())
	}
	for _, path := range []string{configPath, dataPath} {
		if _, statErr := os.Stat(path); statErr != nil {
			t.Fatalf("expected %s to exist: %v", path, statErr)
		}
	}

	out.Reset()
	err.Reset()
	code = Run([]string{"validate", "--config", configPath}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected scaffold to validate, got %d (%s)", code, err.String())
	}
}

func TestInitCommandDefaultsToWorkingDirectory(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)

	var out, err bytes.Buffer
	code := Run([]string{"init"}, &out, &err)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, err.String())
	}
	if _, statErr := os.Stat(filepath.Join(dir, config.ConfigDirName, config.ConfigFileName)); statErr != nil {
		t.Fatalf("expected config in working directory: %v", statErr)
	}
}

func TestInitCommandRefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	configPath := writeProject(t, dir, "version: 1\n", "")

	var out, err bytes.Buffer
	code := Run([]string{"init", "--config", configPath}, &out, &err)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if out.Len() != 0 {
		t.Fatalf("expected no stdout output, got %q", out.String())
	}
	if !strings.Contains(err.String(), "already exists") {
		t.Fatalf("expected overwrite error, got %q", err.String())
	}
}
