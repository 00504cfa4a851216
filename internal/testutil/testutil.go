// Package testutil holds helpers shared by package tests.
package testutil

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// DefaultTimeout bounds tests that pass a zero timeout.
const DefaultTimeout = 5 * time.Second

// SampleCSV is a three-question data file used across packages.
const SampleCSV = `question,answer,correct_feedback,wrong_feedback,hint
2+2?,4,Right,No,count
Capital of France?,Paris,Correct!,Not quite.,Eiffel
Go keyword for goroutines?,go,Exactly.,Try again.,two letters
`

// Context returns a context cancelled at cleanup or after timeout, whichever
// comes first. The timeout is clamped to finish before the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), budget(t, timeout))
	t.Cleanup(cancel)
	return ctx
}

func budget(t testing.TB, timeout time.Duration) time.Duration {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	deadline, ok := t.(interface{ Deadline() (time.Time, bool) })
	if !ok {
		return timeout
	}
	if at, set := deadline.Deadline(); set {
		if remaining := time.Until(at) - time.Second; remaining > 0 && remaining < timeout {
			return remaining
		}
	}
	return timeout
}

// WriteFile writes content under dir, creating parent directories, and
// returns the full path.
func WriteFile(t testing.TB, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("create fixture dir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture %s: %v", name, err)
	}
	return path
}
