package cli

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"quizdesk/internal/question"
	"quizdesk/internal/quiz"
	"quizdesk/internal/testutil"
	"quizdesk/internal/ui"
	"quizdesk/internal/ui/live"
	"quizdesk/internal/ui/plain"
)

func stubTerminal(t *testing.T, tty bool) {
	t.Helper()
	orig := isTerminal
	isTerminal = func(io.Writer) bool { return tty }
	t.Cleanup(func() { isTerminal = orig })
}

func stubInput(t *testing.T, lines string) {
	t.Helper()
	orig := runInput
	runInput = strings.NewReader(lines)
	t.Cleanup(func() { runInput = orig })
}

// TestRunPlainCompletesQuiz verifies a full plain session through the CLI.
func TestRunPlainCompletesQuiz(t *testing.T) {
	configPath := writeProject(t, t.TempDir(), "version: 1\n", testutil.SampleCSV)
	stubTerminal(t, false)
	stubInput(t, "4\n\nParis\n\ngo\n\n")

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	output := out.String()
	for _, want := range []string{"Question 1/3: 2+2?", "System: Right", "System: Exactly.", "Quiz complete!"} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got %q", want, output)
		}
	}
}

// TestRunUsesConfiguredMessages verifies messages from config.yml reach the screen.
func TestRunUsesConfiguredMessages(t *testing.T) {
	configPath := writeProject(t, t.TempDir(), "version: 1\nmessages:\n  complete: \"All done.\"\n  wrong_prefix: \"Nope: \"\n", testutil.SampleCSV)
	stubTerminal(t, false)
	stubInput(t, "5\nn\nParis\n\ngo\n\n")

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !strings.Contains(out.String(), "Nope: No") || !strings.Contains(out.String(), "All done.") {
		t.Fatalf("expected configured messages, got %q", out.String())
	}
}

// TestRunLoadFailure verifies load errors are fatal and reported.
func TestRunLoadFailure(t *testing.T) {
	configPath := writeProject(t, t.TempDir(), "version: 1\ndata_file: missing.csv\n", "")
	stubTerminal(t, false)

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath}, &out, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !strings.Contains(stderr.String(), "Load failed") || !strings.Contains(stderr.String(), "missing.csv") {
		t.Fatalf("expected load failure, got %q", stderr.String())
	}
}

// TestRunLiveLoadFailureShowsErrorScreen verifies the blocking error screen in live mode.
func TestRunLiveLoadFailureShowsErrorScreen(t *testing.T) {
	dir := t.TempDir()
	dataPath := testutil.WriteFile(t, dir, "quiz.csv", "question,answer,correct_feedback,wrong_feedback,hint\n")
	chdir(t, dir)
	stubTerminal(t, true)

	var shown error
	origShow := showLoadError
	showLoadError = func(_ io.Writer, cause error, _ live.Options) error {
		shown = cause
		return nil
	}
	t.Cleanup(func() { showLoadError = origShow })

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--data", dataPath}, &out, &stderr)
	if code != ExitError {
		t.Fatalf("expected exit %d, got %d", ExitError, code)
	}
	if !errors.Is(shown, question.ErrEmptyDataset) {
		t.Fatalf("expected empty dataset on error screen, got %v", shown)
	}
}

// TestRunSelectsLiveMode verifies flag precedence and live options.
func TestRunSelectsLiveMode(t *testing.T) {
	dir := t.TempDir()
	configPath := writeProject(t, dir, "version: 1\nui:\n  mode: plain\n  title: Capitals\n", testutil.SampleCSV)
	otherPath := testutil.WriteFile(t, dir, "other.csv", "question,answer,correct_feedback,wrong_feedback,hint\nq,a,c,w,h\n")
	stubTerminal(t, true)

	var gotOpts live.Options
	var gotTotal int
	origLive := startLive
	startLive = func(session *quiz.Session, _ io.Writer, opts live.Options) (live.Result, error) {
		gotOpts = opts
		gotTotal = session.State().Total()
		return live.Result{Completed: true}, nil
	}
	t.Cleanup(func() { startLive = origLive })

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--data", otherPath, "--ui", "live", "--no-color"}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if gotTotal != 1 {
		t.Fatalf("expected --data to win, got %d questions", gotTotal)
	}
	if !gotOpts.NoColor || gotOpts.Messages.Title != "Capitals" {
		t.Fatalf("unexpected live options: %+v", gotOpts)
	}
}

// TestRunLiveFallsBackWithoutTTY verifies the plain fallback warning.
func TestRunLiveFallsBackWithoutTTY(t *testing.T) {
	configPath := writeProject(t, t.TempDir(), "version: 1\n", testutil.SampleCSV)
	stubTerminal(t, false)
	stubInput(t, "")

	called := false
	origPlain := startPlain
	startPlain = func(session *quiz.Session, in io.Reader, out io.Writer, messages ui.Messages) (plain.Result, error) {
		called = true
		return origPlain(session, in, out, messages)
	}
	t.Cleanup(func() { startPlain = origPlain })

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--ui", "live"}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	if !called {
		t.Fatalf("expected plain mode")
	}
	if !strings.Contains(stderr.String(), "falling back to plain output") {
		t.Fatalf("expected fallback warning, got %q", stderr.String())
	}
}

// TestRunWritesLogFile verifies --log captures session transitions.
func TestRunWritesLogFile(t *testing.T) {
	dir := t.TempDir()
	configPath := writeProject(t, dir, "version: 1\n", testutil.SampleCSV)
	logPath := filepath.Join(dir, "run.log")
	stubTerminal(t, false)
	stubInput(t, "4\n")

	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--log", logPath}, &out, &stderr)
	if code != ExitOK {
		t.Fatalf("expected exit %d, got %d (%s)", ExitOK, code, stderr.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{`"msg":"session started"`, `"msg":"transition"`, `"session_id"`} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("expected %s in log, got %q", want, string(data))
		}
	}
}

// TestRunRejectsInvalidMode verifies usage errors for --ui.
func TestRunRejectsInvalidMode(t *testing.T) {
	configPath := writeProject(t, t.TempDir(), "version: 1\n", testutil.SampleCSV)
	var out, stderr bytes.Buffer
	code := Run([]string{"run", "--config", configPath, "--ui", "fancy"}, &out, &stderr)
	if code != ExitUsage {
		t.Fatalf("expected exit %d, got %d", ExitUsage, code)
	}
}
