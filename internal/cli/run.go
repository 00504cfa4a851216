package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"quizdesk/internal/logging"
	"quizdesk/internal/question"
	"quizdesk/internal/quiz"
	"quizdesk/internal/ui/live"
	"quizdesk/internal/ui/plain"
)

var (
	startLive     = live.Run
	showLoadError = live.ShowError
	startPlain    = plain.Run
	newLogger     = logging.New
)

// runInput allows tests to override stdin for plain mode.
var runInput io.Reader = os.Stdin

func runRun(cmd *Command) func(args []string, stdout, stderr io.Writer) int {
	return func(args []string, stdout, stderr io.Writer) int {
		if wantsHelp(args) {
			printCommandUsage(cmd, stdout)
			return ExitOK
		}
		fs := flag.NewFlagSet(cmd.Name, flag.ContinueOnError)
		configPath := fs.String("config", "", "Path to config file (default: search for .quizdesk/config.yml)")
		dataPath := fs.String("data", "", "Path to the quiz data file (overrides data_file)")
		uiMode := fs.String("ui", "", "UI mode: auto|live|plain (default: ui.mode from config)")
		noColor := fs.Bool("no-color", false, "Disable ANSI colors in the live UI")
		logPath := fs.String("log", "", "Write debug logs to a file")
		if code, ok := parseFlags(cmd, fs, args, stdout, stderr); !ok {
			return code
		}

		resolved, err := resolveSettings(*configPath, *dataPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed:\n%v\n", err)
			return ExitError
		}

		mode := *uiMode
		if mode == "" {
			mode = resolved.config.UI.Mode
		}
		decision, err := resolveUIMode(mode, stdout)
		if err != nil {
			fmt.Fprintf(stderr, "invalid arguments: %v\n", err)
			return ExitUsage
		}
		if decision.warning != "" {
			fmt.Fprintln(stderr, decision.warning)
		}

		logger, err := newLogger(*logPath)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		defer func() { _ = logger.Sync() }()

		messages := resolved.messages()
		opts := live.Options{
			NoColor:  *noColor || resolved.config.UI.NoColor,
			Messages: messages,
		}

		records, err := question.LoadRecords(resolved.dataPath)
		if err != nil {
			logger.Error("load failed", zap.String("path", resolved.dataPath), zap.Error(err))
			if decision.useLive {
				if showErr := showLoadError(stdout, err, opts); showErr != nil {
					logger.Warn("error screen failed", zap.Error(showErr))
				}
			}
			fmt.Fprintf(stderr, "Load failed:\n%v\n", err)
			return ExitError
		}
		logger.Info("data loaded", zap.String("path", resolved.dataPath), zap.Int("questions", len(records)))

		session, err := quiz.NewSession(records, logger)
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}

		var completed bool
		if decision.useLive {
			result, runErr := startLive(session, stdout, opts)
			completed, err = result.Completed, runErr
		} else {
			result, runErr := startPlain(session, runInput, stdout, messages)
			completed, err = result.Completed, runErr
		}
		if err != nil {
			fmt.Fprintf(stderr, "Run failed: %v\n", err)
			return ExitError
		}
		if !completed {
			logger.Info("session ended early", zap.String("session_id", session.ID()))
		}
		return ExitOK
	}
}
