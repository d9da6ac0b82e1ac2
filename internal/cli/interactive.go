// Package cli: interactive.go runs the calculator session behind the root
// command.
//
// Start-up order: load the config file (explicit --config, else
// $HOME/.numlist.yaml, else defaults), apply flag overrides, open the line
// reader, preload the configured and --import files, then hand control to
// the session loop until exit, Ctrl-D or Ctrl-C.
package cli

import (
	"os"
	"os/signal"
	"sync"

	"github.com/mmr-tortoise/numlist/internal/config"
	"github.com/mmr-tortoise/numlist/internal/lineread"
	"github.com/mmr-tortoise/numlist/internal/logging"
	"github.com/mmr-tortoise/numlist/internal/model"
	"github.com/mmr-tortoise/numlist/internal/session"
)

// interactiveFlags holds the root command's local flag values.
type interactiveFlags struct {
	// configPath is an explicit config file; empty means the default lookup.
	configPath string

	// imports are files loaded after the configured imports.
	imports []string
}

// loadConfig resolves the effective configuration for a session.
func loadConfig(flags *interactiveFlags) (*config.Config, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)
	if flags.configPath != "" {
		path = flags.configPath
		cfg, err = config.Load(path)
	} else {
		cfg, path, err = config.LoadDefault()
	}
	if err != nil {
		return nil, model.WrapCLIError(model.ExitConfigError, "failed to load configuration", err)
	}
	if path != "" {
		VerboseLog("Loaded config file %s", path)
	}

	cfg.NaN = resolveNaNPolicy(cfg.NaN)
	cfg.Imports = append(cfg.Imports, flags.imports...)
	return cfg, nil
}

// runInteractive runs one calculator session on the given streams.
// It returns nil for every normal way of leaving the session.
func runInteractive(flags *interactiveFlags, stdin, stdout, stderr *os.File) error {
	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	reader, err := lineread.New(stdin, stdout, stderr, cfg.Prompt)
	if err != nil {
		return model.WrapCLIError(model.ExitTerminalError, "failed to open terminal", err)
	}
	// Close restores the terminal from raw mode, so it must run before
	// any error is printed by Execute.
	defer func() { _ = reader.Close() }()

	// A raw-mode terminal never raises SIGINT; this only fires for piped
	// input, where Ctrl-C must still end the session successfully.
	var busy sync.Mutex
	busy.Lock()
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, os.Interrupt)
	defer signal.Stop(interrupts)
	stopWatch := watchInterrupts(interrupts, &busy, reader.Stdout(), os.Exit)

	logger = logging.New(reader.Stderr(), verbose)
	VerboseLog("Session started (prompt %q, nan %s)", cfg.Prompt, cfg.NaN)

	sess := session.New(idleReader{Reader: reader, busy: &busy}, session.Options{
		NaN:    cfg.NaN,
		Banner: cfg.ShowBanner(),
		Logger: logger,
	})

	for _, path := range cfg.Imports {
		sess.ImportFile(path)
	}

	err = sess.Run()
	busy.Unlock()
	stopWatch()
	if err != nil {
		return model.WrapCLIError(model.ExitTerminalError, "session ended unexpectedly", err)
	}
	return nil
}
