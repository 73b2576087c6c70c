package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/xvierd/pomo/internal/adapters/git"
	"github.com/xvierd/pomo/internal/adapters/storage"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
	"github.com/xvierd/pomo/internal/logging"
	"github.com/xvierd/pomo/internal/ports"
	"github.com/xvierd/pomo/internal/services"
)

// appDeps groups the dependencies initialized at startup.
type appDeps struct {
	config    *config.Config
	logger    *slog.Logger
	closeLog  func() error
	profile   domain.Profile
	durations domain.Durations

	// storage and history are opened on first use.
	storage ports.Storage
	history *services.HistoryService
}

// app holds all initialized dependencies.
// Populated by initializeServices() and accessible to all commands.
var app appDeps

// initializeServices loads the configuration and opens the log.
func initializeServices() error {
	app = appDeps{}
	config.SetConfigPath(configPath)

	var err error
	app.config, err = config.Load()
	if err != nil {
		if configPath != "" {
			return err
		}
		// If config loading fails, use defaults
		app.config = config.DefaultConfig()
		if err := app.config.ExpandDataDir(); err != nil {
			return err
		}
	}

	app.logger, app.closeLog, err = logging.New(app.config)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: logging disabled: %v\n", err)
		app.logger = logging.Discard()
		app.closeLog = nil
	}

	return nil
}

// resolveProfile picks the timer's phase lengths. The --profile flag wins
// over the config file. Only runTimer calls it.
func (a *appDeps) resolveProfile(flag string) error {
	if flag != "" {
		p, err := domain.ValidateProfile(flag)
		if err != nil {
			return err
		}
		a.profile, a.durations = p, p.Durations()
		return nil
	}

	d, err := a.config.ProfileDurations()
	if err != nil {
		return fmt.Errorf("%w (fix it with \"pomo config set profile standard\")", err)
	}
	a.profile, a.durations = domain.Profile(a.config.Profile), d
	return nil
}

// historyService opens the history database when history is enabled. It
// returns a disabled service otherwise.
func (a *appDeps) historyService() (*services.HistoryService, error) {
	if a.history != nil {
		return a.history, nil
	}
	if !a.config.History.Enabled {
		a.history = services.NewHistoryService(nil, nil, "", a.logger)
		return a.history, nil
	}

	dbPath := config.GetDBPath(a.config)
	if err := os.MkdirAll(filepath.Dir(dbPath), 0750); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	store, err := storage.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}
	a.storage = store

	var detector ports.GitDetector
	if a.config.Git.Enabled {
		detector = git.NewDetector()
	}
	workingDir, _ := os.Getwd()

	a.history = services.NewHistoryService(store, detector, workingDir, a.logger)
	return a.history, nil
}

// cleanupServices closes all resources.
func cleanupServices() error {
	var firstErr error
	if app.storage != nil {
		firstErr = app.storage.Close()
		app.storage = nil
	}
	if app.closeLog != nil {
		if err := app.closeLog(); err != nil && firstErr == nil {
			firstErr = err
		}
		app.closeLog = nil
	}
	return firstErr
}

// setupSignalHandler returns a context that is cancelled on interrupt signals.
func setupSignalHandler() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
}
