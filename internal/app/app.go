package app

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/golang/glog"

	"github.com/hance08/keaview/internal/config"
	"github.com/hance08/keaview/internal/engine"
	"github.com/hance08/keaview/internal/journal"
	"github.com/hance08/keaview/internal/protocol"
	"github.com/hance08/keaview/internal/session"
	"github.com/hance08/keaview/internal/transport"
)

var ErrNotSettled = errors.New("timed out waiting for the initial snapshot")

type App struct {
	Config     *config.Config
	migrations fs.FS
}

// NewApp holds the embedded journal migrations until the configuration is
// loaded by Init.
func NewApp(migrationFS fs.FS) *App {
	return &App{migrations: migrationFS}
}

// Init installs cfg and returns the cleanup to run on exit.
func (a *App) Init(cfg *config.Config) (func(), error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing configuration")
	}
	a.Config = cfg
	cleanup := func() {
		glog.Flush()
	}
	return cleanup, nil
}

// OpenJournal opens the event journal whether or not recording is enabled.
func (a *App) OpenJournal() (*journal.Journal, error) {
	dbPath := a.Config.Journal.Path
	if dbPath == "" {
		appDir, err := getAppDataDir()
		if err != nil {
			return nil, err
		}
		dbPath = filepath.Join(appDir, "journal.db")
	}
	j, err := journal.Open(dbPath, a.migrations)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize journal: %w", err)
	}
	return j, nil
}

func (a *App) EngineSettings() engine.Settings {
	return engine.Settings{
		AutoSelectNewAccount: a.Config.Sync.AutoSelectNewAccount,
		Assertions:           a.Config.Sync.Assertions,
	}
}

func (a *App) TransportSettings() *transport.Settings {
	s := transport.DefaultSettings()
	s.HandshakeTimeout = a.Config.Server.HandshakeTimeout
	s.WriteTimeout = a.Config.Server.WriteTimeout
	s.ReadTimeout = a.Config.Server.ReadTimeout
	s.PingInterval = a.Config.Server.PingInterval
	s.ReconnectDelay = a.Config.Server.ReconnectDelay
	return s
}

// Connect dials the server and builds a session around the connection. The
// caller runs the session and calls the returned cleanup when done.
func (a *App) Connect(ctx context.Context, presenter session.Presenter) (*session.Session, func(), error) {
	client := transport.NewClient(ctx, a.Config.Server.URL, a.TransportSettings())
	s := session.New(client, protocol.JSONCodec{}, presenter, session.Settings{
		Engine: a.EngineSettings(),
		Settle: a.Config.Sync.Settle,
	})

	cleanup := func() {
		client.Flush(a.Config.Server.WriteTimeout)
		client.Close()
	}

	if a.Config.Journal.Enabled {
		j, err := a.OpenJournal()
		if err != nil {
			client.Close()
			return nil, nil, err
		}
		recorder, err := j.Begin(a.Config.Server.URL)
		if err != nil {
			client.Close()
			_ = j.Close()
			return nil, nil, err
		}
		glog.V(1).Infof("[app]journal session %s\n", recorder.SessionID())
		s.WithRecorder(recorder)
		cleanup = func() {
			client.Flush(a.Config.Server.WriteTimeout)
			client.Close()
			if err := j.Close(); err != nil {
				fmt.Printf("Error closing journal: %v\n", err)
			}
		}
	}

	return s, cleanup, nil
}

// Attach connects, runs the session in the background and waits for the
// initial snapshot. The returned cleanup stops the session and disconnects.
func (a *App) Attach(ctx context.Context, presenter session.Presenter, timeout time.Duration) (*session.Session, func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	s, disconnect, err := a.Connect(ctx, presenter)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	runErr := make(chan error, 1)
	go func() {
		runErr <- s.Run(ctx)
	}()

	stop := func() {
		// flush queued commands before the context tears the connection down
		disconnect()
		cancel()
		<-runErr
	}

	select {
	case <-s.Settled():
		return s, stop, nil
	case err := <-runErr:
		cancel()
		disconnect()
		return nil, nil, err
	case <-time.After(timeout):
		stop()
		return nil, nil, fmt.Errorf("%w (%s)", ErrNotSettled, a.Config.Server.URL)
	}
}

// WithSession attaches, runs fn between two events and disconnects.
func (a *App) WithSession(ctx context.Context, presenter session.Presenter, timeout time.Duration, fn func(*session.Context) error) error {
	s, stop, err := a.Attach(ctx, presenter, timeout)
	if err != nil {
		return err
	}
	defer stop()

	return s.Do(ctx, fn)
}

// AppDataDir is where the config file and the default journal live.
func AppDataDir() (string, error) {
	return getAppDataDir()
}

func getAppDataDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("unable to determine user home directory: %w", err)
		}
		return filepath.Join(home, ".keaview"), nil
	}

	return filepath.Join(configDir, "keaview"), nil
}
