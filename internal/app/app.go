package app

import (
	"fmt"
	"io"
	"os"

	"github.com/andy/pomodoro/internal/clock"
	"github.com/andy/pomodoro/internal/config"
	"github.com/andy/pomodoro/internal/logging"
	"github.com/andy/pomodoro/internal/notify"
	"github.com/andy/pomodoro/internal/service"
	"github.com/andy/pomodoro/internal/ticker"
)

// App is the dependency injection container for all application components
type App struct {
	Config     *config.Config
	ConfigPath string
	Logger     *logging.Logger

	Engine *service.TimerEngine
	Ticks  *ticker.Source
}

// Options overrides the collaborators New would otherwise build.
type Options struct {
	ConfigPath string
	// Logger replaces the logger described by the config.
	Logger *logging.Logger
	// BellOut receives the boundary bell. Defaults to stdout, and the bell
	// is skipped when stdout is not a terminal.
	BellOut io.Writer
	Clock   clock.Clock
}

// New loads the config at opts.ConfigPath (or the default path) and wires
// the engine.
func New(opts Options) (*App, error) {
	if opts.ConfigPath == "" {
		opts.ConfigPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	return NewWithConfig(cfg, opts)
}

// NewWithConfig creates an App with a provided config (useful for testing)
func NewWithConfig(cfg *config.Config, opts Options) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		var err error
		logger, err = logging.NewLogger(cfg.Logging.File, cfg.Logging.Level)
		if err != nil {
			return nil, fmt.Errorf("failed to open logger: %w", err)
		}
	}

	engine := service.NewTimerEngine(service.Options{
		Unit:                cfg.Timer.Unit,
		Clock:               opts.Clock,
		CancelPendingOnStop: cfg.Timer.CancelPendingOnStop,
		FullReset:           cfg.Timer.FullReset,
		Logger:              logger.With("component", "engine"),
	})
	ticks := ticker.New(engine, cfg.Timer.Unit)
	engine.SetTickSource(ticks)

	notifiers := notify.Multi{notify.NewLogNotifier(logger.With("component", "notify"))}
	if cfg.Notify.Bell {
		out := opts.BellOut
		if out == nil && notify.IsTerminal(os.Stdout) {
			out = os.Stdout
		}
		if out != nil {
			notifiers = append(notifiers, notify.NewBell(out, logger.With("component", "bell")))
		} else {
			logger.Debug("stdout is not a terminal, bell disabled")
		}
	}
	engine.AddNotifier(notifiers)

	logger.Debug("app initialized", "unit", cfg.Timer.Unit.String(), "bell", cfg.Notify.Bell)

	return &App{
		Config:     cfg,
		ConfigPath: opts.ConfigPath,
		Logger:     logger,
		Engine:     engine,
		Ticks:      ticks,
	}, nil
}

// Close stops the engine and flushes the log
func (a *App) Close() error {
	if a.Engine != nil {
		a.Engine.Close()
	}
	if a.Logger != nil {
		return a.Logger.Close()
	}
	return nil
}

// SaveConfig saves the current configuration to disk
func (a *App) SaveConfig() error {
	path := a.ConfigPath
	if path == "" {
		path = config.DefaultConfigPath()
	}
	return a.Config.Save(path)
}
