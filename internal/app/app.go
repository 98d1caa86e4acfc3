package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/specialistvlad/falbricator/internal/ctxlog"
	"github.com/specialistvlad/falbricator/internal/ecosystem"
	"github.com/specialistvlad/falbricator/internal/plugin"
)

// App ties a configuration to its logger and ecosystem.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	ecosystem *ecosystem.Ecosystem
	config    *Config
}

// NewApp builds an App writing records to outW and logs to logW. Without
// plugins the built-in ones are registered. A plugin conflict is a
// programming error and panics.
func NewApp(outW, logW io.Writer, cfg *Config, plugins ...plugin.Plugin) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	if len(plugins) == 0 {
		plugins = corePlugins
	}
	eco, err := ecosystem.NewBuilder().WithLogger(logger).Register(plugins...).Build()
	if err != nil {
		panic(fmt.Errorf("failed to build ecosystem: %w", err))
	}
	logger.Debug("Ecosystem ready.", "plugins", len(plugins))

	return &App{
		outW:      outW,
		logger:    logger,
		ecosystem: eco,
		config:    cfg,
	}
}

// Ecosystem returns the application's ecosystem. This is primarily for
// testing.
func (a *App) Ecosystem() *ecosystem.Ecosystem {
	return a.ecosystem
}

// Logger returns the application's logger.
func (a *App) Logger() *slog.Logger {
	return a.logger
}

func (a *App) context(ctx context.Context) context.Context {
	return ctxlog.WithLogger(ctx, a.logger)
}
