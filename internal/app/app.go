package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/vk/stagekit/internal/aliasdir"
	"github.com/vk/stagekit/internal/config"
	"github.com/vk/stagekit/internal/ctxlog"
)

// App encapsulates the application's dependencies, configuration, and
// lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	plan    *config.Model
	aliaser *aliasdir.Aliaser
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger and the build plan
// already loaded.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	plan, err := loader.Load(ctx, appConfig.PlanPath)
	if err != nil {
		// A failure to load the plan is a fatal startup error.
		panic(fmt.Errorf("failed to load build plan: %w", err))
	}
	logger.Debug("Build plan loaded and translated into unified model.", "stages", len(plan.Stages))

	return &App{
		outW:    outW,
		logger:  logger,
		config:  appConfig,
		plan:    plan,
		aliaser: &aliasdir.Aliaser{DryRun: appConfig.DryRun},
	}
}

// Plan returns the loaded build plan. This is primarily for testing.
func (a *App) Plan() *config.Model {
	return a.plan
}
