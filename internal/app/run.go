package app

import (
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/vk/stagekit/internal/cmdutil"
	"github.com/vk/stagekit/internal/config"
	"github.com/vk/stagekit/internal/ctxlog"
	"github.com/vk/stagekit/internal/pathutil"
	"github.com/vk/stagekit/internal/staleness"
)

// Run materializes every stage of the loaded plan, in plan order. There is
// no dependency graph or scheduling here: the plan is an ordered list and
// each stage runs to completion before the next starts.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "dry_run", a.config.DryRun)

	for _, stage := range a.plan.Stages {
		if err := a.runStage(ctx, stage); err != nil {
			return fmt.Errorf("stage %q failed: %w", stage.Name, err)
		}
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// runStage regenerates one stage's artifact if it is stale and then
// materializes the stage's directory aliases.
func (a *App) runStage(ctx context.Context, stage *config.Stage) error {
	logger := a.logger.With("stage", stage.Name)

	if stage.Artifact != "" {
		current, err := staleness.UpToDate(stage.Source, stage.Artifact)
		if err != nil {
			return err
		}
		if current {
			logger.Info("Artifact up to date, regeneration skipped.", "artifact", stage.Artifact)
		} else if len(stage.Command) == 0 {
			logger.Warn("Artifact is stale but the stage declares no command.", "artifact", stage.Artifact)
		} else if a.config.DryRun {
			logger.Info("Dry run: stage command not executed.", "command", stage.Command)
		} else {
			logger.Info("Regenerating stale artifact.", "artifact", stage.Artifact, "command", stage.Command)
			finish := a.timed()
			cmdutil.RunSuppressed(a.outW, exec.Command(stage.Command[0], stage.Command[1:]...))
			finish()
		}
	}

	for _, alias := range stage.Aliases {
		// Aliases are materialized against absolute paths so they stay
		// valid regardless of where the orchestrator was started from.
		target, err := pathutil.Absolute(alias.Target)
		if err != nil {
			return fmt.Errorf("resolving alias target %q: %w", alias.Target, err)
		}
		link, err := pathutil.Absolute(alias.Link)
		if err != nil {
			return fmt.Errorf("resolving alias link %q: %w", alias.Link, err)
		}
		if err := a.aliaser.LinkDirectory(ctx, target, link); err != nil {
			return fmt.Errorf("aliasing %s -> %s: %w", link, target, err)
		}
	}
	return nil
}

// timed returns a func that prints how long the enclosing work took. A dry
// run stays silent.
func (a *App) timed() func() {
	if a.config.DryRun {
		return func() {}
	}
	start := time.Now()
	return func() {
		fmt.Fprintf(a.outW, "\tfinished in %.3f seconds\n", time.Since(start).Seconds())
	}
}
