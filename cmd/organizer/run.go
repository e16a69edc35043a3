package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"organizer/internal/app"
	"organizer/internal/config"
	appErrors "organizer/internal/errors"
	"organizer/internal/infra/fs"
	"organizer/internal/logging"
	"organizer/internal/presentation"
	"organizer/internal/runlock"
)

func run(ctx context.Context, cfg config.Config) error {
	if err := cfg.Finalize(); err != nil {
		return appErrors.Wrap(appErrors.InvalidConfig, "config", "", err)
	}

	filesystem := fs.OSFS{}
	info, err := filesystem.Stat(cfg.TargetDir)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.TargetDir, err)
	}
	if !info.IsDir() {
		return appErrors.Wrap(appErrors.NotFound, "stat", cfg.TargetDir, errors.New("not a directory"))
	}

	mapping, err := config.LoadMapping(cfg.ConfigPath)
	if err != nil {
		return err
	}

	// The TUI owns the terminal in interactive mode; record lines then go to
	// the log file only.
	var console io.Writer = os.Stdout
	if cfg.Interactive {
		console = nil
	}
	logger := logging.New(console, cfg.Verbose)
	defer logger.Close()

	// A dry run must not touch the target directory, so no lock file and no
	// log file either.
	if !cfg.DryRun {
		lock, err := runlock.Acquire(cfg.TargetDir)
		if err != nil {
			return err
		}
		defer lock.Release()

		if !cfg.NoLogFile {
			if err := logger.AttachFile(cfg.LogPath()); err != nil {
				logger.Infof("Warning: could not open log file, continuing without it: %v", err)
			}
		}
	}

	planner := app.Planner{
		FS:      filesystem,
		Mapping: mapping,
		Exclude: exclusionSet(cfg),
		Logger:  logger,
	}
	executor := app.Executor{
		FS:     filesystem,
		Logger: logger,
		DryRun: cfg.DryRun,
	}

	logger.StartRun(cfg.TargetDir, cfg.DryRun)

	if cfg.Interactive {
		return runInteractive(ctx, cfg, planner, executor)
	}

	plan, err := planner.Plan(ctx, cfg.TargetDir)
	if err != nil {
		return appErrors.Wrap(appErrors.NotFound, "scan", cfg.TargetDir, err)
	}

	printer := presentation.Printer{Writer: os.Stdout, Verbose: cfg.Verbose}
	if cfg.Verbose {
		printer.PrintPlan(plan)
		fmt.Fprintln(os.Stdout)
	}

	stats, err := executor.Execute(ctx, plan)
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "execute", cfg.TargetDir, err)
	}

	printer.PrintSummary(plan, stats, cfg.DryRun)

	return nil
}

// exclusionSet lists the base names the planner must never classify or move:
// the mapping file, the log file, the lock file, and the binary itself when
// it sits in the target directory.
func exclusionSet(cfg config.Config) map[string]bool {
	exclude := map[string]bool{
		filepath.Base(cfg.ConfigPath): true,
		config.DefaultLogFile:         true,
		runlock.FileName:              true,
	}
	if exe, err := os.Executable(); err == nil {
		exclude[filepath.Base(exe)] = true
	}
	return exclude
}
