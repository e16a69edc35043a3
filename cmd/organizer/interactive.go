package main

import (
	"context"
	"errors"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"organizer/internal/app"
	"organizer/internal/config"
	"organizer/internal/domain"
	appErrors "organizer/internal/errors"
	"organizer/internal/tui"
)

func runInteractive(ctx context.Context, cfg config.Config, planner app.Planner, executor app.Executor) error {
	if !isatty.IsTerminal(os.Stdout.Fd()) {
		return appErrors.Wrap(appErrors.InvalidConfig, "interactive", "", errors.New("interactive mode requires a terminal"))
	}

	var program *tea.Program

	executor.OnProgress = func(done, total int, name string) {
		program.Send(tui.MoveProgressMsg{Current: done, Total: total, File: name})
	}

	model := tui.NewModel(tui.Config{
		TargetDir: cfg.TargetDir,
		DryRun:    cfg.DryRun,
		Verbose:   cfg.Verbose,
		Execute: func(plan domain.MovePlan) tea.Cmd {
			return func() tea.Msg {
				stats, err := executor.Execute(ctx, plan)
				if err != nil {
					return tui.ErrorMsg{Err: err}
				}
				return tui.ExecDoneMsg{Stats: stats}
			}
		},
	})
	program = tea.NewProgram(model, tea.WithContext(ctx))

	go func() {
		plan, err := planner.Plan(ctx, cfg.TargetDir)
		if err != nil {
			program.Send(tui.ErrorMsg{Err: err})
			return
		}
		if cfg.DryRun {
			// Log the simulated records before showing the result view.
			if _, err := executor.Execute(ctx, plan); err != nil {
				program.Send(tui.ErrorMsg{Err: err})
				return
			}
		}
		program.Send(tui.PlanReadyMsg{Plan: plan})
	}()

	final, err := program.Run()
	if err != nil {
		return appErrors.Wrap(appErrors.Internal, "tui", "", err)
	}
	if m, ok := final.(tui.Model); ok && m.Err != nil {
		return appErrors.Wrap(appErrors.Internal, "organize", cfg.TargetDir, m.Err)
	}
	return nil
}
