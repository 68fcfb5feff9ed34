package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"realign/internal/driver"
	"realign/internal/pipeline"
	"realign/internal/ui"
)

type alignOutcome struct {
	report *driver.Report
	err    error
}

// runAlignWithUI runs AlignPaths while a progress view renders its events.
func runAlignWithUI(ctx context.Context, paths []string, opts driver.AlignOptions) (*driver.Report, error) {
	files, err := driver.CollectFiles(ctx, paths, opts)
	if err != nil {
		return nil, err
	}
	// один файл не стоит прогресс-бара
	if len(files) < 2 {
		return driver.AlignPaths(ctx, paths, opts)
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan alignOutcome, 1)

	go func() {
		runOpts := opts
		runOpts.Progress = pipeline.ChannelSink{Ch: events}
		report, err := driver.AlignPaths(ctx, paths, runOpts)
		outcomeCh <- alignOutcome{report: report, err: err}
		close(events)
	}()

	title := "aligning"
	if opts.Check {
		title = "checking"
	}
	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	// после выхода из UI (Ctrl+C) канал дочитывается, чтобы драйвер не встал
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.report, uiErr
	}
	return outcome.report, outcome.err
}
