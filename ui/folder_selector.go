package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"

	"smd-steady/batch"
	"smd-steady/ds"
	"smd-steady/smd"
)

const (
	StateIdle    = "idle"
	StateRunning = "running"
	StateDone    = "done"
)

type (
	// FolderSelector shows the animation files of a folder and converts them
	// all on enter.
	FolderSelector struct {
		ctx    context.Context
		dir    string
		outDir string
		opts   batch.Options
		files  []string
		state  string
		report *batch.Report
		err    error
	}

	batchDoneMsg struct {
		report *batch.Report
		err    error
	}
	filesListedMsg struct {
		files []string
		err   error
	}
)

func CreateFolderSelector(ctx context.Context, dir string, outDir string, opts batch.Options) FolderSelector {
	files, err := batch.ListInputs(dir, inputExtension(opts))
	return FolderSelector{
		ctx:    ctx,
		dir:    dir,
		outDir: outDir,
		opts:   opts,
		files:  files,
		state:  StateIdle,
		err:    err,
	}
}

func inputExtension(opts batch.Options) string {
	return lo.Ternary(opts.Extension == "", smd.DefaultExtension, opts.Extension)
}

func (s FolderSelector) listFiles() tea.Msg {
	files, err := batch.ListInputs(s.dir, inputExtension(s.opts))
	return filesListedMsg{files: files, err: err}
}

func (s FolderSelector) runBatch() tea.Msg {
	report, err := batch.ConvertFolder(s.ctx, s.dir, s.outDir, s.opts)
	return batchDoneMsg{report: report, err: err}
}

func (s FolderSelector) Init() tea.Cmd {
	return nil
}

func (s FolderSelector) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "r":
			if s.state != StateRunning {
				return s, s.listFiles
			}
		case "enter":
			if s.state != StateRunning && len(s.files) > 0 {
				s.state = StateRunning
				s.report = nil
				s.err = nil
				return s, s.runBatch
			}
		}
	case filesListedMsg:
		s.files = msg.files
		s.err = msg.err
		s.state = StateIdle
	case batchDoneMsg:
		s.report = msg.report
		s.err = msg.err
		s.state = StateDone
	}
	return s, nil
}

func (s FolderSelector) View() string {
	output := "SMD STEADY\n\n"
	output += "Current directory: " + s.dir + "\n"
	output += "Output directory: " + s.outDir + "\n\n"

	switch s.state {
	case StateIdle:
		output += fmt.Sprintf("Found %d animation file(s)\n", len(s.files))
		if len(s.files) == 0 {
			output += "Please choose a folder that holds animation files\n"
		} else {
			output += "Press enter to stabilize them all\n"
		}
	case StateRunning:
		output += fmt.Sprintf("Converting %d file(s)...\n", len(s.files))
	case StateDone:
		output += s.viewReport()
	default:
		panic(ds.ErrUnreachableCode{Caller: "FolderSelector.View", Value: s.state})
	}
	if s.err != nil {
		output += "Error: " + s.err.Error() + "\n"
	}

	output += "\nr: refresh, q: quit\n"
	return output
}

func (s FolderSelector) viewReport() string {
	if s.report == nil {
		return ""
	}
	lines := []string{
		fmt.Sprintf("Converted %d file(s), %d failed", len(s.report.Succeeded()), len(s.report.Failed())),
	}
	lines = append(
		lines,
		lo.Map(
			s.report.Failed(),
			func(result batch.FileResult, _ int) string {
				return fmt.Sprintf("  [%s] %s: %v", batch.Kind(result.Err), result.Input, result.Err)
			},
		)...,
	)
	return strings.Join(lines, "\n") + "\n"
}
