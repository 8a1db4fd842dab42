package ui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"smd-steady/batch"
)

func Start(ctx context.Context, dir string, outDir string, opts batch.Options) error {
	folderSelector := CreateFolderSelector(ctx, dir, outDir, opts)
	if _, err := tea.NewProgram(folderSelector, tea.WithContext(ctx)).Run(); err != nil {
		return errors.Wrap(err, "Start error")
	}
	return nil
}
