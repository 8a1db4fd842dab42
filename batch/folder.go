package batch

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"smd-steady/logger"
	"smd-steady/smd/derr"
)

// ListInputs returns the names of the direct entries of dir that are regular
// files (symlinks followed) ending in ext. A file named exactly ext is skipped.
func ListInputs(dir string, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, derr.IOError{Op: "readdir", Path: dir, Err: err}
	}
	names := lo.FilterMap(
		entries,
		func(entry os.DirEntry, _ int) (string, bool) {
			name := entry.Name()
			if filepath.Ext(name) != ext || name == ext {
				return "", false
			}
			info, err := os.Stat(filepath.Join(dir, name))
			if err != nil || !info.Mode().IsRegular() {
				return "", false
			}
			return name, true
		},
	)
	return names, nil
}

// ConvertFolder converts every matching file of inDir into outDir under the
// same name. By default a failing file is recorded in the report and the rest
// keep going; with FailFast the first failure stops the run and is returned.
func ConvertFolder(ctx context.Context, inDir string, outDir string, opts Options) (*Report, error) {
	report := &Report{
		RunID:     uuid.NewString(),
		InputDir:  inDir,
		OutputDir: outDir,
		Started:   time.Now(),
	}
	defer func() {
		report.Duration = time.Since(report.Started)
	}()

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return report, derr.IOError{Op: "mkdir", Path: outDir, Err: err}
	}
	names, err := ListInputs(inDir, opts.extension())
	if err != nil {
		return report, err
	}

	log := opts.logger().Named("batch")
	log.Info(
		ctx, "batch started",
		logger.String("run_id", report.RunID),
		logger.String("input_dir", inDir),
		logger.Int("files", len(names)),
		logger.Int("workers", opts.workers()),
	)
	fileOpts := opts
	fileOpts.Logger = log

	results := make([]FileResult, len(names))
	started := make([]bool, len(names))
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(opts.workers())
	for i, name := range names {
		if opts.FailFast && groupCtx.Err() != nil {
			break
		}
		group.Go(func() error {
			if opts.FailFast && groupCtx.Err() != nil {
				return nil
			}
			started[i] = true
			result, err := ConvertFile(
				groupCtx,
				filepath.Join(inDir, name),
				filepath.Join(outDir, name),
				fileOpts,
			)
			results[i] = result
			if opts.FailFast {
				return err
			}
			return nil
		})
	}
	err = group.Wait()

	report.Results = lo.Filter(results, func(_ FileResult, i int) bool { return started[i] })
	log.Info(
		ctx, "batch finished",
		logger.String("run_id", report.RunID),
		logger.Int("converted", len(report.Succeeded())),
		logger.Int("failed", len(report.Failed())),
	)
	return report, err
}
