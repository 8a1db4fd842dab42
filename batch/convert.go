// Package batch runs decode, stabilize and encode over single files and whole
// directories, writing every output atomically.
package batch

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"smd-steady/logger"
	"smd-steady/smd"
	"smd-steady/smd/derr"
	"smd-steady/stabilize"
)

// ConvertFile reads in, stabilizes it and writes the scaled result to out. out
// is only replaced after every stage succeeded.
func ConvertFile(ctx context.Context, in string, out string, opts Options) (FileResult, error) {
	started := time.Now()
	result := FileResult{Input: in, Output: out}
	err := convertFile(ctx, in, out, opts, &result)
	result.Duration = time.Since(started)
	result.Err = err

	log := opts.logger()
	if err != nil {
		opts.Metrics.ObserveFailed(Kind(err), result.Duration)
		log.Error(
			ctx, "conversion failed",
			logger.String("input", in),
			logger.String("kind", Kind(err)),
			logger.Error(err),
		)
		return result, err
	}
	opts.Metrics.ObserveConverted(result.Frames, result.Duration)
	log.Info(
		ctx, "converted",
		logger.String("input", in),
		logger.String("output", out),
		logger.Int("frames", result.Frames),
		logger.Int("bones", result.Bones),
	)
	return result, nil
}

func convertFile(ctx context.Context, in string, out string, opts Options, result *FileResult) error {
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	if err := checkContext(ctx, "read"); err != nil {
		return err
	}
	bs, err := os.ReadFile(in)
	if err != nil {
		return derr.IOError{Op: "read", Path: in, Err: err}
	}

	if err := checkContext(ctx, "decode"); err != nil {
		return err
	}
	skeleton, animation, err := smd.DecodeWithOptions(string(bs), opts.DecodeOptions())
	if err != nil {
		return errors.Wrapf(err, "ConvertFile error decoding %s", in)
	}
	result.Frames = len(animation)
	result.Bones = skeleton.Len()

	if len(opts.BaseBones) > 0 {
		if err := checkContext(ctx, "stabilize"); err != nil {
			return err
		}
		onSkip := func(frame int, bone string) {
			opts.logger().Debug(
				ctx, "base bone missing, frame skipped",
				logger.String("input", in),
				logger.Int("frame", frame),
				logger.String("bone", bone),
			)
		}
		err := stabilize.Stabilize(animation, opts.BaseBones, opts.StabilizeOptions(onSkip)...)
		if err != nil {
			return errors.Wrapf(err, "ConvertFile error stabilizing %s", in)
		}
	}

	if err := checkContext(ctx, "encode"); err != nil {
		return err
	}
	buf := bytes.Buffer{}
	if err := smd.Encode(&buf, skeleton, animation, opts.ScaleFactor()); err != nil {
		return errors.Wrapf(err, "ConvertFile error encoding %s", in)
	}

	if err := checkContext(ctx, "write"); err != nil {
		return err
	}
	return WriteFileAtomic(out, buf.Bytes())
}

func checkContext(ctx context.Context, stage string) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrapf(err, "ConvertFile error before %s", stage)
	}
	return nil
}

// WriteFileAtomic writes data to a temporary file next to path and renames it
// over path. The temporary file is removed on any failure.
func WriteFileAtomic(path string, data []byte) (err error) {
	dir, name := filepath.Split(path)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, "."+name+".*.tmp")
	if err != nil {
		return derr.IOError{Op: "create", Path: path, Err: err}
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return derr.IOError{Op: "write", Path: path, Err: err}
	}
	if err = tmp.Close(); err != nil {
		return derr.IOError{Op: "close", Path: path, Err: err}
	}
	if err = os.Chmod(tmp.Name(), 0o644); err != nil {
		return derr.IOError{Op: "chmod", Path: path, Err: err}
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return derr.IOError{Op: "rename", Path: path, Err: err}
	}
	return nil
}
