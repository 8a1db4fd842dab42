package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smd-steady/batch"
	"smd-steady/config"
	"smd-steady/logger"
	"smd-steady/metrics"
	"smd-steady/ui"
)

const (
	ExitOK      = 0
	ExitFailed  = 1
	ExitUsage   = 2
	programName = "smd-steady"
)

type printer struct {
	w    io.Writer
	ok   *color.Color
	fail *color.Color
	note *color.Color
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func newPrinter(w io.Writer) printer {
	p := printer{
		w:    w,
		ok:   color.New(color.FgGreen),
		fail: color.New(color.FgRed, color.Bold),
		note: color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{p.ok, p.fail, p.note} {
		if isTerminal(w) {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

func (p printer) println(a ...any) {
	_, _ = fmt.Fprintln(p.w, a...)
}

func (p printer) result(result batch.FileResult) {
	if result.OK() {
		p.println(p.ok.Sprint("ok  "), result.Input, "->", result.Output, fmt.Sprintf("(%d frames)", result.Frames))
		return
	}
	p.println(p.fail.Sprint("FAIL"), result.Input, fmt.Sprintf("[%s]", batch.Kind(result.Err)), result.Err)
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

func readSource(path string) (string, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "readSource error")
	}
	return string(bs), nil
}

// loadOptions layers the config file, the environment and the given flags.
func loadOptions(ctx context.Context, shared SharedFlags, stderr io.Writer, extra config.Overrides) (*config.Config, batch.Options, error) {
	overrides := lo.Assign(shared.Overrides(), extra)
	cfg, err := config.Load(ctx, shared.Config, overrides)
	if err != nil {
		return nil, batch.Options{}, err
	}
	log, err := logger.New(stderr, cfg.LogLevel)
	if err != nil {
		return nil, batch.Options{}, err
	}
	opts, err := cfg.Options(log)
	if err != nil {
		return nil, batch.Options{}, err
	}
	return cfg, opts, nil
}

func StartConverting(ctx context.Context, p printer, cmd ConvertCmd, opts batch.Options) int {
	if !CheckExistence(cmd.From) {
		p.println("Source file does not exist!")
		return ExitFailed
	}
	if CheckExistence(cmd.To) && !cmd.Force {
		p.println("Destination file existed. Please type the command again with --force to allow overwriting!")
		return ExitFailed
	}
	result, err := batch.ConvertFile(ctx, cmd.From, cmd.To, opts)
	p.result(result)
	if err != nil {
		return ExitFailed
	}
	p.println("Done converting. Please check your result file at: " + cmd.To)
	return ExitOK
}

func StartBatch(ctx context.Context, p printer, cmd BatchCmd, cfg *config.Config, opts batch.Options) int {
	if cfg.MetricsFile != "" {
		opts.Metrics = metrics.NewRecorder()
	}
	report, err := batch.ConvertFolder(ctx, cmd.Input, cmd.Output, opts)
	for _, result := range report.Results {
		p.result(result)
	}
	failed := len(report.Failed())
	summary := fmt.Sprintf("%d converted, %d failed, run %s", len(report.Succeeded()), failed, report.RunID)
	if failed > 0 || err != nil {
		p.println(p.fail.Sprint(summary))
	} else {
		p.println(p.ok.Sprint(summary))
	}
	if err != nil && !cfg.FailFast {
		p.println(p.fail.Sprint("error:"), err)
	}

	exitCode := lo.Ternary(failed > 0 || err != nil, ExitFailed, ExitOK)
	if cfg.ReportFile != "" {
		if err := report.WriteFile(cfg.ReportFile); err != nil {
			p.println(p.fail.Sprint("error:"), err)
			exitCode = ExitFailed
		}
	}
	if err := opts.Metrics.WriteTextfile(cfg.MetricsFile); err != nil {
		p.println(p.fail.Sprint("error:"), err)
		exitCode = ExitFailed
	}
	return exitCode
}

func StartDiff(p printer, cmd DiffCmd, opts batch.Options) int {
	text, err := readSource(cmd.From)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	if len(opts.BaseBones) == 0 {
		p.println(p.note.Sprint("No base bones configured, nothing to stabilize"))
		return ExitOK
	}
	hunks, changed, err := StabilizationDiff(text, opts)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	for _, line := range hunks {
		switch line.Op {
		case OpDelete:
			p.println(p.fail.Sprint("-" + line.Text))
		case OpInsert:
			p.println(p.ok.Sprint("+" + line.Text))
		default:
			p.println(p.note.Sprint(line.Text))
		}
	}
	p.println(fmt.Sprintf("%d line(s) changed", changed))
	return ExitOK
}

func StartDump(p printer, cmd DumpCmd, opts batch.Options) int {
	text, err := readSource(cmd.From)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	bs, err := DumpJSON(text, opts)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	if cmd.To == "" {
		p.println(string(bs))
		return ExitOK
	}
	if err := batch.WriteFileAtomic(cmd.To, bs); err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	p.println("Done dumping. Please check your result file at: " + cmd.To)
	return ExitOK
}

func StartInspect(p printer, cmd InspectCmd, opts batch.Options) int {
	text, err := readSource(cmd.From)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	lines, err := Inspect(text, opts)
	if err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	for _, line := range lines {
		p.println(line)
	}
	return ExitOK
}

func StartInteractive(ctx context.Context, p printer, cmd InteractiveCmd, opts batch.Options) int {
	dir := cmd.Dir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			p.println(p.fail.Sprint("error:"), err)
			return ExitFailed
		}
		dir = cwd
	}
	outDir := lo.Ternary(cmd.Out == "", filepath.Join(dir, "stabilized"), cmd.Out)
	// log lines would tear the terminal UI apart
	opts.Logger = logger.Nop()
	if err := ui.Start(ctx, dir, outDir, opts); err != nil {
		p.println(p.fail.Sprint("error:"), err)
		return ExitFailed
	}
	return ExitOK
}

// Run parses argv and executes the chosen subcommand, returning the exit
// status. Without a subcommand the interactive UI starts.
func Run(ctx context.Context, argv []string, stdout io.Writer, stderr io.Writer) int {
	args := Args{}
	parser, err := arg.NewParser(arg.Config{Program: programName}, &args)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	err = parser.Parse(argv)
	switch {
	case errors.Is(err, arg.ErrHelp):
		parser.WriteHelp(stdout)
		return ExitOK
	case err != nil:
		parser.WriteUsage(stderr)
		_, _ = fmt.Fprintln(stderr, "error:", err)
		return ExitUsage
	}

	p := newPrinter(stdout)
	extra := config.Overrides{}
	if args.Batch != nil {
		extra = args.Batch.Overrides()
	}
	cfg, opts, err := loadOptions(ctx, args.SharedFlags, stderr, extra)
	if err != nil {
		newPrinter(stderr).println("error:", err)
		return ExitUsage
	}

	switch {
	case args.Convert != nil:
		return StartConverting(ctx, p, *args.Convert, opts)
	case args.Batch != nil:
		return StartBatch(ctx, p, *args.Batch, cfg, opts)
	case args.Diff != nil:
		return StartDiff(p, *args.Diff, opts)
	case args.Dump != nil:
		return StartDump(p, *args.Dump, opts)
	case args.Inspect != nil:
		return StartInspect(p, *args.Inspect, opts)
	case args.Interactive != nil:
		return StartInteractive(ctx, p, *args.Interactive, opts)
	default:
		return StartInteractive(ctx, p, InteractiveCmd{}, opts)
	}
}

func Start() int {
	return Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr)
}
