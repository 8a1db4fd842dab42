package cli

import (
	"strings"

	"smd-steady/config"
)

type (
	Args struct {
		SharedFlags

		Convert     *ConvertCmd     `arg:"subcommand:convert" help:"stabilize and rescale one file"`
		Batch       *BatchCmd       `arg:"subcommand:batch" help:"stabilize and rescale every file of a folder"`
		Diff        *DiffCmd        `arg:"subcommand:diff" help:"show what stabilizing would change in a file"`
		Dump        *DumpCmd        `arg:"subcommand:dump" help:"print a file as JSON"`
		Inspect     *InspectCmd     `arg:"subcommand:inspect" help:"print the bone hierarchy and frame counts of a file"`
		Interactive *InteractiveCmd `arg:"subcommand:interactive" help:"pick a folder and convert it in a terminal UI"`
	}
	SharedFlags struct {
		Config     string   `arg:"--config" help:"path to a YAML config file, $SMD_CONFIG when empty" placeholder:"FILE"`
		Preset     string   `help:"bone preset: none, valve-biped, valve-biped-legacy" placeholder:"NAME"`
		BaseBone   []string `arg:"--base-bone,separate" help:"base bone to stabilize, repeatable" placeholder:"NAME"`
		Channel    []int    `arg:"--channel,separate" help:"channel to freeze, repeatable" placeholder:"N"`
		Ignore     []string `arg:"--ignore,separate" help:"bone to leave out, repeatable" placeholder:"NAME"`
		IgnoreExpr string   `arg:"--ignore-expr" help:"expression selecting bones to leave out" placeholder:"EXPR"`
		Scale      *float64 `help:"multiply every channel by this factor"`
		Strict     bool     `help:"fail when a base bone is missing from a later frame"`
		Validate   bool     `help:"reject dangling parents and cyclic hierarchies"`
		LogLevel   string   `arg:"--log-level" help:"debug, info, warn or error" placeholder:"LEVEL"`
	}

	ConvertCmd struct {
		From  string `arg:"required" help:"path to source file" placeholder:"walk.smd"`
		To    string `arg:"required" help:"path to destination file" placeholder:"out.smd"`
		Force bool   `help:"overwrite the destination file"`
	}
	BatchCmd struct {
		Input       string `arg:"positional,required" help:"folder holding the source files" placeholder:"IN"`
		Output      string `arg:"positional,required" help:"folder receiving the results" placeholder:"OUT"`
		Ext         string `help:"extension of the source files" placeholder:".smd"`
		Workers     *int   `help:"files converted in parallel"`
		FailFast    bool   `arg:"--fail-fast" help:"stop at the first failing file"`
		Report      string `help:"write a JSON or YAML run report" placeholder:"FILE"`
		MetricsFile string `arg:"--metrics-file" help:"write Prometheus metrics as a textfile" placeholder:"FILE"`
	}
	DiffCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"walk.smd"`
	}
	DumpCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"walk.smd"`
		To   string `help:"path to the JSON file, stdout when empty" placeholder:"walk.json"`
	}
	InspectCmd struct {
		From string `arg:"required" help:"path to source file" placeholder:"walk.smd"`
	}
	InteractiveCmd struct {
		Dir string `help:"folder holding the source files, the working directory when empty" placeholder:"DIR"`
		Out string `help:"folder receiving the results, DIR/stabilized when empty" placeholder:"DIR"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Steady hands make steady animations.\n",
			"A CLI utility to freeze the drift of base bones in SMD skeletal animations",
			"and to rescale them, one file or a whole folder at a time.",
		},
		"\n",
	)
	des += "\n"
	return des
}

// Overrides collects the shared flags that were actually given.
func (r SharedFlags) Overrides() config.Overrides {
	overrides := config.Overrides{}
	if r.Preset != "" {
		overrides[config.KeyPreset] = r.Preset
	}
	if len(r.BaseBone) > 0 {
		overrides[config.KeyBaseBones] = r.BaseBone
	}
	if len(r.Channel) > 0 {
		overrides[config.KeyChannels] = r.Channel
	}
	if len(r.Ignore) > 0 {
		overrides[config.KeyIgnore] = r.Ignore
	}
	if r.IgnoreExpr != "" {
		overrides[config.KeyIgnoreExpr] = r.IgnoreExpr
	}
	if r.Scale != nil {
		overrides[config.KeyScale] = *r.Scale
	}
	if r.Strict {
		overrides[config.KeyStrict] = true
	}
	if r.Validate {
		overrides[config.KeyValidate] = true
	}
	if r.LogLevel != "" {
		overrides[config.KeyLogLevel] = r.LogLevel
	}
	return overrides
}

func (r BatchCmd) Overrides() config.Overrides {
	overrides := config.Overrides{}
	if r.Ext != "" {
		overrides[config.KeyExtension] = r.Ext
	}
	if r.Workers != nil {
		overrides[config.KeyWorkers] = *r.Workers
	}
	if r.FailFast {
		overrides[config.KeyFailFast] = true
	}
	if r.Report != "" {
		overrides[config.KeyReportFile] = r.Report
	}
	if r.MetricsFile != "" {
		overrides[config.KeyMetricsFile] = r.MetricsFile
	}
	return overrides
}
