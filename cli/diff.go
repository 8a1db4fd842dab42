package cli

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"

	"smd-steady/batch"
	"smd-steady/smd"
	"smd-steady/smd/dframe"
	"smd-steady/stabilize"
)

const (
	OpContext = "context"
	OpDelete  = "delete"
	OpInsert  = "insert"
)

type DiffLine struct {
	Op   string
	Text string
}

func splitDiffText(text string) []string {
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

// StabilizationDiff re-encodes text twice, as is and stabilized, and returns
// the changed lines, each group headed by the time marker of its frame.
func StabilizationDiff(text string, opts batch.Options) ([]DiffLine, int, error) {
	skeleton, animation, err := smd.DecodeWithOptions(text, opts.DecodeOptions())
	if err != nil {
		return nil, 0, err
	}
	plain, err := smd.EncodeString(skeleton, animation, opts.ScaleFactor())
	if err != nil {
		return nil, 0, err
	}
	stabilized := animation.Clone()
	if err := stabilize.Stabilize(stabilized, opts.BaseBones, opts.StabilizeOptions(nil)...); err != nil {
		return nil, 0, err
	}
	after, err := smd.EncodeString(skeleton, stabilized, opts.ScaleFactor())
	if err != nil {
		return nil, 0, err
	}

	dmp := diffmatchpatch.New()
	plainChars, afterChars, lineArray := dmp.DiffLinesToChars(plain, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(plainChars, afterChars, false), lineArray)

	lines := make([]DiffLine, 0)
	changed := 0
	marker, printedMarker := "", ""
	for _, diff := range diffs {
		for _, line := range splitDiffText(diff.Text) {
			switch diff.Type {
			case diffmatchpatch.DiffEqual:
				if strings.HasPrefix(line, dframe.TimeToken+" ") {
					marker = line
				}
				continue
			case diffmatchpatch.DiffDelete:
				if marker != printedMarker {
					lines = append(lines, DiffLine{Op: OpContext, Text: marker})
					printedMarker = marker
				}
				lines = append(lines, DiffLine{Op: OpDelete, Text: line})
			case diffmatchpatch.DiffInsert:
				lines = append(lines, DiffLine{Op: OpInsert, Text: line})
				changed++
			}
		}
	}
	return lines, changed, nil
}
