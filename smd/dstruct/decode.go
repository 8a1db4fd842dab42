package dstruct

import (
	"smd-steady/smd/dframe"
	"smd-steady/smd/dheader"
	"smd-steady/smd/dnode"
	"smd-steady/smd/ltext"
)

func ToStructuredFile(text string, opts DecodeOptions) (*Struct, error) {
	lines := ltext.SplitLines(text)
	file := Struct{}

	header, err := dheader.Decode(lines)
	if err != nil {
		return nil, err
	}
	file.Header = *header

	nodesSection, err := ltext.FindSection(lines, dnode.SectionName)
	if err != nil {
		return nil, err
	}
	file.Skeleton, err = dnode.Decode(nodesSection)
	if err != nil {
		return nil, err
	}
	if opts.Validate {
		if err := file.Skeleton.Validate(); err != nil {
			return nil, err
		}
	}

	framesSection, err := ltext.FindSection(lines, dframe.SectionName)
	if err != nil {
		return nil, err
	}
	file.Animation, err = dframe.Decode(framesSection, file.Skeleton, opts.Ignore, opts.channels())
	if err != nil {
		return nil, err
	}

	return &file, nil
}
