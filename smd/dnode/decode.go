package dnode

import (
	"smd-steady/smd/ltext"
)

func DecodeNode(line ltext.Line) (*Node, error) {
	reader := ltext.NewLineReader(SectionName, line)
	node := Node{}

	nodeInstructions := []ltext.Instruction{
		{Key: "index", ReadFunction: ltext.CreateIntReadFunction(reader, &node.Index)},
		{Key: "name", ReadFunction: ltext.CreateQuotedReadFunction(reader, &node.Name)},
		{Key: "parent_index", ReadFunction: ltext.CreateIntReadFunction(reader, &node.ParentIndex)},
		{Key: "", ReadFunction: ltext.CreateEOFReadFunction(reader)},
	}
	if err := ltext.ExecuteInstructions(nodeInstructions); err != nil {
		return nil, err
	}
	return &node, nil
}

func Decode(section *ltext.Section) (*Skeleton, error) {
	skeleton := NewEmptySkeleton()
	for _, line := range section.Lines {
		node, err := DecodeNode(line)
		if err != nil {
			return nil, err
		}
		if err := skeleton.Add(*node); err != nil {
			return nil, ltext.NewLineReader(SectionName, line).Errorf("%v", err)
		}
	}
	return skeleton, nil
}
