package dnode

import (
	"smd-steady/smd/ltext"
)

func EncodeNode(writer *ltext.Writer, node Node) {
	writer.Line(
		ltext.FormatInt(node.Index),
		ltext.FormatQuoted(node.Name),
		ltext.FormatInt(node.ParentIndex),
	)
}

func Encode(writer *ltext.Writer, skeleton *Skeleton) {
	writer.Line(SectionName)
	for _, node := range skeleton.nodes {
		EncodeNode(writer, node)
	}
	writer.Line(ltext.EndToken)
}
