package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"smd-steady/batch"
	"smd-steady/ds"
	"smd-steady/smd"
	"smd-steady/smd/derr"
	"smd-steady/smd/dnode"
	"smd-steady/smd/dstruct"
)

// DumpJSON decodes text and lays it out as ordered JSON.
func DumpJSON(text string, opts batch.Options) ([]byte, error) {
	file, err := dstruct.ToStructuredFile(text, opts.DecodeOptions())
	if err != nil {
		return nil, err
	}
	return dstruct.ToJSON(*file)
}

type treeItem struct {
	index int
	depth int
}

// DescribeHierarchy draws the node tree depth first from every root. Nodes no
// root leads to, such as members of a parent cycle, are listed afterwards.
func DescribeHierarchy(skeleton *dnode.Skeleton) []string {
	lines := make([]string, 0, skeleton.Len())
	visited := map[int]bool{}

	stack := ds.NewStack[treeItem]()
	roots := skeleton.Roots()
	for i := len(roots) - 1; i >= 0; i-- {
		stack.Push(treeItem{index: roots[i].Index})
	}
	for stack.Len() > 0 {
		item := stack.Pop()
		if visited[item.index] {
			continue
		}
		visited[item.index] = true
		node, _ := skeleton.Node(item.index)
		lines = append(lines, fmt.Sprintf("%s%s (%d)", strings.Repeat("  ", item.depth), node.Name, node.Index))

		children := skeleton.Children(item.index)
		for i := len(children) - 1; i >= 0; i-- {
			stack.Push(treeItem{index: children[i].Index, depth: item.depth + 1})
		}
	}

	detached := lo.Filter(skeleton.Nodes(), func(node dnode.Node, _ int) bool { return !visited[node.Index] })
	for _, node := range detached {
		lines = append(lines, fmt.Sprintf("%s (%d) detached from any root", node.Name, node.Index))
	}
	return lines
}

// DescribePaths lists every node with its path from the root, or the reason
// no path exists.
func DescribePaths(skeleton *dnode.Skeleton) []string {
	return lo.Map(skeleton.Nodes(), func(node dnode.Node, _ int) string {
		path, err := skeleton.HierarchyPath(node.Index)
		if err != nil {
			return fmt.Sprintf("  %s: %v", node.Name, err)
		}
		return fmt.Sprintf("  %s: %s", node.Name, strings.Join(path, "/"))
	})
}

// Inspect summarizes a file: counts, the hierarchy and the validation verdict.
func Inspect(text string, opts batch.Options) ([]string, error) {
	if !smd.IsSMDFile(text) {
		return nil, derr.FormatError{Section: dnode.SectionName, Msg: "no version line or node table found"}
	}
	decodeOpts := opts.DecodeOptions()
	decodeOpts.Validate = false
	file, err := dstruct.ToStructuredFile(text, decodeOpts)
	if err != nil {
		return nil, err
	}

	bs, err := json.Marshal(file.Header)
	if err != nil {
		return nil, err
	}
	lines := []string{
		fmt.Sprintf("header: %s", bs),
		fmt.Sprintf("nodes: %d, roots: %d", file.Skeleton.Len(), len(file.Skeleton.Roots())),
		fmt.Sprintf("frames: %d, animated bones: %d", len(file.Animation), len(file.Animation.BoneNames())),
	}
	lines = append(lines, DescribeHierarchy(file.Skeleton)...)
	lines = append(lines, "paths:")
	lines = append(lines, DescribePaths(file.Skeleton)...)
	if err := file.Skeleton.Validate(); err != nil {
		lines = append(lines, "hierarchy: "+err.Error())
	} else {
		lines = append(lines, "hierarchy: valid")
	}
	return lines, nil
}
