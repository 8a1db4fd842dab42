package dnode

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"smd-steady/ds"
	"smd-steady/smd/derr"
)

// Validate checks that every parent index resolves and that following parents
// from any node ends at a root. Decoding never calls it on its own.
func (r *Skeleton) Validate() error {
	done := map[int]struct{}{}
	for _, node := range r.nodes {
		if _, ok := done[node.Index]; ok {
			continue
		}
		// the chain of nodes walked from `node`, a stack is enough
		// since every node has a single parent
		chain := ds.NewStack[int]()
		current := node
		for !current.IsRoot() {
			chain.Push(current.Index)
			parent, ok := r.Node(current.ParentIndex)
			if !ok {
				return derr.LookupError{
					Kind:  derr.LookupKindParent,
					Key:   strconv.Itoa(current.ParentIndex),
					Where: fmt.Sprintf(`parent of node "%s"`, current.Name),
				}
			}
			if _, ok := done[parent.Index]; ok {
				break
			}
			if chain.Contains(parent.Index) {
				return r.cycleError(chain.Items(), parent.Index)
			}
			current = parent
		}
		for _, index := range chain.Items() {
			done[index] = struct{}{}
		}
		done[current.Index] = struct{}{}
	}
	return nil
}

func (r *Skeleton) cycleError(chain []int, start int) error {
	startAt := lo.IndexOf(chain, start)
	names := lo.Map(
		chain[startAt:],
		func(index int, _ int) string {
			node, _ := r.Node(index)
			return node.Name
		},
	)
	names = append(names, names[0])
	return derr.FormatError{
		Section: SectionName,
		Msg:     "cyclic parent chain: " + strings.Join(names, " -> "),
	}
}

// HierarchyPath returns the names from the root down to the node with the given index.
func (r *Skeleton) HierarchyPath(index int) ([]string, error) {
	node, ok := r.Node(index)
	if !ok {
		return nil, derr.LookupError{Kind: derr.LookupKindBoneIndex, Key: strconv.Itoa(index)}
	}
	path := []string{node.Name}
	visited := map[int]struct{}{node.Index: {}}
	for !node.IsRoot() {
		parent, ok := r.Node(node.ParentIndex)
		if !ok {
			return nil, derr.LookupError{
				Kind:  derr.LookupKindParent,
				Key:   strconv.Itoa(node.ParentIndex),
				Where: fmt.Sprintf(`parent of node "%s"`, node.Name),
			}
		}
		if _, ok := visited[parent.Index]; ok {
			return nil, derr.FormatError{
				Section: SectionName,
				Msg:     fmt.Sprintf(`cyclic parent chain through node "%s"`, parent.Name),
			}
		}
		visited[parent.Index] = struct{}{}
		path = append([]string{parent.Name}, path...)
		node = parent
	}
	return path, nil
}
