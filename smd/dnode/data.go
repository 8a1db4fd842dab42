// Package dnode models the bone hierarchy declared in the "nodes" section.
package dnode

import (
	"fmt"

	"github.com/samber/lo"

	"smd-steady/ds"
	"smd-steady/smd/derr"
)

type (
	Node struct {
		Index       int    `json:"index"`
		Name        string `json:"name"`
		ParentIndex int    `json:"parent_index"`
	}
	// Skeleton keeps nodes in declaration order; consumers map indexes to slots
	// by that order, so it is never re-sorted.
	Skeleton struct {
		nodes           []Node
		positionByIndex map[int]int
		positionByName  map[string]int
	}
)

const (
	SectionName = "nodes"
	NoParent    = -1
)

func (r Node) IsRoot() bool {
	return r.ParentIndex < 0
}

func NewEmptySkeleton() *Skeleton {
	return &Skeleton{
		nodes:           make([]Node, 0),
		positionByIndex: map[int]int{},
		positionByName:  map[string]int{},
	}
}

// NewSkeleton builds a skeleton, rejecting duplicated indexes or names.
func NewSkeleton(nodes []Node) (*Skeleton, error) {
	skeleton := NewEmptySkeleton()
	for _, node := range nodes {
		if err := skeleton.Add(node); err != nil {
			return nil, derr.FormatError{Section: SectionName, Msg: err.Error()}
		}
	}
	return skeleton, nil
}

func (r *Skeleton) Add(node Node) error {
	if node.Index < 0 {
		return fmt.Errorf("negative node index %d", node.Index)
	}
	if node.Name == "" {
		return fmt.Errorf("empty name for node %d", node.Index)
	}
	if _, ok := r.positionByIndex[node.Index]; ok {
		return fmt.Errorf("duplicated node index %d", node.Index)
	}
	if _, ok := r.positionByName[node.Name]; ok {
		return fmt.Errorf(`duplicated node name "%s"`, node.Name)
	}
	r.positionByIndex[node.Index] = len(r.nodes)
	r.positionByName[node.Name] = len(r.nodes)
	r.nodes = append(r.nodes, node)
	return nil
}

func (r *Skeleton) Len() int {
	return len(r.nodes)
}

func (r *Skeleton) Nodes() []Node {
	return ds.ShallowCopy(r.nodes)
}

func (r *Skeleton) Node(index int) (Node, bool) {
	position, ok := r.positionByIndex[index]
	if !ok {
		return Node{}, false
	}
	return r.nodes[position], true
}

func (r *Skeleton) NodeByName(name string) (Node, bool) {
	position, ok := r.positionByName[name]
	if !ok {
		return Node{}, false
	}
	return r.nodes[position], true
}

// IndexOf resolves a bone name to its node index.
func (r *Skeleton) IndexOf(name string) (int, bool) {
	node, ok := r.NodeByName(name)
	return node.Index, ok
}

func (r *Skeleton) Names() []string {
	return lo.Map(r.nodes, func(node Node, _ int) string { return node.Name })
}

func (r *Skeleton) Roots() []Node {
	return lo.Filter(r.nodes, func(node Node, _ int) bool { return node.IsRoot() })
}

func (r *Skeleton) Children(index int) []Node {
	return lo.Filter(r.nodes, func(node Node, _ int) bool { return node.ParentIndex == index })
}
