package dframe

import (
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smd-steady/smd/dnode"
)

type (
	// Ignorer decides which bones are left out of decoded frames. The nodes
	// themselves always stay in the skeleton. An error aborts decoding.
	Ignorer interface {
		Ignores(node dnode.Node) (bool, error)
	}
	IgnoreSet  map[string]struct{}
	AnyIgnorer []Ignorer
	// IgnoreExpr evaluates a boolean expr-lang expression against a node, e.g.
	//
	//   Name startsWith "ValveBiped.weapon" || ParentIndex == -1
	IgnoreExpr struct {
		source  string
		program *vm.Program
	}
)

func NewIgnoreSet(names ...string) IgnoreSet {
	return lo.SliceToMap(
		names,
		func(name string) (string, struct{}) { return name, struct{}{} },
	)
}

func (r IgnoreSet) Ignores(node dnode.Node) (bool, error) {
	_, ok := r[node.Name]
	return ok, nil
}

func (r IgnoreSet) Names() []string {
	return lo.Keys(r)
}

func (r AnyIgnorer) Ignores(node dnode.Node) (bool, error) {
	for _, ignorer := range r {
		if ignorer == nil {
			continue
		}
		ignored, err := ignorer.Ignores(node)
		if err != nil || ignored {
			return ignored, err
		}
	}
	return false, nil
}

func CompileIgnoreExpr(source string) (*IgnoreExpr, error) {
	program, err := expr.Compile(source, expr.Env(dnode.Node{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(err, `CompileIgnoreExpr error: "%s"`, source)
	}
	return &IgnoreExpr{source: source, program: program}, nil
}

func (r *IgnoreExpr) Ignores(node dnode.Node) (bool, error) {
	result, err := expr.Run(r.program, node)
	if err != nil {
		return false, errors.Wrapf(err, `IgnoreExpr error evaluating "%s" on node "%s"`, r.source, node.Name)
	}
	ignored, ok := result.(bool)
	return ok && ignored, nil
}

func (r *IgnoreExpr) String() string {
	return r.source
}
