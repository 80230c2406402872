// Package datalog runs small Mangle programs over integer facts.
package datalog

import (
	"fmt"
	"slices"
	"strings"

	"github.com/google/mangle/analysis"
	"github.com/google/mangle/ast"
	_ "github.com/google/mangle/builtin"
	"github.com/google/mangle/engine"
	"github.com/google/mangle/factstore"
	"github.com/google/mangle/parse"
)

// An Engine holds a compiled program and its facts.
type Engine struct {
	program *analysis.ProgramInfo
	store   factstore.FactStore
}

// New compiles the given Mangle source.
func New(source string) (*Engine, error) {
	unit, err := parse.Unit(strings.NewReader(source))
	if err != nil {
		return nil, fmt.Errorf("could not parse program: %w", err)
	}
	program, err := analysis.AnalyzeOneUnit(unit, nil)
	if err != nil {
		return nil, fmt.Errorf("could not analyze program: %w", err)
	}
	return &Engine{program: program, store: factstore.NewSimpleInMemoryStore()}, nil
}

// Add records the fact pred(args...).
func (e *Engine) Add(pred string, args ...int64) {
	terms := make([]ast.BaseTerm, len(args))
	for i, arg := range args {
		terms[i] = ast.Number(arg)
	}
	e.store.Add(ast.NewAtom(pred, terms...))
}

// Eval derives every fact implied by the program's rules.
func (e *Engine) Eval() error {
	if _, err := engine.EvalProgramWithStats(e.program, e.store); err != nil {
		return fmt.Errorf("could not evaluate program: %w", err)
	}
	return nil
}

// Query returns the arguments of all known pred facts, sorted.
func (e *Engine) Query(pred string, arity int) ([][]int64, error) {
	var res [][]int64
	err := e.store.GetFacts(ast.NewQuery(ast.PredicateSym{Symbol: pred, Arity: arity}), func(a ast.Atom) error {
		row := make([]int64, len(a.Args))
		for i, arg := range a.Args {
			c, ok := arg.(ast.Constant)
			if !ok || c.Type != ast.NumberType {
				return fmt.Errorf("%s: argument %d is not a number: %v", pred, i, arg)
			}
			row[i] = c.NumValue
		}
		res = append(res, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	slices.SortFunc(res, slices.Compare[[]int64])
	return res, nil
}
