// Package cql implements the component query language, a small expression
// syntax over component names that compiles to the same filters the typed
// API builds:
//
//	CONTAINS(Position, Velocity) & !EXACT(Position)
//
// The operators & and | fold left to right with equal precedence, ! negates
// and parentheses group. Component names resolve through a registry's
// component manager, so only names of assigned types can be queried.
package cql

import (
	"github.com/alecthomas/participle/v2"
	"github.com/rotisserie/eris"

	"pkg.world.dev/tabula/component"
	"pkg.world.dev/tabula/filter"
)

type cqlOperator int

const (
	opAnd cqlOperator = iota
	opOr
)

var operatorMap = map[string]cqlOperator{"&": opAnd, "|": opOr}

// Capture tells the parser how to turn an operator token into a cqlOperator.
func (o *cqlOperator) Capture(s []string) error {
	if len(s) == 0 {
		return eris.New("invalid operator")
	}
	operator, ok := operatorMap[s[0]]
	if !ok {
		return eris.New("invalid operator")
	}
	*o = operator
	return nil
}

type cqlComponent struct {
	Name string `@Ident`
}

type cqlAll struct{}

func (a *cqlAll) Capture(values []string) error {
	if values[0] == "ALL" && values[1] == "(" && values[2] == ")" {
		*a = cqlAll{}
	}
	return nil
}

type cqlNot struct {
	SubExpression *cqlValue `"!" @@`
}

type cqlExact struct {
	Components []*cqlComponent `"EXACT" "(" (@@ ",")* @@ ")"`
}

type cqlContains struct {
	Components []*cqlComponent `"CONTAINS" "(" (@@ ",")* @@ ")"`
}

type cqlValue struct {
	All           *cqlAll      `@("ALL" "(" ")")`
	Exact         *cqlExact    `| @@`
	Contains      *cqlContains `| @@`
	Not           *cqlNot      `| @@`
	Subexpression *cqlTerm     `| "(" @@ ")"`
}

type cqlFactor struct {
	Base *cqlValue `@@`
}

type cqlOpFactor struct {
	Operator cqlOperator `@("&" | "|")`
	Factor   *cqlFactor  `@@`
}

type cqlTerm struct {
	Left  *cqlFactor     `@@`
	Right []*cqlOpFactor `@@*`
}

var queryParser = participle.MustBuild[cqlTerm]()

// Resolve maps a component name to its metadata. Unknown names are errors.
type Resolve func(name string) (component.Metadata, error)

// Parse compiles a query expression into a component filter, resolving
// component names through resolve.
func Parse(text string, resolve Resolve) (filter.ComponentFilter, error) {
	term, err := queryParser.ParseString("", text)
	if err != nil {
		return nil, eris.Wrap(err, "failed to parse query")
	}
	return termToFilter(term, resolve)
}

func refsOf(names []*cqlComponent, resolve Resolve, keyword string) ([]filter.Ref, error) {
	if len(names) == 0 {
		return nil, eris.Errorf("%s cannot have zero parameters", keyword)
	}
	refs := make([]filter.Ref, 0, len(names))
	for _, n := range names {
		meta, err := resolve(n.Name)
		if err != nil {
			return nil, err
		}
		refs = append(refs, filter.RefOf(meta.Type()))
	}
	return refs, nil
}

func valueToFilter(value *cqlValue, resolve Resolve) (filter.ComponentFilter, error) {
	switch {
	case value.All != nil:
		return filter.All(), nil
	case value.Exact != nil:
		refs, err := refsOf(value.Exact.Components, resolve, "EXACT")
		if err != nil {
			return nil, err
		}
		return filter.Exact(refs...), nil
	case value.Contains != nil:
		refs, err := refsOf(value.Contains.Components, resolve, "CONTAINS")
		if err != nil {
			return nil, err
		}
		return filter.Contains(refs...), nil
	case value.Not != nil:
		inner, err := valueToFilter(value.Not.SubExpression, resolve)
		if err != nil {
			return nil, err
		}
		return filter.Not(inner), nil
	case value.Subexpression != nil:
		return termToFilter(value.Subexpression, resolve)
	default:
		return nil, eris.New("malformed query expression")
	}
}

func termToFilter(term *cqlTerm, resolve Resolve) (filter.ComponentFilter, error) {
	if term.Left == nil {
		return nil, eris.New("not enough values in expression")
	}
	acc, err := valueToFilter(term.Left.Base, resolve)
	if err != nil {
		return nil, err
	}
	for _, opFactor := range term.Right {
		next, err := valueToFilter(opFactor.Factor.Base, resolve)
		if err != nil {
			return nil, err
		}
		switch opFactor.Operator {
		case opAnd:
			acc = filter.And(acc, next)
		case opOr:
			acc = filter.Or(acc, next)
		default:
			return nil, eris.New("invalid operator")
		}
	}
	return acc, nil
}
