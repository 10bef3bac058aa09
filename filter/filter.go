// Package filter compiles expr expressions for client-side filtering of API
// items. Expressions reference item fields directly, e.g.
//
//	city == "Berlin" && countryCode == "de"
//	runtime > 120
//
// Undefined fields evaluate to nil, so filters stay usable against the
// loosely shaped objects the API returns.
package filter

import (
	"fmt"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/jvanvinkenroye/cinemaquery/cineamo"
)

// ItemFilter is a compiled filter expression applied to single items.
type ItemFilter struct {
	expression string
	program    *vm.Program
}

// CompilationError describes a filter expression that failed to compile.
type CompilationError struct {
	Expression string
	Reason     string
}

// Error implements the error interface.
func (e *CompilationError) Error() string {
	return fmt.Sprintf("invalid filter %q: %s", e.Expression, e.Reason)
}

// Compile compiles an expression into an ItemFilter. The expression must
// produce a boolean.
func Compile(expression string) (*ItemFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{Expression: expression, Reason: "empty expression"}
	}

	program, err := expr.Compile(expression,
		expr.AllowUndefinedVariables(),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{Expression: expression, Reason: err.Error()}
	}

	return &ItemFilter{expression: expression, program: program}, nil
}

// Expression returns the source expression.
func (f *ItemFilter) Expression() string {
	return f.expression
}

// Match evaluates the filter against one item.
func (f *ItemFilter) Match(item cineamo.Item) (bool, error) {
	result, err := expr.Run(f.program, map[string]any(item))
	if err != nil {
		return false, fmt.Errorf("filter %q failed: %w", f.expression, err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, fmt.Errorf("filter %q did not produce a boolean", f.expression)
	}
	return matched, nil
}

// Apply returns the items matching the filter. A nil filter matches
// everything.
func (f *ItemFilter) Apply(items []cineamo.Item) ([]cineamo.Item, error) {
	if f == nil {
		return items, nil
	}

	var matched []cineamo.Item
	for _, item := range items {
		ok, err := f.Match(item)
		if err != nil {
			return nil, err
		}
		if ok {
			matched = append(matched, item)
		}
	}
	return matched, nil
}
