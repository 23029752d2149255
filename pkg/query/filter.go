// Package query filters notes with boolean expressions evaluated by
// github.com/expr-lang/expr, e.g.
//
//	isOpen && title startsWith "work/"
//	len(content) > 100 || editing
package query

import (
	"fmt"
	"time"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/aretw0/jotter/pkg/core"
)

// Env is the variable set visible to an expression.
type Env struct {
	ID        string    `expr:"id"`
	Title     string    `expr:"title"`
	Content   string    `expr:"content"`
	IsOpen    bool      `expr:"isOpen"`
	Editing   bool      `expr:"editing"`
	CreatedAt time.Time `expr:"createdAt"`
	UpdatedAt time.Time `expr:"updatedAt"`
}

// Filter is a compiled note predicate.
type Filter struct {
	expression string
	program    *vm.Program
}

// Compile type-checks expression against Env; it must evaluate to a bool.
func Compile(expression string) (*Filter, error) {
	if expression == "" {
		return nil, fmt.Errorf("expression must not be empty")
	}
	program, err := expr.Compile(expression, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("compile %q: %w", expression, err)
	}
	return &Filter{expression: expression, program: program}, nil
}

// String returns the source expression.
func (f *Filter) String() string {
	return f.expression
}

// Match evaluates the filter for one note.
func (f *Filter) Match(n core.Note, editingID string) (bool, error) {
	out, err := expr.Run(f.program, envFor(n, editingID))
	if err != nil {
		return false, fmt.Errorf("evaluate %q on %s: %w", f.expression, n.ID, err)
	}
	return out.(bool), nil
}

// Apply returns the notes matching the filter, preserving order.
func (f *Filter) Apply(notes []core.Note, editingID string) ([]core.Note, error) {
	out := make([]core.Note, 0, len(notes))
	for _, n := range notes {
		ok, err := f.Match(n, editingID)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, n)
		}
	}
	return out, nil
}

func envFor(n core.Note, editingID string) Env {
	return Env{
		ID:        n.ID,
		Title:     n.Title,
		Content:   n.Content,
		IsOpen:    n.IsOpen,
		Editing:   editingID != "" && n.ID == editingID,
		CreatedAt: n.CreatedAt,
		UpdatedAt: n.UpdatedAt,
	}
}
