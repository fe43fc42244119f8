// Package registry manages admin-authored calculator definitions: named
// formulas with a declared variable list that the public product widget
// evaluates without a code change or deploy.
package registry

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"Quarry/internal/formula"
)

// ErrNotFound is returned when no definition exists for an id.
var ErrNotFound = errors.New("calculator not found")

// Definition types. Tonnage calculators report tons, square-footage
// calculators report area-derived quantities; the distinction is a display
// hint for the widget.
const (
	TypeTonnage       = "tonnage"
	TypeSquareFootage = "square_footage"
)

// Variable declares one named input of a definition, with presentation
// metadata and the value used when the caller omits it.
type Variable struct {
	Name         string  `json:"name"`
	Label        string  `json:"label"`
	Unit         string  `json:"unit"`
	DefaultValue float64 `json:"default_value"`
}

// Definition is one admin-managed calculator.
type Definition struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Category    string     `json:"category"`
	Type        string     `json:"type"`
	Formula     string     `json:"formula"`
	Variables   []Variable `json:"variables"`
	Description string     `json:"description"`
	IsActive    bool       `json:"is_active"`
	CreatedBy   string     `json:"created_by"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// Validate checks a definition before it is persisted. The formula must
// compile and reference only declared variables, so a typo is caught at
// save time instead of at first customer evaluation.
func (d *Definition) Validate() error {
	if strings.TrimSpace(d.Name) == "" {
		return errors.New("name is required")
	}
	if d.Type != TypeTonnage && d.Type != TypeSquareFootage {
		return fmt.Errorf("unknown calculator type %q", d.Type)
	}
	if len(d.Variables) == 0 {
		return errors.New("at least one variable is required")
	}
	names := make([]string, 0, len(d.Variables))
	seen := map[string]bool{}
	for _, v := range d.Variables {
		if strings.TrimSpace(v.Name) == "" {
			return errors.New("variable name is required")
		}
		if seen[v.Name] {
			return fmt.Errorf("duplicate variable %q", v.Name)
		}
		seen[v.Name] = true
		names = append(names, v.Name)
	}
	return formula.Validate(d.Formula, names)
}

// Evaluate runs the definition's formula against caller inputs, filling
// declared defaults for omitted variables. Unknown input names are
// ignored; only declared variables reach the formula.
func (d *Definition) Evaluate(inputs map[string]float64) (float64, error) {
	compiled, err := formula.Compile(d.Formula)
	if err != nil {
		return 0, err
	}
	values := make(map[string]float64, len(d.Variables))
	for _, v := range d.Variables {
		values[v.Name] = v.DefaultValue
		if in, ok := inputs[v.Name]; ok {
			values[v.Name] = in
		}
	}
	return compiled.Eval(values)
}

// Store is the persistence collaborator. Concurrent updates to the same
// definition are last-write-wins; there is no version field.
type Store interface {
	CreateDefinition(ctx context.Context, d *Definition) error
	GetDefinition(ctx context.Context, id string) (Definition, error)
	ListDefinitions(ctx context.Context, category string, activeOnly bool) ([]Definition, error)
	UpdateDefinition(ctx context.Context, d *Definition) error
	DeleteDefinition(ctx context.Context, id string) error
}
