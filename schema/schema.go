package schema

import (
	"fmt"

	"github.com/arclake/datablock/errs"
)

// Column is a single (name, storedType) pair in a Schema.
type Column struct {
	Name string
	Type Type
}

// Schema is an ordered sequence of columns. Column order determines both
// row-stride layout and columnar region ordering.
type Schema []Column

// Validate checks that the schema is non-empty, every type is a member of
// the closed Type enum, and column names are unique.
func (s Schema) Validate() error {
	if len(s) == 0 {
		return errs.ErrEmptySchema
	}

	seen := make(map[string]struct{}, len(s))
	for _, col := range s {
		if !col.Type.Valid() {
			return fmt.Errorf("%w: column %q has type %d", errs.ErrUnsupportedType, col.Name, col.Type)
		}
		if _, ok := seen[col.Name]; ok {
			return fmt.Errorf("%w: %q", errs.ErrDuplicateColumnName, col.Name)
		}
		seen[col.Name] = struct{}{}
	}

	return nil
}

// IndexOf returns the position of the named column, or -1 if absent.
func (s Schema) IndexOf(name string) int {
	for i, col := range s {
		if col.Name == name {
			return i
		}
	}

	return -1
}

// NumColumns returns the number of columns in the schema.
func (s Schema) NumColumns() int {
	return len(s)
}
