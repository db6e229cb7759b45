package ingest

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/socialreach/core"
)

// Table names used in errors, logs and metric labels.
const (
	TableNodes = "nodes"
	TableEdges = "edges"
)

// Sentinel errors for ingestion.
var (
	// ErrMalformedRow marks a row whose required field is missing or not a valid id.
	ErrMalformedRow = errors.New("ingest: malformed row")

	// ErrMissingColumn is the cause recorded when a row is shorter than the layout requires.
	ErrMissingColumn = errors.New("ingest: missing column")

	// ErrInvalidLayout is returned for negative column indexes.
	ErrInvalidLayout = errors.New("ingest: invalid column layout")
)

// Layout holds zero-based column positions for both tables.
type Layout struct {
	NodeNameCol int `yaml:"node_name_col" validate:"gte=0"`
	NodeIDCol   int `yaml:"node_id_col" validate:"gte=0"`
	EdgeFromCol int `yaml:"edge_from_col" validate:"gte=0"`
	EdgeToCol   int `yaml:"edge_to_col" validate:"gte=0"`
}

// DefaultLayout matches the "id,name,new_id" node files and "from,to" edge files.
func DefaultLayout() Layout {
	return Layout{NodeNameCol: 1, NodeIDCol: 2, EdgeFromCol: 0, EdgeToCol: 1}
}

// Validate rejects negative column indexes.
func (l Layout) Validate() error {
	if l.NodeNameCol < 0 || l.NodeIDCol < 0 || l.EdgeFromCol < 0 || l.EdgeToCol < 0 {
		return fmt.Errorf("%w: %+v", ErrInvalidLayout, l)
	}
	return nil
}

// Dataset is the fully parsed pair of tables.
type Dataset struct {
	Nodes []core.NodeRow
	Edges []core.Edge
}

// RowError describes the first malformed row of a table.
// errors.Is matches both ErrMalformedRow and the underlying cause.
type RowError struct {
	// Table is TableNodes or TableEdges.
	Table string

	// Line is the 1-based line number in the source file.
	Line int

	// Column is the zero-based column index of the offending field.
	Column int

	// Value is the raw field text ("" when the column is missing).
	Value string

	// Err is the cause (strconv error or ErrMissingColumn).
	Err error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("ingest: malformed row in %s table at line %d, column %d (%q): %v",
		e.Table, e.Line, e.Column, e.Value, e.Err)
}

// Unwrap exposes ErrMalformedRow and the cause to errors.Is/As.
func (e *RowError) Unwrap() []error {
	return []error{ErrMalformedRow, e.Err}
}
