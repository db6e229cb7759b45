package ingest

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/socialreach/core"
)

// ctxCheckEvery is how many records are read between cancellation checks.
const ctxCheckEvery = 4096

// ReadNodes parses a node table. The header row is skipped.
func ReadNodes(ctx context.Context, r io.Reader, layout Layout) ([]core.NodeRow, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	var rows []core.NodeRow
	err := readTable(ctx, r, TableNodes, func(rec []string, line int) error {
		id, err := parseID(TableNodes, rec, line, layout.NodeIDCol)
		if err != nil {
			return err
		}
		if layout.NodeNameCol >= len(rec) {
			return &RowError{Table: TableNodes, Line: line, Column: layout.NodeNameCol, Err: ErrMissingColumn}
		}
		rows = append(rows, core.NodeRow{ID: id, RawName: rec[layout.NodeNameCol]})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return rows, nil
}

// ReadEdges parses an edge table. The header row is skipped.
func ReadEdges(ctx context.Context, r io.Reader, layout Layout) ([]core.Edge, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	var edges []core.Edge
	err := readTable(ctx, r, TableEdges, func(rec []string, line int) error {
		from, err := parseID(TableEdges, rec, line, layout.EdgeFromCol)
		if err != nil {
			return err
		}
		to, err := parseID(TableEdges, rec, line, layout.EdgeToCol)
		if err != nil {
			return err
		}
		edges = append(edges, core.Edge{From: from, To: to})
		return nil
	})
	if err != nil {
		return nil, err
	}

	return edges, nil
}

// readTable streams CSV records after the header into fn, stopping at the
// first error.
func readTable(ctx context.Context, r io.Reader, table string, fn func(rec []string, line int) error) error {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	if _, err := cr.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return fmt.Errorf("ingest: read %s header: %w", table, err)
	}

	for n := 0; ; n++ {
		if n%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("ingest: read %s table: %w", table, err)
		}
		line, _ := cr.FieldPos(0)
		if err := fn(rec, line); err != nil {
			return err
		}
	}
}

// parseID reads column col of rec as a NodeID.
func parseID(table string, rec []string, line, col int) (core.NodeID, error) {
	if col >= len(rec) {
		return 0, &RowError{Table: table, Line: line, Column: col, Err: ErrMissingColumn}
	}
	raw := strings.TrimSpace(rec[col])
	id, err := core.ParseNodeID(raw)
	if err != nil {
		return 0, &RowError{Table: table, Line: line, Column: col, Value: rec[col], Err: err}
	}

	return id, nil
}
