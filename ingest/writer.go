package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/katalvlaran/socialreach/core"
)

// Header rows written by WriteNodes and WriteEdges.
var (
	nodeHeader = []string{"id", "name", "new_id"}
	edgeHeader = []string{"node_1", "node_2"}
)

// WriteNodes writes rows in the DefaultLayout node format.
func WriteNodes(w io.Writer, rows []core.NodeRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(nodeHeader); err != nil {
		return fmt.Errorf("ingest: write %s header: %w", TableNodes, err)
	}
	for _, row := range rows {
		id := row.ID.String()
		if err := cw.Write([]string{id, row.RawName, id}); err != nil {
			return fmt.Errorf("ingest: write %s row %s: %w", TableNodes, id, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// WriteEdges writes edges in the DefaultLayout edge format.
func WriteEdges(w io.Writer, edges []core.Edge) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(edgeHeader); err != nil {
		return fmt.Errorf("ingest: write %s header: %w", TableEdges, err)
	}
	for _, e := range edges {
		if err := cw.Write([]string{e.From.String(), e.To.String()}); err != nil {
			return fmt.Errorf("ingest: write %s row: %w", TableEdges, err)
		}
	}
	cw.Flush()

	return cw.Error()
}

// SaveFiles writes ds to nodesPath and edgesPath, creating parent directories.
func SaveFiles(ds *Dataset, nodesPath, edgesPath string) error {
	if err := saveFile(nodesPath, func(w io.Writer) error { return WriteNodes(w, ds.Nodes) }); err != nil {
		return err
	}
	return saveFile(edgesPath, func(w io.Writer) error { return WriteEdges(w, ds.Edges) })
}

func saveFile(path string, write func(io.Writer) error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("ingest: create directory for %s: %w", path, err)
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("ingest: create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}

	return f.Close()
}
