package ingest

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
)

// LoadFiles reads the node and edge tables concurrently. The first failure
// cancels the other read and is returned; no partial Dataset is produced.
func LoadFiles(ctx context.Context, nodesPath, edgesPath string, layout Layout) (*Dataset, error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		f, err := os.Open(nodesPath)
		if err != nil {
			return fmt.Errorf("ingest: open %s table: %w", TableNodes, err)
		}
		defer f.Close()
		rows, err := ReadNodes(gctx, bufio.NewReader(f), layout)
		if err != nil {
			return fmt.Errorf("%s: %w", nodesPath, err)
		}
		ds.Nodes = rows
		return nil
	})
	g.Go(func() error {
		f, err := os.Open(edgesPath)
		if err != nil {
			return fmt.Errorf("ingest: open %s table: %w", TableEdges, err)
		}
		defer f.Close()
		edges, err := ReadEdges(gctx, bufio.NewReader(f), layout)
		if err != nil {
			return fmt.Errorf("%s: %w", edgesPath, err)
		}
		ds.Edges = edges
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return ds, nil
}
