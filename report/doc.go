// Package report turns the outcome of one pipeline run into a Summary and
// renders it for humans (two text lines) or machines (JSON).
//
// The reachability ratio is 100 * reached / total, where total is the number
// of nodes with at least one outgoing edge. Ratio returns ErrEmptyGraph when
// total is zero instead of dividing by it; the Summary then marks the ratio
// as unavailable.
//
// Usage
//
//	s := report.NewSummary(top, res, adj.Len())
//	err := report.WriteText(os.Stdout, s)
//	err := report.WriteJSON(os.Stdout, s)
package report
