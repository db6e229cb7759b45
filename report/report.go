package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/socialreach/popularity"
	"github.com/katalvlaran/socialreach/reach"
)

// ErrEmptyGraph is returned by Ratio when there are no nodes to divide by.
var ErrEmptyGraph = errors.New("report: graph has no nodes with outgoing edges")

// Output formats accepted by Write.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// ErrUnknownFormat is returned by Write for anything but FormatText or FormatJSON.
var ErrUnknownFormat = errors.New("report: unknown output format")

// Ratio returns 100 * reached / total.
func Ratio(reached, total int) (float64, error) {
	if total <= 0 {
		return 0, ErrEmptyGraph
	}
	return 100 * float64(reached) / float64(total), nil
}

// FormatRatio renders a percentage with two decimals and a percent sign.
func FormatRatio(pct float64) string {
	return strconv.FormatFloat(pct, 'f', 2, 64) + "%"
}

// Summary is the serialisable outcome of one run.
type Summary struct {
	Popular          string  `json:"popular"`
	PopularID        uint64  `json:"popular_id"`
	PopularOutDegree int     `json:"popular_out_degree"`
	Start            string  `json:"start,omitempty"`
	MaxHops          int     `json:"max_hops"`
	Reached          int     `json:"reached"`
	Total            int     `json:"total"`
	Ratio            float64 `json:"ratio"`
	RatioAvailable   bool    `json:"ratio_available"`
	StartNotFound    string  `json:"start_not_found,omitempty"`
}

// NewSummary fills a Summary from the selector result, an optional reach
// result and the number of adjacency keys. A nil res leaves the reach
// fields zero and the ratio unavailable.
func NewSummary(top popularity.Result, res *reach.Result, total int) Summary {
	s := Summary{
		Popular:          top.Name,
		PopularID:        uint64(top.ID),
		PopularOutDegree: top.OutDegree,
		Total:            total,
	}
	if res == nil {
		return s
	}
	s.Start = res.StartName
	s.MaxHops = res.MaxHops
	s.Reached = res.Reached
	if pct, err := Ratio(res.Reached, total); err == nil {
		s.Ratio = pct
		s.RatioAvailable = true
	}

	return s
}

// WriteText prints the popularity line and, when a reach result is present,
// the ratio line.
func WriteText(w io.Writer, s Summary) error {
	var b strings.Builder
	fmt.Fprintf(&b, "The most popular person is %s\n", s.Popular)
	switch {
	case s.StartNotFound != "":
		fmt.Fprintf(&b, "no such person: %s\n", s.StartNotFound)
	case s.RatioAvailable:
		who := "the most popular person"
		if s.Start != s.Popular {
			who = s.Start
		}
		fmt.Fprintf(&b, "The proportion %s can reach in %d steps is %s\n",
			who, s.MaxHops, FormatRatio(s.Ratio))
	default:
		b.WriteString("The proportion is unavailable: the graph has no edges\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// WriteJSON encodes s as one indented JSON object.
func WriteJSON(w io.Writer, s Summary) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(s); err != nil {
		return fmt.Errorf("report: encode summary: %w", err)
	}
	return nil
}

// Write dispatches on format.
func Write(w io.Writer, format string, s Summary) error {
	switch format {
	case FormatText, "":
		return WriteText(w, s)
	case FormatJSON:
		return WriteJSON(w, s)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}
