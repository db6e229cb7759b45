package popularity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/socialreach/core"
)

// Sentinel errors for popularity selection.
var (
	// ErrNilGraph is returned when the adjacency or registry is nil.
	ErrNilGraph = errors.New("popularity: adjacency or registry is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("popularity: invalid option supplied")
)

// TieBreak decides which of several equally popular ids wins.
type TieBreak int

const (
	// LowestID picks the smallest NodeID among the tied ids.
	LowestID TieBreak = iota

	// FirstSeen picks the id whose first outgoing edge appears earliest in the edge table.
	FirstSeen
)

// Canonical policy names used by configuration and flags.
const (
	tieBreakLowestID  = "lowest-id"
	tieBreakFirstSeen = "first-seen"
)

// String returns the canonical policy name.
func (t TieBreak) String() string {
	switch t {
	case LowestID:
		return tieBreakLowestID
	case FirstSeen:
		return tieBreakFirstSeen
	default:
		return fmt.Sprintf("TieBreak(%d)", int(t))
	}
}

// ParseTieBreak maps "lowest-id" or "first-seen" (case-insensitive) to a policy.
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case tieBreakLowestID:
		return LowestID, nil
	case tieBreakFirstSeen:
		return FirstSeen, nil
	default:
		return LowestID, fmt.Errorf("%w: unknown tie-break %q", ErrOptionViolation, s)
	}
}

// Option configures MostPopular.
type Option func(*Options)

// Options holds the resolved selection parameters.
type Options struct {
	// TieBreak orders the scan; see LowestID and FirstSeen.
	TieBreak TieBreak

	err error
}

// DefaultOptions returns LowestID tie-breaking.
func DefaultOptions() Options {
	return Options{TieBreak: LowestID}
}

// WithTieBreak selects the tie-break policy.
// Unknown values surface as ErrOptionViolation when MostPopular runs.
func WithTieBreak(t TieBreak) Option {
	return func(o *Options) {
		switch t {
		case LowestID, FirstSeen:
			o.TieBreak = t
		default:
			o.err = fmt.Errorf("%w: unknown tie-break %d", ErrOptionViolation, int(t))
		}
	}
}

// Result describes the selected node.
type Result struct {
	// ID of the winner; meaningless when Found is false.
	ID core.NodeID

	// Name is the registered display name, or core.UnknownName.
	Name string

	// OutDegree is the winner's successor-list length.
	OutDegree int

	// Found is false when the adjacency has no entries.
	Found bool
}
