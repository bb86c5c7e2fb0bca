// Package block implements the time intervals worked on a single date and
// the set algebra that keeps them sorted and disjoint.
package block

import (
	"time"

	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/timecalc"
)

// Block is a worked period on one calendar date. A block with From == To is
// ongoing: it was started but not closed yet.
type Block struct {
	From time.Time
	To   time.Time
}

// New returns the block [from, to]. It fails with an invalid range error if
// to lies before from or the two are on different dates.
func New(from, to time.Time) (Block, error) {
	if to.Before(from) {
		return Block{}, errors.InvalidRangef("block ends at %s before it starts at %s",
			to.Format("15:04"), from.Format("15:04"))
	}
	if !timecalc.SameDay(from, to) {
		return Block{}, errors.InvalidRangef("block %s-%s spans more than one date",
			from.Format("02.01.06 15:04"), to.Format("02.01.06 15:04"))
	}
	return Block{From: from, To: to}, nil
}

// Ongoing returns an open block started at t.
func Ongoing(t time.Time) Block {
	return Block{From: t, To: t}
}

// Duration returns To - From.
func (b Block) Duration() time.Duration {
	return b.To.Sub(b.From)
}

// IsOngoing reports whether the block is still open.
func (b Block) IsOngoing() bool {
	return b.From.Equal(b.To)
}

// Contains reports whether other lies within b, boundaries included.
func (b Block) Contains(other Block) bool {
	return !b.From.After(other.From) && !b.To.Before(other.To)
}

// StrictlyContains reports whether other lies within b with room on both sides.
func (b Block) StrictlyContains(other Block) bool {
	return b.From.Before(other.From) && b.To.After(other.To)
}

// ContainsTime reports whether From <= t <= To.
func (b Block) ContainsTime(t time.Time) bool {
	return !b.From.After(t) && !b.To.Before(t)
}

// Compare orders blocks by From only.
func (b Block) Compare(other Block) int {
	return b.From.Compare(other.From)
}

// String renders the block as HH:MM-HH:MM.
func (b Block) String() string {
	return b.From.Format("15:04") + "-" + b.To.Format("15:04")
}
