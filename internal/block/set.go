package block

import (
	"slices"
	"time"
)

// Set is the sorted collection of disjoint blocks of one date.
//
// Consecutive blocks A, B always satisfy A.To < B.From: blocks that overlap
// or touch are merged by Add. At most one ongoing block is expected; Add does
// not enforce this, callers that open blocks must close an existing one first.
// The zero value is an empty set.
type Set struct {
	blocks []Block
}

// NewSet builds a set by adding every block in order, so overlapping input is
// normalized.
func NewSet(blocks ...Block) Set {
	var s Set
	for _, b := range blocks {
		s.Add(b)
	}
	return s
}

// Blocks returns a copy of the blocks in ascending order.
func (s *Set) Blocks() []Block {
	return slices.Clone(s.blocks)
}

// Len returns the number of blocks.
func (s *Set) Len() int {
	return len(s.blocks)
}

// IsEmpty reports whether the set has no blocks.
func (s *Set) IsEmpty() bool {
	return len(s.blocks) == 0
}

// Duration returns the summed duration of all blocks.
func (s *Set) Duration() time.Duration {
	var total time.Duration
	for _, b := range s.blocks {
		total += b.Duration()
	}
	return total
}

// FindOngoing returns the first ongoing block.
func (s *Set) FindOngoing() (Block, bool) {
	for _, b := range s.blocks {
		if b.IsOngoing() {
			return b, true
		}
	}
	return Block{}, false
}

// Add merges b into the set. Blocks overlapping or touching b collapse with it
// into one block spanning their union; the rest are left alone. Adding a range
// that is already covered is a no-op.
func (s *Set) Add(b Block) {
	if slices.ContainsFunc(s.blocks, func(e Block) bool { return e.Contains(b) }) {
		return
	}

	// The set is disjoint, so at most one block can reach into b from the
	// left and at most one from the right.
	if i := s.index(func(e Block) bool { return b.ContainsTime(e.To) }); i >= 0 {
		if l := s.blocks[i]; !l.From.After(b.From) {
			b.From = l.From
		}
	}
	s.dropContainedBy(b)

	if i := s.index(func(e Block) bool { return b.ContainsTime(e.From) }); i >= 0 {
		if r := s.blocks[i]; !r.To.Before(b.To) {
			b.To = r.To
		}
	}
	s.dropContainedBy(b)

	s.blocks = append(s.blocks, b)
	slices.SortFunc(s.blocks, Block.Compare)
}

// Remove subtracts r from the set. Blocks inside r are deleted, a block
// strictly containing r is split in two and blocks reaching into r from
// either side are truncated.
func (s *Set) Remove(r Block) {
	s.dropContainedBy(r)

	if i := s.index(func(e Block) bool { return e.StrictlyContains(r) }); i >= 0 {
		tail := Block{From: r.To, To: s.blocks[i].To}
		s.blocks[i].To = r.From
		s.Add(tail)
		return
	}

	// Cut the end of the block running into r. A block starting exactly at
	// r.From is not cut here, its head is removed below.
	if i := s.index(func(e Block) bool { return e.ContainsTime(r.From) && e.From.Before(r.From) }); i >= 0 {
		s.blocks[i].To = r.From
	}

	// Cut the start of the block running out of r.
	if i := s.index(func(e Block) bool { return e.ContainsTime(r.To) && e.To.After(r.To) }); i >= 0 {
		s.blocks[i].From = r.To
	}
}

func (s *Set) index(match func(Block) bool) int {
	return slices.IndexFunc(s.blocks, match)
}

func (s *Set) dropContainedBy(b Block) {
	s.blocks = slices.DeleteFunc(s.blocks, b.Contains)
}
