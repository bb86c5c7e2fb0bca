package model

import (
	"strings"
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/block"
)

// Day holds the blocks worked on one date and an optional comment.
type Day struct {
	Date    civil.Date
	Blocks  block.Set
	Comment *string
}

// NewDay returns an empty day for date.
func NewDay(date civil.Date) *Day {
	return &Day{Date: date}
}

// Duration returns the total time worked on the day.
func (d *Day) Duration() time.Duration {
	return d.Blocks.Duration()
}

// AddBlock merges b into the day's blocks.
func (d *Day) AddBlock(b block.Block) {
	d.Blocks.Add(b)
}

// RemoveBlock subtracts b from the day's blocks.
func (d *Day) RemoveBlock(b block.Block) {
	d.Blocks.Remove(b)
}

// OngoingBlock returns the open block of the day, if any.
func (d *Day) OngoingBlock() (block.Block, bool) {
	return d.Blocks.FindOngoing()
}

// SetComment replaces the comment. A blank comment clears it.
func (d *Day) SetComment(comment string) {
	comment = strings.TrimSpace(comment)
	if comment == "" {
		d.ClearComment()
		return
	}
	d.Comment = &comment
}

// ClearComment removes the comment.
func (d *Day) ClearComment() {
	d.Comment = nil
}

// IsEmpty reports whether the day has neither blocks nor a comment.
func (d *Day) IsEmpty() bool {
	return d.Blocks.IsEmpty() && d.Comment == nil
}
