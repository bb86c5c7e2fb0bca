package brf

import (
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/model"
	"github.com/Tiliavir/punch/internal/timecalc"
)

// Mode selects between the file format and the terminal view.
type Mode int

const (
	// File lists recorded days only, plain text.
	File Mode = iota
	// Term lists every date of the month with weekday names and highlights.
	Term
)

const (
	termDateLayout = "Mon   02.01.06"
	spacer         = "   "
	emptyBlock     = "           "
	emptyHalfBlock = "     "
)

var (
	modifiedColor = color.New(color.FgHiMagenta)
	selectedColor = color.New(color.FgHiBlue)
)

// FormatMonth renders m. marks may be nil.
func FormatMonth(m *model.Month, marks *Marks, mode Mode) string {
	days := m.SortedDays()
	if mode == Term {
		days = m.FullSortedDays()
	}

	padBlocks := m.MaxBlocksInDay()
	lines := make([]string, 0, len(days))
	for i, d := range days {
		lines = append(lines, FormatDay(d, i, padBlocks, marks, mode))
	}

	var sb strings.Builder
	sb.WriteString(m.Title())
	sb.WriteString("\n\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n\n")
	sb.WriteString(TotalMarker + " " + timecalc.FormatDuration(m.Duration()))
	return sb.String()
}

// FormatDay renders one day line. index is the line's position in the month
// listing; padBlocks is the number of block columns to pad to.
func FormatDay(d *model.Day, index, padBlocks int, marks *Marks, mode Mode) string {
	var sb strings.Builder
	sb.WriteString(formatDate(d.Date, index, mode))

	blocks := d.Blocks.Blocks()
	for _, b := range blocks {
		sb.WriteString(spacer)
		sb.WriteString(FormatBlock(b, mode))
	}
	if missing := padBlocks - len(blocks); missing > 0 {
		sb.WriteString(strings.Repeat(spacer+emptyBlock, missing))
	}

	sb.WriteString(spacer)
	sb.WriteString(TotalMarker + " " + timecalc.FormatDuration(d.Duration()))
	if d.Comment != nil {
		sb.WriteString(spacer)
		sb.WriteString(*d.Comment)
	}

	out := sb.String()
	if mode == File {
		return out
	}
	switch {
	case marks.IsModified(d.Date):
		return modifiedColor.Sprint(out)
	case marks.IsSelected(d.Date):
		return selectedColor.Sprint(out)
	}
	return out
}

// FormatBlock renders HH:MM-HH:MM. In the terminal view an ongoing block has
// a blank end.
func FormatBlock(b block.Block, mode Mode) string {
	to := b.To.Format(BlockLayout)
	if mode == Term && b.IsOngoing() {
		to = emptyHalfBlock
	}
	return b.From.Format(BlockLayout) + BlockSep + to
}

func formatDate(date civil.Date, index int, mode Mode) string {
	t := date.In(time.Local)
	if mode == File {
		return t.Format(DateLayout)
	}
	// Weeks are separated by a blank line, except before the first line.
	if t.Weekday() == time.Monday && index != 0 {
		return "\n" + t.Format(termDateLayout)
	}
	return t.Format(termDateLayout)
}
