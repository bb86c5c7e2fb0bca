// Package brf reads and writes the monthly hours file:
//
//	October 2026
//
//	01.10.26   08:00-12:00   12:30-17:00   Total: 08:30   comment
//
//	Total: 08:30
package brf

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"
	pkgerrors "github.com/pkg/errors"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/model"
	"github.com/Tiliavir/punch/internal/timecalc"
)

const (
	// DateLayout is the date field of a day line.
	DateLayout = "02.01.06"
	// BlockLayout is each half of a block token.
	BlockLayout = "15:04"
	// BlockSep separates the halves of a block token.
	BlockSep = "-"
	// TotalMarker starts the computed total of a day or month.
	TotalMarker = "Total:"
)

// ParseMonth reads the contents of a month file. The first line is the title
// and is ignored, as are blank lines and total lines. Lines for the same date
// are merged.
func ParseMonth(contents string, year int, month time.Month) (*model.Month, error) {
	m, err := model.NewMonth(year, month)
	if err != nil {
		return nil, err
	}

	lines := strings.Split(strings.TrimSpace(contents), "\n")
	for n, line := range lines[1:] {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, TotalMarker) {
			continue
		}

		parsed, err := ParseDay(line)
		if err != nil {
			return nil, pkgerrors.Wrapf(err, "line %d", n+2)
		}
		if !m.Contains(parsed.Date) {
			err := errors.InvalidCalendarf("%s is not in %s", parsed.Date.In(time.Local).Format(DateLayout), m.Title())
			return nil, pkgerrors.Wrapf(err, "line %d", n+2)
		}

		day := m.AddDay(parsed.Date)
		for _, b := range parsed.Blocks.Blocks() {
			day.AddBlock(b)
		}
		if parsed.Comment != nil {
			day.Comment = parsed.Comment
		}
	}
	return m, nil
}

// ValidateComment rejects comments that cannot be stored on a day line.
func ValidateComment(comment string) error {
	if strings.ContainsAny(comment, "\r\n") {
		return errors.Unparseablef("comment %q spans more than one line", comment)
	}
	return nil
}

// ParseDay reads one day line: a date, block tokens up to the total marker,
// the total itself (discarded) and an optional comment.
func ParseDay(line string) (*model.Day, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil, errors.Unparseablef("empty day line")
	}

	date, err := ParseDate(fields[0])
	if err != nil {
		return nil, err
	}

	day := model.NewDay(date)
	for _, token := range fields[1:] {
		if strings.HasPrefix(token, TotalMarker) {
			day.Comment = parseComment(line)
			break
		}

		b, err := ParseBlock(date, token)
		if err != nil {
			return nil, err
		}
		day.AddBlock(b)
	}
	return day, nil
}

// ParseDate reads a DD.MM.YY date.
func ParseDate(s string) (civil.Date, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return civil.Date{}, errors.Unparseablef("invalid date %q, want DD.MM.YY", s)
	}
	return civil.DateOf(t), nil
}

// ParseBlock reads an H:MM-H:MM token on date.
func ParseBlock(date civil.Date, s string) (block.Block, error) {
	parts := strings.Split(s, BlockSep)
	if len(parts) != 2 {
		return block.Block{}, errors.Unparseablef("invalid block %q, want HH:MM-HH:MM", s)
	}

	fromHour, fromMinute, err := ParseHM(parts[0])
	if err != nil {
		return block.Block{}, pkgerrors.Wrapf(err, "block %q", s)
	}
	toHour, toMinute, err := ParseHM(parts[1])
	if err != nil {
		return block.Block{}, pkgerrors.Wrapf(err, "block %q", s)
	}

	b, err := block.New(timecalc.At(date, fromHour, fromMinute), timecalc.At(date, toHour, toMinute))
	if err != nil {
		return block.Block{}, pkgerrors.Wrapf(err, "block %q", s)
	}
	return b, nil
}

// ParseHM reads an H:MM or HH:MM time of day.
func ParseHM(s string) (hour, minute int, err error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, 0, errors.Unparseablef("invalid time %q, want HH:MM", s)
	}

	h, errH := strconv.ParseUint(parts[0], 10, 8)
	m, errM := strconv.ParseUint(parts[1], 10, 8)
	if errH != nil || errM != nil || h > 23 || m > 59 {
		return 0, 0, errors.Unparseablef("invalid time %q, want HH:MM", s)
	}
	return int(h), int(m), nil
}

func parseComment(line string) *string {
	_, rest, _ := strings.Cut(line, TotalMarker)
	fields := strings.Fields(rest)
	if len(fields) <= 1 {
		return nil
	}
	comment := strings.Join(fields[1:], " ")
	return &comment
}
