package cmd

import (
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/infer"
	"github.com/Tiliavir/punch/internal/timecalc"
)

var (
	selDay       string
	selMonth     string
	selYesterday bool
	selPrevious  bool
	selNext      bool
)

// selectionOptions are the date and month flags of a run.
type selectionOptions struct {
	Day       string
	Month     string
	Yesterday bool
	Previous  bool
	Next      bool
}

func selectionFlags() selectionOptions {
	return selectionOptions{
		Day:       selDay,
		Month:     selMonth,
		Yesterday: selYesterday,
		Previous:  selPrevious,
		Next:      selNext,
	}
}

// selection is the month a run shows and the date it changes.
type selection struct {
	Year  int
	Month time.Month
	Date  civil.Date
}

// resolveSelection starts at today (or yesterday), moves the month with
// --previous/--next, replaces it with --month, and finally resolves --day
// against the selected month. A date moves the selection to its own month.
func resolveSelection(today civil.Date, opts selectionOptions) (selection, error) {
	date := today
	if opts.Yesterday {
		date = date.AddDays(-1)
	}

	year, month := date.Year, date.Month
	switch {
	case opts.Previous:
		year, month = timecalc.PrevMonth(year, month)
	case opts.Next:
		year, month = timecalc.NextMonth(year, month)
	}

	if opts.Month != "" {
		var err error
		year, month, err = infer.Month(opts.Month, year)
		if err != nil {
			return selection{}, err
		}
	}

	if opts.Day != "" {
		ref := date
		if ref.Year != year || ref.Month != month {
			ref = civil.Date{Year: year, Month: month, Day: 1}
		}
		d, err := infer.Date(opts.Day, ref)
		if err != nil {
			return selection{}, err
		}
		date = d
		year, month = d.Year, d.Month
	}

	return selection{Year: year, Month: month, Date: date}, nil
}
