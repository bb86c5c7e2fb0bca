// Package infer expands the shorthand accepted on the command line into
// blocks, dates and months.
package infer

import (
	"strconv"
	"strings"
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/model"
	"github.com/Tiliavir/punch/internal/timecalc"
)

// Now is the keyword for the current time of day.
const Now = "now"

// NormalizeHalf expands one half of a block: "830" -> "08:30", "1230" ->
// "12:30", "8" -> "8:00", "now" -> the time of now. Anything else is passed
// through for the parser to reject.
func NormalizeHalf(s string, now time.Time) string {
	if strings.Contains(s, ":") {
		return s
	}
	if s == Now {
		return now.Format(brf.BlockLayout)
	}

	switch len(s) {
	case 5:
		return s
	case 4:
		return s[0:2] + ":" + s[2:4]
	case 3:
		return "0" + s[0:1] + ":" + s[1:3]
	}
	return s + ":00"
}

// Normalize expands both halves of a block spec.
func Normalize(s string, now time.Time) string {
	halves := strings.Split(s, brf.BlockSep)
	for i, h := range halves {
		halves[i] = NormalizeHalf(h, now)
	}
	return strings.Join(halves, brf.BlockSep)
}

// Block turns spec into a block on day. A full spec ("8-1230") is parsed as
// is. A single time closes the day's ongoing block at that time, or opens a
// new ongoing block if none is open.
func Block(spec string, day *model.Day, now time.Time) (block.Block, error) {
	normalized := Normalize(spec, now)
	if strings.Contains(normalized, brf.BlockSep) {
		return brf.ParseBlock(day.Date, normalized)
	}

	if ongoing, ok := day.OngoingBlock(); ok {
		return brf.ParseBlock(day.Date, ongoing.From.Format(brf.BlockLayout)+brf.BlockSep+normalized)
	}
	return brf.ParseBlock(day.Date, normalized+brf.BlockSep+normalized)
}

// Date resolves "d", "d.m" or "d.m.y" against ref. Two-digit years are
// taken as 20yy.
func Date(input string, ref civil.Date) (civil.Date, error) {
	parts := strings.Split(input, ".")
	if len(parts) > 3 {
		return civil.Date{}, errors.Unparseablef("invalid date %q, want d[.m[.y]]", input)
	}

	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return civil.Date{}, errors.Unparseablef("invalid date %q, want d[.m[.y]]", input)
		}
		nums[i] = n
	}

	date := civil.Date{Year: ref.Year, Month: ref.Month, Day: nums[0]}
	if len(nums) > 1 {
		date.Month = time.Month(nums[1])
	}
	if len(nums) > 2 {
		date.Year = fullYear(nums[2])
	}

	if !date.IsValid() {
		return civil.Date{}, errors.InvalidCalendarf("%q is not a valid date", input)
	}
	return date, nil
}

// Month resolves "m" or "m.y" against year. Two-digit years are taken as
// 20yy.
func Month(input string, year int) (int, time.Month, error) {
	monthStr, yearStr, hasYear := strings.Cut(input, ".")

	m, err := strconv.Atoi(monthStr)
	if err != nil {
		return 0, 0, errors.Unparseablef("invalid month %q, want m[.y]", input)
	}
	if hasYear {
		y, err := strconv.Atoi(yearStr)
		if err != nil {
			return 0, 0, errors.Unparseablef("invalid month %q, want m[.y]", input)
		}
		year = fullYear(y)
	}

	month := time.Month(m)
	if err := timecalc.ValidateMonth(month); err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func fullYear(y int) int {
	if y < 100 {
		return y + 2000
	}
	return y
}

// Time resolves one half spec ("830", "now", "17:15") to a time on date.
func Time(input string, date civil.Date, now time.Time) (time.Time, error) {
	hour, minute, err := brf.ParseHM(NormalizeHalf(input, now))
	if err != nil {
		return time.Time{}, err
	}
	return timecalc.At(date, hour, minute), nil
}
