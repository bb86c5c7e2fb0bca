package timecalc

import (
	"fmt"
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/errors"
)

// FormatDuration formats d as HH:MM. Hours are not wrapped at 24.
func FormatDuration(d time.Duration) string {
	minutes := int64(d / time.Minute)
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// FormatDurationHHMMSS formats seconds as HH:MM:SS.
func FormatDurationHHMMSS(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// At returns the local timestamp hour:minute on date.
func At(date civil.Date, hour, minute int) time.Time {
	return time.Date(date.Year, date.Month, date.Day, hour, minute, 0, 0, time.Local)
}

// Today returns the local calendar date of t.
func Today(t time.Time) civil.Date {
	return civil.DateOf(t.In(time.Local))
}

// ValidateMonth rejects month numbers outside 1-12.
func ValidateMonth(month time.Month) error {
	if month < time.January || month > time.December {
		return errors.InvalidCalendarf("invalid month number %d", int(month))
	}
	return nil
}

// MonthName returns the English name of month, e.g. "October".
func MonthName(month time.Month) (string, error) {
	if err := ValidateMonth(month); err != nil {
		return "", err
	}
	return month.String(), nil
}

// PrevMonth returns the month before year/month.
func PrevMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the month after year/month.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// DaysInMonth returns the number of days in year/month.
func DaysInMonth(year int, month time.Month) int {
	// Day 0 of the following month is the last day of this one.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// WeekRange returns the Monday and Sunday of the ISO week containing date.
func WeekRange(date civil.Date) (civil.Date, civil.Date) {
	// Go's weekday: Sunday=0, Monday=1, …, Saturday=6
	wd := int(date.In(time.UTC).Weekday())
	if wd == 0 {
		wd = 7 // treat Sunday as 7 (ISO)
	}
	monday := date.AddDays(-(wd - 1))
	return monday, monday.AddDays(6)
}

// ISOWeekLabel returns a label like "2026-W09".
func ISOWeekLabel(date civil.Date) string {
	year, week := date.In(time.UTC).ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}

// SameDay reports whether two times fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
