package model

import (
	"fmt"
	"slices"
	"time"

	"github.com/golang-sql/civil"

	"github.com/Tiliavir/punch/internal/timecalc"
)

// Month is the set of recorded days of one calendar month. Days are kept in
// an unordered map and sorted only when listed.
type Month struct {
	Year  int
	Month time.Month

	days map[civil.Date]*Day
}

// NewMonth returns a month holding days. A later day with the same date
// replaces an earlier one.
func NewMonth(year int, month time.Month, days ...*Day) (*Month, error) {
	if err := timecalc.ValidateMonth(month); err != nil {
		return nil, err
	}
	m := &Month{Year: year, Month: month, days: make(map[civil.Date]*Day, len(days))}
	for _, d := range days {
		m.days[d.Date] = d
	}
	return m, nil
}

// Contains reports whether date belongs to this calendar month.
func (m *Month) Contains(date civil.Date) bool {
	return date.Year == m.Year && date.Month == m.Month
}

// AddDay returns the day for date, creating an empty one if needed.
func (m *Month) AddDay(date civil.Date) *Day {
	if d, ok := m.days[date]; ok {
		return d
	}
	d := NewDay(date)
	m.days[date] = d
	return d
}

// Day looks up the day for date.
func (m *Month) Day(date civil.Date) (*Day, bool) {
	d, ok := m.days[date]
	return d, ok
}

// Len returns the number of recorded days.
func (m *Month) Len() int {
	return len(m.days)
}

// Cleanup drops days without blocks and comment.
func (m *Month) Cleanup() {
	for date, d := range m.days {
		if d.IsEmpty() {
			delete(m.days, date)
		}
	}
}

// Duration returns the total time worked in the month.
func (m *Month) Duration() time.Duration {
	var total time.Duration
	for _, d := range m.days {
		total += d.Duration()
	}
	return total
}

// MaxBlocksInDay returns the largest number of blocks on a single day.
func (m *Month) MaxBlocksInDay() int {
	n := 0
	for _, d := range m.days {
		n = max(n, d.Blocks.Len())
	}
	return n
}

// Title returns e.g. "October 2026".
func (m *Month) Title() string {
	name, err := timecalc.MonthName(m.Month)
	if err != nil {
		name = fmt.Sprintf("month %d", int(m.Month))
	}
	return fmt.Sprintf("%s %d", name, m.Year)
}

// SortedDays returns the recorded days by ascending date.
func (m *Month) SortedDays() []*Day {
	return sortedByDate(m.days)
}

// FullSortedDays returns one day per date of the month by ascending date,
// with empty days filling the dates that were not recorded.
func (m *Month) FullSortedDays() []*Day {
	days := make(map[civil.Date]*Day, timecalc.DaysInMonth(m.Year, m.Month))
	for date, d := range m.days {
		days[date] = d
	}
	for n := 1; n <= timecalc.DaysInMonth(m.Year, m.Month); n++ {
		date := civil.Date{Year: m.Year, Month: m.Month, Day: n}
		if _, ok := days[date]; !ok {
			days[date] = NewDay(date)
		}
	}
	return sortedByDate(days)
}

func sortedByDate(days map[civil.Date]*Day) []*Day {
	out := make([]*Day, 0, len(days))
	for _, d := range days {
		out = append(out, d)
	}
	slices.SortFunc(out, func(a, b *Day) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		}
		return 0
	})
	return out
}
