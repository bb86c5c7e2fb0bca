package brf

import "github.com/golang-sql/civil"

// Marks records which dates a run selected and which it modified, so the
// terminal view can highlight them. The zero value is ready to use.
type Marks struct {
	selected map[civil.Date]struct{}
	modified map[civil.Date]struct{}
}

// Select marks date as selected.
func (m *Marks) Select(date civil.Date) {
	if m.selected == nil {
		m.selected = make(map[civil.Date]struct{})
	}
	m.selected[date] = struct{}{}
}

// Modify marks date as modified.
func (m *Marks) Modify(date civil.Date) {
	if m.modified == nil {
		m.modified = make(map[civil.Date]struct{})
	}
	m.modified[date] = struct{}{}
}

// IsSelected reports whether date was selected.
func (m *Marks) IsSelected(date civil.Date) bool {
	if m == nil {
		return false
	}
	_, ok := m.selected[date]
	return ok
}

// IsModified reports whether date was modified.
func (m *Marks) IsModified(date civil.Date) bool {
	if m == nil {
		return false
	}
	_, ok := m.modified[date]
	return ok
}

// HasModifications reports whether any date was modified.
func (m *Marks) HasModifications() bool {
	return m != nil && len(m.modified) > 0
}
