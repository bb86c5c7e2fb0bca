package cmd

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/golang-sql/civil"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Tiliavir/punch/internal/config"
	perrors "github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/punch"
	"github.com/Tiliavir/punch/internal/storage"
	"github.com/Tiliavir/punch/internal/timecalc"
)

var oct16 = civil.Date{Year: 2026, Month: time.October, Day: 16}

func testSession(t *testing.T, fs afero.Fs, date civil.Date, hour, minute int) *session {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	log, _ := logtest.NewNullLogger()
	return &session{
		cfg:   config.Config{HoursDir: "hours"},
		log:   log,
		store: storage.New(fs, "hours", log),
		now:   timecalc.At(date, hour, minute),
		sel:   selection{Year: date.Year, Month: date.Month, Date: date},
	}
}

func readHours(t *testing.T, fs afero.Fs, s *session) string {
	t.Helper()
	data, err := afero.ReadFile(fs, s.store.MonthPath(s.sel.Year, s.sel.Month))
	require.NoError(t, err)
	return string(data)
}

func TestApplyWritesAndPrints(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 18, 0)

	var out bytes.Buffer
	err := s.apply(punch.Request{Date: oct16, Blocks: []string{"8-12", "13-1730"}, Now: s.now}, false, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "October 2026")
	assert.Contains(t, out.String(), "Fri   16.10.26   08:00-12:00   13:00-17:30   Total: 08:30")
	assert.Equal(t,
		"October 2026\n\n16.10.26   08:00-12:00   13:00-17:30   Total: 08:30\n\nTotal: 08:30\n",
		readHours(t, fs, s))

	// Removing the lunch break splits nothing and truncates the morning.
	out.Reset()
	err = s.apply(punch.Request{Date: oct16, Blocks: []string{"1130-13"}, Remove: true, Now: s.now}, false, &out)
	require.NoError(t, err)
	assert.Contains(t, readHours(t, fs, s), "16.10.26   08:00-11:30   13:00-17:30   Total: 08:00")
}

func TestApplyWithoutChangesDoesNotWrite(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 18, 0)

	var out bytes.Buffer
	require.NoError(t, s.apply(punch.Request{Date: oct16, Now: s.now}, false, &out))
	assert.Contains(t, out.String(), "Thu   01.10.26")

	exists, err := afero.Exists(fs, s.store.MonthPath(2026, time.October))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplyDryRun(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 18, 0)

	var out bytes.Buffer
	require.NoError(t, s.apply(punch.Request{Date: oct16, Blocks: []string{"9-17"}, Now: s.now}, true, &out))
	assert.Contains(t, out.String(), "09:00-17:00")

	exists, err := afero.Exists(fs, s.store.MonthPath(2026, time.October))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplyErrorWritesNothing(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 18, 0)

	var out bytes.Buffer
	err := s.apply(punch.Request{Date: oct16, Blocks: []string{"9-17", "17-9"}, Now: s.now}, false, &out)
	assert.True(t, errors.Is(err, perrors.ErrInvalidRange))
	assert.Empty(t, out.String())

	exists, err := afero.Exists(fs, s.store.MonthPath(2026, time.October))
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestApplyStorageFailure(t *testing.T) {
	s := testSession(t, afero.NewReadOnlyFs(afero.NewMemMapFs()), oct16, 18, 0)

	err := s.apply(punch.Request{Date: oct16, Blocks: []string{"9-17"}, Now: s.now}, false, &bytes.Buffer{})
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestStartStop(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 12, 45)

	at, err := s.start("830")
	require.NoError(t, err)
	assert.Equal(t, "08:30", at.Format("15:04"))
	assert.Contains(t, readHours(t, fs, s), "16.10.26   08:30-08:30   Total: 00:00")

	_, err = s.start("9")
	assert.True(t, errors.Is(err, perrors.ErrState), "punching in twice")

	b, err := s.stop(timeArg(nil), nil)
	require.NoError(t, err)
	assert.Equal(t, "08:30-12:45", b.String())
	assert.Contains(t, readHours(t, fs, s), "16.10.26   08:30-12:45   Total: 04:15")

	_, err = s.stop("13", nil)
	assert.True(t, errors.Is(err, perrors.ErrState), "punching out twice")
}

func TestStartInsideBlock(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 12, 45)
	require.NoError(t, s.apply(punch.Request{Date: oct16, Blocks: []string{"8-12"}, Now: s.now}, false, &bytes.Buffer{}))

	_, err := s.start("10")
	assert.True(t, errors.Is(err, perrors.ErrState))
}

func TestStopWithComment(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 17, 0)

	_, err := s.start("9")
	require.NoError(t, err)
	comment := "release day"
	_, err = s.stop("now", &comment)
	require.NoError(t, err)
	assert.Contains(t, readHours(t, fs, s), "16.10.26   09:00-17:00   Total: 08:00   release day")
}

func TestCommentsStayLoadable(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 17, 0)

	comment := "meeting\nnotes"
	err := s.apply(punch.Request{Date: oct16, Blocks: []string{"8-12"}, Comment: &comment, Now: s.now}, false, &bytes.Buffer{})
	assert.True(t, errors.Is(err, perrors.ErrUnparseable))

	_, err = s.start("9")
	require.NoError(t, err)
	_, err = s.stop("now", &comment)
	assert.True(t, errors.Is(err, perrors.ErrUnparseable))

	month, err := s.loadMonth()
	require.NoError(t, err)
	day, ok := month.Day(oct16)
	require.True(t, ok)
	assert.Nil(t, day.Comment)
	_, open := day.OngoingBlock()
	assert.True(t, open, "rejected stop leaves the block open")
}

func TestStatus(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := testSession(t, fs, oct16, 12, 0)

	require.NoError(t, s.apply(punch.Request{Date: oct16, Blocks: []string{"7-8", "9"}, Now: s.now}, false, &bytes.Buffer{}))

	var out bytes.Buffer
	require.NoError(t, s.status(&out))
	assert.Contains(t, out.String(), "Punched in:")
	assert.Contains(t, out.String(), "Since: 09:00")
	assert.Contains(t, out.String(), "Elapsed: 03:00:00")
	assert.Contains(t, out.String(), "16.10.26: 01:00 logged.")
	assert.Contains(t, out.String(), "October 2026: 01:00 logged.")
}

func TestStatusIdle(t *testing.T) {
	s := testSession(t, afero.NewMemMapFs(), oct16, 12, 0)

	var out bytes.Buffer
	require.NoError(t, s.status(&out))
	assert.Contains(t, out.String(), "Not punched in.")
	assert.Contains(t, out.String(), "16.10.26: 00:00 logged.")
}

func TestSelectedDayOutsideMonth(t *testing.T) {
	s := testSession(t, afero.NewMemMapFs(), oct16, 12, 0)
	s.sel.Month = time.September

	_, err := s.start("now")
	assert.True(t, errors.Is(err, perrors.ErrInvalidCalendar))
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 1, exitCode(perrors.Unparseablef("bad")))
	assert.Equal(t, 1, exitCode(perrors.Statef("bad")))
	assert.Equal(t, 1, exitCode(errors.New("unknown flag")))
	assert.Equal(t, 2, exitCode(perrors.Storage(errors.New("disk full"), "writing")))
}
