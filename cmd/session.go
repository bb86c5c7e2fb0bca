package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Tiliavir/punch/internal/config"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/logger"
	"github.com/Tiliavir/punch/internal/model"
	"github.com/Tiliavir/punch/internal/storage"
	"github.com/Tiliavir/punch/internal/timecalc"
)

var (
	dryRun  bool
	verbose bool
)

// session bundles what a command run needs once flags are parsed.
type session struct {
	cfg   config.Config
	log   *logrus.Logger
	store *storage.Store
	now   time.Time
	sel   selection
}

func newSession(fs afero.Fs, now time.Time, logOut io.Writer) (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if verbose {
		cfg.LogLevel = logrus.DebugLevel.String()
	}
	log := logger.New(cfg.LogLevel, logOut)

	sel, err := resolveSelection(timecalc.Today(now), selectionFlags())
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"date":  sel.Date.String(),
		"month": fmt.Sprintf("%d-%02d", sel.Year, sel.Month),
		"hours": cfg.HoursDir,
	}).Debug("resolved selection")

	return &session{
		cfg:   cfg,
		log:   log,
		store: storage.New(fs, cfg.HoursDir, log),
		now:   now,
		sel:   sel,
	}, nil
}

func (s *session) loadMonth() (*model.Month, error) {
	return s.store.LoadMonth(s.sel.Year, s.sel.Month)
}

// selectedDay returns the selected date's day in month, creating it if
// needed. The date must lie in the month.
func (s *session) selectedDay(month *model.Month) (*model.Day, error) {
	if !month.Contains(s.sel.Date) {
		return nil, errors.InvalidCalendarf("%s is not in %s", s.sel.Date, month.Title())
	}
	return month.AddDay(s.sel.Date), nil
}

// save writes month unless this is a dry run.
func (s *session) save(month *model.Month) error {
	if dryRun {
		s.log.Debug("dry run, not saving")
		return nil
	}
	month.Cleanup()
	return s.store.SaveMonth(month)
}
