package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/model"
)

// Store keeps one hours file per month in a directory.
type Store struct {
	fs  afero.Fs
	dir string
	log logrus.FieldLogger
}

// New returns a store for dir on fs.
func New(fs afero.Fs, dir string, log logrus.FieldLogger) *Store {
	return &Store{fs: fs, dir: dir, log: log}
}

// Dir returns the hours directory.
func (s *Store) Dir() string {
	return s.dir
}

// MonthPath returns the file for year/month, e.g. hours/2026-3.txt.
func (s *Store) MonthPath(year int, month time.Month) string {
	return filepath.Join(s.dir, fmt.Sprintf("%d-%d.txt", year, int(month)))
}

// LoadMonth reads the file for year/month. A missing file yields an empty
// month.
func (s *Store) LoadMonth(year int, month time.Month) (*model.Month, error) {
	path := s.MonthPath(year, month)
	data, err := afero.ReadFile(s.fs, path)
	if os.IsNotExist(err) {
		s.log.WithField("path", path).Debug("no hours file yet")
		return model.NewMonth(year, month)
	}
	if err != nil {
		return nil, errors.Storage(err, "reading %s", path)
	}

	m, err := brf.ParseMonth(string(data), year, month)
	if err != nil {
		return nil, pkgerrors.Wrapf(err, "parsing %s", path)
	}
	s.log.WithFields(logrus.Fields{"path": path, "days": m.Len()}).Debug("loaded hours file")
	return m, nil
}

// EnsureDir creates the hours directory if it does not exist yet.
func (s *Store) EnsureDir() error {
	if err := s.fs.MkdirAll(s.dir, 0o755); err != nil {
		return errors.Storage(err, "creating %s", s.dir)
	}
	return nil
}

// SaveMonth writes m in file format, replacing the previous file atomically.
func (s *Store) SaveMonth(m *model.Month) error {
	if err := s.EnsureDir(); err != nil {
		return err
	}
	path := s.MonthPath(m.Year, m.Month)

	data := []byte(brf.FormatMonth(m, nil, brf.File) + "\n")

	// Atomic write: write to temp file then rename.
	tmpPath := path + ".tmp"
	if err := afero.WriteFile(s.fs, tmpPath, data, 0o644); err != nil {
		return errors.Storage(err, "writing %s", tmpPath)
	}
	if err := s.fs.Rename(tmpPath, path); err != nil {
		_ = s.fs.Remove(tmpPath)
		return errors.Storage(err, "replacing %s", path)
	}
	s.log.WithFields(logrus.Fields{"path": path, "days": m.Len()}).Debug("saved hours file")
	return nil
}
