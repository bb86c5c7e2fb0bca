package logger

import (
	"io"

	"github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. An unknown level falls back to
// warn and is reported once.
func New(level string, w io.Writer) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(w)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		log.SetLevel(logrus.WarnLevel)
		log.WithField("level", level).Warn("unknown log level, using warn")
		return log
	}
	log.SetLevel(lvl)
	return log
}
