package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/infer"
	"github.com/Tiliavir/punch/internal/punch"
)

var startCmd = &cobra.Command{
	Use:   "start [time]",
	Short: "Punch in on the selected date (default now)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStart,
}

func runStart(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	at, err := s.start(timeArg(args))
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Punched in on %s at %s\n",
		s.sel.Date.In(time.Local).Format(brf.DateLayout), at.Format(brf.BlockLayout))
	return nil
}

func (s *session) start(spec string) (time.Time, error) {
	month, err := s.loadMonth()
	if err != nil {
		return time.Time{}, err
	}
	day, err := s.selectedDay(month)
	if err != nil {
		return time.Time{}, err
	}

	at, err := infer.Time(spec, day.Date, s.now)
	if err != nil {
		return time.Time{}, err
	}
	if _, err := punch.PunchIn(day, at); err != nil {
		return time.Time{}, err
	}
	return at, s.save(month)
}

// timeArg returns the optional time argument, defaulting to now.
func timeArg(args []string) string {
	if len(args) == 0 {
		return infer.Now
	}
	return args[0]
}
