package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/timecalc"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the open block and the selected date's total",
	Args:  cobra.NoArgs,
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	return s.status(cmd.OutOrStdout())
}

func (s *session) status(out io.Writer) error {
	month, err := s.loadMonth()
	if err != nil {
		return err
	}
	day, err := s.selectedDay(month)
	if err != nil {
		return err
	}
	date := s.sel.Date.In(time.Local).Format(brf.DateLayout)

	if open, ok := day.OngoingBlock(); ok {
		fmt.Fprintln(out, "Punched in:")
		fmt.Fprintf(out, "  Since: %s\n", open.From.Format(brf.BlockLayout))
		if timecalc.SameDay(open.From, s.now) && s.now.After(open.From) {
			elapsed := int64(s.now.Sub(open.From).Seconds())
			fmt.Fprintf(out, "  Elapsed: %s\n", timecalc.FormatDurationHHMMSS(elapsed))
		}
	} else {
		fmt.Fprintln(out, "Not punched in.")
	}

	fmt.Fprintf(out, "%s: %s logged.\n", date, timecalc.FormatDuration(day.Duration()))
	if day.Comment != nil {
		fmt.Fprintf(out, "  Comment: %s\n", *day.Comment)
	}
	fmt.Fprintf(out, "%s: %s logged.\n", month.Title(), timecalc.FormatDuration(month.Duration()))
	return nil
}
