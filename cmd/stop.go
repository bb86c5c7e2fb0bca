package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/block"
	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/infer"
	"github.com/Tiliavir/punch/internal/punch"
)

var stopComment string

var stopCmd = &cobra.Command{
	Use:   "stop [time]",
	Short: "Punch out of the open block (default now)",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runStop,
}

func init() {
	stopCmd.Flags().StringVarP(&stopComment, "comment", "c", "", "Set the comment of the day")
}

func runStop(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	var comment *string
	if stopComment != "" {
		comment = &stopComment
	}

	b, err := s.stop(timeArg(args), comment)
	if err != nil {
		return err
	}

	elapsed := int64(b.Duration().Seconds())
	fmt.Fprintf(cmd.OutOrStdout(), "Punched out: %s. Elapsed: %s\n", b, formatElapsed(elapsed))
	return nil
}

func (s *session) stop(spec string, comment *string) (block.Block, error) {
	if comment != nil {
		if err := brf.ValidateComment(*comment); err != nil {
			return block.Block{}, err
		}
	}

	month, err := s.loadMonth()
	if err != nil {
		return block.Block{}, err
	}
	day, err := s.selectedDay(month)
	if err != nil {
		return block.Block{}, err
	}

	at, err := infer.Time(spec, day.Date, s.now)
	if err != nil {
		return block.Block{}, err
	}
	b, err := punch.PunchOut(day, at)
	if err != nil {
		return block.Block{}, err
	}
	if comment != nil {
		day.SetComment(*comment)
	}
	return b, s.save(month)
}

func formatElapsed(seconds int64) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	}
	if m > 0 {
		return fmt.Sprintf("%dm %ds", m, s)
	}
	return fmt.Sprintf("%ds", s)
}
