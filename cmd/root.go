package cmd

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/punch"
)

var (
	punchRemove       bool
	punchComment      string
	punchClearComment bool
	punchEdit         bool
	punchBRF          bool
)

var rootCmd = &cobra.Command{
	Use:   "punch [blocks...]",
	Short: "Punch card for worked hours",
	Long: `punch records worked time blocks per day, one plain text file per month.

Blocks are written as from-to ("8-1230", "13:00-17:15"). A single time
("830", "now") opens a block, a second one closes it. Without blocks the
selected month is shown.`,
	Example: `  punch 8-12 1230-17      add two blocks today
  punch -y -r 12-1230     remove a lunch break yesterday
  punch -d 3 -c "sick"    comment on the 3rd of this month
  punch -p                show last month`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPunch,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(exitCode(err))
	}
}

// exitCode is 2 when the hours files could not be read or written and 1 for
// everything the user can fix on the command line.
func exitCode(err error) int {
	if errors.KindOf(err) == errors.KindStorage {
		return 2
	}
	return 1
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&selDay, "day", "d", "", "Select a date: d[.m[.y]], relative to the selected month")
	pf.BoolVarP(&selYesterday, "yesterday", "y", false, "Select yesterday")
	pf.StringVarP(&selMonth, "month", "m", "", "Select a month: m[.y]")
	pf.BoolVarP(&selPrevious, "previous", "p", false, "Select the previous month")
	pf.BoolVarP(&selNext, "next", "n", false, "Select the next month")
	pf.BoolVar(&dryRun, "dry-run", false, "Show the result without writing it")
	pf.BoolVarP(&verbose, "verbose", "v", false, "Log debug output to stderr")
	rootCmd.MarkFlagsMutuallyExclusive("previous", "next")

	f := rootCmd.Flags()
	f.BoolVarP(&punchRemove, "remove", "r", false, "Remove the given blocks instead of adding them")
	f.StringVarP(&punchComment, "comment", "c", "", "Set the comment of the selected date")
	f.BoolVar(&punchClearComment, "clear-comment", false, "Clear the comment of the selected date")
	f.BoolVarP(&punchEdit, "edit", "e", false, "Open the month file in $EDITOR")
	f.BoolVar(&punchBRF, "brf", false, "Open the hours directory")
	rootCmd.MarkFlagsMutuallyExclusive("edit", "brf")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
}

func runPunch(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	switch {
	case punchEdit:
		return s.edit()
	case punchBRF:
		return s.openHoursDir()
	}

	req := punch.Request{
		Date:         s.sel.Date,
		Blocks:       args,
		Remove:       punchRemove,
		ClearComment: punchClearComment,
		Now:          s.now,
	}
	if cmd.Flags().Changed("comment") {
		comment := punchComment
		req.Comment = &comment
	}
	return s.apply(req, dryRun, cmd.OutOrStdout())
}

// apply applies req to the selected month, saves it if anything changed and
// prints the month.
func (s *session) apply(req punch.Request, dryRun bool, out io.Writer) error {
	month, err := s.loadMonth()
	if err != nil {
		return err
	}

	marks, err := punch.Apply(month, req, s.log)
	if err != nil {
		return err
	}

	if marks.HasModifications() && !dryRun {
		month.Cleanup()
		if err := s.store.SaveMonth(month); err != nil {
			return err
		}
	}

	fmt.Fprintln(out, brf.FormatMonth(month, marks, brf.Term))
	return nil
}

// edit opens the selected month's file in the configured editor.
func (s *session) edit() error {
	if err := s.store.EnsureDir(); err != nil {
		return err
	}
	editor := strings.Fields(s.cfg.Editor)
	if len(editor) == 0 {
		return errors.Statef("no editor configured, set $EDITOR")
	}

	path := s.store.MonthPath(s.sel.Year, s.sel.Month)
	c := exec.Command(editor[0], append(editor[1:], path)...)
	c.Stdin, c.Stdout, c.Stderr = os.Stdin, os.Stdout, os.Stderr
	s.log.WithField("path", path).Debug("opening editor")
	if err := c.Run(); err != nil {
		return errors.Storage(err, "running %s", s.cfg.Editor)
	}
	return nil
}

// openHoursDir shows the hours directory in the platform's file browser.
func (s *session) openHoursDir() error {
	if err := s.store.EnsureDir(); err != nil {
		return err
	}
	c := exec.Command(s.cfg.Opener, s.store.Dir())
	s.log.WithField("dir", s.store.Dir()).Debug("opening hours directory")
	if err := c.Run(); err != nil {
		return errors.Storage(err, "running %s", s.cfg.Opener)
	}
	return nil
}
