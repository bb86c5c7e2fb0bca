package cmd

import (
	"io"
	"strconv"
	"time"

	"github.com/golang-sql/civil"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/model"
	"github.com/Tiliavir/punch/internal/timecalc"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Show the selected month's totals per ISO week",
	Args:  cobra.NoArgs,
	RunE:  runReport,
}

// weekTotal is one ISO week of a month, clipped to the month's dates.
type weekTotal struct {
	Label    string
	From, To civil.Date
	DaysWith int
	Total    time.Duration
}

func runReport(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	month, err := s.loadMonth()
	if err != nil {
		return err
	}
	renderReport(cmd.OutOrStdout(), month)
	return nil
}

// weekTotals splits month into its ISO weeks, the first and last clipped to
// the month's dates.
func weekTotals(month *model.Month) []weekTotal {
	first := civil.Date{Year: month.Year, Month: month.Month, Day: 1}
	last := first.AddDays(timecalc.DaysInMonth(month.Year, month.Month) - 1)

	var weeks []weekTotal
	for from := first; !from.After(last); {
		_, to := timecalc.WeekRange(from)
		if to.After(last) {
			to = last
		}

		w := weekTotal{Label: timecalc.ISOWeekLabel(from), From: from, To: to}
		for date := from; !date.After(to); date = date.AddDays(1) {
			d, ok := month.Day(date)
			if !ok {
				continue
			}
			if dur := d.Duration(); dur > 0 {
				w.DaysWith++
				w.Total += dur
			}
		}
		weeks = append(weeks, w)
		from = to.AddDays(1)
	}
	return weeks
}

func renderReport(out io.Writer, month *model.Month) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Week", "From", "To", "Days", "Total"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	for _, w := range weekTotals(month) {
		table.Append([]string{
			w.Label,
			w.From.In(time.Local).Format(brf.DateLayout),
			w.To.In(time.Local).Format(brf.DateLayout),
			strconv.Itoa(w.DaysWith),
			timecalc.FormatDuration(w.Total),
		})
	}
	table.SetFooter([]string{month.Title(), "", "", "", timecalc.FormatDuration(month.Duration())})
	table.Render()
}
