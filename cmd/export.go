package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/punch/internal/brf"
	"github.com/Tiliavir/punch/internal/errors"
	"github.com/Tiliavir/punch/internal/model"
)

var exportFormat string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the selected month's blocks to stdout",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "csv", "Output format: csv, json, md")
}

// exportRow is one block of a month.
type exportRow struct {
	Date    string  `json:"date"`
	From    string  `json:"from,omitempty"`
	To      string  `json:"to,omitempty"`
	Minutes int64   `json:"duration_minutes"`
	Comment *string `json:"comment,omitempty"`
	Ongoing bool    `json:"ongoing,omitempty"`
}

func runExport(cmd *cobra.Command, args []string) error {
	s, err := newSession(afero.NewOsFs(), time.Now(), cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	month, err := s.loadMonth()
	if err != nil {
		return err
	}
	return writeExport(cmd.OutOrStdout(), exportFormat, exportRows(month))
}

func writeExport(out io.Writer, format string, rows []exportRow) error {
	switch format {
	case "json":
		return writeJSON(out, rows)
	case "md":
		writeMarkdown(out, rows)
	case "csv":
		writeCSV(out, rows)
	default:
		return errors.Unparseablef("unknown export format %q, want csv, json or md", format)
	}
	return nil
}

// exportRows lists every block of month in date order. A day's comment is
// repeated on each of its blocks; a commented day without blocks gets a row
// of its own.
func exportRows(month *model.Month) []exportRow {
	var rows []exportRow
	for _, d := range month.SortedDays() {
		date := d.Date.String()
		blocks := d.Blocks.Blocks()
		if len(blocks) == 0 {
			rows = append(rows, exportRow{Date: date, Comment: d.Comment})
			continue
		}
		for _, b := range blocks {
			row := exportRow{
				Date:    date,
				From:    b.From.Format(brf.BlockLayout),
				Minutes: int64(b.Duration().Minutes()),
				Comment: d.Comment,
				Ongoing: b.IsOngoing(),
			}
			if !b.IsOngoing() {
				row.To = b.To.Format(brf.BlockLayout)
			}
			rows = append(rows, row)
		}
	}
	return rows
}

func writeJSON(out io.Writer, rows []exportRow) error {
	if rows == nil {
		rows = []exportRow{}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}

func writeMarkdown(out io.Writer, rows []exportRow) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Date", "From", "To", "Minutes", "Comment"})
	table.SetAutoFormatHeaders(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoWrapText(false)
	for _, r := range rows {
		table.Append([]string{r.Date, r.From, r.To, strconv.FormatInt(r.Minutes, 10), deref(r.Comment)})
	}
	table.Render()
}

func writeCSV(out io.Writer, rows []exportRow) {
	fmt.Fprintln(out, "date,from,to,duration_minutes,comment")
	for _, r := range rows {
		fmt.Fprintf(out, "%s,%s,%s,%d,%s\n",
			csvEscape(r.Date),
			csvEscape(r.From),
			csvEscape(r.To),
			r.Minutes,
			csvEscape(deref(r.Comment)),
		)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// csvEscape wraps a field in quotes if it contains a comma, quote, or newline.
func csvEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
