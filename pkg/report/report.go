// Package report renders lint output as text.
package report

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/Sumatoshi-tech/linewidth/pkg/lint"
)

// FailureMessage follows the error description when a run is aborted.
const FailureMessage = "Failed to open that file."

// Printer writes findings and per-file summaries to w. It implements
// lint.Reporter.
type Printer struct {
	w       io.Writer
	palette Palette
}

// NewPrinter creates a Printer.
func NewPrinter(w io.Writer, palette Palette) *Printer {
	return &Printer{w: w, palette: palette}
}

// Finding prints the location and width of a long line followed by its text.
func (p *Printer) Finding(f lint.Finding) {
	fmt.Fprintf(p.w, "Line %s is too long: (%s characters)\n%s\n",
		p.palette.Location.Sprintf("%s:%d", f.Path, f.Line),
		p.palette.Width.Sprintf("%d", f.Width),
		p.palette.Source.Sprint(f.Text),
	)
}

// FileDone prints the error count of a finished file.
func (p *Printer) FileDone(r lint.FileResult) {
	fmt.Fprintf(p.w, "File '%s' has %d error(s)\n", r.Path, r.Errors)
}

// Failure prints the cause of an aborted run and the fixed failure message.
func (p *Printer) Failure(err error) {
	fmt.Fprintln(p.w, p.palette.Failure.Sprint(err.Error()))
	fmt.Fprintln(p.w, p.palette.Failure.Sprint(FailureMessage))
}

// Summary prints the table produced by SummaryTable.
func (p *Printer) Summary(res lint.Result) {
	fmt.Fprintln(p.w, SummaryTable(res))
}

// SummaryTable renders one row per file with its line count, error count and
// longest line, plus a totals footer.
func SummaryTable(res lint.Result) string {
	tbl := table.NewWriter()
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Options.SeparateRows = false
	tbl.Style().Options.DrawBorder = false

	tbl.AppendHeader(table.Row{"File", "Lines", "Errors", "Longest"})

	longest := 0

	for _, f := range res.Files {
		tbl.AppendRow(table.Row{
			f.Path,
			humanize.Comma(int64(f.Lines)),
			humanize.Comma(int64(f.Errors)),
			f.Longest,
		})

		longest = max(longest, f.Longest)
	}

	tbl.AppendFooter(table.Row{
		fmt.Sprintf("Total: %s files", humanize.Comma(int64(len(res.Files)))),
		humanize.Comma(int64(res.TotalLines())),
		humanize.Comma(int64(res.TotalErrors())),
		longest,
	})

	return tbl.Render()
}
