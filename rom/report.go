package rom

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Report summarizes an assembly or disassembly run.
type Report struct {
	Words    int       // Words successfully translated.
	Failures []ErrLine // Lines that were skipped or replaced.
}

// Ok is true if every line translated.
func (report *Report) Ok() bool {
	return len(report.Failures) == 0
}

// Render writes the report as a table.
func (report *Report) Render(output io.Writer) {
	tw := table.NewWriter()
	tw.SetOutputMirror(output)
	tw.SetTitle("%v", f("%v words, %v failures", report.Words, len(report.Failures)))
	tw.AppendHeader(table.Row{f("Line"), f("Source"), f("Error")})
	for _, failure := range report.Failures {
		tw.AppendRow(table.Row{failure.LineNo, failure.Line, failure.Err.Error()})
	}
	tw.Render()
}
