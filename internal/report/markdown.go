package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/torchastro/survcomp/internal/model"
)

// MarkdownWriter outputs a comparison summary in Markdown format.
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the comparison summary: run metadata, per-dataset totals,
// and one bin-count table per variable.
func (w *MarkdownWriter) Write(cmp *model.Comparison) (int, error) {
	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, cmp)
	w.writeTotals(md, cmp)
	for _, panel := range cmp.Panels {
		w.writePanel(md, panel)
	}

	return len(md.String()), md.Build()
}

// writeHeader writes the run identity table.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, cmp *model.Comparison) {
	md.H1("Survey comparison")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Variant", strconv.Itoa(cmp.Variant)},
			{"Survey suffix", cmp.Suffix.String()},
			{"Generated", cmp.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Panels", strconv.Itoa(len(cmp.Panels))},
		},
	})
	md.PlainText("")
}

// writeTotals writes one row per dataset per variable with entry counts.
func (w *MarkdownWriter) writeTotals(md *markdown.Markdown, cmp *model.Comparison) {
	md.H2("Totals")
	md.PlainText("")

	var rows [][]string
	for _, panel := range cmp.Panels {
		for _, s := range panel.Series {
			rows = append(rows, []string{
				panel.Variable.AxisLabel(),
				s.Label,
				strconv.Itoa(s.Entries),
				strconv.Itoa(s.InRange),
			})
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Variable", "Dataset", "Entries", "In range"},
		Rows:   rows,
	})
	md.PlainText("")
}

// writePanel writes the bin-count table of one variable.
func (w *MarkdownWriter) writePanel(md *markdown.Markdown, panel model.Panel) {
	md.H2(panel.Variable.AxisLabel())
	md.PlainText("")

	header := make([]string, 0, len(panel.Series)+1)
	header = append(header, "Bin")
	for _, s := range panel.Series {
		header = append(header, s.Label)
	}

	edges := panel.Variable.Edges
	rows := make([][]string, 0, panel.Variable.Bins())
	for i := 0; i < panel.Variable.Bins(); i++ {
		row := make([]string, 0, len(panel.Series)+1)
		row = append(row, fmt.Sprintf("[%g, %g)", edges[i], edges[i+1]))
		for _, s := range panel.Series {
			row = append(row, strconv.Itoa(s.Counts[i]))
		}
		rows = append(rows, row)
	}

	md.Table(markdown.TableSet{
		Header: header,
		Rows:   rows,
	})
	md.PlainText("")
}
