// Package renderer turns reports into their published forms: markdown for the
// terminal and a styled xlsx workbook for distribution.
package renderer

import (
	"bytes"
	"fmt"

	md "github.com/nao1215/markdown"

	"github.com/mfreport/mfreport"
)

// ReportMarkdown renders the rolling-returns report as one markdown table per
// category. Unavailable returns render as "-", never as a zero.
func ReportMarkdown(r *mfreport.Report) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Rolling Returns %s", r.Month()))
	doc.PlainText(fmt.Sprintf("Window %s to %s, annualized over the elapsed days between the as-of NAVs.", r.Window.From, r.Window.To))

	for _, category := range r.Categories() {
		doc.H2(category)
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"AMC", "Rolling Return - Direct", "Rolling Return - Regular"},
			Rows:   [][]string{},
		}
		for _, row := range r.Rows(category) {
			table.Rows = append(table.Rows, []string{
				row.AMC,
				row.Returns[mfreport.Direct].String(),
				row.Returns[mfreport.Regular].String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
