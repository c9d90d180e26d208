package renderer

import (
	"bytes"
	"fmt"

	"github.com/Rhymond/go-money"
	md "github.com/nao1215/markdown"
	"github.com/shopspring/decimal"

	"github.com/mfreport/mfreport/date"
)

// HistoryMarkdown renders the most recent 'last' observations of a NAV series
// as a markdown table. NAVs are per-unit rupee values.
func HistoryMarkdown(title string, series *date.History[float64], last int) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("NAV history for %s", title))
	doc.PlainText(fmt.Sprintf("%d published NAVs.", series.Len()))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
		},
		Header: []string{"Date", "NAV"},
		Rows:   [][]string{},
	}
	skip := series.Len() - last
	i := 0
	for day, nav := range series.Values() {
		if i >= skip {
			table.Rows = append(table.Rows, []string{day.String(), navString(nav)})
		}
		i++
	}
	doc.Table(table)

	return doc.String()
}

// navString formats a per-unit NAV as rupees.
func navString(nav float64) string {
	cur := money.GetCurrency(money.INR)
	// scale to the currency's minor unit before handing over to go-money.
	units := decimal.NewFromFloat(nav).Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(units, money.INR).Display()
}
