package mfreport

import "github.com/mfreport/mfreport/date"

// Row is one report line: an AMC and its per-plan rolling returns.
// Direct and Regular share the one row for a given (AMC, category) pair.
type Row struct {
	AMC     string
	Returns map[Plan]Return
}

// Report accumulates rolling-return rows grouped by category.
// Categories and rows appear in catalog order and are append-only: nothing is
// removed or rewritten once added, so a failed item can never disturb the
// rows of any other item.
type Report struct {
	Window     date.Range
	categories []string
	rows       map[string][]*Row
}

// NewReport returns an empty report for the given reference window.
func NewReport(window date.Range) *Report {
	return &Report{Window: window, rows: make(map[string][]*Row)}
}

// Month returns the label of the month the report covers, like "Jan-2024".
func (r *Report) Month() string { return r.Window.To.Format("Jan-2006") }

// Categories returns the category names in catalog order.
func (r *Report) Categories() []string { return r.categories }

// Rows returns the rows of a category in catalog order.
func (r *Report) Rows(category string) []*Row { return r.rows[category] }

// Row finds or appends the row for an (AMC, category) pair.
func (r *Report) Row(category, amc string) *Row {
	if _, ok := r.rows[category]; !ok {
		r.categories = append(r.categories, category)
	}
	for _, row := range r.rows[category] {
		if row.AMC == amc {
			return row
		}
	}
	row := &Row{AMC: amc, Returns: make(map[Plan]Return)}
	r.rows[category] = append(r.rows[category], row)
	return row
}
