package mfreport

import (
	"fmt"
	"log"

	"github.com/mfreport/mfreport/date"
)

// BuildReport iterates the whole catalog and computes one rolling return per
// (AMC, category, plan). The reference window is resolved once from 'today'
// and reused for every item.
//
// Failure isolation is the central property here: a missing scheme code is a
// logged skip, and any fetch, parse or compute failure is confined to its own
// cell as an unavailable return. The run always visits the full catalog; one
// bad feed never aborts the report for the other funds.
func BuildReport(catalog *Catalog, fetch Fetcher, today date.Date, logger *log.Logger) *Report {
	window := ResolveWindow(today)
	report := NewReport(window)

	total := catalog.Items()
	task := 0
	for _, amc := range catalog.AMCs {
		logger.Printf("Processing AMC: %s", amc.Name)
		for _, category := range amc.Categories {
			row := report.Row(category.Name, amc.Name)
			for _, plan := range Plans {
				task++
				code, ok := category.Code(plan)
				if !ok {
					logger.Printf("[%d/%d] %s - %s - %s: no scheme code, skipping", task, total, amc.Name, category.Name, plan)
					row.Returns[plan] = Unavailable()
					continue
				}
				logger.Printf("[%d/%d] Fetching %s - %s - %s (code=%s) ...", task, total, amc.Name, category.Name, plan, code)
				ret, err := itemReturn(fetch, code, window)
				row.Returns[plan] = ret
				switch {
				case err != nil:
					logger.Printf("[%d/%d] ERROR fetching %s - %s - %s (code=%s): %v", task, total, amc.Name, category.Name, plan, code, err)
				case !ret.Valid():
					logger.Printf("[%d/%d] %s - %s - %s: insufficient NAV history for the window", task, total, amc.Name, category.Name, plan)
				default:
					logger.Printf("[%d/%d] %s - %s - %s: RR=%.6f", task, total, amc.Name, category.Name, plan, ret.Value())
				}
			}
		}
	}
	return report
}

// itemReturn runs the fetch-parse-compute pipeline for a single scheme and
// never lets a failure escape the item: errors are returned alongside the
// unavailable result, and a panic out of unexpectedly malformed data is
// converted into one.
func itemReturn(fetch Fetcher, code string, window date.Range) (ret Return, err error) {
	defer func() {
		if r := recover(); r != nil {
			ret, err = Unavailable(), fmt.Errorf("scheme %s: %v", code, r)
		}
	}()
	records, err := fetch.Fetch(code)
	if err != nil {
		return Unavailable(), err
	}
	return RollingReturn(BuildSeries(records), window), nil
}
