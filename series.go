package mfreport

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/mfreport/mfreport/date"
)

// NavRecord is one raw row of a NAV history feed, both fields still text.
// The feed is not guaranteed clean, so nothing is parsed at this stage.
type NavRecord struct {
	Date string `json:"date"`
	Nav  string `json:"nav"`
}

// BuildSeries converts raw feed rows into a sorted per-unit valuation series.
// A row whose date or NAV fails to parse is dropped whole, never half-admitted,
// and negative NAVs are rejected outright. Duplicate dates keep the last row of
// the input. An empty series is a valid result; it surfaces later as an
// unavailable return, not as an error here.
func BuildSeries(records []NavRecord) *date.History[float64] {
	h := new(date.History[float64])
	for _, r := range records {
		on, err := date.ParseFeed(strings.TrimSpace(r.Date))
		if err != nil {
			continue
		}
		nav, err := decimal.NewFromString(strings.TrimSpace(r.Nav))
		if err != nil || nav.IsNegative() {
			continue
		}
		h.Append(on, nav.InexactFloat64())
	}
	return h
}
