package mfreport

import "github.com/mfreport/mfreport/date"

// ResolveWindow derives the rolling-return window from the current date:
// To is the last calendar day of the previous month and From the last day of
// the month before that. Both dates are strictly in the past, so the
// computation always operates on settled months rather than the current,
// possibly incomplete, one. It is a pure function, resolved once per run.
func ResolveWindow(today date.Date) date.Range {
	// Day zero of a month normalizes to the last day of the month before.
	end := date.New(today.Year(), today.Month(), 0)
	start := date.New(end.Year(), end.Month(), 0)
	return date.Range{From: start, To: end}
}
