package mfreport

import (
	"fmt"

	"github.com/mfreport/mfreport/date"
)

// daysPerYear is the linear annualization factor applied to the elapsed days
// between the two as-of observations.
const daysPerYear = 365.0

// Percent is a percentage for display: Percent(12.34) renders as "12.34%".
type Percent float64

func (p Percent) Equal(q Percent) bool {
	// it has to be compared with some precision
	const precision = 0.0001
	diff := p - q
	if diff < 0 {
		diff = -diff
	}
	return diff < precision
}

func (p Percent) String() string {
	return fmt.Sprintf("%.2f%%", float64(p))
}

func (p Percent) SignedString() string {
	return fmt.Sprintf("%+.2f%%", float64(p))
}

// Return is an annualized rolling return, or the explicit absence of one.
// The zero value is "unavailable". No NaN or Inf ever stands in for absence:
// the renderer relies on the distinction to leave cells blank instead of
// writing a misleading figure.
type Return struct {
	value float64
	valid bool
}

// Unavailable returns the explicit "no result" marker.
func Unavailable() Return { return Return{} }

// NewReturn wraps an annualized return expressed as a fraction (0.1 is +10% a year).
func NewReturn(v float64) Return { return Return{value: v, valid: true} }

// Valid reports whether a return was computed.
func (r Return) Valid() bool { return r.valid }

// Value returns the annualized return as a fraction. Only meaningful when Valid.
func (r Return) Value() float64 { return r.value }

// Percent returns the return scaled for display.
func (r Return) Percent() Percent { return Percent(100 * r.value) }

// String renders the return for tables: "-" when unavailable.
func (r Return) String() string {
	if !r.valid {
		return "-"
	}
	return r.Percent().SignedString()
}

// RollingReturn computes the annualized return between the two as-of
// observations bracketing the window. Every degenerate input maps to the
// unavailable result rather than an error or a crash:
//   - either as-of lookup absent (series empty, or starts after the window),
//   - zero or negative elapsed days between the two observations,
//   - a zero starting NAV (division guard).
//
// The annualization scales by the actual elapsed days between the two
// observations, not the nominal window length, because feeds may have gaps
// around month boundaries.
func RollingReturn(series *date.History[float64], window date.Range) Return {
	t0, nav0, ok0 := series.AsOf(window.From)
	t1, nav1, ok1 := series.AsOf(window.To)
	if !ok0 || !ok1 {
		return Unavailable()
	}
	days := t1.Sub(t0)
	if days <= 0 || nav0 == 0 {
		return Unavailable()
	}
	return NewReturn((nav1 - nav0) / nav0 * (daysPerYear / float64(days)))
}
