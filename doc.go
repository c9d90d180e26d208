// Package mfreport produces a periodic report of annualized rolling returns
// for a catalog of mutual-fund share classes.
//
// The pipeline is small and deliberately sequential: a catalog of scheme
// codes (AMC → category → plan) drives one fetch of the published NAV
// history per share class, each history becomes a sorted date-indexed
// valuation series, two month-end reference dates are aligned against the
// series with as-of lookups, and the annualized return between the two
// observations fills one cell of the report.
//
// Failure is confined per item: a scheme with no code, an unreachable feed,
// or a history too sparse to cover the window leaves that one cell in the
// explicit "unavailable" state and the run carries on. Only two errors are
// fatal: a catalog that cannot be loaded (nothing to iterate) and a report
// that cannot be written (computed results must not be discarded silently).
//
// This package is the foundational logic for the `mfr` command-line tool;
// rendering to markdown and xlsx lives in the renderer subpackage.
package mfreport
