package mfreport

import (
	"errors"
	"io"
	"log"
	"testing"

	"github.com/mfreport/mfreport/date"
)

// fakeFetcher serves canned NAV histories per scheme code.
type fakeFetcher struct {
	histories map[string][]NavRecord
	fails     map[string]error
	panics    map[string]bool
}

func (f *fakeFetcher) Fetch(code string) ([]NavRecord, error) {
	if f.panics[code] {
		panic("corrupt feed for " + code)
	}
	if err, ok := f.fails[code]; ok {
		return nil, err
	}
	records, ok := f.histories[code]
	if !ok {
		return nil, errors.New("unknown scheme " + code)
	}
	return records, nil
}

// goodHistory brackets the 2024-03-15 test window {2024-01-31, 2024-02-29}.
func goodHistory() []NavRecord {
	return []NavRecord{
		{Date: "31-01-2024", Nav: "100.0"},
		{Date: "29-02-2024", Nav: "110.0"},
	}
}

var testToday = date.New(2024, 3, 15)

func discard() *log.Logger { return log.New(io.Discard, "", 0) }

func TestBuildReportMergesPlansIntoOneRow(t *testing.T) {
	cat := &Catalog{AMCs: []AMC{{
		Name: "Alpha AMC",
		Categories: []Category{
			{Name: "Large Cap", Codes: map[Plan]string{Direct: "1"}}, // Regular not configured
		},
	}}}
	fetch := &fakeFetcher{histories: map[string][]NavRecord{"1": goodHistory()}}

	report := BuildReport(cat, fetch, testToday, discard())

	rows := report.Rows("Large Cap")
	if len(rows) != 1 {
		t.Fatalf("Rows() = %d rows want 1 (plans share a row)", len(rows))
	}
	row := rows[0]
	if row.AMC != "Alpha AMC" {
		t.Errorf("row.AMC = %q want \"Alpha AMC\"", row.AMC)
	}
	if !row.Returns[Direct].Valid() {
		t.Error("Direct return should be computed")
	}
	if row.Returns[Regular].Valid() {
		t.Error("Regular return should be unavailable (no scheme code)")
	}
}

func TestBuildReportIsolatesSingleFailure(t *testing.T) {
	// N schemes, one of which fails: the other N-1 results must be identical
	// to a run where nothing fails, and the run must complete.
	amcs := []AMC{
		{Name: "A", Categories: []Category{{Name: "Cap", Codes: map[Plan]string{Direct: "1", Regular: "2"}}}},
		{Name: "B", Categories: []Category{{Name: "Cap", Codes: map[Plan]string{Direct: "3", Regular: "4"}}}},
		{Name: "C", Categories: []Category{{Name: "Cap", Codes: map[Plan]string{Direct: "5", Regular: "6"}}}},
	}
	histories := map[string][]NavRecord{}
	for _, code := range []string{"1", "2", "3", "4", "5", "6"} {
		histories[code] = goodHistory()
	}

	clean := BuildReport(&Catalog{AMCs: amcs}, &fakeFetcher{histories: histories}, testToday, discard())
	broken := BuildReport(&Catalog{AMCs: amcs}, &fakeFetcher{
		histories: histories,
		fails:     map[string]error{"4": errors.New("HTTP 500")},
	}, testToday, discard())

	cleanRows, brokenRows := clean.Rows("Cap"), broken.Rows("Cap")
	if len(brokenRows) != len(cleanRows) {
		t.Fatalf("failing item changed row count: %d want %d", len(brokenRows), len(cleanRows))
	}
	for i := range cleanRows {
		for _, plan := range Plans {
			if brokenRows[i].AMC == "B" && plan == Regular {
				if brokenRows[i].Returns[plan].Valid() {
					t.Error("failing item should be unavailable")
				}
				continue
			}
			got, want := brokenRows[i].Returns[plan], cleanRows[i].Returns[plan]
			if got != want {
				t.Errorf("row %q plan %s changed by an unrelated failure: %v want %v", cleanRows[i].AMC, plan, got, want)
			}
		}
	}
}

func TestBuildReportSurvivesPanic(t *testing.T) {
	cat := &Catalog{AMCs: []AMC{{
		Name: "A",
		Categories: []Category{
			{Name: "Cap", Codes: map[Plan]string{Direct: "boom", Regular: "1"}},
		},
	}}}
	fetch := &fakeFetcher{
		histories: map[string][]NavRecord{"1": goodHistory()},
		panics:    map[string]bool{"boom": true},
	}

	report := BuildReport(cat, fetch, testToday, discard())

	row := report.Rows("Cap")[0]
	if row.Returns[Direct].Valid() {
		t.Error("panicking item should be unavailable")
	}
	if !row.Returns[Regular].Valid() {
		t.Error("sibling plan should still be computed after a panic")
	}
}

func TestBuildReportCategoryOrder(t *testing.T) {
	cat := &Catalog{AMCs: []AMC{
		{Name: "A", Categories: []Category{
			{Name: "Mid Cap", Codes: map[Plan]string{}},
			{Name: "Large Cap", Codes: map[Plan]string{}},
		}},
		{Name: "B", Categories: []Category{
			{Name: "Large Cap", Codes: map[Plan]string{}},
		}},
	}}
	report := BuildReport(cat, &fakeFetcher{}, testToday, discard())

	categories := report.Categories()
	if len(categories) != 2 || categories[0] != "Mid Cap" || categories[1] != "Large Cap" {
		t.Fatalf("Categories() = %v want [Mid Cap, Large Cap] (first-seen order)", categories)
	}
	rows := report.Rows("Large Cap")
	if len(rows) != 2 || rows[0].AMC != "A" || rows[1].AMC != "B" {
		t.Errorf("Large Cap rows = %v want [A, B] in catalog order", rows)
	}
	// Unconfigured plans still get a row with explicit unavailable cells.
	for _, plan := range Plans {
		if rows[0].Returns[plan].Valid() {
			t.Errorf("plan %s should be unavailable", plan)
		}
	}
}

func TestBuildReportWindowResolvedOnce(t *testing.T) {
	report := BuildReport(&Catalog{}, &fakeFetcher{}, testToday, discard())
	want := date.Range{From: date.New(2024, 1, 31), To: date.New(2024, 2, 29)}
	if report.Window != want {
		t.Errorf("report.Window = %v want %v", report.Window, want)
	}
	if got := report.Month(); got != "Feb-2024" {
		t.Errorf("report.Month() = %q want \"Feb-2024\"", got)
	}
}
