package mfreport

import (
	"testing"

	"github.com/mfreport/mfreport/date"
)

func TestBuildSeriesFiltersAndSorts(t *testing.T) {
	records := []NavRecord{
		{Date: "29-02-2024", Nav: "110.0"},
		{Date: "not-a-date", Nav: "50.0"},  // bad date: dropped whole
		{Date: "31-01-2024", Nav: "1O0.0"}, // bad nav: dropped whole
		{Date: "31-01-2024", Nav: "100.0"},
		{Date: "15-01-2024", Nav: "-3.0"}, // negative nav: dropped
		{Date: "01-02-2024", Nav: " 105.5 "},
	}

	s := BuildSeries(records)
	if s.Len() != 3 {
		t.Fatalf("BuildSeries().Len() = %d want 3", s.Len())
	}

	// Survivors must come out sorted by date.
	want := []struct {
		day date.Date
		nav float64
	}{
		{date.New(2024, 1, 31), 100.0},
		{date.New(2024, 2, 1), 105.5},
		{date.New(2024, 2, 29), 110.0},
	}
	i := 0
	for day, nav := range s.Values() {
		if day != want[i].day || nav != want[i].nav {
			t.Errorf("series[%d] = (%v, %v) want (%v, %v)", i, day, nav, want[i].day, want[i].nav)
		}
		i++
	}
}

func TestBuildSeriesEmptyInput(t *testing.T) {
	if s := BuildSeries(nil); s.Len() != 0 {
		t.Errorf("BuildSeries(nil).Len() = %d want 0", s.Len())
	}
	// Entirely unparseable input is not an error either, just an empty series.
	s := BuildSeries([]NavRecord{{Date: "", Nav: ""}, {Date: "zz", Nav: "yy"}})
	if s.Len() != 0 {
		t.Errorf("BuildSeries(unparseable).Len() = %d want 0", s.Len())
	}
}

func TestBuildSeriesDuplicateDateLastWins(t *testing.T) {
	s := BuildSeries([]NavRecord{
		{Date: "31-01-2024", Nav: "100.0"},
		{Date: "31-01-2024", Nav: "101.0"},
	})
	if s.Len() != 1 {
		t.Fatalf("BuildSeries().Len() = %d want 1", s.Len())
	}
	if nav, ok := s.Get(date.New(2024, 1, 31)); !ok || nav != 101.0 {
		t.Errorf("duplicate date = %v, %v want 101.0, true", nav, ok)
	}
}
