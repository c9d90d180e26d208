package mfreport

import (
	"strings"
	"testing"
)

const catalogJSON = `{
  "Zeta AMC": {
    "Large Cap": {"Direct": 120503, "Regular": "118989"},
    "Flexi Cap": {"Direct": "120662"}
  },
  "Alpha AMC": {
    "Large Cap": {"Regular": 100356, "Direct": null}
  }
}`

func TestDecodeCatalogPreservesOrder(t *testing.T) {
	cat, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatalf("DecodeCatalog() unexpected error: %v", err)
	}

	// Source order matters for report determinism: "Zeta" stays before
	// "Alpha" even though a map would iterate them any which way.
	if len(cat.AMCs) != 2 || cat.AMCs[0].Name != "Zeta AMC" || cat.AMCs[1].Name != "Alpha AMC" {
		t.Fatalf("DecodeCatalog() AMC order = %v want [Zeta AMC, Alpha AMC]", cat.AMCs)
	}
	zeta := cat.AMCs[0]
	if len(zeta.Categories) != 2 || zeta.Categories[0].Name != "Large Cap" || zeta.Categories[1].Name != "Flexi Cap" {
		t.Fatalf("category order = %v want [Large Cap, Flexi Cap]", zeta.Categories)
	}
}

func TestDecodeCatalogCodes(t *testing.T) {
	cat, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatalf("DecodeCatalog() unexpected error: %v", err)
	}

	// Numeric and string codes are both normalized to strings.
	if code, ok := cat.AMCs[0].Categories[0].Code(Direct); !ok || code != "120503" {
		t.Errorf("Zeta/Large Cap/Direct = %q, %v want \"120503\", true", code, ok)
	}
	if code, ok := cat.AMCs[0].Categories[0].Code(Regular); !ok || code != "118989" {
		t.Errorf("Zeta/Large Cap/Regular = %q, %v want \"118989\", true", code, ok)
	}
	// Missing plan key and explicit null both mean "no code configured".
	if _, ok := cat.AMCs[0].Categories[1].Code(Regular); ok {
		t.Error("Zeta/Flexi Cap/Regular: missing key should report no code")
	}
	if _, ok := cat.AMCs[1].Categories[0].Code(Direct); ok {
		t.Error("Alpha/Large Cap/Direct: null should report no code")
	}
}

func TestDecodeCatalogErrors(t *testing.T) {
	bad := []string{
		``,
		`[]`,
		`{"AMC": []}`,
		`{"AMC": {"Cat": {"Direct": true}}}`,
		`{"AMC": {"Cat": {"Direct": 1}`, // truncated
	}
	for _, in := range bad {
		if _, err := DecodeCatalog(strings.NewReader(in)); err == nil {
			t.Errorf("DecodeCatalog(%q) expected an error", in)
		}
	}
}

func TestCatalogItems(t *testing.T) {
	cat, err := DecodeCatalog(strings.NewReader(catalogJSON))
	if err != nil {
		t.Fatalf("DecodeCatalog() unexpected error: %v", err)
	}
	// 3 categories, 2 plans each, whether or not a code is configured.
	if got := cat.Items(); got != 6 {
		t.Errorf("Items() = %d want 6", got)
	}
}
