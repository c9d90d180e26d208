package mfreport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Plan identifies one of the two share classes published for a scheme.
type Plan string

const (
	Direct  Plan = "Direct"
	Regular Plan = "Regular"
)

// Plans lists the plans in report column order.
var Plans = []Plan{Direct, Regular}

// Category is one fund category within an AMC, with the scheme code per plan.
// A missing code means no share class is configured for that plan; that is an
// expected state, not an error.
type Category struct {
	Name  string
	Codes map[Plan]string
}

// Code returns the scheme code configured for a plan, if any.
func (c Category) Code(p Plan) (string, bool) {
	code, ok := c.Codes[p]
	return code, ok
}

// AMC is one asset-management company and its categories, in source order.
type AMC struct {
	Name       string
	Categories []Category
}

// Catalog is the full scheme-code catalog. Source order is preserved all the
// way to the rendered report, so two runs over the same catalog produce rows
// in the same order.
type Catalog struct {
	AMCs []AMC
}

// Items counts the (amc, category, plan) combinations a run will visit.
func (c *Catalog) Items() int {
	n := 0
	for _, amc := range c.AMCs {
		n += len(amc.Categories) * len(Plans)
	}
	return n
}

// LoadCatalog reads the scheme-code catalog from a file.
// There is no report without a catalog, so any error here is fatal to the run.
func LoadCatalog(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open catalog %q: %w", path, err)
	}
	defer f.Close()
	cat, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("cannot parse catalog %q: %w", path, err)
	}
	return cat, nil
}

// DecodeCatalog parses the catalog JSON, shaped as
//
//	{"AMC": {"Category": {"Direct": 120503, "Regular": "118989"}}}
//
// It walks the token stream rather than unmarshalling into maps so that the
// source key order survives into the report. Scheme codes may be JSON strings
// or numbers; both are normalized to strings. A null or missing plan entry
// means no code is configured.
func DecodeCatalog(r io.Reader) (*Catalog, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	cat := new(Catalog)
	for dec.More() {
		name, err := expectKey(dec)
		if err != nil {
			return nil, err
		}
		amc := AMC{Name: name}
		if err := expectDelim(dec, '{'); err != nil {
			return nil, fmt.Errorf("amc %q: %w", name, err)
		}
		for dec.More() {
			category, err := expectKey(dec)
			if err != nil {
				return nil, fmt.Errorf("amc %q: %w", name, err)
			}
			codes, err := decodeCodes(dec)
			if err != nil {
				return nil, fmt.Errorf("amc %q category %q: %w", name, category, err)
			}
			amc.Categories = append(amc.Categories, Category{Name: category, Codes: codes})
		}
		if err := expectDelim(dec, '}'); err != nil {
			return nil, fmt.Errorf("amc %q: %w", name, err)
		}
		cat.AMCs = append(cat.AMCs, amc)
	}
	if err := expectDelim(dec, '}'); err != nil {
		return nil, err
	}
	return cat, nil
}

// decodeCodes parses one plan object, like {"Direct": 120503, "Regular": null}.
func decodeCodes(dec *json.Decoder) (map[Plan]string, error) {
	if err := expectDelim(dec, '{'); err != nil {
		return nil, err
	}
	codes := make(map[Plan]string)
	for dec.More() {
		plan, err := expectKey(dec)
		if err != nil {
			return nil, err
		}
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		switch v := tok.(type) {
		case nil:
			// null: explicitly no code for this plan.
		case string:
			if v != "" {
				codes[Plan(plan)] = v
			}
		case json.Number:
			codes[Plan(plan)] = v.String()
		default:
			return nil, fmt.Errorf("plan %q: unexpected scheme code %v", plan, tok)
		}
	}
	return codes, expectDelim(dec, '}')
}

func expectDelim(dec *json.Decoder, d json.Delim) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok != d {
		return fmt.Errorf("unexpected token %v, want %q", tok, d)
	}
	return nil
}

func expectKey(dec *json.Decoder) (string, error) {
	tok, err := dec.Token()
	if err != nil {
		return "", err
	}
	key, ok := tok.(string)
	if !ok {
		return "", fmt.Errorf("unexpected token %v, want an object key", tok)
	}
	return key, nil
}
