package renderer

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/mfreport/mfreport"
)

// Workbook layout constants, one sheet per category with a thin padding row
// and column around the table.
const (
	headerFill       = "D7E4BC"
	paddingRowHeight = 6.0
	paddingColWidth  = 2.0
	minColWidth      = 8.0
)

// Columns of every category sheet, in order.
var columns = []string{"AMC", "Rolling Return - Direct", "Rolling Return - Regular"}

// plan column index within columns, keyed by plan.
var planColumn = map[mfreport.Plan]int{mfreport.Direct: 1, mfreport.Regular: 2}

// WriteXLSX renders the report as a styled workbook at path. Returns are
// written as fractions with a percent number format; unavailable returns are
// left blank, never written as 0%. A write failure here is fatal to the run:
// all computation is already done and must not be silently discarded.
func WriteXLSX(r *mfreport.Report, path string) error {
	f, err := workbook(r)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("cannot write report %q: %w", path, err)
	}
	return nil
}

// workbook builds the in-memory workbook for the report.
func workbook(r *mfreport.Report) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerFill}},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "top", WrapText: true},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create header style: %w", err)
	}
	percentStyle, err := f.NewStyle(&excelize.Style{
		NumFmt:    10, // built-in "0.00%"
		Alignment: &excelize.Alignment{Horizontal: "right"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create percent style: %w", err)
	}
	textStyle, err := f.NewStyle(&excelize.Style{
		Alignment: &excelize.Alignment{Horizontal: "left"},
		Border:    thinBorder(),
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create text style: %w", err)
	}

	for i, category := range r.Categories() {
		sheet := sheetName(category)
		if i == 0 {
			// Reuse the default sheet for the first category.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return nil, fmt.Errorf("sheet %q: %w", sheet, err)
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("sheet %q: %w", sheet, err)
		}

		// Padding row and column keep the table off the sheet edge.
		f.SetRowHeight(sheet, 1, paddingRowHeight)
		f.SetColWidth(sheet, "A", "A", paddingColWidth)

		// Track the widest display text per column for the final width fit.
		widths := make([]float64, len(columns))
		for c, name := range columns {
			cell, _ := excelize.CoordinatesToCellName(c+2, 2)
			f.SetCellValue(sheet, cell, name)
			f.SetCellStyle(sheet, cell, cell, headerStyle)
			widths[c] = float64(len(name))
		}

		for ri, row := range r.Rows(category) {
			amcCell, _ := excelize.CoordinatesToCellName(2, ri+3)
			f.SetCellValue(sheet, amcCell, row.AMC)
			f.SetCellStyle(sheet, amcCell, amcCell, textStyle)
			if w := float64(len(row.AMC)); w > widths[0] {
				widths[0] = w
			}

			for _, plan := range mfreport.Plans {
				col := planColumn[plan]
				cell, _ := excelize.CoordinatesToCellName(col+2, ri+3)
				ret := row.Returns[plan]
				if !ret.Valid() {
					// Blank cell, but still bordered like the rest of the table.
					f.SetCellStyle(sheet, cell, cell, textStyle)
					continue
				}
				f.SetCellValue(sheet, cell, ret.Value())
				f.SetCellStyle(sheet, cell, cell, percentStyle)
				if w := float64(len(ret.Percent().String())); w > widths[col] {
					widths[col] = w
				}
			}
		}

		for c := range columns {
			w := widths[c] + 2
			if w < minColWidth {
				w = minColWidth
			}
			name, _ := excelize.ColumnNumberToName(c + 2)
			f.SetColWidth(sheet, name, name, w)
		}
	}

	return f, nil
}

func thinBorder() []excelize.Border {
	return []excelize.Border{
		{Type: "left", Style: 1, Color: "000000"},
		{Type: "right", Style: 1, Color: "000000"},
		{Type: "top", Style: 1, Color: "000000"},
		{Type: "bottom", Style: 1, Color: "000000"},
	}
}

// sheetName makes a category name usable as a worksheet name: the characters
// xlsx forbids are replaced and the 31-character limit enforced.
func sheetName(category string) string {
	r := strings.NewReplacer(":", "-", "\\", "-", "/", "-", "?", "", "*", "", "[", "(", "]", ")")
	name := r.Replace(category)
	if len(name) > 31 {
		name = name[:31]
	}
	if name == "" {
		name = "Report"
	}
	return name
}
