package bench

import (
	"io"

	"github.com/xuri/excelize/v2"
)

// Sheet names written by XLSXRenderer.
const (
	SheetMedians = "Medians"
	SheetGrowth  = "Growth"
)

// XLSXRenderer writes a workbook with two sheets: Medians (the CSV layout,
// numeric cells) and Growth (fitted exponents and R² per algorithm).
type XLSXRenderer struct {
	Metric Metric
}

func (xr XLSXRenderer) Write(w io.Writer, r *Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetMedians); err != nil {
		return err
	}
	header := []any{"n"}
	for _, key := range r.Config.Algorithms {
		header = append(header, label(key)+" ("+xr.Metric.String()+")")
	}
	if err := setRow(f, SheetMedians, 1, header); err != nil {
		return err
	}
	for i, row := range r.Rows {
		vals := []any{row.N}
		for _, key := range r.Config.Algorithms {
			var v any
			for _, c := range row.Cells {
				if c.Algorithm == key {
					v = c.Get(xr.Metric).Median
				}
			}
			vals = append(vals, v)
		}
		if err := setRow(f, SheetMedians, i+2, vals); err != nil {
			return err
		}
	}

	if _, err := f.NewSheet(SheetGrowth); err != nil {
		return err
	}
	if err := setRow(f, SheetGrowth, 1, []any{
		"algorithm", "comparisons exponent", "comparisons r2", "writes exponent", "writes r2",
	}); err != nil {
		return err
	}
	for i, g := range r.Growth {
		if err := setRow(f, SheetGrowth, i+2, []any{
			label(g.Algorithm), g.Comparisons.Exponent, g.Comparisons.R2, g.Writes.Exponent, g.Writes.R2,
		}); err != nil {
			return err
		}
	}

	return f.Write(w)
}

// setRow writes vals into row (1-based) starting at column A. Nil values
// leave the cell empty.
func setRow(f *excelize.File, sheet string, row int, vals []any) error {
	for i, v := range vals {
		if v == nil {
			continue
		}
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}

	return nil
}
