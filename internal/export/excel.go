package export

import (
	"fmt"
	"io"

	"outlands-pricer/internal/pricing"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

var header = []interface{}{"Item Name", "Average Price", "Amount"}

// BuildWorkbook lays the results out as a single table. The caller closes the file.
func BuildWorkbook(sheet string, rows []pricing.Result) (*excelize.File, error) {
	if sheet == "" {
		sheet = defaultSheet
	}

	f := excelize.NewFile()
	if sheet != defaultSheet {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to create sheet %q: %w", sheet, err)
		}
		f.SetActiveSheet(idx)
		if err := f.DeleteSheet(defaultSheet); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to drop default sheet: %w", err)
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			f.Close()
			return nil, err
		}
		row := []interface{}{r.Name, r.AveragePrice, r.Count}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			f.Close()
			return nil, fmt.Errorf("failed to write row %d: %w", i+2, err)
		}
	}

	return f, nil
}

// WriteExcel saves the table to path, replacing any existing file.
func WriteExcel(path, sheet string, rows []pricing.Result) error {
	f, err := BuildWorkbook(sheet, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// StreamExcel writes the workbook to w.
func StreamExcel(w io.Writer, sheet string, rows []pricing.Result) error {
	f, err := BuildWorkbook(sheet, rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("failed to stream workbook: %w", err)
	}
	return nil
}
