// Package export serializes generated datasets. The CSV layout is the
// downstream contract: header user_id,group,metric, one line per row, metric
// values untouched (full-precision floats, bare 0/1, raw labels).
package export

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/xuri/excelize/v2"

	"synthgen/domain/dataset"
)

// Header is the fixed CSV/XLSX column layout.
var Header = []string{"user_id", "group", "metric"}

// WriteCSVTo streams the dataset as CSV.
func WriteCSVTo(w io.Writer, ds *dataset.Dataset) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(Header); err != nil {
		return err
	}
	for _, row := range ds.Rows {
		record := []string{strconv.Itoa(row.UserID), row.Group, row.Metric.String()}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSV writes the dataset to a CSV file.
func WriteCSV(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return WriteCSVTo(f, ds)
}

// WriteXLSX writes the dataset to an Excel workbook.
func WriteXLSX(path string, ds *dataset.Dataset) error {
	f := excelize.NewFile()

	// Ensure Sheet1 exists and is active.
	sheet := "Sheet1"
	if idx, err := f.GetSheetIndex(sheet); err != nil || idx == -1 {
		idx, err := f.NewSheet(sheet)
		if err != nil {
			return err
		}
		f.SetActiveSheet(idx)
	}

	for i, h := range Header {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}

	for r, row := range ds.Rows {
		rowIdx := r + 2
		cells := []interface{}{row.UserID, row.Group, xlsxMetric(row.Metric)}
		for c, v := range cells {
			cell, _ := excelize.CoordinatesToCellName(c+1, rowIdx)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
	}

	return f.SaveAs(path)
}

func xlsxMetric(v dataset.Value) interface{} {
	switch v.Type {
	case dataset.ValueNumeric:
		return v.Num
	case dataset.ValueBinary:
		return int(v.Num)
	default:
		return v.Label
	}
}
