// Package spreadsheet serializes export sheets to xlsx workbooks. It
// owns the file mechanics only; row shapes come from core/export.
package spreadsheetsvc

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/mediaeduka/webramadhan/core/export"
)

// WriteSheet writes a single-sheet workbook to w: the header row first,
// then the data rows.
func WriteSheet(w io.Writer, sheet export.Sheet) error {
	f := excelize.NewFile()
	defaultSheet := f.GetSheetName(f.GetActiveSheetIndex())
	if defaultSheet != sheet.Name {
		f.SetSheetName(defaultSheet, sheet.Name)
	}

	if err := writeRow(f, sheet.Name, 1, toCells(sheet.Header)); err != nil {
		return err
	}
	for i, row := range sheet.Rows {
		if err := writeRow(f, sheet.Name, i+2, row); err != nil {
			return err
		}
	}

	if err := f.Write(w); err != nil {
		return errors.Wrap(err, "writing workbook")
	}
	return nil
}

func writeRow(f *excelize.File, sheetName string, rowNum int, cells []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, rowNum)
	if err != nil {
		return errors.Wrapf(err, "resolving cell for row %d", rowNum)
	}
	if err = f.SetSheetRow(sheetName, cell, &cells); err != nil {
		return errors.Wrapf(err, "writing row %d", rowNum)
	}
	return nil
}

func toCells(vals []string) []interface{} {
	cells := make([]interface{}, len(vals))
	for i, v := range vals {
		cells[i] = v
	}
	return cells
}
