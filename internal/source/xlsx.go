// Package source owns the input boundary: it materializes a workbook
// sheet into a roster table before any row processing starts. Failures
// here are fatal to the run, unlike row-level problems downstream.
package source

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	appLog "classfeed/internal/log"
	"classfeed/internal/roster"
)

// LoadWorkbook reads the named sheet (or the first sheet when name is
// empty) into a Table. Cells are read raw so native date and time
// cells surface as Excel serial numbers for the roster coercers.
func LoadWorkbook(path, sheet string) (*roster.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("open workbook %s: %w", path, err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheet, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("sheet %q has no header row", sheet)
	}

	table := &roster.Table{
		Headers: rows[0],
		Rows:    rows[1:],
	}
	appLog.Info("workbook loaded", "path", path, "sheet", sheet, "rows", len(table.Rows))
	appLog.Debug("detected headers", "headers", fmt.Sprintf("%q", table.Headers))
	return table, nil
}
