package parser

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/ukaji3/sheet2md/pkg/sheet2md/models"
	"github.com/xuri/excelize/v2"
)

// LoadWorkbook opens the spreadsheet at path and reads every sheet in
// workbook order.
func LoadWorkbook(path string) (*models.Workbook, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	wb := &models.Workbook{
		BookName: filepath.Base(path),
	}

	for _, sheetName := range f.GetSheetList() {
		rows, err := ExtractRows(f, sheetName)
		if err != nil {
			return nil, fmt.Errorf("read sheet %q: %w", sheetName, err)
		}
		wb.Sheets = append(wb.Sheets, models.Sheet{
			Name: sheetName,
			Rows: rows,
		})
	}

	return wb, nil
}

// ExtractRows reads the formatted cell values of a sheet and returns them as
// a rectangular grid.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}
	return NormalizeRows(rows), nil
}

// ParseValue attempts to parse a string value as a number.
// Returns int64 for integers, float64 for decimals, or the original string.
func ParseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return s
}

// IsNumeric reports whether s parses as an integer or a decimal.
func IsNumeric(s string) bool {
	_, ok := ParseValue(s).(string)
	return !ok
}
