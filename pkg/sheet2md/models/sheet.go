package models

// Sheet is one named grid of cell values.
type Sheet struct {
	// Name is the sheet name, unique within a workbook.
	Name string `json:"name"`
	// Rows holds the cell values, row 0 being the header row.
	// Every row has the same length.
	Rows [][]string `json:"rows,omitempty"`
}

// Width returns the number of columns in the sheet.
func (s Sheet) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// Height returns the number of rows, header included.
func (s Sheet) Height() int {
	return len(s.Rows)
}
