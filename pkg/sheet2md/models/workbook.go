// Package models defines the in-memory workbook used during one conversion.
package models

// Workbook is the ordered list of sheets read from a spreadsheet file.
type Workbook struct {
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds every sheet in workbook order.
	Sheets []Sheet `json:"sheets"`
}

// SheetNames returns the sheet names in workbook order.
func (w *Workbook) SheetNames() []string {
	names := make([]string, 0, len(w.Sheets))
	for _, s := range w.Sheets {
		names = append(names, s.Name)
	}
	return names
}
