package parser

// NormalizeRows pads ragged rows to the width of the widest non-empty
// column and drops trailing rows that hold no data. Interior blank rows are
// kept so row positions match the sheet.
func NormalizeRows(rows [][]string) [][]string {
	maxRow, maxCol := findDataBounds(rows)
	if maxRow < 0 {
		return nil
	}

	width := maxCol + 1
	grid := make([][]string, 0, maxRow+1)
	for rowIdx := 0; rowIdx <= maxRow; rowIdx++ {
		row := make([]string, width)
		copy(row, rows[rowIdx])
		grid = append(grid, row)
	}
	return grid
}

// findDataBounds returns the last row and last column holding a non-empty
// cell, or -1, -1 when the grid is blank.
func findDataBounds(rows [][]string) (maxRow, maxCol int) {
	maxRow, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx > maxRow {
				maxRow = rowIdx
			}
			if colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}
