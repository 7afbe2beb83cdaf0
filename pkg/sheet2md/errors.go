package sheet2md

import (
	"errors"
	"fmt"
)

// ErrInputNotFound indicates the input file does not exist.
var ErrInputNotFound = errors.New("input file not found")

// ErrInvalidFormat indicates the input file is not a readable workbook.
var ErrInvalidFormat = errors.New("invalid workbook format")

// ErrStructureMismatch indicates the assembled document does not read back
// with the workbook's sheet, row and column counts.
var ErrStructureMismatch = errors.New("document structure mismatch")

// Conversion stages reported by StageError.
const (
	StageLoad   = "load"
	StageVerify = "verify"
	StageWrite  = "write"
)

// StageError records which conversion step failed and on which file.
type StageError struct {
	Stage string // "load", "verify", "write"
	Path  string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a new StageError.
func NewStageError(stage, path string, err error) *StageError {
	return &StageError{
		Stage: stage,
		Path:  path,
		Err:   err,
	}
}
