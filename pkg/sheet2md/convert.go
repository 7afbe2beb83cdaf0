package sheet2md

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/ukaji3/sheet2md/pkg/sheet2md/markdown"
	"github.com/ukaji3/sheet2md/pkg/sheet2md/models"
	"github.com/ukaji3/sheet2md/pkg/sheet2md/output"
	"github.com/ukaji3/sheet2md/pkg/sheet2md/parser"
)

// Result summarises a successful conversion.
type Result struct {
	// OutputPath is the file that was written.
	OutputPath string
	// Sheets is the number of sheets rendered.
	Sheets int
	// Bytes is the size of the written document.
	Bytes int
}

// Convert reads the workbook, renders every sheet and writes the combined
// document. The output file is not touched unless every earlier step
// succeeded.
func Convert(opts Options) (*Result, error) {
	wb, err := Load(opts.InputPath)
	if err != nil {
		return nil, err
	}

	doc := Assemble(wb, opts)

	if opts.Verify {
		if err := Verify(wb, doc); err != nil {
			return nil, NewStageError(StageVerify, opts.OutputPath, err)
		}
	}

	if err := output.WriteFile(opts.OutputPath, []byte(doc)); err != nil {
		return nil, NewStageError(StageWrite, opts.OutputPath, err)
	}

	return &Result{
		OutputPath: opts.OutputPath,
		Sheets:     len(wb.Sheets),
		Bytes:      len(doc),
	}, nil
}

// Load reads the workbook at path, classifying open failures.
func Load(path string) (*models.Workbook, error) {
	wb, err := parser.LoadWorkbook(path)
	if err == nil {
		return wb, nil
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		err = fmt.Errorf("%w: %w", ErrInputNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		// unreadable; the OS error already says so
	default:
		err = fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	return nil, NewStageError(StageLoad, path, err)
}

// Assemble builds the document: for each sheet in order a level-2 heading,
// a blank line, the table and a trailing blank line. A workbook without
// sheets yields the empty string.
func Assemble(wb *models.Workbook, opts Options) string {
	var b strings.Builder
	for _, sheet := range wb.Sheets {
		b.WriteString(strings.Repeat("#", markdown.SectionLevel))
		b.WriteString(" ")
		b.WriteString(opts.Heading(sheet.Name))
		b.WriteString("\n\n")
		b.WriteString(markdown.RenderTable(sheet.Rows))
		b.WriteString("\n\n")
	}
	return b.String()
}

// Verify parses doc back and checks it has one section per sheet with the
// sheet's row and column counts.
func Verify(wb *models.Workbook, doc string) error {
	sections, err := markdown.ParseDocument([]byte(doc))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStructureMismatch, err)
	}

	if len(sections) != len(wb.Sheets) {
		return fmt.Errorf("%w: %d sections for %d sheets", ErrStructureMismatch, len(sections), len(wb.Sheets))
	}

	for i, sheet := range wb.Sheets {
		got := sections[i]
		if len(got.Rows) != sheet.Height() || got.Width() != sheet.Width() {
			return fmt.Errorf("%w: sheet %q has %dx%d cells, document has %dx%d",
				ErrStructureMismatch, sheet.Name,
				sheet.Height(), sheet.Width(), len(got.Rows), got.Width())
		}
	}
	return nil
}
