// Package sheet2md converts every sheet of a workbook into one Markdown
// document.
package sheet2md

const (
	// DefaultInputPath is the workbook read when no input is given.
	DefaultInputPath = "Meme_Token_Rating_Model_V0 1.xlsx"
	// DefaultOutputPath is the Markdown file written when no output is given.
	DefaultOutputPath = "converted_markdown.md"
	// DefaultHeadingPrefix precedes the sheet name in each section heading.
	DefaultHeadingPrefix = "工作表："
)

// Options configures a conversion run.
type Options struct {
	// InputPath is the workbook to read.
	InputPath string
	// OutputPath is the Markdown file to create or overwrite.
	OutputPath string
	// HeadingPrefix precedes the sheet name in each heading.
	// If nil, DefaultHeadingPrefix is used.
	HeadingPrefix *string
	// Verify re-parses the assembled document before writing it and fails
	// when its structure differs from the workbook.
	Verify bool
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		InputPath:  DefaultInputPath,
		OutputPath: DefaultOutputPath,
	}
}

// Heading returns the section heading text for a sheet.
func (o Options) Heading(sheetName string) string {
	if o.HeadingPrefix != nil {
		return *o.HeadingPrefix + sheetName
	}
	return DefaultHeadingPrefix + sheetName
}
