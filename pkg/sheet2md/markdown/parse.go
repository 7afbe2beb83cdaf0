package markdown

import (
	"errors"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// SectionLevel is the heading level that opens a sheet section.
const SectionLevel = 2

// ErrTableWithoutHeading is returned when a table appears before the first
// section heading.
var ErrTableWithoutHeading = errors.New("table without section heading")

// Section is one level-2 heading and the table that follows it.
type Section struct {
	// Heading is the plain text of the heading line.
	Heading string
	// Rows holds the table cells, header first. Nil when the section has no table.
	Rows [][]string
}

// Width returns the number of columns in the section table.
func (s Section) Width() int {
	if len(s.Rows) == 0 {
		return 0
	}
	return len(s.Rows[0])
}

// ParseDocument reads a document made of level-2 headings each followed by
// at most one pipe table.
func ParseDocument(doc []byte) ([]Section, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.Table))
	root := md.Parser().Parse(text.NewReader(doc))

	var sections []Section
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		switch node := n.(type) {
		case *ast.Heading:
			if node.Level != SectionLevel {
				continue
			}
			sections = append(sections, Section{Heading: inlineText(node, doc)})
		case *extast.Table:
			if len(sections) == 0 {
				return nil, ErrTableWithoutHeading
			}
			sections[len(sections)-1].Rows = tableRows(node, doc)
		}
	}
	return sections, nil
}

func tableRows(table *extast.Table, src []byte) [][]string {
	var rows [][]string
	for r := table.FirstChild(); r != nil; r = r.NextSibling() {
		var row []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			if _, ok := c.(*extast.TableCell); ok {
				row = append(row, inlineText(c, src))
			}
		}
		rows = append(rows, row)
	}
	return rows
}

// inlineText flattens inline children to plain text. A <br> tag reads back
// as a newline.
func inlineText(n ast.Node, src []byte) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteString("\n")
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.RawHTML:
			var raw strings.Builder
			for i := 0; i < node.Segments.Len(); i++ {
				seg := node.Segments.At(i)
				raw.Write(seg.Value(src))
			}
			if strings.EqualFold(raw.String(), "<br>") {
				b.WriteString("\n")
			} else {
				b.WriteString(raw.String())
			}
		case *ast.AutoLink:
			b.Write(node.Label(src))
		default:
			b.WriteString(inlineText(c, src))
		}
	}
	return strings.TrimSpace(b.String())
}
