package lamda

import (
	"fmt"
	"strings"
	"unicode"
)

// ErrorKind identifies one of the structural failures Parse can report.
// The set is closed: cross-section consistency problems (mismatched
// rate-row lengths, dangling level references) are intentionally not
// part of the validated surface.
type ErrorKind int

const (
	NotEnoughInput ErrorKind = iota
	WrongCommentFormat
	MissingField
	NotAFloat
	NotAnInteger
	UnknownItem
	UnknownCollisionPartner
)

var errorKindNames = map[ErrorKind]string{
	NotEnoughInput:          "NotEnoughInput",
	WrongCommentFormat:      "WrongCommentFormat",
	MissingField:            "MissingField",
	NotAFloat:               "NotAFloat",
	NotAnInteger:            "NotAnInteger",
	UnknownItem:             "UnknownItem",
	UnknownCollisionPartner: "UnknownCollisionPartner",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return "Unknown"
}

// ParseError is the first structural problem found in a document. It
// carries everything needed to re-render the diagnostic without
// re-reading the source.
type ParseError struct {
	Kind       ErrorKind
	LineNumber int    // 1-based, counting every physical line
	Line       string // offending line, verbatim
	Column     int    // UnknownItem: byte offset of the bad literal
	ValueWidth int    // UnknownItem: byte length of the bad literal
	Note       string
}

func (e *ParseError) Error() string {
	if e.Kind == NotEnoughInput {
		return fmt.Sprintf("line %d: not enough input", e.LineNumber)
	}
	return fmt.Sprintf("line %d: %s", e.LineNumber, e.Note)
}

// gutterWidth is the fixed width of the line-number gutter in rendered
// annotations. It is part of the stable output contract.
const gutterWidth = 6

// Span returns the caret geometry of the diagnostic: the 0-based column
// where the marker starts and its width, both in bytes of the
// tab-expanded line.
func (e *ParseError) Span() (column, width int) {
	switch e.Kind {
	case NotEnoughInput:
		return 0, gutterWidth
	case WrongCommentFormat:
		return 0, 1
	case MissingField:
		// One past the end of the visible text.
		return len(e.expandedLine()) + 1, gutterWidth
	case NotAFloat, NotAnInteger:
		return 0, len(e.expandedLine())
	case UnknownItem:
		return e.Column, e.ValueWidth
	case UnknownCollisionPartner:
		line := e.expandedLine()
		column := strings.IndexFunc(line, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		})
		if column < 0 {
			column = 0
		}
		width := 0
		if fields := strings.Fields(line); len(fields) > 0 {
			width = len(fields[0])
		}
		return column, width
	}
	return 0, 0
}

// Annotate renders the three-line compiler-style diagnostic:
//
//	12 | 9 O + H
//	   | ^
//	   = Unknown collision partner id (...).
//
// Tabs are expanded to single spaces before any offset math so the
// caret lines up with the printed text.
func (e *ParseError) Annotate() string {
	var b strings.Builder
	if e.Kind == NotEnoughInput {
		fmt.Fprintf(&b, "%*d |\n", gutterWidth, e.LineNumber)
		fmt.Fprintf(&b, "%*s | %s\n", gutterWidth, "", marker(gutterWidth))
		fmt.Fprintf(&b, "%*s = Line %d is empty, but there should be more input.\n",
			gutterWidth, "", e.LineNumber)
		return b.String()
	}
	column, width := e.Span()
	fmt.Fprintf(&b, "%*d | %s\n", gutterWidth, e.LineNumber, e.expandedLine())
	fmt.Fprintf(&b, "%*s | %s%s\n", gutterWidth, "", strings.Repeat(" ", column), marker(width))
	fmt.Fprintf(&b, "%*s = %s.\n", gutterWidth, "", e.Note)
	return b.String()
}

func (e *ParseError) expandedLine() string {
	return strings.ReplaceAll(e.Line, "\t", " ")
}

// marker is a run of caret characters, at least one.
func marker(width int) string {
	if width < 1 {
		width = 1
	}
	return strings.Repeat("^", width)
}

func errNotEnoughInput(lineNumber int) *ParseError {
	return &ParseError{Kind: NotEnoughInput, LineNumber: lineNumber}
}

func errWrongComment(l line) *ParseError {
	return &ParseError{
		Kind:       WrongCommentFormat,
		LineNumber: l.number,
		Line:       l.text,
		Note:       "Comment should begin with `!` character",
	}
}

func errNotAFloat(l line) *ParseError {
	return &ParseError{
		Kind:       NotAFloat,
		LineNumber: l.number,
		Line:       l.text,
		Note:       "Expected floating point number",
	}
}

func errNotAnInteger(l line) *ParseError {
	return &ParseError{
		Kind:       NotAnInteger,
		LineNumber: l.number,
		Line:       l.text,
		Note:       "Expected integer",
	}
}

func errUnknownPartner(l line) *ParseError {
	return &ParseError{
		Kind:       UnknownCollisionPartner,
		LineNumber: l.number,
		Line:       l.text,
		Note:       "Unknown collision partner id (1=H2, 2=para-H2, 3=ortho-H2, 4=electrons, 5=H, 6=He, 7=H+)",
	}
}
