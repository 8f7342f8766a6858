package lib

import (
	"fmt"
	"strings"
)

// ParseError is returned for any WKT that does not match the grammar. It
// points at the token where parsing stopped.
type ParseError struct {
	problem string
	pos     int
	line    int
	col     int
	str     string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("syntax error at line %d, col %d: %s\n%s\n%s^",
		e.line, e.col, e.problem, e.str, strings.Repeat(" ", e.col-1))
}

// Problem is the error message without position or source context.
func (e *ParseError) Problem() string {
	return e.problem
}

// Pos is the rune offset of the offending token in the input.
func (e *ParseError) Pos() int {
	return e.pos
}

// Line is the 1-based line of the offending token.
func (e *ParseError) Line() int {
	return e.line
}

// Col is the 1-based column of the offending token.
func (e *ParseError) Col() int {
	return e.col
}

func newParseError(source string, loc charLocation, problem string) *ParseError {
	return &ParseError{
		problem: problem,
		pos:     loc.offset,
		line:    loc.line,
		col:     loc.col,
		str:     sourceLine(source, loc.line),
	}
}

// sourceLine returns the given 1-based line of source, without its line
// terminator.
func sourceLine(source string, line int) string {
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[line-1], "\r")
}
