package domain

import "strconv"

// Position tags a parsed value with the place it was read from.
// Line and Column are 1-based. A zero Line means the position is unknown.
type Position struct {
	Source InternedString
	Line   int
	Column int
}

// NewPosition creates a Position for the given source name.
func NewPosition(source string, line, column int) *Position {
	return &Position{
		Source: NewInternedString(source),
		Line:   line,
		Column: column,
	}
}

// String renders the position as source:line:column.
func (p *Position) String() string {
	if p == nil {
		return ""
	}
	s := p.Source.String()
	if p.Line == 0 {
		return s
	}
	s += ":" + strconv.Itoa(p.Line)
	if p.Column > 0 {
		s += ":" + strconv.Itoa(p.Column)
	}
	return s
}

// Clone returns a copy of the position. A nil position clones to nil.
func (p *Position) Clone() *Position {
	if p == nil {
		return nil
	}
	c := *p
	return &c
}
