package model

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
)

// Parse decodes a universe from rows of '.' and '#', top row first.
// Trailing whitespace is ignored and every row must be as long as the first one.
func Parse(text string, boundary Boundary) (*Universe, error) {
	text = strings.TrimRightFunc(text, unicode.IsSpace)
	if text == "" {
		return NewEmpty(0, 0, boundary), nil
	}

	lines := strings.Split(text, "\n")
	columns := utf8.RuneCountInString(strings.TrimSuffix(lines[0], "\r"))
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if length := utf8.RuneCountInString(line); length != columns {
			return nil, errors.WithStack(&RowLengthMismatchError{Expected: columns, Actual: length})
		}
		lines[i] = line
	}

	if columns == 0 {
		return NewEmpty(0, 0, boundary), nil
	}

	items := make([]Cell, 0, columns*len(lines))
	for _, line := range lines {
		for _, r := range line {
			cell, err := ParseCell(r)
			if err != nil {
				return nil, err
			}
			items = append(items, cell)
		}
	}

	return &Universe{
		cells:    gridFromItems(columns, len(items)/columns, items),
		boundary: boundary,
	}, nil
}

// Render encodes the universe as one line per row, each terminated by '\n'
func (u *Universe) Render() string {
	columns := u.Columns()
	if columns == 0 {
		return ""
	}

	var b strings.Builder
	b.Grow((columns + 1) * u.Rows())
	for i, cell := range u.cells.items {
		b.WriteRune(cell.Rune())
		if (i+1)%columns == 0 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

func (u *Universe) String() string {
	return u.Render()
}
