package model

import "fmt"

// Coordinates address a position in a grid, x is the column and y the row
type Coordinates struct {
	X, Y int
}

func (c Coordinates) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// Grid is a fixed-size 2D container stored as a flat row-major slice
type Grid[T any] struct {
	columns int
	rows    int
	items   []T
}

// ToIndex maps coordinates to their position in the flat slice
func ToIndex(columns int, c Coordinates) int {
	return c.X + columns*c.Y
}

// ToCoordinates is the inverse of ToIndex for columns > 0
func ToCoordinates(columns, index int) Coordinates {
	return Coordinates{X: index % columns, Y: index / columns}
}

// NewGrid creates a grid by calling init once per position, x varying fastest
func NewGrid[T any](columns, rows int, init func(Coordinates) T) Grid[T] {
	if columns < 0 || rows < 0 {
		columns, rows = 0, 0
	}
	items := make([]T, columns*rows)
	for i := range items {
		items[i] = init(ToCoordinates(columns, i))
	}
	return Grid[T]{
		columns: columns,
		rows:    rows,
		items:   items,
	}
}

// gridFromItems takes ownership of items, len(items) must equal columns*rows
func gridFromItems[T any](columns, rows int, items []T) Grid[T] {
	return Grid[T]{
		columns: columns,
		rows:    rows,
		items:   items,
	}
}

// Columns returns the width of the grid
func (g Grid[T]) Columns() int {
	return g.columns
}

// Rows returns the height of the grid
func (g Grid[T]) Rows() int {
	return g.rows
}

// Len returns the number of stored items
func (g Grid[T]) Len() int {
	return len(g.items)
}

// Contains reports whether c lies inside the grid
func (g Grid[T]) Contains(c Coordinates) bool {
	return c.X >= 0 && c.X < g.columns && c.Y >= 0 && c.Y < g.rows
}

// Get returns the item at c, or false when c is out of range
func (g Grid[T]) Get(c Coordinates) (T, bool) {
	if !g.Contains(c) {
		var zero T
		return zero, false
	}
	return g.items[ToIndex(g.columns, c)], true
}

// Wrap normalises c onto the grid treating it as a torus
func (g Grid[T]) Wrap(c Coordinates) Coordinates {
	if g.columns == 0 || g.rows == 0 {
		return c
	}
	return Coordinates{X: mod(c.X, g.columns), Y: mod(c.Y, g.rows)}
}

// GetWrapping returns the item at c after wrapping it around the edges.
// It panics with *InternalConsistencyFault if the wrapped position is still out of range.
func (g Grid[T]) GetWrapping(c Coordinates) T {
	wrapped := g.Wrap(c)
	index := ToIndex(g.columns, wrapped)
	if !g.Contains(wrapped) || index >= len(g.items) {
		panic(&InternalConsistencyFault{Coordinates: c, Columns: g.columns, Rows: g.rows})
	}
	return g.items[index]
}

// mod is the mathematical modulo, always non-negative for n > 0
func mod(a, n int) int {
	return ((a % n) + n) % n
}
