package model

import (
	"context"
	"crypto/md5"
	"fmt"
	"math/rand"
	"runtime"
	"slices"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// neighbourOffsets lists the eight surrounding positions, top row first
var neighbourOffsets = [8]Coordinates{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// Universe is one immutable generation of the game.
// Step never modifies the receiver, it returns a new Universe backed by a new Grid.
type Universe struct {
	cells    Grid[Cell]
	boundary Boundary
}

// NewEmpty creates a universe with every cell dead
func NewEmpty(columns, rows int, boundary Boundary) *Universe {
	return &Universe{
		cells:    NewGrid(columns, rows, func(Coordinates) Cell { return Dead }),
		boundary: boundary,
	}
}

// NewRandom creates a universe where every cell is independently alive with probability 0.5
func NewRandom(columns, rows int, boundary Boundary, rng *rand.Rand) *Universe {
	return &Universe{
		cells:    NewGrid(columns, rows, func(Coordinates) Cell { return RandomCell(rng) }),
		boundary: boundary,
	}
}

// Columns returns the width of the universe
func (u *Universe) Columns() int {
	return u.cells.Columns()
}

// Rows returns the height of the universe
func (u *Universe) Rows() int {
	return u.cells.Rows()
}

// Boundary returns the neighbour policy the universe was built with
func (u *Universe) Boundary() Boundary {
	return u.boundary
}

// Cell returns the state at c, out of range positions are Dead
func (u *Universe) Cell(c Coordinates) Cell {
	cell, _ := u.cells.Get(c)
	return cell
}

// CountLiveNeighbours returns the number of live cells around c, in [0, 8]
func (u *Universe) CountLiveNeighbours(c Coordinates) int {
	if u.boundary == Toroidal {
		return u.countWrapping(c)
	}

	count := 0
	for _, offset := range neighbourOffsets {
		if cell, ok := u.cells.Get(Coordinates{X: c.X + offset.X, Y: c.Y + offset.Y}); ok {
			count += cell.Value()
		}
	}
	return count
}

// countWrapping counts every distinct wrapped neighbour once and never the cell itself,
// so grids narrower than three cells do not see the same neighbour twice
func (u *Universe) countWrapping(c Coordinates) int {
	var (
		self  = u.cells.Wrap(c)
		seen  [len(neighbourOffsets)]Coordinates
		n     int
		count int
	)

	for _, offset := range neighbourOffsets {
		neighbour := u.cells.Wrap(Coordinates{X: c.X + offset.X, Y: c.Y + offset.Y})
		if neighbour == self || slices.Contains(seen[:n], neighbour) {
			continue
		}
		seen[n] = neighbour
		n++
		count += u.cells.GetWrapping(neighbour).Value()
	}
	return count
}

// GetNewState returns the state of c in the next generation
func (u *Universe) GetNewState(c Coordinates) Cell {
	return cellFromBool(rules.Conway(u.Cell(c).IsAlive(), u.CountLiveNeighbours(c)))
}

// Step calculates the next generation
func (u *Universe) Step() *Universe {
	return &Universe{
		cells:    NewGrid(u.Columns(), u.Rows(), u.GetNewState),
		boundary: u.boundary,
	}
}

// StepParallel calculates the next generation with rows split across workers.
// The result is identical to Step. workers <= 0 uses one worker per CPU.
func (u *Universe) StepParallel(ctx context.Context, workers int) (*Universe, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		columns       = u.Columns()
		rows          = u.Rows()
		items         = make([]Cell, columns*rows)
		rowsPerWorker = (rows + workers - 1) / workers // Ceiling division
	)

	eg, ctx := errgroup.WithContext(ctx)
	for i := range workers {
		var (
			startRow = i * rowsPerWorker
			endRow   = min(startRow+rowsPerWorker, rows)
		)
		if startRow >= rows {
			break
		}

		eg.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					fault, ok := r.(*InternalConsistencyFault)
					if !ok {
						panic(r)
					}
					err = errors.WithStack(fault)
				}
			}()

			for y := startRow; y < endRow; y++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				for x := 0; x < columns; x++ {
					c := Coordinates{X: x, Y: y}
					items[ToIndex(columns, c)] = u.GetNewState(c)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, errors.Wrap(err, "[StepParallel] failed to calculate next generation")
	}

	return &Universe{
		cells:    gridFromItems(columns, rows, items),
		boundary: u.boundary,
	}, nil
}

// Population returns the number of living cells
func (u *Universe) Population() (count int) {
	for _, cell := range u.cells.items {
		count += cell.Value()
	}
	return
}

// Hash returns an MD5 digest of the dimensions and cell states
func (u *Universe) Hash() string {
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", u.Columns(), u.Rows())
	buf := make([]byte, len(u.cells.items))
	for i, cell := range u.cells.items {
		buf[i] = byte(cell)
	}
	h.Write(buf)
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Equal reports whether both universes have the same dimensions and cells.
// The boundary policy is not part of the comparison.
func (u *Universe) Equal(other *Universe) bool {
	if other == nil {
		return false
	}
	return u.Columns() == other.Columns() &&
		u.Rows() == other.Rows() &&
		slices.Equal(u.cells.items, other.cells.items)
}
