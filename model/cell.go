package model

import (
	"math/rand"

	"github.com/pkg/errors"
)

// Cell is the state of a single position in the universe
type Cell uint8

const (
	Dead Cell = iota
	Alive
)

const (
	deadRune  = '.'
	aliveRune = '#'
)

// RandomCell returns Alive with probability 0.5
func RandomCell(rng *rand.Rand) Cell {
	if rng.Intn(2) == 1 {
		return Alive
	}
	return Dead
}

// ParseCell decodes a single text character
func ParseCell(r rune) (Cell, error) {
	switch r {
	case deadRune:
		return Dead, nil
	case aliveRune:
		return Alive, nil
	default:
		return Dead, errors.WithStack(&InvalidCellCharacterError{Char: r})
	}
}

// Rune returns the text character for the cell
func (c Cell) Rune() rune {
	if c == Alive {
		return aliveRune
	}
	return deadRune
}

func (c Cell) String() string {
	return string(c.Rune())
}

// Value is 1 for Alive and 0 for Dead
func (c Cell) Value() int {
	return int(c)
}

// IsAlive reports whether the cell is alive
func (c Cell) IsAlive() bool {
	return c == Alive
}

func cellFromBool(alive bool) Cell {
	if alive {
		return Alive
	}
	return Dead
}
