// Package mapgrid loads and represents the static map and the per-game
// live overlay derived from it.
package mapgrid

import (
	"bufio"
	"fmt"
	"os"
)

// Cell characters recognized in a map file, per the wire/display grammar.
const (
	CellCorner  = '+'
	CellHoriz   = '-'
	CellVert    = '|'
	CellFloor   = '.'
	CellPassage = '#'
	CellGold    = '*'
	CellEmpty   = ' '
)

// Grid is the immutable terrain loaded from a map file: walls, rooms,
// corridors and passages. It never changes once loaded.
type Grid struct {
	Height int
	Width  int
	cells  [][]byte
}

// Load reads a rectangular map from path. Every row must be exactly the
// same length and use only terrain characters (' ', '-', '|', '+', '.',
// '#'); ragged files and any other character are rejected.
func Load(path string) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("mapgrid: open %s: %w", path, err)
	}
	defer f.Close()

	var rows [][]byte
	width := -1
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Bytes()
		row := make([]byte, len(line))
		copy(row, line)
		if width == -1 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("mapgrid: %s: ragged row %d (want %d bytes, got %d)", path, len(rows)+1, width, len(row))
		}
		for i, c := range row {
			switch c {
			case CellEmpty, CellHoriz, CellVert, CellCorner, CellFloor, CellPassage:
			default:
				return nil, fmt.Errorf("mapgrid: %s: row %d column %d: invalid map character %q", path, len(rows)+1, i+1, c)
			}
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("mapgrid: read %s: %w", path, err)
	}
	if len(rows) == 0 || width <= 0 {
		return nil, fmt.Errorf("mapgrid: %s: empty map", path)
	}

	return &Grid{Height: len(rows), Width: width, cells: rows}, nil
}

// InBounds reports whether (y, x) is a valid coordinate in the grid.
func (g *Grid) InBounds(y, x int) bool {
	return y >= 0 && y < g.Height && x >= 0 && x < g.Width
}

// At returns the terrain character at (y, x). Out-of-bounds coordinates
// return a space, the same as an unseen cell.
func (g *Grid) At(y, x int) byte {
	if !g.InBounds(y, x) {
		return CellEmpty
	}
	return g.cells[y][x]
}

// IsFloor reports whether (y, x) is room floor ('.'): the only terrain a
// gold pile or a newly joined player may be placed on.
func (g *Grid) IsFloor(y, x int) bool {
	return g.At(y, x) == CellFloor
}

// Traversable reports whether a player may step onto (y, x): room floor
// or a corridor passage. Passages are traversable but still block sight.
func (g *Grid) Traversable(y, x int) bool {
	c := g.At(y, x)
	return c == CellFloor || c == CellPassage
}

// BlocksSight reports whether (y, x) interrupts a line of sight. Only
// room floor ('.') is transparent; passages block sight even though a
// player may walk through them, so visibility cannot propagate down a
// corridor.
func (g *Grid) BlocksSight(y, x int) bool {
	if !g.InBounds(y, x) {
		return true
	}
	return g.cells[y][x] != CellFloor
}
