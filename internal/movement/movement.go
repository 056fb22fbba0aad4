// Package movement resolves a single grid step: which cell a player may
// move into, and what effect stepping onto it has (wall rejection, plain
// move, gold pickup, or a swap with another player).
package movement

import "github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"

// Direction is a unit step on the grid.
type Direction struct {
	DY, DX int
}

// directions maps each lowercase movement key to its step, following the
// keypad layout from spec.md §6.3:
//
//	y k u
//	h . l
//	b j n
var directions = map[byte]Direction{
	'h': {0, -1},
	'l': {0, 1},
	'k': {-1, 0},
	'j': {1, 0},
	'y': {-1, -1},
	'u': {-1, 1},
	'b': {1, -1},
	'n': {1, 1},
}

// Lookup resolves a keystroke to a direction and whether it requests a
// sprint (capital letter). ok is false for keys that are not movement
// keys at all (including 'Q'/'q', handled separately by the dispatcher).
func Lookup(key byte) (dir Direction, sprint bool, ok bool) {
	lower := key
	if key >= 'A' && key <= 'Z' {
		lower = key + ('a' - 'A')
		sprint = true
	}
	dir, ok = directions[lower]
	return dir, sprint, ok
}

// Outcome classifies the result of attempting one step.
type Outcome int

const (
	Rejected Outcome = iota
	Moved
	MovedOntoGold
	Swapped
)

// Result describes what happened to the grid as a consequence of a step.
type Result struct {
	Outcome      Outcome
	NewY, NewX   int
	SwappedWith  byte // other player's letter, Swapped only
	OtherNewY    int  // other player's new position (the mover's old cell), Swapped only
	OtherNewX    int
}

// Attempt tries to move letter from (fromY,fromX) to (toY,toX) on live,
// following spec.md §4.3's per-target-cell table. live is mutated in
// place on any outcome but Rejected.
func Attempt(live *mapgrid.LiveGrid, letter byte, fromY, fromX, toY, toX int) Result {
	target := live.At(toY, toX)

	if other, isPlayer := live.IsPlayer(toY, toX); isPlayer {
		live.Set(toY, toX, letter)
		live.Set(fromY, fromX, other)
		return Result{
			Outcome:     Swapped,
			NewY:        toY,
			NewX:        toX,
			SwappedWith: other,
			OtherNewY:   fromY,
			OtherNewX:   fromX,
		}
	}

	switch target {
	case mapgrid.CellFloor, mapgrid.CellPassage:
		live.Set(toY, toX, letter)
		live.Restore(fromY, fromX)
		return Result{Outcome: Moved, NewY: toY, NewX: toX}
	case mapgrid.CellGold:
		live.Set(toY, toX, letter)
		live.Restore(fromY, fromX)
		return Result{Outcome: MovedOntoGold, NewY: toY, NewX: toX}
	default:
		return Result{Outcome: Rejected}
	}
}
