// Package types holds the player and spectator entities owned by the
// game, kept as a separate package from internal/game the same way the
// teacher separates its wire-level entities from its world owner.
package types

import (
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport"
)

// Player is a joined, named participant with a grid position and purse.
type Player struct {
	Letter     byte
	Name       string
	Endpoint   transport.Endpoint
	Y, X       int
	Purse      int
	Visible    *mapgrid.Bitmap
	Discovered *mapgrid.Bitmap
}

// NewPlayer constructs a player at (y, x) with empty visible/discovered
// bitmaps sized to the grid.
func NewPlayer(letter byte, name string, ep transport.Endpoint, y, x, height, width int) *Player {
	return &Player{
		Letter:     letter,
		Name:       name,
		Endpoint:   ep,
		Y:          y,
		X:          x,
		Visible:    mapgrid.NewBitmap(height, width),
		Discovered: mapgrid.NewBitmap(height, width),
	}
}

// Spectator is a passive observer with full visibility and no grid
// presence; purse and position are meaningless for it.
type Spectator struct {
	Endpoint transport.Endpoint
}

// NewSpectator constructs a spectator bound to ep.
func NewSpectator(ep transport.Endpoint) *Spectator {
	return &Spectator{Endpoint: ep}
}
