// Package game holds the single authoritative game: base and live maps,
// the gold pile sequence, and the joined players and spectator. It is
// mutated only by the dispatcher's event loop — see internal/server —
// so none of its methods take a lock.
package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/gold"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/movement"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/systems"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/types"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/username"
)

// ErrEmptyName is returned by Join when the supplied name is blank.
var ErrEmptyName = errors.New("game: player name is empty")

// ErrGameFull is returned by Join once 26 players have already joined.
var ErrGameFull = errors.New("game: no more players can join")

const maxLetters = 26

// Game is the singleton world state.
type Game struct {
	Base *mapgrid.Grid
	Live *mapgrid.LiveGrid

	piles *gold.Piles

	players   map[byte]*types.Player
	order     []byte
	spectator *types.Spectator

	maxNameLength int
	rng           gold.Source
}

// New loads gold onto base's live overlay and returns a ready-to-play
// Game. rng drives both pile-count/value generation and placement.
func New(base *mapgrid.Grid, rng gold.Source, maxNameLength int) *Game {
	live := mapgrid.NewLiveGrid(base)
	values := gold.GeneratePiles(rng)
	gold.Place(live, rng, len(values))

	return &Game{
		Base:          base,
		Live:          live,
		piles:         &gold.Piles{Values: values},
		players:       make(map[byte]*types.Player),
		maxNameLength: maxNameLength,
		rng:           rng,
	}
}

// NewWithPiles builds a Game from an explicit pile-value sequence and
// coordinates instead of random generation, one gold marker per value.
// Integration tests outside this package (e.g. internal/server's
// dispatcher tests) use this to drive a game to gold_remaining == 0 in a
// handful of deterministic moves instead of exhausting a real
// 10-30-pile random distribution.
func NewWithPiles(base *mapgrid.Grid, rng gold.Source, maxNameLength int, pileValues []int, pileCoords [][2]int) *Game {
	live := mapgrid.NewLiveGrid(base)
	for _, c := range pileCoords {
		live.Set(c[0], c[1], mapgrid.CellGold)
	}

	return &Game{
		Base:          base,
		Live:          live,
		piles:         &gold.Piles{Values: pileValues},
		players:       make(map[byte]*types.Player),
		maxNameLength: maxNameLength,
		rng:           rng,
	}
}

// NumPlayers returns the number of players currently joined.
func (g *Game) NumPlayers() int { return len(g.order) }

// GoldRemaining returns the total gold value not yet collected.
func (g *Game) GoldRemaining() int { return g.piles.Remaining() }

// Join admits a new player under name, assigning the next letter in join
// order and placing them on a uniformly random floor cell. If that cell
// holds a gold pile, it is awarded immediately, matching the same
// accounting rule movement uses.
func (g *Game) Join(name string, ep transport.Endpoint) (*types.Player, error) {
	if username.IsEmpty(name) {
		return nil, ErrEmptyName
	}
	if len(g.order) >= maxLetters {
		return nil, ErrGameFull
	}

	normalized := username.Normalize(name, g.maxNameLength)
	letter := byte('A' + len(g.order))
	// Reject-sample a room-floor cell that holds no player; a cell
	// holding gold is accepted, and its pile is awarded below.
	var y, x int
	for {
		y, x = g.rng.Intn(g.Base.Height), g.rng.Intn(g.Base.Width)
		if g.Live.IsFloor(y, x) || g.Live.IsGold(y, x) {
			break
		}
	}

	player := types.NewPlayer(letter, normalized, ep, y, x, g.Base.Height, g.Base.Width)

	wasGold := g.Live.IsGold(y, x)
	g.Live.Set(y, x, letter)
	g.players[letter] = player
	g.order = append(g.order, letter)

	if wasGold {
		g.collectPile(player)
	}
	systems.Recompute(g.Base, y, x, player.Visible, player.Discovered)

	return player, nil
}

// Spectate installs ep as the sole spectator, returning the new
// spectator and the previous one if there was one (the caller must send
// that previous spectator a replacement notice).
func (g *Game) Spectate(ep transport.Endpoint) (spectator, replaced *types.Spectator) {
	replaced = g.spectator
	g.spectator = types.NewSpectator(ep)
	return g.spectator, replaced
}

// Player looks up a joined player by letter.
func (g *Game) Player(letter byte) (*types.Player, bool) {
	p, ok := g.players[letter]
	return p, ok
}

// Players returns every joined player in join order.
func (g *Game) Players() []*types.Player {
	out := make([]*types.Player, len(g.order))
	for i, letter := range g.order {
		out[i] = g.players[letter]
	}
	return out
}

// Spectator returns the current spectator, or nil if none is connected.
func (g *Game) Spectator() *types.Spectator { return g.spectator }

// PlayerByEndpoint looks up the joined player sending from ep, used by
// the dispatcher to resolve an inbound datagram's sender to a player
// without the game tracking a second endpoint-keyed index.
func (g *Game) PlayerByEndpoint(ep transport.Endpoint) (*types.Player, bool) {
	for _, letter := range g.order {
		p := g.players[letter]
		if p.Endpoint.String() == ep.String() {
			return p, true
		}
	}
	return nil, false
}

// IsSpectator reports whether ep is the currently connected spectator.
func (g *Game) IsSpectator(ep transport.Endpoint) bool {
	return g.spectator != nil && g.spectator.Endpoint.String() == ep.String()
}

// collectPile awards the next unclaimed pile value to p.
func (g *Game) collectPile(p *types.Player) int {
	awarded := g.piles.Values[g.piles.Found]
	g.piles.Found++
	p.Purse += awarded
	return awarded
}

// Move attempts one step of p in dir. moved is false if the step was
// rejected (wall/void); awarded is the gold value picked up, 0 if none.
func (g *Game) Move(p *types.Player, dir movement.Direction) (res movement.Result, awarded int, moved bool) {
	toY, toX := p.Y+dir.DY, p.X+dir.DX
	res = movement.Attempt(g.Live, p.Letter, p.Y, p.X, toY, toX)
	if res.Outcome == movement.Rejected {
		return res, 0, false
	}

	p.Y, p.X = res.NewY, res.NewX
	if res.Outcome == movement.MovedOntoGold {
		awarded = g.collectPile(p)
	}
	systems.Recompute(g.Base, p.Y, p.X, p.Visible, p.Discovered)

	if res.Outcome == movement.Swapped {
		other := g.players[res.SwappedWith]
		other.Y, other.X = res.OtherNewY, res.OtherNewX
		systems.Recompute(g.Base, other.Y, other.X, other.Visible, other.Discovered)
	}

	return res, awarded, true
}

// SprintStep is one successful step of a sprint.
type SprintStep struct {
	Result  movement.Result
	Awarded int
}

// Sprint repeatedly steps p in dir until a step is rejected, returning
// every successful step in order so the dispatcher can broadcast after
// each one, matching spec.md §4.3's "each successful step triggers the
// standard broadcasts" requirement.
func (g *Game) Sprint(p *types.Player, dir movement.Direction) []SprintStep {
	var steps []SprintStep
	for {
		res, awarded, moved := g.Move(p, dir)
		if !moved {
			break
		}
		steps = append(steps, SprintStep{Result: res, Awarded: awarded})
	}
	return steps
}

// IsOver reports whether all gold has been claimed.
func (g *Game) IsOver() bool { return g.piles.Remaining() <= 0 }

// Leaderboard formats the final standings in join order: one
// "%c%10d %s\n" line per player, using the normalized display name.
func (g *Game) Leaderboard() string {
	var b strings.Builder
	for _, letter := range g.order {
		p := g.players[letter]
		fmt.Fprintf(&b, "%c%10d %s\n", p.Letter, p.Purse, p.Name)
	}
	return b.String()
}
