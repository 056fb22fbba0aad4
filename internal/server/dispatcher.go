// Package server runs the single-threaded event loop that receives
// client datagrams, mutates the authoritative game, and broadcasts the
// resulting state. There is exactly one goroutine here and no locks —
// see DESIGN.md's concurrency reconciliation note for why this departs
// from the teacher's tick-driven, multi-worker Server.
package server

import (
	"context"
	"errors"
	"log"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/game"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/metrics"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/movement"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/protocol"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/ratelimit"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/systems"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/types"
)

// Dispatcher owns the event loop: one Game, one Transport, and an
// optional per-endpoint rate limiter guarding both from a flooding
// client (spec.md §7's resource-exhaustion handling).
type Dispatcher struct {
	game    *game.Game
	tr      transport.Transport
	limiter *ratelimit.Limiter
}

// New constructs a Dispatcher over an already-loaded Game. limiter may
// be nil to disable rate limiting entirely.
func New(g *game.Game, tr transport.Transport, limiter *ratelimit.Limiter) *Dispatcher {
	return &Dispatcher{game: g, tr: tr, limiter: limiter}
}

// Run blocks the calling goroutine in the receive/handle loop until the
// game ends (gold_remaining reaches zero) or ctx is canceled. It is the
// sole suspension point in the server, matching spec.md §5.
func (d *Dispatcher) Run(ctx context.Context) error {
	for {
		ep, body, err := d.tr.ReceiveFrom(ctx)
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, context.Canceled) {
				return nil
			}
			log.Printf("server: receive error: %v", err)
			continue
		}
		if ep == nil {
			log.Printf("server: dropping message without a sender")
			continue
		}
		if d.limiter != nil && !d.limiter.Allow(ep.String()) {
			metrics.MessagesRejected.WithLabelValues("rate_limited").Inc()
			continue
		}
		if d.dispatch(ep, body) {
			return nil
		}
	}
}

// dispatch handles one datagram and reports whether the game just ended.
func (d *Dispatcher) dispatch(ep transport.Endpoint, body string) (gameOver bool) {
	msg, err := protocol.ParseClient(body)
	if err != nil {
		metrics.MessagesRejected.WithLabelValues("malformed").Inc()
		d.send(ep, protocol.FormatError("Unknown command."))
		return false
	}
	metrics.MessagesHandled.WithLabelValues(msg.Kind).Inc()

	switch msg.Kind {
	case protocol.KindPlay:
		d.handlePlay(ep, msg.Name)
		return false
	case protocol.KindSpectate:
		d.handleSpectate(ep)
		return false
	case protocol.KindKey:
		d.handleKey(ep, msg.Key)
		return d.checkGameOver()
	default:
		return false
	}
}

// handlePlay admits ep as a named player, mirroring handlePLAY's message
// order from the original server: any immediate gold pickup on the
// spawn cell is broadcast before OK/GRID/the join-status GOLD/DISPLAY.
func (d *Dispatcher) handlePlay(ep transport.Endpoint, name string) {
	player, err := d.game.Join(name, ep)
	if err != nil {
		switch {
		case errors.Is(err, game.ErrEmptyName):
			metrics.JoinRefusals.WithLabelValues("empty_name").Inc()
			d.send(ep, protocol.FormatQuit("Sorry - you must provide player's name."))
		case errors.Is(err, game.ErrGameFull):
			metrics.JoinRefusals.WithLabelValues("game_full").Inc()
			d.send(ep, protocol.FormatQuit("Game is full: no more players can join."))
		default:
			log.Printf("server: join error: %v", err)
		}
		return
	}

	metrics.PlayersJoined.Inc()
	metrics.ActivePlayers.Set(float64(d.game.NumPlayers()))

	if awarded := player.Purse; awarded > 0 {
		metrics.GoldPickedUp.Add(float64(awarded))
		d.broadcastGoldAll()
		d.send(player.Endpoint, protocol.FormatGold(awarded, player.Purse, d.game.GoldRemaining()))
	}
	metrics.GoldRemaining.Set(float64(d.game.GoldRemaining()))

	d.send(ep, protocol.FormatOK(player.Letter))
	d.send(ep, protocol.FormatGrid(d.game.Base.Height, d.game.Base.Width))
	d.send(ep, protocol.FormatGold(0, player.Purse, d.game.GoldRemaining()))
	d.broadcastDisplay()
}

// handleSpectate installs ep as the sole spectator, replacing and
// evicting any previous one per spec.md §4.5.
func (d *Dispatcher) handleSpectate(ep transport.Endpoint) {
	spectator, replaced := d.game.Spectate(ep)
	if replaced != nil {
		d.send(replaced.Endpoint, protocol.FormatQuit("You have been replaced by a new spectator."))
	}

	d.send(ep, protocol.FormatGrid(d.game.Base.Height, d.game.Base.Width))
	d.send(ep, protocol.FormatGold(0, 0, d.game.GoldRemaining()))
	body := systems.RenderDisplay(0, true, d.game.Live, nil, nil)
	d.send(spectator.Endpoint, protocol.FormatDisplay(body))
}

// handleKey resolves one keystroke from ep, which may be a joined
// player, the spectator, or (per spec.md §7) an address the game
// doesn't recognize at all — the last case is logged and dropped
// without mutating state.
func (d *Dispatcher) handleKey(ep transport.Endpoint, key byte) {
	if d.game.IsSpectator(ep) {
		d.handleSpectatorKey(ep, key)
		return
	}
	player, ok := d.game.PlayerByEndpoint(ep)
	if !ok {
		log.Printf("server: KEY from unknown endpoint %s, dropping", ep.String())
		return
	}
	d.handlePlayerKey(player, key)
}

func (d *Dispatcher) handleSpectatorKey(ep transport.Endpoint, key byte) {
	if key == 'Q' {
		d.send(ep, protocol.FormatQuit("Thanks for watching!"))
		return
	}
	metrics.MessagesRejected.WithLabelValues("unknown_keystroke").Inc()
	d.send(ep, protocol.FormatError("Unknown keystroke."))
}

func (d *Dispatcher) handlePlayerKey(player *types.Player, key byte) {
	if key == 'Q' {
		d.send(player.Endpoint, protocol.FormatQuit("Thanks for playing!"))
		return
	}
	if key == 'q' {
		metrics.MessagesRejected.WithLabelValues("unknown_keystroke").Inc()
		d.send(player.Endpoint, protocol.FormatError("Unknown keystroke."))
		return
	}

	dir, sprint, ok := movement.Lookup(key)
	if !ok {
		metrics.MessagesRejected.WithLabelValues("unknown_keystroke").Inc()
		d.send(player.Endpoint, protocol.FormatError("Unknown keystroke."))
		return
	}

	if sprint {
		for _, step := range d.game.Sprint(player, dir) {
			d.afterMove(player, step.Awarded)
		}
		return
	}

	_, awarded, moved := d.game.Move(player, dir)
	if !moved {
		return
	}
	d.afterMove(player, awarded)
}

// afterMove performs the broadcasts spec.md §4.3 requires following one
// successful step: a GOLD update (if a pile was collected) then DISPLAY
// to everyone.
func (d *Dispatcher) afterMove(player *types.Player, awarded int) {
	if awarded > 0 {
		metrics.GoldPickedUp.Add(float64(awarded))
		d.broadcastGoldAll()
		d.send(player.Endpoint, protocol.FormatGold(awarded, player.Purse, d.game.GoldRemaining()))
	}
	metrics.GoldRemaining.Set(float64(d.game.GoldRemaining()))
	d.broadcastDisplay()
}

// checkGameOver implements spec.md §4.6: after every processed KEY, if
// all gold has been claimed, every player receives the final
// leaderboard and the dispatcher signals Run to stop.
func (d *Dispatcher) checkGameOver() bool {
	if !d.game.IsOver() {
		return false
	}
	board := d.game.Leaderboard()
	for _, p := range d.game.Players() {
		d.send(p.Endpoint, protocol.FormatQuit("GAME OVER:\n"+board))
	}
	if sp := d.game.Spectator(); sp != nil {
		d.send(sp.Endpoint, protocol.FormatQuit("GAME OVER:\n"+board))
	}
	metrics.GamesOver.Inc()
	return true
}

// broadcastDisplay renders and sends a personalized DISPLAY to every
// joined player and the spectator.
func (d *Dispatcher) broadcastDisplay() {
	players := d.game.Players()
	for _, p := range players {
		body := systems.RenderDisplay(p.Letter, false, d.game.Live, p.Visible, p.Discovered)
		d.send(p.Endpoint, protocol.FormatDisplay(body))
	}
	recipients := len(players)
	if sp := d.game.Spectator(); sp != nil {
		body := systems.RenderDisplay(0, true, d.game.Live, nil, nil)
		d.send(sp.Endpoint, protocol.FormatDisplay(body))
		recipients++
	}
	metrics.BroadcastRecipients.Observe(float64(recipients))
}

// broadcastGoldAll sends each joined player their own status GOLD
// (n=0, their current purse, the current remaining total). The
// spectator is not a player and does not receive it, matching the
// original server's playerSendGold iteration over the player set only.
func (d *Dispatcher) broadcastGoldAll() {
	for _, p := range d.game.Players() {
		d.send(p.Endpoint, protocol.FormatGold(0, p.Purse, d.game.GoldRemaining()))
	}
}

// send tolerates a closed or unreachable endpoint silently, per
// spec.md §5's sendMsg contract.
func (d *Dispatcher) send(to transport.Endpoint, body string) {
	if err := d.tr.SendTo(to, body); err != nil {
		log.Printf("server: send to %s failed: %v", to.String(), err)
	}
}
