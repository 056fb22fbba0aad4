// Package metrics exposes operational counters and gauges for the game
// server over Prometheus's client_golang, in the promauto style used
// throughout the retrieval pack.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	GamesStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nuggets_games_started_total",
		Help: "Total number of games loaded at startup.",
	})

	PlayersJoined = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nuggets_players_joined_total",
		Help: "Total number of players accepted via PLAY.",
	})

	JoinRefusals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nuggets_join_refusals_total",
		Help: "Total number of PLAY/SPECTATE requests refused, by reason.",
	}, []string{"reason"})

	ActivePlayers = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nuggets_active_players",
		Help: "Number of players currently in the game.",
	})

	GoldPickedUp = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nuggets_gold_picked_up_total",
		Help: "Total gold value picked up across all players.",
	})

	GoldRemaining = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "nuggets_gold_remaining",
		Help: "Gold remaining unclaimed in the current game.",
	})

	MessagesHandled = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nuggets_messages_handled_total",
		Help: "Total number of client messages handled, by kind.",
	}, []string{"kind"})

	MessagesRejected = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "nuggets_messages_rejected_total",
		Help: "Total number of client messages rejected, by reason.",
	}, []string{"reason"})

	VisibilityRecomputeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nuggets_visibility_recompute_duration_seconds",
		Help:    "Time spent recomputing one player's visible/discovered sets.",
		Buckets: prometheus.DefBuckets,
	})

	BroadcastRecipients = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "nuggets_broadcast_recipients",
		Help:    "Number of recipients reached by a single DISPLAY/GOLD broadcast.",
		Buckets: []float64{1, 2, 5, 10, 20, 26},
	})

	GamesOver = promauto.NewCounter(prometheus.CounterOpts{
		Name: "nuggets_games_over_total",
		Help: "Total number of games that reached gold_remaining == 0.",
	})
)
