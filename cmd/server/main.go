// Command server runs a single Nuggets game: load a map, open the
// network, and serve until all gold has been claimed.
//
// Usage: server map.txt [seed]
package main

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/config"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/game"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/metrics"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/ratelimit"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/server"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/transport/udp"
)

func main() {
	if err := run(); err != nil {
		log.Printf("server: %v", err)
		os.Exit(1)
	}
}

func run() error {
	mapPath, seed, err := parseArgs(os.Args)
	if err != nil {
		return fmt.Errorf("usage: %s map.txt [seed]: %w", os.Args[0], err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	base, err := mapgrid.Load(mapPath)
	if err != nil {
		return fmt.Errorf("loading map: %w", err)
	}

	rng := rand.New(rand.NewSource(int64(seed)))
	g := game.New(base, rng, cfg.Player.MaxNameLength)
	metrics.GamesStarted.Inc()
	metrics.GoldRemaining.Set(float64(g.GoldRemaining()))
	log.Printf("server: loaded %s (%dx%d), %d gold remaining", mapPath, base.Height, base.Width, g.GoldRemaining())

	tr, err := udp.Listen(cfg.Net.Port)
	if err != nil {
		return fmt.Errorf("opening network: %w", err)
	}
	defer tr.Close()
	log.Printf("Waiting on port %d for contact...", tr.LocalPort())

	if cfg.Net.MetricsPort > 0 {
		go serveMetrics(cfg.Net.MetricsPort)
	}

	limiter := ratelimit.New(cfg.Net.RateLimitRPS, cfg.Net.RateLimitBurst)
	d := server.New(g, tr, limiter)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := d.Run(ctx); err != nil {
		return fmt.Errorf("running server: %w", err)
	}
	log.Printf("server: game over, %d players finished", g.NumPlayers())
	return nil
}

// parseArgs validates the command line the same way the original
// server's parseArgs does: exactly one or two arguments, the map file
// must open, and an explicit seed must be a positive integer. A
// missing seed falls back to the process PID, matching the original's
// srand(getpid()) fallback.
func parseArgs(argv []string) (mapPath string, seed int, err error) {
	if len(argv) != 2 && len(argv) != 3 {
		return "", 0, fmt.Errorf("wrong number of arguments")
	}

	mapPath = argv[1]
	f, err := os.Open(mapPath)
	if err != nil {
		return "", 0, fmt.Errorf("map file %s does not exist: %w", mapPath, err)
	}
	f.Close()

	if len(argv) == 3 {
		n, err := strconv.Atoi(argv[2])
		if err != nil {
			return "", 0, fmt.Errorf("seed %q is not a valid integer", argv[2])
		}
		if n <= 0 {
			return "", 0, fmt.Errorf("seed %d must be a positive integer", n)
		}
		return mapPath, n, nil
	}

	return mapPath, os.Getpid(), nil
}

func serveMetrics(port int) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	addr := fmt.Sprintf(":%d", port)
	log.Printf("server: metrics listening on %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Printf("server: metrics server stopped: %v", err)
	}
}
