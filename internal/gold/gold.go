// Package gold implements pile-count and per-pile-value randomization
// for distributing gold across a map at game start.
package gold

import "github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"

// Distribution constants, faithful to the original server's loadGame().
const (
	MinNumPiles  = 10
	MaxNumPiles  = 30
	TotalToDrop  = 300
	roundRobinLo = 0
	roundRobinHi = 5
)

// Source is the minimal RNG surface gold distribution needs, so tests
// can supply a deterministic sequence instead of a real PRNG.
type Source interface {
	Intn(n int) int
}

// Piles tracks the ordered pile-value sequence and how many have been
// claimed so far.
type Piles struct {
	Values []int
	Found  int
}

// Remaining returns the total value not yet claimed.
func (p *Piles) Remaining() int {
	sum := 0
	for _, v := range p.Values {
		sum += v
	}
	for i := 0; i < p.Found; i++ {
		sum -= p.Values[i]
	}
	return sum
}

// GeneratePiles computes the pile-count and pile-value sequence the same
// way the original server does: a random pile count in
// [MinNumPiles, MaxNumPiles), then round-robin accumulation of random
// values in [0, 5) across pile slots until the running sum reaches
// TotalToDrop, truncating the final addition so the sum lands exactly on
// TotalToDrop.
func GeneratePiles(rng Source) []int {
	count := MinNumPiles + rng.Intn(MaxNumPiles-MinNumPiles)
	values := make([]int, count)

	sum := 0
	for sum < TotalToDrop {
		for i := 0; i < count && sum < TotalToDrop; i++ {
			add := roundRobinLo + rng.Intn(roundRobinHi-roundRobinLo)
			if sum+add > TotalToDrop {
				add = TotalToDrop - sum
			}
			values[i] += add
			sum += add
		}
	}
	return values
}

// Place drops len(values) gold piles onto uniformly random floor cells of
// live, rejecting any pick that is not bare '.' floor. It returns the
// chosen (y, x) coordinates in pile order, matching values index-for-index.
func Place(live *mapgrid.LiveGrid, rng Source, count int) [][2]int {
	coords := make([][2]int, count)
	for i := 0; i < count; i++ {
		y, x := randomFloorCell(live, rng)
		live.Set(y, x, mapgrid.CellGold)
		coords[i] = [2]int{y, x}
	}
	return coords
}

func randomFloorCell(live *mapgrid.LiveGrid, rng Source) (int, int) {
	base := live.Base
	for {
		y := rng.Intn(base.Height)
		x := rng.Intn(base.Width)
		if live.IsFloor(y, x) {
			return y, x
		}
	}
}

// RandomFloorCell exposes the reject-sampling placement helper: it
// returns a uniformly random cell of live that is currently bare '.'
// floor.
func RandomFloorCell(live *mapgrid.LiveGrid, rng Source) (int, int) {
	return randomFloorCell(live, rng)
}
