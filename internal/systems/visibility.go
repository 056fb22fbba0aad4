// Package systems implements the per-player visibility recompute and
// composite view rendering that run after every successful move or join.
// Named systems to match the teacher's own visibility component, though
// the algorithm inside is unrelated: exact ray-traced line of sight for a
// discrete dungeon grid rather than viewport-bucket culling for a
// continuous open world.
package systems

import (
	"math"
	"time"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/metrics"
)

// Recompute clears visible, then ray-casts from (py, px) to every other
// cell of base, marking both visible and discovered for every cell in
// line of sight. Unlike the original C server, visible is reset before
// each call: it reflects line of sight at this instant only, so a cell a
// player has walked away from stops being "currently visible" even
// though it stays in discovered forever.
func Recompute(base *mapgrid.Grid, py, px int, visible, discovered *mapgrid.Bitmap) {
	start := time.Now()
	defer func() { metrics.VisibilityRecomputeDuration.Observe(time.Since(start).Seconds()) }()
	visible.ClearAll()
	for y := 0; y < base.Height; y++ {
		for x := 0; x < base.Width; x++ {
			if y == py && x == px {
				continue
			}
			if blocked(base, py, px, y, x) {
				continue
			}
			visible.Set(y, x)
			discovered.Set(y, x)
		}
	}
}

// blocked reports whether the ray from (py,px) to (y,x) is obstructed.
func blocked(base *mapgrid.Grid, py, px, y, x int) bool {
	if x == px {
		return verticalBlocked(base, py, px, y)
	}
	m := float64(py-y) / float64(px-x)
	if math.Abs(m) <= 1 {
		return shallowBlocked(base, py, px, x, m)
	}
	return steepBlocked(base, py, px, y, m)
}

// verticalBlocked steps straight up/down column px between py and y,
// exclusive of both endpoints.
func verticalBlocked(base *mapgrid.Grid, py, px, y int) bool {
	step := 1
	if y < py {
		step = -1
	}
	for iy := py + step; iy != y; iy += step {
		if base.BlocksSight(iy, px) {
			return true
		}
	}
	return false
}

// shallowBlocked handles rays with |slope| <= 1: step column by column,
// bracketing the continuous row with its ceiling and floor. The ray is
// blocked only if both bracketing cells block sight.
func shallowBlocked(base *mapgrid.Grid, py, px, x int, m float64) bool {
	step := 1
	if x < px {
		step = -1
	}
	for ix := px + step; ix != x; ix += step {
		iy := m*float64(ix-px) + float64(py)
		lo := int(math.Floor(iy))
		hi := int(math.Ceil(iy))
		if base.BlocksSight(lo, ix) && base.BlocksSight(hi, ix) {
			return true
		}
	}
	return false
}

// steepBlocked handles rays with |slope| > 1: step row by row,
// bracketing the continuous column with its ceiling and floor.
func steepBlocked(base *mapgrid.Grid, py, px, y int, m float64) bool {
	step := 1
	if y < py {
		step = -1
	}
	for iy := py + step; iy != y; iy += step {
		ix := float64(iy-py)/m + float64(px)
		lo := int(math.Floor(ix))
		hi := int(math.Ceil(ix))
		if base.BlocksSight(iy, lo) && base.BlocksSight(iy, hi) {
			return true
		}
	}
	return false
}
