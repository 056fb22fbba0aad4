package gold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
)

// sequence is a deterministic Source that cycles through a fixed list of
// values, used so pile generation and placement tests don't depend on a
// real PRNG's behavior.
type sequence struct {
	vals []int
	i    int
}

func (s *sequence) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestGeneratePilesSumsToTotal(t *testing.T) {
	rng := &sequence{vals: []int{3, 1, 4, 1, 5, 9, 2, 6}}
	values := GeneratePiles(rng)
	if len(values) < MinNumPiles || len(values) >= MaxNumPiles {
		t.Fatalf("pile count %d out of range [%d,%d)", len(values), MinNumPiles, MaxNumPiles)
	}
	sum := 0
	for _, v := range values {
		if v < 0 {
			t.Fatalf("negative pile value %d", v)
		}
		sum += v
	}
	if sum != TotalToDrop {
		t.Fatalf("sum = %d, want %d", sum, TotalToDrop)
	}
}

func TestPilesRemaining(t *testing.T) {
	p := &Piles{Values: []int{100, 50, 150}}
	if got := p.Remaining(); got != 300 {
		t.Fatalf("Remaining() = %d, want 300", got)
	}
	p.Found = 2
	if got := p.Remaining(); got != 150 {
		t.Fatalf("Remaining() after 2 found = %d, want 150", got)
	}
}

func TestPlaceOnlyOnFloor(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	contents := "+---+\n|.#.|\n+---+\n"
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g, err := mapgrid.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	live := mapgrid.NewLiveGrid(g)
	rng := &sequence{vals: []int{0, 1, 2, 1, 0, 2, 1, 1, 1, 2, 1, 3}}

	coords := Place(live, rng, 2)
	if len(coords) != 2 {
		t.Fatalf("got %d coords, want 2", len(coords))
	}
	for _, c := range coords {
		y, x := c[0], c[1]
		if g.At(y, x) != mapgrid.CellFloor {
			t.Fatalf("placed gold at (%d,%d) which is %q, not floor", y, x, g.At(y, x))
		}
		if !live.IsGold(y, x) {
			t.Fatalf("live grid not updated with gold at (%d,%d)", y, x)
		}
	}
}
