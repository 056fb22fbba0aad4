package movement

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
)

func loadTestGrid(t *testing.T, contents string) *mapgrid.Grid {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "map.txt")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	g, err := mapgrid.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return g
}

func TestLookupMovementKeys(t *testing.T) {
	dir, sprint, ok := Lookup('h')
	if !ok || sprint || dir != (Direction{0, -1}) {
		t.Fatalf("Lookup('h') = %+v, %v, %v", dir, sprint, ok)
	}
	dir, sprint, ok = Lookup('L')
	if !ok || !sprint || dir != (Direction{0, 1}) {
		t.Fatalf("Lookup('L') = %+v, %v, %v", dir, sprint, ok)
	}
}

func TestLookupRejectsNonMovementKeys(t *testing.T) {
	if _, _, ok := Lookup('Q'); ok {
		t.Error("Q should not resolve as a movement key")
	}
	if _, _, ok := Lookup('z'); ok {
		t.Error("z should not resolve as a movement key")
	}
}

func TestAttemptRejectsWall(t *testing.T) {
	g := loadTestGrid(t, "+---+\n|...|\n+---+\n")
	live := mapgrid.NewLiveGrid(g)
	res := Attempt(live, 'A', 1, 1, 0, 1)
	if res.Outcome != Rejected {
		t.Fatalf("expected Rejected, got %v", res.Outcome)
	}
}

func TestAttemptMovesOntoFloor(t *testing.T) {
	g := loadTestGrid(t, "+---+\n|...|\n+---+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 1, 'A')
	res := Attempt(live, 'A', 1, 1, 1, 2)
	if res.Outcome != Moved || res.NewY != 1 || res.NewX != 2 {
		t.Fatalf("got %+v", res)
	}
	if live.At(1, 1) != mapgrid.CellFloor {
		t.Errorf("old cell should be restored to floor, got %q", live.At(1, 1))
	}
	if live.At(1, 2) != 'A' {
		t.Errorf("new cell should hold the player, got %q", live.At(1, 2))
	}
}

func TestAttemptPicksUpGold(t *testing.T) {
	g := loadTestGrid(t, "+---+\n|...|\n+---+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 2, mapgrid.CellGold)
	live.Set(1, 1, 'A')
	res := Attempt(live, 'A', 1, 1, 1, 2)
	if res.Outcome != MovedOntoGold {
		t.Fatalf("expected MovedOntoGold, got %v", res.Outcome)
	}
}

func TestAttemptSwapsPlayers(t *testing.T) {
	g := loadTestGrid(t, "+---+\n|...|\n+---+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 1, 'A')
	live.Set(1, 2, 'B')
	res := Attempt(live, 'A', 1, 1, 1, 2)
	if res.Outcome != Swapped || res.SwappedWith != 'B' {
		t.Fatalf("got %+v", res)
	}
	if live.At(1, 1) != 'B' || live.At(1, 2) != 'A' {
		t.Fatalf("expected swap, live = %q %q", live.At(1, 1), live.At(1, 2))
	}
}
