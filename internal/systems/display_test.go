package systems

import (
	"strings"
	"testing"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
)

func TestRenderDisplayPlayerView(t *testing.T) {
	g := loadTestGrid(t, "+-----+\n|.....|\n+-----+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 3, mapgrid.CellGold)
	live.Set(1, 1, 'A')

	visible := mapgrid.NewBitmap(g.Height, g.Width)
	discovered := mapgrid.NewBitmap(g.Height, g.Width)
	visible.Set(1, 1)
	visible.Set(1, 2)
	visible.Set(1, 3)
	discovered.Union(visible)

	out := RenderDisplay('A', false, live, visible, discovered)
	rows := strings.Split(out, "\n")
	if len(rows) < 2 {
		t.Fatalf("unexpected render: %q", out)
	}
	row1 := rows[1]
	if row1[1] != '@' {
		t.Errorf("own cell should render '@', got %q", row1[1])
	}
	if row1[3] != '*' {
		t.Errorf("visible gold cell should render '*', got %q", row1[3])
	}
	if row1[5] != ' ' {
		t.Errorf("undiscovered cell should render ' ', got %q", row1[5])
	}
}

func TestRenderDisplayDiscoveredButNotVisibleShowsBaseTerrain(t *testing.T) {
	g := loadTestGrid(t, "+-----+\n|.....|\n+-----+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 3, mapgrid.CellGold)
	live.Set(1, 1, 'A')

	visible := mapgrid.NewBitmap(g.Height, g.Width)
	discovered := mapgrid.NewBitmap(g.Height, g.Width)
	discovered.Set(1, 3) // previously seen the gold, no longer in sight

	out := RenderDisplay('A', false, live, visible, discovered)
	rows := strings.Split(out, "\n")
	if rows[1][3] != mapgrid.CellFloor {
		t.Errorf("discovered-but-not-visible gold cell should show remembered terrain '.', got %q", rows[1][3])
	}
}

func TestRenderDisplaySpectatorSeesEverythingNoAt(t *testing.T) {
	g := loadTestGrid(t, "+-----+\n|.....|\n+-----+\n")
	live := mapgrid.NewLiveGrid(g)
	live.Set(1, 3, mapgrid.CellGold)
	live.Set(1, 1, 'A')

	out := RenderDisplay(0, true, live, nil, nil)
	rows := strings.Split(out, "\n")
	if rows[1][1] != 'A' {
		t.Errorf("spectator should see the raw player letter, not '@', got %q", rows[1][1])
	}
	if rows[1][3] != '*' {
		t.Errorf("spectator should see gold, got %q", rows[1][3])
	}
}
