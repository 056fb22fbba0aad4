package systems

import (
	"strings"

	"github.com/jack-mcmahon/Nuggets-Game-Server/internal/mapgrid"
)

// RenderDisplay produces the per-viewer composite grid: an H-row string,
// each row terminated by '\n', following spec.md §4.2's per-cell table.
//
// viewerLetter is ignored when isSpectator is true: spectators see the
// full live map with no '@' substitution and no visibility masking.
func RenderDisplay(viewerLetter byte, isSpectator bool, live *mapgrid.LiveGrid, visible, discovered *mapgrid.Bitmap) string {
	base := live.Base
	var b strings.Builder
	b.Grow((base.Width + 1) * base.Height)

	for y := 0; y < base.Height; y++ {
		for x := 0; x < base.Width; x++ {
			b.WriteByte(renderCell(viewerLetter, isSpectator, live, visible, discovered, y, x))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(viewerLetter byte, isSpectator bool, live *mapgrid.LiveGrid, visible, discovered *mapgrid.Bitmap, y, x int) byte {
	if isSpectator {
		return live.At(y, x)
	}
	if live.At(y, x) == viewerLetter {
		return '@'
	}
	if visible.Get(y, x) {
		return live.At(y, x)
	}
	if discovered.Get(y, x) {
		return live.Base.At(y, x)
	}
	return mapgrid.CellEmpty
}
