package termcanvas

import (
	"github.com/BrandonKowalski/vlist/pkg/vlist/constants"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// grapheme is one user-perceived character and the columns it occupies.
type grapheme struct {
	runes []rune
	width int
}

// fit splits text into grapheme clusters, keeping as many as fit in width
// columns.
func fit(text string, width int) (clusters []grapheme, used int) {
	state := -1
	for len(text) > 0 && width > 0 {
		var cluster string
		var w int
		cluster, text, w, state = uniseg.FirstGraphemeClusterInString(text, state)
		if used+w > width {
			break
		}
		clusters = append(clusters, grapheme{runes: []rune(cluster), width: w})
		used += w
	}
	return clusters, used
}

// printLine draws text on line y between columns x0 and x1, aligned inside
// [x, x+w).
func printLine(screen tcell.Screen, text string, x, w, y, x0, x1 int, align constants.TextAlign, style tcell.Style) {
	clusters, used := fit(text, w)

	switch align {
	case constants.TextAlignCenter:
		x += (w - used) / 2
	case constants.TextAlignRight:
		x += w - used
	}

	for _, g := range clusters {
		if x >= x0 && x+g.width <= x1 && g.width > 0 {
			screen.SetContent(x, y, g.runes[0], g.runes[1:], style)
		}
		x += g.width
	}
}
