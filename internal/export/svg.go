// Package export writes lattice snapshots as standalone SVG images.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/ising/internal/lattice"
)

const (
	background = "#0a0a0a"
	upFill     = "#5fffd7"
)

// LatticeSVG draws each Up spin of snap as a scale-sized square on a dark
// background. It returns "" for an empty snapshot or a width that does not
// divide it.
func LatticeSVG(snap []lattice.Spin, width int, scale float64) string {
	if width <= 0 || len(snap) == 0 || len(snap)%width != 0 || scale <= 0 {
		return ""
	}
	height := len(snap) / width
	w := float64(width) * scale
	h := float64(height) * scale

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="%s"/>
<g fill="%s">
`, w, h, w, h, background, upFill))

	for i, s := range snap {
		if s != lattice.Up {
			continue
		}
		x := float64(i%width) * scale
		y := float64(i/width) * scale
		sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, x, y, scale, scale))
	}

	sb.WriteString("</g>\n</svg>")
	return sb.String()
}
