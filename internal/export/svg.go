package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/trajview/internal/config"
	"github.com/san-kum/trajview/internal/traj"
)

// SceneSVG renders the complete trajectory as a static SVG scene: dark
// background, Sun at the origin, dashed reference orbits, the full path and
// a marker on the final sample. The viewport is the same symmetric square
// the player uses, so the aspect ratio is 1:1.
func SceneSVG(tr *traj.Trajectory, cfg *config.Config, width, height int) string {
	c := *cfg
	c.Normalize()

	half := tr.Bounds(c.PadFraction)
	if half <= 0 {
		half = 1
	}
	side := width
	if height < side {
		side = height
	}
	scale := float64(side) / (2 * half)

	toX := func(x float64) float64 { return float64(width)/2 + x*scale }
	toY := func(y float64) float64 { return float64(height)/2 - y*scale }

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a1a"/>
`, width, height, width, height))

	if c.ShowOrbits {
		for _, rAU := range c.OrbitRadiiAU {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f" fill="none" stroke="#666688" stroke-width="0.5" stroke-dasharray="4 4"/>
`, toX(0), toY(0), rAU*traj.AU*scale))
		}
	}

	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="5" fill="#ffd700"/>
`, toX(0), toY(0)))

	sb.WriteString(`<path fill="none" stroke="#00ccff" stroke-width="1.5" d="M`)
	for i := 0; i < tr.Len(); i++ {
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", toX(tr.X[i]), toY(tr.Y[i])))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", toX(tr.X[i]), toY(tr.Y[i])))
		}
	}
	sb.WriteString("\"/>\n")

	last := tr.Len() - 1
	sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="3" fill="#ff4444"/>
</svg>`, toX(tr.X[last]), toY(tr.Y[last])))

	return sb.String()
}
