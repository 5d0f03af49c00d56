package export

import (
	"fmt"
	"strings"

	"github.com/mkarev/trajlab/internal/physics"
	"github.com/mkarev/trajlab/internal/viz"
)

// Braille dot-to-bit mapping, same layout the canvas uses.
var pixelMap = [4][2]int{
	{0x01, 0x08},
	{0x02, 0x10},
	{0x04, 0x20},
	{0x40, 0x80},
}

func escape(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// CanvasToSVG renders a braille canvas as SVG dots plus its text
// overlay, preserving a frame exactly as the terminal drew it.
func CanvasToSVG(canvas *viz.Canvas, scale float64) string {
	if canvas == nil {
		return ""
	}

	width := float64(canvas.Width) * scale * 2
	height := float64(canvas.Height) * scale * 4

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%.0f" height="%.0f" viewBox="0 0 %.0f %.0f">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
<g fill="#4fc1ff">
`, width, height, width, height))

	dotRadius := scale * 0.4

	for row := 0; row < canvas.Height; row++ {
		for col := 0; col < canvas.Width; col++ {
			r := canvas.Grid[row][col]
			if r < 0x2800 {
				continue
			}
			pattern := int(r - 0x2800)

			baseX := float64(col) * scale * 2
			baseY := float64(row) * scale * 4

			for dy := 0; dy < 4; dy++ {
				for dx := 0; dx < 2; dx++ {
					if pattern&pixelMap[dy][dx] != 0 {
						cx := baseX + float64(dx)*scale + scale/2
						cy := baseY + float64(dy)*scale + scale/2
						sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"%.1f\"/>\n", cx, cy, dotRadius))
					}
				}
			}
		}
	}
	sb.WriteString("</g>\n")

	// Text rows render as runs so labels stay legible at any scale.
	fontSize := scale * 3.2
	for row := range canvas.Text {
		start := -1
		var run []rune
		flush := func() {
			if start < 0 {
				return
			}
			x := float64(start) * scale * 2
			y := float64(row)*scale*4 + fontSize
			sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"%.1f\" fill=\"#d7dde4\">%s</text>\n",
				x, y, fontSize, escape(string(run))))
			start, run = -1, nil
		}
		for col, r := range canvas.Text[row] {
			if r == 0 {
				flush()
				continue
			}
			if start < 0 {
				start = col
			}
			run = append(run, r)
		}
		flush()
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// FlightToSVG draws a solved flight as a standalone picture: grid,
// axes, the trajectory path, and an apex marker, mapped with the same
// bounds rule the terminal scene uses.
func FlightToSVG(sol *physics.Solution, width, height int) string {
	if sol == nil || len(sol.Trajectory) == 0 || width <= 0 || height <= 0 {
		return ""
	}

	maxX, maxY := sol.Bounds()
	const pad = 40.0
	m := viz.NewMapper(maxX, maxY, float64(width), float64(height), pad)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="#0a0a0a"/>
`, width, height, width, height))

	if step := viz.GridStep(maxX); step > 0 {
		for gx := step; gx <= maxX; gx += step {
			x0, y0 := m.Map(gx, 0)
			_, y1 := m.Map(gx, maxY)
			sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#1f2d3d\"/>\n", x0, y0, x0, y1))
			sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"11\" fill=\"#7b8794\">%g</text>\n", x0-8, y0+16, gx))
		}
	}
	if step := viz.GridStep(maxY); step > 0 {
		for gy := step; gy <= maxY; gy += step {
			x0, y0 := m.Map(0, gy)
			x1, _ := m.Map(maxX, gy)
			sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#1f2d3d\"/>\n", x0, y0, x1, y0))
			sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"11\" fill=\"#7b8794\">%g</text>\n", x0-32, y0+4, gy))
		}
	}

	ox, oy := m.Map(0, 0)
	xEnd, _ := m.Map(maxX, 0)
	_, yEnd := m.Map(0, maxY)
	sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#9aa5b1\" stroke-width=\"1.5\"/>\n", ox, oy, xEnd, oy))
	sb.WriteString(fmt.Sprintf("<line x1=\"%.1f\" y1=\"%.1f\" x2=\"%.1f\" y2=\"%.1f\" stroke=\"#9aa5b1\" stroke-width=\"1.5\"/>\n", ox, oy, ox, yEnd))

	sb.WriteString(`<path fill="none" stroke="#4fc1ff" stroke-width="2" stroke-dasharray="6 4" d="M`)
	for i, p := range sol.Trajectory {
		x, y := m.Map(p.X, p.Y)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString("\"/>\n")

	apex := sol.Trajectory[0]
	for _, p := range sol.Trajectory[1:] {
		if p.Y > apex.Y {
			apex = p
		}
	}
	ax, ay := m.Map(apex.X, apex.Y)
	sb.WriteString(fmt.Sprintf("<circle cx=\"%.1f\" cy=\"%.1f\" r=\"4\" fill=\"#ffd75f\"/>\n", ax, ay))
	sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"12\" fill=\"#ffd75f\">apex %.1f m</text>\n", ax+8, ay-6, apex.Y))

	last := sol.Trajectory[len(sol.Trajectory)-1]
	lx, ly := m.Map(last.X, last.Y)
	sb.WriteString(fmt.Sprintf("<text x=\"%.1f\" y=\"%.1f\" font-family=\"monospace\" font-size=\"12\" fill=\"#d7dde4\">range %.1f m</text>\n", lx-60, ly-10, sol.Range))

	sb.WriteString("</svg>")
	return sb.String()
}
