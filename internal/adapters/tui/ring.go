package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// ringStartDegrees puts the start of the fill at twelve o'clock.
	ringStartDegrees = -90

	ringFillGlyph  = "●"
	ringTrackGlyph = "·"
)

type ringCell int

const (
	cellEmpty ringCell = iota
	cellTrack
	cellFill
)

// sweepFraction returns how far around the ring the offset (dx, dy) sits,
// measured clockwise from the start angle, as a fraction of a full turn.
// Screen rows grow downward, so atan2 already turns clockwise.
func sweepFraction(dx, dy float64) float64 {
	f := math.Atan2(dy, dx)/(2*math.Pi) - ringStartDegrees/360.0
	if f < 0 {
		f++
	}
	if f >= 1 {
		f--
	}
	return f
}

// ringCells lays out a ring of the given radius in terminal cells. A cell is
// half as wide as it is tall, so the grid has twice as many columns as rows.
func ringCells(radius int, fraction float64) [][]ringCell {
	r := float64(radius)
	rows := 2*radius + 1
	cols := 4*radius + 1

	grid := make([][]ringCell, rows)
	for row := 0; row < rows; row++ {
		grid[row] = make([]ringCell, cols)
		dy := float64(row - radius)
		for col := 0; col < cols; col++ {
			dx := float64(col-2*radius) / 2
			if math.Abs(math.Hypot(dx, dy)-r) >= 0.5 {
				continue
			}
			if fraction >= 1 || sweepFraction(dx, dy) < fraction {
				grid[row][col] = cellFill
			} else {
				grid[row][col] = cellTrack
			}
		}
	}
	return grid
}

// renderRing draws the ring filled up to fraction, with label centered
// inside it one line per entry.
func renderRing(radius int, fraction float64, fill, track lipgloss.Color, label []string) string {
	grid := ringCells(radius, fraction)
	fillStyle := lipgloss.NewStyle().Foreground(fill)
	trackStyle := lipgloss.NewStyle().Foreground(track)

	top := radius - len(label)/2
	lines := make([]string, len(grid))
	for row, cells := range grid {
		var b strings.Builder
		text := ""
		if i := row - top; i >= 0 && i < len(label) {
			text = label[i]
		}
		textWidth := lipgloss.Width(text)
		textStart := (len(cells) - textWidth) / 2

		for col := 0; col < len(cells); col++ {
			if text != "" && col == textStart {
				b.WriteString(text)
				col += textWidth - 1
				continue
			}
			switch cells[col] {
			case cellFill:
				b.WriteString(fillStyle.Render(ringFillGlyph))
			case cellTrack:
				b.WriteString(trackStyle.Render(ringTrackGlyph))
			default:
				b.WriteByte(' ')
			}
		}
		lines[row] = b.String()
	}
	return strings.Join(lines, "\n")
}
