package systems

import (
	"strings"

	"github.com/automoto/gohta/components"
	cfg "github.com/automoto/gohta/config"
	"github.com/yohamta/donburi/ecs"
)

// NewWindow derives the layout constants for a width x height surface
func NewWindow(width, height, divisions int) components.WindowData {
	if divisions <= 0 {
		divisions = 1
	}
	return components.WindowData{
		Width:      width,
		Height:     height,
		CenterX:    width / 2,
		CenterY:    height / 2,
		HeightUnit: height / divisions,
	}
}

// GetOrCreateWindow returns the singleton Window component, built from config if needed
func GetOrCreateWindow(e *ecs.ECS) *components.WindowData {
	entry, ok := components.Window.First(e.World)
	if !ok {
		entry = e.World.Entry(e.World.Create(components.Window))
		components.Window.SetValue(entry, NewWindow(cfg.C.Width, cfg.C.Height, cfg.C.HeightDivisions))
	}
	return components.Window.Get(entry)
}

// ButtonCoordsFromOrder returns the centre of the n-th (1-based) button in a
// vertical column. Buttons share the window's horizontal centre and step down
// by one button height plus a gap.
func ButtonCoordsFromOrder(w *components.WindowData, n int) (x, y int) {
	startY := int(cfg.Menu.ButtonStartY * float64(w.HeightUnit))
	spacingY := cfg.Button.Height + int(cfg.Menu.ButtonGapY*float64(w.HeightUnit))
	return w.CenterX, startY + (n-1)*spacingY
}

// WrapText breaks s into lines of at most width characters, splitting on
// spaces. Words longer than width are broken across lines.
func WrapText(s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	if width <= 0 {
		return []string{strings.Join(words, " ")}
	}

	var lines []string
	var line string
	for _, word := range words {
		for len(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			lines = append(lines, word[:width])
			word = word[width:]
		}

		switch {
		case line == "":
			line = word
		case len(line)+1+len(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// TitleLineOrigins returns the top-left origin of each title line. Lines are
// centred horizontally and the block is centred vertically on centerY.
func TitleLineOrigins(w *components.WindowData, lineWidths []int, lineHeight, centerY int) [][2]int {
	origins := make([][2]int, len(lineWidths))
	top := int(float64(centerY) - float64(len(lineWidths)*lineHeight)/2)
	for i, lw := range lineWidths {
		origins[i] = [2]int{(w.Width - lw) / 2, top + i*lineHeight}
	}
	return origins
}
