package view

import (
	"colorcycle/internal/palette"
	"colorcycle/internal/speed"
	"colorcycle/internal/tui/design"
	"colorcycle/internal/tui/model"

	"github.com/charmbracelet/lipgloss"
)

const (
	minWidth     = 24
	controlsPadX = design.SpaceSM
	statusHeight = 1
)

// layout holds the screen geometry shared by rendering and mouse hit-testing.
// All coordinates are zero-based terminal cells.
type layout struct {
	width       int
	inner       int // width available to the controls
	blockHeight int

	speedTitleY int
	sliderY     int
	endpointsY  int
	pauseY      int
	pauseWidth  int
	colorsY     int
	gridY       int
	cols        int
	rows        int
	swatchWidth int
	warningY    int // -1 when no warning line
	statusY     int
}

func computeLayout(m *model.Model) layout {
	l := layout{width: max(m.Width, minWidth)}
	l.inner = l.width - 2*controlsPadX

	if m.Zen {
		l.blockHeight = max(m.Height, design.MinBlockHeight)
		l.warningY = -1
		l.statusY = -1
		return l
	}

	l.swatchWidth = design.SwatchWidth
	l.cols = 4
	if l.inner < l.cols*l.swatchWidth+(l.cols-1)*design.SwatchGap {
		l.cols = 2
		l.swatchWidth = min(design.SwatchWidth, max(4, (l.inner-design.SwatchGap)/2))
	}
	l.rows = (palette.Size + l.cols - 1) / l.cols
	gridHeight := l.rows*design.SwatchHeight + (l.rows - 1)

	// Controls: speed title, slider, endpoint labels, blank, pause, blank,
	// colors title, grid, optional warning.
	controlsHeight := 7 + gridHeight
	if m.ShowFloorWarning() {
		controlsHeight++
	}

	l.blockHeight = max(m.Height-statusHeight-1-controlsHeight, design.MinBlockHeight)

	y := l.blockHeight + 1
	l.speedTitleY = y
	l.sliderY = y + 1
	l.endpointsY = y + 2
	l.pauseY = y + 4
	l.colorsY = y + 6
	l.gridY = y + 7
	l.warningY = -1
	if m.ShowFloorWarning() {
		l.warningY = l.gridY + gridHeight
	}
	l.statusY = l.gridY + gridHeight
	if l.warningY >= 0 {
		l.statusY++
	}
	l.pauseWidth = lipgloss.Width(renderPauseButton(m))
	return l
}

// swatchOrigin returns the top-left cell of the swatch at table index i.
func (l layout) swatchOrigin(i int) (x, y int) {
	row, col := i/l.cols, i%l.cols
	return controlsPadX + col*(l.swatchWidth+design.SwatchGap), l.gridY + row*(design.SwatchHeight+1)
}

// TargetKind names what a mouse position points at.
type TargetKind int

const (
	TargetNone TargetKind = iota
	TargetBlock
	TargetSlider
	TargetPause
	TargetSwatch
)

// Target is the result of HitTest. ID is the color id for TargetSwatch and
// Value the speed position for TargetSlider.
type Target struct {
	Kind  TargetKind
	ID    int
	Value int
}

// HitTest maps a terminal cell onto the control drawn there.
func HitTest(m *model.Model, x, y int) Target {
	l := computeLayout(m)

	if y >= 0 && y < l.blockHeight {
		return Target{Kind: TargetBlock}
	}
	if m.Zen {
		return Target{}
	}

	switch {
	case y == l.sliderY && x >= controlsPadX && x < controlsPadX+l.inner:
		return Target{Kind: TargetSlider, Value: sliderValueAt(x-controlsPadX, l.inner)}
	case y == l.pauseY && x >= controlsPadX && x < controlsPadX+l.pauseWidth:
		return Target{Kind: TargetPause}
	}

	for i, option := range m.Table.Options() {
		sx, sy := l.swatchOrigin(i)
		if x >= sx && x < sx+l.swatchWidth && y >= sy && y < sy+design.SwatchHeight {
			return Target{Kind: TargetSwatch, ID: option.ID}
		}
	}
	return Target{}
}

// sliderValueAt converts an offset along a track of the given width into a
// speed position.
func sliderValueAt(offset, width int) int {
	if width <= 1 {
		return speed.Min
	}
	frac := float64(offset) / float64(width-1)
	return speed.Clamp(speed.Min + int(frac*float64(speed.Max-speed.Min)+0.5))
}

// Columns returns how many swatches fit in one grid row at the current size.
func Columns(m *model.Model) int {
	return max(computeLayout(m).cols, 1)
}
