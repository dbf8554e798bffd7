package canvas

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// DrawBackgroundGrid renders the infinite scene grid for the store's
// current camera. Lines closer together than minSpacing pixels are skipped
// by doubling the step.
func DrawBackgroundGrid(s *Store, screen *ebiten.Image, gridSize, minSpacing float64, gridColor, originCross color.Color) {
	view := s.Screen()
	scale := s.Scale()
	size := s.Container()

	step := gridSize
	for step*scale.X < minSpacing && step < 1e9 {
		step *= 2
	}

	startX := math.Floor(view.Left/step) * step
	startY := math.Floor(view.Top/step) * step

	// Vertical lines
	for wx := startX; wx <= view.Right(); wx += step {
		sx, _ := s.SceneToScreen(Point{X: wx})
		vector.StrokeLine(screen, float32(sx), 0, float32(sx), float32(size.Height), 1, gridColor, false)
	}

	// Horizontal lines
	for wy := startY; wy <= view.Bottom(); wy += step {
		_, sy := s.SceneToScreen(Point{Y: wy})
		vector.StrokeLine(screen, 0, float32(sy), float32(size.Width), float32(sy), 1, gridColor, false)
	}

	ox, oy := s.SceneToScreen(Point{})
	vector.StrokeLine(screen, float32(ox-15), float32(oy), float32(ox+15), float32(oy), 2, originCross, false)
	vector.StrokeLine(screen, float32(ox), float32(oy-15), float32(ox), float32(oy+15), 2, originCross, false)
}
