package stack

import "image"

// LevelWindow is the intensity window applied when rendering a frame:
// source values at Min map to black, values at Max to white.
type LevelWindow struct {
	Min float64
	Max float64
}

// FullLevels spans the whole 8-bit range, i.e. no windowing.
func FullLevels() LevelWindow {
	return LevelWindow{Min: 0, Max: 255}
}

// ViewState is the transient framing of the displayed image: zoom factor,
// view center, and intensity levels. It belongs to the stack as a whole,
// not to a frame — switching frames reapplies it unchanged so the visual
// framing survives navigation.
//
// Center is in normalized image coordinates (0..1 across width and
// height), which keeps the state meaningful across frames of equal size.
type ViewState struct {
	Zoom    float64
	CenterX float64
	CenterY float64
	Levels  LevelWindow
}

// DefaultViewState fits the whole image with full levels.
func DefaultViewState() ViewState {
	return ViewState{Zoom: 1, CenterX: 0.5, CenterY: 0.5, Levels: FullLevels()}
}

// VisibleRect returns the sub-rectangle of a w-by-h image that the view
// shows at the current zoom and center, clamped to the image bounds. At
// Zoom <= 1 the whole image is visible.
func (v ViewState) VisibleRect(w, h int) image.Rectangle {
	if v.Zoom <= 1 || w <= 0 || h <= 0 {
		return image.Rect(0, 0, w, h)
	}

	vw := float64(w) / v.Zoom
	vh := float64(h) / v.Zoom

	x0 := v.CenterX*float64(w) - vw/2
	y0 := v.CenterY*float64(h) - vh/2

	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x0+vw > float64(w) {
		x0 = float64(w) - vw
	}
	if y0+vh > float64(h) {
		y0 = float64(h) - vh
	}

	r := image.Rect(int(x0), int(y0), int(x0+vw), int(y0+vh))
	return r.Intersect(image.Rect(0, 0, w, h))
}
