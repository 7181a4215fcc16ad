package gui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/input"
)

// Marker colors, one per landmark slot (posterior, anterior).
var markerColors = [annotation.PointsPerFrame]color.NRGBA{
	{R: 0x1a, G: 0x87, B: 0xf4, A: 0xff},
	{R: 0xc1, G: 0x75, B: 0x11, A: 0xff},
}

const markerArm = 10 // crosshair half-length in screen pixels

// FrameView shows the current frame image and its crosshair markers, and
// translates pointer input into image-native coordinates. Left and right
// taps place the posterior and anterior points, middle click advances the
// frame, hovering reports the pointer position, scrolling zooms.
type FrameView struct {
	widget.BaseWidget

	raster  *canvas.Image
	overlay *fyne.Container
	markers [annotation.PointsPerFrame]crosshair

	// Geometry of what the raster currently shows: the frame's native
	// size and the visible sub-rectangle rendered into the raster.
	imgW, imgH  int
	visibleRect image.Rectangle
	annotations annotation.FrameAnnotations

	onPointer func(input.Event)
	onHover   func(annotation.Point)
	onScroll  func(steps float32, at annotation.Point)
}

type crosshair struct {
	h *canvas.Line
	v *canvas.Line
}

func NewFrameView(onPointer func(input.Event), onHover func(annotation.Point),
	onScroll func(steps float32, at annotation.Point)) *FrameView {

	fv := &FrameView{
		onPointer: onPointer,
		onHover:   onHover,
		onScroll:  onScroll,
	}

	fv.raster = canvas.NewImageFromImage(nil)
	fv.raster.FillMode = canvas.ImageFillContain
	fv.raster.SetMinSize(fyne.NewSize(640, 480))

	fv.overlay = container.NewWithoutLayout()
	for id := range fv.markers {
		h := canvas.NewLine(markerColors[id])
		v := canvas.NewLine(markerColors[id])
		h.StrokeWidth = 2
		v.StrokeWidth = 2
		h.Hide()
		v.Hide()
		fv.markers[id] = crosshair{h: h, v: v}
		fv.overlay.Add(h)
		fv.overlay.Add(v)
	}

	fv.ExtendBaseWidget(fv)
	return fv
}

func (fv *FrameView) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(fv.raster, fv.overlay))
}

// ShowFrame replaces the displayed image. img is the rendered visible
// region of a frame whose native size is imgW x imgH.
func (fv *FrameView) ShowFrame(img image.Image, imgW, imgH int, visible image.Rectangle) {
	fv.raster.Image = img
	fv.imgW = imgW
	fv.imgH = imgH
	fv.visibleRect = visible
	fv.raster.Refresh()
	fv.layoutMarkers()
}

// SetMarkers positions the crosshairs from the frame's annotations.
// Hidden points get no marker; nothing stale stays on screen.
func (fv *FrameView) SetMarkers(fa annotation.FrameAnnotations) {
	fv.annotations = fa
	fv.layoutMarkers()
}

func (fv *FrameView) layoutMarkers() {
	for id, mk := range fv.markers {
		ann := fv.annotations[id]
		pos, onScreen := fv.imageToDisplay(ann.Pos)
		if !ann.Visible || !onScreen {
			mk.h.Hide()
			mk.v.Hide()
			continue
		}

		mk.h.Position1 = fyne.NewPos(pos.X-markerArm, pos.Y)
		mk.h.Position2 = fyne.NewPos(pos.X+markerArm, pos.Y)
		mk.v.Position1 = fyne.NewPos(pos.X, pos.Y-markerArm)
		mk.v.Position2 = fyne.NewPos(pos.X, pos.Y+markerArm)
		mk.h.Show()
		mk.v.Show()
		mk.h.Refresh()
		mk.v.Refresh()
	}
}

// Resize keeps the markers glued to their image positions when the
// window geometry changes.
func (fv *FrameView) Resize(size fyne.Size) {
	fv.BaseWidget.Resize(size)
	fv.layoutMarkers()
}

// Tapped places the posterior point (left click).
func (fv *FrameView) Tapped(e *fyne.PointEvent) {
	fv.pointerEvent(input.ButtonLeft, e.Position)
}

// TappedSecondary places the anterior point (right click).
func (fv *FrameView) TappedSecondary(e *fyne.PointEvent) {
	fv.pointerEvent(input.ButtonRight, e.Position)
}

// MouseDown catches the middle button; left and right arrive as taps.
func (fv *FrameView) MouseDown(e *desktop.MouseEvent) {
	if e.Button == desktop.MouseButtonTertiary {
		fv.pointerEvent(input.ButtonMiddle, e.Position)
	}
}

func (fv *FrameView) MouseUp(_ *desktop.MouseEvent) {}

func (fv *FrameView) MouseIn(_ *desktop.MouseEvent) {}

// MouseMoved reports the hovered image coordinate for the status line.
func (fv *FrameView) MouseMoved(e *desktop.MouseEvent) {
	if fv.onHover == nil {
		return
	}
	if pt, ok := fv.displayToImage(e.Position); ok {
		fv.onHover(pt)
	}
}

func (fv *FrameView) MouseOut() {}

// Scrolled zooms around the cursor.
func (fv *FrameView) Scrolled(e *fyne.ScrollEvent) {
	if fv.onScroll == nil {
		return
	}
	if pt, ok := fv.displayToImage(e.Position); ok {
		fv.onScroll(e.Scrolled.DY, pt)
	}
}

func (fv *FrameView) pointerEvent(button input.Button, pos fyne.Position) {
	if fv.onPointer == nil {
		return
	}
	pt, ok := fv.displayToImage(pos)
	if !ok {
		return
	}
	fv.onPointer(input.Event{
		Kind:   input.KindPointer,
		Button: button,
		Pos:    pt,
	})
}

// displayToImage maps a widget-local position to image-native pixel
// coordinates, accounting for contain-fit letterboxing and the zoomed
// visible rectangle. ok is false outside the drawn image.
func (fv *FrameView) displayToImage(pos fyne.Position) (annotation.Point, bool) {
	scale, offX, offY, ok := fv.drawGeometry()
	if !ok {
		return annotation.Point{}, false
	}

	x := (float64(pos.X) - offX) / scale
	y := (float64(pos.Y) - offY) / scale
	if x < 0 || y < 0 || x > float64(fv.visibleRect.Dx()) || y > float64(fv.visibleRect.Dy()) {
		return annotation.Point{}, false
	}

	return annotation.Point{
		X: float64(fv.visibleRect.Min.X) + x,
		Y: float64(fv.visibleRect.Min.Y) + y,
	}, true
}

// imageToDisplay is the inverse mapping, used for marker placement.
func (fv *FrameView) imageToDisplay(pt annotation.Point) (fyne.Position, bool) {
	scale, offX, offY, ok := fv.drawGeometry()
	if !ok {
		return fyne.Position{}, false
	}

	x := pt.X - float64(fv.visibleRect.Min.X)
	y := pt.Y - float64(fv.visibleRect.Min.Y)
	if x < 0 || y < 0 || x > float64(fv.visibleRect.Dx()) || y > float64(fv.visibleRect.Dy()) {
		return fyne.Position{}, false
	}

	return fyne.NewPos(float32(x*scale+offX), float32(y*scale+offY)), true
}

// drawGeometry computes the contain-fit scale and letterbox offsets of
// the visible rectangle inside the widget.
func (fv *FrameView) drawGeometry() (scale, offX, offY float64, ok bool) {
	size := fv.Size()
	vw := float64(fv.visibleRect.Dx())
	vh := float64(fv.visibleRect.Dy())
	if vw <= 0 || vh <= 0 || size.Width <= 0 || size.Height <= 0 {
		return 0, 0, 0, false
	}

	scale = float64(size.Width) / vw
	if s := float64(size.Height) / vh; s < scale {
		scale = s
	}

	offX = (float64(size.Width) - vw*scale) / 2
	offY = (float64(size.Height) - vh*scale) / 2
	return scale, offX, offY, true
}
