package gui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/stack"
)

// LayoutManager coordinates the main application layout: the frame view
// on the left, the points panel in the right column, the z and level
// sliders below, and the status bar at the bottom.
type LayoutManager struct {
	mainContainer *fyne.Container
	frameView     *FrameView
	pointsPanel   *PointsPanel
	controlsPanel *ControlsPanel
	statusBar     *StatusBar
}

func NewLayoutManager(callbacks Callbacks) *LayoutManager {
	frameView := NewFrameView(callbacks.OnPointer, callbacks.OnHover, callbacks.OnZoom)
	pointsPanel := NewPointsPanel(callbacks.OnPointToggle)
	controlsPanel := NewControlsPanel(callbacks.OnFrameSelect, callbacks.OnLevelsChange)
	statusBar := NewStatusBar()

	bottom := container.NewVBox(
		controlsPanel.GetContainer(),
		statusBar.GetContainer(),
	)

	mainContainer := container.NewBorder(
		nil,                        // top
		bottom,                     // bottom
		nil,                        // left
		pointsPanel.GetContainer(), // right
		frameView,                  // center
	)

	return &LayoutManager{
		mainContainer: mainContainer,
		frameView:     frameView,
		pointsPanel:   pointsPanel,
		controlsPanel: controlsPanel,
		statusBar:     statusBar,
	}
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

// Frame view methods
func (lm *LayoutManager) ShowFrame(img image.Image, imgW, imgH int, visible image.Rectangle) {
	lm.frameView.ShowFrame(img, imgW, imgH, visible)
}

func (lm *LayoutManager) SetMarkers(fa annotation.FrameAnnotations) {
	lm.frameView.SetMarkers(fa)
}

// Points panel methods
func (lm *LayoutManager) SyncCheckboxes(fa annotation.FrameAnnotations) {
	lm.pointsPanel.Sync(fa)
}

// Controls methods
func (lm *LayoutManager) SetFrameRange(frameCount int) {
	lm.controlsPanel.SetFrameRange(frameCount)
}

func (lm *LayoutManager) SetFrame(i int) {
	lm.controlsPanel.SetFrame(i)
}

func (lm *LayoutManager) SetLevels(lw stack.LevelWindow) {
	lm.controlsPanel.SetLevels(lw)
}

// Status methods
func (lm *LayoutManager) SetFrameInfo(z, width, height int) {
	lm.statusBar.SetFrameInfo(z, width, height)
}

func (lm *LayoutManager) SetPointerPos(pt annotation.Point) {
	lm.statusBar.SetPointerPos(pt)
}

func (lm *LayoutManager) SetMessage(msg string) {
	lm.statusBar.SetMessage(msg)
}
