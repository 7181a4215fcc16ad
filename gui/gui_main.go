package gui

import (
	"image"

	"fyne.io/fyne/v2"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/input"
	"ap-annotator/internal/stack"
)

// Callbacks wires user interactions back into the application layer. The
// GUI never touches the stack controller itself.
type Callbacks struct {
	OnPointer      func(input.Event)
	OnHover        func(annotation.Point)
	OnZoom         func(steps float32, at annotation.Point)
	OnPointToggle  func(id int, visible bool)
	OnFrameSelect  func(int)
	OnLevelsChange func(stack.LevelWindow)
}

// MainInterface is the GUI facade the application talks to.
type MainInterface struct {
	window    fyne.Window
	layout    *LayoutManager
	callbacks Callbacks
}

func NewMainInterface(window fyne.Window, callbacks Callbacks) *MainInterface {
	return &MainInterface{
		window:    window,
		layout:    NewLayoutManager(callbacks),
		callbacks: callbacks,
	}
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layout.GetMainContainer()
}

// ShowFrame displays a rendered frame region.
func (gui *MainInterface) ShowFrame(img image.Image, imgW, imgH int, visible image.Rectangle) {
	gui.layout.ShowFrame(img, imgW, imgH, visible)
}

// SyncFrameState updates markers and checkboxes from the current frame's
// annotations.
func (gui *MainInterface) SyncFrameState(fa annotation.FrameAnnotations) {
	gui.layout.SetMarkers(fa)
	gui.layout.SyncCheckboxes(fa)
}

// SyncNavigation moves the z slider and frame readout after a frame
// switch.
func (gui *MainInterface) SyncNavigation(z, width, height int) {
	gui.layout.SetFrame(z)
	gui.layout.SetFrameInfo(z, width, height)
}

// ResetForStack prepares the widgets for a freshly opened stack.
func (gui *MainInterface) ResetForStack(frameCount int, view stack.ViewState) {
	gui.layout.SetFrameRange(frameCount)
	gui.layout.SetLevels(view.Levels)
}

func (gui *MainInterface) SetPointerPos(pt annotation.Point) {
	gui.layout.SetPointerPos(pt)
}

func (gui *MainInterface) UpdateStatus(msg string) {
	gui.layout.SetMessage(msg)
}
