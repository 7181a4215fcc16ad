package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ap-annotator/internal/annotation"
)

// StatusBar shows the current frame index, the frame's dimensions, the
// last pointer position in image coordinates, and transient messages.
type StatusBar struct {
	container    *fyne.Container
	frameLabel   *widget.Label
	pointerLabel *widget.Label
	messageLabel *widget.Label
}

func NewStatusBar() *StatusBar {
	statusBar := &StatusBar{}
	statusBar.setupStatusBar()
	return statusBar
}

func (sb *StatusBar) setupStatusBar() {
	sb.frameLabel = widget.NewLabel("z: - x: - y: -")
	sb.pointerLabel = widget.NewLabel("")
	sb.messageLabel = widget.NewLabel("Ready")

	right := container.NewHBox(
		sb.pointerLabel,
		widget.NewSeparator(),
		sb.messageLabel,
	)

	sb.container = container.NewBorder(
		nil, nil,
		sb.frameLabel,
		right,
	)
}

// SetFrameInfo updates the "z: i x: w y: h" readout.
func (sb *StatusBar) SetFrameInfo(z, width, height int) {
	sb.frameLabel.SetText(fmt.Sprintf("z: %d x: %d y: %d", z, width, height))
}

// SetPointerPos shows the hovered image coordinate.
func (sb *StatusBar) SetPointerPos(pt annotation.Point) {
	sb.pointerLabel.SetText(fmt.Sprintf("(%.1f, %.1f)", pt.X, pt.Y))
}

// SetMessage replaces the message section, e.g. after a save.
func (sb *StatusBar) SetMessage(msg string) {
	sb.messageLabel.SetText(msg)
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
