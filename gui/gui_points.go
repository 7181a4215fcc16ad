package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ap-annotator/internal/annotation"
)

// PointsPanel holds the show/select checkbox for each landmark point.
// While the panel is being synchronized from the model (on frame switch)
// the checkbox callbacks are frozen, so a programmatic update never
// writes back into the annotations of the wrong frame.
type PointsPanel struct {
	container *fyne.Container
	checks    [annotation.PointsPerFrame]*widget.Check
	freeze    bool

	onToggle func(id int, visible bool)
}

func NewPointsPanel(onToggle func(id int, visible bool)) *PointsPanel {
	panel := &PointsPanel{onToggle: onToggle}
	panel.setupChecks()
	return panel
}

func (pp *PointsPanel) setupChecks() {
	labels := [annotation.PointsPerFrame]string{"Posterior point", "Anterior point"}

	items := make([]fyne.CanvasObject, 0, annotation.PointsPerFrame*2)
	for id := range pp.checks {
		id := id
		pp.checks[id] = widget.NewCheck("show/select", func(checked bool) {
			if pp.freeze || pp.onToggle == nil {
				return
			}
			pp.onToggle(id, checked)
		})
		items = append(items, widget.NewLabel(labels[id]), pp.checks[id])
	}

	pp.container = container.NewVBox(items...)
}

func (pp *PointsPanel) GetContainer() *fyne.Container {
	return pp.container
}

// Sync sets the checkboxes from the frame's annotations without firing
// the toggle callbacks.
func (pp *PointsPanel) Sync(fa annotation.FrameAnnotations) {
	pp.freeze = true
	for id, check := range pp.checks {
		check.SetChecked(fa[id].Visible)
	}
	pp.freeze = false
}
