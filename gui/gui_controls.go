package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"ap-annotator/internal/stack"
)

// ControlsPanel carries the z slider and the intensity level sliders.
// Like the points panel it freezes its callbacks while being synchronized
// from the model.
type ControlsPanel struct {
	container   *fyne.Container
	zSlider     *widget.Slider
	levelMin    *widget.Slider
	levelMax    *widget.Slider
	freeze      bool

	onFrameSelect  func(int)
	onLevelsChange func(stack.LevelWindow)
}

func NewControlsPanel(onFrameSelect func(int), onLevelsChange func(stack.LevelWindow)) *ControlsPanel {
	panel := &ControlsPanel{
		onFrameSelect:  onFrameSelect,
		onLevelsChange: onLevelsChange,
	}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	cp.zSlider = widget.NewSlider(0, 0)
	cp.zSlider.Step = 1
	cp.zSlider.OnChanged = func(v float64) {
		if cp.freeze || cp.onFrameSelect == nil {
			return
		}
		cp.onFrameSelect(int(v))
	}

	cp.levelMin = widget.NewSlider(0, 255)
	cp.levelMax = widget.NewSlider(0, 255)
	cp.levelMax.SetValue(255)
	cp.levelMin.OnChanged = func(float64) { cp.levelsChanged() }
	cp.levelMax.OnChanged = func(float64) { cp.levelsChanged() }

	cp.container = container.NewVBox(
		widget.NewLabel("z position"),
		cp.zSlider,
		widget.NewSeparator(),
		widget.NewLabel("Levels (min / max)"),
		cp.levelMin,
		cp.levelMax,
	)
}

func (cp *ControlsPanel) levelsChanged() {
	if cp.freeze || cp.onLevelsChange == nil {
		return
	}
	lw := stack.LevelWindow{Min: cp.levelMin.Value, Max: cp.levelMax.Value}
	if lw.Max <= lw.Min {
		return
	}
	cp.onLevelsChange(lw)
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

// SetFrameRange sizes the z slider for a freshly opened stack.
func (cp *ControlsPanel) SetFrameRange(frameCount int) {
	cp.freeze = true
	cp.zSlider.Min = 0
	cp.zSlider.Max = float64(frameCount - 1)
	cp.zSlider.SetValue(0)
	cp.freeze = false
}

// SetFrame moves the z slider without firing the selection callback.
func (cp *ControlsPanel) SetFrame(i int) {
	cp.freeze = true
	cp.zSlider.SetValue(float64(i))
	cp.freeze = false
}

// SetLevels moves the level sliders without firing the change callback.
func (cp *ControlsPanel) SetLevels(lw stack.LevelWindow) {
	cp.freeze = true
	cp.levelMin.SetValue(lw.Min)
	cp.levelMax.SetValue(lw.Max)
	cp.freeze = false
}
