package main

import (
	"fmt"
	"path/filepath"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/input"
	"ap-annotator/internal/persist"
	"ap-annotator/internal/stack"
)

func (app *AnnotatorApp) handleFolderOpen() {
	settings, err := persist.LoadSettings(persist.SettingsFileName)
	if err != nil {
		app.showError(err)
		return
	}

	folderDialog := dialog.NewFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			app.showError(err)
			return
		}
		if list == nil {
			return
		}

		folder := list.Path()
		app.mainGUI.UpdateStatus("Loading stack...")

		// Discovery, sidecar parsing, and the first frame decode run off
		// the UI thread; every GUI mutation goes back through fyne.Do.
		go app.openFolder(folder)
	}, app.window)

	if settings.DefaultDirectory != "" {
		if lister, lerr := storage.ListerForURI(storage.NewFileURI(settings.DefaultDirectory)); lerr == nil {
			folderDialog.SetLocation(lister)
		}
	}

	folderDialog.Show()
}

func (app *AnnotatorApp) openFolder(folder string) {
	frames, segFrames, err := stack.DiscoverFrames(folder)
	if err != nil {
		app.failOpen(err)
		return
	}

	pointsPath := filepath.Join(folder, persist.PointsFileName)
	prior, err := persist.Load(pointsPath)
	if err != nil {
		app.failOpen(err)
		return
	}

	ctrl, err := stack.Open(frames, segFrames, prior)
	if err != nil {
		app.failOpen(err)
		return
	}

	frame, err := app.loader.LoadFrame(ctrl.FramePath(0))
	if err != nil {
		app.failOpen(err)
		return
	}

	app.log.Info("Stack", "folder opened", map[string]interface{}{
		"folder":        folder,
		"frames":        ctrl.FrameCount(),
		"seg_frames":    len(segFrames),
		"prior_entries": len(prior),
	})

	fyne.Do(func() {
		app.cleanup()
		app.ctrl = ctrl
		app.dispatcher = input.NewDispatcher(ctrl)
		app.frame = frame
		app.folder = folder
		app.pointsPath = pointsPath

		app.window.SetTitle(fmt.Sprintf("%s | Working on folder %s", AppName, folder))
		app.mainGUI.ResetForStack(ctrl.FrameCount(), ctrl.ViewState())
		app.renderFrame()
		app.mainGUI.UpdateStatus("Stack loaded")
	})
}

func (app *AnnotatorApp) failOpen(err error) {
	fyne.Do(func() {
		app.showError(err)
		app.mainGUI.UpdateStatus("Ready")
	})
}

// renderFrame pushes the current frame image, markers, checkboxes, and
// navigation readout into the GUI.
func (app *AnnotatorApp) renderFrame() {
	if app.ctrl == nil || app.frame == nil {
		return
	}

	view := app.ctrl.ViewState()
	img, err := app.frame.Render(view)
	if err != nil {
		app.showError(err)
		return
	}

	visible := view.VisibleRect(app.frame.Width, app.frame.Height)
	app.mainGUI.ShowFrame(img, app.frame.Width, app.frame.Height, visible)
	app.mainGUI.SyncFrameState(app.ctrl.Current())
	app.mainGUI.SyncNavigation(app.ctrl.CurrentIndex(), app.frame.Width, app.frame.Height)
}

// reloadFrame swaps the decoded image after the cursor moved. The view
// state is reapplied unchanged by renderFrame, so zoom and levels carry
// over.
func (app *AnnotatorApp) reloadFrame() {
	path := app.ctrl.FramePath(app.ctrl.CurrentIndex())
	frame, err := app.loader.LoadFrame(path)
	if err != nil {
		app.showError(err)
		return
	}

	if app.frame != nil {
		app.frame.Close()
	}
	app.frame = frame
}

// handleEvent feeds one normalized input through the dispatch table and
// performs the follow-up it asks for.
func (app *AnnotatorApp) handleEvent(ev input.Event) {
	if app.ctrl == nil {
		return
	}

	action, err := app.dispatcher.Handle(ev)
	if err != nil {
		app.showError(err)
		return
	}

	switch action {
	case input.ActionRedraw:
		app.mainGUI.SyncFrameState(app.ctrl.Current())
	case input.ActionFrameChanged:
		app.reloadFrame()
		app.renderFrame()
	case input.ActionSave:
		app.handleSave()
	}
}

func (app *AnnotatorApp) handleFrameSelect(i int) {
	if app.ctrl == nil {
		return
	}
	if err := app.ctrl.SetCurrentFrame(i); err != nil {
		app.log.Warning("Stack", "frame selection rejected", map[string]interface{}{
			"index": i,
		})
		return
	}
	app.reloadFrame()
	app.renderFrame()
}

func (app *AnnotatorApp) handlePointToggle(id int, visible bool) {
	if app.ctrl == nil {
		return
	}
	if err := app.ctrl.SetPointVisibility(id, visible); err != nil {
		app.showError(err)
		return
	}
	app.mainGUI.SyncFrameState(app.ctrl.Current())
}

func (app *AnnotatorApp) handleHover(pt annotation.Point) {
	app.mainGUI.SetPointerPos(pt)
}

const (
	zoomStep = 1.25
	zoomMax  = 16
)

func (app *AnnotatorApp) handleZoom(steps float32, at annotation.Point) {
	if app.ctrl == nil || app.frame == nil {
		return
	}

	view := app.ctrl.ViewState()
	if steps > 0 {
		view.Zoom *= zoomStep
	} else {
		view.Zoom /= zoomStep
	}
	if view.Zoom < 1 {
		view.Zoom = 1
	}
	if view.Zoom > zoomMax {
		view.Zoom = zoomMax
	}

	view.CenterX = at.X / float64(app.frame.Width)
	view.CenterY = at.Y / float64(app.frame.Height)

	app.ctrl.SetViewState(view)
	app.renderFrame()
}

func (app *AnnotatorApp) handleLevelsChange(lw stack.LevelWindow) {
	if app.ctrl == nil {
		return
	}

	view := app.ctrl.ViewState()
	view.Levels = lw
	app.ctrl.SetViewState(view)
	app.renderFrame()
}

// handleSave writes all visible annotations to the sidecar. With no open
// stack it is a silent no-op.
func (app *AnnotatorApp) handleSave() {
	if app.ctrl == nil || app.pointsPath == "" {
		return
	}

	entries := app.ctrl.Serialize()
	if err := persist.Save(app.pointsPath, entries); err != nil {
		app.showError(err)
		return
	}

	app.log.Info("Persist", "annotations saved", map[string]interface{}{
		"path":    app.pointsPath,
		"entries": len(entries),
	})
	app.mainGUI.UpdateStatus(fmt.Sprintf("ROIs saved to %s", app.pointsPath))
}

func (app *AnnotatorApp) showError(err error) {
	app.log.Error("UI", err, nil)
	dialog.ShowError(err, app.window)
}
