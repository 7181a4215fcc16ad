package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"

	"ap-annotator/gui"
	"ap-annotator/internal/imaging"
	"ap-annotator/internal/input"
	"ap-annotator/internal/logger"
	"ap-annotator/internal/stack"
)

const (
	AppName      = "AP Annotator"
	AppID        = "com.annotation.ap-annotator"
	WindowWidth  = 1000
	WindowHeight = 700
)

// AnnotatorApp ties the Fyne window, the GUI facade, and the stack
// controller together. The controller and the displayed frame exist only
// while a folder is open; every handler checks for that.
type AnnotatorApp struct {
	fyneApp fyne.App
	window  fyne.Window
	mainGUI *gui.MainInterface
	log     logger.Logger
	loader  *imaging.Loader

	// State of the currently open stack; nil/empty when no folder is open.
	ctrl       *stack.Controller
	dispatcher *input.Dispatcher
	frame      *imaging.Frame
	folder     string
	pointsPath string
}

func NewAnnotatorApp() *AnnotatorApp {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	log := logger.NewConsoleLogger(logger.LevelFromEnv())

	annotatorApp := &AnnotatorApp{
		fyneApp: fyneApp,
		window:  window,
		log:     log,
		loader:  imaging.NewLoader(log),
	}

	annotatorApp.mainGUI = gui.NewMainInterface(window, gui.Callbacks{
		OnPointer:      annotatorApp.handleEvent,
		OnHover:        annotatorApp.handleHover,
		OnZoom:         annotatorApp.handleZoom,
		OnPointToggle:  annotatorApp.handlePointToggle,
		OnFrameSelect:  annotatorApp.handleFrameSelect,
		OnLevelsChange: annotatorApp.handleLevelsChange,
	})

	return annotatorApp
}

func (app *AnnotatorApp) Run() {
	app.setupMenus()
	app.setupKeyboard()

	app.window.SetContent(app.mainGUI.GetMainContainer())

	app.window.SetCloseIntercept(func() {
		app.cleanup()
		app.window.Close()
	})

	app.window.ShowAndRun()
}

// setupKeyboard registers the plain key map and the Ctrl+S save chord on
// the window canvas. Plain keys go through the same dispatch table as
// pointer input.
func (app *AnnotatorApp) setupKeyboard() {
	keyNames := map[fyne.KeyName]string{
		fyne.KeyA: "A",
		fyne.KeyD: "D",
		fyne.Key1: "1",
		fyne.Key2: "2",
		fyne.KeyQ: "Q",
	}

	app.window.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		key, ok := keyNames[ev.Name]
		if !ok {
			return
		}
		app.handleEvent(input.Event{Kind: input.KindKey, Key: key})
	})

	saveChord := &desktop.CustomShortcut{KeyName: fyne.KeyS, Modifier: fyne.KeyModifierControl}
	app.window.Canvas().AddShortcut(saveChord, func(fyne.Shortcut) {
		app.handleSave()
	})
}

func (app *AnnotatorApp) cleanup() {
	if app.frame != nil {
		app.frame.Close()
		app.frame = nil
	}
}
