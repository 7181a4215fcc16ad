package main

import (
	"fyne.io/fyne/v2"
)

func (app *AnnotatorApp) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open...", func() {
			app.handleFolderOpen()
		}),
		fyne.NewMenuItem("Save", func() {
			app.handleSave()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			app.fyneApp.Quit()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu)
	app.window.SetMainMenu(mainMenu)
}
