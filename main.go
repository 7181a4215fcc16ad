package main

// AP Annotator: load an ordered PNG image stack and annotate the
// anterior and posterior landmark point on each frame. The application
// logic is split across:
// - app_core.go: application structure, window setup, keyboard wiring
// - app_handlers.go: folder open, save, and input event handlers
// - app_menus.go: menu setup

func main() {
	app := NewAnnotatorApp()
	app.Run()
}
