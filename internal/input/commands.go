// Package input maps raw pointer and key events onto stack controller
// operations through an explicit dispatch table. The GUI layer only
// translates toolkit events into Event values; every behavioral decision
// lives in the table here, where it can be tested without a window.
package input

import (
	"strings"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/stack"
)

// Kind discriminates pointer events from key events.
type Kind int

const (
	KindKey Kind = iota
	KindPointer
)

// Button identifies the pointer button of a KindPointer event.
type Button int

const (
	ButtonNone Button = iota
	ButtonLeft
	ButtonRight
	ButtonMiddle
)

// Event is one normalized user input. Pos carries image-native pixel
// coordinates for pointer events; Key is the uppercase key name for key
// events.
type Event struct {
	Kind   Kind
	Key    string
	Ctrl   bool
	Button Button
	Pos    annotation.Point
}

// Action tells the caller what follow-up the handled event requires.
type Action int

const (
	// ActionNone: nothing changed.
	ActionNone Action = iota

	// ActionRedraw: markers or checkboxes changed on the current frame.
	ActionRedraw

	// ActionFrameChanged: the cursor moved; the frame image must be
	// reloaded and the view re-synchronized.
	ActionFrameChanged

	// ActionSave: the user requested a save of all annotations.
	ActionSave
)

// Dispatcher applies events to a stack controller.
type Dispatcher struct {
	ctrl *stack.Controller
}

func NewDispatcher(ctrl *stack.Controller) *Dispatcher {
	return &Dispatcher{ctrl: ctrl}
}

type keyHandler func(c *stack.Controller) Action

// keyTable is the command map for plain key presses:
// A/D step the frame cursor, 1/2 toggle point visibility, Q forces both
// points visible. Ctrl+S is handled separately because it is the only
// modified chord.
var keyTable = map[string]keyHandler{
	"D": advanceFrame,
	"A": retreatFrame,
	"1": togglePoint(annotation.Posterior),
	"2": togglePoint(annotation.Anterior),
	"Q": forceVisible,
}

// Handle applies one event and reports the required follow-up.
func (d *Dispatcher) Handle(ev Event) (Action, error) {
	switch ev.Kind {
	case KindPointer:
		return d.handlePointer(ev)
	case KindKey:
		return d.handleKey(ev)
	}
	return ActionNone, nil
}

func (d *Dispatcher) handleKey(ev Event) (Action, error) {
	key := strings.ToUpper(ev.Key)

	if key == "S" && ev.Ctrl {
		return ActionSave, nil
	}

	handler, ok := keyTable[key]
	if !ok {
		return ActionNone, nil
	}
	return handler(d.ctrl), nil
}

func (d *Dispatcher) handlePointer(ev Event) (Action, error) {
	switch ev.Button {
	case ButtonLeft:
		if err := d.ctrl.SetPointPosition(annotation.Posterior, ev.Pos); err != nil {
			return ActionNone, err
		}
		return ActionRedraw, nil
	case ButtonRight:
		if err := d.ctrl.SetPointPosition(annotation.Anterior, ev.Pos); err != nil {
			return ActionNone, err
		}
		return ActionRedraw, nil
	case ButtonMiddle:
		return advanceFrame(d.ctrl), nil
	}
	return ActionNone, nil
}

func advanceFrame(c *stack.Controller) Action {
	old := c.CurrentIndex()
	if c.Advance() == old {
		return ActionNone
	}
	return ActionFrameChanged
}

func retreatFrame(c *stack.Controller) Action {
	old := c.CurrentIndex()
	if c.Retreat() == old {
		return ActionNone
	}
	return ActionFrameChanged
}

func togglePoint(id int) keyHandler {
	return func(c *stack.Controller) Action {
		visible := c.Current()[id].Visible
		if err := c.SetPointVisibility(id, !visible); err != nil {
			return ActionNone
		}
		return ActionRedraw
	}
}

func forceVisible(c *stack.Controller) Action {
	c.ForceVisible()
	return ActionRedraw
}
