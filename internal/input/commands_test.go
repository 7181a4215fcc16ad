package input

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/stack"
)

func openStack(t *testing.T, n int) *stack.Controller {
	t.Helper()
	frames := make([]string, n)
	for i := range frames {
		frames[i] = fmt.Sprintf("/stack/%d.png", i)
	}
	c, err := stack.Open(frames, nil, nil)
	require.NoError(t, err)
	return c
}

func TestLeftClick_SetsPosteriorVisible(t *testing.T) {
	c := openStack(t, 3)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{
		Kind:   KindPointer,
		Button: ButtonLeft,
		Pos:    annotation.Point{X: 50, Y: 60},
	})
	require.NoError(t, err)
	assert.Equal(t, ActionRedraw, action)

	fa := c.Current()
	assert.Equal(t, annotation.Point{X: 50, Y: 60}, fa[annotation.Posterior].Pos)
	assert.True(t, fa[annotation.Posterior].Visible)
	assert.False(t, fa[annotation.Anterior].Visible)
}

func TestRightClick_SetsAnteriorVisible(t *testing.T) {
	c := openStack(t, 3)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{
		Kind:   KindPointer,
		Button: ButtonRight,
		Pos:    annotation.Point{X: 7, Y: 8},
	})
	require.NoError(t, err)
	assert.Equal(t, ActionRedraw, action)

	fa := c.Current()
	assert.True(t, fa[annotation.Anterior].Visible)
	assert.Equal(t, annotation.Point{X: 7, Y: 8}, fa[annotation.Anterior].Pos)
	assert.False(t, fa[annotation.Posterior].Visible)
}

func TestMiddleClick_AdvancesFrame(t *testing.T) {
	c := openStack(t, 3)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindPointer, Button: ButtonMiddle})
	require.NoError(t, err)
	assert.Equal(t, ActionFrameChanged, action)
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestKeyD_AdvancesAndClampsAtEnd(t *testing.T) {
	c := openStack(t, 2)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "D"})
	require.NoError(t, err)
	assert.Equal(t, ActionFrameChanged, action)
	assert.Equal(t, 1, c.CurrentIndex())

	// At the last frame advancing is a no-op.
	action, err = d.Handle(Event{Kind: KindKey, Key: "D"})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
	assert.Equal(t, 1, c.CurrentIndex())
}

func TestKeyA_RetreatsAndClampsAtStart(t *testing.T) {
	c := openStack(t, 2)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "A"})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action, "retreat at frame 0 is a no-op")

	require.NoError(t, c.SetCurrentFrame(1))
	action, err = d.Handle(Event{Kind: KindKey, Key: "A"})
	require.NoError(t, err)
	assert.Equal(t, ActionFrameChanged, action)
	assert.Equal(t, 0, c.CurrentIndex())
}

func TestKeys1And2_ToggleVisibility(t *testing.T) {
	c := openStack(t, 1)
	d := NewDispatcher(c)

	for _, tc := range []struct {
		key string
		id  int
	}{
		{"1", annotation.Posterior},
		{"2", annotation.Anterior},
	} {
		action, err := d.Handle(Event{Kind: KindKey, Key: tc.key})
		require.NoError(t, err)
		assert.Equal(t, ActionRedraw, action)
		assert.True(t, c.Current()[tc.id].Visible, "key %s shows point %d", tc.key, tc.id)

		action, err = d.Handle(Event{Kind: KindKey, Key: tc.key})
		require.NoError(t, err)
		assert.Equal(t, ActionRedraw, action)
		assert.False(t, c.Current()[tc.id].Visible, "key %s hides point %d again", tc.key, tc.id)
	}
}

func TestKeyQ_ForcesBothVisible(t *testing.T) {
	c := openStack(t, 1)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "Q"})
	require.NoError(t, err)
	assert.Equal(t, ActionRedraw, action)

	fa := c.Current()
	assert.True(t, fa[annotation.Posterior].Visible)
	assert.True(t, fa[annotation.Anterior].Visible)

	// Q never hides; pressing it again keeps both visible.
	_, err = d.Handle(Event{Kind: KindKey, Key: "Q"})
	require.NoError(t, err)
	fa = c.Current()
	assert.True(t, fa[annotation.Posterior].Visible)
	assert.True(t, fa[annotation.Anterior].Visible)
}

func TestCtrlS_RequestsSave(t *testing.T) {
	c := openStack(t, 1)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "S", Ctrl: true})
	require.NoError(t, err)
	assert.Equal(t, ActionSave, action)

	// Plain S does nothing.
	action, err = d.Handle(Event{Kind: KindKey, Key: "S"})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
}

func TestLowercaseKeysNormalized(t *testing.T) {
	c := openStack(t, 2)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "d"})
	require.NoError(t, err)
	assert.Equal(t, ActionFrameChanged, action)

	action, err = d.Handle(Event{Kind: KindKey, Key: "s", Ctrl: true})
	require.NoError(t, err)
	assert.Equal(t, ActionSave, action)
}

func TestUnknownInputsIgnored(t *testing.T) {
	c := openStack(t, 1)
	d := NewDispatcher(c)

	action, err := d.Handle(Event{Kind: KindKey, Key: "X"})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)

	action, err = d.Handle(Event{Kind: KindPointer, Button: ButtonNone})
	require.NoError(t, err)
	assert.Equal(t, ActionNone, action)
}
