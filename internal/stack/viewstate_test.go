package stack

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibleRect_FitShowsEverything(t *testing.T) {
	vs := DefaultViewState()
	assert.Equal(t, image.Rect(0, 0, 800, 600), vs.VisibleRect(800, 600))

	vs.Zoom = 0.5
	assert.Equal(t, image.Rect(0, 0, 800, 600), vs.VisibleRect(800, 600),
		"zoom below 1 still shows the whole image")
}

func TestVisibleRect_ZoomCentered(t *testing.T) {
	vs := ViewState{Zoom: 2, CenterX: 0.5, CenterY: 0.5, Levels: FullLevels()}

	r := vs.VisibleRect(800, 600)
	assert.Equal(t, image.Rect(200, 150, 600, 450), r)
}

func TestVisibleRect_ClampsToImageBounds(t *testing.T) {
	vs := ViewState{Zoom: 4, CenterX: 0, CenterY: 1, Levels: FullLevels()}

	r := vs.VisibleRect(800, 600)
	assert.Equal(t, image.Rect(0, 450, 200, 600), r)
}

func TestVisibleRect_DegenerateImage(t *testing.T) {
	vs := ViewState{Zoom: 2}
	assert.True(t, vs.VisibleRect(0, 0).Empty())
}
