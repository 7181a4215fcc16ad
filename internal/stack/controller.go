// Package stack owns the annotation state of one open image stack: the
// ordered frame files, one FrameAnnotations per frame, the current-frame
// cursor, and the transient view state carried across frame switches.
// All mutation happens synchronously on the UI event thread; the
// Controller has no locking of its own.
package stack

import (
	"fmt"

	"ap-annotator/internal/annotation"
	"ap-annotator/internal/persist"
)

// Controller is the authoritative model behind the annotator window.
type Controller struct {
	frames    []string
	segFrames []string
	ann       []annotation.FrameAnnotations
	cur       int
	view      ViewState
}

// Open builds the stack model for an ordered list of frame files,
// overlaying any previously persisted entries. Frame and overlay
// filenames must carry contiguous indices 0..N-1; anything else is a
// ConsistencyError and the open aborts. Prior entries referencing a frame
// or point id outside the stack are a MalformedDataError.
func Open(frames, segFrames []string, prior []persist.Entry) (*Controller, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("no frame images found")
	}
	if err := validateSequence(frames, frameSuffix); err != nil {
		return nil, err
	}
	if err := validateSequence(segFrames, segSuffix); err != nil {
		return nil, err
	}

	ann := make([]annotation.FrameAnnotations, len(frames))
	for i := range ann {
		ann[i] = annotation.DefaultFrame()
	}

	for _, e := range prior {
		if e.Z < 0 || e.Z >= len(frames) {
			return nil, &persist.MalformedDataError{
				Path:   persist.PointsFileName,
				Reason: fmt.Sprintf("entry frame index %d outside stack of %d frames", e.Z, len(frames)),
			}
		}
		if !annotation.ValidPointID(e.ID) {
			return nil, &persist.MalformedDataError{
				Path:   persist.PointsFileName,
				Reason: fmt.Sprintf("entry point id %d is not a valid landmark id", e.ID),
			}
		}
		ann[e.Z][e.ID] = annotation.Annotation{
			Pos:     annotation.Point{X: e.Pos[0], Y: e.Pos[1]},
			Visible: true,
		}
	}

	return &Controller{
		frames:    frames,
		segFrames: segFrames,
		ann:       ann,
		view:      DefaultViewState(),
	}, nil
}

// FrameCount returns the number of frames in the stack.
func (c *Controller) FrameCount() int {
	return len(c.frames)
}

// CurrentIndex returns the current frame cursor.
func (c *Controller) CurrentIndex() int {
	return c.cur
}

// FramePath returns the image file of frame i.
func (c *Controller) FramePath(i int) string {
	return c.frames[i]
}

// SegFramePath returns the segmentation overlay of frame i, or "" when
// the stack has no overlay for it.
func (c *Controller) SegFramePath(i int) string {
	if i < 0 || i >= len(c.segFrames) {
		return ""
	}
	return c.segFrames[i]
}

// SetCurrentFrame moves the cursor to frame i. Annotation edits are
// written into the model as they happen, so there is nothing to flush
// here; the view state is deliberately left untouched, which is what
// carries zoom and levels across the switch. Out-of-range indices are
// rejected.
func (c *Controller) SetCurrentFrame(i int) error {
	if i < 0 || i >= len(c.frames) {
		return fmt.Errorf("frame index %d out of range [0, %d)", i, len(c.frames))
	}
	c.cur = i
	return nil
}

// Advance moves the cursor forward by one frame, clamping at the last
// frame, and returns the new index.
func (c *Controller) Advance() int {
	if c.cur < len(c.frames)-1 {
		c.cur++
	}
	return c.cur
}

// Retreat moves the cursor back by one frame, clamping at frame 0, and
// returns the new index.
func (c *Controller) Retreat() int {
	if c.cur > 0 {
		c.cur--
	}
	return c.cur
}

// Current returns the annotations of the current frame.
func (c *Controller) Current() annotation.FrameAnnotations {
	return c.ann[c.cur]
}

// Annotations returns the annotations of frame i.
func (c *Controller) Annotations(i int) annotation.FrameAnnotations {
	return c.ann[i]
}

// SetPointPosition moves point id on the current frame and marks it
// visible. Positioning a point is what brings it into existence from the
// user's perspective, so visibility is implied.
func (c *Controller) SetPointPosition(id int, p annotation.Point) error {
	if !annotation.ValidPointID(id) {
		return fmt.Errorf("invalid point id %d", id)
	}
	c.ann[c.cur][id].Pos = p
	c.ann[c.cur][id].Visible = true
	return nil
}

// SetPointVisibility toggles point id on the current frame. The position
// is retained, so hiding and reshowing a point restores its last explicit
// position as long as the stack is not reloaded from disk.
func (c *Controller) SetPointVisibility(id int, visible bool) error {
	if !annotation.ValidPointID(id) {
		return fmt.Errorf("invalid point id %d", id)
	}
	c.ann[c.cur][id].Visible = visible
	return nil
}

// ForceVisible marks both points of the current frame visible.
func (c *Controller) ForceVisible() {
	for id := range c.ann[c.cur] {
		c.ann[c.cur][id].Visible = true
	}
}

// ViewState returns the carried view state.
func (c *Controller) ViewState() ViewState {
	return c.view
}

// SetViewState stores the view state captured by the display widget.
func (c *Controller) SetViewState(v ViewState) {
	c.view = v
}

// Serialize flattens every visible annotation across all frames into
// persisted entries, frame-major and point-id-minor. Hidden points are
// omitted; that loss is the sidecar format's contract.
func (c *Controller) Serialize() []persist.Entry {
	entries := []persist.Entry{}
	for z, fa := range c.ann {
		for id, a := range fa {
			if !a.Visible {
				continue
			}
			entries = append(entries, persist.Entry{
				Z:   z,
				ID:  id,
				Pos: [2]float64{a.Pos.X, a.Pos.Y},
			})
		}
	}
	return entries
}
