// Package imaging decodes frame images and renders them under the
// stack's transient view state (zoom window, intensity levels). Decoding
// goes through OpenCV so level windowing is a single linear Mat
// transform; only the currently displayed frame keeps a decoded Mat
// alive.
package imaging

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"ap-annotator/internal/logger"
	"ap-annotator/internal/stack"
)

// Frame is one decoded stack image, owning its OpenCV Mat. Close it
// before loading the next frame.
type Frame struct {
	Path   string
	Width  int
	Height int

	mat    gocv.Mat
	closed bool
}

// Loader decodes frames from disk.
type Loader struct {
	log logger.Logger
}

func NewLoader(log logger.Logger) *Loader {
	return &Loader{log: log}
}

// LoadFrame decodes the image at path.
func (l *Loader) LoadFrame(path string) (*Frame, error) {
	mat := gocv.IMRead(path, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("failed to decode frame image %s", path)
	}

	frame := &Frame{
		Path:   path,
		Width:  mat.Cols(),
		Height: mat.Rows(),
		mat:    mat,
	}

	l.log.Debug("ImageLoader", "frame decoded", map[string]interface{}{
		"path":   path,
		"width":  frame.Width,
		"height": frame.Height,
	})

	return frame, nil
}

// Render produces the displayable image for the given view state: the
// visible sub-rectangle of the frame with the intensity window applied.
func (f *Frame) Render(view stack.ViewState) (image.Image, error) {
	if f.closed {
		return nil, fmt.Errorf("frame %s already released", f.Path)
	}

	rect := view.VisibleRect(f.Width, f.Height)
	if rect.Empty() {
		return nil, fmt.Errorf("frame %s has an empty visible region", f.Path)
	}

	region := f.mat.Region(rect)
	defer region.Close()

	windowed := gocv.NewMat()
	defer windowed.Close()

	alpha, beta := levelTransform(view.Levels)
	region.ConvertToWithParams(&windowed, gocv.MatTypeCV8UC3, alpha, beta)

	img, err := windowed.ToImage()
	if err != nil {
		return nil, fmt.Errorf("failed to convert frame %s for display: %w", f.Path, err)
	}
	return img, nil
}

// Close releases the decoded Mat. Safe to call more than once.
func (f *Frame) Close() {
	if f.closed {
		return
	}
	f.closed = true
	f.mat.Close()
}

// levelTransform converts a level window into the linear map
// out = in*alpha + beta that sends Min to 0 and Max to 255. Degenerate
// windows collapse to the identity.
func levelTransform(lw stack.LevelWindow) (alpha, beta float32) {
	if lw.Max <= lw.Min {
		return 1, 0
	}
	a := 255 / (lw.Max - lw.Min)
	return float32(a), float32(-lw.Min * a)
}
