package annotation

// Point is a position in the image's native pixel coordinate frame.
type Point struct {
	X float64
	Y float64
}

// Point identities within a frame. The posterior point always occupies
// slot 0 and the anterior point slot 1; the slots never swap.
const (
	Posterior = 0
	Anterior  = 1

	// PointsPerFrame is the fixed number of landmark points on every frame.
	PointsPerFrame = 2
)

// Annotation is one landmark point on one frame: a position plus a
// visibility flag. Position and visibility mutate independently; an
// invisible annotation keeps its last explicit position in memory.
type Annotation struct {
	Pos     Point
	Visible bool
}

// FrameAnnotations holds the two landmark annotations of a single frame,
// indexed by point id (Posterior, Anterior).
type FrameAnnotations [PointsPerFrame]Annotation

// Default returns the creation-time annotation for point id: hidden, at
// the diagonal offset (100+25*id, 100+25*id).
func Default(id int) Annotation {
	return Annotation{
		Pos:     Point{X: 100 + 25*float64(id), Y: 100 + 25*float64(id)},
		Visible: false,
	}
}

// DefaultFrame returns a FrameAnnotations with both points at their
// default positions and hidden.
func DefaultFrame() FrameAnnotations {
	var fa FrameAnnotations
	for id := range fa {
		fa[id] = Default(id)
	}
	return fa
}

// ValidPointID reports whether id names one of the two landmark slots.
func ValidPointID(id int) bool {
	return id >= 0 && id < PointsPerFrame
}
