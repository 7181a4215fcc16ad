package annotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DiagonalOffsets(t *testing.T) {
	p0 := Default(Posterior)
	assert.Equal(t, Point{X: 100, Y: 100}, p0.Pos)
	assert.False(t, p0.Visible)

	p1 := Default(Anterior)
	assert.Equal(t, Point{X: 125, Y: 125}, p1.Pos)
	assert.False(t, p1.Visible)
}

func TestDefaultFrame(t *testing.T) {
	fa := DefaultFrame()
	require.Len(t, fa, PointsPerFrame)

	for id, ann := range fa {
		assert.Equal(t, Default(id), ann, "slot %d", id)
	}
}

func TestValidPointID(t *testing.T) {
	assert.True(t, ValidPointID(Posterior))
	assert.True(t, ValidPointID(Anterior))
	assert.False(t, ValidPointID(-1))
	assert.False(t, ValidPointID(2))
}
