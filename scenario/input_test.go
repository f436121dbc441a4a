package scenario

import (
	"testing"

	"github.com/detersim/determinisk/dlog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaultsFillsZeroFields(t *testing.T) {
	in := Input{}
	in.ApplyDefaults(dlog.NewDefaultLogger())

	assert.Equal(t, defaultRestitution, in.Restitution)
	assert.Equal(t, defaultPositionCorrection, in.PositionCorrection)
}

func TestApplyDefaultsPreservesExplicitValues(t *testing.T) {
	in := Input{Restitution: 0.3, PositionCorrection: 0.5}
	in.ApplyDefaults(dlog.NewDefaultLogger())

	assert.Equal(t, 0.3, in.Restitution)
	assert.Equal(t, 0.5, in.PositionCorrection)
}

func TestBuildWorldFromSimpleDrop(t *testing.T) {
	in := SimpleDrop()
	w, err := in.BuildWorld()
	require.NoError(t, err)
	require.Len(t, w.Circles, 1)

	assert.InDelta(t, 50.0, w.Circles[0].Position.X.ToFloat64(), 0.001)
	assert.InDelta(t, 80.0, w.Circles[0].Position.Y.ToFloat64(), 0.001)
}

func TestBuildWorldRejectsInvalidExtent(t *testing.T) {
	in := SimpleDrop()
	in.WorldWidth = 0
	_, err := in.BuildWorld()
	require.Error(t, err)
}

func TestBuildWorldRejectsInvalidCircle(t *testing.T) {
	in := SimpleDrop()
	in.Circles[0].Radius = 0
	_, err := in.BuildWorld()
	require.Error(t, err)
}

func TestBuildWorldSeedsVelocity(t *testing.T) {
	in := ThreeBodyCollision()
	w, err := in.BuildWorld()
	require.NoError(t, err)

	assert.InDelta(t, 5.0, w.Circles[0].Velocity.X.ToFloat64(), 0.01)
	assert.InDelta(t, -5.0, w.Circles[1].Velocity.X.ToFloat64(), 0.01)
}
