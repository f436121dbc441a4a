package scenario

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetScenarioKnownNames(t *testing.T) {
	for _, name := range []string{"simple_drop", "pool-break", "three_body_collision", "pool_break_15"} {
		_, err := GetScenario(name)
		assert.NoError(t, err, "scenario %q should resolve", name)
	}
}

func TestGetScenarioUnknownName(t *testing.T) {
	_, err := GetScenario("not_a_real_scenario")
	require.Error(t, err)
}

func TestListScenariosStableOrder(t *testing.T) {
	want := []string{"simple_drop", "three_body_collision", "pool_break", "pool_break_15"}
	assert.Equal(t, want, ListScenarios())
}

func TestPoolBreakHasCueBallPlusTriangle(t *testing.T) {
	in := PoolBreak()
	// cue ball + rows 1..4 = 1 + 1+2+3+4 = 11
	require.Len(t, in.Circles, 11)
}

func TestPoolBreak15HasFullRack(t *testing.T) {
	in := PoolBreak15()
	// cue ball + rows 1..5 = 1 + 1+2+3+4+5 = 16
	require.Len(t, in.Circles, 16)
}

func TestPoolBreakHasNoGravity(t *testing.T) {
	in := PoolBreak()
	assert.Equal(t, [2]float64{0, 0}, in.Gravity)
}
