package analytics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stages(t *testing.T, counts ...int) []FunnelStage {
	t.Helper()
	out := make([]FunnelStage, 0, len(counts))
	for i, c := range counts {
		s, err := NewFunnelStage("stage", c, i)
		require.NoError(t, err)
		out = append(out, s)
	}
	return out
}

func TestComputeFunnel(t *testing.T) {
	steps := ComputeFunnel(stages(t, 1000, 824, 680))
	require.Len(t, steps, 3)

	assert.False(t, steps[0].Dropoff.Valid)
	assert.Equal(t, NotAvailable, steps[0].DropoffDisplay)
	assert.Equal(t, 17.6, steps[1].Dropoff.Rounded())
	assert.Equal(t, 17.5, steps[2].Dropoff.Rounded())

	assert.Equal(t, 100.0, steps[0].OfTop.Rounded())
	assert.Equal(t, 82.4, steps[1].OfTop.Rounded())
	assert.Equal(t, "68.0%", steps[2].OfTopDisplay)
	assert.Equal(t, "1,000", steps[0].UsersDisplay)
}

func TestComputeFunnel_ZeroPrevious(t *testing.T) {
	steps := ComputeFunnel(stages(t, 100, 0, 10))
	assert.Equal(t, 100.0, steps[1].Dropoff.Rounded())
	assert.False(t, steps[2].Dropoff.Valid)
	assert.Equal(t, 10.0, steps[2].OfTop.Rounded())
}

func TestComputeFunnel_ZeroTop(t *testing.T) {
	steps := ComputeFunnel(stages(t, 0, 0))
	assert.False(t, steps[0].OfTop.Valid)
	assert.False(t, steps[1].OfTop.Valid)
	assert.False(t, OverallConversion(steps).Valid)
}

func TestComputeFunnel_NegativeDropoffNotClamped(t *testing.T) {
	steps := ComputeFunnel(stages(t, 100, 120))
	assert.Equal(t, -20.0, steps[1].Dropoff.Rounded())
	assert.Equal(t, "-20.0%", steps[1].DropoffDisplay)
	assert.Equal(t, 120.0, steps[1].OfTop.Rounded())
}

func TestComputeFunnel_Empty(t *testing.T) {
	assert.Empty(t, ComputeFunnel(nil))
	_, ok := BiggestDropoff(nil)
	assert.False(t, ok)
	assert.False(t, OverallConversion(nil).Valid)
}

func TestNewFunnelStage_Negative(t *testing.T) {
	_, err := NewFunnelStage("Signed up", -1, 0)
	assert.ErrorIs(t, err, ErrNegativeCount)
}

func TestBiggestDropoff(t *testing.T) {
	steps := ComputeFunnel(stages(t, 10000, 8240, 6800, 3400, 2900))
	i, ok := BiggestDropoff(steps)
	require.True(t, ok)
	assert.Equal(t, 3, i)
	assert.Equal(t, 3, steps[i].Order)
	assert.Equal(t, 50.0, steps[i].Dropoff.Rounded())
	assert.Equal(t, 29.0, OverallConversion(steps).Rounded())
}

func TestFunnelStep_JSON(t *testing.T) {
	steps := ComputeFunnel(stages(t, 1000, 824))
	b, err := json.Marshal(steps[0])
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(b, &decoded))
	assert.Nil(t, decoded["dropoff_percent"])
	assert.Equal(t, 100.0, decoded["percentage_of_top"])
}

func TestComputeFunnel_Idempotent(t *testing.T) {
	in := stages(t, 1000, 824, 680)
	assert.Equal(t, ComputeFunnel(in), ComputeFunnel(in))
}
