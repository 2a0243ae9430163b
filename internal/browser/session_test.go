package browser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileByName(t *testing.T) {
	p, err := ProfileByName("conservative")
	require.NoError(t, err)
	assert.Equal(t, Conservative, p)

	p, err = ProfileByName("")
	require.NoError(t, err)
	assert.Equal(t, Moderate, p)

	p, err = ProfileByName("ludicrous")
	assert.Error(t, err)
	assert.Equal(t, Moderate, p, "unknown names still yield a usable profile")
}

func TestProfileBoundsOrdered(t *testing.T) {
	for _, p := range []DelayProfile{Conservative, Moderate, Aggressive} {
		assert.Greater(t, p.Min, 0.0, p.Name)
		assert.GreaterOrEqual(t, p.Max, p.Min, p.Name)
	}
	assert.Greater(t, Conservative.Min, Aggressive.Max, "profiles do not overlap end to end")
}

func TestPauseSwapsInvertedBounds(t *testing.T) {
	s := &Session{}
	start := time.Now()
	s.Pause(0.01, 0.001)
	assert.GreaterOrEqual(t, time.Since(start), 10*time.Millisecond)
}

func TestPickUserAgent(t *testing.T) {
	assert.Equal(t, "custom", pickUserAgent([]string{"custom"}))

	got := pickUserAgent(nil)
	assert.Contains(t, userAgents, got)
}

func TestSimulationSafeWithoutPage(t *testing.T) {
	s := &Session{}
	s.SimulateScroll()
	s.SimulateCursor()
	s.HumanDelay()
	s.PageBreak()
}

func TestCloseNilAndIdempotent(t *testing.T) {
	var s *Session
	s.Close()

	live := &Session{}
	live.Close()
	live.Close()
}
