package realtime

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingGauges struct {
	mu     sync.Mutex
	events []int
	active []int
}

func (g *recordingGauges) SetRealtime(events, activeUsers int) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.events = append(g.events, events)
	g.active = append(g.active, activeUsers)
}

func TestTicker_InitialSnapshot(t *testing.T) {
	g := &recordingGauges{}
	tk := NewTicker("", 1, g)

	s := tk.Snapshot()
	assert.Equal(t, InitialEvents, s.Events)
	assert.Equal(t, "1,247", s.EventsDisplay)
	assert.Equal(t, InitialActiveUsers, s.ActiveUsers)
	assert.Equal(t, "3,421", s.ActiveUsersDisplay)
	assert.Equal(t, uint64(0), s.Ticks)
	assert.Equal(t, []int{InitialEvents}, g.events)
}

func TestTicker_TickBounds(t *testing.T) {
	tk := NewTicker(DefaultSchedule, 99, nil)

	prev := tk.Snapshot()
	for i := 0; i < 500; i++ {
		tk.Tick()
		cur := tk.Snapshot()

		assert.GreaterOrEqual(t, cur.Events-prev.Events, 0)
		assert.Less(t, cur.Events-prev.Events, 50)
		assert.GreaterOrEqual(t, cur.ActiveUsers-prev.ActiveUsers, -5)
		assert.Less(t, cur.ActiveUsers-prev.ActiveUsers, 5)
		prev = cur
	}
	assert.Equal(t, uint64(500), prev.Ticks)
}

func TestTicker_ActiveUsersFloorAtZero(t *testing.T) {
	tk := NewTicker(DefaultSchedule, 3, nil)
	tk.activeUsers = 0

	for i := 0; i < 200; i++ {
		tk.Tick()
		assert.GreaterOrEqual(t, tk.Snapshot().ActiveUsers, 0)
	}
}

func TestTicker_SeededSequence(t *testing.T) {
	a := NewTicker(DefaultSchedule, 5, nil)
	b := NewTicker(DefaultSchedule, 5, nil)
	for i := 0; i < 20; i++ {
		a.Tick()
		b.Tick()
	}
	assert.Equal(t, a.Snapshot().Events, b.Snapshot().Events)
	assert.Equal(t, a.Snapshot().ActiveUsers, b.Snapshot().ActiveUsers)
}

func TestTicker_PublishesEveryTick(t *testing.T) {
	g := &recordingGauges{}
	tk := NewTicker(DefaultSchedule, 1, g)
	tk.Tick()
	tk.Tick()

	g.mu.Lock()
	defer g.mu.Unlock()
	require.Len(t, g.events, 3)
	assert.Equal(t, tk.Snapshot().Events, g.events[2])
}

func TestTicker_InvalidSchedule(t *testing.T) {
	tk := NewTicker("not a schedule", 1, nil)
	assert.Error(t, tk.Start())
}

func TestTicker_StartStop(t *testing.T) {
	tk := NewTicker("@every 1s", 1, nil)
	require.NoError(t, tk.Start())
	require.NoError(t, tk.Start())

	assert.Eventually(t, func() bool {
		return tk.Snapshot().Ticks > 0
	}, 5*time.Second, 50*time.Millisecond)

	tk.Stop()
	tk.Stop()
}
