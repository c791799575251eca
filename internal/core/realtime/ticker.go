package realtime

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"github.com/MuhamadAgungGumelar/product-insight-dashboard-be/internal/core/analytics"
)

const (
	DefaultSchedule = "@every 2s"

	InitialEvents      = 1247
	InitialActiveUsers = 3421
)

// Gauges receives the counter values after every tick
type Gauges interface {
	SetRealtime(events, activeUsers int)
}

// Snapshot is a point-in-time read of the live counters
type Snapshot struct {
	Events             int       `json:"events_last_minute"`
	EventsDisplay      string    `json:"events_display"`
	ActiveUsers        int       `json:"active_users"`
	ActiveUsersDisplay string    `json:"active_users_display"`
	Ticks              uint64    `json:"ticks"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// Ticker perturbs the live activity counters on a cron schedule
type Ticker struct {
	cron     *cron.Cron
	schedule string
	entryID  cron.EntryID
	running  bool
	gauges   Gauges

	mu          sync.Mutex
	rng         *rand.Rand
	events      int
	activeUsers int
	ticks       uint64
	updatedAt   time.Time
}

// NewTicker creates a ticker; gauges may be nil
func NewTicker(schedule string, seed int64, gauges Gauges) *Ticker {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	t := &Ticker{
		cron:        cron.New(cron.WithSeconds()),
		schedule:    schedule,
		gauges:      gauges,
		rng:         rand.New(rand.NewSource(seed)),
		events:      InitialEvents,
		activeUsers: InitialActiveUsers,
		updatedAt:   time.Now(),
	}
	t.publish(t.events, t.activeUsers)
	return t
}

// Start registers the tick job and starts the cron loop
func (t *Ticker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.running {
		return nil
	}

	entryID, err := t.cron.AddFunc(t.schedule, t.Tick)
	if err != nil {
		return fmt.Errorf("failed to schedule realtime ticker: %w", err)
	}
	t.entryID = entryID
	t.running = true
	t.cron.Start()

	log.Info().Str("schedule", t.schedule).Msg("Realtime ticker started")
	return nil
}

// Stop removes the tick job and waits for a running tick to finish
func (t *Ticker) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.cron.Remove(t.entryID)
	t.running = false
	t.mu.Unlock()

	<-t.cron.Stop().Done()
	log.Info().Msg("Realtime ticker stopped")
}

// Tick applies one perturbation: events grow by [0,50), active users move by [-5,5) and never go negative
func (t *Ticker) Tick() {
	t.mu.Lock()
	t.events += t.rng.Intn(50)
	t.activeUsers += t.rng.Intn(10) - 5
	if t.activeUsers < 0 {
		t.activeUsers = 0
	}
	t.ticks++
	t.updatedAt = time.Now()
	events, active := t.events, t.activeUsers
	t.mu.Unlock()

	t.publish(events, active)
}

func (t *Ticker) Snapshot() Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()

	return Snapshot{
		Events:             t.events,
		EventsDisplay:      analytics.FormatCount(int64(t.events)),
		ActiveUsers:        t.activeUsers,
		ActiveUsersDisplay: analytics.FormatCount(int64(t.activeUsers)),
		Ticks:              t.ticks,
		UpdatedAt:          t.updatedAt,
	}
}

func (t *Ticker) publish(events, active int) {
	if t.gauges != nil {
		t.gauges.SetRealtime(events, active)
	}
}
