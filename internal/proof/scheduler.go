// Package proof generates the simulated social-proof notifications shown
// in the page corner. The content is fabricated by design: a timer-driven
// generator with no backing analytics source, purely a UI embellishment.
package proof

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

// Timing defaults: notifications become possible after InitialDelay, one
// draw happens every Interval with Chance odds of success, and each shown
// item disappears after DisplayDuration.
const (
	DefaultInitialDelay    = 30 * time.Second
	DefaultInterval        = 45 * time.Second
	DefaultDisplayDuration = 8 * time.Second
	DefaultChance          = 0.4
	maxVisible             = 3
)

// Template is one fixed notification message.
type Template struct {
	Text string `json:"text"`
	Icon string `json:"icon"`
}

// Templates returns the fixed message list items are drawn from.
func Templates() []Template {
	return []Template{
		{Text: "Recruiter from Microsoft viewed your profile", Icon: "eye"},
		{Text: "PM from Google downloaded your resume", Icon: "download"},
		{Text: "Tech lead from Amazon bookmarked your portfolio", Icon: "bookmark"},
		{Text: "Product director from Meta shared your profile", Icon: "message-circle"},
		{Text: "Senior PM from Netflix viewed your projects", Icon: "eye"},
		{Text: "Startup founder from YC downloaded your resume", Icon: "download"},
		{Text: "Engineering manager from Stripe bookmarked your work", Icon: "bookmark"},
	}
}

// Item is one live notification in the display queue.
type Item struct {
	ID        int64     `json:"id"`
	Text      string    `json:"text"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"created_at"`
}

// Scheduler drives the notification queue. The clock and random source
// are injected so tests can step it deterministically via Tick.
type Scheduler struct {
	mu        sync.Mutex
	rng       *rand.Rand
	now       func() time.Time
	templates []Template
	started   time.Time
	queue     []Item
	nextID    int64

	InitialDelay    time.Duration
	Interval        time.Duration
	DisplayDuration time.Duration
	Chance          float64
}

// New creates a Scheduler with the default timing. The session clock
// starts immediately.
func New(rng *rand.Rand, now func() time.Time) *Scheduler {
	if now == nil {
		now = time.Now
	}
	return &Scheduler{
		rng:             rng,
		now:             now,
		templates:       Templates(),
		started:         now(),
		nextID:          1,
		InitialDelay:    DefaultInitialDelay,
		Interval:        DefaultInterval,
		DisplayDuration: DefaultDisplayDuration,
		Chance:          DefaultChance,
	}
}

// Tick performs one scheduled draw. Before the initial delay has elapsed
// it does nothing. On a successful draw a uniformly chosen template is
// instantiated with a unique ID and appended to the queue; when the queue
// exceeds the visible cap the oldest item is dropped.
func (s *Scheduler) Tick() {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	if now.Sub(s.started) < s.InitialDelay {
		return
	}
	if s.rng.Float64() >= s.Chance {
		return
	}

	tpl := s.templates[s.rng.Intn(len(s.templates))]
	s.queue = append(s.queue, Item{
		ID:        s.nextID,
		Text:      tpl.Text,
		Icon:      tpl.Icon,
		CreatedAt: now,
	})
	s.nextID++

	if len(s.queue) > maxVisible {
		s.queue = s.queue[len(s.queue)-maxVisible:]
	}
}

// Active returns the currently visible items, oldest first, dropping any
// whose display duration has elapsed.
func (s *Scheduler) Active() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	kept := s.queue[:0]
	for _, item := range s.queue {
		if now.Sub(item.CreatedAt) < s.DisplayDuration {
			kept = append(kept, item)
		}
	}
	s.queue = kept

	out := make([]Item, len(s.queue))
	copy(out, s.queue)
	return out
}

// Run drives the scheduler with real timers until ctx is cancelled.
func (s *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Tick()
		}
	}
}
