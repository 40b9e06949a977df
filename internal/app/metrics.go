package app

import (
	"sync/atomic"
	"time"
)

// Metrics tracks event loop and resize activity.
type Metrics struct {
	// Event processing
	eventCount   atomic.Uint64
	eventTotalNs atomic.Int64

	// Render timing
	renderCount   atomic.Uint64
	renderTotalNs atomic.Int64
	renderMaxNs   atomic.Int64

	// Resize activity
	sessions     atomic.Uint64
	resizeSteps  atomic.Uint64
	reloads      atomic.Uint64
	reloadErrors atomic.Uint64
	panics       atomic.Uint64

	startTime time.Time
}

// NewMetrics creates a new metrics tracker.
func NewMetrics() *Metrics {
	return &Metrics{startTime: time.Now()}
}

// RecordEvent records event processing timing.
func (m *Metrics) RecordEvent(duration time.Duration) {
	m.eventCount.Add(1)
	m.eventTotalNs.Add(duration.Nanoseconds())
}

// RecordRender records render timing.
func (m *Metrics) RecordRender(duration time.Duration) {
	ns := duration.Nanoseconds()
	m.renderCount.Add(1)
	m.renderTotalNs.Add(ns)

	for {
		old := m.renderMaxNs.Load()
		if ns <= old || m.renderMaxNs.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordSession records the start of a drag session.
func (m *Metrics) RecordSession() {
	m.sessions.Add(1)
}

// RecordStep records a drag step that wrote at least one style property.
func (m *Metrics) RecordStep() {
	m.resizeSteps.Add(1)
}

// RecordReload records a configuration reload attempt.
func (m *Metrics) RecordReload(err error) {
	m.reloads.Add(1)
	if err != nil {
		m.reloadErrors.Add(1)
	}
}

// RecordPanic records a recovered panic.
func (m *Metrics) RecordPanic() {
	m.panics.Add(1)
}

// Snapshot returns a snapshot of current metrics.
func (m *Metrics) Snapshot() MetricsSnapshot {
	eventCount := m.eventCount.Load()
	renderCount := m.renderCount.Load()

	var avgEventNs int64
	if eventCount > 0 {
		avgEventNs = m.eventTotalNs.Load() / int64(eventCount)
	}

	var avgRenderNs int64
	if renderCount > 0 {
		avgRenderNs = m.renderTotalNs.Load() / int64(renderCount)
	}

	return MetricsSnapshot{
		Uptime:       time.Since(m.startTime),
		EventCount:   eventCount,
		AvgEventNs:   avgEventNs,
		RenderCount:  renderCount,
		AvgRenderNs:  avgRenderNs,
		MaxRenderNs:  m.renderMaxNs.Load(),
		Sessions:     m.sessions.Load(),
		ResizeSteps:  m.resizeSteps.Load(),
		Reloads:      m.reloads.Load(),
		ReloadErrors: m.reloadErrors.Load(),
		Panics:       m.panics.Load(),
	}
}

// MetricsSnapshot is a point-in-time view of metrics.
type MetricsSnapshot struct {
	Uptime       time.Duration
	EventCount   uint64
	AvgEventNs   int64
	RenderCount  uint64
	AvgRenderNs  int64
	MaxRenderNs  int64
	Sessions     uint64
	ResizeSteps  uint64
	Reloads      uint64
	ReloadErrors uint64
	Panics       uint64
}

// StepsPerSession returns the average number of applied steps per session.
func (s MetricsSnapshot) StepsPerSession() float64 {
	if s.Sessions == 0 {
		return 0
	}
	return float64(s.ResizeSteps) / float64(s.Sessions)
}

// Timer provides a simple way to measure elapsed time.
type Timer struct {
	start time.Time
}

// StartTimer creates a new timer.
func StartTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Elapsed returns the elapsed time since the timer started.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}
