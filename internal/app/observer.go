package app

import (
	"github.com/rlapin92/ngext-resizable/internal/resize"
)

// sessionObserver logs drag sessions and feeds the metrics.
type sessionObserver struct {
	logger  *Logger
	metrics *Metrics
}

func (o *sessionObserver) DragStarted(d resize.Direction, s resize.Snapshot) {
	if d.IsNone() {
		return
	}
	o.metrics.RecordSession()
	o.logger.WithField("direction", d).Debug("drag started at %dx%d+%d+%d",
		s.Rect.Width, s.Rect.Height, s.Rect.Left, s.Rect.Top)
}

func (o *sessionObserver) Resized(p resize.Patch) {
	o.metrics.RecordStep()
	if o.logger.Level() > LogLevelDebug {
		return
	}
	w, _ := p.Get(resize.PropWidth)
	h, _ := p.Get(resize.PropHeight)
	o.logger.Debug("resized: %d writes, width=%d height=%d", len(p), w, h)
}

func (o *sessionObserver) DragEnded(d resize.Direction) {
	if d.IsNone() {
		return
	}
	o.logger.WithField("direction", d).Debug("drag ended")
}
