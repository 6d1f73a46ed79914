// internal/domain/schedule/watcher.go
package schedule

import (
	"context"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// Watcher periodically re-evaluates the open/closed state. It is the
// only time-driven background activity in the service and stops with
// its context so it never acts after teardown.
type Watcher struct {
	source   func() *storefront.ScheduleConfig
	interval time.Duration
	logger   *logrus.Logger

	mu   sync.RWMutex
	open bool
}

// NewWatcher creates a watcher over a schedule source. The source is a
// function so configuration reloads are picked up on the next tick.
func NewWatcher(source func() *storefront.ScheduleConfig, interval time.Duration, logger *logrus.Logger) *Watcher {
	return &Watcher{
		source:   source,
		interval: interval,
		logger:   logger,
		open:     IsOpen(source()),
	}
}

// Open reports the state observed at the last evaluation
func (w *Watcher) Open() bool {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.open
}

// Run re-evaluates on every tick until the context is cancelled
func (w *Watcher) Run(ctx context.Context) {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.evaluate()
		}
	}
}

func (w *Watcher) evaluate() {
	open := IsOpen(w.source())

	w.mu.Lock()
	changed := open != w.open
	w.open = open
	w.mu.Unlock()

	if changed {
		w.logger.WithField("open", open).Info("Store open state changed")
	}
}
