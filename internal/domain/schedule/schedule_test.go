// internal/domain/schedule/schedule_test.go
package schedule

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

func limaSchedule() *storefront.ScheduleConfig {
	return &storefront.ScheduleConfig{
		Timezone: "America/Lima",
		Days: map[string]*storefront.ScheduleDay{
			"0": {Start: "12:00", End: "21:00"},
			"1": nil,
			"2": {Start: "09:00", End: "22:00"},
			"3": {Start: "09:00", End: "22:00"},
			"4": {Start: "09:00", End: "22:00"},
			"5": {Start: "09:00", End: "23:00"},
			"6": {Start: "12:00", End: "23:00"},
		},
	}
}

// limaTime builds an instant at the given wall-clock time in Lima.
// Lima has no DST, so a fixed UTC-5 zone matches America/Lima.
func limaTime(t *testing.T, year int, month time.Month, day, hour, min int) time.Time {
	t.Helper()
	loc, err := time.LoadLocation("America/Lima")
	if err != nil {
		t.Skip("tzdata unavailable")
	}
	return time.Date(year, month, day, hour, min, 0, 0, loc)
}

func TestIsOpenAtWithinInterval(t *testing.T) {
	// 2025-03-12 is a Wednesday
	at := limaTime(t, 2025, time.March, 12, 14, 30)
	assert.True(t, IsOpenAt(limaSchedule(), at))
}

func TestIsOpenAtBeforeOpening(t *testing.T) {
	at := limaTime(t, 2025, time.March, 12, 8, 59)
	assert.False(t, IsOpenAt(limaSchedule(), at))
}

func TestIsOpenAtAfterClosing(t *testing.T) {
	at := limaTime(t, 2025, time.March, 12, 23, 0)
	assert.False(t, IsOpenAt(limaSchedule(), at))
}

func TestIsOpenAtIntervalIsInclusive(t *testing.T) {
	opening := limaTime(t, 2025, time.March, 12, 9, 0)
	closing := limaTime(t, 2025, time.March, 12, 22, 0)

	assert.True(t, IsOpenAt(limaSchedule(), opening))
	assert.True(t, IsOpenAt(limaSchedule(), closing))
}

func TestIsOpenAtNullDayIsClosed(t *testing.T) {
	// 2025-03-10 is a Monday, configured as null
	at := limaTime(t, 2025, time.March, 10, 14, 0)
	assert.False(t, IsOpenAt(limaSchedule(), at))
}

func TestIsOpenAtAbsentDayIsClosed(t *testing.T) {
	cfg := limaSchedule()
	delete(cfg.Days, "3")

	at := limaTime(t, 2025, time.March, 12, 14, 0)
	assert.False(t, IsOpenAt(cfg, at))
}

func TestIsOpenAtNilConfigFailsOpen(t *testing.T) {
	assert.True(t, IsOpenAt(nil, time.Now()))
}

func TestIsOpenAtBadTimezoneFailsOpen(t *testing.T) {
	cfg := limaSchedule()
	cfg.Timezone = "Marte/Olympus"

	assert.True(t, IsOpenAt(cfg, time.Now()))
}

func TestIsOpenAtResolvesWeekdayInBusinessTimezone(t *testing.T) {
	// 02:00 UTC Thursday is 21:00 Wednesday in Lima, still open
	at := time.Date(2025, time.March, 13, 2, 0, 0, 0, time.UTC)
	assert.True(t, IsOpenAt(limaSchedule(), at))
}

func TestWatcherEvaluatesAtConstruction(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	open := NewWatcher(func() *storefront.ScheduleConfig { return nil }, time.Minute, logger)
	assert.True(t, open.Open())
}

func TestWatcherStopsWithContext(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	w := NewWatcher(func() *storefront.ScheduleConfig { return nil }, time.Millisecond, logger)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Run(ctx)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop after context cancellation")
	}
}

func TestWatcherPicksUpSourceChanges(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var cfg *storefront.ScheduleConfig
	w := NewWatcher(func() *storefront.ScheduleConfig { return cfg }, time.Minute, logger)
	assert.True(t, w.Open())

	// Closed every day from now on
	cfg = &storefront.ScheduleConfig{Timezone: "UTC", Days: map[string]*storefront.ScheduleDay{}}
	w.evaluate()
	assert.False(t, w.Open())
}
