// internal/domain/schedule/schedule.go
package schedule

import (
	"strconv"
	"time"

	"github.com/your-org/menu-storefront/internal/domain/storefront"
)

// IsOpenAt decides whether the business is open at a given instant.
// The instant is resolved to the business's local weekday and "HH:MM";
// the day's interval is inclusive on both ends, compared
// lexicographically since the format is zero-padded and fixed-width.
// Missing configuration and unresolvable timezones fail open so the
// storefront is never blocked by bad schedule data.
func IsOpenAt(cfg *storefront.ScheduleConfig, at time.Time) bool {
	if cfg == nil {
		return true
	}

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return true
	}

	local := at.In(loc)
	weekday := strconv.Itoa(int(local.Weekday()))
	current := local.Format("15:04")

	day, ok := cfg.Days[weekday]
	if !ok || day == nil {
		return false
	}

	return day.Start <= current && current <= day.End
}

// IsOpen decides whether the business is open right now
func IsOpen(cfg *storefront.ScheduleConfig) bool {
	return IsOpenAt(cfg, time.Now())
}
