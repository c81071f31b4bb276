package domain

import (
	"strconv"
	"strings"
	"time"
)

// EffectiveStatus resolves the status shown to end users. Stored draft,
// cancelled, and past are authoritative manual overrides. Otherwise the
// event is past once now is strictly after date@endTime in now's location;
// at the exact end instant it is still upcoming. A missing or malformed
// end time extends the boundary to 23:59:59 of the event date.
func (e *Event) EffectiveStatus(now time.Time) string {
	switch e.Status {
	case EventStatusDraft, EventStatusCancelled, EventStatusPast:
		return e.Status
	}

	end, ok := combineDateTime(e.Date, e.EndTime, now.Location())
	if !ok {
		// Unparseable date: leave the stored status alone.
		return e.Status
	}
	if now.After(end) {
		return EventStatusPast
	}
	return EventStatusUpcoming
}

// combineDateTime builds the end-of-event instant from a YYYY-MM-DD date and
// an HH:MM time of day. The second return is false only when the date itself
// does not parse; a bad time falls back to end of day.
func combineDateTime(date, timeOfDay string, loc *time.Location) (time.Time, bool) {
	d, err := time.ParseInLocation("2006-01-02", date, loc)
	if err != nil {
		return time.Time{}, false
	}
	hour, min, sec := 23, 59, 59
	if h, m, ok := parseClock(timeOfDay); ok {
		hour, min, sec = h, m, 0
	}
	return time.Date(d.Year(), d.Month(), d.Day(), hour, min, sec, 0, loc), true
}

// parseClock parses "HH:MM" (seconds tolerated and ignored).
func parseClock(s string) (hour, min int, ok bool) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// DeadlineEnd returns the last instant at which registration is still open:
// 23:59:59 local on the deadline date. ok is false when no deadline is set
// or the date does not parse.
func (e *Event) DeadlineEnd(loc *time.Location) (time.Time, bool) {
	if e.RegistrationDeadline == "" {
		return time.Time{}, false
	}
	d, err := time.ParseInLocation("2006-01-02", e.RegistrationDeadline, loc)
	if err != nil {
		return time.Time{}, false
	}
	return time.Date(d.Year(), d.Month(), d.Day(), 23, 59, 59, 0, loc), true
}
