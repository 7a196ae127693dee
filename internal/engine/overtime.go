package engine

import (
	"time"

	"github.com/google/uuid"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

// DefaultOvertimeBufferMinutes is added to a position's shift cap before an
// alert fires, absorbing ordinary clock-out lag.
const DefaultOvertimeBufferMinutes = 15

// Alert is fired once per shift when its elapsed time first crosses the
// threshold.
type Alert struct {
	Entry            models.WorkLogEntry
	ElapsedMinutes   int
	ThresholdMinutes int
}

// Monitor tracks which open shifts have already alerted so that repeated
// ticks stay edge-triggered. It holds no other state; callers feed it the
// current open shifts every tick.
type Monitor struct {
	bufferMinutes int
	alerted       map[uuid.UUID]bool
}

func NewMonitor(bufferMinutes int) *Monitor {
	if bufferMinutes <= 0 {
		bufferMinutes = DefaultOvertimeBufferMinutes
	}
	return &Monitor{
		bufferMinutes: bufferMinutes,
		alerted:       make(map[uuid.UUID]bool),
	}
}

// Tick evaluates the open shifts against per-employee duration caps and
// returns alerts for shifts whose elapsed time crossed the threshold since
// the previous tick. A shift with no configured cap never alerts. Falling
// back at or under the threshold (after a correction) re-arms the shift.
func (m *Monitor) Tick(open []models.WorkLogEntry, capMinutes map[uuid.UUID]int, now time.Time) []Alert {
	seen := make(map[uuid.UUID]bool, len(open))
	var alerts []Alert
	for i := range open {
		entry := open[i]
		if !entry.Open() {
			continue
		}
		seen[entry.ID] = true

		limit := capMinutes[entry.EmployeeID]
		if limit <= 0 {
			continue
		}
		threshold := limit + m.bufferMinutes
		elapsed := ElapsedMinutes(*entry.CheckIn, now)

		switch {
		case elapsed > threshold && !m.alerted[entry.ID]:
			m.alerted[entry.ID] = true
			alerts = append(alerts, Alert{
				Entry:            entry,
				ElapsedMinutes:   elapsed,
				ThresholdMinutes: threshold,
			})
		case elapsed <= threshold && m.alerted[entry.ID]:
			delete(m.alerted, entry.ID)
		}
	}

	// Closed or deleted shifts drop their alert state.
	for id := range m.alerted {
		if !seen[id] {
			delete(m.alerted, id)
		}
	}
	return alerts
}
