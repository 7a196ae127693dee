package monitor

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/notify"
)

// Runner drives the overtime monitor: a fixed-interval tick plus an
// immediate re-evaluation whenever a shift starts or stops.
type Runner struct {
	db       *gorm.DB
	clock    clockwork.Clock
	monitor  *engine.Monitor
	notifier notify.Notifier
	log      *logrus.Logger
	interval time.Duration
	poke     chan struct{}
}

func New(db *gorm.DB, clock clockwork.Clock, notifier notify.Notifier, log *logrus.Logger, pollSeconds, bufferMinutes int) *Runner {
	if pollSeconds <= 0 {
		pollSeconds = 60
	}
	return &Runner{
		db:       db,
		clock:    clock,
		monitor:  engine.NewMonitor(bufferMinutes),
		notifier: notifier,
		log:      log,
		interval: time.Duration(pollSeconds) * time.Second,
		poke:     make(chan struct{}, 1),
	}
}

// Poke requests an immediate evaluation outside the regular cadence. It
// never blocks; a pending request coalesces with the next one.
func (r *Runner) Poke() {
	if r == nil {
		return
	}
	select {
	case r.poke <- struct{}{}:
	default:
	}
}

// Run evaluates until the context is cancelled.
func (r *Runner) Run(ctx context.Context) {
	ticker := r.clock.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.Chan():
			r.evaluate()
		case <-r.poke:
			r.evaluate()
		}
	}
}

func (r *Runner) evaluate() {
	var open []models.WorkLogEntry
	if err := r.db.Where("type = ? AND check_out IS NULL", models.EntryWork).Find(&open).Error; err != nil {
		r.log.WithError(err).Error("overtime monitor: load open shifts")
		return
	}
	if len(open) == 0 {
		r.monitor.Tick(nil, nil, r.clock.Now())
		return
	}

	caps, err := r.loadShiftCaps(open)
	if err != nil {
		r.log.WithError(err).Error("overtime monitor: load shift caps")
		return
	}

	for _, alert := range r.monitor.Tick(open, caps, r.clock.Now()) {
		title := "Shift overtime"
		body := fmt.Sprintf("employee %s slot %d has been running %d minutes (threshold %d)",
			alert.Entry.EmployeeID, alert.Entry.Slot, alert.ElapsedMinutes, alert.ThresholdMinutes)
		if err := r.notifier.Notify(title, body); err != nil {
			r.log.WithError(err).Error("overtime monitor: notify")
		}
	}
}

func (r *Runner) loadShiftCaps(open []models.WorkLogEntry) (map[uuid.UUID]int, error) {
	ids := make([]uuid.UUID, 0, len(open))
	for i := range open {
		ids = append(ids, open[i].EmployeeID)
	}

	var employees []models.Employee
	if err := r.db.Preload("Position").Where("id IN ?", ids).Find(&employees).Error; err != nil {
		return nil, err
	}

	caps := make(map[uuid.UUID]int, len(employees))
	for i := range employees {
		perms := engine.PermissionsFor(employees[i].Position)
		if perms.MaxShiftMinutes > 0 {
			caps[employees[i].ID] = perms.MaxShiftMinutes
		}
	}
	return caps, nil
}
