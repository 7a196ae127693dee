package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

func TestMonitorEdgeTriggered(t *testing.T) {
	employeeID := uuid.New()
	checkIn := testNow
	shift := openShift(employeeID, 1, checkIn, nil, false)
	caps := map[uuid.UUID]int{employeeID: 480} // threshold 495 with the 15m buffer

	monitor := NewMonitor(15)

	alerts := monitor.Tick([]models.WorkLogEntry{shift}, caps, checkIn.Add(494*time.Minute))
	require.Empty(t, alerts)

	alerts = monitor.Tick([]models.WorkLogEntry{shift}, caps, checkIn.Add(496*time.Minute))
	require.Len(t, alerts, 1)
	require.Equal(t, shift.ID, alerts[0].Entry.ID)
	require.Equal(t, 496, alerts[0].ElapsedMinutes)
	require.Equal(t, 495, alerts[0].ThresholdMinutes)

	// Still over threshold: no re-fire.
	alerts = monitor.Tick([]models.WorkLogEntry{shift}, caps, checkIn.Add(500*time.Minute))
	require.Empty(t, alerts)

	// A correction pushes elapsed back under the threshold: the flag clears
	// and the shift re-arms.
	corrected := shift
	correctedCheckIn := checkIn.Add(10 * time.Minute)
	corrected.CheckIn = &correctedCheckIn

	alerts = monitor.Tick([]models.WorkLogEntry{corrected}, caps, checkIn.Add(500*time.Minute))
	require.Empty(t, alerts)

	alerts = monitor.Tick([]models.WorkLogEntry{corrected}, caps, correctedCheckIn.Add(496*time.Minute))
	require.Len(t, alerts, 1)
}

func TestMonitorNoCapIsNoOp(t *testing.T) {
	shift := openShift(uuid.New(), 1, testNow, nil, false)
	monitor := NewMonitor(15)

	alerts := monitor.Tick([]models.WorkLogEntry{shift}, nil, testNow.Add(48*time.Hour))
	require.Empty(t, alerts)
}

func TestMonitorForgetsClosedShifts(t *testing.T) {
	employeeID := uuid.New()
	shift := openShift(employeeID, 1, testNow, nil, false)
	caps := map[uuid.UUID]int{employeeID: 60}

	monitor := NewMonitor(15)
	alerts := monitor.Tick([]models.WorkLogEntry{shift}, caps, testNow.Add(2*time.Hour))
	require.Len(t, alerts, 1)

	// Shift closes, then a new one with the same employee starts: fresh state.
	alerts = monitor.Tick(nil, caps, testNow.Add(3*time.Hour))
	require.Empty(t, alerts)

	replacement := openShift(employeeID, 1, testNow.Add(3*time.Hour), nil, false)
	alerts = monitor.Tick([]models.WorkLogEntry{replacement}, caps, testNow.Add(3*time.Hour).Add(80*time.Minute))
	require.Len(t, alerts, 1)
}
