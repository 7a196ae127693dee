package engine

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

var testNow = time.Date(2025, 6, 2, 9, 0, 0, 0, time.Local)

func openShift(employeeID uuid.UUID, slot int, checkIn time.Time, equipmentID *uuid.UUID, night bool) models.WorkLogEntry {
	return models.WorkLogEntry{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Date:        DateOnly(checkIn),
		Type:        models.EntryWork,
		Slot:        slot,
		EquipmentID: equipmentID,
		CheckIn:     &checkIn,
		NightShift:  night,
	}
}

func TestStartStopRoundTrip(t *testing.T) {
	employeeID := uuid.New()

	started, err := StartShift(StartParams{
		Slot:       1,
		EmployeeID: employeeID,
		Now:        testNow,
	})
	require.NoError(t, err)
	require.Equal(t, models.EntryWork, started.Entry.Type)
	require.Equal(t, testNow, *started.Entry.CheckIn)
	require.Nil(t, started.Entry.CheckOut)
	require.Equal(t, 0, started.Entry.DurationMinutes)

	started.Entry.ID = uuid.New()
	stopAt := testNow.Add(90 * time.Minute)

	stopped, err := StopShift(StopParams{
		Slot:       1,
		EmployeeID: employeeID,
		Logs:       []models.WorkLogEntry{started.Entry},
		Now:        stopAt,
	})
	require.NoError(t, err)
	require.Equal(t, 90, stopped.Entry.DurationMinutes)
	require.Equal(t, stopAt, *stopped.Entry.CheckOut)

	// Slot is free again once the completed entry replaces the open one.
	active := ActiveShifts([]models.WorkLogEntry{stopped.Entry}, employeeID)
	require.Empty(t, active)
}

func TestStartShiftRejectsOccupiedSlot(t *testing.T) {
	employeeID := uuid.New()
	logs := []models.WorkLogEntry{openShift(employeeID, 1, testNow.Add(-time.Hour), nil, false)}

	_, err := StartShift(StartParams{
		Slot:       1,
		EmployeeID: employeeID,
		Perms:      Permissions{MultiSlot: true},
		Logs:       logs,
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrSlotOccupied)
	require.True(t, IsPrecondition(err))
}

func TestStartShiftSingleSlotRejectsSecondShift(t *testing.T) {
	employeeID := uuid.New()
	logs := []models.WorkLogEntry{openShift(employeeID, 1, testNow.Add(-time.Hour), nil, false)}

	_, err := StartShift(StartParams{
		Slot:       2,
		EmployeeID: employeeID,
		Logs:       logs,
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrShiftAlreadyActive)
}

func TestStartShiftInvalidSlot(t *testing.T) {
	for _, slot := range []int{0, -1, MaxSlots + 1} {
		_, err := StartShift(StartParams{Slot: slot, EmployeeID: uuid.New(), Now: testNow})
		require.ErrorIs(t, err, ErrInvalidSlot)
	}
}

func TestStartShiftEquipmentRequired(t *testing.T) {
	_, err := StartShift(StartParams{
		Slot:       1,
		EmployeeID: uuid.New(),
		Perms:      Permissions{UseMachines: true},
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrEquipmentRequired)
}

func TestStartShiftEquipmentTakenAtCommitRecheck(t *testing.T) {
	equipmentID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	// Both employees validated against the same snapshot; the first commit
	// lands, so the second start re-validates against logs that now contain
	// the winner's open entry.
	winner, err := StartShift(StartParams{
		Slot:        1,
		EmployeeID:  first,
		EquipmentID: &equipmentID,
		Perms:       Permissions{UseMachines: true},
		Now:         testNow,
	})
	require.NoError(t, err)
	winner.Entry.ID = uuid.New()

	_, err = StartShift(StartParams{
		Slot:        1,
		EmployeeID:  second,
		EquipmentID: &equipmentID,
		Perms:       Permissions{UseMachines: true},
		Logs:        []models.WorkLogEntry{winner.Entry},
		Now:         testNow.Add(time.Second),
	})
	require.ErrorIs(t, err, ErrEquipmentTaken)
	require.True(t, IsConflict(err))
	require.False(t, IsPrecondition(err))
}

func TestStartShiftNightRules(t *testing.T) {
	employeeID := uuid.New()

	_, err := StartShift(StartParams{
		Slot:       1,
		EmployeeID: employeeID,
		NightShift: true,
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrNightNotAllowed)

	// With a flagged slot open, a new slot cannot flip the toggle off.
	perms := Permissions{MultiSlot: true, CanUseNightShift: true}
	logs := []models.WorkLogEntry{openShift(employeeID, 1, testNow.Add(-time.Hour), nil, true)}
	_, err = StartShift(StartParams{
		Slot:       2,
		EmployeeID: employeeID,
		NightShift: false,
		Perms:      perms,
		Logs:       logs,
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrNightLocked)

	started, err := StartShift(StartParams{
		Slot:       2,
		EmployeeID: employeeID,
		NightShift: true,
		Perms:      perms,
		Logs:       logs,
		Now:        testNow,
	})
	require.NoError(t, err)
	require.True(t, started.Entry.NightShift)
}

func TestStartShiftRejectsAbsenceDay(t *testing.T) {
	employeeID := uuid.New()
	logs := []models.WorkLogEntry{{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       DateOnly(testNow),
		Type:       models.EntrySick,
	}}

	_, err := StartShift(StartParams{
		Slot:       1,
		EmployeeID: employeeID,
		Logs:       logs,
		Now:        testNow,
	})
	require.ErrorIs(t, err, ErrAbsenceConflict)
}

func TestStopShiftEmptySlot(t *testing.T) {
	_, err := StopShift(StopParams{Slot: 2, EmployeeID: uuid.New(), Now: testNow})
	require.ErrorIs(t, err, ErrSlotEmpty)
}

func TestStopShiftNightBonusMinutes(t *testing.T) {
	employeeID := uuid.New()
	logs := []models.WorkLogEntry{openShift(employeeID, 1, testNow.Add(-2*time.Hour), nil, true)}

	stopped, err := StopShift(StopParams{
		Slot:              1,
		EmployeeID:        employeeID,
		Logs:              logs,
		NightBonusMinutes: 30,
		Now:               testNow,
	})
	require.NoError(t, err)
	require.Equal(t, 150, stopped.Entry.DurationMinutes)
}

func TestStopShiftClampsNegativeElapsed(t *testing.T) {
	employeeID := uuid.New()
	logs := []models.WorkLogEntry{openShift(employeeID, 1, testNow.Add(time.Hour), nil, false)}

	stopped, err := StopShift(StopParams{
		Slot:       1,
		EmployeeID: employeeID,
		Logs:       logs,
		Now:        testNow,
	})
	require.NoError(t, err)
	require.Equal(t, 0, stopped.Entry.DurationMinutes)
}

func TestPhotoBracketsSession(t *testing.T) {
	employeeID := uuid.New()
	perms := Permissions{MultiSlot: true, RequirePhoto: true}

	first, err := StartShift(StartParams{Slot: 1, EmployeeID: employeeID, Perms: perms, Now: testNow})
	require.NoError(t, err)
	require.True(t, first.PhotoRequired, "0->1 transition requires a photo")
	first.Entry.ID = uuid.New()

	logs := []models.WorkLogEntry{first.Entry}
	second, err := StartShift(StartParams{Slot: 2, EmployeeID: employeeID, Perms: perms, Logs: logs, Now: testNow.Add(time.Minute)})
	require.NoError(t, err)
	require.False(t, second.PhotoRequired, "parallel slot start is inside the session")
	second.Entry.ID = uuid.New()
	logs = append(logs, second.Entry)

	stopSecond, err := StopShift(StopParams{Slot: 2, EmployeeID: employeeID, Perms: perms, Logs: logs, Now: testNow.Add(time.Hour)})
	require.NoError(t, err)
	require.False(t, stopSecond.PhotoRequired, "one slot still open")
	logs[1] = stopSecond.Entry

	stopFirst, err := StopShift(StopParams{Slot: 1, EmployeeID: employeeID, Perms: perms, Logs: logs, Now: testNow.Add(2 * time.Hour)})
	require.NoError(t, err)
	require.True(t, stopFirst.PhotoRequired, "1->0 transition closes the session")
}

func TestSingleSlotEmployeeNeverRunsParallelShifts(t *testing.T) {
	rnd := rand.New(rand.NewSource(7))
	employeeID := uuid.New()
	now := testNow
	var logs []models.WorkLogEntry

	for step := 0; step < 1000; step++ {
		now = now.Add(time.Duration(1+rnd.Intn(30)) * time.Minute)
		slot := 1 + rnd.Intn(MaxSlots)

		if rnd.Intn(2) == 0 {
			result, err := StartShift(StartParams{
				Slot:       slot,
				EmployeeID: employeeID,
				Logs:       logs,
				Now:        now,
			})
			if err == nil {
				result.Entry.ID = uuid.New()
				logs = append(logs, result.Entry)
			}
		} else {
			result, err := StopShift(StopParams{
				Slot:       slot,
				EmployeeID: employeeID,
				Logs:       logs,
				Now:        now,
			})
			if err == nil {
				for i := range logs {
					if logs[i].ID == result.Entry.ID {
						logs[i] = result.Entry
					}
				}
			}
		}

		open := 0
		for i := range logs {
			if logs[i].Open() {
				open++
			}
		}
		require.LessOrEqual(t, open, 1, "step %d", step)
	}
}
