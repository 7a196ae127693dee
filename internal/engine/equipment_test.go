package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

func TestBusyEquipmentWindow(t *testing.T) {
	fresh := uuid.New()
	stale := uuid.New()
	closed := uuid.New()

	checkOut := testNow.Add(-time.Hour)
	logs := []models.WorkLogEntry{
		openShift(uuid.New(), 1, testNow.Add(-2*time.Hour), &fresh, false),
		// Orphaned open record outside the 24h window stops blocking its unit.
		openShift(uuid.New(), 1, testNow.Add(-25*time.Hour), &stale, false),
		{
			ID:          uuid.New(),
			EmployeeID:  uuid.New(),
			Date:        DateOnly(testNow),
			Type:        models.EntryWork,
			Slot:        1,
			EquipmentID: &closed,
			CheckIn:     &checkOut,
			CheckOut:    &checkOut,
		},
	}

	busy := BusyEquipment(logs, testNow, 24*time.Hour)
	require.True(t, busy[fresh])
	require.False(t, busy[stale])
	require.False(t, busy[closed])
}

func TestAvailableEquipmentExcludesBusyAndSelfSelected(t *testing.T) {
	orgID := uuid.New()
	unitA := models.EquipmentUnit{ID: uuid.New(), OrganizationID: orgID, Name: "press-1", Active: true}
	unitB := models.EquipmentUnit{ID: uuid.New(), OrganizationID: orgID, Name: "press-2", Active: true}
	unitC := models.EquipmentUnit{ID: uuid.New(), OrganizationID: orgID, Name: "press-3", Active: true}
	retired := models.EquipmentUnit{ID: uuid.New(), OrganizationID: orgID, Name: "press-4", Active: false}

	logs := []models.WorkLogEntry{
		openShift(uuid.New(), 1, testNow.Add(-time.Hour), &unitA.ID, false),
	}

	// unitB is picked in another slot of the same employee's pending
	// selection: excluded even though it is globally free.
	available := AvailableEquipment(
		[]models.EquipmentUnit{unitA, unitB, unitC, retired},
		logs,
		[]uuid.UUID{unitB.ID},
		testNow,
		24*time.Hour,
	)

	require.Len(t, available, 1)
	require.Equal(t, unitC.ID, available[0].ID)
}
