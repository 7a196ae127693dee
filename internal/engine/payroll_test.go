package engine

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

func hourlyPolicy(rate string) *PayPolicy {
	return &PayPolicy{Type: models.PayHourly, Rate: decimal.RequireFromString(rate)}
}

func TestEarningsHourly(t *testing.T) {
	employeeID := uuid.New()
	day := DateOnly(testNow)
	entries := []models.WorkLogEntry{completedShift(employeeID, day, nil, 90)}

	earned := Earnings(entries, hourlyPolicy("10"), testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("15")), "got %s", earned)

	// Rate and minutes that cancel exactly must not pick up division dust.
	earned = Earnings(
		[]models.WorkLogEntry{completedShift(employeeID, day, nil, 50)},
		hourlyPolicy("60"), testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("50")), "got %s", earned)
}

func TestEarningsPerShiftIsFlat(t *testing.T) {
	employeeID := uuid.New()
	day := DateOnly(testNow)
	policy := &PayPolicy{Type: models.PayPerShift, Rate: decimal.RequireFromString("120")}

	earned := Earnings([]models.WorkLogEntry{completedShift(employeeID, day, nil, 5)}, policy, testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("120")), "any positive minutes pay the full shift")

	earned = Earnings(nil, policy, testNow)
	require.True(t, earned.IsZero())
}

func TestEarningsMaxAcrossEquipment(t *testing.T) {
	employeeID := uuid.New()
	day := DateOnly(testNow)
	machineA := uuid.New()
	machineB := uuid.New()
	entries := []models.WorkLogEntry{
		completedShift(employeeID, day, &machineA, 30),
		completedShift(employeeID, day, &machineB, 50),
	}

	earned := Earnings(entries, hourlyPolicy("60"), testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("50")), "50 minutes at 60/h, not 80")
}

func TestEarningsNightBonusAppliedOnce(t *testing.T) {
	employeeID := uuid.New()
	day := DateOnly(testNow)
	machineA := uuid.New()
	machineB := uuid.New()

	policy := hourlyPolicy("60")
	policy.NightBonus = decimal.RequireFromString("5")

	entryA := completedShift(employeeID, day, &machineA, 30)
	entryA.NightShift = true
	entryB := completedShift(employeeID, day, &machineB, 50)
	entryB.NightShift = true

	earned := Earnings([]models.WorkLogEntry{entryA, entryB}, policy, testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("55")), "got %s", earned)
}

func TestEarningsLiveOpenShift(t *testing.T) {
	employeeID := uuid.New()
	entries := []models.WorkLogEntry{
		openShift(employeeID, 1, testNow.Add(-30*time.Minute), nil, false),
	}

	earned := Earnings(entries, hourlyPolicy("60"), testNow)
	require.True(t, earned.Equal(decimal.RequireFromString("30")), "open shifts pay by elapsed time")
}

func TestLiveDayMinutesMatchesEarningsAggregation(t *testing.T) {
	employeeID := uuid.New()
	machine := uuid.New()
	entries := []models.WorkLogEntry{
		completedShift(employeeID, DateOnly(testNow), &machine, 50),
		openShift(employeeID, 2, testNow.Add(-30*time.Minute), nil, false),
	}

	// The displayed minutes and the paid minutes come from one aggregation:
	// the 50-minute machine bucket wins over the 30-minute open shift.
	minutes := LiveDayMinutes(entries, testNow)
	require.Equal(t, 50, minutes)

	earned := Earnings(entries, hourlyPolicy("60"), testNow)
	require.True(t, earned.Equal(decimal.NewFromInt(int64(minutes))), "got %s", earned)
}

func TestEarningsNilPolicyReturnsZero(t *testing.T) {
	employeeID := uuid.New()
	entries := []models.WorkLogEntry{completedShift(employeeID, DateOnly(testNow), nil, 480)}
	require.True(t, Earnings(entries, nil, testNow).IsZero())
}

func TestResolvePayPolicyPrecedence(t *testing.T) {
	hourly := models.PayHourly
	perShift := models.PayPerShift
	posRate := decimal.RequireFromString("8")
	empRate := decimal.RequireFromString("12")

	position := &models.Position{PayType: &hourly, PayRate: &posRate}
	employee := &models.Employee{PayType: &perShift, PayRate: &empRate}

	policy := ResolvePayPolicy(employee, position)
	require.NotNil(t, policy)
	require.Equal(t, models.PayPerShift, policy.Type)
	require.True(t, policy.Rate.Equal(empRate))

	policy = ResolvePayPolicy(&models.Employee{}, position)
	require.NotNil(t, policy)
	require.Equal(t, models.PayHourly, policy.Type)

	require.Nil(t, ResolvePayPolicy(&models.Employee{}, &models.Position{}))
	require.Nil(t, ResolvePayPolicy(nil, nil))
}
