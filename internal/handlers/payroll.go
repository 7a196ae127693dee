package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type PayrollHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewPayrollHandler(db *gorm.DB, cfg config.Config) *PayrollHandler {
	return &PayrollHandler{DB: db, Cfg: cfg}
}

// Today returns the employee's live earnings for the current day. Without
// the payroll feature or a resolvable policy the figure is zero, never an
// error.
func (h *PayrollHandler) Today(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	var employee models.Employee
	if err := h.DB.Preload("Position").First(&employee, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	now := time.Now()
	earnings := decimal.Zero
	minutes := 0

	var todays []models.WorkLogEntry
	if err := h.DB.
		Where("employee_id = ? AND date = ?", employee.ID, engine.DateOnly(now)).
		Find(&todays).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load worklogs"})
		return
	}
	minutes = engine.LiveDayMinutes(todays, now)

	if h.Cfg.FeaturePayroll {
		policy := engine.ResolvePayPolicy(&employee, employee.Position)
		earnings = engine.Earnings(todays, policy, now)
	}

	c.JSON(http.StatusOK, gin.H{
		"employeeId": employee.ID,
		"date":       engine.DateOnly(now).Format("2006-01-02"),
		"minutes":    minutes,
		"earnings":   earnings,
	})
}
