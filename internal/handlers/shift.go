package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/monitor"
)

type ShiftHandler struct {
	DB      *gorm.DB
	Cfg     config.Config
	Monitor *monitor.Runner
}

func NewShiftHandler(db *gorm.DB, cfg config.Config, runner *monitor.Runner) *ShiftHandler {
	return &ShiftHandler{DB: db, Cfg: cfg, Monitor: runner}
}

type startShiftRequest struct {
	EmployeeID  string `json:"employeeId" binding:"required"`
	Slot        int    `json:"slot" binding:"required"`
	EquipmentID string `json:"equipmentId"`
	NightShift  bool   `json:"nightShift"`
	PhotoRef    string `json:"photoRef"`
}

type stopShiftRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Slot       int    `json:"slot" binding:"required"`
	PhotoRef   string `json:"photoRef"`
}

func (h *ShiftHandler) window() time.Duration {
	if h.Cfg.EquipmentWindowHours <= 0 {
		return engine.DefaultEquipmentWindow
	}
	return time.Duration(h.Cfg.EquipmentWindowHours) * time.Hour
}

func (h *ShiftHandler) loadEmployee(c *gin.Context, raw string) (models.Employee, bool) {
	var employee models.Employee
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return employee, false
	}
	if err := h.DB.Preload("Position").First(&employee, "id = ?", id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return employee, false
	}
	return employee, true
}

func respondEngineError(c *gin.Context, err error, fallback string) {
	switch {
	case err == engine.ErrInvalidSlot || err == engine.ErrInvalidEntryType:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case engine.IsConflict(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "equipment_taken"})
	case engine.IsPrecondition(err):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// Start opens a shift in a slot. Equipment availability is validated twice:
// once inside the engine against the loaded state and again inside the commit
// transaction, so a unit grabbed between selection and commit surfaces as an
// equipment_taken conflict instead of a double booking.
func (h *ShiftHandler) Start(c *gin.Context) {
	var req startShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	employee, ok := h.loadEmployee(c, req.EmployeeID)
	if !ok {
		return
	}

	var equipmentID *uuid.UUID
	if req.EquipmentID != "" {
		parsed, err := uuid.Parse(req.EquipmentID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid equipmentId"})
			return
		}
		equipmentID = &parsed
	}

	now := time.Now()
	var logs []models.WorkLogEntry
	if err := h.DB.
		Where("organization_id = ? AND ((type = ? AND check_out IS NULL) OR (employee_id = ? AND date = ?))",
			employee.OrganizationID, models.EntryWork, employee.ID, engine.DateOnly(now)).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "start failed"})
		return
	}

	result, err := engine.StartShift(engine.StartParams{
		Slot:            req.Slot,
		EmployeeID:      employee.ID,
		OrganizationID:  employee.OrganizationID,
		EquipmentID:     equipmentID,
		NightShift:      req.NightShift,
		Perms:           engine.PermissionsFor(employee.Position),
		Logs:            logs,
		Now:             now,
		EquipmentWindow: h.window(),
	})
	if err != nil {
		respondEngineError(c, err, "start failed")
		return
	}

	// Capture cancelled or skipped: nothing gets committed.
	if result.PhotoRequired && req.PhotoRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo required", "code": "photo_required"})
		return
	}
	result.Entry.PhotoIn = req.PhotoRef

	entry := result.Entry
	err = h.DB.Transaction(func(tx *gorm.DB) error {
		if entry.EquipmentID != nil {
			cutoff := now.Add(-h.window())
			var busy int64
			if err := tx.Model(&models.WorkLogEntry{}).
				Where("equipment_id = ? AND type = ? AND check_out IS NULL AND check_in > ?",
					*entry.EquipmentID, models.EntryWork, cutoff).
				Count(&busy).Error; err != nil {
				return err
			}
			if busy > 0 {
				return engine.ErrEquipmentTaken
			}
		}
		return tx.Create(&entry).Error
	})
	if err != nil {
		respondEngineError(c, err, "start failed")
		return
	}

	h.Monitor.Poke()
	c.JSON(http.StatusCreated, entry)
}

// Stop completes the shift occupying the slot. CheckOut and DurationMinutes
// land in one guarded update so a shift transitions to completed exactly
// once.
func (h *ShiftHandler) Stop(c *gin.Context) {
	var req stopShiftRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	employee, ok := h.loadEmployee(c, req.EmployeeID)
	if !ok {
		return
	}

	var open []models.WorkLogEntry
	if err := h.DB.
		Where("employee_id = ? AND type = ? AND check_out IS NULL", employee.ID, models.EntryWork).
		Find(&open).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stop failed"})
		return
	}

	result, err := engine.StopShift(engine.StopParams{
		Slot:              req.Slot,
		EmployeeID:        employee.ID,
		Perms:             engine.PermissionsFor(employee.Position),
		Logs:              open,
		NightBonusMinutes: h.Cfg.NightShiftBonusMinutes,
		Now:               time.Now(),
	})
	if err != nil {
		respondEngineError(c, err, "stop failed")
		return
	}

	if result.PhotoRequired && req.PhotoRef == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "photo required", "code": "photo_required"})
		return
	}

	entry := result.Entry
	update := h.DB.Model(&models.WorkLogEntry{}).
		Where("id = ? AND check_out IS NULL", entry.ID).
		Updates(map[string]interface{}{
			"check_out":        entry.CheckOut,
			"duration_minutes": entry.DurationMinutes,
			"photo_out":        req.PhotoRef,
		})
	if update.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "stop failed"})
		return
	}
	if update.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "already checked out"})
		return
	}
	entry.PhotoOut = req.PhotoRef

	h.Monitor.Poke()
	c.JSON(http.StatusOK, entry)
}

// Active returns the employee's slot map of open shifts.
func (h *ShiftHandler) Active(c *gin.Context) {
	employee, ok := h.loadEmployee(c, c.Query("employeeId"))
	if !ok {
		return
	}

	var open []models.WorkLogEntry
	if err := h.DB.
		Where("employee_id = ? AND type = ? AND check_out IS NULL", employee.ID, models.EntryWork).
		Find(&open).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load active shifts"})
		return
	}

	c.JSON(http.StatusOK, engine.ActiveShifts(open, employee.ID))
}
