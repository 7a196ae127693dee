package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type AbsenceHandler struct {
	DB *gorm.DB
}

func NewAbsenceHandler(db *gorm.DB) *AbsenceHandler {
	return &AbsenceHandler{DB: db}
}

type markAbsenceRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Type       string `json:"type" binding:"required"`
	Date       string `json:"date"`
}

// Mark records a day_off/sick/vacation entry for a whole day. The entry is
// immutable once written; there is no employee-facing retraction.
func (h *AbsenceHandler) Mark(c *gin.Context) {
	var req markAbsenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	var employee models.Employee
	if err := h.DB.Preload("Position").First(&employee, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	date := time.Now()
	if req.Date != "" {
		parsed, err := time.ParseInLocation("2006-01-02", req.Date, time.Local)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date"})
			return
		}
		date = parsed
	}

	var logs []models.WorkLogEntry
	if err := h.DB.
		Where("employee_id = ? AND (date = ? OR (type = ? AND check_out IS NULL))",
			employee.ID, engine.DateOnly(date), models.EntryWork).
		Find(&logs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mark failed"})
		return
	}

	entry, err := engine.MarkAbsence(engine.AbsenceParams{
		Kind:           models.EntryType(req.Type),
		EmployeeID:     employee.ID,
		OrganizationID: employee.OrganizationID,
		Date:           date,
		Perms:          engine.PermissionsFor(employee.Position),
		Logs:           logs,
	})
	if err != nil {
		respondEngineError(c, err, "mark failed")
		return
	}

	if err := h.DB.Create(&entry).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mark failed"})
		return
	}

	c.JSON(http.StatusCreated, entry)
}
