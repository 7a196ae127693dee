package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type EquipmentHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewEquipmentHandler(db *gorm.DB, cfg config.Config) *EquipmentHandler {
	return &EquipmentHandler{DB: db, Cfg: cfg}
}

type createEquipmentRequest struct {
	OrganizationID string `json:"organizationId" binding:"required"`
	Name           string `json:"name" binding:"required"`
}

func (h *EquipmentHandler) window() time.Duration {
	if h.Cfg.EquipmentWindowHours <= 0 {
		return engine.DefaultEquipmentWindow
	}
	return time.Duration(h.Cfg.EquipmentWindowHours) * time.Hour
}

type equipmentView struct {
	models.EquipmentUnit
	Busy bool `json:"busy"`
}

func (h *EquipmentHandler) List(c *gin.Context) {
	var units []models.EquipmentUnit
	query := h.DB.Order("name asc")
	if raw := c.Query("organizationId"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
			return
		}
		query = query.Where("organization_id = ?", orgID)
	}
	if err := query.Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load equipment"})
		return
	}

	now := time.Now()
	var open []models.WorkLogEntry
	if err := h.DB.Where("type = ? AND check_out IS NULL", models.EntryWork).Find(&open).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load equipment"})
		return
	}
	busy := engine.BusyEquipment(open, now, h.window())

	views := make([]equipmentView, 0, len(units))
	for _, unit := range units {
		views = append(views, equipmentView{EquipmentUnit: unit, Busy: busy[unit.ID]})
	}
	c.JSON(http.StatusOK, views)
}

// Available lists the units an employee may pick for a new slot. Units
// already chosen in the employee's other pending selections go in the
// comma-separated selected parameter and are excluded as self-conflicts.
func (h *EquipmentHandler) Available(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Query("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	selected := []uuid.UUID{}
	if raw := c.Query("selected"); raw != "" {
		for _, part := range strings.Split(raw, ",") {
			id, err := uuid.Parse(strings.TrimSpace(part))
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "invalid selected"})
				return
			}
			selected = append(selected, id)
		}
	}

	var units []models.EquipmentUnit
	if err := h.DB.
		Where("organization_id = ? AND active = ?", employee.OrganizationID, true).
		Order("name asc").Find(&units).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load equipment"})
		return
	}

	var open []models.WorkLogEntry
	if err := h.DB.
		Where("organization_id = ? AND type = ? AND check_out IS NULL", employee.OrganizationID, models.EntryWork).
		Find(&open).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load equipment"})
		return
	}

	c.JSON(http.StatusOK, engine.AvailableEquipment(units, open, selected, time.Now(), h.window()))
}

func (h *EquipmentHandler) Create(c *gin.Context) {
	var req createEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
		return
	}

	unit := models.EquipmentUnit{
		OrganizationID: orgID,
		Name:           strings.TrimSpace(req.Name),
		Active:         true,
	}
	if unit.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return
	}

	if err := h.DB.Create(&unit).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, unit)
}
