package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/engine"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type DashboardHandler struct {
	DB  *gorm.DB
	Cfg config.Config
}

func NewDashboardHandler(db *gorm.DB, cfg config.Config) *DashboardHandler {
	return &DashboardHandler{DB: db, Cfg: cfg}
}

func (h *DashboardHandler) Get(c *gin.Context) {
	var employeeCount int64
	_ = h.DB.Model(&models.Employee{}).Count(&employeeCount).Error

	var openShifts int64
	_ = h.DB.Model(&models.WorkLogEntry{}).
		Where("type = ? AND check_out IS NULL", models.EntryWork).Count(&openShifts).Error

	now := time.Now()
	var open []models.WorkLogEntry
	_ = h.DB.Where("type = ? AND check_out IS NULL", models.EntryWork).Find(&open).Error
	window := engine.DefaultEquipmentWindow
	if h.Cfg.EquipmentWindowHours > 0 {
		window = time.Duration(h.Cfg.EquipmentWindowHours) * time.Hour
	}
	busyEquipment := len(engine.BusyEquipment(open, now, window))

	var todayCompleted int64
	_ = h.DB.Model(&models.WorkLogEntry{}).
		Where("type = ? AND date = ? AND check_out IS NOT NULL", models.EntryWork, engine.DateOnly(now)).
		Count(&todayCompleted).Error

	c.JSON(http.StatusOK, gin.H{
		"employees":      employeeCount,
		"openShifts":     openShifts,
		"busyEquipment":  busyEquipment,
		"todayCompleted": todayCompleted,
	})
}
