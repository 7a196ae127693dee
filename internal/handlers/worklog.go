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

type WorkLogHandler struct {
	DB *gorm.DB
}

func NewWorkLogHandler(db *gorm.DB) *WorkLogHandler {
	return &WorkLogHandler{DB: db}
}

func parseDateParam(c *gin.Context, name string, fallback time.Time) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return fallback, true
	}
	parsed, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return time.Time{}, false
	}
	return parsed, true
}

func (h *WorkLogHandler) List(c *gin.Context) {
	query := h.DB.Order("date desc, created_at desc")

	if raw := c.Query("employeeId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
			return
		}
		query = query.Where("employee_id = ?", id)
	}

	now := time.Now()
	from, ok := parseDateParam(c, "from", engine.DateOnly(now).AddDate(0, -1, 0))
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to", engine.DateOnly(now))
	if !ok {
		return
	}
	query = query.Where("date >= ? AND date <= ?", engine.DateOnly(from), engine.DateOnly(to))

	var entries []models.WorkLogEntry
	if err := query.Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load worklogs"})
		return
	}
	c.JSON(http.StatusOK, entries)
}

// Stats aggregates one employee's range under the max-across-equipment rule.
func (h *WorkLogHandler) Stats(c *gin.Context) {
	raw := c.Query("employeeId")
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	now := time.Now()
	from, ok := parseDateParam(c, "from", engine.DateOnly(now).AddDate(0, 0, -engine.DateOnly(now).Day()+1))
	if !ok {
		return
	}
	to, ok := parseDateParam(c, "to", engine.DateOnly(now))
	if !ok {
		return
	}

	var entries []models.WorkLogEntry
	if err := h.DB.
		Where("employee_id = ? AND date >= ? AND date <= ?", id, engine.DateOnly(from), engine.DateOnly(to)).
		Find(&entries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load worklogs"})
		return
	}

	c.JSON(http.StatusOK, engine.StatsForRange(entries, from, to, now))
}

func (h *WorkLogHandler) Delete(c *gin.Context) {
	entryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.DB.Delete(&models.WorkLogEntry{}, "id = ?", entryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}

func (h *WorkLogHandler) DeleteByEmployee(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("employeeId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employeeId"})
		return
	}

	if err := h.DB.Where("employee_id = ?", employeeID).Delete(&models.WorkLogEntry{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
