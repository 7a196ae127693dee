package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type PositionHandler struct {
	DB *gorm.DB
}

func NewPositionHandler(db *gorm.DB) *PositionHandler {
	return &PositionHandler{DB: db}
}

type positionRequest struct {
	OrganizationID   string  `json:"organizationId"`
	Name             string  `json:"name" binding:"required"`
	MultiSlot        bool    `json:"multiSlot"`
	UseMachines      bool    `json:"useMachines"`
	CanUseNightShift bool    `json:"canUseNightShift"`
	MaxShiftMinutes  *int    `json:"maxShiftMinutes"`
	MarkAbsences     *bool   `json:"markAbsences"`
	RequirePhoto     bool    `json:"requirePhoto"`
	PayType          string  `json:"payType"`
	PayRate          *string `json:"payRate"`
	NightShiftBonus  *string `json:"nightShiftBonus"`
}

func (h *PositionHandler) apply(c *gin.Context, position *models.Position, req positionRequest) bool {
	if req.MaxShiftMinutes != nil && *req.MaxShiftMinutes < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid maxShiftMinutes"})
		return false
	}

	payType, ok := parsePayType(req.PayType)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payType"})
		return false
	}
	payRate, ok := parseDecimalField(c, req.PayRate, "payRate")
	if !ok {
		return false
	}
	nightBonus, ok := parseDecimalField(c, req.NightShiftBonus, "nightShiftBonus")
	if !ok {
		return false
	}

	position.Name = strings.TrimSpace(req.Name)
	if position.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name required"})
		return false
	}
	position.MultiSlot = req.MultiSlot
	position.UseMachines = req.UseMachines
	position.CanUseNightShift = req.CanUseNightShift
	position.MaxShiftMinutes = req.MaxShiftMinutes
	position.MarkAbsences = req.MarkAbsences == nil || *req.MarkAbsences
	position.RequirePhoto = req.RequirePhoto
	position.PayType = payType
	position.PayRate = payRate
	position.NightShiftBonus = nightBonus
	return true
}

func (h *PositionHandler) List(c *gin.Context) {
	query := h.DB.Order("name asc")
	if raw := c.Query("organizationId"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
			return
		}
		query = query.Where("organization_id = ?", orgID)
	}

	var positions []models.Position
	if err := query.Find(&positions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load positions"})
		return
	}
	c.JSON(http.StatusOK, positions)
}

func (h *PositionHandler) Create(c *gin.Context) {
	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
		return
	}

	position := models.Position{OrganizationID: orgID}
	if !h.apply(c, &position, req) {
		return
	}

	if err := h.DB.Create(&position).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, position)
}

func (h *PositionHandler) Update(c *gin.Context) {
	positionID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var position models.Position
	if err := h.DB.First(&position, "id = ?", positionID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "position not found"})
		return
	}

	var req positionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if !h.apply(c, &position, req) {
		return
	}

	if err := h.DB.Save(&position).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, position)
}
