package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/models"
)

type EmployeeHandler struct {
	DB *gorm.DB
}

func NewEmployeeHandler(db *gorm.DB) *EmployeeHandler {
	return &EmployeeHandler{DB: db}
}

type employeeRequest struct {
	OrganizationID  string  `json:"organizationId"`
	FirstName       string  `json:"firstName" binding:"required"`
	LastName        string  `json:"lastName" binding:"required"`
	Email           string  `json:"email" binding:"required,email"`
	Phone           string  `json:"phone"`
	PositionID      string  `json:"positionId"`
	PayType         string  `json:"payType"`
	PayRate         *string `json:"payRate"`
	NightShiftBonus *string `json:"nightShiftBonus"`
	HiredAt         string  `json:"hiredAt"`
}

func parsePayType(value string) (*models.PayType, bool) {
	switch models.PayType(strings.TrimSpace(value)) {
	case models.PayHourly:
		payType := models.PayHourly
		return &payType, true
	case models.PayPerShift:
		payType := models.PayPerShift
		return &payType, true
	}
	if strings.TrimSpace(value) == "" {
		return nil, true
	}
	return nil, false
}

func parseDecimalField(c *gin.Context, raw *string, name string) (*decimal.Decimal, bool) {
	if raw == nil || strings.TrimSpace(*raw) == "" {
		return nil, true
	}
	parsed, err := decimal.NewFromString(strings.TrimSpace(*raw))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return nil, false
	}
	return &parsed, true
}

func (h *EmployeeHandler) applyRequest(c *gin.Context, employee *models.Employee, req employeeRequest) bool {
	normalizedEmail := strings.ToLower(strings.TrimSpace(req.Email))

	var existing models.Employee
	if err := h.DB.Where("email = ? AND id <> ?", normalizedEmail, employee.ID).First(&existing).Error; err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "email already exists"})
		return false
	} else if err != gorm.ErrRecordNotFound {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return false
	}

	if req.PositionID != "" {
		positionID, err := uuid.Parse(req.PositionID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid positionId"})
			return false
		}
		var position models.Position
		if err := h.DB.First(&position, "id = ?", positionID).Error; err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "position not found"})
			return false
		}
		employee.PositionID = &positionID
	} else {
		employee.PositionID = nil
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

	if req.HiredAt != "" {
		hiredAt, err := time.Parse("2006-01-02", req.HiredAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid hiredAt"})
			return false
		}
		employee.HiredAt = hiredAt
	}

	employee.FirstName = req.FirstName
	employee.LastName = req.LastName
	employee.Email = normalizedEmail
	employee.Phone = req.Phone
	employee.PayType = payType
	employee.PayRate = payRate
	employee.NightShiftBonus = nightBonus
	return true
}

func (h *EmployeeHandler) List(c *gin.Context) {
	query := h.DB.Preload("Position").Order("created_at desc")
	if raw := c.Query("organizationId"); raw != "" {
		orgID, err := uuid.Parse(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
			return
		}
		query = query.Where("organization_id = ?", orgID)
	}

	var employees []models.Employee
	if err := query.Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load employees"})
		return
	}
	c.JSON(http.StatusOK, employees)
}

func (h *EmployeeHandler) Create(c *gin.Context) {
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	orgID, err := uuid.Parse(req.OrganizationID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid organizationId"})
		return
	}

	employee := models.Employee{OrganizationID: orgID}
	if !h.applyRequest(c, &employee, req) {
		return
	}

	if err := h.DB.Create(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}

	c.JSON(http.StatusCreated, employee)
}

func (h *EmployeeHandler) Update(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var employee models.Employee
	if err := h.DB.First(&employee, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
		return
	}

	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	if !h.applyRequest(c, &employee, req) {
		return
	}

	if err := h.DB.Save(&employee).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		return
	}

	c.JSON(http.StatusOK, employee)
}

func (h *EmployeeHandler) Delete(c *gin.Context) {
	employeeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	if err := h.DB.Delete(&models.Employee{}, "id = ?", employeeID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "delete failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "deleted"})
}
