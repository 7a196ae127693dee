package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/timka1983/WorkTrackerPRO-sub001/internal/config"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/handlers"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/middleware"
	"github.com/timka1983/WorkTrackerPRO-sub001/internal/monitor"
)

func Register(router *gin.Engine, db *gorm.DB, cfg config.Config, runner *monitor.Runner) {
	router.Use(middleware.Cors(cfg.AllowedOriginsRaw))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "worktracker-pro-backend"})
	})

	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	shiftHandler := handlers.NewShiftHandler(db, cfg, runner)
	worklogHandler := handlers.NewWorkLogHandler(db)
	absenceHandler := handlers.NewAbsenceHandler(db)
	payrollHandler := handlers.NewPayrollHandler(db, cfg)
	equipmentHandler := handlers.NewEquipmentHandler(db, cfg)
	employeeHandler := handlers.NewEmployeeHandler(db)
	positionHandler := handlers.NewPositionHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, cfg)

	api := router.Group("/api")
	{
		api.GET("/dashboard", dashboardHandler.Get)

		api.POST("/shifts/start", shiftHandler.Start)
		api.POST("/shifts/stop", shiftHandler.Stop)
		api.GET("/shifts/active", shiftHandler.Active)

		api.GET("/worklogs", worklogHandler.List)
		api.GET("/worklogs/stats", worklogHandler.Stats)
		api.DELETE("/worklogs/:id", worklogHandler.Delete)
		api.DELETE("/worklogs/employee/:employeeId", worklogHandler.DeleteByEmployee)

		api.POST("/absences", absenceHandler.Mark)

		api.GET("/payroll/today", payrollHandler.Today)

		api.GET("/equipment", equipmentHandler.List)
		api.GET("/equipment/available", equipmentHandler.Available)
		api.POST("/equipment", equipmentHandler.Create)

		api.GET("/employees", employeeHandler.List)
		api.POST("/employees", employeeHandler.Create)
		api.PUT("/employees/:id", employeeHandler.Update)
		api.DELETE("/employees/:id", employeeHandler.Delete)

		api.GET("/positions", positionHandler.List)
		api.POST("/positions", positionHandler.Create)
		api.PUT("/positions/:id", positionHandler.Update)
	}
}
