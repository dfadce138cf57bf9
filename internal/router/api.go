package router

import (
	"net/http"

	"github.com/etharaai/workforce-api/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerAPIRoutes maps the business endpoints onto the /api group.
func registerAPIRoutes(r *echo.Echo, h *handler.Handlers) {
	api := r.Group("/api")

	// Employee management.
	api.POST("/employees", handler.Handle(h.Employee.Create, http.StatusCreated))
	api.GET("/employees", handler.Handle(h.Employee.List, http.StatusOK))
	api.GET("/employees/:employee_id", handler.Handle(h.Employee.GetByID, http.StatusOK))
	api.DELETE("/employees/:employee_id", handler.Handle(h.Employee.Delete, http.StatusOK))

	// Attendance management.
	api.POST("/attendance", handler.Handle(h.Attendance.Mark, http.StatusOK))
	api.GET("/attendance", handler.Handle(h.Attendance.GetAll, http.StatusOK))
	api.GET("/attendance/:employee_id", handler.Handle(h.Attendance.GetForEmployee, http.StatusOK))

	// Dashboard statistics.
	api.GET("/stats", handler.Handle(h.Stats.GetStats, http.StatusOK))
}
