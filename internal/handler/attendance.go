package handler

import (
	"strings"
	"time"

	"github.com/etharaai/workforce-api/internal/errs"
	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/etharaai/workforce-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// AttendanceHandler exposes the attendance management endpoints.
type AttendanceHandler struct {
	Handler
	attendance *service.AttendanceService
}

// NewAttendanceHandler constructs an AttendanceHandler.
func NewAttendanceHandler(s *server.Server, attendance *service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{
		Handler:    NewHandler(s),
		attendance: attendance,
	}
}

// MarkAttendanceRequest is the payload for POST /api/attendance.
type MarkAttendanceRequest struct {
	EmployeeID     string `json:"employee_id" validate:"required"`
	AttendanceDate string `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	Status         string `json:"status" validate:"required,oneof=Present Absent"`
}

func (r *MarkAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.AttendanceDate = strings.TrimSpace(r.AttendanceDate)
	return validation.Struct(r)
}

// ListAttendanceRequest binds the employee_id path parameter and the
// optional exact-date query filter for GET /api/attendance/:employee_id.
type ListAttendanceRequest struct {
	EmployeeID string `param:"employee_id" validate:"required"`
	Date       string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

func (r *ListAttendanceRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Date = strings.TrimSpace(r.Date)
	return validation.Struct(r)
}

// Mark handles POST /api/attendance.
func (h *AttendanceHandler) Mark(c echo.Context, req *MarkAttendanceRequest) (*MessageResponse, error) {
	date, err := time.Parse(model.DateFormat, req.AttendanceDate)
	if err != nil {
		// Unreachable after the datetime validation tag, but kept so a tag
		// change can never push a garbage date into the store.
		return nil, errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
			{Field: "attendance_date", Error: "must be a valid date in 2006-01-02 format"},
		})
	}

	if err := h.attendance.Mark(c.Request().Context(), req.EmployeeID, date, req.Status); err != nil {
		return nil, err
	}

	return &MessageResponse{Message: "Attendance marked"}, nil
}

// GetForEmployee handles GET /api/attendance/:employee_id.
func (h *AttendanceHandler) GetForEmployee(c echo.Context, req *ListAttendanceRequest) ([]model.Attendance, error) {
	var date *time.Time
	if req.Date != "" {
		parsed, err := time.Parse(model.DateFormat, req.Date)
		if err != nil {
			return nil, errs.NewUnprocessableEntityError("Validation failed", []errs.FieldError{
				{Field: "date", Error: "must be a valid date in 2006-01-02 format"},
			})
		}
		date = &parsed
	}

	return h.attendance.GetForEmployee(c.Request().Context(), req.EmployeeID, date)
}

// GetAll handles GET /api/attendance.
func (h *AttendanceHandler) GetAll(c echo.Context, _ *emptyRequest) ([]model.AttendanceRecord, error) {
	return h.attendance.GetAll(c.Request().Context())
}
