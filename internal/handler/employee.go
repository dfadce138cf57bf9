package handler

import (
	"strings"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/etharaai/workforce-api/internal/validation"
	"github.com/labstack/echo/v4"
)

// EmployeeHandler exposes the employee management endpoints.
type EmployeeHandler struct {
	Handler
	employees *service.EmployeeService
}

// NewEmployeeHandler constructs an EmployeeHandler.
func NewEmployeeHandler(s *server.Server, employees *service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{
		Handler:   NewHandler(s),
		employees: employees,
	}
}

// CreateEmployeeRequest is the payload for POST /api/employees.
type CreateEmployeeRequest struct {
	EmployeeID string `json:"employee_id" validate:"required"`
	FullName   string `json:"full_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Department string `json:"department" validate:"required"`
}

// Validate trims all fields first, so whitespace-only input fails the
// required rule and stored values carry no stray padding.
func (r *CreateEmployeeRequest) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Department = strings.TrimSpace(r.Department)
	return validation.Struct(r)
}

// EmployeeIDParam binds the employee_id path parameter, shared by the get
// and delete endpoints.
type EmployeeIDParam struct {
	EmployeeID string `param:"employee_id" validate:"required"`
}

func (r *EmployeeIDParam) Validate() error {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	return validation.Struct(r)
}

// CreateEmployeeResponse acknowledges a successful create.
type CreateEmployeeResponse struct {
	Message    string `json:"message"`
	EmployeeID string `json:"employee_id"`
}

// Create handles POST /api/employees.
func (h *EmployeeHandler) Create(c echo.Context, req *CreateEmployeeRequest) (*CreateEmployeeResponse, error) {
	employee := model.Employee{
		EmployeeID: req.EmployeeID,
		FullName:   req.FullName,
		Email:      req.Email,
		Department: req.Department,
	}

	if err := h.employees.Create(c.Request().Context(), employee); err != nil {
		return nil, err
	}

	return &CreateEmployeeResponse{
		Message:    "Employee created",
		EmployeeID: employee.EmployeeID,
	}, nil
}

// List handles GET /api/employees.
func (h *EmployeeHandler) List(c echo.Context, _ *emptyRequest) ([]model.Employee, error) {
	return h.employees.List(c.Request().Context())
}

// GetByID handles GET /api/employees/:employee_id.
func (h *EmployeeHandler) GetByID(c echo.Context, req *EmployeeIDParam) (model.Employee, error) {
	return h.employees.GetByID(c.Request().Context(), req.EmployeeID)
}

// Delete handles DELETE /api/employees/:employee_id.
func (h *EmployeeHandler) Delete(c echo.Context, req *EmployeeIDParam) (*MessageResponse, error) {
	if err := h.employees.Delete(c.Request().Context(), req.EmployeeID); err != nil {
		return nil, err
	}
	return &MessageResponse{Message: "Employee deleted"}, nil
}
