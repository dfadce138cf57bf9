package service

import (
	"context"
	"errors"

	"github.com/etharaai/workforce-api/internal/errs"
	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// EmployeeStore is the persistence surface the employee service needs.
// *repository.EmployeeRepository implements it.
type EmployeeStore interface {
	Create(ctx context.Context, employee model.Employee) error
	List(ctx context.Context) ([]model.Employee, error)
	GetByID(ctx context.Context, employeeID string) (model.Employee, error)
	Exists(ctx context.Context, employeeID string) (bool, error)
	Delete(ctx context.Context, employeeID string) error
}

// Constraint names from the employees schema, used to turn unique
// violations into precise conflict messages.
const (
	employeeIDConstraint    = "employees_pkey"
	employeeEmailConstraint = "employees_email_key"
)

var errEmployeeNotFoundCode = "EMPLOYEE_NOT_FOUND"

// ErrEmployeeNotFound is returned whenever an operation references an
// employee_id that does not exist.
var ErrEmployeeNotFound = errs.NewNotFoundError("Employee not found", true, &errEmployeeNotFoundCode)

// EmployeeService implements the employee management operations.
type EmployeeService struct {
	employees EmployeeStore
}

// NewEmployeeService constructs an EmployeeService.
func NewEmployeeService(employees EmployeeStore) *EmployeeService {
	return &EmployeeService{employees: employees}
}

// Create inserts a new employee.
//
// Uniqueness of employee_id and email is left to the store's constraints:
// a single atomic insert either succeeds or reports which constraint was
// violated, which this method classifies into a conflict error. There is
// no read-then-write window for concurrent creates to race through.
func (s *EmployeeService) Create(ctx context.Context, employee model.Employee) error {
	if err := s.employees.Create(ctx, employee); err != nil {
		return classifyCreateError(err)
	}
	return nil
}

// classifyCreateError maps a failed insert to the client-facing error:
// conflicts name the duplicated field; everything else goes through the
// generic classifier.
func classifyCreateError(err error) error {
	var pgerr *pgconn.PgError
	if errors.As(err, &pgerr) && sqlerr.MapCode(pgerr.Code) == sqlerr.UniqueViolation {
		switch pgerr.ConstraintName {
		case employeeIDConstraint:
			return errs.NewConflictError("Employee ID already exists", "EMPLOYEE_ALREADY_EXISTS")
		case employeeEmailConstraint:
			return errs.NewConflictError("Email already exists", "EMAIL_ALREADY_EXISTS")
		}
	}
	return sqlerr.HandleError(err)
}

// List returns all employees, newest first.
func (s *EmployeeService) List(ctx context.Context) ([]model.Employee, error) {
	employees, err := s.employees.List(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return employees, nil
}

// GetByID returns a single employee, or ErrEmployeeNotFound.
func (s *EmployeeService) GetByID(ctx context.Context, employeeID string) (model.Employee, error) {
	employee, err := s.employees.GetByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Employee{}, ErrEmployeeNotFound
		}
		return model.Employee{}, sqlerr.HandleError(err)
	}
	return employee, nil
}

// Delete removes an employee and all of its attendance rows atomically.
// Deleting an unknown employee_id is an error (strict semantics), so a
// client can distinguish "deleted now" from "never existed".
func (s *EmployeeService) Delete(ctx context.Context, employeeID string) error {
	if err := s.employees.Delete(ctx, employeeID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrEmployeeNotFound
		}
		return sqlerr.HandleError(err)
	}
	return nil
}
