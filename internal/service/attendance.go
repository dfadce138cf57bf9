package service

import (
	"context"
	"time"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/sqlerr"
)

// AttendanceStore is the persistence surface the attendance service needs.
// *repository.AttendanceRepository implements it.
type AttendanceStore interface {
	Upsert(ctx context.Context, employeeID string, date time.Time, status string) error
	ListForEmployee(ctx context.Context, employeeID string, date *time.Time) ([]model.Attendance, error)
	ListAll(ctx context.Context) ([]model.AttendanceRecord, error)
}

// AttendanceService implements the attendance management operations.
//
// It also consults the employee store so that operations on an unknown
// employee fail with a not-found error rather than an opaque store error.
type AttendanceService struct {
	attendance AttendanceStore
	employees  EmployeeStore
}

// NewAttendanceService constructs an AttendanceService.
func NewAttendanceService(attendance AttendanceStore, employees EmployeeStore) *AttendanceService {
	return &AttendanceService{
		attendance: attendance,
		employees:  employees,
	}
}

// Mark records attendance for (employeeID, date), overwriting the status if
// a row for that day already exists.
//
// The write is a single constraint-backed upsert, so concurrent marks for
// the same key converge to one row. The existence check up front gives the
// common case a clean 404; the foreign key constraint catches the remaining
// race where the employee is deleted between check and write.
func (s *AttendanceService) Mark(ctx context.Context, employeeID string, date time.Time, status string) error {
	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return sqlerr.HandleError(err)
	}
	if !exists {
		return ErrEmployeeNotFound
	}

	if err := s.attendance.Upsert(ctx, employeeID, date, status); err != nil {
		if sqlerr.ErrCode(err) == sqlerr.ForeignKeyViolation {
			return ErrEmployeeNotFound
		}
		return sqlerr.HandleError(err)
	}
	return nil
}

// GetForEmployee returns the attendance rows for one employee, newest date
// first. A non-nil date restricts the result to that exact day. Unknown
// employees fail with ErrEmployeeNotFound rather than an empty list.
func (s *AttendanceService) GetForEmployee(ctx context.Context, employeeID string, date *time.Time) ([]model.Attendance, error) {
	exists, err := s.employees.Exists(ctx, employeeID)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	if !exists {
		return nil, ErrEmployeeNotFound
	}

	records, err := s.attendance.ListForEmployee(ctx, employeeID, date)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return records, nil
}

// GetAll returns every attendance row joined with employee name and
// department.
func (s *AttendanceService) GetAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	records, err := s.attendance.ListAll(ctx)
	if err != nil {
		return nil, sqlerr.HandleError(err)
	}
	return records, nil
}
