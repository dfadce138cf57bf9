package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/etharaai/workforce-api/internal/errs"
	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func newEmployee(id, email string) model.Employee {
	return model.Employee{
		EmployeeID: id,
		FullName:   "Jordan Blake",
		Email:      email,
		Department: "Engineering",
	}
}

func TestEmployeeService_CreateAndGet(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := service.NewEmployeeService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newEmployee("E1", "e1@x.com")))

	got, err := svc.GetByID(ctx, "E1")
	require.NoError(t, err)
	require.Equal(t, "E1", got.EmployeeID)
	require.Equal(t, "e1@x.com", got.Email)
	require.False(t, got.CreatedAt.IsZero())
}

func TestEmployeeService_CreateDuplicateID(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := service.NewEmployeeService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newEmployee("E1", "e1@x.com")))

	err := svc.Create(ctx, newEmployee("E1", "other@x.com"))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "EMPLOYEE_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "Employee ID already exists", httpErr.Message)

	// The store is unchanged: only the original row exists.
	employees, listErr := svc.List(ctx)
	require.NoError(t, listErr)
	require.Len(t, employees, 1)
	require.Equal(t, "e1@x.com", employees[0].Email)
}

func TestEmployeeService_CreateDuplicateEmail(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := service.NewEmployeeService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newEmployee("E1", "e1@x.com")))

	err := svc.Create(ctx, newEmployee("E2", "e1@x.com"))
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusBadRequest, httpErr.Status)
	require.Equal(t, "EMAIL_ALREADY_EXISTS", httpErr.Code)
	require.Equal(t, "Email already exists", httpErr.Message)
}

func TestEmployeeService_ListNewestFirst(t *testing.T) {
	store := newFakeEmployeeStore()
	svc := service.NewEmployeeService(store)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, newEmployee("E1", "e1@x.com")))
	require.NoError(t, svc.Create(ctx, newEmployee("E2", "e2@x.com")))
	require.NoError(t, svc.Create(ctx, newEmployee("E3", "e3@x.com")))

	employees, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, employees, 3)
	require.Equal(t, "E3", employees[0].EmployeeID)
	require.Equal(t, "E2", employees[1].EmployeeID)
	require.Equal(t, "E1", employees[2].EmployeeID)
}

func TestEmployeeService_GetByIDNotFound(t *testing.T) {
	svc := service.NewEmployeeService(newFakeEmployeeStore())

	_, err := svc.GetByID(context.Background(), "missing")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
	require.Equal(t, "EMPLOYEE_NOT_FOUND", httpErr.Code)
}

func TestEmployeeService_DeleteRemovesAttendance(t *testing.T) {
	employees := newFakeEmployeeStore()
	attendance := newFakeAttendanceStore(employees)
	employeeSvc := service.NewEmployeeService(employees)
	attendanceSvc := service.NewAttendanceService(attendance, employees)
	ctx := context.Background()

	require.NoError(t, employeeSvc.Create(ctx, newEmployee("E1", "e1@x.com")))
	require.NoError(t, attendanceSvc.Mark(ctx, "E1", mustDate(t, "2024-01-01"), model.StatusPresent))
	require.NoError(t, attendanceSvc.Mark(ctx, "E1", mustDate(t, "2024-01-02"), model.StatusAbsent))

	require.NoError(t, employeeSvc.Delete(ctx, "E1"))

	employeesLeft, err := employeeSvc.List(ctx)
	require.NoError(t, err)
	require.Empty(t, employeesLeft)

	records, err := attendanceSvc.GetAll(ctx)
	require.NoError(t, err)
	require.Empty(t, records)
}

func TestEmployeeService_DeleteUnknownIsNotFound(t *testing.T) {
	svc := service.NewEmployeeService(newFakeEmployeeStore())

	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusNotFound, httpErr.Status)
}

func TestEmployeeService_StoreFailureIsGeneric500(t *testing.T) {
	store := newFakeEmployeeStore()
	store.failWith = errors.New("connection refused")
	svc := service.NewEmployeeService(store)

	_, err := svc.List(context.Background())
	require.Error(t, err)

	var httpErr *errs.HTTPError
	require.True(t, errors.As(err, &httpErr))
	require.Equal(t, http.StatusInternalServerError, httpErr.Status)
	// Raw store error text never reaches the client.
	require.NotContains(t, httpErr.Message, "connection refused")
}
