package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"github.com/etharaai/workforce-api/internal/config"
	"github.com/etharaai/workforce-api/internal/handler"
	"github.com/etharaai/workforce-api/internal/middleware"
	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/router"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

// These tests exercise the full HTTP pipeline: router, middleware stack,
// generic handler pipeline, services, down to in-memory store fakes that
// reproduce the real repositories' error surface.

type fakeEmployeeStore struct {
	employees  map[string]model.Employee
	clock      time.Time
	attendance *fakeAttendanceStore
}

func (f *fakeEmployeeStore) Create(_ context.Context, employee model.Employee) error {
	if _, ok := f.employees[employee.EmployeeID]; ok {
		return &pgconn.PgError{Code: "23505", TableName: "employees", ConstraintName: "employees_pkey"}
	}
	for _, existing := range f.employees {
		if existing.Email == employee.Email {
			return &pgconn.PgError{Code: "23505", TableName: "employees", ConstraintName: "employees_email_key"}
		}
	}
	f.clock = f.clock.Add(time.Minute)
	employee.CreatedAt = f.clock
	f.employees[employee.EmployeeID] = employee
	return nil
}

func (f *fakeEmployeeStore) List(_ context.Context) ([]model.Employee, error) {
	employees := make([]model.Employee, 0, len(f.employees))
	for _, e := range f.employees {
		employees = append(employees, e)
	}
	sort.Slice(employees, func(i, j int) bool {
		return employees[i].CreatedAt.After(employees[j].CreatedAt)
	})
	return employees, nil
}

func (f *fakeEmployeeStore) GetByID(_ context.Context, employeeID string) (model.Employee, error) {
	employee, ok := f.employees[employeeID]
	if !ok {
		return model.Employee{}, pgx.ErrNoRows
	}
	return employee, nil
}

func (f *fakeEmployeeStore) Exists(_ context.Context, employeeID string) (bool, error) {
	_, ok := f.employees[employeeID]
	return ok, nil
}

func (f *fakeEmployeeStore) Delete(_ context.Context, employeeID string) error {
	if _, ok := f.employees[employeeID]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.employees, employeeID)
	for key := range f.attendance.rows {
		if key.employeeID == employeeID {
			delete(f.attendance.rows, key)
		}
	}
	return nil
}

type attendanceKey struct {
	employeeID string
	date       string
}

type fakeAttendanceStore struct {
	rows      map[attendanceKey]model.Attendance
	nextID    int64
	employees *fakeEmployeeStore
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, employeeID string, date time.Time, status string) error {
	if _, ok := f.employees.employees[employeeID]; !ok {
		return &pgconn.PgError{Code: "23503", TableName: "attendance", ColumnName: "employee_id"}
	}
	key := attendanceKey{employeeID: employeeID, date: date.Format(model.DateFormat)}
	if row, ok := f.rows[key]; ok {
		row.Status = status
		f.rows[key] = row
		return nil
	}
	f.nextID++
	f.rows[key] = model.Attendance{
		ID:             f.nextID,
		EmployeeID:     employeeID,
		AttendanceDate: key.date,
		Status:         status,
	}
	return nil
}

func (f *fakeAttendanceStore) ListForEmployee(_ context.Context, employeeID string, date *time.Time) ([]model.Attendance, error) {
	records := make([]model.Attendance, 0)
	for key, row := range f.rows {
		if key.employeeID != employeeID {
			continue
		}
		if date != nil && key.date != date.Format(model.DateFormat) {
			continue
		}
		records = append(records, row)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].AttendanceDate > records[j].AttendanceDate
	})
	return records, nil
}

func (f *fakeAttendanceStore) ListAll(_ context.Context) ([]model.AttendanceRecord, error) {
	records := make([]model.AttendanceRecord, 0, len(f.rows))
	for _, row := range f.rows {
		employee := f.employees.employees[row.EmployeeID]
		records = append(records, model.AttendanceRecord{
			Attendance: row,
			FullName:   employee.FullName,
			Department: employee.Department,
		})
	}
	sort.Slice(records, func(i, j int) bool {
		if records[i].AttendanceDate != records[j].AttendanceDate {
			return records[i].AttendanceDate > records[j].AttendanceDate
		}
		return records[i].FullName < records[j].FullName
	})
	return records, nil
}

// fakeStatsStore derives counts from the other fakes, the way the real
// store derives them from its tables.
type fakeStatsStore struct {
	employees  *fakeEmployeeStore
	attendance *fakeAttendanceStore
}

func (f *fakeStatsStore) Counts(_ context.Context) (model.Stats, error) {
	today := time.Now().Format(model.DateFormat)
	stats := model.Stats{
		TotalEmployees: int64(len(f.employees.employees)),
		TotalRecords:   int64(len(f.attendance.rows)),
	}
	for _, row := range f.attendance.rows {
		if row.AttendanceDate == today && row.Status == model.StatusPresent {
			stats.PresentToday++
		}
	}
	return stats, nil
}

// newTestAPI assembles the real router over fake stores.
func newTestAPI(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := &config.Config{
		Primary: config.Primary{Env: "test"},
		Server: config.ServerConfig{
			Port:               "8080",
			ReadTimeout:        5,
			WriteTimeout:       5,
			IdleTimeout:        5,
			CORSAllowedOrigins: []string{"http://localhost:3000"},
		},
	}

	logger := zerolog.Nop()
	srv := &server.Server{Config: cfg, Logger: &logger}

	employees := &fakeEmployeeStore{
		employees: make(map[string]model.Employee),
		clock:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
	attendance := &fakeAttendanceStore{
		rows:      make(map[attendanceKey]model.Attendance),
		employees: employees,
	}
	employees.attendance = attendance

	services := &service.Services{
		Employee:   service.NewEmployeeService(employees),
		Attendance: service.NewAttendanceService(attendance, employees),
		Stats:      service.NewStatsService(&fakeStatsStore{employees: employees, attendance: attendance}),
	}

	handlers := handler.NewHandlers(srv, services)
	middlewares := middleware.NewMiddlewares(srv)
	return router.New(middlewares, handlers)
}

// doJSON performs a request with an optional JSON body against the test
// router and returns the recorded response.
func doJSON(t *testing.T, e *echo.Echo, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// doRaw performs a request with a raw (possibly malformed) body.
func doRaw(t *testing.T, e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v))
	return v
}

func createEmployeePayload(id, email string) map[string]string {
	return map[string]string{
		"employee_id": id,
		"full_name":   "Jordan Blake",
		"email":       email,
		"department":  "Engineering",
	}
}
