package service_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// In-memory store fakes. They reproduce the error surface of the real
// repositories: constraint violations come back as *pgconn.PgError with the
// matching SQLSTATE, and missing rows as pgx.ErrNoRows.

type fakeEmployeeStore struct {
	employees map[string]model.Employee
	createdAt map[string]time.Time
	clock     time.Time

	// attendance, when set, lets Delete cascade the way the real
	// transaction does.
	attendance *fakeAttendanceStore

	failWith error
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{
		employees: make(map[string]model.Employee),
		createdAt: make(map[string]time.Time),
		clock:     time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (f *fakeEmployeeStore) Create(_ context.Context, employee model.Employee) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[employee.EmployeeID]; ok {
		return &pgconn.PgError{
			Code:           "23505",
			TableName:      "employees",
			ConstraintName: "employees_pkey",
		}
	}
	for _, existing := range f.employees {
		if existing.Email == employee.Email {
			return &pgconn.PgError{
				Code:           "23505",
				TableName:      "employees",
				ConstraintName: "employees_email_key",
			}
		}
	}

	f.clock = f.clock.Add(time.Minute)
	employee.CreatedAt = f.clock
	f.employees[employee.EmployeeID] = employee
	f.createdAt[employee.EmployeeID] = f.clock
	return nil
}

func (f *fakeEmployeeStore) List(_ context.Context) ([]model.Employee, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
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
	if f.failWith != nil {
		return model.Employee{}, f.failWith
	}
	employee, ok := f.employees[employeeID]
	if !ok {
		return model.Employee{}, pgx.ErrNoRows
	}
	return employee, nil
}

func (f *fakeEmployeeStore) Exists(_ context.Context, employeeID string) (bool, error) {
	if f.failWith != nil {
		return false, f.failWith
	}
	_, ok := f.employees[employeeID]
	return ok, nil
}

func (f *fakeEmployeeStore) Delete(_ context.Context, employeeID string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees[employeeID]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.employees, employeeID)
	if f.attendance != nil {
		f.attendance.deleteForEmployee(employeeID)
	}
	return nil
}

type attendanceKey struct {
	employeeID string
	date       string
}

// fakeAttendanceStore guards its rows with a mutex, the way the real store
// is serialized by the database, so services can be exercised concurrently.
type fakeAttendanceStore struct {
	mu        sync.Mutex
	rows      map[attendanceKey]model.Attendance
	nextID    int64
	employees *fakeEmployeeStore

	failWith error
}

func newFakeAttendanceStore(employees *fakeEmployeeStore) *fakeAttendanceStore {
	f := &fakeAttendanceStore{
		rows:      make(map[attendanceKey]model.Attendance),
		employees: employees,
	}
	employees.attendance = f
	return f
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, employeeID string, date time.Time, status string) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.employees.employees[employeeID]; !ok {
		return &pgconn.PgError{
			Code:           "23503",
			TableName:      "attendance",
			ColumnName:     "employee_id",
			ConstraintName: "attendance_employee_id_fkey",
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()

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
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

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
	if f.failWith != nil {
		return nil, f.failWith
	}
	f.mu.Lock()
	defer f.mu.Unlock()

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

func (f *fakeAttendanceStore) deleteForEmployee(employeeID string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for key := range f.rows {
		if key.employeeID == employeeID {
			delete(f.rows, key)
		}
	}
}

type fakeStatsStore struct {
	stats    model.Stats
	failWith error
}

func (f *fakeStatsStore) Counts(_ context.Context) (model.Stats, error) {
	if f.failWith != nil {
		return model.Stats{}, f.failWith
	}
	return f.stats, nil
}
