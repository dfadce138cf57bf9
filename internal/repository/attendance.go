package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/etharaai/workforce-api/internal/model"
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AttendanceRepository persists attendance rows.
//
// The UNIQUE(employee_id, attendance_date) constraint plus ON CONFLICT
// makes Upsert a single atomic conditional write: concurrent marks for the
// same key converge to exactly one row, with no check-then-act window.
type AttendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository constructs an AttendanceRepository on the shared pool.
func NewAttendanceRepository(s *server.Server) *AttendanceRepository {
	return &AttendanceRepository{pool: s.DB.Pool}
}

// Upsert inserts the attendance row for (employeeID, date), or updates its
// status when the row already exists. An unknown employee surfaces as a
// pgconn.PgError with SQLSTATE 23503 (foreign key violation).
func (r *AttendanceRepository) Upsert(ctx context.Context, employeeID string, date time.Time, status string) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO attendance (employee_id, attendance_date, status)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (employee_id, attendance_date)
		 DO UPDATE SET status = EXCLUDED.status`,
		employeeID, date, status,
	)
	if err != nil {
		return fmt.Errorf("upserting attendance: %w", err)
	}
	return nil
}

// ListForEmployee returns the attendance rows for one employee ordered by
// date descending. When date is non-nil only rows for that exact date are
// returned (at most one, given the uniqueness constraint).
func (r *AttendanceRepository) ListForEmployee(ctx context.Context, employeeID string, date *time.Time) ([]model.Attendance, error) {
	var rows pgx.Rows
	var err error

	if date != nil {
		rows, err = r.pool.Query(ctx,
			`SELECT id, employee_id, attendance_date, status
			 FROM attendance
			 WHERE employee_id = $1 AND attendance_date = $2
			 ORDER BY attendance_date DESC`,
			employeeID, *date,
		)
	} else {
		rows, err = r.pool.Query(ctx,
			`SELECT id, employee_id, attendance_date, status
			 FROM attendance
			 WHERE employee_id = $1
			 ORDER BY attendance_date DESC`,
			employeeID,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("listing attendance: %w", err)
	}
	defer rows.Close()

	records := make([]model.Attendance, 0)
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attendance rows: %w", err)
	}

	return records, nil
}

// ListAll returns every attendance row joined with the owning employee's
// name and department, ordered by date descending with a name tie-break so
// same-day rows come back in a stable order.
func (r *AttendanceRepository) ListAll(ctx context.Context) ([]model.AttendanceRecord, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT a.id, a.employee_id, a.attendance_date, a.status, e.full_name, e.department
		 FROM attendance a
		 JOIN employees e ON a.employee_id = e.employee_id
		 ORDER BY a.attendance_date DESC, e.full_name ASC`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing all attendance: %w", err)
	}
	defer rows.Close()

	records := make([]model.AttendanceRecord, 0)
	for rows.Next() {
		var rec model.AttendanceRecord
		var attendanceDate time.Time
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &attendanceDate, &rec.Status, &rec.FullName, &rec.Department); err != nil {
			return nil, fmt.Errorf("scanning attendance record: %w", err)
		}
		rec.AttendanceDate = attendanceDate.Format(model.DateFormat)
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attendance records: %w", err)
	}

	return records, nil
}

// scanAttendance scans one attendance row, formatting the date column into
// the wire format.
func scanAttendance(rows pgx.Rows) (model.Attendance, error) {
	var a model.Attendance
	var attendanceDate time.Time
	if err := rows.Scan(&a.ID, &a.EmployeeID, &attendanceDate, &a.Status); err != nil {
		return model.Attendance{}, fmt.Errorf("scanning attendance row: %w", err)
	}
	a.AttendanceDate = attendanceDate.Format(model.DateFormat)
	return a, nil
}
