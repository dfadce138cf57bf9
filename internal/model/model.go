// Package model defines the domain types shared by the repository,
// service, and handler layers.
//
// These are plain structs with JSON tags matching the wire format;
// they carry no behavior beyond formatting helpers.
package model

import "time"

// Attendance statuses. The attendance table enforces the same set with a
// CHECK constraint, so these constants and the schema must stay in sync.
const (
	StatusPresent = "Present"
	StatusAbsent  = "Absent"
)

// DateFormat is the wire format for attendance dates (ISO 8601 calendar date).
const DateFormat = "2006-01-02"

// Employee is a single employee record.
//
// EmployeeID is the business key; CreatedAt is server-assigned and used
// only for default list ordering.
type Employee struct {
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
	CreatedAt  time.Time `json:"created_at"`
}

// Attendance is one attendance row. At most one row exists per
// (EmployeeID, AttendanceDate) pair.
type Attendance struct {
	ID             int64  `json:"id"`
	EmployeeID     string `json:"employee_id"`
	AttendanceDate string `json:"attendance_date"`
	Status         string `json:"status"`
}

// AttendanceRecord is an attendance row joined with the owning employee's
// name and department, as returned by the list-all-attendance endpoint.
type AttendanceRecord struct {
	Attendance
	FullName   string `json:"full_name"`
	Department string `json:"department"`
}

// Stats holds the dashboard counters. The three counts come from
// independent reads and are not transactionally consistent with each other.
type Stats struct {
	TotalEmployees int64 `json:"total_employees"`
	PresentToday   int64 `json:"present_today"`
	TotalRecords   int64 `json:"total_records"`
}
