// Package repository handles all interactions with the database.
//
// It contains the raw SQL and the methods to fetch, persist, or update
// rows, abstracting SQL away from the service layer. Repositories return
// driver errors unwrapped (wrapped only with context via %w) so the service
// layer and the sqlerr package can classify them.
package repository

import (
	"github.com/etharaai/workforce-api/internal/server"
)

// Repositories is a container for all repository instances, so the service
// layer receives one object instead of individual repositories.
type Repositories struct {
	Employee   *EmployeeRepository
	Attendance *AttendanceRepository
	Stats      *StatsRepository
}

// NewRepositories constructs the repository container from the application
// container (the shared pool lives on s.DB).
func NewRepositories(s *server.Server) *Repositories {
	return &Repositories{
		Employee:   NewEmployeeRepository(s),
		Attendance: NewAttendanceRepository(s),
		Stats:      NewStatsRepository(s),
	}
}
