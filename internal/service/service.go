// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives validated
// input from handlers, applies the business rules (existence checks,
// conflict classification), and calls repository methods to interact with
// the store. Services depend on small store interfaces rather than the
// concrete repositories so they can be exercised against fakes in tests.
package service

import (
	"github.com/etharaai/workforce-api/internal/repository"
)

// Services is a container that groups all business services.
type Services struct {
	Employee   *EmployeeService
	Attendance *AttendanceService
	Stats      *StatsService
}

// NewServices constructs the service container over the repositories.
func NewServices(repos *repository.Repositories) *Services {
	return &Services{
		Employee:   NewEmployeeService(repos.Employee),
		Attendance: NewAttendanceService(repos.Attendance, repos.Employee),
		Stats:      NewStatsService(repos.Stats),
	}
}
