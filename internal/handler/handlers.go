package handler

import (
	"github.com/etharaai/workforce-api/internal/server"
	"github.com/etharaai/workforce-api/internal/service"
)

// Handlers is a container that groups all HTTP handlers, so router setup
// receives one object instead of individual handlers.
type Handlers struct {
	Root       *RootHandler
	Health     *HealthHandler
	Employee   *EmployeeHandler
	Attendance *AttendanceHandler
	Stats      *StatsHandler
}

// NewHandlers constructs the handler container.
func NewHandlers(s *server.Server, services *service.Services) *Handlers {
	return &Handlers{
		Root:       NewRootHandler(s),
		Health:     NewHealthHandler(s, s.DB),
		Employee:   NewEmployeeHandler(s, services.Employee),
		Attendance: NewAttendanceHandler(s, services.Attendance),
		Stats:      NewStatsHandler(s, services.Stats),
	}
}
