package ports

import (
	"context"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// AttendanceRepository persists per-day presence records.
type AttendanceRepository interface {
	// Upsert inserts or replaces the record keyed by (employeeID, date).
	Upsert(ctx context.Context, employeeID int64, date time.Time, present bool) error
	// History returns all records for one employee, newest date first.
	History(ctx context.Context, employeeID int64) ([]domain.Attendance, error)
}

// SalaryRepository persists per-month payment status records.
type SalaryRepository interface {
	// Upsert inserts or replaces the record keyed by (employeeID, month).
	Upsert(ctx context.Context, employeeID int64, month string, paid bool) error
	// History returns all records for one employee, newest month first.
	History(ctx context.Context, employeeID int64) ([]domain.Salary, error)
	// Status returns the record for one employee and month. A missing row
	// is reported as Paid=false, not as an error.
	Status(ctx context.Context, employeeID int64, month string) (*domain.Salary, error)
}
