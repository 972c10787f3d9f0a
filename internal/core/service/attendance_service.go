package service

import (
	"context"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// AttendanceService records and reads per-day presence.
type AttendanceService struct {
	repo ports.AttendanceRepository
}

func NewAttendanceService(repo ports.AttendanceRepository) *AttendanceService {
	return &AttendanceService{repo: repo}
}

// Mark upserts presence for one day. Repeating the same (employee, date,
// value) is a no-op in effect.
func (s *AttendanceService) Mark(ctx context.Context, employeeID int64, date time.Time, present bool) error {
	return s.repo.Upsert(ctx, employeeID, date, present)
}

// History returns records newest-first. Non-admin callers may only read
// their own history.
func (s *AttendanceService) History(ctx context.Context, caller ports.Caller, employeeID int64) ([]domain.Attendance, error) {
	if !caller.IsAdmin() && caller.ID != employeeID {
		return nil, domain.ErrForbidden
	}
	return s.repo.History(ctx, employeeID)
}
