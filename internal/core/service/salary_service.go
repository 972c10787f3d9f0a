package service

import (
	"context"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
	"github.com/staffdeck/hr-admin-api/internal/core/ports"
)

// SalaryService records and reads per-month payment status.
type SalaryService struct {
	repo ports.SalaryRepository
}

func NewSalaryService(repo ports.SalaryRepository) *SalaryService {
	return &SalaryService{repo: repo}
}

// Mark upserts the paid flag for one month. Repeating the same (employee,
// month, value) is a no-op in effect.
func (s *SalaryService) Mark(ctx context.Context, employeeID int64, month string, paid bool) error {
	return s.repo.Upsert(ctx, employeeID, month, paid)
}

// History returns records newest-first. Non-admin callers may only read
// their own history.
func (s *SalaryService) History(ctx context.Context, caller ports.Caller, employeeID int64) ([]domain.Salary, error) {
	if !caller.IsAdmin() && caller.ID != employeeID {
		return nil, domain.ErrForbidden
	}
	return s.repo.History(ctx, employeeID)
}

// Status reports the paid flag for one month; a never-marked month reads as
// unpaid.
func (s *SalaryService) Status(ctx context.Context, employeeID int64, month string) (*domain.Salary, error) {
	return s.repo.Status(ctx, employeeID, month)
}
