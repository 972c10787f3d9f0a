package ports

import (
	"context"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// EmployeeRepository defines persistence for employee records.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *domain.Employee) (*domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	FindByEmail(ctx context.Context, email string) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, employee *domain.Employee) error
	Delete(ctx context.Context, id int64) error
	// SetJoiningDetails persists the date of joining and salary in a single
	// statement, writing exactly the given values (nil clears a column). The
	// caller computes any fallback; the compensating step of the offer
	// letter pipeline uses the same call to restore prior values.
	SetJoiningDetails(ctx context.Context, id int64, joining *time.Time, salary *int64) error
}

// AdminRepository defines read access to admin accounts.
type AdminRepository interface {
	FindByUsername(ctx context.Context, username string) (*domain.Admin, error)
}
