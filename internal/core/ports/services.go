package ports

import (
	"context"
	"io"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// Caller identifies the authenticated principal making a request, as derived
// from the bearer token by the auth middleware.
type Caller struct {
	ID   int64
	Role string
}

// IsAdmin reports whether the caller may act on records it does not own.
func (c Caller) IsAdmin() bool { return c.Role == domain.RoleAdmin }

type AuthService interface {
	LoginEmployee(ctx context.Context, email, password string) (string, *domain.Employee, error)
	LoginAdmin(ctx context.Context, username, password string) (string, *domain.Admin, error)
}

// FileUpload carries one multipart file from the handler to the service.
type FileUpload struct {
	Name    string
	Content io.Reader
}

// CreateEmployeeInput holds the validated fields for employee registration.
// AadharPhoto is mandatory, PanPhoto optional.
type CreateEmployeeInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	Country     string
	DateOfBirth time.Time
	Password    string
	AadharPhoto *FileUpload
	PanPhoto    *FileUpload
}

// UpdateEmployeeInput holds the fields for a full demographic update. Photo
// uploads are optional; when present the replaced file is removed from disk
// after the row update succeeds.
type UpdateEmployeeInput struct {
	Name        string
	Email       string
	Phone       string
	Address     string
	City        string
	State       string
	Country     string
	DateOfBirth time.Time
	AadharPhoto *FileUpload
	PanPhoto    *FileUpload
}

type EmployeeService interface {
	Create(ctx context.Context, input CreateEmployeeInput) (*domain.Employee, error)
	Get(ctx context.Context, id int64) (*domain.Employee, error)
	List(ctx context.Context) ([]domain.Employee, error)
	Update(ctx context.Context, id int64, input UpdateEmployeeInput) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) error
}

type AttendanceService interface {
	Mark(ctx context.Context, employeeID int64, date time.Time, present bool) error
	// History enforces self-or-admin scoping: non-admin callers may only read
	// their own records.
	History(ctx context.Context, caller Caller, employeeID int64) ([]domain.Attendance, error)
}

type SalaryService interface {
	Mark(ctx context.Context, employeeID int64, month string, paid bool) error
	History(ctx context.Context, caller Caller, employeeID int64) ([]domain.Salary, error)
	Status(ctx context.Context, employeeID int64, month string) (*domain.Salary, error)
}

// SendOfferLetterInput parameterises one run of the offer letter pipeline.
// Salary, when nil, falls back to the employee's stored salary.
type SendOfferLetterInput struct {
	EmployeeID  int64
	JoiningDate time.Time
	Salary      *int64
}

// OfferLetterResult reports where the letter went after a successful run.
type OfferLetterResult struct {
	EmployeeID int64     `json:"employee_id"`
	Email      string    `json:"email"`
	SentAt     time.Time `json:"sent_at"`
}

type OfferLetterService interface {
	Send(ctx context.Context, input SendOfferLetterInput) (*OfferLetterResult, error)
}
