package domain

import "time"

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// Employee is the core personnel record. Salary and DateOfJoining are nil
// until an offer letter has been issued (or the fields are set explicitly).
type Employee struct {
	ID            int64      `json:"id"`
	Name          string     `json:"name"`
	Email         string     `json:"email"`
	Phone         string     `json:"phone"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Country       string     `json:"country"`
	DateOfBirth   time.Time  `json:"date_of_birth"`
	PasswordHash  string     `json:"-"`
	AadharPhoto   string     `json:"aadhar_photo"`
	PanPhoto      string     `json:"pan_photo,omitempty"`
	Salary        *int64     `json:"salary,omitempty"`
	DateOfJoining *time.Time `json:"date_of_joining,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
