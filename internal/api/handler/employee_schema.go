package handler

import (
	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// employeeResponse is the full projection used by create, update, profile and
// the /api/employees/full listing.
type employeeResponse struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	DateOfBirth   string  `json:"date_of_birth"`
	AadharPhoto   string  `json:"aadhar_photo"`
	PanPhoto      string  `json:"pan_photo,omitempty"`
	Salary        *int64  `json:"salary,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
}

// employeeSummary is the short projection used by /api/employees.
type employeeSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// employeeDirectoryEntry is the demographic projection used by
// /api/employeesdata: everything except photos and credentials.
type employeeDirectoryEntry struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Phone         string  `json:"phone"`
	Address       string  `json:"address"`
	City          string  `json:"city"`
	State         string  `json:"state"`
	Country       string  `json:"country"`
	Salary        *int64  `json:"salary,omitempty"`
	DateOfJoining *string `json:"date_of_joining,omitempty"`
}

func newEmployeeResponse(e *domain.Employee) employeeResponse {
	resp := employeeResponse{
		ID:          e.ID,
		Name:        e.Name,
		Email:       e.Email,
		Phone:       e.Phone,
		Address:     e.Address,
		City:        e.City,
		State:       e.State,
		Country:     e.Country,
		DateOfBirth: e.DateOfBirth.Format(domain.DateLayout),
		AadharPhoto: e.AadharPhoto,
		PanPhoto:    e.PanPhoto,
		Salary:      e.Salary,
	}
	if e.DateOfJoining != nil {
		joined := e.DateOfJoining.Format(domain.DateLayout)
		resp.DateOfJoining = &joined
	}
	return resp
}

func newEmployeeSummary(e *domain.Employee) employeeSummary {
	return employeeSummary{ID: e.ID, Name: e.Name, Email: e.Email, Phone: e.Phone}
}

func newEmployeeDirectoryEntry(e *domain.Employee) employeeDirectoryEntry {
	entry := employeeDirectoryEntry{
		ID:      e.ID,
		Name:    e.Name,
		Email:   e.Email,
		Phone:   e.Phone,
		Address: e.Address,
		City:    e.City,
		State:   e.State,
		Country: e.Country,
		Salary:  e.Salary,
	}
	if e.DateOfJoining != nil {
		joined := e.DateOfJoining.Format(domain.DateLayout)
		entry.DateOfJoining = &joined
	}
	return entry
}
