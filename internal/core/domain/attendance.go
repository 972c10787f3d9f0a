package domain

import "time"

// Attendance records presence for one employee on one calendar day.
// The (EmployeeID, Date) pair is the natural key; marking the same day twice
// overwrites the previous value.
type Attendance struct {
	EmployeeID int64     `json:"employee_id"`
	Date       time.Time `json:"date"`
	Present    bool      `json:"present"`
}

// Salary records the paid/unpaid status for one employee for one month.
// Month uses the "2006-01" layout. The (EmployeeID, Month) pair is the
// natural key.
type Salary struct {
	EmployeeID int64  `json:"employee_id"`
	Month      string `json:"month"`
	Paid       bool   `json:"paid"`
}

// MonthLayout is the canonical format for salary month keys.
const MonthLayout = "2006-01"

// DateLayout is the canonical format for attendance dates and other
// date-only fields exchanged over the API.
const DateLayout = "2006-01-02"
