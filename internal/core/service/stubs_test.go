package service

import (
	"context"
	"fmt"
	"time"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

// stubEmployeeRepo is an in-memory EmployeeRepository for service tests.
type stubEmployeeRepo struct {
	employees map[int64]*domain.Employee
	nextID    int64

	joinCalls   []joinCall
	failSetJoin bool
}

type joinCall struct {
	id      int64
	joining *time.Time
	salary  *int64
}

func newStubEmployeeRepo() *stubEmployeeRepo {
	return &stubEmployeeRepo{employees: make(map[int64]*domain.Employee)}
}

func cloneEmployee(e *domain.Employee) *domain.Employee {
	if e == nil {
		return nil
	}
	clone := *e
	return &clone
}

func (r *stubEmployeeRepo) Create(_ context.Context, e *domain.Employee) (*domain.Employee, error) {
	for _, existing := range r.employees {
		if existing.Email == e.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.nextID++
	copy := cloneEmployee(e)
	copy.ID = r.nextID
	r.employees[copy.ID] = cloneEmployee(copy)
	return cloneEmployee(copy), nil
}

func (r *stubEmployeeRepo) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	e, ok := r.employees[id]
	if !ok {
		return nil, domain.ErrEmployeeNotFound
	}
	return cloneEmployee(e), nil
}

func (r *stubEmployeeRepo) FindByEmail(_ context.Context, email string) (*domain.Employee, error) {
	for _, e := range r.employees {
		if e.Email == email {
			return cloneEmployee(e), nil
		}
	}
	return nil, domain.ErrEmployeeNotFound
}

func (r *stubEmployeeRepo) List(_ context.Context) ([]domain.Employee, error) {
	var out []domain.Employee
	for _, e := range r.employees {
		out = append(out, *cloneEmployee(e))
	}
	return out, nil
}

func (r *stubEmployeeRepo) Update(_ context.Context, e *domain.Employee) error {
	if _, ok := r.employees[e.ID]; !ok {
		return domain.ErrEmployeeNotFound
	}
	r.employees[e.ID] = cloneEmployee(e)
	return nil
}

func (r *stubEmployeeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.employees[id]; !ok {
		return domain.ErrEmployeeNotFound
	}
	delete(r.employees, id)
	return nil
}

func (r *stubEmployeeRepo) SetJoiningDetails(_ context.Context, id int64, joining *time.Time, salary *int64) error {
	if r.failSetJoin {
		return fmt.Errorf("stub: set joining failed")
	}
	e, ok := r.employees[id]
	if !ok {
		return domain.ErrEmployeeNotFound
	}
	r.joinCalls = append(r.joinCalls, joinCall{id: id, joining: joining, salary: salary})
	e.DateOfJoining = joining
	e.Salary = salary
	return nil
}

// stubAdminRepo holds a fixed set of admin accounts.
type stubAdminRepo struct {
	admins map[string]*domain.Admin
}

func (r *stubAdminRepo) FindByUsername(_ context.Context, username string) (*domain.Admin, error) {
	a, ok := r.admins[username]
	if !ok {
		return nil, domain.ErrAdminNotFound
	}
	clone := *a
	return &clone, nil
}

// stubAttendanceRepo keys records the same way the real table does.
type stubAttendanceRepo struct {
	records map[string]domain.Attendance
}

func newStubAttendanceRepo() *stubAttendanceRepo {
	return &stubAttendanceRepo{records: make(map[string]domain.Attendance)}
}

func (r *stubAttendanceRepo) Upsert(_ context.Context, employeeID int64, date time.Time, present bool) error {
	key := fmt.Sprintf("%d:%s", employeeID, date.Format(domain.DateLayout))
	r.records[key] = domain.Attendance{EmployeeID: employeeID, Date: date, Present: present}
	return nil
}

func (r *stubAttendanceRepo) History(_ context.Context, employeeID int64) ([]domain.Attendance, error) {
	var out []domain.Attendance
	for _, a := range r.records {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}

// stubSalaryRepo keys records by (employee, month).
type stubSalaryRepo struct {
	records map[string]domain.Salary
}

func newStubSalaryRepo() *stubSalaryRepo {
	return &stubSalaryRepo{records: make(map[string]domain.Salary)}
}

func (r *stubSalaryRepo) Upsert(_ context.Context, employeeID int64, month string, paid bool) error {
	key := fmt.Sprintf("%d:%s", employeeID, month)
	r.records[key] = domain.Salary{EmployeeID: employeeID, Month: month, Paid: paid}
	return nil
}

func (r *stubSalaryRepo) History(_ context.Context, employeeID int64) ([]domain.Salary, error) {
	var out []domain.Salary
	for _, s := range r.records {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (r *stubSalaryRepo) Status(_ context.Context, employeeID int64, month string) (*domain.Salary, error) {
	key := fmt.Sprintf("%d:%s", employeeID, month)
	if s, ok := r.records[key]; ok {
		return &s, nil
	}
	return &domain.Salary{EmployeeID: employeeID, Month: month, Paid: false}, nil
}
