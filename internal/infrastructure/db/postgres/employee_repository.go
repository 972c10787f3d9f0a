package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

type EmployeeRepository struct {
	pool *pgxpool.Pool
}

func NewEmployeeRepository(pool *pgxpool.Pool) *EmployeeRepository {
	return &EmployeeRepository{pool: pool}
}

const employeeColumns = `id, name, email, phone, address, city, state, country,
	date_of_birth, password_hash, aadhar_photo, pan_photo, salary,
	date_of_joining, created_at, updated_at`

// Create inserts a new employee. Email uniqueness is enforced by a unique
// index; a violation is reported as domain.ErrEmailExists without a prior
// existence check, so concurrent registrations cannot race.
func (r *EmployeeRepository) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO employees
			(name, email, phone, address, city, state, country, date_of_birth,
			 password_hash, aadhar_photo, pan_photo, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, now(), now())
		RETURNING `+employeeColumns,
		e.Name, e.Email, e.Phone, e.Address, e.City, e.State, e.Country,
		e.DateOfBirth, e.PasswordHash, e.AadharPhoto, e.PanPhoto,
	)

	created, err := scanEmployee(row)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrEmailExists
		}
		return nil, mapError("insert employee", err)
	}
	return created, nil
}

func (r *EmployeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE id = $1`, id)

	e, err := scanEmployee(row)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, mapError("find employee", err)
	}
	return e, nil
}

func (r *EmployeeRepository) FindByEmail(ctx context.Context, email string) (*domain.Employee, error) {
	row := r.pool.QueryRow(ctx,
		`SELECT `+employeeColumns+` FROM employees WHERE email = $1`, email)

	e, err := scanEmployee(row)
	if err != nil {
		if noRows(err) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, mapError("find employee by email", err)
	}
	return e, nil
}

func (r *EmployeeRepository) List(ctx context.Context) ([]domain.Employee, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+employeeColumns+` FROM employees`)
	if err != nil {
		return nil, mapError("list employees", err)
	}
	defer rows.Close()

	var employees []domain.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, mapError("scan employee", err)
		}
		employees = append(employees, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("list employees", err)
	}
	return employees, nil
}

func (r *EmployeeRepository) Update(ctx context.Context, e *domain.Employee) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET name = $2, email = $3, phone = $4, address = $5, city = $6,
		    state = $7, country = $8, date_of_birth = $9, aadhar_photo = $10,
		    pan_photo = $11, updated_at = now()
		WHERE id = $1`,
		e.ID, e.Name, e.Email, e.Phone, e.Address, e.City, e.State, e.Country,
		e.DateOfBirth, e.AadharPhoto, e.PanPhoto,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrEmailExists
		}
		return mapError("update employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

func (r *EmployeeRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM employees WHERE id = $1`, id)
	if err != nil {
		return mapError("delete employee", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// SetJoiningDetails writes joining date and salary in one statement. The
// values are stored verbatim; the service layer computes salary fallbacks and
// uses the same call to roll back after a failed dispatch.
func (r *EmployeeRepository) SetJoiningDetails(ctx context.Context, id int64, joining *time.Time, salary *int64) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE employees
		SET date_of_joining = $2, salary = $3, updated_at = now()
		WHERE id = $1`,
		id, joining, salary,
	)
	if err != nil {
		return mapError("set joining details", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrEmployeeNotFound
	}
	return nil
}

// rowScanner covers both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEmployee(row rowScanner) (*domain.Employee, error) {
	var e domain.Employee
	err := row.Scan(
		&e.ID, &e.Name, &e.Email, &e.Phone, &e.Address, &e.City, &e.State,
		&e.Country, &e.DateOfBirth, &e.PasswordHash, &e.AadharPhoto,
		&e.PanPhoto, &e.Salary, &e.DateOfJoining, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &e, nil
}
