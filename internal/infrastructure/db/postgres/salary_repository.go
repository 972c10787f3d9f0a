package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

type SalaryRepository struct {
	pool *pgxpool.Pool
}

func NewSalaryRepository(pool *pgxpool.Pool) *SalaryRepository {
	return &SalaryRepository{pool: pool}
}

// Upsert is a single-statement insert-or-update on (employee_id, month).
func (r *SalaryRepository) Upsert(ctx context.Context, employeeID int64, month string, paid bool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO salary_payments (employee_id, month, paid)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, month) DO UPDATE SET paid = EXCLUDED.paid`,
		employeeID, month, paid,
	)
	if err != nil {
		return mapError("upsert salary", err)
	}
	return nil
}

func (r *SalaryRepository) History(ctx context.Context, employeeID int64) ([]domain.Salary, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT employee_id, month, paid
		FROM salary_payments
		WHERE employee_id = $1
		ORDER BY month DESC`,
		employeeID,
	)
	if err != nil {
		return nil, mapError("salary history", err)
	}
	defer rows.Close()

	var records []domain.Salary
	for rows.Next() {
		var s domain.Salary
		if err := rows.Scan(&s.EmployeeID, &s.Month, &s.Paid); err != nil {
			return nil, mapError("scan salary", err)
		}
		records = append(records, s)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("salary history", err)
	}
	return records, nil
}

// Status reports the paid flag for one month. A month that was never marked
// is unpaid, not an error.
func (r *SalaryRepository) Status(ctx context.Context, employeeID int64, month string) (*domain.Salary, error) {
	s := domain.Salary{EmployeeID: employeeID, Month: month}
	err := r.pool.QueryRow(ctx, `
		SELECT paid FROM salary_payments WHERE employee_id = $1 AND month = $2`,
		employeeID, month,
	).Scan(&s.Paid)
	if err != nil && !noRows(err) {
		return nil, mapError("salary status", err)
	}
	return &s, nil
}
