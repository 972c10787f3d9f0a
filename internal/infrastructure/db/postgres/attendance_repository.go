package postgres

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/staffdeck/hr-admin-api/internal/core/domain"
)

type AttendanceRepository struct {
	pool *pgxpool.Pool
}

func NewAttendanceRepository(pool *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{pool: pool}
}

// Upsert is a single-statement insert-or-update on (employee_id, date), so
// re-marking the same day is atomic and idempotent.
func (r *AttendanceRepository) Upsert(ctx context.Context, employeeID int64, date time.Time, present bool) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO attendance (employee_id, date, present)
		VALUES ($1, $2, $3)
		ON CONFLICT (employee_id, date) DO UPDATE SET present = EXCLUDED.present`,
		employeeID, date, present,
	)
	if err != nil {
		return mapError("upsert attendance", err)
	}
	return nil
}

func (r *AttendanceRepository) History(ctx context.Context, employeeID int64) ([]domain.Attendance, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT employee_id, date, present
		FROM attendance
		WHERE employee_id = $1
		ORDER BY date DESC`,
		employeeID,
	)
	if err != nil {
		return nil, mapError("attendance history", err)
	}
	defer rows.Close()

	var records []domain.Attendance
	for rows.Next() {
		var a domain.Attendance
		if err := rows.Scan(&a.EmployeeID, &a.Date, &a.Present); err != nil {
			return nil, mapError("scan attendance", err)
		}
		records = append(records, a)
	}
	if err := rows.Err(); err != nil {
		return nil, mapError("attendance history", err)
	}
	return records, nil
}
