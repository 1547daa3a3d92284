package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

type FeeScheduleRepository struct {
	db *sql.DB
}

// compile-time check: *FeeScheduleRepository must satisfy port.FeeScheduleRepository
var _ port.FeeScheduleRepository = (*FeeScheduleRepository)(nil)

func NewFeeScheduleRepository(db *sql.DB) *FeeScheduleRepository {
	return &FeeScheduleRepository{db: db}
}

func (r *FeeScheduleRepository) GetByDepartment(ctx context.Context, department string) (*model.FeeSchedule, error) {
	log.Printf("fetching fee schedule for %q from the database...", department)

	const query = `
      SELECT id, department, fees, updated_by, created_at, updated_at
      FROM fee_schedules
      WHERE department = ?
    `
	row := r.db.QueryRowContext(ctx, query, department)
	var f model.FeeSchedule
	if err := row.Scan(
		&f.ID, &f.Department, &f.Fees,
		&f.UpdatedBy, &f.CreatedAt, &f.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}

	return &f, nil
}

func (r *FeeScheduleRepository) Upsert(ctx context.Context, f *model.FeeSchedule) error {
	log.Printf("upserting fee schedule for %q...", f.Department)

	const query = `
      INSERT INTO fee_schedules (id, department, fees, updated_by)
      VALUES (?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE
        fees       = VALUES(fees),
        updated_by = VALUES(updated_by)
    `
	_, err := r.db.ExecContext(ctx, query,
		f.ID, f.Department, f.Fees, f.UpdatedBy,
	)
	if err != nil {
		return err
	}

	return nil
}
