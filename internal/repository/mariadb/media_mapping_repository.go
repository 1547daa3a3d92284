package mariadb

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
)

type MediaMappingRepository struct {
	db *sql.DB
}

// compile-time check: *MediaMappingRepository must satisfy port.MediaMappingRepository
var _ port.MediaMappingRepository = (*MediaMappingRepository)(nil)

func NewMediaMappingRepository(db *sql.DB) *MediaMappingRepository {
	return &MediaMappingRepository{db: db}
}

func (r *MediaMappingRepository) Get(ctx context.Context, department, slot string) (*model.MediaMapping, error) {
	log.Printf("fetching media mapping for %q/%q from the database...", department, slot)

	const query = `
      SELECT id, department, slot, object_key, url, created_at, updated_at
      FROM media_mappings
      WHERE department = ? AND slot = ?
    `
	row := r.db.QueryRowContext(ctx, query, department, slot)
	var m model.MediaMapping
	if err := row.Scan(
		&m.ID, &m.Department, &m.Slot,
		&m.ObjectKey, &m.URL,
		&m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, err
	}

	return &m, nil
}

func (r *MediaMappingRepository) Upsert(ctx context.Context, m *model.MediaMapping) error {
	log.Printf("upserting media mapping for %q/%q...", m.Department, m.Slot)

	const query = `
      INSERT INTO media_mappings (id, department, slot, object_key, url)
      VALUES (?, ?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE
        object_key = VALUES(object_key),
        url        = VALUES(url)
    `
	_, err := r.db.ExecContext(ctx, query,
		m.ID, m.Department, m.Slot, m.ObjectKey, m.URL,
	)
	if err != nil {
		return err
	}

	return nil
}

func (r *MediaMappingRepository) List(ctx context.Context) ([]model.MediaMapping, error) {
	log.Println("listing all media mappings...")

	const query = `
      SELECT id, department, slot, object_key, url, created_at, updated_at
      FROM media_mappings
      ORDER BY department, slot
    `
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var mappings []model.MediaMapping
	for rows.Next() {
		var m model.MediaMapping
		if err := rows.Scan(
			&m.ID, &m.Department, &m.Slot,
			&m.ObjectKey, &m.URL,
			&m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mappings, nil
}
