package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/db"
)

// FeeRecord is the opaque fee document for one department (tuition, lab fee,
// misc fee, discount, down-payment, semester labels...). The schema is
// caller-defined; the resolution layer stores and returns it wholesale.
type FeeRecord map[string]any

func (r FeeRecord) Value() (driver.Value, error) {
	b, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal FeeRecord: %w", err)
	}
	return b, nil
}

func (r *FeeRecord) Scan(src interface{}) error {
	if src == nil {
		*r = nil
		return nil
	}
	data, ok := src.([]byte)
	if !ok {
		return fmt.Errorf("FeeRecord.Scan: expected []byte, got %T", src)
	}
	if err := json.Unmarshal(data, r); err != nil {
		return fmt.Errorf("unmarshal FeeRecord: %w", err)
	}
	return nil
}

// FeeSchedule is one row of the fees table. At most one row per department.
type FeeSchedule struct {
	ID         db.UUID   `json:"id"`
	Department string    `json:"department"`
	Fees       FeeRecord `json:"fees"`
	UpdatedBy  *string   `json:"updated_by,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
