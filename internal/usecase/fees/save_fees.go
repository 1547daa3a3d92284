package fees

import (
	"context"
	"fmt"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/apictx"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	mediaSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/validation"
)

type saveFeesInput struct {
	Department string          `json:"department" validate:"required,max=20"`
	Fees       model.FeeRecord `json:"fees" validate:"required,min=1"`
}

type feeSaverSrv struct {
	repo     port.FeeScheduleRepository
	resolver port.FeeResolver
	genUUID  port.UUIDGen
}

// NewFeeSaver wires the fee write path. After a successful upsert the
// department is re-resolved so the local snapshot holds the authoritative
// stored shape, not the raw input.
func NewFeeSaver(repo port.FeeScheduleRepository, resolver port.FeeResolver, genUUID port.UUIDGen) port.FeeSaver {
	return &feeSaverSrv{repo: repo, resolver: resolver, genUUID: genUUID}
}

func (s *feeSaverSrv) SaveFees(ctx context.Context, department string, record model.FeeRecord) error {
	if err := validation.ValidateStruct(saveFeesInput{Department: department, Fees: record}); err != nil {
		return fmt.Errorf("%w: %w", mediaSvc.ErrValidation, err)
	}

	sched := &model.FeeSchedule{
		ID:         s.genUUID(),
		Department: department,
		Fees:       record,
	}
	// editor identity is optional, sourced from the session when present
	if visitor, ok := apictx.VisitorFromContext(ctx); ok && visitor.Email != "" {
		email := visitor.Email
		sched.UpdatedBy = &email
	}

	if err := s.repo.Upsert(ctx, sched); err != nil {
		// cache untouched: stale-but-valid beats corrupt-on-partial-write
		return fmt.Errorf("upserting fees for %q: %w", department, err)
	}

	if _, err := s.resolver.ResolveFees(ctx, department); err != nil {
		logger.Warnf(ctx, "fee cache refresh after save failed for %q: %v", department, err)
	}
	return nil
}
