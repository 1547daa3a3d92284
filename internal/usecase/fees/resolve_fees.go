package fees

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/rbcastillo/collegeinfo-ms-go/internal/localstore"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/logger"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/model"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/port"
	"github.com/rbcastillo/collegeinfo-ms-go/internal/retry"
	mediaSvc "github.com/rbcastillo/collegeinfo-ms-go/internal/usecase/media"
)

type feeResolverSrv struct {
	repo port.FeeScheduleRepository
	kv   port.KV
}

// NewFeeResolver wires the network-first fee resolver. The priority is the
// opposite of the media resolver's: fee data must reflect the latest admin
// edits, so the local snapshot is only a fallback for when the remote is
// unreachable.
func NewFeeResolver(repo port.FeeScheduleRepository, kv port.KV) port.FeeResolver {
	return &feeResolverSrv{repo: repo, kv: kv}
}

func (s *feeResolverSrv) ResolveFees(ctx context.Context, department string) (model.FeeRecord, error) {
	if department == "" {
		return nil, mediaSvc.ErrValidation
	}

	var sched *model.FeeSchedule
	err := retry.Do(ctx, mediaSvc.RemoteTimeout, transientRemoteErr, func(ctx context.Context) error {
		f, err := s.repo.GetByDepartment(ctx, department)
		if err != nil {
			return err
		}
		sched = f
		return nil
	})
	if errors.Is(err, port.ErrNotFound) {
		// confirmed absence: the cache is deliberately left alone
		return nil, nil
	}
	if err != nil {
		logger.Warnf(ctx, "fee lookup failed for %q, falling back to cache: %v", department, err)
		return s.cachedRecord(ctx, department), nil
	}

	s.refreshCache(ctx, department, sched.Fees)
	return sched.Fees, nil
}

// refreshCache overwrites the snapshot after a successful remote read. A
// write failure is logged and swallowed: the just-fetched record is still
// returned to the caller.
func (s *feeResolverSrv) refreshCache(ctx context.Context, department string, record model.FeeRecord) {
	data, err := json.Marshal(record)
	if err != nil {
		logger.Warnf(ctx, "could not marshal fee snapshot for %q: %v", department, err)
		return
	}
	if err := s.kv.Set(ctx, localstore.FeesCacheKey(department), string(data)); err != nil {
		logger.Warnf(ctx, "could not cache fee snapshot for %q: %v", department, err)
	}
}

func (s *feeResolverSrv) cachedRecord(ctx context.Context, department string) model.FeeRecord {
	raw, ok, err := s.kv.Get(ctx, localstore.FeesCacheKey(department))
	if err != nil {
		logger.Warnf(ctx, "fee cache read failed for %q: %v", department, err)
		return nil
	}
	if !ok {
		return nil
	}

	var record model.FeeRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// malformed snapshot, treat as a miss
		logger.Warnf(ctx, "malformed fee snapshot for %q: %v", department, err)
		return nil
	}
	return record
}

func transientRemoteErr(err error) bool {
	return !errors.Is(err, port.ErrNotFound) && !errors.Is(err, port.ErrUnauthorized)
}
