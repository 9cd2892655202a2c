package masterdata

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/masterdata/backend/internal/domain/shared"
	"github.com/masterdata/backend/internal/infrastructure/telemetry"
)

// crudCore bundles the behavior every master data service shares: the
// tenant-scoped reads, the duplicate-code fast path backed by the unique
// constraint, the version-conflict resolution and the lifecycle toggles.
// Entity services wrap it with their own validation and patch building.
type crudCore[T any] struct {
	entity string
	repo   shared.VersionedRepository[T]
}

func (c *crudCore[T]) get(ctx context.Context, tenantID, id uuid.UUID) (*T, error) {
	return c.repo.FindByIDForTenant(ctx, tenantID, id)
}

func (c *crudCore[T]) getByCode(ctx context.Context, tenantID uuid.UUID, code string) (*T, error) {
	return c.repo.FindByCodeForTenant(ctx, tenantID, code)
}

// list issues the data page and the total count concurrently.
func (c *crudCore[T]) list(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, int64, error) {
	var (
		records []T
		total   int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = c.repo.ListForTenant(gctx, tenantID, filter)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = c.repo.CountForTenant(gctx, tenantID, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return records, total, nil
}

// create inserts the record. The ExistsByCode check is only a fast path
// for a friendly error; the unique constraint remains authoritative, so a
// race between the check and the insert still yields ErrCodeDuplicate.
func (c *crudCore[T]) create(ctx context.Context, tenantID uuid.UUID, code string, record *T) error {
	ctx, span := telemetry.StartServiceSpan(ctx, c.entity, "create")
	defer span.End()
	telemetry.SetAttributes(span, "tenant_id", tenantID.String(), "code", code)

	exists, err := c.repo.ExistsByCodeForTenant(ctx, tenantID, code, uuid.Nil)
	if err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	if exists {
		telemetry.RecordError(span, shared.ErrCodeDuplicate)
		return shared.ErrCodeDuplicate
	}
	if err := c.repo.Create(ctx, record); err != nil {
		telemetry.RecordError(span, err)
		return err
	}
	return nil
}

// update verifies the record exists, validates the requested changes
// against it, then applies the version-checked patch. A stale result
// after a successful existence check means the version moved, so it
// surfaces as ErrVersionConflict.
func (c *crudCore[T]) update(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, validate func(*T) error, patch map[string]any) (*T, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, c.entity, "update")
	defer span.End()
	telemetry.SetAttributes(span,
		"tenant_id", tenantID.String(),
		"record_id", id.String(),
		"expected_version", expectedVersion,
	)

	record, err := c.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	if validate != nil {
		if err := validate(record); err != nil {
			telemetry.RecordError(span, err)
			return nil, err
		}
	}
	updated, err := c.repo.UpdateWithVersion(ctx, tenantID, id, expectedVersion, patch)
	if err != nil {
		err = c.resolveWriteError(ctx, tenantID, id, err)
		telemetry.RecordError(span, err)
		return nil, err
	}
	return updated, nil
}

// setActive toggles the lifecycle flag through the same version-checked
// path. Asking for the state the record is already in is an error.
func (c *crudCore[T]) setActive(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, userID uuid.UUID, active bool) (*T, error) {
	method := "deactivate"
	if active {
		method = "activate"
	}
	ctx, span := telemetry.StartServiceSpan(ctx, c.entity, method)
	defer span.End()
	telemetry.SetAttributes(span, "tenant_id", tenantID.String(), "record_id", id.String())

	record, err := c.repo.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		telemetry.RecordError(span, err)
		return nil, err
	}
	rec, ok := any(record).(shared.Record)
	if !ok {
		return nil, shared.ErrInternal
	}
	if rec.Active() == active {
		if active {
			return nil, shared.ErrAlreadyActive
		}
		return nil, shared.ErrAlreadyInactive
	}

	updated, err := c.repo.UpdateWithVersion(ctx, tenantID, id, expectedVersion, map[string]any{
		"is_active":  active,
		"updated_by": userID,
	})
	if err != nil {
		err = c.resolveWriteError(ctx, tenantID, id, err)
		telemetry.RecordError(span, err)
		return nil, err
	}
	return updated, nil
}

// resolveWriteError maps the repository's stale sentinel onto the
// caller-facing taxonomy: the record was just seen, so zero matched rows
// means its version moved underneath us.
func (c *crudCore[T]) resolveWriteError(ctx context.Context, tenantID, id uuid.UUID, err error) error {
	if !errors.Is(err, shared.ErrStaleRecord) {
		return err
	}
	if _, findErr := c.repo.FindByIDForTenant(ctx, tenantID, id); errors.Is(findErr, shared.ErrNotFound) {
		return shared.ErrNotFound
	}
	return shared.ErrVersionConflict
}

// defaultableCore adds the exclusive-default operation for entities that
// carry a default flag.
type defaultableCore[T any] struct {
	crudCore[T]
	repo shared.DefaultableRepository[T]
}

func newDefaultableCore[T any](entity string, repo shared.DefaultableRepository[T]) defaultableCore[T] {
	return defaultableCore[T]{crudCore: crudCore[T]{entity: entity, repo: repo}, repo: repo}
}

// setDefault promotes the record to the scope's default in one atomic
// repository transaction and returns both the promoted record and the
// previous holder, if any. The caller has already fetched the record, so
// a stale result here is a version conflict.
func (c *defaultableCore[T]) setDefault(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, userID uuid.UUID, scope map[string]any) (*T, *T, error) {
	ctx, span := telemetry.StartServiceSpan(ctx, c.entity, "set_default")
	defer span.End()
	telemetry.SetAttributes(span, "tenant_id", tenantID.String(), "record_id", id.String())

	updated, previous, err := c.repo.SetDefaultWithVersion(ctx, tenantID, id, expectedVersion, userID, scope)
	if err != nil {
		err = c.resolveWriteError(ctx, tenantID, id, err)
		telemetry.RecordError(span, err)
		return nil, nil, err
	}
	return updated, previous, nil
}
