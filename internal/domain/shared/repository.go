package shared

import (
	"context"

	"github.com/google/uuid"
)

// Filter represents query options at the domain-API boundary. Offsets are
// zero-based; the BFF owns the page/page_size translation.
type Filter struct {
	Offset          int
	Limit           int
	OrderBy         string
	OrderDir        string
	Search          string
	IncludeInactive bool
	Filters         map[string]any
}

// DefaultFilter returns a filter with default values
func DefaultFilter() Filter {
	return Filter{
		Offset:  0,
		Limit:   20,
		Filters: make(map[string]any),
	}
}

// VersionedRepository is the generic persistence contract shared by every
// master data entity. Every query carries the tenant predicate; the
// conditional update carries the expected version as well.
type VersionedRepository[T any] interface {
	// FindByIDForTenant finds a record by ID within a tenant.
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error)

	// FindByCodeForTenant finds a record by its business code within a tenant.
	FindByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string) (*T, error)

	// ExistsByCodeForTenant reports whether another record (excluding
	// excludeID, which may be uuid.Nil) already uses the code.
	ExistsByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string, excludeID uuid.UUID) (bool, error)

	// ListForTenant returns one page of records matching the filter.
	ListForTenant(ctx context.Context, tenantID uuid.UUID, filter Filter) ([]T, error)

	// CountForTenant counts records matching the filter, ignoring pagination.
	CountForTenant(ctx context.Context, tenantID uuid.UUID, filter Filter) (int64, error)

	// Create inserts a new record. A unique-constraint violation on
	// (tenant_id, code) is reported as ErrCodeDuplicate.
	Create(ctx context.Context, record *T) error

	// UpdateWithVersion issues a single conditional UPDATE scoped by id,
	// tenant and expected version, assigning the patch columns plus
	// version = expectedVersion + 1, and returns the updated record.
	// Zero rows affected yields ErrStaleRecord.
	UpdateWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, patch map[string]any) (*T, error)
}

// DefaultableRepository extends VersionedRepository for entities carrying
// an exclusive default flag (bank accounts, warehouse default receiving).
type DefaultableRepository[T any] interface {
	VersionedRepository[T]

	// SetDefaultWithVersion atomically marks the target record as the
	// default (version-checked) and clears the flag on the previous
	// holder within the same scope, in one transaction. It returns the
	// updated record and the previous default, if any. A version
	// mismatch on the target rolls the whole operation back with
	// ErrStaleRecord.
	SetDefaultWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy uuid.UUID, scope map[string]any) (updated *T, previous *T, err error)
}
