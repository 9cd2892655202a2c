package persistence

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/masterdata/backend/internal/domain/shared"
)

// VersionedRepositoryConfig describes the per-entity knobs of the generic
// repository: which columns participate in free-text search, which fields
// are sortable, the fallback ordering, which columns accept exact filters
// and, for defaultable entities, the name of the exclusive flag column.
type VersionedRepositoryConfig struct {
	SearchColumns []string
	SortFields    map[string]bool
	DefaultSort   string
	FilterColumns map[string]bool
	FlagColumn    string
}

// GormVersionedRepository implements shared.VersionedRepository for any
// master data entity embedding shared.TenantRecord. Every query carries
// the tenant predicate and every mutation goes through a conditional
// version-checked UPDATE.
type GormVersionedRepository[T any] struct {
	db  *gorm.DB
	cfg VersionedRepositoryConfig
}

// NewGormVersionedRepository creates a repository for entity type T.
func NewGormVersionedRepository[T any](db *gorm.DB, cfg VersionedRepositoryConfig) *GormVersionedRepository[T] {
	return &GormVersionedRepository[T]{db: db, cfg: cfg}
}

// FindByIDForTenant finds a record by ID within a tenant
func (r *GormVersionedRepository[T]) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// FindByCodeForTenant finds a record by its business code within a tenant
func (r *GormVersionedRepository[T]) FindByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string) (*T, error) {
	var record T
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code)).
		First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &record, nil
}

// ExistsByCodeForTenant checks if another record already uses the code
// within the tenant. excludeID may be uuid.Nil for create checks.
func (r *GormVersionedRepository[T]) ExistsByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	var model T
	var count int64
	query := r.db.WithContext(ctx).Model(&model).
		Where("tenant_id = ? AND code = ?", tenantID, strings.ToUpper(code))
	if excludeID != uuid.Nil {
		query = query.Where("id <> ?", excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ListForTenant returns one page of records matching the filter
func (r *GormVersionedRepository[T]) ListForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, error) {
	var model T
	var records []T
	query := r.applyFilter(
		r.db.WithContext(ctx).Model(&model).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

// CountForTenant counts records matching the filter, ignoring pagination
func (r *GormVersionedRepository[T]) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	var model T
	var count int64
	query := r.applyFilterWithoutPagination(
		r.db.WithContext(ctx).Model(&model).Where("tenant_id = ?", tenantID),
		filter,
	)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Create inserts a new record. The unique constraint on (tenant_id, code)
// is the authoritative duplicate signal; any pre-check in the service is
// only a fast path.
func (r *GormVersionedRepository[T]) Create(ctx context.Context, record *T) error {
	if err := r.db.WithContext(ctx).Create(record).Error; err != nil {
		if isUniqueViolation(err) {
			return shared.ErrCodeDuplicate
		}
		return err
	}
	return nil
}

// UpdateWithVersion issues a single conditional UPDATE scoped by id,
// tenant and expected version. The row only changes when the stored
// version still matches, and the version advances by exactly one in the
// same statement.
func (r *GormVersionedRepository[T]) UpdateWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, patch map[string]any) (*T, error) {
	var model T
	assigns := make(map[string]any, len(patch)+2)
	for column, value := range patch {
		assigns[column] = value
	}
	assigns["version"] = expectedVersion + 1
	if _, ok := assigns["updated_at"]; !ok {
		assigns["updated_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).Model(&model).
		Where("id = ? AND tenant_id = ? AND version = ?", id, tenantID, expectedVersion).
		Updates(assigns)
	if result.Error != nil {
		if isUniqueViolation(result.Error) {
			return nil, shared.ErrCodeDuplicate
		}
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrStaleRecord
	}
	return r.FindByIDForTenant(ctx, tenantID, id)
}

// SetDefaultWithVersion promotes the target record to the scope's default
// in one transaction: the previous holder loses the flag and the target
// gains it through a version-checked UPDATE. Zero rows on the target
// rolls everything back.
func (r *GormVersionedRepository[T]) SetDefaultWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy uuid.UUID, scope map[string]any) (*T, *T, error) {
	if r.cfg.FlagColumn == "" {
		return nil, nil, fmt.Errorf("entity has no default flag column")
	}

	var previousID uuid.UUID
	now := time.Now()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var model T
		var previous T

		prevQuery := tx.Where("tenant_id = ? AND "+r.cfg.FlagColumn+" = ? AND id <> ?", tenantID, true, id)
		for column, value := range scope {
			prevQuery = prevQuery.Where(column+" = ?", value)
		}
		switch err := prevQuery.First(&previous).Error; {
		case err == nil:
			rec, ok := any(&previous).(shared.Record)
			if !ok {
				return fmt.Errorf("entity does not implement shared.Record")
			}
			previousID = rec.GetID()
			clear := tx.Model(&model).
				Where("id = ? AND tenant_id = ?", previousID, tenantID).
				Updates(map[string]any{
					r.cfg.FlagColumn: false,
					"version":        gorm.Expr("version + 1"),
					"updated_at":     now,
					"updated_by":     updatedBy,
				})
			if clear.Error != nil {
				return clear.Error
			}
		case errors.Is(err, gorm.ErrRecordNotFound):
			// no previous default in this scope
		default:
			return err
		}

		promote := tx.Model(&model).
			Where("id = ? AND tenant_id = ? AND version = ?", id, tenantID, expectedVersion).
			Updates(map[string]any{
				r.cfg.FlagColumn: true,
				"version":        expectedVersion + 1,
				"updated_at":     now,
				"updated_by":     updatedBy,
			})
		if promote.Error != nil {
			return promote.Error
		}
		if promote.RowsAffected == 0 {
			return shared.ErrStaleRecord
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	updated, err := r.FindByIDForTenant(ctx, tenantID, id)
	if err != nil {
		return nil, nil, err
	}
	if previousID == uuid.Nil {
		return updated, nil, nil
	}
	previous, err := r.FindByIDForTenant(ctx, tenantID, previousID)
	if err != nil {
		return nil, nil, err
	}
	return updated, previous, nil
}

// applyFilter applies filter options to the query
func (r *GormVersionedRepository[T]) applyFilter(query *gorm.DB, filter shared.Filter) *gorm.DB {
	query = r.applyFilterWithoutPagination(query, filter)

	if filter.Limit > 0 {
		query = query.Offset(filter.Offset).Limit(filter.Limit)
	}

	orderBy := ValidateSortField(filter.OrderBy, r.cfg.SortFields, "")
	if orderBy != "" {
		query = query.Order(orderBy + " " + ValidateSortOrder(filter.OrderDir))
	} else if r.cfg.DefaultSort != "" {
		query = query.Order(r.cfg.DefaultSort)
	}

	return query
}

// applyFilterWithoutPagination applies filter options without pagination
func (r *GormVersionedRepository[T]) applyFilterWithoutPagination(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if !filter.IncludeInactive {
		query = query.Where("is_active = ?", true)
	}

	if filter.Search != "" && len(r.cfg.SearchColumns) > 0 {
		// LOWER + LIKE is case-insensitive on every dialect.
		pattern := "%" + filter.Search + "%"
		conditions := make([]string, len(r.cfg.SearchColumns))
		args := make([]any, len(r.cfg.SearchColumns))
		for i, column := range r.cfg.SearchColumns {
			conditions[i] = "LOWER(" + column + ") LIKE LOWER(?)"
			args[i] = pattern
		}
		query = query.Where(strings.Join(conditions, " OR "), args...)
	}

	for key, value := range filter.Filters {
		if r.cfg.FilterColumns[key] {
			query = query.Where(key+" = ?", value)
		}
	}

	return query
}

// isUniqueViolation recognizes a unique-constraint violation from either
// GORM's translated error or the raw postgres error code.
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return true
	}
	return false
}
