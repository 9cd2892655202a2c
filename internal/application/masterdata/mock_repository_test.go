package masterdata

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/masterdata/backend/internal/domain/shared"
)

// mockRepository is a testify mock of the generic repository contract.
type mockRepository[T any] struct {
	mock.Mock
}

func (m *mockRepository[T]) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*T, error) {
	args := m.Called(ctx, tenantID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepository[T]) FindByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string) (*T, error) {
	args := m.Called(ctx, tenantID, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepository[T]) ExistsByCodeForTenant(ctx context.Context, tenantID uuid.UUID, code string, excludeID uuid.UUID) (bool, error) {
	args := m.Called(ctx, tenantID, code, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepository[T]) ListForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]T, error) {
	args := m.Called(ctx, tenantID, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]T), args.Error(1)
}

func (m *mockRepository[T]) CountForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) (int64, error) {
	args := m.Called(ctx, tenantID, filter)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockRepository[T]) Create(ctx context.Context, record *T) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *mockRepository[T]) UpdateWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, patch map[string]any) (*T, error) {
	args := m.Called(ctx, tenantID, id, expectedVersion, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*T), args.Error(1)
}

func (m *mockRepository[T]) SetDefaultWithVersion(ctx context.Context, tenantID, id uuid.UUID, expectedVersion int, updatedBy uuid.UUID, scope map[string]any) (*T, *T, error) {
	args := m.Called(ctx, tenantID, id, expectedVersion, updatedBy, scope)
	var updated, previous *T
	if args.Get(0) != nil {
		updated = args.Get(0).(*T)
	}
	if args.Get(1) != nil {
		previous = args.Get(1).(*T)
	}
	return updated, previous, args.Error(2)
}
