package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// WarehouseService handles warehouse master data operations. The default
// receiving flag is exclusive per tenant.
type WarehouseService struct {
	core defaultableCore[masterdata.Warehouse]
}

// NewWarehouseService creates a new WarehouseService
func NewWarehouseService(repo shared.DefaultableRepository[masterdata.Warehouse]) *WarehouseService {
	return &WarehouseService{core: newDefaultableCore("warehouse", repo)}
}

// Create creates a new warehouse
func (s *WarehouseService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateWarehouseRequest) (*WarehouseResponse, error) {
	wh, err := masterdata.NewWarehouse(tenantID, userID, req.Code, req.Name, req.Address, req.City, req.ContactName, req.Phone)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, wh.Code, wh); err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}

// GetByID retrieves a warehouse by ID
func (s *WarehouseService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*WarehouseResponse, error) {
	wh, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}

// GetByCode retrieves a warehouse by business code
func (s *WarehouseService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*WarehouseResponse, error) {
	wh, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(wh)
	return &response, nil
}

// List retrieves one page of warehouses plus the total count
func (s *WarehouseService) List(ctx context.Context, tenantID uuid.UUID, params ListParams, city string) ([]WarehouseResponse, int64, error) {
	filter := params.toFilter()
	if city != "" {
		filter.Filters["city"] = city
	}
	records, total, err := s.core.list(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToWarehouseResponse), total, nil
}

// Update applies a version-checked update to a warehouse. The default
// receiving flag is not touched here; use SetDefaultReceiving.
func (s *WarehouseService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateWarehouseRequest) (*WarehouseResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(w *masterdata.Warehouse) error {
			return w.ValidateUpdate(req.Name)
		},
		map[string]any{
			"name":         req.Name,
			"address":      req.Address,
			"city":         req.City,
			"contact_name": req.ContactName,
			"phone":        req.Phone,
			"updated_by":   userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(updated)
	return &response, nil
}

// SetDefaultReceiving atomically makes this warehouse the tenant's
// default receiving location and demotes the previous one, if any.
func (s *WarehouseService) SetDefaultReceiving(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*SetDefaultResponse[WarehouseResponse], error) {
	if _, err := s.core.get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	updated, previous, err := s.core.setDefault(ctx, tenantID, id, version, userID, nil)
	if err != nil {
		return nil, err
	}
	response := &SetDefaultResponse[WarehouseResponse]{
		Updated: ToWarehouseResponse(updated),
	}
	if previous != nil {
		prev := ToWarehouseResponse(previous)
		response.Previous = &prev
	}
	return response, nil
}

// Deactivate marks a warehouse inactive
func (s *WarehouseService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*WarehouseResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(updated)
	return &response, nil
}

// Activate marks a warehouse active again
func (s *WarehouseService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*WarehouseResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToWarehouseResponse(updated)
	return &response, nil
}
