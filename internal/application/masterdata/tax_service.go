package masterdata

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// TaxRateService handles tax rate master data operations
type TaxRateService struct {
	core crudCore[masterdata.TaxRate]
}

// NewTaxRateService creates a new TaxRateService
func NewTaxRateService(repo shared.VersionedRepository[masterdata.TaxRate]) *TaxRateService {
	return &TaxRateService{core: crudCore[masterdata.TaxRate]{entity: "tax_rate", repo: repo}}
}

// Create creates a new tax rate
func (s *TaxRateService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateTaxRateRequest) (*TaxRateResponse, error) {
	rate, err := masterdata.NewTaxRate(tenantID, userID, req.Code, req.Name, req.RatePercent, req.ValidFrom, req.ValidTo)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, rate.Code, rate); err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(rate)
	return &response, nil
}

// GetByID retrieves a tax rate by ID
func (s *TaxRateService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*TaxRateResponse, error) {
	rate, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(rate)
	return &response, nil
}

// GetByCode retrieves a tax rate by business code
func (s *TaxRateService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*TaxRateResponse, error) {
	rate, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(rate)
	return &response, nil
}

// List retrieves one page of tax rates plus the total count
func (s *TaxRateService) List(ctx context.Context, tenantID uuid.UUID, params ListParams) ([]TaxRateResponse, int64, error) {
	records, total, err := s.core.list(ctx, tenantID, params.toFilter())
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToTaxRateResponse), total, nil
}

// Update applies a version-checked update to a tax rate
func (s *TaxRateService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateTaxRateRequest) (*TaxRateResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(r *masterdata.TaxRate) error {
			return r.ValidateUpdate(req.Name, req.RatePercent, req.ValidFrom, req.ValidTo)
		},
		map[string]any{
			"name":         req.Name,
			"rate_percent": req.RatePercent,
			"valid_from":   req.ValidFrom,
			"valid_to":     req.ValidTo,
			"updated_by":   userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(updated)
	return &response, nil
}

// Deactivate marks a tax rate inactive
func (s *TaxRateService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*TaxRateResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(updated)
	return &response, nil
}

// Activate marks a tax rate active again
func (s *TaxRateService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*TaxRateResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToTaxRateResponse(updated)
	return &response, nil
}

// TaxCodeService handles tax code master data operations
type TaxCodeService struct {
	core crudCore[masterdata.TaxCode]
}

// NewTaxCodeService creates a new TaxCodeService
func NewTaxCodeService(repo shared.VersionedRepository[masterdata.TaxCode]) *TaxCodeService {
	return &TaxCodeService{core: crudCore[masterdata.TaxCode]{entity: "tax_code", repo: repo}}
}

// Create creates a new tax code. The referenced tax rate code is a loose
// reference and is not checked against the tax rate table.
func (s *TaxCodeService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateTaxCodeRequest) (*TaxCodeResponse, error) {
	code, err := masterdata.NewTaxCode(tenantID, userID, req.Code, req.Name, req.Description, req.TaxRateCode)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, code.Code, code); err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(code)
	return &response, nil
}

// GetByID retrieves a tax code by ID
func (s *TaxCodeService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*TaxCodeResponse, error) {
	code, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(code)
	return &response, nil
}

// GetByCode retrieves a tax code by business code
func (s *TaxCodeService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*TaxCodeResponse, error) {
	record, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(record)
	return &response, nil
}

// List retrieves one page of tax codes plus the total count
func (s *TaxCodeService) List(ctx context.Context, tenantID uuid.UUID, params ListParams, taxRateCode string) ([]TaxCodeResponse, int64, error) {
	filter := params.toFilter()
	if taxRateCode != "" {
		filter.Filters["tax_rate_code"] = taxRateCode
	}
	records, total, err := s.core.list(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToTaxCodeResponse), total, nil
}

// Update applies a version-checked update to a tax code
func (s *TaxCodeService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateTaxCodeRequest) (*TaxCodeResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(c *masterdata.TaxCode) error {
			return c.ValidateUpdate(req.Name, req.TaxRateCode)
		},
		map[string]any{
			"name":          req.Name,
			"description":   req.Description,
			"tax_rate_code": strings.ToUpper(req.TaxRateCode),
			"updated_by":    userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(updated)
	return &response, nil
}

// Deactivate marks a tax code inactive
func (s *TaxCodeService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*TaxCodeResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(updated)
	return &response, nil
}

// Activate marks a tax code active again
func (s *TaxCodeService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*TaxCodeResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToTaxCodeResponse(updated)
	return &response, nil
}
