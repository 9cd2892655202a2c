package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// EmployeeService handles employee master data operations
type EmployeeService struct {
	core crudCore[masterdata.Employee]
}

// NewEmployeeService creates a new EmployeeService
func NewEmployeeService(repo shared.VersionedRepository[masterdata.Employee]) *EmployeeService {
	return &EmployeeService{core: crudCore[masterdata.Employee]{entity: "employee", repo: repo}}
}

// Create creates a new employee
func (s *EmployeeService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateEmployeeRequest) (*EmployeeResponse, error) {
	emp, err := masterdata.NewEmployee(tenantID, userID, req.Code, req.Name, req.Email, req.Department, req.JoinDate, req.RetireDate)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, emp.Code, emp); err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(emp)
	return &response, nil
}

// GetByID retrieves an employee by ID
func (s *EmployeeService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*EmployeeResponse, error) {
	emp, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(emp)
	return &response, nil
}

// GetByCode retrieves an employee by business code
func (s *EmployeeService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*EmployeeResponse, error) {
	emp, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(emp)
	return &response, nil
}

// List retrieves one page of employees plus the total count
func (s *EmployeeService) List(ctx context.Context, tenantID uuid.UUID, params ListParams, department string) ([]EmployeeResponse, int64, error) {
	filter := params.toFilter()
	if department != "" {
		filter.Filters["department"] = department
	}
	records, total, err := s.core.list(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToEmployeeResponse), total, nil
}

// Update applies a version-checked update to an employee
func (s *EmployeeService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateEmployeeRequest) (*EmployeeResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(e *masterdata.Employee) error {
			return e.ValidateUpdate(req.Name, req.Email, req.JoinDate, req.RetireDate)
		},
		map[string]any{
			"name":        req.Name,
			"email":       req.Email,
			"department":  req.Department,
			"join_date":   req.JoinDate,
			"retire_date": req.RetireDate,
			"updated_by":  userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(updated)
	return &response, nil
}

// Deactivate marks an employee inactive
func (s *EmployeeService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*EmployeeResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(updated)
	return &response, nil
}

// Activate marks an employee active again
func (s *EmployeeService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*EmployeeResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToEmployeeResponse(updated)
	return &response, nil
}
