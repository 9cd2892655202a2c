package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// ProjectService handles project master data operations
type ProjectService struct {
	core crudCore[masterdata.Project]
}

// NewProjectService creates a new ProjectService
func NewProjectService(repo shared.VersionedRepository[masterdata.Project]) *ProjectService {
	return &ProjectService{core: crudCore[masterdata.Project]{entity: "project", repo: repo}}
}

// Create creates a new project
func (s *ProjectService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateProjectRequest) (*ProjectResponse, error) {
	proj, err := masterdata.NewProject(tenantID, userID, req.Code, req.Name, req.Description,
		req.PlannedStart, req.PlannedEnd, req.ActualStart, req.ActualEnd)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, proj.Code, proj); err != nil {
		return nil, err
	}
	response := ToProjectResponse(proj)
	return &response, nil
}

// GetByID retrieves a project by ID
func (s *ProjectService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*ProjectResponse, error) {
	proj, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(proj)
	return &response, nil
}

// GetByCode retrieves a project by business code
func (s *ProjectService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*ProjectResponse, error) {
	proj, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(proj)
	return &response, nil
}

// List retrieves one page of projects plus the total count
func (s *ProjectService) List(ctx context.Context, tenantID uuid.UUID, params ListParams) ([]ProjectResponse, int64, error) {
	records, total, err := s.core.list(ctx, tenantID, params.toFilter())
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToProjectResponse), total, nil
}

// Update applies a version-checked update to a project
func (s *ProjectService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateProjectRequest) (*ProjectResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(p *masterdata.Project) error {
			return p.ValidateUpdate(req.Name, req.PlannedStart, req.PlannedEnd, req.ActualStart, req.ActualEnd)
		},
		map[string]any{
			"name":          req.Name,
			"description":   req.Description,
			"planned_start": req.PlannedStart,
			"planned_end":   req.PlannedEnd,
			"actual_start":  req.ActualStart,
			"actual_end":    req.ActualEnd,
			"updated_by":    userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(updated)
	return &response, nil
}

// Deactivate marks a project inactive
func (s *ProjectService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*ProjectResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(updated)
	return &response, nil
}

// Activate marks a project active again
func (s *ProjectService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*ProjectResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToProjectResponse(updated)
	return &response, nil
}
