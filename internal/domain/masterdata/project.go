package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
)

// Project represents a project master data record with planned and actual
// execution windows.
type Project struct {
	shared.TenantRecord
	Code         string     `gorm:"type:varchar(50);not null" json:"code"`
	Name         string     `gorm:"type:varchar(200);not null" json:"name"`
	Description  string     `gorm:"type:text" json:"description"`
	PlannedStart *time.Time `json:"planned_start"`
	PlannedEnd   *time.Time `json:"planned_end"`
	ActualStart  *time.Time `json:"actual_start"`
	ActualEnd    *time.Time `json:"actual_end"`
}

// TableName returns the table name for GORM
func (Project) TableName() string {
	return "projects"
}

// NewProject creates a new project
func NewProject(tenantID, userID uuid.UUID, code, name, description string, plannedStart, plannedEnd, actualStart, actualEnd *time.Time) (*Project, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateProjectWindows(plannedStart, plannedEnd, actualStart, actualEnd); err != nil {
		return nil, err
	}

	return &Project{
		TenantRecord: shared.NewTenantRecord(tenantID, userID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Description:  description,
		PlannedStart: plannedStart,
		PlannedEnd:   plannedEnd,
		ActualStart:  actualStart,
		ActualEnd:    actualEnd,
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted.
func (p *Project) ValidateUpdate(name string, plannedStart, plannedEnd, actualStart, actualEnd *time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	return validateProjectWindows(plannedStart, plannedEnd, actualStart, actualEnd)
}

// validateProjectWindows validates the planned and actual windows
// independently. A window with no start is treated as unset and a window
// with no end is open-ended.
func validateProjectWindows(plannedStart, plannedEnd, actualStart, actualEnd *time.Time) error {
	if plannedStart != nil {
		if err := validateDateRange(*plannedStart, plannedEnd); err != nil {
			return err
		}
	}
	if actualStart != nil {
		if err := validateDateRange(*actualStart, actualEnd); err != nil {
			return err
		}
	}
	return nil
}
