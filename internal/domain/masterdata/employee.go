package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
)

// Employee represents an employee master data record.
type Employee struct {
	shared.TenantRecord
	Code       string     `gorm:"type:varchar(50);not null" json:"code"`
	Name       string     `gorm:"type:varchar(200);not null" json:"name"`
	Email      string     `gorm:"type:varchar(200)" json:"email"`
	Department string     `gorm:"type:varchar(100)" json:"department"`
	JoinDate   time.Time  `gorm:"not null" json:"join_date"`
	RetireDate *time.Time `json:"retire_date"`
}

// TableName returns the table name for GORM
func (Employee) TableName() string {
	return "employees"
}

// NewEmployee creates a new employee. Validation order is part of the
// observable contract: format checks run before the date-range check.
func NewEmployee(tenantID, userID uuid.UUID, code, name, email, department string, joinDate time.Time, retireDate *time.Time) (*Employee, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return nil, err
		}
	}
	if err := validateDateRange(joinDate, retireDate); err != nil {
		return nil, err
	}

	return &Employee{
		TenantRecord: shared.NewTenantRecord(tenantID, userID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Email:        email,
		Department:   department,
		JoinDate:     joinDate,
		RetireDate:   retireDate,
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted.
func (e *Employee) ValidateUpdate(name, email string, joinDate time.Time, retireDate *time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	if email != "" {
		if err := validateEmail(email); err != nil {
			return err
		}
	}
	return validateDateRange(joinDate, retireDate)
}
