package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
)

// TaxCode represents a tax code master data record. The tax rate code is
// a loose reference resolved at usage time, not a foreign key.
type TaxCode struct {
	shared.TenantRecord
	Code        string `gorm:"type:varchar(50);not null" json:"code"`
	Name        string `gorm:"type:varchar(200);not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
	TaxRateCode string `gorm:"type:varchar(50)" json:"tax_rate_code"`
}

// TableName returns the table name for GORM
func (TaxCode) TableName() string {
	return "tax_codes"
}

// NewTaxCode creates a new tax code
func NewTaxCode(tenantID, userID uuid.UUID, code, name, description, taxRateCode string) (*TaxCode, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if taxRateCode != "" {
		if err := validateCode(taxRateCode); err != nil {
			return nil, err
		}
	}

	return &TaxCode{
		TenantRecord: shared.NewTenantRecord(tenantID, userID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Description:  description,
		TaxRateCode:  strings.ToUpper(taxRateCode),
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted.
func (t *TaxCode) ValidateUpdate(name, taxRateCode string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if taxRateCode != "" {
		return validateCode(taxRateCode)
	}
	return nil
}
