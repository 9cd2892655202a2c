package masterdata

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// TaxRate represents a tax rate master data record with a validity window.
type TaxRate struct {
	shared.TenantRecord
	Code        string          `gorm:"type:varchar(50);not null" json:"code"`
	Name        string          `gorm:"type:varchar(200);not null" json:"name"`
	RatePercent decimal.Decimal `gorm:"type:decimal(7,4);not null" json:"rate_percent"`
	ValidFrom   time.Time       `gorm:"not null" json:"valid_from"`
	ValidTo     *time.Time      `json:"valid_to"`
}

// TableName returns the table name for GORM
func (TaxRate) TableName() string {
	return "tax_rates"
}

// NewTaxRate creates a new tax rate
func NewTaxRate(tenantID, userID uuid.UUID, code, name string, ratePercent decimal.Decimal, validFrom time.Time, validTo *time.Time) (*TaxRate, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateRatePercent(ratePercent); err != nil {
		return nil, err
	}
	if err := validateDateRange(validFrom, validTo); err != nil {
		return nil, err
	}

	return &TaxRate{
		TenantRecord: shared.NewTenantRecord(tenantID, userID),
		Code:         strings.ToUpper(code),
		Name:         name,
		RatePercent:  ratePercent,
		ValidFrom:    validFrom,
		ValidTo:      validTo,
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted.
func (t *TaxRate) ValidateUpdate(name string, ratePercent decimal.Decimal, validFrom time.Time, validTo *time.Time) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateRatePercent(ratePercent); err != nil {
		return err
	}
	return validateDateRange(validFrom, validTo)
}

func validateRatePercent(rate decimal.Decimal) error {
	if rate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Rate percent cannot be negative")
	}
	if rate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_RATE", "Rate percent cannot exceed 100")
	}
	return nil
}
