package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
)

// Warehouse represents a warehouse master data record. At most one
// warehouse per tenant carries the default receiving flag.
type Warehouse struct {
	shared.TenantRecord
	Code               string `gorm:"type:varchar(50);not null" json:"code"`
	Name               string `gorm:"type:varchar(200);not null" json:"name"`
	Address            string `gorm:"type:varchar(500)" json:"address"`
	City               string `gorm:"type:varchar(100)" json:"city"`
	ContactName        string `gorm:"type:varchar(200)" json:"contact_name"`
	Phone              string `gorm:"type:varchar(50)" json:"phone"`
	IsDefaultReceiving bool   `gorm:"not null;default:false" json:"is_default_receiving"`
}

// TableName returns the table name for GORM
func (Warehouse) TableName() string {
	return "warehouses"
}

// NewWarehouse creates a new warehouse
func NewWarehouse(tenantID, userID uuid.UUID, code, name, address, city, contactName, phone string) (*Warehouse, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	return &Warehouse{
		TenantRecord: shared.NewTenantRecord(tenantID, userID),
		Code:         strings.ToUpper(code),
		Name:         name,
		Address:      address,
		City:         city,
		ContactName:  contactName,
		Phone:        phone,
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted. The default receiving flag is managed through set-default
// only.
func (w *Warehouse) ValidateUpdate(name string) error {
	return validateName(name)
}
