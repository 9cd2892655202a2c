package shared

import (
	"time"

	"github.com/google/uuid"
)

// InitialVersion is the version assigned to every newly created record.
// Each successful mutation increments the version by exactly one.
const InitialVersion = 1

// Record is the base interface for all master data records.
type Record interface {
	GetID() uuid.UUID
	GetTenantID() uuid.UUID
	GetVersion() int
	Active() bool
}

// TenantRecord provides the common fields shared by every master data
// entity: identity, tenant scope, optimistic-lock version, lifecycle flag
// and audit columns. All mutations go through version-checked conditional
// updates, so the struct itself never touches Version outside creation.
type TenantRecord struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	TenantID  uuid.UUID `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Version   int       `gorm:"not null;default:1" json:"version"`
	IsActive  bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	CreatedBy uuid.UUID `gorm:"type:uuid" json:"created_by"`
	UpdatedBy uuid.UUID `gorm:"type:uuid" json:"updated_by"`
}

// GetID returns the record ID.
func (r *TenantRecord) GetID() uuid.UUID {
	return r.ID
}

// GetTenantID returns the owning tenant ID.
func (r *TenantRecord) GetTenantID() uuid.UUID {
	return r.TenantID
}

// GetVersion returns the optimistic-lock version.
func (r *TenantRecord) GetVersion() int {
	return r.Version
}

// Active reports whether the record is in the active lifecycle state.
func (r *TenantRecord) Active() bool {
	return r.IsActive
}

// NewTenantRecord creates a base record scoped to a tenant, stamped with
// the asserted user identity for the audit columns.
func NewTenantRecord(tenantID, userID uuid.UUID) TenantRecord {
	now := time.Now()
	return TenantRecord{
		ID:        uuid.New(),
		TenantID:  tenantID,
		Version:   InitialVersion,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
		CreatedBy: userID,
		UpdatedBy: userID,
	}
}
