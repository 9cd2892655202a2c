package persistence

import (
	"gorm.io/gorm"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// NewEmployeeRepository creates the employee repository
func NewEmployeeRepository(db *gorm.DB) *GormVersionedRepository[masterdata.Employee] {
	return NewGormVersionedRepository[masterdata.Employee](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "name", "email", "department"},
		SortFields:    EmployeeSortFields,
		DefaultSort:   "code ASC",
		FilterColumns: map[string]bool{"department": true},
	})
}

// NewProjectRepository creates the project repository
func NewProjectRepository(db *gorm.DB) *GormVersionedRepository[masterdata.Project] {
	return NewGormVersionedRepository[masterdata.Project](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "name", "description"},
		SortFields:    ProjectSortFields,
		DefaultSort:   "code ASC",
	})
}

// NewTaxRateRepository creates the tax rate repository
func NewTaxRateRepository(db *gorm.DB) *GormVersionedRepository[masterdata.TaxRate] {
	return NewGormVersionedRepository[masterdata.TaxRate](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "name"},
		SortFields:    TaxRateSortFields,
		DefaultSort:   "valid_from DESC, code ASC",
	})
}

// NewTaxCodeRepository creates the tax code repository
func NewTaxCodeRepository(db *gorm.DB) *GormVersionedRepository[masterdata.TaxCode] {
	return NewGormVersionedRepository[masterdata.TaxCode](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "name", "description"},
		SortFields:    TaxCodeSortFields,
		DefaultSort:   "code ASC",
		FilterColumns: map[string]bool{"tax_rate_code": true},
	})
}

// NewCompanyBankAccountRepository creates the company bank account repository
func NewCompanyBankAccountRepository(db *gorm.DB) *GormVersionedRepository[masterdata.CompanyBankAccount] {
	return NewGormVersionedRepository[masterdata.CompanyBankAccount](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "bank_name", "branch_name"},
		SortFields:    CompanyBankAccountSortFields,
		DefaultSort:   "is_default DESC, code ASC",
		FilterColumns: map[string]bool{"account_type": true, "currency": true, "is_default": true},
		FlagColumn:    "is_default",
	})
}

// NewPayeeBankAccountRepository creates the payee bank account repository
func NewPayeeBankAccountRepository(db *gorm.DB) *GormVersionedRepository[masterdata.PayeeBankAccount] {
	return NewGormVersionedRepository[masterdata.PayeeBankAccount](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "payee_name", "bank_name"},
		SortFields:    PayeeBankAccountSortFields,
		DefaultSort:   "payee_name ASC, is_default DESC, code ASC",
		FilterColumns: map[string]bool{"payee_id": true, "is_default": true},
		FlagColumn:    "is_default",
	})
}

// NewWarehouseRepository creates the warehouse repository
func NewWarehouseRepository(db *gorm.DB) *GormVersionedRepository[masterdata.Warehouse] {
	return NewGormVersionedRepository[masterdata.Warehouse](db, VersionedRepositoryConfig{
		SearchColumns: []string{"code", "name", "address", "city"},
		SortFields:    WarehouseSortFields,
		DefaultSort:   "is_default_receiving DESC, code ASC",
		FilterColumns: map[string]bool{"city": true, "is_default_receiving": true},
		FlagColumn:    "is_default_receiving",
	})
}

// Interface conformance checks
var (
	_ shared.VersionedRepository[masterdata.Employee]            = (*GormVersionedRepository[masterdata.Employee])(nil)
	_ shared.DefaultableRepository[masterdata.CompanyBankAccount] = (*GormVersionedRepository[masterdata.CompanyBankAccount])(nil)
	_ shared.DefaultableRepository[masterdata.PayeeBankAccount]   = (*GormVersionedRepository[masterdata.PayeeBankAccount])(nil)
	_ shared.DefaultableRepository[masterdata.Warehouse]          = (*GormVersionedRepository[masterdata.Warehouse])(nil)
)
