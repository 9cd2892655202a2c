package persistence

import (
	"strings"
)

// ValidateSortOrder validates and normalizes the sort order to ASC or DESC.
// Returns "ASC" as the default if the input is invalid or empty.
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "DESC" {
		return "DESC"
	}
	return "ASC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields. Returns the defaultField if the input is empty or not in the
// whitelist; an unknown field silently falls back rather than erroring.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"updated_at":  true,
	"code":        true,
	"name":        true,
	"email":       true,
	"department":  true,
	"join_date":   true,
	"retire_date": true,
}

// ProjectSortFields contains allowed sort fields for projects
var ProjectSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"code":          true,
	"name":          true,
	"planned_start": true,
	"planned_end":   true,
	"actual_start":  true,
	"actual_end":    true,
}

// TaxRateSortFields contains allowed sort fields for tax rates
var TaxRateSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"name":         true,
	"rate_percent": true,
	"valid_from":   true,
	"valid_to":     true,
}

// TaxCodeSortFields contains allowed sort fields for tax codes
var TaxCodeSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"code":          true,
	"name":          true,
	"tax_rate_code": true,
}

// CompanyBankAccountSortFields contains allowed sort fields for company bank accounts
var CompanyBankAccountSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"code":         true,
	"bank_name":    true,
	"branch_name":  true,
	"account_type": true,
	"currency":     true,
	"is_default":   true,
}

// PayeeBankAccountSortFields contains allowed sort fields for payee bank accounts
var PayeeBankAccountSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"payee_name": true,
	"bank_name":  true,
	"is_default": true,
}

// WarehouseSortFields contains allowed sort fields for warehouses
var WarehouseSortFields = map[string]bool{
	"id":                   true,
	"created_at":           true,
	"updated_at":           true,
	"code":                 true,
	"name":                 true,
	"city":                 true,
	"contact_name":         true,
	"is_default_receiving": true,
}
