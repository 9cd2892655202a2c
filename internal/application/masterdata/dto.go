package masterdata

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// ListParams carries the query options of every list endpoint. Offsets
// are zero-based; the BFF translates page numbers before calling in.
type ListParams struct {
	Offset          int    `form:"offset" binding:"omitempty,min=0"`
	Limit           int    `form:"limit" binding:"omitempty,min=1,max=200"`
	OrderBy         string `form:"order_by"`
	OrderDir        string `form:"order_dir"`
	Search          string `form:"search"`
	IncludeInactive bool   `form:"include_inactive"`
}

func (p ListParams) toFilter() shared.Filter {
	filter := shared.DefaultFilter()
	filter.Offset = p.Offset
	if p.Limit > 0 {
		filter.Limit = p.Limit
	}
	filter.OrderBy = p.OrderBy
	filter.OrderDir = p.OrderDir
	filter.Search = p.Search
	filter.IncludeInactive = p.IncludeInactive
	return filter
}

// VersionedRequest is embedded by every mutating request; the client must
// echo the version it last read.
type VersionedRequest struct {
	Version int `json:"version" binding:"required,min=1"`
}

// --- Employee ---

type CreateEmployeeRequest struct {
	Code       string     `json:"code" binding:"required"`
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	JoinDate   time.Time  `json:"join_date" binding:"required"`
	RetireDate *time.Time `json:"retire_date"`
}

type UpdateEmployeeRequest struct {
	VersionedRequest
	Name       string     `json:"name" binding:"required"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	JoinDate   time.Time  `json:"join_date" binding:"required"`
	RetireDate *time.Time `json:"retire_date"`
}

type EmployeeResponse struct {
	ID         uuid.UUID  `json:"id"`
	Code       string     `json:"code"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Department string     `json:"department"`
	JoinDate   time.Time  `json:"join_date"`
	RetireDate *time.Time `json:"retire_date"`
	Version    int        `json:"version"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

func ToEmployeeResponse(e *masterdata.Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:         e.ID,
		Code:       e.Code,
		Name:       e.Name,
		Email:      e.Email,
		Department: e.Department,
		JoinDate:   e.JoinDate,
		RetireDate: e.RetireDate,
		Version:    e.Version,
		IsActive:   e.IsActive,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

// --- Project ---

type CreateProjectRequest struct {
	Code         string     `json:"code" binding:"required"`
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	PlannedStart *time.Time `json:"planned_start"`
	PlannedEnd   *time.Time `json:"planned_end"`
	ActualStart  *time.Time `json:"actual_start"`
	ActualEnd    *time.Time `json:"actual_end"`
}

type UpdateProjectRequest struct {
	VersionedRequest
	Name         string     `json:"name" binding:"required"`
	Description  string     `json:"description"`
	PlannedStart *time.Time `json:"planned_start"`
	PlannedEnd   *time.Time `json:"planned_end"`
	ActualStart  *time.Time `json:"actual_start"`
	ActualEnd    *time.Time `json:"actual_end"`
}

type ProjectResponse struct {
	ID           uuid.UUID  `json:"id"`
	Code         string     `json:"code"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	PlannedStart *time.Time `json:"planned_start"`
	PlannedEnd   *time.Time `json:"planned_end"`
	ActualStart  *time.Time `json:"actual_start"`
	ActualEnd    *time.Time `json:"actual_end"`
	Version      int        `json:"version"`
	IsActive     bool       `json:"is_active"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func ToProjectResponse(p *masterdata.Project) ProjectResponse {
	return ProjectResponse{
		ID:           p.ID,
		Code:         p.Code,
		Name:         p.Name,
		Description:  p.Description,
		PlannedStart: p.PlannedStart,
		PlannedEnd:   p.PlannedEnd,
		ActualStart:  p.ActualStart,
		ActualEnd:    p.ActualEnd,
		Version:      p.Version,
		IsActive:     p.IsActive,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// --- TaxRate ---

type CreateTaxRateRequest struct {
	Code        string          `json:"code" binding:"required"`
	Name        string          `json:"name" binding:"required"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	ValidFrom   time.Time       `json:"valid_from" binding:"required"`
	ValidTo     *time.Time      `json:"valid_to"`
}

type UpdateTaxRateRequest struct {
	VersionedRequest
	Name        string          `json:"name" binding:"required"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	ValidFrom   time.Time       `json:"valid_from" binding:"required"`
	ValidTo     *time.Time      `json:"valid_to"`
}

type TaxRateResponse struct {
	ID          uuid.UUID       `json:"id"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	RatePercent decimal.Decimal `json:"rate_percent"`
	ValidFrom   time.Time       `json:"valid_from"`
	ValidTo     *time.Time      `json:"valid_to"`
	Version     int             `json:"version"`
	IsActive    bool            `json:"is_active"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func ToTaxRateResponse(r *masterdata.TaxRate) TaxRateResponse {
	return TaxRateResponse{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		RatePercent: r.RatePercent,
		ValidFrom:   r.ValidFrom,
		ValidTo:     r.ValidTo,
		Version:     r.Version,
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// --- TaxCode ---

type CreateTaxCodeRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TaxRateCode string `json:"tax_rate_code"`
}

type UpdateTaxCodeRequest struct {
	VersionedRequest
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	TaxRateCode string `json:"tax_rate_code"`
}

type TaxCodeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	TaxRateCode string    `json:"tax_rate_code"`
	Version     int       `json:"version"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToTaxCodeResponse(c *masterdata.TaxCode) TaxCodeResponse {
	return TaxCodeResponse{
		ID:          c.ID,
		Code:        c.Code,
		Name:        c.Name,
		Description: c.Description,
		TaxRateCode: c.TaxRateCode,
		Version:     c.Version,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// --- CompanyBankAccount ---

type CreateCompanyBankAccountRequest struct {
	Code          string `json:"code" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	BranchName    string `json:"branch_name"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountType   string `json:"account_type" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
}

type UpdateCompanyBankAccountRequest struct {
	VersionedRequest
	BankName      string `json:"bank_name" binding:"required"`
	BranchName    string `json:"branch_name"`
	AccountNumber string `json:"account_number" binding:"required"`
	AccountType   string `json:"account_type" binding:"required"`
	Currency      string `json:"currency" binding:"required"`
}

type CompanyBankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	BankName      string    `json:"bank_name"`
	BranchName    string    `json:"branch_name"`
	AccountNumber string    `json:"account_number"`
	AccountType   string    `json:"account_type"`
	Currency      string    `json:"currency"`
	IsDefault     bool      `json:"is_default"`
	Version       int       `json:"version"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToCompanyBankAccountResponse(a *masterdata.CompanyBankAccount) CompanyBankAccountResponse {
	return CompanyBankAccountResponse{
		ID:            a.ID,
		Code:          a.Code,
		BankName:      a.BankName,
		BranchName:    a.BranchName,
		AccountNumber: a.AccountNumber,
		AccountType:   a.AccountType,
		Currency:      a.Currency,
		IsDefault:     a.IsDefault,
		Version:       a.Version,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// SetDefaultResponse returns both sides of a default-flag change so the
// caller can refresh its view without another round trip.
type SetDefaultResponse[T any] struct {
	Updated  T  `json:"updated"`
	Previous *T `json:"previous"`
}

// --- PayeeBankAccount ---

type CreatePayeeBankAccountRequest struct {
	Code          string    `json:"code" binding:"required"`
	PayeeID       uuid.UUID `json:"payee_id" binding:"required"`
	PayeeName     string    `json:"payee_name" binding:"required"`
	BankName      string    `json:"bank_name" binding:"required"`
	BranchName    string    `json:"branch_name"`
	AccountNumber string    `json:"account_number" binding:"required"`
}

type UpdatePayeeBankAccountRequest struct {
	VersionedRequest
	PayeeName     string `json:"payee_name" binding:"required"`
	BankName      string `json:"bank_name" binding:"required"`
	BranchName    string `json:"branch_name"`
	AccountNumber string `json:"account_number" binding:"required"`
}

type PayeeBankAccountResponse struct {
	ID            uuid.UUID `json:"id"`
	Code          string    `json:"code"`
	PayeeID       uuid.UUID `json:"payee_id"`
	PayeeName     string    `json:"payee_name"`
	BankName      string    `json:"bank_name"`
	BranchName    string    `json:"branch_name"`
	AccountNumber string    `json:"account_number"`
	IsDefault     bool      `json:"is_default"`
	Version       int       `json:"version"`
	IsActive      bool      `json:"is_active"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToPayeeBankAccountResponse(a *masterdata.PayeeBankAccount) PayeeBankAccountResponse {
	return PayeeBankAccountResponse{
		ID:            a.ID,
		Code:          a.Code,
		PayeeID:       a.PayeeID,
		PayeeName:     a.PayeeName,
		BankName:      a.BankName,
		BranchName:    a.BranchName,
		AccountNumber: a.AccountNumber,
		IsDefault:     a.IsDefault,
		Version:       a.Version,
		IsActive:      a.IsActive,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

// --- Warehouse ---

type CreateWarehouseRequest struct {
	Code        string `json:"code" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

type UpdateWarehouseRequest struct {
	VersionedRequest
	Name        string `json:"name" binding:"required"`
	Address     string `json:"address"`
	City        string `json:"city"`
	ContactName string `json:"contact_name"`
	Phone       string `json:"phone"`
}

type WarehouseResponse struct {
	ID                 uuid.UUID `json:"id"`
	Code               string    `json:"code"`
	Name               string    `json:"name"`
	Address            string    `json:"address"`
	City               string    `json:"city"`
	ContactName        string    `json:"contact_name"`
	Phone              string    `json:"phone"`
	IsDefaultReceiving bool      `json:"is_default_receiving"`
	Version            int       `json:"version"`
	IsActive           bool      `json:"is_active"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

func ToWarehouseResponse(w *masterdata.Warehouse) WarehouseResponse {
	return WarehouseResponse{
		ID:                 w.ID,
		Code:               w.Code,
		Name:               w.Name,
		Address:            w.Address,
		City:               w.City,
		ContactName:        w.ContactName,
		Phone:              w.Phone,
		IsDefaultReceiving: w.IsDefaultReceiving,
		Version:            w.Version,
		IsActive:           w.IsActive,
		CreatedAt:          w.CreatedAt,
		UpdatedAt:          w.UpdatedAt,
	}
}

func mapResponses[T any, R any](records []T, convert func(*T) R) []R {
	responses := make([]R, len(records))
	for i := range records {
		responses[i] = convert(&records[i])
	}
	return responses
}
