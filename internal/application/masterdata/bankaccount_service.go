package masterdata

import (
	"context"

	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

// CompanyBankAccountService handles company bank account operations. The
// default flag is exclusive per tenant.
type CompanyBankAccountService struct {
	core defaultableCore[masterdata.CompanyBankAccount]
}

// NewCompanyBankAccountService creates a new CompanyBankAccountService
func NewCompanyBankAccountService(repo shared.DefaultableRepository[masterdata.CompanyBankAccount]) *CompanyBankAccountService {
	return &CompanyBankAccountService{core: newDefaultableCore("company_bank_account", repo)}
}

// Create creates a new company bank account
func (s *CompanyBankAccountService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreateCompanyBankAccountRequest) (*CompanyBankAccountResponse, error) {
	acc, err := masterdata.NewCompanyBankAccount(tenantID, userID, req.Code, req.BankName, req.BranchName, req.AccountNumber, req.AccountType, req.Currency)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, acc.Code, acc); err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(acc)
	return &response, nil
}

// GetByID retrieves a company bank account by ID
func (s *CompanyBankAccountService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*CompanyBankAccountResponse, error) {
	acc, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(acc)
	return &response, nil
}

// GetByCode retrieves a company bank account by business code
func (s *CompanyBankAccountService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*CompanyBankAccountResponse, error) {
	acc, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(acc)
	return &response, nil
}

// List retrieves one page of company bank accounts plus the total count
func (s *CompanyBankAccountService) List(ctx context.Context, tenantID uuid.UUID, params ListParams) ([]CompanyBankAccountResponse, int64, error) {
	records, total, err := s.core.list(ctx, tenantID, params.toFilter())
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToCompanyBankAccountResponse), total, nil
}

// Update applies a version-checked update to a company bank account.
// The default flag is not touched here; use SetDefault.
func (s *CompanyBankAccountService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdateCompanyBankAccountRequest) (*CompanyBankAccountResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(a *masterdata.CompanyBankAccount) error {
			return a.ValidateUpdate(req.BankName, req.AccountNumber, req.AccountType, req.Currency)
		},
		map[string]any{
			"bank_name":      req.BankName,
			"branch_name":    req.BranchName,
			"account_number": req.AccountNumber,
			"account_type":   req.AccountType,
			"currency":       req.Currency,
			"updated_by":     userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(updated)
	return &response, nil
}

// SetDefault atomically makes this account the tenant's default and
// demotes the previous default, if any.
func (s *CompanyBankAccountService) SetDefault(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*SetDefaultResponse[CompanyBankAccountResponse], error) {
	if _, err := s.core.get(ctx, tenantID, id); err != nil {
		return nil, err
	}
	updated, previous, err := s.core.setDefault(ctx, tenantID, id, version, userID, nil)
	if err != nil {
		return nil, err
	}
	response := &SetDefaultResponse[CompanyBankAccountResponse]{
		Updated: ToCompanyBankAccountResponse(updated),
	}
	if previous != nil {
		prev := ToCompanyBankAccountResponse(previous)
		response.Previous = &prev
	}
	return response, nil
}

// Deactivate marks a company bank account inactive
func (s *CompanyBankAccountService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*CompanyBankAccountResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(updated)
	return &response, nil
}

// Activate marks a company bank account active again
func (s *CompanyBankAccountService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*CompanyBankAccountResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToCompanyBankAccountResponse(updated)
	return &response, nil
}

// PayeeBankAccountService handles payee bank account operations. The
// default flag is exclusive per (tenant, payee), not per tenant.
type PayeeBankAccountService struct {
	core defaultableCore[masterdata.PayeeBankAccount]
}

// NewPayeeBankAccountService creates a new PayeeBankAccountService
func NewPayeeBankAccountService(repo shared.DefaultableRepository[masterdata.PayeeBankAccount]) *PayeeBankAccountService {
	return &PayeeBankAccountService{core: newDefaultableCore("payee_bank_account", repo)}
}

// Create creates a new payee bank account
func (s *PayeeBankAccountService) Create(ctx context.Context, tenantID, userID uuid.UUID, req CreatePayeeBankAccountRequest) (*PayeeBankAccountResponse, error) {
	acc, err := masterdata.NewPayeeBankAccount(tenantID, userID, req.PayeeID, req.Code, req.PayeeName, req.BankName, req.BranchName, req.AccountNumber)
	if err != nil {
		return nil, err
	}
	if err := s.core.create(ctx, tenantID, acc.Code, acc); err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(acc)
	return &response, nil
}

// GetByID retrieves a payee bank account by ID
func (s *PayeeBankAccountService) GetByID(ctx context.Context, tenantID, id uuid.UUID) (*PayeeBankAccountResponse, error) {
	acc, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(acc)
	return &response, nil
}

// GetByCode retrieves a payee bank account by business code
func (s *PayeeBankAccountService) GetByCode(ctx context.Context, tenantID uuid.UUID, code string) (*PayeeBankAccountResponse, error) {
	acc, err := s.core.getByCode(ctx, tenantID, code)
	if err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(acc)
	return &response, nil
}

// List retrieves one page of payee bank accounts plus the total count,
// optionally narrowed to a single payee.
func (s *PayeeBankAccountService) List(ctx context.Context, tenantID uuid.UUID, params ListParams, payeeID uuid.UUID) ([]PayeeBankAccountResponse, int64, error) {
	filter := params.toFilter()
	if payeeID != uuid.Nil {
		filter.Filters["payee_id"] = payeeID
	}
	records, total, err := s.core.list(ctx, tenantID, filter)
	if err != nil {
		return nil, 0, err
	}
	return mapResponses(records, ToPayeeBankAccountResponse), total, nil
}

// Update applies a version-checked update to a payee bank account. The
// payee reference and default flag are immutable here.
func (s *PayeeBankAccountService) Update(ctx context.Context, tenantID, userID, id uuid.UUID, req UpdatePayeeBankAccountRequest) (*PayeeBankAccountResponse, error) {
	updated, err := s.core.update(ctx, tenantID, id, req.Version,
		func(a *masterdata.PayeeBankAccount) error {
			return a.ValidateUpdate(req.PayeeName, req.BankName, req.AccountNumber)
		},
		map[string]any{
			"payee_name":     req.PayeeName,
			"bank_name":      req.BankName,
			"branch_name":    req.BranchName,
			"account_number": req.AccountNumber,
			"updated_by":     userID,
		})
	if err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(updated)
	return &response, nil
}

// SetDefault atomically makes this account the payee's default and
// demotes the payee's previous default, if any. Accounts of other payees
// are never touched.
func (s *PayeeBankAccountService) SetDefault(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*SetDefaultResponse[PayeeBankAccountResponse], error) {
	acc, err := s.core.get(ctx, tenantID, id)
	if err != nil {
		return nil, err
	}
	updated, previous, err := s.core.setDefault(ctx, tenantID, id, version, userID, map[string]any{
		"payee_id": acc.PayeeID,
	})
	if err != nil {
		return nil, err
	}
	response := &SetDefaultResponse[PayeeBankAccountResponse]{
		Updated: ToPayeeBankAccountResponse(updated),
	}
	if previous != nil {
		prev := ToPayeeBankAccountResponse(previous)
		response.Previous = &prev
	}
	return response, nil
}

// Deactivate marks a payee bank account inactive
func (s *PayeeBankAccountService) Deactivate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*PayeeBankAccountResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, false)
	if err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(updated)
	return &response, nil
}

// Activate marks a payee bank account active again
func (s *PayeeBankAccountService) Activate(ctx context.Context, tenantID, userID, id uuid.UUID, version int) (*PayeeBankAccountResponse, error) {
	updated, err := s.core.setActive(ctx, tenantID, id, version, userID, true)
	if err != nil {
		return nil, err
	}
	response := ToPayeeBankAccountResponse(updated)
	return &response, nil
}
