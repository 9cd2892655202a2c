package masterdata

import (
	"strings"

	"github.com/google/uuid"
	"github.com/masterdata/backend/internal/domain/shared"
)

// Account types for company bank accounts
const (
	AccountTypeChecking = "checking"
	AccountTypeSavings  = "savings"
)

// CompanyBankAccount represents a bank account owned by the tenant company.
// At most one account per tenant carries the default flag.
type CompanyBankAccount struct {
	shared.TenantRecord
	Code          string `gorm:"type:varchar(50);not null" json:"code"`
	BankName      string `gorm:"type:varchar(200);not null" json:"bank_name"`
	BranchName    string `gorm:"type:varchar(200)" json:"branch_name"`
	AccountNumber string `gorm:"type:varchar(50);not null" json:"account_number"`
	AccountType   string `gorm:"type:varchar(20);not null" json:"account_type"`
	Currency      string `gorm:"type:varchar(3);not null" json:"currency"`
	IsDefault     bool   `gorm:"not null;default:false" json:"is_default"`
}

// TableName returns the table name for GORM
func (CompanyBankAccount) TableName() string {
	return "company_bank_accounts"
}

// NewCompanyBankAccount creates a new company bank account
func NewCompanyBankAccount(tenantID, userID uuid.UUID, code, bankName, branchName, accountNumber, accountType, currency string) (*CompanyBankAccount, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateName(bankName); err != nil {
		return nil, err
	}
	if err := validateAccountNumber(accountNumber); err != nil {
		return nil, err
	}
	if err := validateAccountType(accountType); err != nil {
		return nil, err
	}
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	return &CompanyBankAccount{
		TenantRecord:  shared.NewTenantRecord(tenantID, userID),
		Code:          strings.ToUpper(code),
		BankName:      bankName,
		BranchName:    branchName,
		AccountNumber: accountNumber,
		AccountType:   accountType,
		Currency:      strings.ToUpper(currency),
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted. The default flag is managed through set-default only.
func (a *CompanyBankAccount) ValidateUpdate(bankName, accountNumber, accountType, currency string) error {
	if err := validateName(bankName); err != nil {
		return err
	}
	if err := validateAccountNumber(accountNumber); err != nil {
		return err
	}
	if err := validateAccountType(accountType); err != nil {
		return err
	}
	return validateCurrency(currency)
}

// PayeeBankAccount represents a bank account registered for a payee. The
// default flag is scoped per payee, not per tenant.
type PayeeBankAccount struct {
	shared.TenantRecord
	Code          string    `gorm:"type:varchar(50);not null" json:"code"`
	PayeeID       uuid.UUID `gorm:"type:uuid;not null;index" json:"payee_id"`
	PayeeName     string    `gorm:"type:varchar(200);not null" json:"payee_name"`
	BankName      string    `gorm:"type:varchar(200);not null" json:"bank_name"`
	BranchName    string    `gorm:"type:varchar(200)" json:"branch_name"`
	AccountNumber string    `gorm:"type:varchar(50);not null" json:"account_number"`
	IsDefault     bool      `gorm:"not null;default:false" json:"is_default"`
}

// TableName returns the table name for GORM
func (PayeeBankAccount) TableName() string {
	return "payee_bank_accounts"
}

// NewPayeeBankAccount creates a new payee bank account
func NewPayeeBankAccount(tenantID, userID, payeeID uuid.UUID, code, payeeName, bankName, branchName, accountNumber string) (*PayeeBankAccount, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if payeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_PAYEE", "Payee ID is required")
	}
	if err := validateName(payeeName); err != nil {
		return nil, err
	}
	if err := validateName(bankName); err != nil {
		return nil, err
	}
	if err := validateAccountNumber(accountNumber); err != nil {
		return nil, err
	}

	return &PayeeBankAccount{
		TenantRecord:  shared.NewTenantRecord(tenantID, userID),
		Code:          strings.ToUpper(code),
		PayeeID:       payeeID,
		PayeeName:     payeeName,
		BankName:      bankName,
		BranchName:    branchName,
		AccountNumber: accountNumber,
	}, nil
}

// ValidateUpdate checks the mutable fields of an update before any write
// is attempted.
func (a *PayeeBankAccount) ValidateUpdate(payeeName, bankName, accountNumber string) error {
	if err := validateName(payeeName); err != nil {
		return err
	}
	if err := validateName(bankName); err != nil {
		return err
	}
	return validateAccountNumber(accountNumber)
}

func validateAccountNumber(number string) error {
	if number == "" {
		return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot be empty")
	}
	if len(number) > 50 {
		return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number cannot exceed 50 characters")
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return shared.NewDomainError("INVALID_ACCOUNT_NUMBER", "Account number can only contain digits")
		}
	}
	return nil
}

func validateAccountType(accountType string) error {
	switch accountType {
	case AccountTypeChecking, AccountTypeSavings:
		return nil
	default:
		return shared.NewDomainError("INVALID_ACCOUNT_TYPE", "Account type must be checking or savings")
	}
}

func validateCurrency(currency string) error {
	if len(currency) != 3 {
		return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter ISO code")
	}
	for _, r := range currency {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z')) {
			return shared.NewDomainError("INVALID_CURRENCY", "Currency must be a 3-letter ISO code")
		}
	}
	return nil
}
