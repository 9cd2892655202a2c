package masterdata

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCompanyBankAccount(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("creates account with valid input", func(t *testing.T) {
		acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "Mizuho Bank", "Tokyo Branch", "1234567", AccountTypeChecking, "jpy")
		require.NoError(t, err)
		require.NotNil(t, acc)

		assert.Equal(t, "MAIN", acc.Code)
		assert.Equal(t, "Mizuho Bank", acc.BankName)
		assert.Equal(t, "1234567", acc.AccountNumber)
		assert.Equal(t, AccountTypeChecking, acc.AccountType)
		assert.Equal(t, "JPY", acc.Currency)
		assert.False(t, acc.IsDefault)
	})

	t.Run("fails with non-numeric account number", func(t *testing.T) {
		acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "Mizuho Bank", "", "12-34567", AccountTypeChecking, "JPY")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_ACCOUNT_NUMBER")
	})

	t.Run("fails with unknown account type", func(t *testing.T) {
		acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "Mizuho Bank", "", "1234567", "fixed", "JPY")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_ACCOUNT_TYPE")
	})

	t.Run("fails with bad currency code", func(t *testing.T) {
		acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "Mizuho Bank", "", "1234567", AccountTypeSavings, "YEN1")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_CURRENCY")
	})

	t.Run("fails with empty bank name", func(t *testing.T) {
		acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "", "", "1234567", AccountTypeChecking, "JPY")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_NAME")
	})
}

func TestCompanyBankAccount_ValidateUpdate(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	acc, err := NewCompanyBankAccount(tenantID, userID, "MAIN", "Mizuho Bank", "", "1234567", AccountTypeChecking, "JPY")
	require.NoError(t, err)

	t.Run("accepts valid update", func(t *testing.T) {
		err := acc.ValidateUpdate("SMBC", "7654321", AccountTypeSavings, "USD")
		assert.NoError(t, err)
	})

	t.Run("rejects empty account number", func(t *testing.T) {
		err := acc.ValidateUpdate("SMBC", "", AccountTypeSavings, "USD")
		requireDomainCode(t, err, "INVALID_ACCOUNT_NUMBER")
	})
}

func TestNewPayeeBankAccount(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	payeeID := uuid.New()

	t.Run("creates account with valid input", func(t *testing.T) {
		acc, err := NewPayeeBankAccount(tenantID, userID, payeeID, "SUPP01-MAIN", "Acme Supplies", "MUFG Bank", "Osaka Branch", "7654321")
		require.NoError(t, err)
		require.NotNil(t, acc)

		assert.Equal(t, "SUPP01-MAIN", acc.Code)
		assert.Equal(t, payeeID, acc.PayeeID)
		assert.Equal(t, "Acme Supplies", acc.PayeeName)
		assert.False(t, acc.IsDefault)
	})

	t.Run("fails with nil payee", func(t *testing.T) {
		acc, err := NewPayeeBankAccount(tenantID, userID, uuid.Nil, "SUPP01-MAIN", "Acme Supplies", "MUFG Bank", "", "7654321")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_PAYEE")
	})

	t.Run("fails with empty payee name", func(t *testing.T) {
		acc, err := NewPayeeBankAccount(tenantID, userID, payeeID, "SUPP01-MAIN", "", "MUFG Bank", "", "7654321")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_NAME")
	})

	t.Run("fails with non-numeric account number", func(t *testing.T) {
		acc, err := NewPayeeBankAccount(tenantID, userID, payeeID, "SUPP01-MAIN", "Acme Supplies", "MUFG Bank", "", "76A4321")
		assert.Nil(t, acc)
		requireDomainCode(t, err, "INVALID_ACCOUNT_NUMBER")
	})
}

func TestValidateCurrency(t *testing.T) {
	tests := []struct {
		currency string
		valid    bool
	}{
		{"JPY", true},
		{"usd", true},
		{"EUR", true},
		{"JP", false},
		{"JPYY", false},
		{"J1Y", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.currency, func(t *testing.T) {
			err := validateCurrency(tt.currency)
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
