package masterdata

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/domain/shared"
)

func newPayeeAccountFixture(t *testing.T, tenantID, payeeID uuid.UUID, code string) *masterdata.PayeeBankAccount {
	t.Helper()
	acc, err := masterdata.NewPayeeBankAccount(tenantID, uuid.New(), payeeID, code, "Acme Supplies", "MUFG Bank", "", "7654321")
	require.NoError(t, err)
	return acc
}

func TestPayeeBankAccountService_SetDefault(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()
	payeeID := uuid.New()

	t.Run("scopes the promotion to the account's payee", func(t *testing.T) {
		repo := new(mockRepository[masterdata.PayeeBankAccount])
		service := NewPayeeBankAccountService(repo)

		target := newPayeeAccountFixture(t, tenantID, payeeID, "ACC2")
		promoted := newPayeeAccountFixture(t, tenantID, payeeID, "ACC2")
		promoted.IsDefault = true
		promoted.Version = 2
		demoted := newPayeeAccountFixture(t, tenantID, payeeID, "ACC1")

		repo.On("FindByIDForTenant", mock.Anything, tenantID, target.ID).Return(target, nil)
		repo.On("SetDefaultWithVersion", mock.Anything, tenantID, target.ID, 1, userID, mock.MatchedBy(func(scope map[string]any) bool {
			return scope["payee_id"] == payeeID
		})).Return(promoted, demoted, nil)

		resp, err := service.SetDefault(ctx, tenantID, userID, target.ID, 1)
		require.NoError(t, err)
		assert.True(t, resp.Updated.IsDefault)
		require.NotNil(t, resp.Previous)
		assert.Equal(t, "ACC1", resp.Previous.Code)
		repo.AssertExpectations(t)
	})

	t.Run("omits previous when the payee had no default", func(t *testing.T) {
		repo := new(mockRepository[masterdata.PayeeBankAccount])
		service := NewPayeeBankAccountService(repo)

		target := newPayeeAccountFixture(t, tenantID, payeeID, "ACC1")
		promoted := newPayeeAccountFixture(t, tenantID, payeeID, "ACC1")
		promoted.IsDefault = true

		repo.On("FindByIDForTenant", mock.Anything, tenantID, target.ID).Return(target, nil)
		repo.On("SetDefaultWithVersion", mock.Anything, tenantID, target.ID, 1, userID, mock.Anything).Return(promoted, nil, nil)

		resp, err := service.SetDefault(ctx, tenantID, userID, target.ID, 1)
		require.NoError(t, err)
		assert.Nil(t, resp.Previous)
	})

	t.Run("maps a stale promotion to version conflict", func(t *testing.T) {
		repo := new(mockRepository[masterdata.PayeeBankAccount])
		service := NewPayeeBankAccountService(repo)

		target := newPayeeAccountFixture(t, tenantID, payeeID, "ACC1")
		repo.On("FindByIDForTenant", mock.Anything, tenantID, target.ID).Return(target, nil)
		repo.On("SetDefaultWithVersion", mock.Anything, tenantID, target.ID, 9, userID, mock.Anything).Return(nil, nil, shared.ErrStaleRecord)

		_, err := service.SetDefault(ctx, tenantID, userID, target.ID, 9)
		assert.Equal(t, shared.ErrVersionConflict, err)
	})

	t.Run("returns not found for a missing account", func(t *testing.T) {
		repo := new(mockRepository[masterdata.PayeeBankAccount])
		service := NewPayeeBankAccountService(repo)

		id := uuid.New()
		repo.On("FindByIDForTenant", mock.Anything, tenantID, id).Return(nil, shared.ErrNotFound)

		_, err := service.SetDefault(ctx, tenantID, userID, id, 1)
		assert.Equal(t, shared.ErrNotFound, err)
	})
}

func TestCompanyBankAccountService_Create(t *testing.T) {
	ctx := context.Background()
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("rejects an unknown account type before touching the repository", func(t *testing.T) {
		repo := new(mockRepository[masterdata.CompanyBankAccount])
		service := NewCompanyBankAccountService(repo)

		_, err := service.Create(ctx, tenantID, userID, CreateCompanyBankAccountRequest{
			Code:          "MAIN",
			BankName:      "Mizuho Bank",
			AccountNumber: "1234567",
			AccountType:   "offshore",
			Currency:      "JPY",
		})
		assert.Equal(t, "INVALID_ACCOUNT_TYPE", domainCode(t, err))
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("creates account with normalized currency", func(t *testing.T) {
		repo := new(mockRepository[masterdata.CompanyBankAccount])
		service := NewCompanyBankAccountService(repo)

		repo.On("ExistsByCodeForTenant", mock.Anything, tenantID, "MAIN", uuid.Nil).Return(false, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*masterdata.CompanyBankAccount")).Return(nil)

		resp, err := service.Create(ctx, tenantID, userID, CreateCompanyBankAccountRequest{
			Code:          "main",
			BankName:      "Mizuho Bank",
			AccountNumber: "1234567",
			AccountType:   masterdata.AccountTypeChecking,
			Currency:      "jpy",
		})
		require.NoError(t, err)
		assert.Equal(t, "MAIN", resp.Code)
		assert.Equal(t, "JPY", resp.Currency)
		assert.False(t, resp.IsDefault)
	})
}
