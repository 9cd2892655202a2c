package masterdata

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxRate(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	validFrom := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates tax rate with valid input", func(t *testing.T) {
		rate, err := NewTaxRate(tenantID, userID, "VAT10", "Standard VAT", decimal.NewFromInt(10), validFrom, nil)
		require.NoError(t, err)
		require.NotNil(t, rate)

		assert.Equal(t, "VAT10", rate.Code)
		assert.True(t, rate.RatePercent.Equal(decimal.NewFromInt(10)))
		assert.Equal(t, validFrom, rate.ValidFrom)
		assert.Nil(t, rate.ValidTo)
	})

	t.Run("allows zero rate", func(t *testing.T) {
		rate, err := NewTaxRate(tenantID, userID, "EXEMPT", "Exempt", decimal.Zero, validFrom, nil)
		require.NoError(t, err)
		assert.True(t, rate.RatePercent.IsZero())
	})

	t.Run("allows rate of exactly 100", func(t *testing.T) {
		_, err := NewTaxRate(tenantID, userID, "FULL", "Full Rate", decimal.NewFromInt(100), validFrom, nil)
		assert.NoError(t, err)
	})

	t.Run("allows fractional rate", func(t *testing.T) {
		rate, err := NewTaxRate(tenantID, userID, "REDUCED", "Reduced Rate", decimal.RequireFromString("8.1250"), validFrom, nil)
		require.NoError(t, err)
		assert.True(t, rate.RatePercent.Equal(decimal.RequireFromString("8.125")))
	})

	t.Run("fails with negative rate", func(t *testing.T) {
		rate, err := NewTaxRate(tenantID, userID, "NEG", "Negative", decimal.NewFromInt(-1), validFrom, nil)
		assert.Nil(t, rate)
		requireDomainCode(t, err, "INVALID_RATE")
	})

	t.Run("fails with rate above 100", func(t *testing.T) {
		rate, err := NewTaxRate(tenantID, userID, "BIG", "Too Big", decimal.RequireFromString("100.0001"), validFrom, nil)
		assert.Nil(t, rate)
		requireDomainCode(t, err, "INVALID_RATE")
	})

	t.Run("fails with inverted validity window", func(t *testing.T) {
		validTo := validFrom.AddDate(0, 0, -1)
		rate, err := NewTaxRate(tenantID, userID, "VAT10", "Standard VAT", decimal.NewFromInt(10), validFrom, &validTo)
		assert.Nil(t, rate)
		requireDomainCode(t, err, "INVALID_DATE_RANGE")
	})

	t.Run("reports rate error before date range error", func(t *testing.T) {
		validTo := validFrom.AddDate(0, 0, -1)
		_, err := NewTaxRate(tenantID, userID, "VAT10", "Standard VAT", decimal.NewFromInt(-5), validFrom, &validTo)
		requireDomainCode(t, err, "INVALID_RATE")
	})
}

func TestTaxRate_ValidateUpdate(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	validFrom := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)

	rate, err := NewTaxRate(tenantID, userID, "VAT10", "Standard VAT", decimal.NewFromInt(10), validFrom, nil)
	require.NoError(t, err)

	t.Run("accepts valid update", func(t *testing.T) {
		err := rate.ValidateUpdate("Renamed VAT", decimal.NewFromInt(8), validFrom, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects out of range rate", func(t *testing.T) {
		err := rate.ValidateUpdate("Renamed VAT", decimal.NewFromInt(101), validFrom, nil)
		requireDomainCode(t, err, "INVALID_RATE")
	})
}

func TestNewTaxCode(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("creates tax code with valid input", func(t *testing.T) {
		tc, err := NewTaxCode(tenantID, userID, "TC01", "Domestic Sales", "Standard domestic sales tax", "vat10")
		require.NoError(t, err)
		require.NotNil(t, tc)

		assert.Equal(t, "TC01", tc.Code)
		assert.Equal(t, "VAT10", tc.TaxRateCode)
		assert.Equal(t, "Standard domestic sales tax", tc.Description)
	})

	t.Run("allows empty tax rate code", func(t *testing.T) {
		tc, err := NewTaxCode(tenantID, userID, "TC02", "Unassigned", "", "")
		require.NoError(t, err)
		assert.Empty(t, tc.TaxRateCode)
	})

	t.Run("fails with malformed tax rate code", func(t *testing.T) {
		tc, err := NewTaxCode(tenantID, userID, "TC03", "Bad Ref", "", "VAT 10")
		assert.Nil(t, tc)
		requireDomainCode(t, err, "INVALID_CODE")
	})
}
