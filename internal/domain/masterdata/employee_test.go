package masterdata

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterdata/backend/internal/domain/shared"
)

func TestNewEmployee(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	joinDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)

	t.Run("creates employee with valid input", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "EMP001", "Taro Yamada", "taro@example.com", "Sales", joinDate, nil)
		require.NoError(t, err)
		require.NotNil(t, emp)

		assert.NotEqual(t, uuid.Nil, emp.ID)
		assert.Equal(t, tenantID, emp.TenantID)
		assert.Equal(t, userID, emp.CreatedBy)
		assert.Equal(t, "EMP001", emp.Code)
		assert.Equal(t, "Taro Yamada", emp.Name)
		assert.Equal(t, "taro@example.com", emp.Email)
		assert.Equal(t, "Sales", emp.Department)
		assert.Equal(t, joinDate, emp.JoinDate)
		assert.Nil(t, emp.RetireDate)
		assert.Equal(t, shared.InitialVersion, emp.Version)
		assert.True(t, emp.IsActive)
	})

	t.Run("converts code to uppercase", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "emp001", "Taro Yamada", "", "", joinDate, nil)
		require.NoError(t, err)
		assert.Equal(t, "EMP001", emp.Code)
	})

	t.Run("allows empty email", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "EMP002", "Hanako Sato", "", "HR", joinDate, nil)
		require.NoError(t, err)
		assert.Empty(t, emp.Email)
	})

	t.Run("allows retire date equal to join date", func(t *testing.T) {
		retire := joinDate
		emp, err := NewEmployee(tenantID, userID, "EMP003", "Short Stay", "", "", joinDate, &retire)
		require.NoError(t, err)
		require.NotNil(t, emp.RetireDate)
	})

	t.Run("fails with empty code", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "", "Taro Yamada", "", "", joinDate, nil)
		assert.Nil(t, emp)
		requireDomainCode(t, err, "INVALID_CODE")
	})

	t.Run("fails with invalid characters in code", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "EMP@001", "Taro Yamada", "", "", joinDate, nil)
		assert.Nil(t, emp)
		requireDomainCode(t, err, "INVALID_CODE")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "EMP001", "", "", "", joinDate, nil)
		assert.Nil(t, emp)
		requireDomainCode(t, err, "INVALID_NAME")
	})

	t.Run("fails with malformed email", func(t *testing.T) {
		emp, err := NewEmployee(tenantID, userID, "EMP001", "Taro Yamada", "not-an-email", "", joinDate, nil)
		assert.Nil(t, emp)
		requireDomainCode(t, err, "INVALID_EMAIL_FORMAT")
	})

	t.Run("fails when retire date precedes join date", func(t *testing.T) {
		retire := joinDate.AddDate(0, 0, -1)
		emp, err := NewEmployee(tenantID, userID, "EMP001", "Taro Yamada", "", "", joinDate, &retire)
		assert.Nil(t, emp)
		requireDomainCode(t, err, "INVALID_DATE_RANGE")
	})

	t.Run("reports email error before date range error", func(t *testing.T) {
		retire := joinDate.AddDate(0, 0, -1)
		_, err := NewEmployee(tenantID, userID, "EMP001", "Taro Yamada", "bad-email", "", joinDate, &retire)
		requireDomainCode(t, err, "INVALID_EMAIL_FORMAT")
	})
}

func TestEmployee_ValidateUpdate(t *testing.T) {
	emp := createTestEmployee(t)
	joinDate := emp.JoinDate

	t.Run("accepts valid update", func(t *testing.T) {
		err := emp.ValidateUpdate("New Name", "new@example.com", joinDate, nil)
		assert.NoError(t, err)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		err := emp.ValidateUpdate("", "new@example.com", joinDate, nil)
		requireDomainCode(t, err, "INVALID_NAME")
	})

	t.Run("rejects malformed email", func(t *testing.T) {
		err := emp.ValidateUpdate("New Name", "nope", joinDate, nil)
		requireDomainCode(t, err, "INVALID_EMAIL_FORMAT")
	})

	t.Run("rejects inverted date range", func(t *testing.T) {
		retire := joinDate.AddDate(-1, 0, 0)
		err := emp.ValidateUpdate("New Name", "", joinDate, &retire)
		requireDomainCode(t, err, "INVALID_DATE_RANGE")
	})
}

func requireDomainCode(t *testing.T, err error, code string) {
	t.Helper()
	require.Error(t, err)
	var domainErr *shared.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, code, domainErr.Code)
}

func createTestEmployee(t *testing.T) *Employee {
	t.Helper()
	joinDate := time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)
	emp, err := NewEmployee(uuid.New(), uuid.New(), "EMP001", "Test Employee", "test@example.com", "Engineering", joinDate, nil)
	require.NoError(t, err)
	return emp
}
