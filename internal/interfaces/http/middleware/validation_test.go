package middleware

import (
	"errors"
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validationProbe struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
	Size  int    `json:"size" binding:"omitempty,min=1,max=100"`
}

func TestFormatValidationError(t *testing.T) {
	SetupValidator()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)

	t.Run("reports json field names", func(t *testing.T) {
		err := v.Struct(validationProbe{Email: "nope"})
		require.Error(t, err)

		msg := FormatValidationError(err)
		assert.Contains(t, msg, "name: this field is required")
		assert.Contains(t, msg, "email: invalid email format")
	})

	t.Run("reports range bounds", func(t *testing.T) {
		err := v.Struct(validationProbe{Name: "x", Size: 500})
		require.Error(t, err)
		assert.Contains(t, FormatValidationError(err), "size: must be at most 100")
	})

	t.Run("passes through non-validator errors", func(t *testing.T) {
		err := errors.New("unexpected EOF")
		assert.Equal(t, "unexpected EOF", FormatValidationError(err))
	})
}
