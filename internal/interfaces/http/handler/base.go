package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/domain/shared"
	"github.com/masterdata/backend/internal/interfaces/http/dto"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
)

// BaseHandler provides the shared response helpers used by all handlers.
type BaseHandler struct{}

// Success sends a 200 response with the standard envelope.
func (h *BaseHandler) Success(c *gin.Context, data any) {
	c.JSON(http.StatusOK, dto.NewSuccessResponse(data))
}

// Created sends a 201 response with the standard envelope.
func (h *BaseHandler) Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, dto.NewSuccessResponse(data))
}

// SuccessWithMeta sends a 200 response carrying pagination metadata.
func (h *BaseHandler) SuccessWithMeta(c *gin.Context, data any, total int64, offset, limit int) {
	c.JSON(http.StatusOK, dto.NewSuccessResponseWithMeta(data, total, offset, limit))
}

// BadRequest sends a 400 response for malformed input.
func (h *BaseHandler) BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest,
		dto.NewErrorResponse(dto.ErrCodeBadRequest, message, c.GetString(middleware.RequestIDKey)))
}

// BindError sends a 400 response for a failed request binding, with
// per-field messages when the failure came from validation tags.
func (h *BaseHandler) BindError(c *gin.Context, err error) {
	h.BadRequest(c, middleware.FormatValidationError(err))
}

// HandleError maps a service error to the appropriate HTTP response.
// Domain errors carry their own code; anything else becomes a 500 with
// the detail kept out of the response body.
func (h *BaseHandler) HandleError(c *gin.Context, err error) {
	requestID := c.GetString(middleware.RequestIDKey)

	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(dto.GetHTTPStatus(domainErr.Code),
			dto.NewErrorResponse(domainErr.Code, domainErr.Message, requestID))
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError,
		dto.NewErrorResponse(dto.ErrCodeInternal, "internal server error", requestID))
}

// parseIDParam parses the :id path parameter as a UUID.
func (h *BaseHandler) parseIDParam(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid id")
		return uuid.Nil, false
	}
	return id, true
}

// identity pulls the tenant and acting user asserted by the gateway.
func (h *BaseHandler) identity(c *gin.Context) (tenantID, userID uuid.UUID) {
	return middleware.TenantID(c), middleware.UserID(c)
}
