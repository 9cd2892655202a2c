package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/masterdata/backend/internal/interfaces/http/dto"
)

// Identity headers asserted by the API gateway. The gateway authenticates
// the caller; this service only trusts and propagates the result.
const (
	HeaderTenantID = "X-Tenant-ID"
	HeaderUserID   = "X-User-ID"

	ContextTenantIDKey = "tenant_id"
	ContextUserIDKey   = "user_id"
)

// Identity requires the gateway identity headers on every request and
// stores the parsed IDs in the request context. Requests without a valid
// tenant and user are rejected with 401 before reaching any handler.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID, err := uuid.Parse(c.GetHeader(HeaderTenantID))
		if err != nil || tenantID == uuid.Nil {
			abortUnauthorized(c, "missing or invalid tenant identity")
			return
		}

		userID, err := uuid.Parse(c.GetHeader(HeaderUserID))
		if err != nil || userID == uuid.Nil {
			abortUnauthorized(c, "missing or invalid user identity")
			return
		}

		c.Set(ContextTenantIDKey, tenantID)
		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, message string) {
	requestID := c.GetString(RequestIDKey)
	c.AbortWithStatusJSON(dto.GetHTTPStatus("UNAUTHORIZED"),
		dto.NewErrorResponse("UNAUTHORIZED", message, requestID))
}

// TenantID returns the tenant asserted by the gateway for this request.
func TenantID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextTenantIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}

// UserID returns the acting user asserted by the gateway for this request.
func UserID(c *gin.Context) uuid.UUID {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok := v.(uuid.UUID); ok {
			return id
		}
	}
	return uuid.Nil
}
