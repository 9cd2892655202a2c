package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newIdentityRouter() (*gin.Engine, *struct{ tenantID, userID uuid.UUID }) {
	captured := &struct{ tenantID, userID uuid.UUID }{}
	r := gin.New()
	r.Use(RequestID(), Identity())
	r.GET("/probe", func(c *gin.Context) {
		captured.tenantID = TenantID(c)
		captured.userID = UserID(c)
		c.Status(http.StatusOK)
	})
	return r, captured
}

func TestIdentity(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("passes through with valid headers", func(t *testing.T) {
		r, captured := newIdentityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderTenantID, tenantID.String())
		req.Header.Set(HeaderUserID, userID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tenantID, captured.tenantID)
		assert.Equal(t, userID, captured.userID)
	})

	t.Run("rejects a missing tenant header", func(t *testing.T) {
		r, _ := newIdentityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderUserID, userID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
	})

	t.Run("rejects a missing user header", func(t *testing.T) {
		r, _ := newIdentityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderTenantID, tenantID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects malformed IDs", func(t *testing.T) {
		r, _ := newIdentityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderTenantID, "not-a-uuid")
		req.Header.Set(HeaderUserID, userID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		r, _ := newIdentityRouter()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set(HeaderTenantID, uuid.Nil.String())
		req.Header.Set(HeaderUserID, userID.String())
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestID())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	t.Run("generates an ID when absent", func(t *testing.T) {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
		assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
	})

	t.Run("reuses the caller's ID", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Request-ID", "trace-me")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		assert.Equal(t, "trace-me", w.Header().Get("X-Request-ID"))
	})
}
