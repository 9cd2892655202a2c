package bff

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/masterdata/backend/internal/infrastructure/config"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// fakeDomainAPI records the last request it received and replies with a
// canned body.
type fakeDomainAPI struct {
	server   *httptest.Server
	lastPath string
	lastReq  *http.Request
	status   int
	body     string
}

func newFakeDomainAPI(t *testing.T, status int, body string) *fakeDomainAPI {
	t.Helper()
	f := &fakeDomainAPI{status: status, body: body}
	f.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lastPath = r.URL.Path
		f.lastReq = r.Clone(r.Context())
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(f.status)
		_, _ = w.Write([]byte(f.body))
	}))
	t.Cleanup(f.server.Close)
	return f
}

func newProxyRouter(upstreamURL string) *gin.Engine {
	cfg := config.BFFConfig{
		DomainAPIURL:    upstreamURL,
		RequestTimeout:  5 * time.Second,
		DefaultPageSize: 20,
		MaxPageSize:     100,
	}
	client := NewClient(cfg)
	proxy := NewResourceProxy(client, "employees", []string{"department"}, nil, cfg.DefaultPageSize, cfg.MaxPageSize)

	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Identity())
	grp := r.Group("/api/v1/master-data")
	proxy.RegisterRoutes(grp)
	return r
}

func identityHeaders(req *http.Request, tenantID, userID uuid.UUID) {
	req.Header.Set(middleware.HeaderTenantID, tenantID.String())
	req.Header.Set(middleware.HeaderUserID, userID.String())
}

func TestResourceProxyList(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("translates page params and rewrites meta", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusOK,
			`{"success":true,"data":[{"code":"EMP001"}],"meta":{"total":41,"offset":20,"limit":10}}`)
		r := newProxyRouter(upstream.server.URL)

		req := httptest.NewRequest(http.MethodGet,
			"/api/v1/master-data/employees?page=3&page_size=10&sort=name&order=DESC&department=Sales", nil)
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/api/v1/master-data/employees", upstream.lastPath)

		query := upstream.lastReq.URL.Query()
		assert.Equal(t, "20", query.Get("offset"))
		assert.Equal(t, "10", query.Get("limit"))
		assert.Equal(t, "name", query.Get("order_by"))
		assert.Equal(t, "DESC", query.Get("order_dir"))
		assert.Equal(t, "Sales", query.Get("department"))

		var resp struct {
			Success bool            `json:"success"`
			Data    json.RawMessage `json:"data"`
			Meta    PageMeta        `json:"meta"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, int64(41), resp.Meta.Total)
		assert.Equal(t, 3, resp.Meta.Page)
		assert.Equal(t, 10, resp.Meta.PageSize)
		assert.Equal(t, 5, resp.Meta.TotalPages)
	})

	t.Run("forwards identity headers downstream", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusOK,
			`{"success":true,"data":[],"meta":{"total":0,"offset":0,"limit":20}}`)
		r := newProxyRouter(upstream.server.URL)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/master-data/employees", nil)
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, tenantID.String(), upstream.lastReq.Header.Get(middleware.HeaderTenantID))
		assert.Equal(t, userID.String(), upstream.lastReq.Header.Get(middleware.HeaderUserID))
	})

	t.Run("rejects requests without identity", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusOK, `{"success":true}`)
		r := newProxyRouter(upstream.server.URL)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/master-data/employees", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
		assert.Empty(t, upstream.lastPath)
	})

	t.Run("mirrors upstream errors verbatim", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusConflict,
			`{"success":false,"error":{"code":"VERSION_CONFLICT","message":"record was modified"}}`)
		r := newProxyRouter(upstream.server.URL)

		req := httptest.NewRequest(http.MethodGet, "/api/v1/master-data/employees", nil)
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "VERSION_CONFLICT")
	})

	t.Run("returns 502 when the domain API is down", func(t *testing.T) {
		r := newProxyRouter("http://127.0.0.1:1")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/master-data/employees", nil)
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadGateway, w.Code)
		assert.Contains(t, w.Body.String(), "UPSTREAM_UNAVAILABLE")
	})
}

func TestResourceProxyForward(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()

	t.Run("relays create body and mirrors status", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusCreated,
			`{"success":true,"data":{"code":"EMP001","version":1}}`)
		r := newProxyRouter(upstream.server.URL)

		req := httptest.NewRequest(http.MethodPost, "/api/v1/master-data/employees",
			strings.NewReader(`{"code":"EMP001","name":"Taro"}`))
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, "/api/v1/master-data/employees", upstream.lastPath)
		assert.Contains(t, w.Body.String(), "EMP001")
	})

	t.Run("substitutes path parameters", func(t *testing.T) {
		upstream := newFakeDomainAPI(t, http.StatusOK, `{"success":true,"data":{}}`)
		r := newProxyRouter(upstream.server.URL)

		id := uuid.NewString()
		req := httptest.NewRequest(http.MethodPatch, "/api/v1/master-data/employees/"+id+"/deactivate",
			strings.NewReader(`{"version":1}`))
		identityHeaders(req, tenantID, userID)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "/api/v1/master-data/employees/"+id+"/deactivate", upstream.lastPath)
	})
}
