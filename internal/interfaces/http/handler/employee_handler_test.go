package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	app "github.com/masterdata/backend/internal/application/masterdata"
	"github.com/masterdata/backend/internal/domain/masterdata"
	"github.com/masterdata/backend/internal/infrastructure/persistence"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
	"github.com/masterdata/backend/internal/interfaces/http/router"
)

// newEmployeeTestServer wires the employee stack end to end over an
// in-memory database.
func newEmployeeTestServer(t *testing.T) *gin.Engine {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&masterdata.Employee{}))
	require.NoError(t, db.Exec("CREATE UNIQUE INDEX idx_employees_tenant_code ON employees (tenant_id, code)").Error)

	service := app.NewEmployeeService(persistence.NewEmployeeRepository(db))

	engine := gin.New()
	engine.Use(middleware.RequestID())

	r := router.NewRouter(engine, router.WithGroupMiddleware(middleware.Identity()))
	r.Register(NewEmployeeHandler(service))
	r.Setup()

	return engine
}

func doJSON(t *testing.T, engine *gin.Engine, method, path string, tenantID, userID uuid.UUID, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body *bytes.Buffer
	if payload != nil {
		raw, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewBuffer(raw)
	} else {
		body = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if tenantID != uuid.Nil {
		req.Header.Set(middleware.HeaderTenantID, tenantID.String())
		req.Header.Set(middleware.HeaderUserID, userID.String())
	}

	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func createEmployeeRequest(code string) map[string]any {
	return map[string]any{
		"code":      code,
		"name":      "Taro Yamada",
		"email":     "taro@example.com",
		"join_date": "2024-04-01T00:00:00Z",
	}
}

func TestEmployeeEndpoints(t *testing.T) {
	tenantID := uuid.New()
	userID := uuid.New()
	base := "/api/v1/master-data/employees"

	t.Run("rejects requests without identity headers", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		w := doJSON(t, engine, http.MethodGet, base, uuid.Nil, uuid.Nil, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("creates an employee", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		w := doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("emp001"))

		require.Equal(t, http.StatusCreated, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.True(t, resp.Success)

		data := resp.Data.(map[string]any)
		assert.Equal(t, "EMP001", data["code"])
		assert.Equal(t, float64(1), data["version"])
		assert.Equal(t, true, data["is_active"])
	})

	t.Run("returns 409 on a duplicate code", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("EMP001"))
		w := doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("emp001"))

		assert.Equal(t, http.StatusConflict, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, "CODE_DUPLICATE", resp.Error.Code)
	})

	t.Run("returns 422 for invalid input", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		bad := createEmployeeRequest("EMP001")
		bad["email"] = "nope"
		w := doJSON(t, engine, http.MethodPost, base, tenantID, userID, bad)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Error)
		assert.Equal(t, "INVALID_EMAIL_FORMAT", resp.Error.Code)
	})

	t.Run("returns 404 for an unknown id", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		w := doJSON(t, engine, http.MethodGet, base+"/"+uuid.NewString(), tenantID, userID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("returns 400 for a malformed id", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		w := doJSON(t, engine, http.MethodGet, base+"/not-a-uuid", tenantID, userID, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("updates through the version check", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		created := doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("EMP001"))
		id := decodeResponse(t, created.Body.Bytes()).Data.(map[string]any)["id"].(string)

		update := map[string]any{
			"version":   1,
			"name":      "Renamed",
			"email":     "renamed@example.com",
			"join_date": "2024-04-01T00:00:00Z",
		}
		w := doJSON(t, engine, http.MethodPut, base+"/"+id, tenantID, userID, update)
		require.Equal(t, http.StatusOK, w.Code)

		data := decodeResponse(t, w.Body.Bytes()).Data.(map[string]any)
		assert.Equal(t, "Renamed", data["name"])
		assert.Equal(t, float64(2), data["version"])

		// A second writer still holding version 1 must lose.
		stale := doJSON(t, engine, http.MethodPut, base+"/"+id, tenantID, userID, update)
		assert.Equal(t, http.StatusConflict, stale.Code)
		assert.Equal(t, "VERSION_CONFLICT", decodeResponse(t, stale.Body.Bytes()).Error.Code)
	})

	t.Run("deactivates and refuses a repeat", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		created := doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("EMP001"))
		id := decodeResponse(t, created.Body.Bytes()).Data.(map[string]any)["id"].(string)

		w := doJSON(t, engine, http.MethodPatch, base+"/"+id+"/deactivate", tenantID, userID, map[string]any{"version": 1})
		require.Equal(t, http.StatusOK, w.Code)
		data := decodeResponse(t, w.Body.Bytes()).Data.(map[string]any)
		assert.Equal(t, false, data["is_active"])

		again := doJSON(t, engine, http.MethodPatch, base+"/"+id+"/deactivate", tenantID, userID, map[string]any{"version": 2})
		assert.Equal(t, http.StatusUnprocessableEntity, again.Code)
		assert.Equal(t, "ALREADY_INACTIVE", decodeResponse(t, again.Body.Bytes()).Error.Code)
	})

	t.Run("lists with pagination meta", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		for i := 1; i <= 3; i++ {
			doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest(fmt.Sprintf("EMP%03d", i)))
		}

		w := doJSON(t, engine, http.MethodGet, base+"?offset=0&limit=2", tenantID, userID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		resp := decodeResponse(t, w.Body.Bytes())
		require.NotNil(t, resp.Meta)
		assert.Equal(t, int64(3), resp.Meta.Total)
		assert.Equal(t, 2, resp.Meta.Limit)
		assert.Len(t, resp.Data.([]any), 2)
	})

	t.Run("isolates tenants", func(t *testing.T) {
		engine := newEmployeeTestServer(t)
		created := doJSON(t, engine, http.MethodPost, base, tenantID, userID, createEmployeeRequest("EMP001"))
		id := decodeResponse(t, created.Body.Bytes()).Data.(map[string]any)["id"].(string)

		otherTenant := uuid.New()
		w := doJSON(t, engine, http.MethodGet, base+"/"+id, otherTenant, userID, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
