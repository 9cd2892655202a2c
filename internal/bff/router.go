package bff

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/masterdata/backend/internal/infrastructure/config"
	"github.com/masterdata/backend/internal/infrastructure/logger"
	"github.com/masterdata/backend/internal/interfaces/http/handler"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
	"github.com/masterdata/backend/internal/interfaces/http/router"
)

// NewEngine builds the BFF gin engine with all master data resources
// proxied to the domain API.
func NewEngine(cfg *config.Config, log *zap.Logger) *gin.Engine {
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	engine.Use(
		middleware.RequestID(),
		logger.GinMiddleware(log),
		logger.Recovery(log),
		middleware.CORSWithConfig(middleware.CORSConfig{
			AllowOrigins: cfg.HTTP.CORSAllowOrigins,
			AllowMethods: cfg.HTTP.CORSAllowMethods,
			AllowHeaders: cfg.HTTP.CORSAllowHeaders,
		}),
	)

	handler.NewHealthHandler(nil).RegisterRoutes(engine)

	client := NewClient(cfg.BFF)
	defaultSize := cfg.BFF.DefaultPageSize
	maxSize := cfg.BFF.MaxPageSize

	r := router.NewRouter(engine, router.WithGroupMiddleware(middleware.Identity()))
	r.Register(NewResourceProxy(client, "employees", []string{"department"}, nil, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "projects", nil, nil, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "tax-rates", nil, nil, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "tax-codes", []string{"tax_rate_code"}, nil, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "company-bank-accounts", nil, []string{"set-default"}, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "payee-bank-accounts", []string{"payee_id"}, []string{"set-default"}, defaultSize, maxSize))
	r.Register(NewResourceProxy(client, "warehouses", []string{"city"}, []string{"set-default-receiving"}, defaultSize, maxSize))
	r.Setup()

	return engine
}
