package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	app "github.com/masterdata/backend/internal/application/masterdata"
	"github.com/masterdata/backend/internal/infrastructure/config"
	"github.com/masterdata/backend/internal/infrastructure/logger"
	"github.com/masterdata/backend/internal/infrastructure/persistence"
	"github.com/masterdata/backend/internal/infrastructure/telemetry"
	"github.com/masterdata/backend/internal/interfaces/http/handler"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
	"github.com/masterdata/backend/internal/interfaces/http/router"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load configuration: " + err.Error())
	}

	log := logger.New(cfg.Log)
	defer func() {
		_ = log.Sync()
	}()

	log.Info("starting master data API",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
	)

	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		if err := tracerProvider.Shutdown(context.Background()); err != nil {
			log.Error("error shutting down tracer provider", zap.Error(err))
		}
	}()

	var db *persistence.Database
	if cfg.Telemetry.Enabled && cfg.Telemetry.DBTraceEnabled {
		db, err = persistence.NewDatabaseWithTracing(&cfg.Database)
	} else {
		db, err = persistence.NewDatabase(&cfg.Database)
	}
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("error closing database", zap.Error(err))
		}
	}()
	log.Info("database connected")

	employeeRepo := persistence.NewEmployeeRepository(db.DB)
	projectRepo := persistence.NewProjectRepository(db.DB)
	taxRateRepo := persistence.NewTaxRateRepository(db.DB)
	taxCodeRepo := persistence.NewTaxCodeRepository(db.DB)
	companyAccountRepo := persistence.NewCompanyBankAccountRepository(db.DB)
	payeeAccountRepo := persistence.NewPayeeBankAccountRepository(db.DB)
	warehouseRepo := persistence.NewWarehouseRepository(db.DB)

	employeeService := app.NewEmployeeService(employeeRepo)
	projectService := app.NewProjectService(projectRepo)
	taxRateService := app.NewTaxRateService(taxRateRepo)
	taxCodeService := app.NewTaxCodeService(taxCodeRepo)
	companyAccountService := app.NewCompanyBankAccountService(companyAccountRepo)
	payeeAccountService := app.NewPayeeBankAccountService(payeeAccountRepo)
	warehouseService := app.NewWarehouseService(warehouseRepo)

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	middleware.SetupValidator()

	engine := gin.New()
	if len(cfg.HTTP.TrustedProxies) > 0 {
		if err := engine.SetTrustedProxies(cfg.HTTP.TrustedProxies); err != nil {
			log.Warn("failed to set trusted proxies", zap.Error(err))
		}
	}

	engine.Use(middleware.RequestID())
	engine.Use(logger.Recovery(log))
	engine.Use(logger.GinMiddleware(log))
	if cfg.Telemetry.Enabled {
		engine.Use(otelgin.Middleware(cfg.Telemetry.ServiceName))
	}
	engine.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.HTTP.CORSAllowOrigins,
		AllowMethods: cfg.HTTP.CORSAllowMethods,
		AllowHeaders: cfg.HTTP.CORSAllowHeaders,
	}))

	handler.NewHealthHandler(db).RegisterRoutes(engine)

	r := router.NewRouter(engine, router.WithGroupMiddleware(middleware.Identity()))
	r.Register(handler.NewEmployeeHandler(employeeService))
	r.Register(handler.NewProjectHandler(projectService))
	r.Register(handler.NewTaxRateHandler(taxRateService))
	r.Register(handler.NewTaxCodeHandler(taxCodeService))
	r.Register(handler.NewCompanyBankAccountHandler(companyAccountService))
	r.Register(handler.NewPayeeBankAccountHandler(payeeAccountService))
	r.Register(handler.NewWarehouseHandler(warehouseService))
	r.Setup()

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown", zap.Error(err))
	}
	log.Info("server exited")
}
