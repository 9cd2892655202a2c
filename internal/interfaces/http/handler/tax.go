package handler

import (
	"github.com/gin-gonic/gin"

	app "github.com/masterdata/backend/internal/application/masterdata"
)

// TaxRateHandler exposes the tax rate master endpoints.
type TaxRateHandler struct {
	BaseHandler
	service *app.TaxRateService
}

// NewTaxRateHandler creates a new TaxRateHandler
func NewTaxRateHandler(service *app.TaxRateService) *TaxRateHandler {
	return &TaxRateHandler{service: service}
}

// RegisterRoutes registers tax rate routes on the given group
func (h *TaxRateHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rates := rg.Group("/tax-rates")
	{
		rates.POST("", h.Create)
		rates.GET("", h.List)
		rates.GET("/:id", h.GetByID)
		rates.GET("/code/:code", h.GetByCode)
		rates.PUT("/:id", h.Update)
		rates.PATCH("/:id/deactivate", h.Deactivate)
		rates.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /tax-rates
func (h *TaxRateHandler) Create(c *gin.Context) {
	var req app.CreateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /tax-rates
func (h *TaxRateHandler) List(c *gin.Context) {
	var params app.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, _ := h.identity(c)
	items, total, err := h.service.List(c.Request.Context(), tenantID, params)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, params.Offset, params.Limit)
}

// GetByID handles GET /tax-rates/:id
func (h *TaxRateHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByCode handles GET /tax-rates/code/:code
func (h *TaxRateHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /tax-rates/:id
func (h *TaxRateHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateTaxRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Update(c.Request.Context(), tenantID, userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles PATCH /tax-rates/:id/deactivate
func (h *TaxRateHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.VersionedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Deactivate(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate handles PATCH /tax-rates/:id/activate
func (h *TaxRateHandler) Activate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.VersionedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Activate(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// TaxCodeHandler exposes the tax code master endpoints.
type TaxCodeHandler struct {
	BaseHandler
	service *app.TaxCodeService
}

// NewTaxCodeHandler creates a new TaxCodeHandler
func NewTaxCodeHandler(service *app.TaxCodeService) *TaxCodeHandler {
	return &TaxCodeHandler{service: service}
}

// RegisterRoutes registers tax code routes on the given group
func (h *TaxCodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	codes := rg.Group("/tax-codes")
	{
		codes.POST("", h.Create)
		codes.GET("", h.List)
		codes.GET("/:id", h.GetByID)
		codes.GET("/code/:code", h.GetByCode)
		codes.PUT("/:id", h.Update)
		codes.PATCH("/:id/deactivate", h.Deactivate)
		codes.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /tax-codes
func (h *TaxCodeHandler) Create(c *gin.Context) {
	var req app.CreateTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Create(c.Request.Context(), tenantID, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// List handles GET /tax-codes
func (h *TaxCodeHandler) List(c *gin.Context) {
	var params app.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, _ := h.identity(c)
	items, total, err := h.service.List(c.Request.Context(), tenantID, params, c.Query("tax_rate_code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, params.Offset, params.Limit)
}

// GetByID handles GET /tax-codes/:id
func (h *TaxCodeHandler) GetByID(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByID(c.Request.Context(), tenantID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// GetByCode handles GET /tax-codes/code/:code
func (h *TaxCodeHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /tax-codes/:id
func (h *TaxCodeHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateTaxCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Update(c.Request.Context(), tenantID, userID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles PATCH /tax-codes/:id/deactivate
func (h *TaxCodeHandler) Deactivate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.VersionedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Deactivate(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Activate handles PATCH /tax-codes/:id/activate
func (h *TaxCodeHandler) Activate(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.VersionedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, userID := h.identity(c)
	resp, err := h.service.Activate(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}
