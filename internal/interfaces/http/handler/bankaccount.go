package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	app "github.com/masterdata/backend/internal/application/masterdata"
)

// CompanyBankAccountHandler exposes the company bank account endpoints.
type CompanyBankAccountHandler struct {
	BaseHandler
	service *app.CompanyBankAccountService
}

// NewCompanyBankAccountHandler creates a new CompanyBankAccountHandler
func NewCompanyBankAccountHandler(service *app.CompanyBankAccountService) *CompanyBankAccountHandler {
	return &CompanyBankAccountHandler{service: service}
}

// RegisterRoutes registers company bank account routes on the given group
func (h *CompanyBankAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/company-bank-accounts")
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.GET("/:id", h.GetByID)
		accounts.GET("/code/:code", h.GetByCode)
		accounts.PUT("/:id", h.Update)
		accounts.PATCH("/:id/set-default", h.SetDefault)
		accounts.PATCH("/:id/deactivate", h.Deactivate)
		accounts.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /company-bank-accounts
func (h *CompanyBankAccountHandler) Create(c *gin.Context) {
	var req app.CreateCompanyBankAccountRequest
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

// List handles GET /company-bank-accounts
func (h *CompanyBankAccountHandler) List(c *gin.Context) {
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

// GetByID handles GET /company-bank-accounts/:id
func (h *CompanyBankAccountHandler) GetByID(c *gin.Context) {
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

// GetByCode handles GET /company-bank-accounts/code/:code
func (h *CompanyBankAccountHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /company-bank-accounts/:id
func (h *CompanyBankAccountHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateCompanyBankAccountRequest
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

// SetDefault handles PATCH /company-bank-accounts/:id/set-default
func (h *CompanyBankAccountHandler) SetDefault(c *gin.Context) {
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
	resp, err := h.service.SetDefault(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles PATCH /company-bank-accounts/:id/deactivate
func (h *CompanyBankAccountHandler) Deactivate(c *gin.Context) {
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

// Activate handles PATCH /company-bank-accounts/:id/activate
func (h *CompanyBankAccountHandler) Activate(c *gin.Context) {
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

// PayeeBankAccountHandler exposes the payee bank account endpoints.
type PayeeBankAccountHandler struct {
	BaseHandler
	service *app.PayeeBankAccountService
}

// NewPayeeBankAccountHandler creates a new PayeeBankAccountHandler
func NewPayeeBankAccountHandler(service *app.PayeeBankAccountService) *PayeeBankAccountHandler {
	return &PayeeBankAccountHandler{service: service}
}

// RegisterRoutes registers payee bank account routes on the given group
func (h *PayeeBankAccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/payee-bank-accounts")
	{
		accounts.POST("", h.Create)
		accounts.GET("", h.List)
		accounts.GET("/:id", h.GetByID)
		accounts.GET("/code/:code", h.GetByCode)
		accounts.PUT("/:id", h.Update)
		accounts.PATCH("/:id/set-default", h.SetDefault)
		accounts.PATCH("/:id/deactivate", h.Deactivate)
		accounts.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /payee-bank-accounts
func (h *PayeeBankAccountHandler) Create(c *gin.Context) {
	var req app.CreatePayeeBankAccountRequest
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

// List handles GET /payee-bank-accounts. An optional payee_id query
// parameter narrows the listing to a single payee.
func (h *PayeeBankAccountHandler) List(c *gin.Context) {
	var params app.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BindError(c, err)
		return
	}

	payeeID := uuid.Nil
	if raw := c.Query("payee_id"); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			h.BadRequest(c, "invalid payee_id")
			return
		}
		payeeID = parsed
	}

	tenantID, _ := h.identity(c)
	items, total, err := h.service.List(c.Request.Context(), tenantID, params, payeeID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, params.Offset, params.Limit)
}

// GetByID handles GET /payee-bank-accounts/:id
func (h *PayeeBankAccountHandler) GetByID(c *gin.Context) {
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

// GetByCode handles GET /payee-bank-accounts/code/:code
func (h *PayeeBankAccountHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /payee-bank-accounts/:id
func (h *PayeeBankAccountHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdatePayeeBankAccountRequest
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

// SetDefault handles PATCH /payee-bank-accounts/:id/set-default
func (h *PayeeBankAccountHandler) SetDefault(c *gin.Context) {
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
	resp, err := h.service.SetDefault(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles PATCH /payee-bank-accounts/:id/deactivate
func (h *PayeeBankAccountHandler) Deactivate(c *gin.Context) {
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

// Activate handles PATCH /payee-bank-accounts/:id/activate
func (h *PayeeBankAccountHandler) Activate(c *gin.Context) {
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
