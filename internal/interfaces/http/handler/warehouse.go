package handler

import (
	"github.com/gin-gonic/gin"

	app "github.com/masterdata/backend/internal/application/masterdata"
)

// WarehouseHandler exposes the warehouse master endpoints.
type WarehouseHandler struct {
	BaseHandler
	service *app.WarehouseService
}

// NewWarehouseHandler creates a new WarehouseHandler
func NewWarehouseHandler(service *app.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

// RegisterRoutes registers warehouse routes on the given group
func (h *WarehouseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	warehouses := rg.Group("/warehouses")
	{
		warehouses.POST("", h.Create)
		warehouses.GET("", h.List)
		warehouses.GET("/:id", h.GetByID)
		warehouses.GET("/code/:code", h.GetByCode)
		warehouses.PUT("/:id", h.Update)
		warehouses.PATCH("/:id/set-default-receiving", h.SetDefaultReceiving)
		warehouses.PATCH("/:id/deactivate", h.Deactivate)
		warehouses.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /warehouses
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req app.CreateWarehouseRequest
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

// List handles GET /warehouses
func (h *WarehouseHandler) List(c *gin.Context) {
	var params app.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, _ := h.identity(c)
	items, total, err := h.service.List(c.Request.Context(), tenantID, params, c.Query("city"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, params.Offset, params.Limit)
}

// GetByID handles GET /warehouses/:id
func (h *WarehouseHandler) GetByID(c *gin.Context) {
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

// GetByCode handles GET /warehouses/code/:code
func (h *WarehouseHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /warehouses/:id
func (h *WarehouseHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateWarehouseRequest
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

// SetDefaultReceiving handles PATCH /warehouses/:id/set-default-receiving
func (h *WarehouseHandler) SetDefaultReceiving(c *gin.Context) {
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
	resp, err := h.service.SetDefaultReceiving(c.Request.Context(), tenantID, userID, id, req.Version)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Deactivate handles PATCH /warehouses/:id/deactivate
func (h *WarehouseHandler) Deactivate(c *gin.Context) {
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

// Activate handles PATCH /warehouses/:id/activate
func (h *WarehouseHandler) Activate(c *gin.Context) {
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
