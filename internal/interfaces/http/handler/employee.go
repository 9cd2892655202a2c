package handler

import (
	"github.com/gin-gonic/gin"

	app "github.com/masterdata/backend/internal/application/masterdata"
)

// EmployeeHandler exposes the employee master endpoints.
type EmployeeHandler struct {
	BaseHandler
	service *app.EmployeeService
}

// NewEmployeeHandler creates a new EmployeeHandler
func NewEmployeeHandler(service *app.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{service: service}
}

// RegisterRoutes registers employee routes on the given group
func (h *EmployeeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	employees := rg.Group("/employees")
	{
		employees.POST("", h.Create)
		employees.GET("", h.List)
		employees.GET("/:id", h.GetByID)
		employees.GET("/code/:code", h.GetByCode)
		employees.PUT("/:id", h.Update)
		employees.PATCH("/:id/deactivate", h.Deactivate)
		employees.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /employees
func (h *EmployeeHandler) Create(c *gin.Context) {
	var req app.CreateEmployeeRequest
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

// List handles GET /employees
func (h *EmployeeHandler) List(c *gin.Context) {
	var params app.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.BindError(c, err)
		return
	}

	tenantID, _ := h.identity(c)
	items, total, err := h.service.List(c.Request.Context(), tenantID, params, c.Query("department"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, items, total, params.Offset, params.Limit)
}

// GetByID handles GET /employees/:id
func (h *EmployeeHandler) GetByID(c *gin.Context) {
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

// GetByCode handles GET /employees/code/:code
func (h *EmployeeHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /employees/:id
func (h *EmployeeHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateEmployeeRequest
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

// Deactivate handles PATCH /employees/:id/deactivate
func (h *EmployeeHandler) Deactivate(c *gin.Context) {
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

// Activate handles PATCH /employees/:id/activate
func (h *EmployeeHandler) Activate(c *gin.Context) {
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
