package handler

import (
	"github.com/gin-gonic/gin"

	app "github.com/masterdata/backend/internal/application/masterdata"
)

// ProjectHandler exposes the project master endpoints.
type ProjectHandler struct {
	BaseHandler
	service *app.ProjectService
}

// NewProjectHandler creates a new ProjectHandler
func NewProjectHandler(service *app.ProjectService) *ProjectHandler {
	return &ProjectHandler{service: service}
}

// RegisterRoutes registers project routes on the given group
func (h *ProjectHandler) RegisterRoutes(rg *gin.RouterGroup) {
	projects := rg.Group("/projects")
	{
		projects.POST("", h.Create)
		projects.GET("", h.List)
		projects.GET("/:id", h.GetByID)
		projects.GET("/code/:code", h.GetByCode)
		projects.PUT("/:id", h.Update)
		projects.PATCH("/:id/deactivate", h.Deactivate)
		projects.PATCH("/:id/activate", h.Activate)
	}
}

// Create handles POST /projects
func (h *ProjectHandler) Create(c *gin.Context) {
	var req app.CreateProjectRequest
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

// List handles GET /projects
func (h *ProjectHandler) List(c *gin.Context) {
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

// GetByID handles GET /projects/:id
func (h *ProjectHandler) GetByID(c *gin.Context) {
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

// GetByCode handles GET /projects/code/:code
func (h *ProjectHandler) GetByCode(c *gin.Context) {
	tenantID, _ := h.identity(c)
	resp, err := h.service.GetByCode(c.Request.Context(), tenantID, c.Param("code"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update handles PUT /projects/:id
func (h *ProjectHandler) Update(c *gin.Context) {
	id, ok := h.parseIDParam(c)
	if !ok {
		return
	}

	var req app.UpdateProjectRequest
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

// Deactivate handles PATCH /projects/:id/deactivate
func (h *ProjectHandler) Deactivate(c *gin.Context) {
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

// Activate handles PATCH /projects/:id/activate
func (h *ProjectHandler) Activate(c *gin.Context) {
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
