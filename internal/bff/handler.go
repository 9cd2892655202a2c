package bff

import (
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/masterdata/backend/internal/interfaces/http/dto"
	"github.com/masterdata/backend/internal/interfaces/http/middleware"
)

// listEnvelope is the page-based response the BFF returns for listings.
type listEnvelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Meta    PageMeta        `json:"meta"`
}

// ResourceProxy forwards one master data resource to the domain API.
// Listings are translated from page/page_size to offset/limit; all other
// operations pass through with their status and body unchanged.
type ResourceProxy struct {
	client          *Client
	resource        string
	listFilters     []string
	actions         []string
	defaultPageSize int
	maxPageSize     int
}

// NewResourceProxy creates a proxy for the given resource path segment.
// listFilters names extra query parameters forwarded verbatim on
// listings; actions names the POST /:id/<action> endpoints the resource
// supports beyond activate and deactivate.
func NewResourceProxy(client *Client, resource string, listFilters, actions []string, defaultPageSize, maxPageSize int) *ResourceProxy {
	return &ResourceProxy{
		client:          client,
		resource:        resource,
		listFilters:     listFilters,
		actions:         actions,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

// RegisterRoutes registers the proxied routes on the given group
func (p *ResourceProxy) RegisterRoutes(rg *gin.RouterGroup) {
	grp := rg.Group("/" + p.resource)
	grp.GET("", p.List)
	grp.POST("", p.forward(http.MethodPost, ""))
	grp.GET("/:id", p.forward(http.MethodGet, "/:id"))
	grp.GET("/code/:code", p.forward(http.MethodGet, "/code/:code"))
	grp.PUT("/:id", p.forward(http.MethodPut, "/:id"))
	grp.PATCH("/:id/deactivate", p.forward(http.MethodPatch, "/:id/deactivate"))
	grp.PATCH("/:id/activate", p.forward(http.MethodPatch, "/:id/activate"))
	for _, action := range p.actions {
		grp.PATCH("/:id/"+action, p.forward(http.MethodPatch, "/:id/"+action))
	}
}

// List handles the page-based listing and rewrites the pagination meta.
func (p *ResourceProxy) List(c *gin.Context) {
	var params PageParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse(dto.ErrCodeBadRequest, err.Error(), c.GetString(middleware.RequestIDKey)))
		return
	}
	page, offset, limit := params.Normalize(p.defaultPageSize, p.maxPageSize)

	query := url.Values{}
	query.Set("offset", strconv.Itoa(offset))
	query.Set("limit", strconv.Itoa(limit))
	if sort := c.Query("sort"); sort != "" {
		query.Set("order_by", sort)
	}
	if order := c.Query("order"); order != "" {
		query.Set("order_dir", order)
	}
	if search := c.Query("search"); search != "" {
		query.Set("search", search)
	}
	if c.Query("include_inactive") == "true" {
		query.Set("include_inactive", "true")
	}
	for _, name := range p.listFilters {
		if v := c.Query(name); v != "" {
			query.Set(name, v)
		}
	}

	status, envelope, err := p.client.Do(c.Request.Context(), http.MethodGet, p.path(""), query, p.identity(c), nil)
	if err != nil {
		p.upstreamError(c, err)
		return
	}
	if !envelope.Success || envelope.Meta == nil {
		c.JSON(status, envelope)
		return
	}

	c.JSON(status, listEnvelope{
		Success: true,
		Data:    envelope.Data,
		Meta:    NewPageMeta(envelope.Meta.Total, page, limit),
	})
}

// forward returns a handler that relays the request body and mirrors the
// downstream response.
func (p *ResourceProxy) forward(method, pattern string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body []byte
		if c.Request.Body != nil {
			var err error
			body, err = io.ReadAll(c.Request.Body)
			if err != nil {
				c.JSON(http.StatusBadRequest,
					dto.NewErrorResponse(dto.ErrCodeBadRequest, "unreadable request body", c.GetString(middleware.RequestIDKey)))
				return
			}
		}

		path := pattern
		for _, param := range c.Params {
			path = replaceParam(path, param.Key, param.Value)
		}

		status, envelope, err := p.client.Do(c.Request.Context(), method, p.path(path), nil, p.identity(c), body)
		if err != nil {
			p.upstreamError(c, err)
			return
		}
		c.JSON(status, envelope)
	}
}

func (p *ResourceProxy) path(suffix string) string {
	return "/api/v1/master-data/" + p.resource + suffix
}

func (p *ResourceProxy) identity(c *gin.Context) Identity {
	return Identity{
		TenantID:  c.GetHeader(middleware.HeaderTenantID),
		UserID:    c.GetHeader(middleware.HeaderUserID),
		RequestID: c.GetString(middleware.RequestIDKey),
	}
}

func (p *ResourceProxy) upstreamError(c *gin.Context, err error) {
	_ = c.Error(err)
	c.JSON(http.StatusBadGateway,
		dto.NewErrorResponse("UPSTREAM_UNAVAILABLE", "domain API unreachable", c.GetString(middleware.RequestIDKey)))
}

func replaceParam(path, key, value string) string {
	marker := ":" + key
	for i := 0; i+len(marker) <= len(path); i++ {
		if path[i:i+len(marker)] == marker {
			return path[:i] + value + path[i+len(marker):]
		}
	}
	return path
}
