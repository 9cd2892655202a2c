package bff

// PageParams is the page-based listing contract the BFF exposes to
// frontends. The domain API itself speaks offset and limit.
type PageParams struct {
	Page     int `form:"page" binding:"omitempty,min=1"`
	PageSize int `form:"page_size" binding:"omitempty,min=1"`
}

// PageMeta is the pagination block returned to frontends.
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}

// Normalize clamps the page parameters to the configured bounds and
// returns the offset and limit to send downstream.
func (p PageParams) Normalize(defaultSize, maxSize int) (page, offset, limit int) {
	page = p.Page
	if page < 1 {
		page = 1
	}
	limit = p.PageSize
	if limit < 1 {
		limit = defaultSize
	}
	if limit > maxSize {
		limit = maxSize
	}
	return page, (page - 1) * limit, limit
}

// NewPageMeta converts a total count back into page terms.
func NewPageMeta(total int64, page, pageSize int) PageMeta {
	totalPages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		totalPages++
	}
	return PageMeta{
		Total:      total,
		Page:       page,
		PageSize:   pageSize,
		TotalPages: totalPages,
	}
}
