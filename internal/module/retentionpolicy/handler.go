package retentionpolicy

import (
	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Handler handles REST API requests for the retention policy resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/retention-policies.
func (h *Handler) Create(c *gin.Context) {
	var req CreateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	created, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, created)
}

// Get handles GET /api/v1/retention-policies/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	found, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, found)
}

// List handles GET /api/v1/retention-policies.
func (h *Handler) List(c *gin.Context) {
	req := query.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Update handles PUT /api/v1/retention-policies/:id.
func (h *Handler) Update(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	var req UpdateRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	updated, err := h.svc.Update(c.Request.Context(), id, req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, updated)
}

// Delete handles DELETE /api/v1/retention-policies/:id. Policies still
// referenced by classifications return 409.
func (h *Handler) Delete(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Summary handles GET /api/v1/retention-policies/summary.
func (h *Handler) Summary(c *gin.Context) {
	s, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, s)
}

// distinct returns a handler serving the distinct values of one reference
// column.
func (h *Handler) distinct(column string) gin.HandlerFunc {
	return func(c *gin.Context) {
		values, err := h.svc.DistinctValues(c.Request.Context(), column)
		if err != nil {
			pkg.Error(c, err)
			return
		}
		pkg.Success(c, values)
	}
}
