package classification

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Handler handles REST API requests for the classification resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/classifications.
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

// Get handles GET /api/v1/classifications/:id.
func (h *Handler) Get(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	includeDeleted := strings.EqualFold(c.Query("include_deleted"), "true")
	found, err := h.svc.Get(c.Request.Context(), id, includeDeleted)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, found)
}

// List handles GET /api/v1/classifications.
func (h *Handler) List(c *gin.Context) {
	req := query.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Update handles PUT /api/v1/classifications/:id.
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

// Delete handles DELETE /api/v1/classifications/:id. Deletion is soft: the
// row stays restorable until it is purged.
func (h *Handler) Delete(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.SoftDelete(c.Request.Context(), id, c.Query("deleted_by")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Restore handles POST /api/v1/classifications/:id/restore.
func (h *Handler) Restore(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.Restore(c.Request.Context(), id, c.Query("restored_by")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Purge handles DELETE /api/v1/classifications/:id/permanent.
func (h *Handler) Purge(c *gin.Context) {
	id, err := pkg.ParseUintParam(c, "id")
	if err != nil {
		pkg.Error(c, err)
		return
	}

	if err := h.svc.HardDelete(c.Request.Context(), id); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// Summary handles GET /api/v1/classifications/summary.
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
