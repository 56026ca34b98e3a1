package library

import (
	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Handler handles REST API requests for the library resource.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// Create handles POST /api/v1/libraries.
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

// Get handles GET /api/v1/libraries/:id.
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

// List handles GET /api/v1/libraries.
func (h *Handler) List(c *gin.Context) {
	req := query.ParsePageRequest(c)

	result, err := h.svc.List(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// Update handles PUT /api/v1/libraries/:id.
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

// Delete handles DELETE /api/v1/libraries/:id.
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
