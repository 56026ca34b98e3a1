package lookup

import (
	"github.com/gin-gonic/gin"

	"github.com/hbaskar/GC-PDC/internal/pkg"
	"github.com/hbaskar/GC-PDC/internal/query"
)

// Handler handles REST API requests for lookup vocabularies.
type Handler struct {
	svc Service
}

// NewHandler creates a Handler with the given service.
func NewHandler(svc Service) *Handler {
	return &Handler{svc: svc}
}

// CreateType handles POST /api/v1/lookup-types.
func (h *Handler) CreateType(c *gin.Context) {
	var req CreateTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	created, err := h.svc.CreateType(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, created)
}

// GetType handles GET /api/v1/lookup-types/:type.
func (h *Handler) GetType(c *gin.Context) {
	found, err := h.svc.GetType(c.Request.Context(), c.Param("type"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, found)
}

// ListTypes handles GET /api/v1/lookup-types.
func (h *Handler) ListTypes(c *gin.Context) {
	types, err := h.svc.ListTypes(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, types)
}

// UpdateType handles PUT /api/v1/lookup-types/:type.
func (h *Handler) UpdateType(c *gin.Context) {
	var req UpdateTypeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	updated, err := h.svc.UpdateType(c.Request.Context(), c.Param("type"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, updated)
}

// DeleteType handles DELETE /api/v1/lookup-types/:type. Vocabularies that
// still hold codes return 409.
func (h *Handler) DeleteType(c *gin.Context) {
	if err := h.svc.DeleteType(c.Request.Context(), c.Param("type")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// CreateCode handles POST /api/v1/lookup-codes.
func (h *Handler) CreateCode(c *gin.Context) {
	var req CreateCodeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	created, err := h.svc.CreateCode(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Created(c, created)
}

// GetCode handles GET /api/v1/lookup-codes/:type/:code.
func (h *Handler) GetCode(c *gin.Context) {
	found, err := h.svc.GetCode(c.Request.Context(), c.Param("type"), c.Param("code"))
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, found)
}

// ListCodes handles GET /api/v1/lookup-codes.
func (h *Handler) ListCodes(c *gin.Context) {
	req := query.ParsePageRequest(c)

	result, err := h.svc.ListCodes(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.List(c, result)
}

// UpdateCode handles PUT /api/v1/lookup-codes/:type/:code.
func (h *Handler) UpdateCode(c *gin.Context) {
	var req UpdateCodeRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	updated, err := h.svc.UpdateCode(c.Request.Context(), c.Param("type"), c.Param("code"), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, updated)
}

// DeleteCode handles DELETE /api/v1/lookup-codes/:type/:code.
func (h *Handler) DeleteCode(c *gin.Context) {
	if err := h.svc.DeleteCode(c.Request.Context(), c.Param("type"), c.Param("code")); err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, nil)
}

// BatchGetCodes handles POST /api/v1/lookup-codes/batch-get.
func (h *Handler) BatchGetCodes(c *gin.Context) {
	var req BatchGetRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	grouped, err := h.svc.BatchGetCodes(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, grouped)
}

// BatchUpsertCodes handles PUT /api/v1/lookup-codes/batch.
func (h *Handler) BatchUpsertCodes(c *gin.Context) {
	var req BatchUpsertRequest
	if !pkg.BindAndValidate(c, &req) {
		return
	}

	n, err := h.svc.BatchUpsertCodes(c.Request.Context(), req)
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, gin.H{"processed": n})
}

// Summary handles GET /api/v1/lookup-codes/summary.
func (h *Handler) Summary(c *gin.Context) {
	s, err := h.svc.Summary(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}
	pkg.Success(c, s)
}
