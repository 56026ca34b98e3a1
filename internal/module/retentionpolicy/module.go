package retentionpolicy

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the retention policy domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("retentionpolicy.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers retention policy API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/retention-policies/summary", m.handler.Summary)
	api.GET("/retention-policies/types", m.handler.distinct("retention_type"))
	api.GET("/retention-policies/jurisdictions", m.handler.distinct("jurisdiction"))

	api.POST("/retention-policies", m.handler.Create)
	api.GET("/retention-policies", m.handler.List)
	api.GET("/retention-policies/:id", m.handler.Get)
	api.PUT("/retention-policies/:id", m.handler.Update)
	api.DELETE("/retention-policies/:id", m.handler.Delete)
}
