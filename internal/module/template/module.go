package template

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the template domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("template.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers template API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/templates", m.handler.Create)
	api.GET("/templates", m.handler.List)
	api.GET("/templates/:id", m.handler.Get)
	api.PUT("/templates/:id", m.handler.Update)
	api.DELETE("/templates/:id", m.handler.Delete)
}
