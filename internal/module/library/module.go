package library

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the library domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("library.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers library API routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/libraries", m.handler.Create)
	api.GET("/libraries", m.handler.List)
	api.GET("/libraries/:id", m.handler.Get)
	api.PUT("/libraries/:id", m.handler.Update)
	api.DELETE("/libraries/:id", m.handler.Delete)
}
