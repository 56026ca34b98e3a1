package classification

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the classification domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("classification.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers classification API routes. Static paths are
// registered before the :id routes so gin resolves them unambiguously.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/classifications/summary", m.handler.Summary)
	api.GET("/classifications/levels", m.handler.distinct("classification_level"))
	api.GET("/classifications/media-types", m.handler.distinct("media_type"))
	api.GET("/classifications/file-types", m.handler.distinct("file_type"))
	api.GET("/classifications/series", m.handler.distinct("series"))

	api.POST("/classifications", m.handler.Create)
	api.GET("/classifications", m.handler.List)
	api.GET("/classifications/:id", m.handler.Get)
	api.PUT("/classifications/:id", m.handler.Update)
	api.DELETE("/classifications/:id", m.handler.Delete)
	api.POST("/classifications/:id/restore", m.handler.Restore)
	api.DELETE("/classifications/:id/permanent", m.handler.Purge)
}
