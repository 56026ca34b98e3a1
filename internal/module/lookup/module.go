package lookup

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for lookup vocabularies.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("lookup.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers lookup API routes. Static code paths come before
// the :type routes so gin resolves them unambiguously.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.POST("/lookup-types", m.handler.CreateType)
	api.GET("/lookup-types", m.handler.ListTypes)
	api.GET("/lookup-types/:type", m.handler.GetType)
	api.PUT("/lookup-types/:type", m.handler.UpdateType)
	api.DELETE("/lookup-types/:type", m.handler.DeleteType)

	api.GET("/lookup-codes/summary", m.handler.Summary)
	api.POST("/lookup-codes/batch-get", m.handler.BatchGetCodes)
	api.PUT("/lookup-codes/batch", m.handler.BatchUpsertCodes)

	api.POST("/lookup-codes", m.handler.CreateCode)
	api.GET("/lookup-codes", m.handler.ListCodes)
	api.GET("/lookup-codes/:type/:code", m.handler.GetCode)
	api.PUT("/lookup-codes/:type/:code", m.handler.UpdateCode)
	api.DELETE("/lookup-codes/:type/:code", m.handler.DeleteCode)
}
