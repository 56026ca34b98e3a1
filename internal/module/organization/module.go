package organization

import "github.com/gin-gonic/gin"

// Module implements the app.Module interface for the organization domain.
type Module struct {
	handler *Handler
}

// NewModule creates a Module with the given handler. Panics if h is nil.
func NewModule(h *Handler) *Module {
	if h == nil {
		panic("organization.NewModule: handler must not be nil")
	}
	return &Module{handler: h}
}

// RegisterRoutes registers organization API routes. Static routes precede
// the :id parameter routes.
func (m *Module) RegisterRoutes(api *gin.RouterGroup) {
	api.GET("/organizations/hierarchy", m.handler.Hierarchy)

	api.POST("/organizations", m.handler.Create)
	api.GET("/organizations", m.handler.List)
	api.GET("/organizations/:id", m.handler.Get)
	api.PUT("/organizations/:id", m.handler.Update)
	api.DELETE("/organizations/:id", m.handler.Delete)
	api.GET("/organizations/:id/stream-business-unit", m.handler.StreamBusinessUnit)
}
