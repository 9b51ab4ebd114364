package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/wtwr-app/wtwr-backend/internal/interface/http"
	"github.com/wtwr-app/wtwr-backend/internal/interface/middleware"
	"github.com/wtwr-app/wtwr-backend/pkg/helpers"
)

// ItemModule wires the clothing item routes.
// Public: GET /items
// Protected: POST /items, DELETE /items/:itemId, PUT/DELETE /items/:itemId/likes
type ItemModule struct {
	Handler *handlers.ItemHandler
	JWT     *helpers.JWTManager
}

func NewItemModule(h *handlers.ItemHandler, jwt *helpers.JWTManager) *ItemModule {
	return &ItemModule{Handler: h, JWT: jwt}
}

func (m *ItemModule) Register(rg *gin.RouterGroup) {
	rg.GET("/items", m.Handler.List)

	items := rg.Group("/items")
	items.Use(middleware.Auth(m.JWT))
	{
		items.POST("", m.Handler.Create)
		items.DELETE("/:itemId", m.Handler.Delete)
		items.PUT("/:itemId/likes", m.Handler.Like)
		items.DELETE("/:itemId/likes", m.Handler.Unlike)
	}
}
