package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wtwr-app/wtwr-backend/internal/container"
	handlers "github.com/wtwr-app/wtwr-backend/internal/interface/http"
	"github.com/wtwr-app/wtwr-backend/internal/interface/middleware"
	"github.com/wtwr-app/wtwr-backend/pkg/helpers"
)

// UserModule wires signup/signin and the profile routes.
// Public: POST /signup, POST /signin (rate limited per IP)
// Protected: GET /users/me, PATCH /users/me
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	signinLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/signin", signinLimiter, m.Handler.Signin)

	users := rg.Group("/users")
	users.Use(middleware.Auth(m.JWT))
	{
		users.GET("/me", m.Handler.Me)
		users.PATCH("/me", m.Handler.UpdateMe)
	}
}
