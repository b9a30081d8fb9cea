package httptransport

import (
	"log/slog"

	"github.com/askarbekov/account-service/internal/auth"
	"github.com/askarbekov/account-service/internal/transport/http/handler"
	"github.com/askarbekov/account-service/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, accountHandler *handler.AccountHandler, tokens *auth.TokenManager) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public routes
	r.POST("/users/signup", accountHandler.Signup)
	r.POST("/users/login", accountHandler.Login)

	// Protected routes
	r.GET("/me", middleware.Auth(tokens), accountHandler.Me)

	return r
}
