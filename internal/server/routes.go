package server

import (
	"github.com/gin-contrib/cors"
	"go.uber.org/fx"

	"github.com/openmart/storegate/internal/server/api"
	"github.com/openmart/storegate/internal/server/biz"
	"github.com/openmart/storegate/internal/server/gql"
	"github.com/openmart/storegate/internal/server/middleware"
)

type Handlers struct {
	fx.In

	Graphql *gql.GraphqlHandler
	Auth    *api.AuthHandlers
	Cart    *api.CartHandlers
	Order   *api.OrderHandlers
	User    *api.UserHandlers
	System  *api.SystemHandlers
}

type Services struct {
	fx.In

	AuthService *biz.AuthService
}

func SetupRoutes(server *Server, handlers Handlers, services Services) {
	server.Use(middleware.WithRequestID())
	server.Use(middleware.AccessLog())

	if server.Config.CORS.Enabled {
		corsConfig := cors.DefaultConfig()
		corsConfig.AllowOrigins = server.Config.CORS.AllowedOrigins
		corsConfig.AllowMethods = server.Config.CORS.AllowedMethods
		corsConfig.AllowHeaders = server.Config.CORS.AllowedHeaders
		corsConfig.ExposeHeaders = server.Config.CORS.ExposedHeaders
		corsConfig.AllowCredentials = server.Config.CORS.AllowCredentials
		corsConfig.MaxAge = server.Config.CORS.MaxAge

		corsHandler := cors.New(corsConfig)
		server.Use(corsHandler)
		server.OPTIONS("*any", corsHandler)
	}

	base := server.Group(server.Config.BasePath)

	// Liveness and sign-in are open; everything else resolves the identity
	// first. Resolution is pass-through for requests without credentials so
	// each handler can make its own unauthenticated-vs-denied decision.
	base.GET("/health", handlers.System.Health)
	base.POST("/auth/signin", handlers.Auth.SignIn)

	authed := base.Group("", middleware.WithIdentity(services.AuthService))

	apiGroup := authed.Group("/api")
	{
		apiGroup.GET("/carts", handlers.Cart.Find)
		apiGroup.GET("/carts/:id", handlers.Cart.FindOne)
		apiGroup.POST("/carts", handlers.Cart.Create)

		apiGroup.GET("/orders", handlers.Order.Find)
		apiGroup.GET("/orders/:id", handlers.Order.FindOne)
		apiGroup.POST("/orders", handlers.Order.Create)

		apiGroup.PUT("/users/:id", middleware.WithSelfOrAdmin(), handlers.User.Update)
	}

	authed.POST("/graphql", handlers.Graphql.Graphql)
}
