package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/inkroute/inkroute/internal/domain/model"
	"github.com/inkroute/inkroute/internal/server/http/handlers"
	"github.com/inkroute/inkroute/internal/server/http/middleware"
	"github.com/inkroute/inkroute/internal/server/ws"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.MarketplaceFacade, hub *ws.Hub, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	authHandler := handlers.NewAuthHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)
	chatHandler := handlers.NewChatHandler(facade)
	reviewHandler := handlers.NewReviewHandler(facade)
	walletHandler := handlers.NewWalletHandler(facade)
	vendorHandler := handlers.NewVendorHandler(facade)
	adminHandler := handlers.NewAdminHandler(facade)

	engine.GET("/ws", func(c *gin.Context) {
		hub.ServeWS(c.Writer, c.Request)
	})

	api := engine.Group("/api")

	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)

	vendors := api.Group("/vendors")
	vendors.GET("", vendorHandler.List)
	vendors.GET("/:id", vendorHandler.Get)
	vendors.GET("/:id/reviews", reviewHandler.ForVendor)

	authed := api.Group("")
	authed.Use(middleware.AuthRequired(facade))

	authed.GET("/auth/me", authHandler.Me)
	authed.POST("/auth/push-token", authHandler.PushToken)
	authed.POST("/auth/rider-application", authHandler.ApplyRider)

	// Shop creation is self-service; Register grants the vendor role.
	authed.POST("/vendors", middleware.RoleRequired(model.RoleCustomer, model.RoleVendor), vendorHandler.Register)
	authed.GET("/vendors/mine", middleware.RoleRequired(model.RoleVendor), vendorHandler.Mine)

	orders := authed.Group("/orders")
	orders.POST("", middleware.RoleRequired(model.RoleCustomer), orderHandler.Place)
	orders.GET("", orderHandler.List)
	orders.GET("/available", middleware.RoleRequired(model.RoleRider), orderHandler.Available)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/ready", middleware.RoleRequired(model.RoleVendor), orderHandler.Ready)
	orders.POST("/:id/accept", middleware.RoleRequired(model.RoleRider), orderHandler.Accept)
	orders.POST("/:id/complete", middleware.RoleRequired(model.RoleRider, model.RoleCustomer), orderHandler.Complete)
	orders.PUT("/:id/status", middleware.RoleRequired(model.RoleAdmin), orderHandler.ForceStatus)
	orders.GET("/:id/track", orderHandler.Track)
	orders.POST("/:id/messages", chatHandler.Post)
	orders.GET("/:id/messages", chatHandler.History)
	orders.POST("/:id/review", middleware.RoleRequired(model.RoleCustomer), reviewHandler.Submit)
	orders.GET("/:id/review", reviewHandler.ForOrder)

	authed.POST("/riders/location", middleware.RoleRequired(model.RoleRider), orderHandler.Location)

	wallet := authed.Group("/wallet")
	wallet.GET("", walletHandler.Summary)
	wallet.GET("/history", walletHandler.History)
	wallet.POST("/withdraw", walletHandler.Withdraw)
	wallet.POST("/topup", walletHandler.Topup)

	admin := authed.Group("/admin")
	admin.Use(middleware.RoleRequired(model.RoleAdmin))
	admin.GET("/users", adminHandler.Users)
	admin.PUT("/users/:id/role", adminHandler.SetRole)
	admin.GET("/rider-applications", adminHandler.Applications)
	admin.POST("/rider-applications/:id", adminHandler.Decide)

	return engine
}
