package routes

import (
	"net/http"
	"time"

	"craftly/handlers"
	"craftly/middleware"
	"craftly/models"
	"craftly/services/session"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterSessionRoutes registers login, logout and registration endpoints.
func RegisterSessionRoutes(r *gin.Engine, sh *handlers.SessionHandler, sessions session.SessionService) {
	api := r.Group("/api/session")
	{
		api.POST("/login", sh.LoginHandler)
		api.POST("/register/client", sh.RegisterClientHandler)
		api.POST("/register/provider", sh.RegisterProviderHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.SessionAuthMiddleware(sessions))
		api.GET("/me", sh.MeHandler)
		api.POST("/logout", sh.LogoutHandler)
	}
}

// RegisterCartRoutes registers the client cart endpoints.
func RegisterCartRoutes(r *gin.Engine, ch *handlers.CartHandler, sessions session.SessionService) {
	api := r.Group("/api/cart")
	{
		api.Use(middleware.SessionAuthMiddleware(sessions))
		api.Use(middleware.RequireRole(models.RoleClient))
		api.GET("", ch.GetCartHandler)
		api.POST("/items", ch.AddItemHandler)
		api.PUT("/items/:itemID", ch.UpdateQuantityHandler)
		api.DELETE("/items/:itemID", ch.RemoveItemHandler)
		api.DELETE("", ch.ClearCartHandler)
	}
}

// RegisterBookingRoutes registers booking creation, listings, status updates
// and the payment handoff.
func RegisterBookingRoutes(r *gin.Engine, bh *handlers.BookingHandler, sessions session.SessionService) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.SessionAuthMiddleware(sessions))

		client := api.Group("")
		client.Use(middleware.RequireRole(models.RoleClient))
		client.POST("", bh.CreateBookingHandler)
		client.GET("/mine", bh.MyBookingsHandler)
		client.GET("/current", bh.CurrentBookingHandler)
		client.POST("/current/pay", bh.PayCurrentBookingHandler)

		provider := api.Group("")
		provider.Use(middleware.RequireRole(models.RoleProvider))
		provider.GET("/incoming", bh.ProviderBookingsHandler)
		provider.PUT("/:bookingID/status", bh.UpdateStatusHandler)
	}
}

// RegisterCatalogRoutes registers the public catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, ch *handlers.CatalogHandler) {
	api := r.Group("/api/catalog")
	{
		api.GET("/categories", ch.CategoriesHandler)
		api.GET("/providers", ch.ProvidersHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Craftly"})
	})
}

// RegisterRoutes wires up the full HTTP surface.
func RegisterRoutes(r *gin.Engine, sh *handlers.SessionHandler, ch *handlers.CartHandler, bh *handlers.BookingHandler, cath *handlers.CatalogHandler, sessions session.SessionService) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterSessionRoutes(r, sh, sessions)
	RegisterCartRoutes(r, ch, sessions)
	RegisterBookingRoutes(r, bh, sessions)
	RegisterCatalogRoutes(r, cath)
	RegisterHealthRoute(r)
}
