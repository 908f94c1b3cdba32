// Package router assembles the gin engine of the API server.
package router

import (
	"net/http"
	"time"

	"dormhub/internal/config"
	"dormhub/internal/microservices/http-api/handler"
	"dormhub/internal/microservices/http-api/middleware"
	"dormhub/internal/microservices/http-api/service"
	"dormhub/internal/microservices/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Services is everything the routes are served from
type Services struct {
	Auth        service.AuthService
	Floors      service.FloorService
	Blocks      service.BlockService
	Rooms       service.RoomService
	Residents   service.ResidentService
	Ratings     service.RatingService
	Documents   service.DocumentService
	PublicRooms service.PublicRoomService
	Bookings    service.BookingService
	Comments    service.CommentService

	// RatingFeed serves the live rating events; nil disables the route
	RatingFeed *websocket.Hub
}

// New builds the engine with every route registered
func New(cfg *config.Config, svc Services) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/check-conn", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "API is alive"})
	})

	requireAuth := middleware.AuthMiddleware(svc.Auth, cfg.CookieName)
	loginLimiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute, cfg.LoginRateBurst)

	// Auth
	authHandler := handler.NewAuthHandler(svc.Auth, handler.CookieSettings{
		Name:   cfg.CookieName,
		Secure: cfg.CookieSecure,
	})
	auth := r.Group("/auth")
	{
		auth.POST("/register", authHandler.Register)
		auth.POST("/jwt/login", loginLimiter.Middleware(), authHandler.Login)
		auth.POST("/jwt/logout", requireAuth, authHandler.Logout)
	}
	r.GET("/users/me", requireAuth, authHandler.Me)

	// Management, all authenticated
	management := r.Group("/management", requireAuth)
	handler.NewFloorHandler(svc.Floors).RegisterRoutes(management.Group("/floors"))
	handler.NewBlockHandler(svc.Blocks).RegisterRoutes(management.Group("/blocks"))
	handler.NewRoomHandler(svc.Rooms).RegisterRoutes(management.Group("/rooms"))
	handler.NewResidentHandler(svc.Residents).RegisterRoutes(management.Group("/residents"))
	handler.NewRatingHandler(svc.Ratings).RegisterRoutes(management.Group("/ratings"))
	handler.NewPublicRoomHandler(svc.PublicRooms).RegisterRoutes(management.Group("/public-rooms"))
	handler.NewManagementHandler(svc.Rooms, svc.Residents, svc.Documents).RegisterRoutes(management)
	if svc.RatingFeed != nil {
		management.GET("/live/ratings", websocket.Handler(svc.RatingFeed, cfg.CORSOrigins))
	}

	handler.NewBookingHandler(svc.Bookings).RegisterRoutes(r.Group("/bookings", requireAuth))
	handler.NewCommentHandler(svc.Comments).RegisterRoutes(r.Group("/comments", requireAuth))

	return r
}
