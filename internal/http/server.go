package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pressplay/gamestore/internal/domain"
	"github.com/pressplay/gamestore/internal/http/handlers"
	"github.com/pressplay/gamestore/internal/http/middleware"
	"github.com/pressplay/gamestore/internal/infrastructure/auth"
	"github.com/pressplay/gamestore/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Server represents the HTTP server
type Server struct {
	router         *gin.Engine
	jwtService     auth.JWTService
	userRepo       domain.UserRepository
	authHandler    *handlers.AuthHandler
	userHandler    *handlers.UserHandler
	catalogHandler *handlers.CatalogHandler
	storeHandler   *handlers.StoreHandler
	friendHandler  *handlers.FriendHandler
	adminHandler   *handlers.AdminHandler
	errorHandler   *middleware.ErrorHandler
	port           string
}

// NewServer creates a new HTTP server
func NewServer(
	jwtService auth.JWTService,
	userRepo domain.UserRepository,
	authHandler *handlers.AuthHandler,
	userHandler *handlers.UserHandler,
	catalogHandler *handlers.CatalogHandler,
	storeHandler *handlers.StoreHandler,
	friendHandler *handlers.FriendHandler,
	adminHandler *handlers.AdminHandler,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
	port string,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(30 * time.Second))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(middleware.LoggerMiddleware(log))
	router.Use(gin.Recovery())

	server := &Server{
		router:         router,
		jwtService:     jwtService,
		userRepo:       userRepo,
		authHandler:    authHandler,
		userHandler:    userHandler,
		catalogHandler: catalogHandler,
		storeHandler:   storeHandler,
		friendHandler:  friendHandler,
		adminHandler:   adminHandler,
		errorHandler:   errorHandler,
		port:           port,
	}

	server.setupRoutes()
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/register", s.authHandler.Register)
			authRoutes.POST("/login", s.authHandler.Login)
		}

		// Browsing the catalog requires no account.
		v1.GET("/games", s.catalogHandler.ListGames)
		v1.GET("/games/:id", s.catalogHandler.GetGame)
		v1.GET("/games/:id/reviews", s.catalogHandler.GameReviews)
		v1.GET("/games/:id/reviews/stats", s.catalogHandler.GameReviewStats)
		v1.GET("/categories", s.catalogHandler.ListCategories)

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/users")
			{
				userRoutes.GET("/me", s.userHandler.Me)
				userRoutes.PUT("/me", s.userHandler.UpdateMe)
				userRoutes.PUT("/me/password", s.userHandler.ChangePassword)
				userRoutes.POST("/me/coins", s.userHandler.AddCoins)
			}

			cartRoutes := protected.Group("/cart")
			{
				cartRoutes.GET("", s.storeHandler.GetCart)
				cartRoutes.GET("/count", s.storeHandler.CartCount)
				cartRoutes.POST("/checkout", s.storeHandler.Checkout)
				cartRoutes.POST("/:id", s.storeHandler.AddToCart)
				cartRoutes.DELETE("/:id", s.storeHandler.RemoveFromCart)
			}

			wishlistRoutes := protected.Group("/wishlist")
			{
				wishlistRoutes.GET("", s.storeHandler.GetWishlist)
				wishlistRoutes.POST("/:id", s.storeHandler.AddToWishlist)
				wishlistRoutes.DELETE("/:id", s.storeHandler.RemoveFromWishlist)
			}

			protected.GET("/library", s.storeHandler.GetLibrary)
			protected.POST("/games/:id/purchase", s.storeHandler.Purchase)
			protected.POST("/games/:id/reviews", s.storeHandler.PostReview)
			protected.DELETE("/reviews/:id", s.storeHandler.DeleteReview)

			friendRoutes := protected.Group("/friends")
			{
				friendRoutes.GET("", s.friendHandler.List)
				friendRoutes.GET("/requests", s.friendHandler.PendingRequests)
				friendRoutes.POST("/requests/:id", s.friendHandler.SendRequest)
				friendRoutes.PUT("/requests/:id", s.friendHandler.Accept)
				friendRoutes.DELETE("/requests/:id", s.friendHandler.Reject)
				friendRoutes.GET("/:id/status", s.friendHandler.Status)
				friendRoutes.DELETE("/:id", s.friendHandler.Remove)
			}

			adminRoutes := protected.Group("/admin")
			adminRoutes.Use(middleware.AdminMiddleware(s.userRepo))
			{
				adminRoutes.GET("/dashboard", s.adminHandler.Dashboard)
				adminRoutes.GET("/categories/summary", s.adminHandler.CategorySummaries)

				adminRoutes.GET("/users", s.adminHandler.ListUsers)
				adminRoutes.GET("/users/:id", s.adminHandler.GetUser)
				adminRoutes.PUT("/users/:id", s.adminHandler.UpdateUser)
				adminRoutes.DELETE("/users/:id", s.adminHandler.DeleteUser)
				adminRoutes.POST("/users/:id/ban", s.adminHandler.BanUser)
				adminRoutes.POST("/users/:id/unban", s.adminHandler.UnbanUser)

				adminRoutes.POST("/games", s.adminHandler.CreateGame)
				adminRoutes.PUT("/games/:id", s.adminHandler.UpdateGame)
				adminRoutes.DELETE("/games/:id", s.adminHandler.DeleteGame)
				adminRoutes.POST("/games/:id/screenshots", s.adminHandler.AddScreenshot)
				adminRoutes.DELETE("/screenshots/:id", s.adminHandler.DeleteScreenshot)

				adminRoutes.POST("/categories", s.adminHandler.CreateCategory)
				adminRoutes.PUT("/categories/:id", s.adminHandler.UpdateCategory)
				adminRoutes.DELETE("/categories/:id", s.adminHandler.DeleteCategory)
			}
		}
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%s", s.port)
	return s.router.Run(addr)
}
