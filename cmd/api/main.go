package main

import (
	"os"

	"github.com/fqwhipz/fqwhipz-backend/internal/catalog"
	"github.com/fqwhipz/fqwhipz-backend/internal/handlers"
	"github.com/fqwhipz/fqwhipz-backend/internal/middleware"
	"github.com/fqwhipz/fqwhipz-backend/internal/services"
	"github.com/fqwhipz/fqwhipz-backend/pkg/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using process environment")
	}

	// Seed the demo catalog
	store, err := catalog.NewStore(os.Getenv("DEMO_PASSWORD"))
	if err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	// Session store: Redis when configured, in-memory otherwise
	var sessions services.SessionStore
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		redisSessions, err := services.NewRedisSessionStore(redisURL)
		if err != nil {
			log.Fatalf("Failed to initialize Redis: %v", err)
		}
		sessions = redisSessions
		log.Info("Session store: redis")
	} else {
		sessions = services.NewMemorySessionStore()
		log.Info("Session store: in-memory")
	}

	fees := utils.DefaultFees

	// Initialize router
	r := gin.Default()

	// Configure CORS
	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"*"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))

	// Routes
	api := r.Group("/api")
	{
		// Public routes
		auth := api.Group("/auth")
		{
			auth.POST("/login", handlers.Login(store, sessions))
			auth.POST("/logout", handlers.Logout(sessions))
			auth.GET("/session", handlers.GetSession(sessions))
		}

		api.GET("/vehicles", handlers.SearchVehicles(store))
		api.GET("/vehicles/:id", handlers.GetVehicle(store))
		api.GET("/vehicles/:id/quote", handlers.GetVehicleQuote(store, fees))
		api.GET("/locations", handlers.GetLocations(store))
		api.GET("/faqs", handlers.GetFAQs(store))
		api.POST("/contact", handlers.SubmitContact(store))

		// Protected routes
		protected := api.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			users := protected.Group("/users")
			{
				users.GET("/profile", handlers.GetProfile(store))
			}

			bookings := protected.Group("/bookings")
			{
				bookings.POST("", handlers.CreateBooking(store, fees))
				bookings.GET("/customer", handlers.GetCustomerBookings(store))
				bookings.GET("/provider", handlers.GetProviderBookings(store))
				bookings.POST("/:id/accept", handlers.AcceptBooking(store))
				bookings.POST("/:id/decline", handlers.DeclineBooking(store))
			}

			provider := protected.Group("/provider")
			{
				provider.GET("/vehicles", handlers.GetProviderVehicles(store))
				provider.GET("/earnings", handlers.GetProviderEarnings(store))
				provider.GET("/stats", handlers.GetProviderStats(store))
			}
		}
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
