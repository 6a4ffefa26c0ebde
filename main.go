package main

import (
	"log"
	"net/http"
	"os"

	"neighborhood-stories/config"
	"neighborhood-stories/handlers"
	"neighborhood-stories/middleware"
	"neighborhood-stories/repositories"
	"neighborhood-stories/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database and configuration
	db := config.InitDB()
	adminCfg := config.LoadAdminConfig()

	// Initialize repositories
	storyRepo := repositories.NewStoryRepository(db)
	interestRepo := repositories.NewInterestRepository(db)

	// Initialize services
	authService := services.NewAuthService(adminCfg)
	storyService := services.NewStoryService(storyRepo)
	moderationService := services.NewModerationService(storyRepo, interestRepo, authService)
	interestService := services.NewInterestService(storyRepo, interestRepo, adminCfg.MeetupThreshold)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	storyHandler := handlers.NewStoryHandler(storyService)
	interestHandler := handlers.NewInterestHandler(interestService)
	adminHandler := handlers.NewAdminHandler(moderationService)

	// Setup router
	router := gin.Default()

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Public story routes
		stories := v1.Group("/stories")
		{
			stories.POST("", storyHandler.SubmitStory)
			stories.GET("", storyHandler.GetStories)
			stories.GET("/:id", storyHandler.GetStory)
			stories.POST("/:id/interest", interestHandler.ExpressInterest)
			stories.POST("/interest", interestHandler.ExpressInterestBatch)
			stories.POST("/:id/like", storyHandler.LikeStory)
			stories.POST("/:id/response", storyHandler.RespondToStory)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			admin.POST("/verify", authHandler.VerifyPassword)

			protected := admin.Group("/")
			protected.Use(middleware.AdminAuth(authService))
			{
				protected.GET("/stories", adminHandler.ListStories)
				protected.PUT("/stories", adminHandler.UpdateStoryStatus)
				protected.PUT("/stories/:id", adminHandler.UpdateStory)
				protected.GET("/stories/:id/interests", adminHandler.ListStoryInterests)
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
