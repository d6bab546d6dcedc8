package routes

import (
	"net/http"
	"time"

	"mutawwif/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAssistantRoutes registers the chat assistant endpoints.
func RegisterAssistantRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/assistant")
	{
		api.POST("/respond", hb.RespondHandler)
		api.POST("/session", hb.StartSessionHandler)
		api.POST("/session/:sessionID/message", hb.SendMessageHandler)
		api.GET("/session/:sessionID", hb.GetTranscriptHandler)
		api.GET("/quick-questions", hb.QuickQuestionsHandler)
	}
}

// RegisterListingRoutes registers catalog browsing and filtering endpoints.
func RegisterListingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/listings")
	{
		api.GET("", hb.GetListingsHandler)
		api.POST("/filter", hb.FilterListingsHandler)
	}
}

// RegisterBudgetRoutes registers the budget planning endpoints.
func RegisterBudgetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/budget")
	{
		api.POST("/allocate", hb.AllocateBudgetHandler)
		api.POST("/recommendations", hb.RecommendationsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm Mutawwif"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAssistantRoutes(r, hb)
	RegisterListingRoutes(r, hb)
	RegisterBudgetRoutes(r, hb)
	RegisterHealthRoute(r)
}
