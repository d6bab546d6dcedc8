// File: mutawwif/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mutawwif/catalog"
	"mutawwif/config"
	"mutawwif/handlers"
	"mutawwif/middleware"
	"mutawwif/routes"
	"mutawwif/services/assistant"
	"mutawwif/services/budget"
	"mutawwif/services/listing"
	"mutawwif/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// Catalog.
	catalogRepo := catalog.NewStaticRepository()

	// Chat session store. Transcripts are ephemeral; Redis is only used when
	// sessions must survive restarts or be shared across instances.
	var sessionStore assistant.SessionStore
	if config.AppConfig.ChatSessionStore == "redis" {
		ttl := time.Duration(config.AppConfig.ChatSessionTTLMin) * time.Minute
		sessionStore = assistant.NewRedisSessionStore(utils.GetChatCacheClient(), ttl)
	} else {
		sessionStore = assistant.NewMemorySessionStore()
	}

	// Services.
	assistantService := &assistant.DefaultAssistantService{Store: sessionStore}
	listingService := &listing.DefaultListingService{Catalog: catalogRepo}
	budgetService := &budget.DefaultBudgetService{}

	assistantHandler := handlers.NewAssistantHandler(assistantService)
	listingHandler := handlers.NewListingHandler(listingService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Assistant endpoints.
		RespondHandler:        assistantHandler.RespondHandler,
		StartSessionHandler:   assistantHandler.StartSessionHandler,
		SendMessageHandler:    assistantHandler.SendMessageHandler,
		GetTranscriptHandler:  assistantHandler.GetTranscriptHandler,
		QuickQuestionsHandler: assistantHandler.QuickQuestionsHandler,

		// Listing endpoints.
		GetListingsHandler:    listingHandler.GetListingsHandler,
		FilterListingsHandler: listingHandler.FilterListingsHandler,

		// Budget endpoints.
		AllocateBudgetHandler:  budgetHandler.AllocateBudgetHandler,
		RecommendationsHandler: budgetHandler.RecommendationsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
