// File: mutawwif/handlers/bundle.go
package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Assistant endpoints
	RespondHandler        gin.HandlerFunc
	StartSessionHandler   gin.HandlerFunc
	SendMessageHandler    gin.HandlerFunc
	GetTranscriptHandler  gin.HandlerFunc
	QuickQuestionsHandler gin.HandlerFunc

	// Listing endpoints
	GetListingsHandler    gin.HandlerFunc
	FilterListingsHandler gin.HandlerFunc

	// Budget endpoints
	AllocateBudgetHandler  gin.HandlerFunc
	RecommendationsHandler gin.HandlerFunc
}
