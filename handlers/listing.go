package handlers

import (
	"net/http"

	"mutawwif/models"
	"mutawwif/services/listing"
	"mutawwif/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ListingHandler exposes the catalog browsing and filtering endpoints.
type ListingHandler struct {
	Svc listing.ListingService
}

func NewListingHandler(svc listing.ListingService) *ListingHandler {
	return &ListingHandler{Svc: svc}
}

// GetListingsHandler handles GET /api/listings?category=.
func (h *ListingHandler) GetListingsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	category := c.Query("category")

	items, err := h.Svc.GetListings(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to fetch listings", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

// FilterListingsHandler handles POST /api/listings/filter. An empty result
// is a valid outcome and returns 200 with an empty array.
func (h *ListingHandler) FilterListingsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req struct {
		Category   string `json:"category"`
		PriceBand  string `json:"priceBand"`
		RatingBand string `json:"ratingBand"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	criteria := models.FilterCriteria{PriceBand: req.PriceBand, RatingBand: req.RatingBand}
	items, err := h.Svc.FilterListings(c.Request.Context(), req.Category, criteria)
	if err != nil {
		logger.Error("Failed to filter listings", zap.String("category", req.Category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
