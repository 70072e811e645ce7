package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/engine"
)

type RecommendationHandler struct {
	recommender *engine.Recommender
}

func NewRecommendationHandler(recommender *engine.Recommender) *RecommendationHandler {
	return &RecommendationHandler{recommender: recommender}
}

// GET /recommendations
// The full catalog; personalized selections come with burnout predictions.
func (rh *RecommendationHandler) Catalog(c *gin.Context) {
	catalog := rh.recommender.Catalog()
	c.JSON(http.StatusOK, gin.H{"recommendations": catalog, "count": len(catalog)})
}
