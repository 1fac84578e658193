package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
)

// DiscoveryController serves the unauthenticated read paths.
type DiscoveryController struct {
	Discovery *services.DiscoveryService
}

func NewDiscoveryController(discovery *services.DiscoveryService) *DiscoveryController {
	return &DiscoveryController{Discovery: discovery}
}

// GetFeed godoc
// @Summary Public tour feed
// @Description Approved, not-deleted tours, newest first
// @Tags discovery
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /tours [get]
func (dc *DiscoveryController) GetFeed(c *gin.Context) {
	tours, err := dc.Discovery.Feed()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (dc *DiscoveryController) SearchTours(c *gin.Context) {
	keyword := c.Query("keyword")

	tours, err := dc.Discovery.Search(keyword)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (dc *DiscoveryController) GetPopularTours(c *gin.Context) {
	tours, err := dc.Discovery.Popular()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (dc *DiscoveryController) GetTopCategories(c *gin.Context) {
	categories, err := dc.Discovery.TopCategories()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

func (dc *DiscoveryController) GetToursByUser(c *gin.Context) {
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	tours, err := dc.Discovery.ListByPublisher(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (dc *DiscoveryController) GetToursByCategory(c *gin.Context) {
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		return
	}

	tours, err := dc.Discovery.ListByCategory(categoryID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}
