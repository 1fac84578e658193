package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
	"github.com/roamly/api-go/utils"
)

type TourController struct {
	Tours *services.TourService
}

type CreateTourRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	Location    string   `json:"location" binding:"required"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CategoryID  uint     `json:"categoryId" binding:"required"`
}

type UpdateTourRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Images      []string `json:"images"`
	Videos      []string `json:"videos"`
	Location    *string  `json:"location"`
	Latitude    *float64 `json:"latitude"`
	Longitude   *float64 `json:"longitude"`
	CategoryID  *uint    `json:"categoryId"`
}

func NewTourController(tours *services.TourService) *TourController {
	return &TourController{Tours: tours}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}

// CreateTour godoc
// @Summary Publish a new tour
// @Description Creates a tour; it stays pending until a moderator approves it
// @Tags tours
// @Accept json
// @Produce json
// @Param tour body CreateTourRequest true "Tour creation request"
// @Success 201 {object} models.Tour
// @Router /tours [post]
func (tc *TourController) CreateTour(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := tc.Tours.Create(user.Actor(), services.CreateTourInput{
		Name:        req.Name,
		Description: req.Description,
		Images:      req.Images,
		Videos:      req.Videos,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Tour created successfully", "tour": tour})
}

// GetTourByID serves the public tour detail. With a bearer token the
// publisher and staff also see tours hidden from the public view.
func (tc *TourController) GetTourByID(c *gin.Context) {
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	tour, err := tc.Tours.GetByID(optionalActor(c), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tour": tour})
}

// UpdateTour overwrites the whitelisted fields and sends the tour back to
// review.
func (tc *TourController) UpdateTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	var req UpdateTourRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tour, err := tc.Tours.Update(user.Actor(), tourID, services.UpdateTourCommand{
		Name:        req.Name,
		Description: req.Description,
		Images:      req.Images,
		Videos:      req.Videos,
		Location:    req.Location,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		CategoryID:  req.CategoryID,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour updated successfully", "tour": tour})
}

// SaveTour toggles the tour on the caller's saved list.
func (tc *TourController) SaveTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	saved, err := tc.Tours.ToggleSave(user.Actor(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	if saved {
		c.JSON(http.StatusOK, gin.H{"action": "saved", "message": "Tour saved successfully"})
	} else {
		c.JSON(http.StatusOK, gin.H{"action": "unsaved", "message": "Tour unsaved successfully"})
	}
}

func (tc *TourController) GetSavedTours(c *gin.Context) {
	user := utils.GetUser(c)

	tours, err := tc.Tours.ListSaved(user.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}
