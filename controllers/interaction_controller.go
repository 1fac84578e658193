package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
	"github.com/roamly/api-go/utils"
)

// InteractionController covers the tour children: comments and ratings.
type InteractionController struct {
	Tours *services.TourService
}

type CommentRequest struct {
	Content string `json:"content" binding:"required"`
}

type RatingRequest struct {
	Score int `json:"score" binding:"required"`
}

func NewInteractionController(tours *services.TourService) *InteractionController {
	return &InteractionController{Tours: tours}
}

// AddComment godoc
// @Summary Comment on a tour
// @Description Appends a comment; only the created comment is returned
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 201 {object} models.Comment
// @Router /tours/{id}/comments [post]
func (ic *InteractionController) AddComment(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Tours.AddComment(user.Actor(), tourID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Comment added successfully", "comment": comment})
}

func (ic *InteractionController) EditComment(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	comment, err := ic.Tours.EditComment(user.Actor(), tourID, commentID, req.Content)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment updated successfully", "comment": comment})
}

func (ic *InteractionController) DeleteComment(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}
	commentID, ok := parseID(c, "commentId")
	if !ok {
		return
	}

	if err := ic.Tours.DeleteComment(user.Actor(), tourID, commentID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Comment deleted successfully"})
}

// RateTour godoc
// @Summary Rate a tour
// @Description Upserts the caller's star score; rating again overwrites it
// @Tags interactions
// @Accept json
// @Produce json
// @Param id path string true "Tour ID"
// @Success 201 {object} models.Rating
// @Router /tours/{id}/ratings [post]
func (ic *InteractionController) RateTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, created, err := ic.Tours.UpsertRating(user.Actor(), tourID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	if created {
		c.JSON(http.StatusCreated, gin.H{"message": "Rating added successfully", "rating": rating})
	} else {
		c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully", "rating": rating})
	}
}

func (ic *InteractionController) EditRating(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}
	ratingID, ok := parseID(c, "ratingId")
	if !ok {
		return
	}

	var req RatingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rating, err := ic.Tours.EditRating(user.Actor(), tourID, ratingID, req.Score)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating updated successfully", "rating": rating})
}

func (ic *InteractionController) DeleteRating(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}
	ratingID, ok := parseID(c, "ratingId")
	if !ok {
		return
	}

	if err := ic.Tours.DeleteRating(user.Actor(), tourID, ratingID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating deleted successfully"})
}
