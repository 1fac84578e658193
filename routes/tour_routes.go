package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/controllers"
)

func SetupTourRoutes(protected *gin.RouterGroup, tourController *controllers.TourController, interactionController *controllers.InteractionController) {
	tours := protected.Group("/tours")
	{
		tours.POST("", tourController.CreateTour)
		tours.PUT("/:tourId", tourController.UpdateTour)
		tours.POST("/:tourId/save", tourController.SaveTour)

		tours.POST("/:tourId/comments", interactionController.AddComment)
		tours.PUT("/:tourId/comments/:commentId", interactionController.EditComment)
		tours.DELETE("/:tourId/comments/:commentId", interactionController.DeleteComment)

		tours.POST("/:tourId/ratings", interactionController.RateTour)
		tours.PUT("/:tourId/ratings/:ratingId", interactionController.EditRating)
		tours.DELETE("/:tourId/ratings/:ratingId", interactionController.DeleteRating)
	}

	protected.GET("/saved-tours", tourController.GetSavedTours)
}
