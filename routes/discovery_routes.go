package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/controllers"
	"github.com/roamly/api-go/middleware"
)

// Discovery endpoints are unauthenticated reads over the approved,
// not-deleted subset. The tour detail takes an optional token so publishers
// and staff can open tours the public view hides.
func SetupDiscoveryRoutes(public *gin.RouterGroup, discoveryController *controllers.DiscoveryController, categoryController *controllers.CategoryController, tourController *controllers.TourController) {
	tours := public.Group("/tours")
	{
		tours.GET("", discoveryController.GetFeed)
		tours.GET("/search", discoveryController.SearchTours)
		tours.GET("/popular", discoveryController.GetPopularTours)
		tours.GET("/:tourId", middleware.OptionalAuth(), tourController.GetTourByID)
	}

	categories := public.Group("/categories")
	{
		categories.GET("", categoryController.GetAllCategories)
		categories.GET("/top", discoveryController.GetTopCategories)
		categories.GET("/:categoryId/tours", discoveryController.GetToursByCategory)
	}

	public.GET("/users/:userId/tours", discoveryController.GetToursByUser)
}
