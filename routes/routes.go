package routes

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/controllers"
	"github.com/roamly/api-go/middleware"
	"github.com/roamly/api-go/repository"
	"github.com/roamly/api-go/services"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB, logger *log.Logger) {
	repos := repository.NewRepos(db)

	tourService := services.NewTourService(repos)
	moderationService := services.NewModerationService(repos, logger)
	discoveryService := services.NewDiscoveryService(repos)
	ticketService := services.NewTicketService(repos)
	categoryService := services.NewCategoryService(repos)

	// Initialize controllers
	authController := controllers.NewAuthController(repos.Users)
	tourController := controllers.NewTourController(tourService)
	interactionController := controllers.NewInteractionController(tourService)
	discoveryController := controllers.NewDiscoveryController(discoveryService)
	categoryController := controllers.NewCategoryController(categoryService)
	ticketController := controllers.NewTicketController(ticketService)
	adminController := controllers.NewAdminController(moderationService)

	// Public routes
	public := r.Group("/api")
	{
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)

		SetupDiscoveryRoutes(public, discoveryController, categoryController, tourController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)

		SetupTourRoutes(protected, tourController, interactionController)
		SetupTicketRoutes(protected, ticketController)
		SetupAdminRoutes(protected, adminController, categoryController, ticketController)
	}
}
