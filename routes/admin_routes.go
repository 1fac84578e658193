package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/controllers"
	"github.com/roamly/api-go/middleware"
	"github.com/roamly/api-go/models"
)

// Staff routes sit behind a role gate on top of the auth middleware; the
// policy layer still decides per-operation (soft delete stays admin-only even
// though moderators can reach the group).
func SetupAdminRoutes(protected *gin.RouterGroup, adminController *controllers.AdminController, categoryController *controllers.CategoryController, ticketController *controllers.TicketController) {
	staff := protected.Group("/admin")
	staff.Use(middleware.RequireRoles(models.RoleModerator, models.RoleAdmin))
	{
		staff.GET("/tours", adminController.GetAllTours)
		staff.PUT("/tours/:tourId/approve", adminController.ApproveTour)
		staff.PUT("/tours/:tourId/reject", adminController.RejectTour)
		staff.DELETE("/tours/:tourId", adminController.DeleteTour)
		staff.PUT("/tours/:tourId/restore", adminController.RestoreTour)

		staff.GET("/tickets", ticketController.GetAllTickets)
		staff.PUT("/tickets/:ticketId/close", ticketController.CloseTicket)
		staff.PUT("/tickets/:ticketId/open", ticketController.ReopenTicket)

		staff.GET("/users", adminController.GetAllUsers)
		staff.DELETE("/users/:userId", adminController.DeleteUser)
		staff.PUT("/users/:userId/role", adminController.UpdateUserRole)

		staff.GET("/logs", adminController.GetAuditLogs)

		staff.POST("/categories", categoryController.CreateCategory)
		staff.DELETE("/categories/:categoryId", categoryController.DeleteCategory)
	}
}
