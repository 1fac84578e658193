package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/controllers"
)

func SetupTicketRoutes(protected *gin.RouterGroup, ticketController *controllers.TicketController) {
	tickets := protected.Group("/tickets")
	{
		tickets.POST("", ticketController.CreateTicket)
		tickets.GET("", ticketController.GetMyTickets)
		tickets.GET("/:ticketId", ticketController.GetTicketByID)
		tickets.POST("/:ticketId/messages", ticketController.SendMessage)
	}
}
