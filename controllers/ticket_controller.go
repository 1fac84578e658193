package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
	"github.com/roamly/api-go/utils"
)

type TicketController struct {
	Tickets *services.TicketService
}

type CreateTicketRequest struct {
	Reason      string `json:"reason" binding:"required"`
	Description string `json:"description" binding:"required"`
}

type TicketMessageRequest struct {
	Message string `json:"message" binding:"required"`
}

func NewTicketController(tickets *services.TicketService) *TicketController {
	return &TicketController{Tickets: tickets}
}

func (tc *TicketController) CreateTicket(c *gin.Context) {
	user := utils.GetUser(c)
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := tc.Tickets.Create(user.Actor(), req.Reason, req.Description)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Ticket created successfully", "ticket": ticket})
}

func (tc *TicketController) GetMyTickets(c *gin.Context) {
	user := utils.GetUser(c)

	tickets, err := tc.Tickets.ListByUser(user.Actor(), user.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (tc *TicketController) GetTicketByID(c *gin.Context) {
	user := utils.GetUser(c)
	ticketID, ok := parseID(c, "ticketId")
	if !ok {
		return
	}

	ticket, err := tc.Tickets.GetByID(user.Actor(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"ticket": ticket})
}

// SendMessage appends to the thread; closed tickets reject new messages.
func (tc *TicketController) SendMessage(c *gin.Context) {
	user := utils.GetUser(c)
	ticketID, ok := parseID(c, "ticketId")
	if !ok {
		return
	}

	var req TicketMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ticket, err := tc.Tickets.AppendMessage(user.Actor(), ticketID, req.Message)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully", "ticket": ticket})
}

func (tc *TicketController) GetAllTickets(c *gin.Context) {
	user := utils.GetUser(c)

	tickets, err := tc.Tickets.ListAll(user.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tickets": tickets})
}

func (tc *TicketController) CloseTicket(c *gin.Context) {
	user := utils.GetUser(c)
	ticketID, ok := parseID(c, "ticketId")
	if !ok {
		return
	}

	ticket, err := tc.Tickets.Close(user.Actor(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket closed successfully", "ticket": ticket})
}

func (tc *TicketController) ReopenTicket(c *gin.Context) {
	user := utils.GetUser(c)
	ticketID, ok := parseID(c, "ticketId")
	if !ok {
		return
	}

	ticket, err := tc.Tickets.Reopen(user.Actor(), ticketID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket opened successfully", "ticket": ticket})
}
