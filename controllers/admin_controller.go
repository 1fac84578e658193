package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/roamly/api-go/services"
	"github.com/roamly/api-go/utils"
)

// AdminController exposes the moderation state machine and the admin-side
// user and audit views.
type AdminController struct {
	Moderation *services.ModerationService
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func NewAdminController(moderation *services.ModerationService) *AdminController {
	return &AdminController{Moderation: moderation}
}

// ApproveTour godoc
// @Summary Approve a pending tour
// @Description Moves the tour to approved and writes an audit entry
// @Tags admin
// @Produce json
// @Param tourId path string true "Tour ID"
// @Success 200 {object} models.Tour
// @Router /admin/tours/{tourId}/approve [put]
func (ac *AdminController) ApproveTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	tour, err := ac.Moderation.Approve(user.Actor(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour approved successfully", "tour": tour})
}

func (ac *AdminController) RejectTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	tour, err := ac.Moderation.Reject(user.Actor(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour rejected successfully", "tour": tour})
}

func (ac *AdminController) DeleteTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	tour, err := ac.Moderation.SoftDelete(user.Actor(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour deleted successfully", "tour": tour})
}

func (ac *AdminController) RestoreTour(c *gin.Context) {
	user := utils.GetUser(c)
	tourID, ok := parseID(c, "tourId")
	if !ok {
		return
	}

	tour, err := ac.Moderation.Restore(user.Actor(), tourID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Tour restored successfully", "tour": tour})
}

// GetAllTours returns the moderation queue: every non-deleted tour for
// moderators, deleted ones included for admins.
func (ac *AdminController) GetAllTours(c *gin.Context) {
	user := utils.GetUser(c)

	tours, err := ac.Moderation.ListForStaff(user.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"tours": tours})
}

func (ac *AdminController) GetAllUsers(c *gin.Context) {
	user := utils.GetUser(c)

	users, err := ac.Moderation.ListUsers(user.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

func (ac *AdminController) DeleteUser(c *gin.Context) {
	user := utils.GetUser(c)
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	deleted, err := ac.Moderation.SoftDeleteUser(user.Actor(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully", "user": deleted})
}

func (ac *AdminController) UpdateUserRole(c *gin.Context) {
	user := utils.GetUser(c)
	userID, ok := parseID(c, "userId")
	if !ok {
		return
	}

	var req UpdateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := ac.Moderation.UpdateUserRole(user.Actor(), userID, req.Role)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User role updated successfully", "user": updated})
}

func (ac *AdminController) GetAuditLogs(c *gin.Context) {
	user := utils.GetUser(c)

	logs, err := ac.Moderation.ListAuditLogs(user.Actor())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}
