package controllers

import (
	"net/http"

	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	auth *services.AuthService
}

func NewAdminController(auth *services.AuthService) *AdminController {
	return &AdminController{auth: auth}
}

// Promote godoc
// @Summary Promote a user to admin
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId path string true "User ID"
// @Success 200 {object} map[string]interface{} "Promoted user"
// @Failure 400 {object} map[string]interface{} "Invalid user ID"
// @Failure 403 {object} map[string]interface{} "Admin access required"
// @Failure 404 {object} map[string]interface{} "User not found"
// @Router /admin/promote/{userId} [put]
func (ac *AdminController) Promote(c *gin.Context) {
	id, ok := parseID(c, "userId", "user")
	if !ok {
		return
	}

	user, err := ac.auth.Promote(id)
	if err != nil {
		respondError(c, err, "promoting user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User promoted to admin successfully",
		"user":    user,
	})
}
