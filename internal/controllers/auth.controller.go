package controllers

import (
	"net/http"

	"jobportal/internal/middleware"
	"jobportal/internal/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Register godoc
// @Summary Register a new account
// @Description Creates a user and returns a bearer token. A matching adminCode grants the admin role.
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body services.RegisterInput true "Registration data"
// @Success 201 {object} map[string]interface{} "Token and public user"
// @Failure 400 {object} map[string]interface{} "Validation error or email already registered"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Failure 500 {object} map[string]interface{} "Server error"
// @Router /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request data")
		return
	}

	result, err := ac.auth.Register(in)
	if err != nil {
		respondError(c, err, "registering user")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Login godoc
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param payload body services.LoginInput true "Credentials"
// @Success 200 {object} map[string]interface{} "Token and public user"
// @Failure 400 {object} map[string]interface{} "Missing email or password"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Failure 429 {object} map[string]interface{} "Too many requests"
// @Router /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var in services.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		badRequest(c, "Invalid request data")
		return
	}

	result, err := ac.auth.Login(in)
	if err != nil {
		respondError(c, err, "logging in")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"token":   result.Token,
		"user":    result.User,
	})
}

// Me godoc
// @Summary Current user
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Public user"
// @Failure 401 {object} map[string]interface{} "Not authenticated"
// @Router /auth/me [get]
func (ac *AuthController) Me(c *gin.Context) {
	current, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Not authorized to access this route"})
		return
	}

	user, err := ac.auth.CurrentUser(current.ID)
	if err != nil {
		respondError(c, err, "fetching user")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Verify godoc
// @Summary Check a bearer token
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Token is valid"
// @Failure 401 {object} map[string]interface{} "Invalid or expired token"
// @Router /auth/verify [get]
func (ac *AuthController) Verify(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"valid":   true,
	})
}
