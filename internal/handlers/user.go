package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/lorenzo-leuck/ia-fase-7-gs/internal/services"
)

type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// GET /me
func (uh *UserHandler) GetMe(c *gin.Context) {
	me, err := uh.userService.GetMe(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "get_me_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"me": me})
}

// GET /users  (admin)
func (uh *UserHandler) ListUsers(c *gin.Context) {
	users, err := uh.userService.ListUsers(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": "list_users_failed", "detail": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}
