// internal/handlers/user.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/javajoker/wholesale-catalog/internal/i18n"
	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type UserHandler struct {
	userService *services.UserService
}

func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// GET /admin/users
func (h *UserHandler) GetUsers(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	users, total, err := h.userService.ListUsers(c.Request.Context(), params)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "user")
		return
	}

	utils.PaginatedResponse(c, utils.CreatePaginationResult(users, total, params))
}

// GET /admin/users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, ok := objectIDParam(c, "id", "user")
	if !ok {
		return
	}

	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "user")
		return
	}

	utils.SuccessResponse(c, user)
}

// POST /admin/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "user")
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserCreated),
		"user":    user,
	})
}

// PUT /admin/users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "user")
	if !ok {
		return
	}

	var req services.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	user, err := h.userService.UpdateUser(c.Request.Context(), id, actorID(c), &req)
	if err != nil {
		utils.ServiceErrorResponse(c, err, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserUpdated),
		"user":    user,
	})
}

// DELETE /admin/users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	id, ok := objectIDParam(c, "id", "user")
	if !ok {
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id, actorID(c)); err != nil {
		utils.ServiceErrorResponse(c, err, "user")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyUserDeleted),
	})
}
