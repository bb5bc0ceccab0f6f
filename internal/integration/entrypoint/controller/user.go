// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/user"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// UserController handles the singleton user profile endpoints.
type UserController struct {
	getUseCase    *user.GetUserUseCase
	updateUseCase *user.UpdateUserUseCase
}

// NewUserController creates a new user controller instance.
func NewUserController(getUseCase *user.GetUserUseCase, updateUseCase *user.UpdateUserUseCase) *UserController {
	return &UserController{
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
	}
}

// Get handles GET /user requests.
func (c *UserController) Get(ctx *gin.Context) {
	output, err := c.getUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}

// Update handles PATCH /user requests.
func (c *UserController) Update(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), user.UpdateUserInput{
		Name:      req.Name,
		Email:     req.Email,
		Currency:  req.Currency,
		AvatarURL: req.AvatarURL,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to update user",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToUserResponse(output.User))
}
