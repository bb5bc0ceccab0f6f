// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/subscription"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// SubscriptionController handles the recurring payment view endpoint.
type SubscriptionController struct {
	listUseCase *subscription.ListSubscriptionsUseCase
}

// NewSubscriptionController creates a new subscription controller instance.
func NewSubscriptionController(listUseCase *subscription.ListSubscriptionsUseCase) *SubscriptionController {
	return &SubscriptionController{listUseCase: listUseCase}
}

// List handles GET /subscriptions requests.
func (c *SubscriptionController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve subscriptions",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToSubscriptionListResponse(output))
}
