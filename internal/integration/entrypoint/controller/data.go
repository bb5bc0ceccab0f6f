// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/maintenance"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// DataController handles data maintenance endpoints.
type DataController struct {
	resetUseCase *maintenance.ResetDataUseCase
}

// NewDataController creates a new data controller instance.
func NewDataController(resetUseCase *maintenance.ResetDataUseCase) *DataController {
	return &DataController{resetUseCase: resetUseCase}
}

// Reset handles POST /data/reset requests. The destructive reset requires
// the explicit confirmation flag in the body.
func (c *DataController) Reset(ctx *gin.Context) {
	var req dto.ResetDataRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	err := c.resetUseCase.Execute(ctx.Request.Context(), maintenance.ResetDataInput{Confirm: req.Confirm})
	if err != nil {
		if errors.Is(err, domainerror.ErrResetNotConfirmed) {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Data reset requires explicit confirmation",
			})
			return
		}
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to reset data",
		})
		return
	}

	ctx.Status(http.StatusNoContent)
}
