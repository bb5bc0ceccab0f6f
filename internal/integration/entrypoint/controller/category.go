// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ledgerly/backend/internal/application/usecase/category"
	domainerror "github.com/ledgerly/backend/internal/domain/error"
	"github.com/ledgerly/backend/internal/integration/entrypoint/dto"
)

// CategoryController handles category vocabulary endpoints.
type CategoryController struct {
	listUseCase   *category.ListCategoriesUseCase
	addUseCase    *category.AddCategoryUseCase
	deleteUseCase *category.DeleteCategoryUseCase
}

// NewCategoryController creates a new category controller instance.
func NewCategoryController(
	listUseCase *category.ListCategoriesUseCase,
	addUseCase *category.AddCategoryUseCase,
	deleteUseCase *category.DeleteCategoryUseCase,
) *CategoryController {
	return &CategoryController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /categories requests.
func (c *CategoryController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve categories",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.CategoryListResponse{Categories: output.Categories})
}

// Add handles POST /categories requests. Adding an existing name is a no-op.
func (c *CategoryController) Add(ctx *gin.Context) {
	var req dto.AddCategoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidCategoryName),
		})
		return
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), category.AddCategoryInput{Name: req.Name})
	if err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	status := http.StatusCreated
	if !output.Added {
		status = http.StatusOK
	}
	ctx.JSON(status, dto.AddCategoryResponse{Name: req.Name, Added: output.Added})
}

// Delete handles DELETE /categories/:name requests. Removal is
// unconditional; referencing transactions and budgets are untouched.
func (c *CategoryController) Delete(ctx *gin.Context) {
	input := category.DeleteCategoryInput{Name: ctx.Param("name")}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCategoryError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCategoryError maps category errors to HTTP responses.
func (c *CategoryController) handleCategoryError(ctx *gin.Context, err error) {
	var catErr *domainerror.CategoryError
	if errors.As(err, &catErr) {
		status := http.StatusBadRequest
		if catErr.Code == domainerror.ErrCodeCategoryNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: catErr.Message,
			Code:  string(catErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
