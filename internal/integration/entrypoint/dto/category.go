// Package dto defines data transfer objects for API requests and responses.
package dto

// AddCategoryRequest represents the request body for adding a category.
type AddCategoryRequest struct {
	Name string `json:"name" binding:"required,min=1"`
}

// AddCategoryResponse reports whether the category was actually appended or
// the call was an idempotent no-op.
type AddCategoryResponse struct {
	Name  string `json:"name"`
	Added bool   `json:"added"`
}

// CategoryListResponse represents the response for listing categories.
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
