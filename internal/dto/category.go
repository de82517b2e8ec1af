package dto

import (
	"budgetwise/internal/models"

	"github.com/google/uuid"
)

// CreateCategoryRequest is the payload for explicit category creation.
type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
	Type string `json:"type" validate:"required,category_type"`
}

// CategoryResponse is the wire shape of a category.
type CategoryResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Type string    `json:"type"`
}

// NewCategoryResponse converts a category model to its wire shape.
func NewCategoryResponse(category *models.Category) CategoryResponse {
	return CategoryResponse{
		ID:   category.ID,
		Name: category.Name,
		Type: category.Type,
	}
}

// NewCategoryListResponse converts a list of categories.
func NewCategoryListResponse(categories []models.Category) []CategoryResponse {
	responses := make([]CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(&categories[i]))
	}
	return responses
}
