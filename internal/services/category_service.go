package services

import (
	"errors"
	"fmt"
	"log/slog"

	"budgetwise/internal/models"
	"budgetwise/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidCategoryType   = errors.New("invalid category type")
	ErrCategoryAlreadyExists = errors.New("category already exists")
)

type categoryService struct {
	categoryRepo repositories.CategoryRepositoryInterface
}

func NewCategoryService(categoryRepo repositories.CategoryRepositoryInterface) CategoryServiceInterface {
	return &categoryService{
		categoryRepo: categoryRepo,
	}
}

// CreateCategory creates a category explicitly. Name collisions are detected
// case-insensitively, matching how the summary engine filters by name.
func (s *categoryService) CreateCategory(userID uuid.UUID, name, categoryType string) (*models.Category, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}
	if name == "" {
		return nil, fmt.Errorf("%w: name", ErrMissingParameter)
	}
	if !models.IsValidCategoryType(categoryType) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCategoryType, categoryType)
	}

	existing, err := s.categoryRepo.GetByName(userID, name)
	if err == nil {
		return nil, fmt.Errorf("%w: %q", ErrCategoryAlreadyExists, existing.Name)
	}
	if !errors.Is(err, repositories.ErrCategoryNotFound) {
		slog.Error("failed to check category name",
			"user_id", userID,
			"name", name,
			"error", err)
		return nil, err
	}

	category := &models.Category{
		Name:   name,
		Type:   categoryType,
		UserID: userID,
	}
	if err := s.categoryRepo.Create(category); err != nil {
		slog.Error("failed to create category",
			"user_id", userID,
			"name", name,
			"error", err)
		return nil, err
	}

	slog.Info("category created",
		"user_id", userID,
		"category_id", category.ID,
		"name", category.Name,
		"type", category.Type)

	return category, nil
}

func (s *categoryService) GetUserCategories(userID uuid.UUID) ([]models.Category, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user_id", ErrMissingParameter)
	}
	return s.categoryRepo.GetByUserID(userID)
}
