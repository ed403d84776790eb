package core

import (
	"context"
	"strings"

	"github.com/google/uuid"
)

// Categories lists the categories visible in the caller's scope, expenses
// first, then by name.
func (s *Service) Categories(ctx context.Context, userID uuid.UUID, householdID *uuid.UUID) ([]Category, error) {
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	return s.store.ListCategories(ctx, scope)
}

// CreateCategory adds a custom category owned by userID.
func (s *Service) CreateCategory(ctx context.Context, userID uuid.UUID, c NewCategory) (*Category, error) {
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return nil, invalidInput("Name is required")
	}
	if c.Icon == "" {
		c.Icon = DefaultCategoryIcon
	}
	if c.Color == "" {
		c.Color = DefaultCategoryColor
	}
	if c.HouseholdID != nil {
		if _, err := s.scopeFor(ctx, userID, c.HouseholdID); err != nil {
			return nil, err
		}
	}
	c.UserID = userID
	c.IsDefault = false
	return s.store.CreateCategory(ctx, c)
}

// ownCategory loads a category owned by userID. Household categories
// created by others are not editable.
func (s *Service) ownCategory(ctx context.Context, userID, id uuid.UUID) (*Category, error) {
	c, err := s.store.FindOwnedCategory(ctx, id, Personal(userID))
	if err != nil {
		return nil, categoryLookupErr(err)
	}
	if c.UserID == nil || *c.UserID != userID {
		return nil, ErrCategoryNotFound
	}
	return c, nil
}

// UpdateCategory changes a custom category. Default categories are fixed.
func (s *Service) UpdateCategory(ctx context.Context, userID, id uuid.UUID, patch CategoryPatch) (*Category, error) {
	c, err := s.ownCategory(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if c.IsDefault {
		return nil, ErrDefaultCategory
	}
	if patch.Name != nil {
		name := strings.TrimSpace(*patch.Name)
		if name == "" {
			return nil, invalidInput("Name is required")
		}
		patch.Name = &name
	}
	return s.store.UpdateCategory(ctx, id, patch)
}

// DeleteCategory removes a custom category.
func (s *Service) DeleteCategory(ctx context.Context, userID, id uuid.UUID) error {
	c, err := s.ownCategory(ctx, userID, id)
	if err != nil {
		return err
	}
	if c.IsDefault {
		return ErrDeleteDefault
	}
	return s.store.DeleteCategory(ctx, id)
}
