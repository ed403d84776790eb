package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func toCategory(row database.Category) core.Category {
	return core.Category{
		ID:          row.ID,
		Name:        row.Name,
		Icon:        row.Icon,
		Color:       row.Color,
		IsIncome:    row.IsIncome,
		IsDefault:   row.IsDefault,
		UserID:      uuidPtr(row.UserID),
		HouseholdID: uuidPtr(row.HouseholdID),
		CreatedAt:   row.CreatedAt.Time,
	}
}

func categoryParams(c core.NewCategory) database.CreateCategoryParams {
	return database.CreateCategoryParams{
		ID:          uuid.New(),
		Name:        c.Name,
		Icon:        c.Icon,
		Color:       c.Color,
		IsIncome:    c.IsIncome,
		IsDefault:   c.IsDefault,
		UserID:      pgtype.UUID{Bytes: c.UserID, Valid: true},
		HouseholdID: toPgUUID(c.HouseholdID),
	}
}

// ListCategories returns the categories visible in scope, expenses first.
func (s *Store) ListCategories(ctx context.Context, scope core.AccessScope) ([]core.Category, error) {
	rows, err := s.q.ListCategories(ctx, database.ListCategoriesParams{
		UserID:      pgtype.UUID{Bytes: scope.UserID, Valid: true},
		HouseholdID: toPgUUID(scope.HouseholdID),
	})
	if err != nil {
		return nil, wrapErr("list categories", err)
	}
	out := make([]core.Category, 0, len(rows))
	for _, row := range rows {
		out = append(out, toCategory(row))
	}
	return out, nil
}

// FindOwnedCategory returns the category when it is visible in scope.
func (s *Store) FindOwnedCategory(ctx context.Context, id uuid.UUID, scope core.AccessScope) (*core.Category, error) {
	row, err := s.q.GetScopedCategory(ctx, database.GetScopedCategoryParams{
		ID:          id,
		UserID:      pgtype.UUID{Bytes: scope.UserID, Valid: true},
		HouseholdID: toPgUUID(scope.HouseholdID),
	})
	if err != nil {
		return nil, wrapErr("find category", err)
	}
	c := toCategory(row)
	return &c, nil
}

func (s *Store) CreateCategory(ctx context.Context, nc core.NewCategory) (*core.Category, error) {
	row, err := s.q.CreateCategory(ctx, categoryParams(nc))
	if err != nil {
		return nil, wrapErr("create category", err)
	}
	c := toCategory(row)
	return &c, nil
}

func (s *Store) UpdateCategory(ctx context.Context, id uuid.UUID, patch core.CategoryPatch) (*core.Category, error) {
	row, err := s.q.UpdateCategory(ctx, database.UpdateCategoryParams{
		Name:  toPgText(patch.Name),
		Icon:  toPgText(patch.Icon),
		Color: toPgText(patch.Color),
		ID:    id,
	})
	if err != nil {
		return nil, wrapErr("update category", err)
	}
	c := toCategory(row)
	return &c, nil
}

func (s *Store) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return wrapErr("delete category", s.q.DeleteCategory(ctx, id))
}
