package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
)

func toBudget(row database.Budget) *core.Budget {
	return &core.Budget{
		ID:             row.ID,
		Amount:         toDecimal(row.Amount),
		Month:          dateOf(row.Month),
		AlertThreshold: int(row.AlertThreshold),
		CategoryID:     row.CategoryID,
		UserID:         row.UserID,
		HouseholdID:    uuidPtr(row.HouseholdID),
		CreatedAt:      row.CreatedAt.Time,
	}
}

// ListBudgets returns the month's budgets in scope with their categories.
func (s *Store) ListBudgets(ctx context.Context, scope core.AccessScope, month core.Date) ([]core.Budget, error) {
	userID, householdID := scopeArgs(scope)
	rows, err := s.q.ListBudgets(ctx, database.ListBudgetsParams{
		UserID:      userID,
		HouseholdID: householdID,
		Month:       toPgDate(month),
	})
	if err != nil {
		return nil, wrapErr("list budgets", err)
	}

	out := make([]core.Budget, 0, len(rows))
	for _, row := range rows {
		b := toBudget(database.Budget{
			ID:             row.ID,
			Amount:         row.Amount,
			Month:          row.Month,
			AlertThreshold: row.AlertThreshold,
			CategoryID:     row.CategoryID,
			UserID:         row.UserID,
			HouseholdID:    row.HouseholdID,
			CreatedAt:      row.CreatedAt,
			UpdatedAt:      row.UpdatedAt,
		})
		b.Category = &core.Category{
			ID:        row.CategoryID,
			Name:      row.CategoryName,
			Icon:      row.CategoryIcon,
			Color:     row.CategoryColor,
			IsIncome:  row.CategoryIsIncome,
			IsDefault: row.CategoryIsDefault,
		}
		out = append(out, *b)
	}
	return out, nil
}

// FindBudget returns userID's budget for a category and month.
func (s *Store) FindBudget(ctx context.Context, userID, categoryID uuid.UUID, month core.Date) (*core.Budget, error) {
	row, err := s.q.FindBudget(ctx, database.FindBudgetParams{
		UserID:     userID,
		CategoryID: categoryID,
		Month:      toPgDate(month),
	})
	if err != nil {
		return nil, wrapErr("find budget", err)
	}
	return toBudget(row), nil
}

func (s *Store) GetBudget(ctx context.Context, id, userID uuid.UUID) (*core.Budget, error) {
	row, err := s.q.GetBudget(ctx, database.GetBudgetParams{ID: id, UserID: userID})
	if err != nil {
		return nil, wrapErr("get budget", err)
	}
	return toBudget(row), nil
}

func (s *Store) CreateBudget(ctx context.Context, b core.NewBudget) (*core.Budget, error) {
	threshold := core.DefaultAlertThreshold
	if b.AlertThreshold != nil {
		threshold = *b.AlertThreshold
	}
	row, err := s.q.CreateBudget(ctx, database.CreateBudgetParams{
		ID:             uuid.New(),
		Amount:         toPgNumeric(b.Amount),
		Month:          toPgDate(b.Month),
		AlertThreshold: int32(threshold),
		CategoryID:     b.CategoryID,
		UserID:         b.UserID,
		HouseholdID:    toPgUUID(b.HouseholdID),
	})
	if err != nil {
		if isUniqueViolation(err, "budgets_user_id_category_id_month_key") {
			return nil, wrapErr("create budget", core.ErrConflict)
		}
		return nil, wrapErr("create budget", err)
	}
	return toBudget(row), nil
}

func (s *Store) UpdateBudget(ctx context.Context, id uuid.UUID, patch core.BudgetPatch) (*core.Budget, error) {
	row, err := s.q.UpdateBudget(ctx, database.UpdateBudgetParams{
		Amount:         toPgNumericPtr(patch.Amount),
		AlertThreshold: toPgInt4(patch.AlertThreshold),
		ID:             id,
	})
	if err != nil {
		return nil, wrapErr("update budget", err)
	}
	return toBudget(row), nil
}

func (s *Store) DeleteBudget(ctx context.Context, id uuid.UUID) error {
	return wrapErr("delete budget", s.q.DeleteBudget(ctx, id))
}
