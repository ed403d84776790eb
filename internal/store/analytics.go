package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func (s *Store) SumAmounts(ctx context.Context, scope core.AccessScope, from, to core.Date, isIncome bool) (decimal.Decimal, error) {
	userID, householdID := scopeArgs(scope)
	total, err := s.q.SumAmounts(ctx, database.SumAmountsParams{
		UserID:      userID,
		HouseholdID: householdID,
		FromDate:    toPgDate(from),
		ToDate:      toPgDate(to),
		IsIncome:    isIncome,
	})
	if err != nil {
		return decimal.Zero, wrapErr("sum amounts", err)
	}
	return toDecimal(total), nil
}

func (s *Store) CountTransactions(ctx context.Context, scope core.AccessScope, from, to core.Date) (int, error) {
	userID, householdID := scopeArgs(scope)
	n, err := s.q.CountTransactions(ctx, database.CountTransactionsParams{
		UserID:      userID,
		HouseholdID: householdID,
		FromDate:    toPgDate(from),
		ToDate:      toPgDate(to),
	})
	if err != nil {
		return 0, wrapErr("count transactions", err)
	}
	return int(n), nil
}

// CategoryTotals groups transactions in [from, to) by category, largest
// total first.
func (s *Store) CategoryTotals(ctx context.Context, scope core.AccessScope, from, to core.Date, isIncome *bool) ([]core.CategoryTotal, error) {
	userID, householdID := scopeArgs(scope)
	rows, err := s.q.CategoryTotals(ctx, database.CategoryTotalsParams{
		UserID:      userID,
		HouseholdID: householdID,
		FromDate:    toPgDate(from),
		ToDate:      toPgDate(to),
		IsIncome:    toPgBool(isIncome),
	})
	if err != nil {
		return nil, wrapErr("category totals", err)
	}
	out := make([]core.CategoryTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.CategoryTotal{
			CategoryID: row.ID,
			Name:       row.Name,
			Icon:       row.Icon,
			Color:      row.Color,
			IsIncome:   row.IsIncome,
			Total:      toDecimal(row.Total),
			Count:      int(row.Count),
		})
	}
	return out, nil
}

func (s *Store) SumCategory(ctx context.Context, scope core.AccessScope, categoryID uuid.UUID, from, to core.Date) (decimal.Decimal, error) {
	userID, householdID := scopeArgs(scope)
	total, err := s.q.SumCategory(ctx, database.SumCategoryParams{
		UserID:      userID,
		HouseholdID: householdID,
		CategoryID:  categoryID,
		FromDate:    toPgDate(from),
		ToDate:      toPgDate(to),
	})
	if err != nil {
		return decimal.Zero, wrapErr("sum category", err)
	}
	return toDecimal(total), nil
}

// DailyExpenses returns per-day expense totals in [from, to), days without
// expenses omitted.
func (s *Store) DailyExpenses(ctx context.Context, scope core.AccessScope, from, to core.Date) ([]core.DailyTotal, error) {
	userID, householdID := scopeArgs(scope)
	rows, err := s.q.DailyExpenses(ctx, database.DailyExpensesParams{
		UserID:      userID,
		HouseholdID: householdID,
		FromDate:    toPgDate(from),
		ToDate:      toPgDate(to),
	})
	if err != nil {
		return nil, wrapErr("daily expenses", err)
	}
	out := make([]core.DailyTotal, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.DailyTotal{Date: dateOf(row.Date), Amount: toDecimal(row.Total)})
	}
	return out, nil
}
