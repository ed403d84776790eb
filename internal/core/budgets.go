package core

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultAlertThreshold is the spending percentage that raises an alert
// when a budget does not set one.
const DefaultAlertThreshold = 80

var hundred = decimal.NewFromInt(100)

func validThreshold(t int) error {
	if t < 0 || t > 100 {
		return invalidInput("alert_threshold must be between 0 and 100")
	}
	return nil
}

// monthOrCurrent returns the first day of month, or of the current month
// when month is nil.
func (s *Service) monthOrCurrent(month *Date) Date {
	if month == nil {
		return s.today().FirstOfMonth()
	}
	return month.FirstOfMonth()
}

// Budgets lists budgets for a month, the current one by default.
func (s *Service) Budgets(ctx context.Context, userID uuid.UUID, month *Date, householdID *uuid.UUID) ([]Budget, error) {
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	return s.store.ListBudgets(ctx, scope, s.monthOrCurrent(month))
}

// SetBudget creates the caller's budget for a category and month, or
// replaces the amount and threshold of the existing one.
func (s *Service) SetBudget(ctx context.Context, userID uuid.UUID, b NewBudget) (*Budget, error) {
	if !b.Amount.IsPositive() {
		return nil, invalidInput("Amount must be greater than zero")
	}
	if b.Month.IsZero() {
		return nil, invalidInput("Month is required")
	}
	threshold := DefaultAlertThreshold
	if b.AlertThreshold != nil {
		threshold = *b.AlertThreshold
	}
	if err := validThreshold(threshold); err != nil {
		return nil, err
	}

	scope, err := s.scopeFor(ctx, userID, b.HouseholdID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.FindOwnedCategory(ctx, b.CategoryID, scope); err != nil {
		return nil, categoryLookupErr(err)
	}

	b.UserID = userID
	b.Month = b.Month.FirstOfMonth()
	b.AlertThreshold = &threshold

	existing, err := s.store.FindBudget(ctx, userID, b.CategoryID, b.Month)
	switch {
	case err == nil:
		return s.store.UpdateBudget(ctx, existing.ID, BudgetPatch{
			Amount:         &b.Amount,
			AlertThreshold: &threshold,
		})
	case isNotFound(err):
		return s.store.CreateBudget(ctx, b)
	default:
		return nil, fmt.Errorf("find budget: %w", err)
	}
}

// UpdateBudget changes one of the caller's budgets.
func (s *Service) UpdateBudget(ctx context.Context, userID, id uuid.UUID, patch BudgetPatch) (*Budget, error) {
	if _, err := s.ownBudget(ctx, userID, id); err != nil {
		return nil, err
	}
	if patch.Amount != nil && !patch.Amount.IsPositive() {
		return nil, invalidInput("Amount must be greater than zero")
	}
	if patch.AlertThreshold != nil {
		if err := validThreshold(*patch.AlertThreshold); err != nil {
			return nil, err
		}
	}
	return s.store.UpdateBudget(ctx, id, patch)
}

// DeleteBudget removes one of the caller's budgets.
func (s *Service) DeleteBudget(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.ownBudget(ctx, userID, id); err != nil {
		return err
	}
	return s.store.DeleteBudget(ctx, id)
}

func (s *Service) ownBudget(ctx context.Context, userID, id uuid.UUID) (*Budget, error) {
	b, err := s.store.GetBudget(ctx, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrBudgetNotFound
		}
		return nil, err
	}
	return b, nil
}

// BudgetStatuses reports spending against every budget of a month.
func (s *Service) BudgetStatuses(ctx context.Context, userID uuid.UUID, month *Date, householdID *uuid.UUID) ([]BudgetStatus, error) {
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	start := s.monthOrCurrent(month)
	end := start.NextMonth()

	budgets, err := s.store.ListBudgets(ctx, scope, start)
	if err != nil {
		return nil, err
	}

	statuses := make([]BudgetStatus, 0, len(budgets))
	for _, b := range budgets {
		spent, err := s.store.SumCategory(ctx, scope, b.CategoryID, start, end)
		if err != nil {
			return nil, fmt.Errorf("sum category %s: %w", b.CategoryID, err)
		}
		statuses = append(statuses, NewBudgetStatus(b, spent))
	}
	return statuses, nil
}

// NewBudgetStatus derives the status of b given the amount spent.
// Percentage is rounded to one decimal; the threshold compares against the
// unrounded value.
func NewBudgetStatus(b Budget, spent decimal.Decimal) BudgetStatus {
	pct := decimal.Zero
	if b.Amount.IsPositive() {
		pct = spent.Div(b.Amount).Mul(hundred)
	}
	return BudgetStatus{
		Budget:          b,
		Spent:           spent,
		Remaining:       b.Amount.Sub(spent),
		Percentage:      pct.Round(1).InexactFloat64(),
		IsOverThreshold: pct.GreaterThanOrEqual(decimal.NewFromInt(int64(b.AlertThreshold))),
		IsOverBudget:    spent.GreaterThan(b.Amount),
	}
}

// Percent returns part as a percentage of whole rounded to one decimal, or
// 0 when whole is not positive.
func Percent(part, whole decimal.Decimal) float64 {
	if !whole.IsPositive() {
		return 0
	}
	return part.Div(whole).Mul(hundred).Round(1).InexactFloat64()
}
