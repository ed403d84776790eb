package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// DefaultTrendDays is the trend window when the caller gives none.
const DefaultTrendDays = 30

// MaxTrendDays bounds the trend window.
const MaxTrendDays = 366

// MonthlySummary totals income, expenses and transaction count for the
// month containing month (today when nil).
func (s *Service) MonthlySummary(ctx context.Context, userID uuid.UUID, month *Date, householdID *uuid.UUID) (*MonthlySummary, error) {
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	start := s.monthOrCurrent(month)
	end := start.NextMonth()

	var (
		income, expenses decimal.Decimal
		count            int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		income, err = s.store.SumAmounts(gctx, scope, start, end, true)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.SumAmounts(gctx, scope, start, end, false)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = s.store.CountTransactions(gctx, scope, start, end)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &MonthlySummary{
		Month:            start,
		TotalIncome:      income,
		TotalExpenses:    expenses,
		Net:              income.Sub(expenses),
		TransactionCount: count,
	}, nil
}

// CategoryBreakdown splits a month's expenses (or income) by category,
// largest first, with each category's share of the total.
func (s *Service) CategoryBreakdown(ctx context.Context, userID uuid.UUID, month *Date, isIncome bool, householdID *uuid.UUID) ([]CategoryBreakdown, error) {
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	start := s.monthOrCurrent(month)

	totals, err := s.store.CategoryTotals(ctx, scope, start, start.NextMonth(), &isIncome)
	if err != nil {
		return nil, err
	}
	return BreakdownOf(totals), nil
}

// BreakdownOf converts totals into breakdown rows, keeping their order.
func BreakdownOf(totals []CategoryTotal) []CategoryBreakdown {
	grand := decimal.Zero
	for _, t := range totals {
		grand = grand.Add(t.Total)
	}

	out := make([]CategoryBreakdown, len(totals))
	for i, t := range totals {
		out[i] = CategoryBreakdown{
			CategoryID:       t.CategoryID,
			CategoryName:     t.Name,
			CategoryIcon:     t.Icon,
			CategoryColor:    t.Color,
			Total:            t.Total,
			Percentage:       Percent(t.Total, grand),
			TransactionCount: t.Count,
		}
	}
	return out
}

// SpendingTrends returns daily expense totals from days ago through today,
// one entry per day, zero on days without expenses.
func (s *Service) SpendingTrends(ctx context.Context, userID uuid.UUID, days int, householdID *uuid.UUID) ([]DailyTotal, error) {
	if days == 0 {
		days = DefaultTrendDays
	}
	if days < 0 || days > MaxTrendDays {
		return nil, invalidInput("days must be between 1 and %d", MaxTrendDays)
	}
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}

	end := s.today()
	start := end.AddDays(-days)
	daily, err := s.store.DailyExpenses(ctx, scope, start, end.AddDays(1))
	if err != nil {
		return nil, err
	}
	return FillDays(start, end, daily), nil
}

// FillDays returns one entry per date in [start, end], taking amounts from
// daily and zero elsewhere.
func FillDays(start, end Date, daily []DailyTotal) []DailyTotal {
	byDate := make(map[Date]decimal.Decimal, len(daily))
	for _, d := range daily {
		byDate[d.Date] = d.Amount
	}

	var out []DailyTotal
	for day := start; !day.After(end.Time); day = day.AddDays(1) {
		amount, ok := byDate[day]
		if !ok {
			amount = decimal.Zero
		}
		out = append(out, DailyTotal{Date: day, Amount: amount})
	}
	return out
}
