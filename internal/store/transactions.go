package store

import (
	"context"
	"strings"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

func toTransaction(row database.Transaction) *core.Transaction {
	return &core.Transaction{
		ID:          row.ID,
		Amount:      toDecimal(row.Amount),
		Description: textPtr(row.Description),
		Date:        dateOf(row.Date),
		CategoryID:  row.CategoryID,
		UserID:      row.UserID,
		HouseholdID: uuidPtr(row.HouseholdID),
		IsShared:    row.IsShared,
		CreatedAt:   row.CreatedAt.Time,
		UpdatedAt:   row.UpdatedAt.Time,
	}
}

// joinedTransaction converts a transaction row carrying its category.
func joinedTransaction(row database.GetTransactionRow) *core.Transaction {
	t := toTransaction(database.Transaction{
		ID:          row.ID,
		Amount:      row.Amount,
		Description: row.Description,
		Date:        row.Date,
		CategoryID:  row.CategoryID,
		UserID:      row.UserID,
		HouseholdID: row.HouseholdID,
		IsShared:    row.IsShared,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	})
	t.Category = &core.Category{
		ID:        row.CategoryID,
		Name:      row.CategoryName,
		Icon:      row.CategoryIcon,
		Color:     row.CategoryColor,
		IsIncome:  row.CategoryIsIncome,
		IsDefault: row.CategoryIsDefault,
	}
	return t
}

// ListTransactions returns a page of transactions in scope, newest first.
func (s *Store) ListTransactions(ctx context.Context, scope core.AccessScope, f core.TransactionFilter) ([]core.Transaction, error) {
	userID, householdID := scopeArgs(scope)
	params := database.ListTransactionsParams{
		UserID:      userID,
		HouseholdID: householdID,
		StartDate:   toPgDatePtr(f.StartDate),
		EndDate:     toPgDatePtr(f.EndDate),
		CategoryID:  toPgUUID(f.CategoryID),
		IsIncome:    toPgBool(f.IsIncome),
		IsShared:    toPgBool(f.IsShared),
		RowLimit:    int32(f.Limit),
		RowOffset:   int32(f.Offset),
	}
	if search := strings.TrimSpace(f.Search); search != "" {
		params.Search = pgtype.Text{String: search, Valid: true}
	}

	rows, err := s.q.ListTransactions(ctx, params)
	if err != nil {
		return nil, wrapErr("list transactions", err)
	}
	out := make([]core.Transaction, 0, len(rows))
	for _, row := range rows {
		out = append(out, *joinedTransaction(database.GetTransactionRow(row)))
	}
	return out, nil
}

// GetTransaction returns a transaction owned by userID.
func (s *Store) GetTransaction(ctx context.Context, id, userID uuid.UUID) (*core.Transaction, error) {
	row, err := s.q.GetTransaction(ctx, database.GetTransactionParams{ID: id, UserID: userID})
	if err != nil {
		return nil, wrapErr("get transaction", err)
	}
	return joinedTransaction(row), nil
}

func (s *Store) CreateTransaction(ctx context.Context, t core.NewTransaction) (*core.Transaction, error) {
	row, err := s.q.CreateTransaction(ctx, database.CreateTransactionParams{
		ID:          uuid.New(),
		Amount:      toPgNumeric(t.Amount),
		Description: toPgText(t.Description),
		Date:        toPgDate(t.Date),
		CategoryID:  t.CategoryID,
		UserID:      t.UserID,
		HouseholdID: toPgUUID(t.HouseholdID),
		IsShared:    t.IsShared,
	})
	if err != nil {
		return nil, wrapErr("create transaction", err)
	}
	return toTransaction(row), nil
}

func (s *Store) UpdateTransaction(ctx context.Context, id uuid.UUID, patch core.TransactionPatch) (*core.Transaction, error) {
	row, err := s.q.UpdateTransaction(ctx, database.UpdateTransactionParams{
		Amount:      toPgNumericPtr(patch.Amount),
		Description: toPgText(patch.Description),
		Date:        toPgDatePtr(patch.Date),
		CategoryID:  toPgUUID(patch.CategoryID),
		IsShared:    toPgBool(patch.IsShared),
		ID:          id,
	})
	if err != nil {
		return nil, wrapErr("update transaction", err)
	}
	return toTransaction(row), nil
}

func (s *Store) DeleteTransaction(ctx context.Context, id uuid.UUID) error {
	return wrapErr("delete transaction", s.q.DeleteTransaction(ctx, id))
}
