package core

import (
	"context"

	"github.com/google/uuid"
)

// Transaction listing page sizes.
const (
	DefaultTransactionLimit = 50
	MaxTransactionLimit     = 100
)

// TransactionQuery is a listing request: filters plus the household whose
// shared rows should be included.
type TransactionQuery struct {
	Filter      TransactionFilter
	HouseholdID *uuid.UUID
}

func (f *TransactionFilter) normalize() error {
	if f.Offset < 0 {
		return invalidInput("skip must be zero or greater")
	}
	switch {
	case f.Limit == 0:
		f.Limit = DefaultTransactionLimit
	case f.Limit < 1 || f.Limit > MaxTransactionLimit:
		return invalidInput("limit must be between 1 and %d", MaxTransactionLimit)
	}
	return nil
}

// Transactions lists transactions newest first.
func (s *Service) Transactions(ctx context.Context, userID uuid.UUID, q TransactionQuery) ([]Transaction, error) {
	if err := q.Filter.normalize(); err != nil {
		return nil, err
	}
	scope, err := s.scopeFor(ctx, userID, q.HouseholdID)
	if err != nil {
		return nil, err
	}
	return s.store.ListTransactions(ctx, scope, q.Filter)
}

// CreateTransaction records one transaction. The category must be visible
// to the caller.
func (s *Service) CreateTransaction(ctx context.Context, userID uuid.UUID, t NewTransaction) (*Transaction, error) {
	if t.Amount.IsNegative() {
		return nil, invalidInput("Amount must not be negative")
	}
	if t.Date.IsZero() {
		return nil, invalidInput("Date is required")
	}
	scope, err := s.scopeFor(ctx, userID, t.HouseholdID)
	if err != nil {
		return nil, err
	}
	if _, err := s.store.FindOwnedCategory(ctx, t.CategoryID, scope); err != nil {
		return nil, categoryLookupErr(err)
	}
	t.UserID = userID
	t.Description = trimOptional(t.Description)
	return s.store.CreateTransaction(ctx, t)
}

// Transaction returns one of the caller's transactions.
func (s *Service) Transaction(ctx context.Context, userID, id uuid.UUID) (*Transaction, error) {
	t, err := s.store.GetTransaction(ctx, id, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	return t, nil
}

// UpdateTransaction applies patch to one of the caller's transactions.
func (s *Service) UpdateTransaction(ctx context.Context, userID, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	current, err := s.Transaction(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	if patch.Amount != nil && patch.Amount.IsNegative() {
		return nil, invalidInput("Amount must not be negative")
	}
	if patch.CategoryID != nil && *patch.CategoryID != current.CategoryID {
		scope := Shared(userID, current.HouseholdID)
		if _, err := s.store.FindOwnedCategory(ctx, *patch.CategoryID, scope); err != nil {
			return nil, categoryLookupErr(err)
		}
	}
	patch.Description = trimOptional(patch.Description)
	return s.store.UpdateTransaction(ctx, id, patch)
}

// DeleteTransaction removes one of the caller's transactions.
func (s *Service) DeleteTransaction(ctx context.Context, userID, id uuid.UUID) error {
	if _, err := s.Transaction(ctx, userID, id); err != nil {
		return err
	}
	return s.store.DeleteTransaction(ctx, id)
}

func trimOptional(s *string) *string {
	if s == nil {
		return nil
	}
	return OptionalText(*s)
}
