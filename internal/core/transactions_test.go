package core

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// txStore adds single-transaction storage to fakeStore.
type txStore struct {
	*fakeStore
	rows map[uuid.UUID]Transaction
}

func (s *txStore) CreateTransaction(_ context.Context, t NewTransaction) (*Transaction, error) {
	row := Transaction{
		ID:          uuid.New(),
		Amount:      t.Amount,
		Description: t.Description,
		Date:        t.Date,
		CategoryID:  t.CategoryID,
		UserID:      t.UserID,
		HouseholdID: t.HouseholdID,
		IsShared:    t.IsShared,
	}
	s.rows[row.ID] = row
	return &row, nil
}

func (s *txStore) GetTransaction(_ context.Context, id, userID uuid.UUID) (*Transaction, error) {
	row, ok := s.rows[id]
	if !ok || row.UserID != userID {
		return nil, ErrNotFound
	}
	return &row, nil
}

func (s *txStore) UpdateTransaction(_ context.Context, id uuid.UUID, patch TransactionPatch) (*Transaction, error) {
	row := s.rows[id]
	if patch.Amount != nil {
		row.Amount = *patch.Amount
	}
	if patch.Description != nil {
		row.Description = patch.Description
	}
	if patch.CategoryID != nil {
		row.CategoryID = *patch.CategoryID
	}
	s.rows[id] = row
	return &row, nil
}

func (s *txStore) DeleteTransaction(_ context.Context, id uuid.UUID) error {
	delete(s.rows, id)
	return nil
}

func newTxService(t *testing.T) (*Service, *txStore) {
	t.Helper()
	store := &txStore{fakeStore: newFakeStore(), rows: make(map[uuid.UUID]Transaction)}
	svc, err := NewService(Deps{Store: store, Passwords: fakeHasher{}, Tokens: fakeTokens{}}, testConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, store
}

func TestCreateTransaction(t *testing.T) {
	svc, store := newTxService(t)
	user := uuid.New()
	cat := store.addCategory(user, nil, false)
	desc := "  Pijaca  "

	got, err := svc.CreateTransaction(context.Background(), user, NewTransaction{
		CategoryID:  cat.ID,
		Amount:      decimal.RequireFromString("840.50"),
		Description: &desc,
		Date:        NewDate(2024, time.March, 9),
	})
	if err != nil {
		t.Fatalf("CreateTransaction error: %v", err)
	}
	if got.UserID != user {
		t.Errorf("UserID = %s, want caller %s", got.UserID, user)
	}
	if got.Description == nil || *got.Description != "Pijaca" {
		t.Errorf("Description = %v, want trimmed", got.Description)
	}
}

func TestCreateTransaction_Rejections(t *testing.T) {
	svc, store := newTxService(t)
	user := uuid.New()
	cat := store.addCategory(user, nil, false)
	foreign := store.addCategory(uuid.New(), nil, false)
	hh := uuid.New()
	day := NewDate(2024, time.March, 9)

	tests := []struct {
		name    string
		tx      NewTransaction
		wantErr error
	}{
		{"negative amount", NewTransaction{CategoryID: cat.ID, Amount: decimal.NewFromInt(-1), Date: day}, ErrInvalidInput},
		{"missing date", NewTransaction{CategoryID: cat.ID, Amount: decimal.NewFromInt(1)}, ErrInvalidInput},
		{"foreign category", NewTransaction{CategoryID: foreign.ID, Amount: decimal.NewFromInt(1), Date: day}, ErrNotFound},
		{"not a member", NewTransaction{CategoryID: cat.ID, Amount: decimal.NewFromInt(1), Date: day, HouseholdID: &hh}, ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateTransaction(context.Background(), user, tt.tx); !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUpdateDeleteTransaction(t *testing.T) {
	svc, store := newTxService(t)
	owner := uuid.New()
	cat := store.addCategory(owner, nil, false)
	foreign := store.addCategory(uuid.New(), nil, false)
	ctx := context.Background()

	tx, err := svc.CreateTransaction(ctx, owner, NewTransaction{
		CategoryID: cat.ID,
		Amount:     decimal.NewFromInt(100),
		Date:       NewDate(2024, time.March, 1),
	})
	if err != nil {
		t.Fatalf("CreateTransaction: %v", err)
	}

	amount := decimal.NewFromInt(250)
	if _, err := svc.UpdateTransaction(ctx, uuid.New(), tx.ID, TransactionPatch{Amount: &amount}); !isDomain(err, "Transaction not found") {
		t.Errorf("stranger update error = %v", err)
	}
	if _, err := svc.UpdateTransaction(ctx, owner, tx.ID, TransactionPatch{CategoryID: &foreign.ID}); !isDomain(err, "Category not found") {
		t.Errorf("foreign category update error = %v", err)
	}
	got, err := svc.UpdateTransaction(ctx, owner, tx.ID, TransactionPatch{Amount: &amount})
	if err != nil || !got.Amount.Equal(amount) {
		t.Errorf("UpdateTransaction = %+v, %v", got, err)
	}

	if err := svc.DeleteTransaction(ctx, uuid.New(), tx.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("stranger delete error = %v", err)
	}
	if err := svc.DeleteTransaction(ctx, owner, tx.ID); err != nil {
		t.Fatalf("DeleteTransaction: %v", err)
	}
	if len(store.rows) != 0 {
		t.Error("transaction still stored after delete")
	}
}
