package store

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// newIntegrationStore connects to TEST_DATABASE_URL and migrates it. Tests
// using it are skipped when the variable is unset.
func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := pgxpool.New(ctx, url)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}
	t.Cleanup(pool.Close)

	if err := database.RunMigrations(pool); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return New(pool)
}

func createTestUser(t *testing.T, s *Store) (*core.User, []core.Category) {
	t.Helper()
	ctx := context.Background()
	id := uuid.New()
	u, err := s.CreateUser(ctx, core.User{
		ID:           id,
		Email:        id.String() + "@example.com",
		Name:         "Test",
		PasswordHash: "x",
	}, core.DefaultCategories(id))
	if err != nil {
		t.Fatalf("CreateUser: %v", err)
	}
	cats, err := s.ListCategories(ctx, core.Personal(id))
	if err != nil {
		t.Fatalf("ListCategories: %v", err)
	}
	return u, cats
}

func TestIntegration_UserAndCategories(t *testing.T) {
	s := newIntegrationStore(t)
	u, cats := createTestUser(t, s)

	if len(cats) != 15 {
		t.Fatalf("seeded %d categories, want 15", len(cats))
	}
	if cats[0].IsIncome {
		t.Error("expense categories should be listed first")
	}

	_, err := s.CreateUser(context.Background(), core.User{ID: uuid.New(), Email: u.Email, Name: "Dup", PasswordHash: "x"}, nil)
	if !errors.Is(err, core.ErrConflict) {
		t.Errorf("duplicate email error = %v, want ErrConflict", err)
	}

	if _, err := s.GetUserByEmail(context.Background(), "missing-"+u.Email); !errors.Is(err, core.ErrNotFound) {
		t.Errorf("missing user error = %v", err)
	}
}

func TestIntegration_SaveImportAndAnalytics(t *testing.T) {
	s := newIntegrationStore(t)
	ctx := context.Background()
	u, cats := createTestUser(t, s)
	cat := cats[0]

	march := core.NewDate(2024, time.March, 1)
	txs := []core.NewTransaction{
		{UserID: u.ID, CategoryID: cat.ID, Amount: decimal.RequireFromString("1234.56"), Date: march.AddDays(2)},
		{UserID: u.ID, CategoryID: cat.ID, Amount: decimal.RequireFromString("100.44"), Date: march.AddDays(2)},
		{UserID: u.ID, CategoryID: cat.ID, Amount: decimal.NewFromInt(5), Date: march.NextMonth()},
	}
	rec, err := s.SaveImport(ctx, core.NewImportRecord{
		UserID: u.ID, CategoryID: cat.ID, FileName: "izvod.csv", Encoding: "utf-8", Imported: 3,
	}, txs)
	if err != nil {
		t.Fatalf("SaveImport: %v", err)
	}
	if rec.Imported != 3 || rec.FileName != "izvod.csv" {
		t.Errorf("record = %+v", rec)
	}

	scope := core.Personal(u.ID)
	sum, err := s.SumCategory(ctx, scope, cat.ID, march, march.NextMonth())
	if err != nil || !sum.Equal(decimal.NewFromInt(1335)) {
		t.Errorf("SumCategory = %s, %v; want 1335", sum, err)
	}

	daily, err := s.DailyExpenses(ctx, scope, march, march.NextMonth())
	if err != nil || len(daily) != 1 || daily[0].Date != march.AddDays(2) {
		t.Errorf("DailyExpenses = %+v, %v", daily, err)
	}

	history, err := s.ListImports(ctx, u.ID, 10)
	if err != nil || len(history) != 1 {
		t.Errorf("ListImports = %d, %v", len(history), err)
	}
}
