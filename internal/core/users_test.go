package core

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestRegister(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	tok, err := svc.Register(ctx, Registration{Email: " Ana@Example.com ", Name: "Ana", Password: "secret"})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if tok.TokenType != "bearer" || tok.AccessToken == "" {
		t.Errorf("token = %+v", tok)
	}

	user, err := store.GetUserByEmail(ctx, "ana@example.com")
	if err != nil {
		t.Fatalf("user not stored under normalized email: %v", err)
	}
	if user.PasswordHash != "hashed:secret" {
		t.Errorf("PasswordHash = %q", user.PasswordHash)
	}

	var seeded, income int
	for _, c := range store.categories {
		if c.UserID != nil && *c.UserID == user.ID && c.IsDefault {
			seeded++
			if c.IsIncome {
				income++
			}
		}
	}
	if seeded != 15 || income != 5 {
		t.Errorf("seeded %d categories (%d income), want 15 (5 income)", seeded, income)
	}

	_, err = svc.Register(ctx, Registration{Email: "ana@example.com", Name: "Ana 2", Password: "x"})
	if !errors.Is(err, ErrConflict) || !isDomain(err, "Email already registered") {
		t.Errorf("duplicate email error = %v", err)
	}
}

func TestRegister_Validation(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	tests := []struct {
		name string
		reg  Registration
	}{
		{"bad email", Registration{Email: "nope", Name: "A", Password: "p"}},
		{"missing name", Registration{Email: "a@b.rs", Name: "  ", Password: "p"}},
		{"missing password", Registration{Email: "a@b.rs", Name: "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.Register(context.Background(), tt.reg); !errors.Is(err, ErrInvalidInput) {
				t.Errorf("error = %v, want ErrInvalidInput", err)
			}
		})
	}
}

func TestLogin(t *testing.T) {
	store := newFakeStore()
	svc := newTestService(t, store)
	ctx := context.Background()

	if _, err := svc.Register(ctx, Registration{Email: "marko@example.com", Name: "Marko", Password: "pw"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := svc.Login(ctx, Credentials{Email: "MARKO@example.com", Password: "pw"}); err != nil {
		t.Errorf("Login error: %v", err)
	}

	for _, creds := range []Credentials{
		{Email: "marko@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "pw"},
	} {
		_, err := svc.Login(ctx, creds)
		if !errors.Is(err, ErrUnauthorized) || err.Error() != "Incorrect email or password" {
			t.Errorf("Login(%s) error = %v", creds.Email, err)
		}
	}
}

func TestCurrentUser_NotFound(t *testing.T) {
	svc := newTestService(t, newFakeStore())
	if _, err := svc.CurrentUser(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Errorf("error = %v, want ErrNotFound", err)
	}
}

func TestCategoryMutations(t *testing.T) {
	store := newFakeStore()
	user := uuid.New()
	custom := store.addCategory(user, nil, false)
	builtin := store.addCategory(user, nil, true)
	foreign := store.addCategory(uuid.New(), nil, false)
	svc := newTestService(t, store)
	ctx := context.Background()

	name := "Kafa"
	got, err := svc.UpdateCategory(ctx, user, custom.ID, CategoryPatch{Name: &name})
	if err != nil || got.Name != "Kafa" {
		t.Fatalf("UpdateCategory = %+v, %v", got, err)
	}

	if _, err := svc.UpdateCategory(ctx, user, builtin.ID, CategoryPatch{Name: &name}); !isDomain(err, "Cannot modify default categories") {
		t.Errorf("default update error = %v", err)
	}
	if err := svc.DeleteCategory(ctx, user, builtin.ID); !isDomain(err, "Cannot delete default categories") {
		t.Errorf("default delete error = %v", err)
	}
	if err := svc.DeleteCategory(ctx, user, foreign.ID); !isDomain(err, "Category not found") {
		t.Errorf("foreign delete error = %v", err)
	}
	if err := svc.DeleteCategory(ctx, user, custom.ID); err != nil {
		t.Errorf("DeleteCategory error: %v", err)
	}
	if _, ok := store.categories[custom.ID]; ok {
		t.Error("category still stored after delete")
	}
}

func TestTransactionFilterNormalize(t *testing.T) {
	tests := []struct {
		name      string
		filter    TransactionFilter
		wantLimit int
		wantErr   bool
	}{
		{name: "defaults", filter: TransactionFilter{}, wantLimit: DefaultTransactionLimit},
		{name: "max", filter: TransactionFilter{Limit: 100}, wantLimit: 100},
		{name: "over max", filter: TransactionFilter{Limit: 101}, wantErr: true},
		{name: "negative limit", filter: TransactionFilter{Limit: -1}, wantErr: true},
		{name: "negative skip", filter: TransactionFilter{Offset: -1}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := tt.filter
			err := f.normalize()
			if (err != nil) != tt.wantErr {
				t.Fatalf("normalize error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && f.Limit != tt.wantLimit {
				t.Errorf("Limit = %d, want %d", f.Limit, tt.wantLimit)
			}
		})
	}
}
