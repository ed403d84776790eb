package core

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/JonMunkholm/budget/internal/config"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// fakeStore is an in-memory Store. Methods a test does not exercise fall
// through to the embedded nil interface and panic.
type fakeStore struct {
	Store

	mu           sync.Mutex
	users        map[uuid.UUID]User
	categories   map[uuid.UUID]Category
	transactions []NewTransaction
	imports      []ImportRecord
	budgets      map[uuid.UUID]Budget
	households   map[uuid.UUID]Household
	members      map[uuid.UUID][]HouseholdMember
	totals       []CategoryTotal
	daily        []DailyTotal
	sums         map[uuid.UUID]decimal.Decimal

	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:      make(map[uuid.UUID]User),
		categories: make(map[uuid.UUID]Category),
		budgets:    make(map[uuid.UUID]Budget),
		households: make(map[uuid.UUID]Household),
		members:    make(map[uuid.UUID][]HouseholdMember),
		sums:       make(map[uuid.UUID]decimal.Decimal),
	}
}

func (f *fakeStore) addCategory(owner uuid.UUID, householdID *uuid.UUID, isDefault bool) Category {
	f.mu.Lock()
	defer f.mu.Unlock()
	o := owner
	c := Category{
		ID:          uuid.New(),
		Name:        "Groceries",
		UserID:      &o,
		HouseholdID: householdID,
		IsDefault:   isDefault,
	}
	f.categories[c.ID] = c
	return c
}

func (f *fakeStore) addMember(householdID, userID uuid.UUID, role MemberRole) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.members[householdID] = append(f.members[householdID], HouseholdMember{
		ID: uuid.New(), HouseholdID: householdID, UserID: userID, Role: role,
	})
}

// Users

func (f *fakeStore) CreateUser(_ context.Context, u User, seed []NewCategory) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[u.ID] = u
	for _, c := range seed {
		uid := c.UserID
		id := uuid.New()
		f.categories[id] = Category{ID: id, Name: c.Name, UserID: &uid, IsDefault: c.IsDefault, IsIncome: c.IsIncome}
	}
	return &u, nil
}

func (f *fakeStore) GetUserByEmail(_ context.Context, email string) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) GetUserByID(_ context.Context, id uuid.UUID) (*User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return &u, nil
	}
	return nil, ErrNotFound
}

// Categories

func (f *fakeStore) FindOwnedCategory(_ context.Context, id uuid.UUID, scope AccessScope) (*Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c, ok := f.categories[id]
	if !ok || !scope.Allows(c.UserID, c.HouseholdID) {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (f *fakeStore) UpdateCategory(_ context.Context, id uuid.UUID, patch CategoryPatch) (*Category, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	c := f.categories[id]
	if patch.Name != nil {
		c.Name = *patch.Name
	}
	f.categories[id] = c
	return &c, nil
}

func (f *fakeStore) DeleteCategory(_ context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.categories, id)
	return nil
}

// Imports

func (f *fakeStore) SaveImport(_ context.Context, rec NewImportRecord, txs []NewTransaction) (*ImportRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.saveErr != nil {
		return nil, f.saveErr
	}
	f.transactions = append(f.transactions, txs...)
	r := ImportRecord{
		ID:          uuid.New(),
		UserID:      rec.UserID,
		CategoryID:  rec.CategoryID,
		HouseholdID: rec.HouseholdID,
		FileName:    rec.FileName,
		Encoding:    rec.Encoding,
		Imported:    rec.Imported,
		Skipped:     rec.Skipped,
		CreatedAt:   time.Now(),
	}
	f.imports = append(f.imports, r)
	return &r, nil
}

func (f *fakeStore) ListImports(_ context.Context, userID uuid.UUID, limit int) ([]ImportRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []ImportRecord
	for i := len(f.imports) - 1; i >= 0 && len(out) < limit; i-- {
		if f.imports[i].UserID == userID {
			out = append(out, f.imports[i])
		}
	}
	return out, nil
}

// Budgets

func (f *fakeStore) ListBudgets(_ context.Context, scope AccessScope, month Date) ([]Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Budget
	for _, b := range f.budgets {
		uid := b.UserID
		if b.Month == month && scope.Allows(&uid, b.HouseholdID) {
			out = append(out, b)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Amount.LessThan(out[j].Amount) })
	return out, nil
}

func (f *fakeStore) FindBudget(_ context.Context, userID, categoryID uuid.UUID, month Date) (*Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, b := range f.budgets {
		if b.UserID == userID && b.CategoryID == categoryID && b.Month == month {
			return &b, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) GetBudget(_ context.Context, id, userID uuid.UUID) (*Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.budgets[id]
	if !ok || b.UserID != userID {
		return nil, ErrNotFound
	}
	return &b, nil
}

func (f *fakeStore) CreateBudget(_ context.Context, nb NewBudget) (*Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := Budget{
		ID:             uuid.New(),
		Amount:         nb.Amount,
		Month:          nb.Month,
		AlertThreshold: *nb.AlertThreshold,
		CategoryID:     nb.CategoryID,
		UserID:         nb.UserID,
		HouseholdID:    nb.HouseholdID,
	}
	f.budgets[b.ID] = b
	return &b, nil
}

func (f *fakeStore) UpdateBudget(_ context.Context, id uuid.UUID, patch BudgetPatch) (*Budget, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b := f.budgets[id]
	if patch.Amount != nil {
		b.Amount = *patch.Amount
	}
	if patch.AlertThreshold != nil {
		b.AlertThreshold = *patch.AlertThreshold
	}
	f.budgets[id] = b
	return &b, nil
}

// Households

func (f *fakeStore) CreateHousehold(_ context.Context, h Household) (*Household, error) {
	f.mu.Lock()
	f.households[h.ID] = h
	f.mu.Unlock()
	f.addMember(h.ID, h.OwnerID, RoleOwner)
	return &h, nil
}

func (f *fakeStore) GetHousehold(_ context.Context, id uuid.UUID) (*Household, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h, ok := f.households[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &h, nil
}

func (f *fakeStore) GetHouseholdByInviteCode(_ context.Context, code string) (*Household, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, h := range f.households {
		if h.InviteCode == code {
			return &h, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) GetMembership(_ context.Context, householdID, userID uuid.UUID) (*HouseholdMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members[householdID] {
		if m.UserID == userID {
			return &m, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeStore) AddMember(_ context.Context, householdID, userID uuid.UUID, role MemberRole) error {
	f.addMember(householdID, userID, role)
	return nil
}

func (f *fakeStore) ListMembers(_ context.Context, householdID uuid.UUID) ([]HouseholdMember, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]HouseholdMember(nil), f.members[householdID]...), nil
}

func (f *fakeStore) SetInviteCode(_ context.Context, householdID uuid.UUID, code string) (*Household, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	h := f.households[householdID]
	h.InviteCode = code
	f.households[householdID] = h
	return &h, nil
}

func (f *fakeStore) RemoveMember(_ context.Context, householdID, userID uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.members[householdID][:0]
	for _, m := range f.members[householdID] {
		if m.UserID != userID {
			kept = append(kept, m)
		}
	}
	f.members[householdID] = kept
	return nil
}

// Analytics

func (f *fakeStore) SumAmounts(_ context.Context, _ AccessScope, _, _ Date, isIncome bool) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, t := range f.totals {
		if t.IsIncome == isIncome {
			total = total.Add(t.Total)
		}
	}
	return total, nil
}

func (f *fakeStore) CountTransactions(_ context.Context, _ AccessScope, _, _ Date) (int, error) {
	n := 0
	for _, t := range f.totals {
		n += t.Count
	}
	return n, nil
}

func (f *fakeStore) CategoryTotals(_ context.Context, _ AccessScope, _, _ Date, isIncome *bool) ([]CategoryTotal, error) {
	var out []CategoryTotal
	for _, t := range f.totals {
		if isIncome == nil || t.IsIncome == *isIncome {
			out = append(out, t)
		}
	}
	return out, nil
}

func (f *fakeStore) SumCategory(_ context.Context, _ AccessScope, categoryID uuid.UUID, _, _ Date) (decimal.Decimal, error) {
	return f.sums[categoryID], nil
}

func (f *fakeStore) DailyExpenses(_ context.Context, _ AccessScope, from, to Date) ([]DailyTotal, error) {
	var out []DailyTotal
	for _, d := range f.daily {
		if !d.Date.Before(from.Time) && d.Date.Before(to.Time) {
			out = append(out, d)
		}
	}
	return out, nil
}

// Collaborators

type fakeHasher struct{}

func (fakeHasher) Hash(pw string) (string, error) { return "hashed:" + pw, nil }

func (fakeHasher) Compare(hash, pw string) bool { return hash == "hashed:"+pw }

type fakeTokens struct{}

func (fakeTokens) Issue(id uuid.UUID) (string, error) { return "token-" + id.String(), nil }

type fakeEvents struct {
	mu     sync.Mutex
	events []ImportCompleted
	err    error
}

func (f *fakeEvents) PublishImportCompleted(_ context.Context, e ImportCompleted) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, e)
	return f.err
}

type fakeGenerator struct {
	reply   string
	err     error
	prompts []string
}

func (f *fakeGenerator) Generate(_ context.Context, prompt string) (string, error) {
	f.prompts = append(f.prompts, prompt)
	return f.reply, f.err
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Import.MaxConcurrent = 2
	cfg.Import.MaxWaitTime = time.Second
	cfg.Import.Timeout = 5 * time.Second
	cfg.Import.DefaultDateFormat = DefaultDateFormat
	cfg.AI.Timeout = time.Second
	cfg.AI.ContextDays = 30
	return cfg
}

// fixedNow is the clock used by service tests.
var fixedNow = time.Date(2024, time.March, 15, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T, store *fakeStore, deps ...func(*Deps)) *Service {
	t.Helper()
	d := Deps{Store: store, Passwords: fakeHasher{}, Tokens: fakeTokens{}}
	for _, fn := range deps {
		fn(&d)
	}
	svc, err := NewService(d, testConfig())
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func csvUpload(lines ...string) Upload {
	return Upload{FileName: "statement.csv", Data: []byte(strings.Join(lines, "\n"))}
}

func isDomain(err error, msg string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Msg == msg
}
