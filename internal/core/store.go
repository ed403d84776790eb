package core

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Store is the persistence boundary. Lookups that find nothing return an
// error matching ErrNotFound. Date ranges are half-open: [from, to).

// UserStore persists accounts.
type UserStore interface {
	// CreateUser stores the user and their seed categories atomically.
	CreateUser(ctx context.Context, u User, seed []NewCategory) (*User, error)
	GetUserByEmail(ctx context.Context, email string) (*User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
}

// CategoryStore persists categories.
type CategoryStore interface {
	ListCategories(ctx context.Context, scope AccessScope) ([]Category, error)
	FindOwnedCategory(ctx context.Context, id uuid.UUID, scope AccessScope) (*Category, error)
	CreateCategory(ctx context.Context, c NewCategory) (*Category, error)
	UpdateCategory(ctx context.Context, id uuid.UUID, patch CategoryPatch) (*Category, error)
	DeleteCategory(ctx context.Context, id uuid.UUID) error
}

// TransactionStore persists transactions.
type TransactionStore interface {
	ListTransactions(ctx context.Context, scope AccessScope, f TransactionFilter) ([]Transaction, error)
	GetTransaction(ctx context.Context, id, userID uuid.UUID) (*Transaction, error)
	CreateTransaction(ctx context.Context, t NewTransaction) (*Transaction, error)
	UpdateTransaction(ctx context.Context, id uuid.UUID, patch TransactionPatch) (*Transaction, error)
	DeleteTransaction(ctx context.Context, id uuid.UUID) error
}

// ImportStore persists CSV imports.
type ImportStore interface {
	// SaveImport stores every transaction and the history record in a
	// single database transaction.
	SaveImport(ctx context.Context, rec NewImportRecord, txs []NewTransaction) (*ImportRecord, error)
	ListImports(ctx context.Context, userID uuid.UUID, limit int) ([]ImportRecord, error)
}

// BudgetStore persists budgets.
type BudgetStore interface {
	ListBudgets(ctx context.Context, scope AccessScope, month Date) ([]Budget, error)
	FindBudget(ctx context.Context, userID, categoryID uuid.UUID, month Date) (*Budget, error)
	GetBudget(ctx context.Context, id, userID uuid.UUID) (*Budget, error)
	CreateBudget(ctx context.Context, b NewBudget) (*Budget, error)
	UpdateBudget(ctx context.Context, id uuid.UUID, patch BudgetPatch) (*Budget, error)
	DeleteBudget(ctx context.Context, id uuid.UUID) error
}

// HouseholdStore persists households and memberships.
type HouseholdStore interface {
	ListHouseholds(ctx context.Context, userID uuid.UUID) ([]Household, error)
	// CreateHousehold stores the household with its owner as first member.
	CreateHousehold(ctx context.Context, h Household) (*Household, error)
	GetHousehold(ctx context.Context, id uuid.UUID) (*Household, error)
	GetHouseholdByInviteCode(ctx context.Context, code string) (*Household, error)
	GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*HouseholdMember, error)
	AddMember(ctx context.Context, householdID, userID uuid.UUID, role MemberRole) error
	ListMembers(ctx context.Context, householdID uuid.UUID) ([]HouseholdMember, error)
	SetInviteCode(ctx context.Context, householdID uuid.UUID, code string) (*Household, error)
	RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error
}

// AnalyticsStore runs aggregate queries.
type AnalyticsStore interface {
	SumAmounts(ctx context.Context, scope AccessScope, from, to Date, isIncome bool) (decimal.Decimal, error)
	CountTransactions(ctx context.Context, scope AccessScope, from, to Date) (int, error)
	// CategoryTotals groups by category, largest total first. A nil isIncome
	// returns both kinds.
	CategoryTotals(ctx context.Context, scope AccessScope, from, to Date, isIncome *bool) ([]CategoryTotal, error)
	SumCategory(ctx context.Context, scope AccessScope, categoryID uuid.UUID, from, to Date) (decimal.Decimal, error)
	DailyExpenses(ctx context.Context, scope AccessScope, from, to Date) ([]DailyTotal, error)
}

// Store combines every persistence concern.
type Store interface {
	UserStore
	CategoryStore
	TransactionStore
	ImportStore
	BudgetStore
	HouseholdStore
	AnalyticsStore
}
