package core

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Date is a calendar date in UTC, serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

const isoDate = "2006-01-02"

// NewDate returns the given calendar date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf drops the time of day from t, keeping its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), t.Month(), t.Day())
}

// ParseISODate parses YYYY-MM-DD.
func ParseISODate(s string) (Date, error) {
	t, err := time.Parse(isoDate, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string { return d.Format(isoDate) }

// FirstOfMonth returns the first day of d's month.
func (d Date) FirstOfMonth() Date { return NewDate(d.Year(), d.Month(), 1) }

// AddDays shifts d by n calendar days.
func (d Date) AddDays(n int) Date { return DateOf(d.Time.AddDate(0, 0, n)) }

// NextMonth returns the first day of the following month.
func (d Date) NextMonth() Date { return DateOf(d.FirstOfMonth().Time.AddDate(0, 1, 0)) }

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseISODate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// User is an account holder.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// Category classifies transactions as a kind of income or expense.
// Default categories are seeded at registration and cannot be changed.
type Category struct {
	ID          uuid.UUID  `json:"id"`
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	IsIncome    bool       `json:"is_income"`
	IsDefault   bool       `json:"is_default"`
	UserID      *uuid.UUID `json:"user_id"`
	HouseholdID *uuid.UUID `json:"household_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// NewCategory is the input for creating a category.
type NewCategory struct {
	Name        string     `json:"name"`
	Icon        string     `json:"icon"`
	Color       string     `json:"color"`
	IsIncome    bool       `json:"is_income"`
	IsDefault   bool       `json:"-"`
	UserID      uuid.UUID  `json:"-"`
	HouseholdID *uuid.UUID `json:"household_id"`
}

// CategoryPatch holds optional category changes; nil fields are kept.
type CategoryPatch struct {
	Name  *string `json:"name"`
	Icon  *string `json:"icon"`
	Color *string `json:"color"`
}

// Transaction is a single income or expense entry. Amount is always a
// non-negative magnitude; the category decides its direction.
type Transaction struct {
	ID          uuid.UUID       `json:"id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	Date        Date            `json:"date"`
	CategoryID  uuid.UUID       `json:"category_id"`
	UserID      uuid.UUID       `json:"user_id"`
	HouseholdID *uuid.UUID      `json:"household_id"`
	IsShared    bool            `json:"is_shared"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Category    *Category       `json:"category,omitempty"`
}

// NewTransaction is the input for creating a transaction.
type NewTransaction struct {
	UserID      uuid.UUID       `json:"-"`
	CategoryID  uuid.UUID       `json:"category_id"`
	HouseholdID *uuid.UUID      `json:"household_id"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	Date        Date            `json:"date"`
	IsShared    bool            `json:"is_shared"`
}

// TransactionPatch holds optional transaction changes.
type TransactionPatch struct {
	Amount      *decimal.Decimal `json:"amount"`
	Description *string          `json:"description"`
	Date        *Date            `json:"date"`
	CategoryID  *uuid.UUID       `json:"category_id"`
	IsShared    *bool            `json:"is_shared"`
}

// TransactionFilter narrows a transaction listing.
type TransactionFilter struct {
	StartDate  *Date
	EndDate    *Date
	CategoryID *uuid.UUID
	IsIncome   *bool
	IsShared   *bool
	Search     string
	Offset     int
	Limit      int
}

// Budget caps spending in one category for one month.
type Budget struct {
	ID             uuid.UUID       `json:"id"`
	Amount         decimal.Decimal `json:"amount"`
	Month          Date            `json:"month"`
	AlertThreshold int             `json:"alert_threshold"`
	CategoryID     uuid.UUID       `json:"category_id"`
	UserID         uuid.UUID       `json:"user_id"`
	HouseholdID    *uuid.UUID      `json:"household_id"`
	CreatedAt      time.Time       `json:"created_at"`
	Category       *Category       `json:"category,omitempty"`
}

// NewBudget is the input for creating or replacing a monthly budget.
type NewBudget struct {
	Amount         decimal.Decimal `json:"amount"`
	Month          Date            `json:"month"`
	CategoryID     uuid.UUID       `json:"category_id"`
	AlertThreshold *int            `json:"alert_threshold"`
	HouseholdID    *uuid.UUID      `json:"household_id"`
	UserID         uuid.UUID       `json:"-"`
}

// BudgetPatch holds optional budget changes.
type BudgetPatch struct {
	Amount         *decimal.Decimal `json:"amount"`
	AlertThreshold *int             `json:"alert_threshold"`
}

// BudgetStatus reports spending against a budget.
type BudgetStatus struct {
	Budget          Budget          `json:"budget"`
	Spent           decimal.Decimal `json:"spent"`
	Remaining       decimal.Decimal `json:"remaining"`
	Percentage      float64         `json:"percentage"`
	IsOverThreshold bool            `json:"is_over_threshold"`
	IsOverBudget    bool            `json:"is_over_budget"`
}

// Household groups users who share transactions, categories and budgets.
type Household struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	OwnerID    uuid.UUID `json:"owner_id"`
	InviteCode string    `json:"invite_code"`
	CreatedAt  time.Time `json:"created_at"`
}

// MemberRole is a member's standing within a household.
type MemberRole string

const (
	RoleOwner  MemberRole = "owner"
	RoleMember MemberRole = "member"
)

// HouseholdMember links a user to a household.
type HouseholdMember struct {
	ID          uuid.UUID  `json:"id"`
	HouseholdID uuid.UUID  `json:"-"`
	UserID      uuid.UUID  `json:"user_id"`
	UserName    string     `json:"user_name"`
	UserEmail   string     `json:"user_email"`
	Role        MemberRole `json:"role"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// MonthlySummary totals one month of activity.
type MonthlySummary struct {
	Month            Date            `json:"month"`
	TotalIncome      decimal.Decimal `json:"total_income"`
	TotalExpenses    decimal.Decimal `json:"total_expenses"`
	Net              decimal.Decimal `json:"net"`
	TransactionCount int             `json:"transaction_count"`
}

// CategoryTotal is a per-category aggregate read from storage.
type CategoryTotal struct {
	CategoryID uuid.UUID
	Name       string
	Icon       string
	Color      string
	IsIncome   bool
	Total      decimal.Decimal
	Count      int
}

// CategoryBreakdown is a category's share of a month's income or expenses.
type CategoryBreakdown struct {
	CategoryID       uuid.UUID       `json:"category_id"`
	CategoryName     string          `json:"category_name"`
	CategoryIcon     string          `json:"category_icon"`
	CategoryColor    string          `json:"category_color"`
	Total            decimal.Decimal `json:"total"`
	Percentage       float64         `json:"percentage"`
	TransactionCount int             `json:"transaction_count"`
}

// DailyTotal is the expense total for a single day.
type DailyTotal struct {
	Date   Date            `json:"date"`
	Amount decimal.Decimal `json:"amount"`
}
