package core

import (
	"context"
	"errors"
	"time"

	"github.com/JonMunkholm/budget/internal/config"
	"github.com/google/uuid"
)

// PasswordHasher hashes and checks account passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) bool
}

// TokenIssuer mints access tokens for authenticated users.
type TokenIssuer interface {
	Issue(userID uuid.UUID) (string, error)
}

// TextGenerator produces model text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ImportCompleted is published after an import commits.
type ImportCompleted struct {
	ImportID    uuid.UUID  `json:"import_id"`
	UserID      uuid.UUID  `json:"user_id"`
	CategoryID  uuid.UUID  `json:"category_id"`
	HouseholdID *uuid.UUID `json:"household_id,omitempty"`
	FileName    string     `json:"file_name"`
	Imported    int        `json:"imported"`
	Skipped     int        `json:"skipped"`
	CompletedAt time.Time  `json:"completed_at"`
}

// EventPublisher delivers domain events to other systems.
type EventPublisher interface {
	PublishImportCompleted(ctx context.Context, event ImportCompleted) error
}

// Deps are the collaborators a Service is built from. Events and Advisor
// are optional.
type Deps struct {
	Store     Store
	Passwords PasswordHasher
	Tokens    TokenIssuer
	Events    EventPublisher
	Advisor   TextGenerator
}

// Service is the entry point for every budget operation.
type Service struct {
	store     Store
	passwords PasswordHasher
	tokens    TokenIssuer
	events    EventPublisher
	advisor   TextGenerator
	limiter   *ImportLimiter

	importTimeout     time.Duration
	defaultDateFormat string
	aiTimeout         time.Duration
	aiContextDays     int

	now func() time.Time
}

// NewService wires a Service from its dependencies and configuration.
func NewService(deps Deps, cfg *config.Config) (*Service, error) {
	if deps.Store == nil {
		return nil, errors.New("core: store is required")
	}
	if deps.Passwords == nil || deps.Tokens == nil {
		return nil, errors.New("core: password hasher and token issuer are required")
	}

	dateFormat := cfg.Import.DefaultDateFormat
	if dateFormat == "" {
		dateFormat = DefaultDateFormat
	}

	return &Service{
		store:             deps.Store,
		passwords:         deps.Passwords,
		tokens:            deps.Tokens,
		events:            deps.Events,
		advisor:           deps.Advisor,
		limiter:           NewImportLimiter(cfg.Import.MaxConcurrent, cfg.Import.MaxWaitTime),
		importTimeout:     orDefault(cfg.Import.Timeout, 2*time.Minute),
		defaultDateFormat: dateFormat,
		aiTimeout:         orDefault(cfg.AI.Timeout, 30*time.Second),
		aiContextDays:     cfg.AI.ContextDays,
		now:               time.Now,
	}, nil
}

func orDefault(d, fallback time.Duration) time.Duration {
	if d <= 0 {
		return fallback
	}
	return d
}

// today is the current calendar date in UTC.
func (s *Service) today() Date {
	return DateOf(s.now().UTC())
}

// ImportLimiterStatus reports how many imports are running.
func (s *Service) ImportLimiterStatus() ImportLimiterStatus {
	return s.limiter.Status()
}

// WaitForImports blocks until running imports finish or ctx ends.
func (s *Service) WaitForImports(ctx context.Context) error {
	return s.limiter.WaitForDrain(ctx)
}

// scopeFor returns the caller's access scope. Selecting a household
// requires membership.
func (s *Service) scopeFor(ctx context.Context, userID uuid.UUID, householdID *uuid.UUID) (AccessScope, error) {
	if householdID == nil {
		return Personal(userID), nil
	}
	if _, err := s.store.GetMembership(ctx, *householdID, userID); err != nil {
		if isNotFound(err) {
			return AccessScope{}, ErrNotMember
		}
		return AccessScope{}, err
	}
	return Shared(userID, householdID), nil
}

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
