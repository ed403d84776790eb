package core

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/google/uuid"
)

// Category defaults applied when a request leaves them blank.
const (
	DefaultCategoryIcon  = "\U0001F4C1"
	DefaultCategoryColor = "#6B7280"
)

// defaultCategories are seeded for every new account.
var defaultCategories = []NewCategory{
	{Name: "Hrana i pi\u0107e", Icon: "\U0001F354", Color: "#EF4444"},
	{Name: "Stanovanje", Icon: "\U0001F3E0", Color: "#F97316"},
	{Name: "Transport", Icon: "\U0001F697", Color: "#EAB308"},
	{Name: "Zdravlje", Icon: "\U0001F48A", Color: "#22C55E"},
	{Name: "Zabava", Icon: "\U0001F3AC", Color: "#3B82F6"},
	{Name: "Ode\u0107a", Icon: "\U0001F455", Color: "#8B5CF6"},
	{Name: "Ra\u010duni", Icon: "\U0001F4F1", Color: "#EC4899"},
	{Name: "Edukacija", Icon: "\U0001F393", Color: "#14B8A6"},
	{Name: "Putovanja", Icon: "\u2708\ufe0f", Color: "#06B6D4"},
	{Name: "Ostalo", Icon: "\U0001F6D2", Color: "#6B7280"},

	{Name: "Plata", Icon: "\U0001F4B0", Color: "#10B981", IsIncome: true},
	{Name: "Freelance", Icon: "\U0001F4BC", Color: "#059669", IsIncome: true},
	{Name: "Pokloni", Icon: "\U0001F381", Color: "#34D399", IsIncome: true},
	{Name: "Investicije", Icon: "\U0001F4C8", Color: "#047857", IsIncome: true},
	{Name: "Ostali prihodi", Icon: "\U0001F4B5", Color: "#6EE7B7", IsIncome: true},
}

// DefaultCategories returns the seed categories for userID.
func DefaultCategories(userID uuid.UUID) []NewCategory {
	seed := make([]NewCategory, len(defaultCategories))
	for i, c := range defaultCategories {
		c.UserID = userID
		c.IsDefault = true
		seed[i] = c
	}
	return seed
}

// Registration is the input for creating an account.
type Registration struct {
	Email    string `json:"email"`
	Name     string `json:"name"`
	Password string `json:"password"`
}

func (r *Registration) normalize() error {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Name = strings.TrimSpace(r.Name)
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return invalidInput("Invalid email address")
	}
	if r.Name == "" {
		return invalidInput("Name is required")
	}
	if r.Password == "" {
		return invalidInput("Password is required")
	}
	return nil
}

// Credentials is the input for signing in.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AccessToken is returned by Register and Login.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (s *Service) issueToken(userID uuid.UUID) (*AccessToken, error) {
	token, err := s.tokens.Issue(userID)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &AccessToken{AccessToken: token, TokenType: "bearer"}, nil
}

// Register creates an account seeded with the default categories.
func (s *Service) Register(ctx context.Context, reg Registration) (*AccessToken, error) {
	if err := reg.normalize(); err != nil {
		return nil, err
	}

	if _, err := s.store.GetUserByEmail(ctx, reg.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !isNotFound(err) {
		return nil, fmt.Errorf("lookup email: %w", err)
	}

	hash, err := s.passwords.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	id := uuid.New()
	user, err := s.store.CreateUser(ctx, User{
		ID:           id,
		Email:        reg.Email,
		Name:         reg.Name,
		PasswordHash: hash,
	}, DefaultCategories(id))
	if err != nil {
		return nil, err
	}

	logging.FromContext(ctx).Info("user registered", "user_id", user.ID)
	return s.issueToken(user.ID)
}

// Login checks credentials and returns a new access token. Unknown emails
// and wrong passwords fail the same way.
func (s *Service) Login(ctx context.Context, creds Credentials) (*AccessToken, error) {
	email := strings.ToLower(strings.TrimSpace(creds.Email))
	user, err := s.store.GetUserByEmail(ctx, email)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if !s.passwords.Compare(user.PasswordHash, creds.Password) {
		return nil, ErrInvalidCredentials
	}
	return s.issueToken(user.ID)
}

// CurrentUser returns the account behind an authenticated request.
func (s *Service) CurrentUser(ctx context.Context, userID uuid.UUID) (*User, error) {
	user, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user, nil
}
