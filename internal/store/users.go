package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
)

func toUser(row database.User) *core.User {
	return &core.User{
		ID:           row.ID,
		Email:        row.Email,
		Name:         row.Name,
		PasswordHash: row.PasswordHash,
		CreatedAt:    row.CreatedAt.Time,
	}
}

// CreateUser stores the user and their seed categories in one transaction.
func (s *Store) CreateUser(ctx context.Context, u core.User, seed []core.NewCategory) (*core.User, error) {
	var created database.User
	err := s.inTx(ctx, func(q *database.Queries) error {
		var err error
		created, err = q.CreateUser(ctx, database.CreateUserParams{
			ID:           u.ID,
			Email:        u.Email,
			Name:         u.Name,
			PasswordHash: u.PasswordHash,
		})
		if err != nil {
			if isUniqueViolation(err, "users_email_key") {
				return core.ErrEmailTaken
			}
			return wrapErr("create user", err)
		}
		for _, c := range seed {
			if _, err := q.CreateCategory(ctx, categoryParams(c)); err != nil {
				return wrapErr("seed category", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toUser(created), nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*core.User, error) {
	row, err := s.q.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, wrapErr("get user by email", err)
	}
	return toUser(row), nil
}

func (s *Store) GetUserByID(ctx context.Context, id uuid.UUID) (*core.User, error) {
	row, err := s.q.GetUserByID(ctx, id)
	if err != nil {
		return nil, wrapErr("get user", err)
	}
	return toUser(row), nil
}
