package core

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/JonMunkholm/budget/internal/logging"
	"github.com/google/uuid"
)

var (
	errOwnerOnlyRegenerate = forbidden("Only the owner can regenerate the invite code")
	errOwnerOnlyRemove     = forbidden("Only the owner can remove members")
	errOwnerRemoveSelf     = invalidInput("Owner cannot remove themselves")
	errOwnerLeave          = invalidInput("Owner cannot leave. Transfer ownership or delete the household.")
	errLeaveNotMember      = &DomainError{Kind: ErrNotFound, Msg: "Not a member of this household"}
)

// inviteCodeBytes is the entropy of an invite code before encoding.
const inviteCodeBytes = 8

// NewInviteCode returns a random URL-safe invite code.
func NewInviteCode() (string, error) {
	b := make([]byte, inviteCodeBytes)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("invite code: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// Households lists the households userID belongs to.
func (s *Service) Households(ctx context.Context, userID uuid.UUID) ([]Household, error) {
	return s.store.ListHouseholds(ctx, userID)
}

// CreateHousehold creates a household owned by userID, who becomes its
// first member.
func (s *Service) CreateHousehold(ctx context.Context, userID uuid.UUID, name string) (*Household, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, invalidInput("Name is required")
	}
	code, err := NewInviteCode()
	if err != nil {
		return nil, err
	}
	h, err := s.store.CreateHousehold(ctx, Household{
		ID:         uuid.New(),
		Name:       name,
		OwnerID:    userID,
		InviteCode: code,
	})
	if err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("household created", "household_id", h.ID)
	return h, nil
}

// JoinHousehold adds userID to the household with the given invite code.
func (s *Service) JoinHousehold(ctx context.Context, userID uuid.UUID, code string) (*Household, error) {
	h, err := s.store.GetHouseholdByInviteCode(ctx, strings.TrimSpace(code))
	if err != nil {
		if isNotFound(err) {
			return nil, ErrInvalidInviteCode
		}
		return nil, err
	}

	if _, err := s.store.GetMembership(ctx, h.ID, userID); err == nil {
		return nil, ErrAlreadyMember
	} else if !isNotFound(err) {
		return nil, err
	}

	if err := s.store.AddMember(ctx, h.ID, userID, RoleMember); err != nil {
		return nil, err
	}
	logging.FromContext(ctx).Info("household joined", "household_id", h.ID)
	return h, nil
}

// Household returns a household the caller belongs to.
func (s *Service) Household(ctx context.Context, userID, id uuid.UUID) (*Household, error) {
	if _, err := s.scopeFor(ctx, userID, &id); err != nil {
		return nil, err
	}
	return s.household(ctx, id)
}

func (s *Service) household(ctx context.Context, id uuid.UUID) (*Household, error) {
	h, err := s.store.GetHousehold(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrHouseholdNotFound
		}
		return nil, err
	}
	return h, nil
}

// Members lists a household's members. The caller must be one of them.
func (s *Service) Members(ctx context.Context, userID, id uuid.UUID) ([]HouseholdMember, error) {
	if _, err := s.scopeFor(ctx, userID, &id); err != nil {
		return nil, err
	}
	return s.store.ListMembers(ctx, id)
}

// ownedHousehold returns the household if userID owns it, else denied.
func (s *Service) ownedHousehold(ctx context.Context, userID, id uuid.UUID, denied error) (*Household, error) {
	h, err := s.store.GetHousehold(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, denied
		}
		return nil, err
	}
	if h.OwnerID != userID {
		return nil, denied
	}
	return h, nil
}

// RegenerateInviteCode replaces the invite code. Owner only.
func (s *Service) RegenerateInviteCode(ctx context.Context, userID, id uuid.UUID) (*Household, error) {
	if _, err := s.ownedHousehold(ctx, userID, id, errOwnerOnlyRegenerate); err != nil {
		return nil, err
	}
	code, err := NewInviteCode()
	if err != nil {
		return nil, err
	}
	return s.store.SetInviteCode(ctx, id, code)
}

// RemoveMember removes memberID from the household. Owner only; the owner
// cannot remove themselves.
func (s *Service) RemoveMember(ctx context.Context, userID, id, memberID uuid.UUID) error {
	if _, err := s.ownedHousehold(ctx, userID, id, errOwnerOnlyRemove); err != nil {
		return err
	}
	if memberID == userID {
		return errOwnerRemoveSelf
	}
	if _, err := s.store.GetMembership(ctx, id, memberID); err != nil {
		if isNotFound(err) {
			return ErrMemberNotFound
		}
		return err
	}
	return s.store.RemoveMember(ctx, id, memberID)
}

// LeaveHousehold removes the caller from a household they do not own.
func (s *Service) LeaveHousehold(ctx context.Context, userID, id uuid.UUID) error {
	h, err := s.store.GetHousehold(ctx, id)
	switch {
	case err == nil && h.OwnerID == userID:
		return errOwnerLeave
	case err != nil && !isNotFound(err):
		return err
	}

	if _, err := s.store.GetMembership(ctx, id, userID); err != nil {
		if isNotFound(err) {
			return errLeaveNotMember
		}
		return err
	}
	return s.store.RemoveMember(ctx, id, userID)
}
