package store

import (
	"context"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/JonMunkholm/budget/internal/database"
	"github.com/google/uuid"
)

func toHousehold(row database.Household) *core.Household {
	return &core.Household{
		ID:         row.ID,
		Name:       row.Name,
		OwnerID:    row.OwnerID,
		InviteCode: row.InviteCode,
		CreatedAt:  row.CreatedAt.Time,
	}
}

func (s *Store) ListHouseholds(ctx context.Context, userID uuid.UUID) ([]core.Household, error) {
	rows, err := s.q.ListHouseholds(ctx, userID)
	if err != nil {
		return nil, wrapErr("list households", err)
	}
	out := make([]core.Household, 0, len(rows))
	for _, row := range rows {
		out = append(out, *toHousehold(row))
	}
	return out, nil
}

// CreateHousehold stores the household and its owner membership together.
func (s *Store) CreateHousehold(ctx context.Context, h core.Household) (*core.Household, error) {
	var created database.Household
	err := s.inTx(ctx, func(q *database.Queries) error {
		var err error
		created, err = q.CreateHousehold(ctx, database.CreateHouseholdParams{
			ID:         h.ID,
			Name:       h.Name,
			OwnerID:    h.OwnerID,
			InviteCode: h.InviteCode,
		})
		if err != nil {
			return wrapErr("create household", err)
		}
		return wrapErr("add owner", q.AddMember(ctx, database.AddMemberParams{
			HouseholdID: created.ID,
			UserID:      h.OwnerID,
			Role:        string(core.RoleOwner),
		}))
	})
	if err != nil {
		return nil, err
	}
	return toHousehold(created), nil
}

func (s *Store) GetHousehold(ctx context.Context, id uuid.UUID) (*core.Household, error) {
	row, err := s.q.GetHousehold(ctx, id)
	if err != nil {
		return nil, wrapErr("get household", err)
	}
	return toHousehold(row), nil
}

func (s *Store) GetHouseholdByInviteCode(ctx context.Context, code string) (*core.Household, error) {
	row, err := s.q.GetHouseholdByInviteCode(ctx, code)
	if err != nil {
		return nil, wrapErr("get household by invite code", err)
	}
	return toHousehold(row), nil
}

func (s *Store) GetMembership(ctx context.Context, householdID, userID uuid.UUID) (*core.HouseholdMember, error) {
	row, err := s.q.GetMembership(ctx, database.GetMembershipParams{HouseholdID: householdID, UserID: userID})
	if err != nil {
		return nil, wrapErr("get membership", err)
	}
	return &core.HouseholdMember{
		ID:          row.ID,
		HouseholdID: row.HouseholdID,
		UserID:      row.UserID,
		Role:        core.MemberRole(row.Role),
		JoinedAt:    row.JoinedAt.Time,
	}, nil
}

func (s *Store) AddMember(ctx context.Context, householdID, userID uuid.UUID, role core.MemberRole) error {
	err := s.q.AddMember(ctx, database.AddMemberParams{
		HouseholdID: householdID,
		UserID:      userID,
		Role:        string(role),
	})
	if isUniqueViolation(err, "household_members_household_id_user_id_key") {
		return core.ErrAlreadyMember
	}
	return wrapErr("add member", err)
}

// ListMembers returns the members of a household with their names, in
// joining order.
func (s *Store) ListMembers(ctx context.Context, householdID uuid.UUID) ([]core.HouseholdMember, error) {
	rows, err := s.q.ListMembers(ctx, householdID)
	if err != nil {
		return nil, wrapErr("list members", err)
	}
	out := make([]core.HouseholdMember, 0, len(rows))
	for _, row := range rows {
		out = append(out, core.HouseholdMember{
			ID:          row.ID,
			HouseholdID: row.HouseholdID,
			UserID:      row.UserID,
			UserName:    row.UserName,
			UserEmail:   row.UserEmail,
			Role:        core.MemberRole(row.Role),
			JoinedAt:    row.JoinedAt.Time,
		})
	}
	return out, nil
}

func (s *Store) SetInviteCode(ctx context.Context, householdID uuid.UUID, code string) (*core.Household, error) {
	row, err := s.q.SetInviteCode(ctx, database.SetInviteCodeParams{ID: householdID, InviteCode: code})
	if err != nil {
		return nil, wrapErr("set invite code", err)
	}
	return toHousehold(row), nil
}

func (s *Store) RemoveMember(ctx context.Context, householdID, userID uuid.UUID) error {
	return wrapErr("remove member", s.q.RemoveMember(ctx, database.RemoveMemberParams{
		HouseholdID: householdID,
		UserID:      userID,
	}))
}
