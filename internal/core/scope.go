package core

import "github.com/google/uuid"

// AccessScope selects the rows a request may see: rows owned by the user,
// plus rows attached to the household when one is selected. Every store
// query that filters by ownership takes a scope instead of building its own
// condition.
type AccessScope struct {
	UserID      uuid.UUID
	HouseholdID *uuid.UUID
}

// Personal scopes access to the user's own rows.
func Personal(userID uuid.UUID) AccessScope {
	return AccessScope{UserID: userID}
}

// Shared widens access to rows of householdID. A nil household is Personal.
func Shared(userID uuid.UUID, householdID *uuid.UUID) AccessScope {
	if householdID == nil {
		return Personal(userID)
	}
	hh := *householdID
	return AccessScope{UserID: userID, HouseholdID: &hh}
}

// IsShared reports whether the scope includes a household.
func (s AccessScope) IsShared() bool {
	return s.HouseholdID != nil
}

// Allows reports whether a row owned by ownerID and attached to householdID
// is visible in this scope.
func (s AccessScope) Allows(ownerID, householdID *uuid.UUID) bool {
	if ownerID != nil && *ownerID == s.UserID {
		return true
	}
	return s.HouseholdID != nil && householdID != nil && *householdID == *s.HouseholdID
}
