package web

import (
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
)

type householdRequest struct {
	Name string `json:"name"`
}

type joinRequest struct {
	InviteCode string `json:"invite_code"`
}

func (s *Server) handleListHouseholds(w http.ResponseWriter, r *http.Request) {
	households, err := s.service.Households(r.Context(), currentUser(r))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, households)
}

func (s *Server) handleCreateHousehold(w http.ResponseWriter, r *http.Request) {
	var in householdRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.CreateHousehold(r.Context(), currentUser(r), in.Name)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, h)
}

func (s *Server) handleJoinHousehold(w http.ResponseWriter, r *http.Request) {
	var in joinRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.JoinHousehold(r.Context(), currentUser(r), in.InviteCode)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, h)
}

func (s *Server) handleGetHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrHouseholdNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.Household(r.Context(), currentUser(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, h)
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrHouseholdNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	members, err := s.service.Members(r.Context(), currentUser(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, members)
}

func (s *Server) handleRegenerateCode(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrHouseholdNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	h, err := s.service.RegenerateInviteCode(r.Context(), currentUser(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, h)
}

func (s *Server) handleRemoveMember(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrHouseholdNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	memberID, err := pathUUID(r, "userID", core.ErrMemberNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.RemoveMember(r.Context(), currentUser(r), id, memberID); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleLeaveHousehold(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrHouseholdNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.LeaveHousehold(r.Context(), currentUser(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
