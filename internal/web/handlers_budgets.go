package web

import (
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
)

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	month, err := queryDate(r, "month")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	householdID, err := queryUUID(r, "household_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	budgets, err := s.service.Budgets(r.Context(), currentUser(r), month, householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, budgets)
}

// handleSetBudget creates the budget for a category and month, or replaces
// the amount and threshold of the existing one.
func (s *Server) handleSetBudget(w http.ResponseWriter, r *http.Request) {
	var in core.NewBudget
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	b, err := s.service.SetBudget(r.Context(), currentUser(r), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, b)
}

func (s *Server) handleBudgetStatus(w http.ResponseWriter, r *http.Request) {
	month, err := queryDate(r, "month")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	householdID, err := queryUUID(r, "household_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	statuses, err := s.service.BudgetStatuses(r.Context(), currentUser(r), month, householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, statuses)
}

func (s *Server) handleUpdateBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrBudgetNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var patch core.BudgetPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	b, err := s.service.UpdateBudget(r.Context(), currentUser(r), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, b)
}

func (s *Server) handleDeleteBudget(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrBudgetNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.DeleteBudget(r.Context(), currentUser(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
