package web

// handlers_data.go serves categories and transactions.

import (
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
)

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	householdID, err := queryUUID(r, "household_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	cats, err := s.service.Categories(r.Context(), currentUser(r), householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, cats)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var in core.NewCategory
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	cat, err := s.service.CreateCategory(r.Context(), currentUser(r), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, cat)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrCategoryNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var patch core.CategoryPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	cat, err := s.service.UpdateCategory(r.Context(), currentUser(r), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, cat)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrCategoryNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.DeleteCategory(r.Context(), currentUser(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// parseTransactionQuery reads the listing filters from the query string.
func parseTransactionQuery(r *http.Request) (core.TransactionQuery, error) {
	var q core.TransactionQuery
	var err error

	if q.Filter.StartDate, err = queryDate(r, "start_date"); err != nil {
		return q, err
	}
	if q.Filter.EndDate, err = queryDate(r, "end_date"); err != nil {
		return q, err
	}
	if q.Filter.CategoryID, err = queryUUID(r, "category_id"); err != nil {
		return q, err
	}
	if q.Filter.IsIncome, err = queryBool(r, "is_income"); err != nil {
		return q, err
	}
	if q.Filter.IsShared, err = queryBool(r, "is_shared"); err != nil {
		return q, err
	}
	if q.HouseholdID, err = queryUUID(r, "household_id"); err != nil {
		return q, err
	}
	if q.Filter.Offset, err = queryInt(r, "skip", 0); err != nil {
		return q, err
	}
	if q.Filter.Limit, err = queryInt(r, "limit", core.DefaultTransactionLimit); err != nil {
		return q, err
	}
	q.Filter.Search = r.URL.Query().Get("search")
	return q, nil
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	q, err := parseTransactionQuery(r)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	txs, err := s.service.Transactions(r.Context(), currentUser(r), q)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, txs)
}

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var in core.NewTransaction
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	tx, err := s.service.CreateTransaction(r.Context(), currentUser(r), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSONStatus(w, http.StatusCreated, tx)
}

func (s *Server) handleGetTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrTransactionNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	tx, err := s.service.Transaction(r.Context(), currentUser(r), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, tx)
}

func (s *Server) handleUpdateTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrTransactionNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	var patch core.TransactionPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		s.fail(w, r, err)
		return
	}
	tx, err := s.service.UpdateTransaction(r.Context(), currentUser(r), id, patch)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, tx)
}

func (s *Server) handleDeleteTransaction(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(r, "id", core.ErrTransactionNotFound)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	if err := s.service.DeleteTransaction(r.Context(), currentUser(r), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
