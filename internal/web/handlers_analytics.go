package web

// handlers_analytics.go serves the reports and the AI advisor.

import (
	"errors"
	"net/http"

	"github.com/JonMunkholm/budget/internal/core"
	"github.com/google/uuid"
)

func (s *Server) handleMonthlySummary(w http.ResponseWriter, r *http.Request) {
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
	summary, err := s.service.MonthlySummary(r.Context(), currentUser(r), month, householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, summary)
}

func (s *Server) handleCategoryBreakdown(w http.ResponseWriter, r *http.Request) {
	month, err := queryDate(r, "month")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	isIncome, err := queryBool(r, "is_income")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	householdID, err := queryUUID(r, "household_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	breakdown, err := s.service.CategoryBreakdown(r.Context(), currentUser(r), month, isIncome != nil && *isIncome, householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, breakdown)
}

func (s *Server) handleSpendingTrends(w http.ResponseWriter, r *http.Request) {
	days, err := queryInt(r, "days", core.DefaultTrendDays)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	householdID, err := queryUUID(r, "household_id")
	if err != nil {
		s.fail(w, r, err)
		return
	}
	trends, err := s.service.SpendingTrends(r.Context(), currentUser(r), days, householdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, trends)
}

type analyzeRequest struct {
	HouseholdID *uuid.UUID `json:"household_id"`
}

type chatRequest struct {
	Message     string     `json:"message"`
	HouseholdID *uuid.UUID `json:"household_id"`
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var in analyzeRequest
	// The body is optional; an empty one analyzes personal spending.
	if err := decodeJSON(w, r, &in); err != nil && !isEmptyBody(err) {
		s.fail(w, r, err)
		return
	}
	analysis, err := s.service.AnalyzeSpending(r.Context(), currentUser(r), in.HouseholdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, analysis)
}

func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var in chatRequest
	if err := decodeJSON(w, r, &in); err != nil {
		s.fail(w, r, err)
		return
	}
	reply, err := s.service.Chat(r.Context(), currentUser(r), in.Message, in.HouseholdID)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	writeJSON(w, reply)
}

func isEmptyBody(err error) bool {
	return errors.Is(err, errEmptyBody)
}
