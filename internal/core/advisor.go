package core

// advisor.go builds spending prompts for the AI advisor and parses its
// replies. Prompts and the fallback suggestion are Serbian because the
// product's users are.

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MaxSuggestions caps the suggestions returned by Analyze.
const MaxSuggestions = 5

const fallbackSuggestion = "Nastavite sa pra\u0107enjem tro\u0161kova za detaljnije savete."

// Analysis is the advisor's reading of recent spending.
type Analysis struct {
	Analysis    string   `json:"analysis"`
	Suggestions []string `json:"suggestions"`
}

// ChatReply is the advisor's answer to a question.
type ChatReply struct {
	Response string `json:"response"`
}

// SpendingContext renders per-category totals as the text the advisor
// reasons about.
func SpendingContext(days int, totals []CategoryTotal) string {
	var (
		income, expenses       decimal.Decimal
		incomeLines, costLines []string
	)
	for _, t := range totals {
		line := fmt.Sprintf("- %s: %s RSD (%d transakcija)", t.Name, t.Total.StringFixed(2), t.Count)
		if t.IsIncome {
			income = income.Add(t.Total)
			incomeLines = append(incomeLines, line)
		} else {
			expenses = expenses.Add(t.Total)
			costLines = append(costLines, line)
		}
	}
	if len(incomeLines) == 0 {
		incomeLines = []string{"- Nema zabele\u017eenih prihoda"}
	}
	if len(costLines) == 0 {
		costLines = []string{"- Nema zabele\u017eenih rashoda"}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analiza tro\u0161kova za poslednjih %d dana:\n\n", days)
	fmt.Fprintf(&b, "PRIHODI (ukupno: %s RSD):\n%s\n\n", income.StringFixed(2), strings.Join(incomeLines, "\n"))
	fmt.Fprintf(&b, "RASHODI (ukupno: %s RSD):\n%s\n\n", expenses.StringFixed(2), strings.Join(costLines, "\n"))
	fmt.Fprintf(&b, "BILANS: %s RSD\n", income.Sub(expenses).StringFixed(2))
	return b.String()
}

func analyzePrompt(spending string) string {
	return "Ti si finansijski savetnik. Analiziraj slede\u0107e podatke o prihodima i rashodima korisnika " +
		"i pru\u017ei konkretne savete za u\u0161tedu na srpskom jeziku.\n\n" +
		spending + "\n" +
		"Napi\u0161i:\n" +
		"1. Kratku analizu potro\u0161nje (2-3 re\u010denice)\n" +
		"2. 3-5 konkretnih saveta za u\u0161tedu baziranih na podacima\n\n" +
		"Format odgovora:\n" +
		"ANALIZA:\n[tvoja analiza]\n\n" +
		"SAVETI:\n- [savet 1]\n- [savet 2]\n- [savet 3]\n"
}

func chatPrompt(spending, question string) string {
	return "Ti si prijateljski finansijski savetnik. Korisnik ti postavlja pitanje o svojim finansijama. " +
		"Odgovori na srpskom jeziku, konkretno i korisno.\n\n" +
		"Kontekst o korisnikovim finansijama:\n" + spending + "\n" +
		"Pitanje korisnika: " + question + "\n\n" +
		"Odgovori kratko i jasno (maksimalno 3-4 re\u010denice), pru\u017eaju\u0107i prakti\u010dne savete kada je mogu\u0107e.\n"
}

// ParseAnalysis splits a model reply into the ANALIZA section and up to
// MaxSuggestions bullet points from the SAVETI section. A reply without
// the expected sections is returned whole with a generic suggestion.
func ParseAnalysis(text string) Analysis {
	if !strings.Contains(text, "ANALIZA:") {
		return Analysis{Analysis: text, Suggestions: []string{fallbackSuggestion}}
	}

	parts := strings.Split(text, "SAVETI:")
	result := Analysis{
		Analysis:    strings.TrimSpace(strings.ReplaceAll(parts[0], "ANALIZA:", "")),
		Suggestions: []string{},
	}
	if len(parts) < 2 {
		return result
	}

	for _, line := range strings.Split(strings.TrimSpace(parts[1]), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || line == "-" || line == "\u2022" {
			continue
		}
		line = strings.TrimLeft(line, "- ")
		line = strings.TrimLeft(line, "\u2022 ")
		result.Suggestions = append(result.Suggestions, line)
		if len(result.Suggestions) == MaxSuggestions {
			break
		}
	}
	return result
}

// spendingContext loads the advisor context for the caller's scope.
func (s *Service) spendingContext(ctx context.Context, userID uuid.UUID, householdID *uuid.UUID) (string, error) {
	if s.advisor == nil {
		return "", ErrAIUnavailable
	}
	scope, err := s.scopeFor(ctx, userID, householdID)
	if err != nil {
		return "", err
	}
	days := s.aiContextDays
	if days <= 0 {
		days = DefaultTrendDays
	}
	end := s.today()
	totals, err := s.store.CategoryTotals(ctx, scope, end.AddDays(-days), end.AddDays(1), nil)
	if err != nil {
		return "", err
	}
	return SpendingContext(days, totals), nil
}

func (s *Service) generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, s.aiTimeout)
	defer cancel()
	return s.advisor.Generate(ctx, prompt)
}

// AnalyzeSpending asks the advisor for an analysis and saving tips.
func (s *Service) AnalyzeSpending(ctx context.Context, userID uuid.UUID, householdID *uuid.UUID) (*Analysis, error) {
	spending, err := s.spendingContext(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	text, err := s.generate(ctx, analyzePrompt(spending))
	if err != nil {
		return nil, upstream("AI analysis failed: %v", err)
	}
	result := ParseAnalysis(text)
	return &result, nil
}

// Chat answers a free-form question about the caller's finances.
func (s *Service) Chat(ctx context.Context, userID uuid.UUID, message string, householdID *uuid.UUID) (*ChatReply, error) {
	if strings.TrimSpace(message) == "" {
		return nil, invalidInput("Message is required")
	}
	spending, err := s.spendingContext(ctx, userID, householdID)
	if err != nil {
		return nil, err
	}
	text, err := s.generate(ctx, chatPrompt(spending, message))
	if err != nil {
		return nil, upstream("AI chat failed: %v", err)
	}
	return &ChatReply{Response: text}, nil
}
