package core

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func TestSpendingContext(t *testing.T) {
	got := SpendingContext(30, sampleTotals())

	for _, want := range []string{
		"poslednjih 30 dana",
		"PRIHODI (ukupno: 100000.00 RSD):\n- Plata: 100000.00 RSD (1 transakcija)",
		"RASHODI (ukupno: 40000.00 RSD):",
		"- Transport: 7500.50 RSD (4 transakcija)",
		"BILANS: 60000.00 RSD",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
}

func TestSpendingContext_Empty(t *testing.T) {
	got := SpendingContext(7, nil)
	for _, want := range []string{
		"- Nema zabele\u017eenih prihoda",
		"- Nema zabele\u017eenih rashoda",
		"BILANS: 0.00 RSD",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("context missing %q:\n%s", want, got)
		}
	}
}

func TestParseAnalysis(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantAnalysis string
		wantTips     []string
	}{
		{
			name:         "sections",
			text:         "ANALIZA:\nTro\u0161ite previ\u0161e na hranu.\n\nSAVETI:\n- Kuvajte kod ku\u0107e\n\u2022 Pravite listu\n-\n- Pratite akcije",
			wantAnalysis: "Tro\u0161ite previ\u0161e na hranu.",
			wantTips:     []string{"Kuvajte kod ku\u0107e", "Pravite listu", "Pratite akcije"},
		},
		{
			name:         "capped",
			text:         "ANALIZA: ok\nSAVETI:\n- a\n- b\n- c\n- d\n- e\n- f\n- g",
			wantAnalysis: "ok",
			wantTips:     []string{"a", "b", "c", "d", "e"},
		},
		{
			name:         "analysis only",
			text:         "ANALIZA: sve je u redu",
			wantAnalysis: "sve je u redu",
			wantTips:     []string{},
		},
		{
			name:         "unstructured",
			text:         "Free text reply",
			wantAnalysis: "Free text reply",
			wantTips:     []string{fallbackSuggestion},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseAnalysis(tt.text)
			if got.Analysis != tt.wantAnalysis {
				t.Errorf("Analysis = %q, want %q", got.Analysis, tt.wantAnalysis)
			}
			if got.Suggestions == nil {
				t.Fatal("Suggestions is nil")
			}
			if strings.Join(got.Suggestions, "|") != strings.Join(tt.wantTips, "|") {
				t.Errorf("Suggestions = %q, want %q", got.Suggestions, tt.wantTips)
			}
		})
	}
}

func TestAnalyzeSpending(t *testing.T) {
	store := newFakeStore()
	store.totals = sampleTotals()
	gen := &fakeGenerator{reply: "ANALIZA:\nStabilno.\nSAVETI:\n- \u0160tedite"}
	svc := newTestService(t, store, func(d *Deps) { d.Advisor = gen })

	got, err := svc.AnalyzeSpending(context.Background(), uuid.New(), nil)
	if err != nil {
		t.Fatalf("AnalyzeSpending error: %v", err)
	}
	if got.Analysis != "Stabilno." || len(got.Suggestions) != 1 {
		t.Errorf("analysis = %+v", got)
	}
	if len(gen.prompts) != 1 || !strings.Contains(gen.prompts[0], "BILANS: 60000.00 RSD") {
		t.Errorf("prompt did not carry the spending context: %v", gen.prompts)
	}
}

func TestAnalyzeSpending_Failures(t *testing.T) {
	t.Run("not configured", func(t *testing.T) {
		svc := newTestService(t, newFakeStore())
		if _, err := svc.AnalyzeSpending(context.Background(), uuid.New(), nil); !errors.Is(err, ErrAIUnavailable) {
			t.Errorf("error = %v, want ErrAIUnavailable", err)
		}
	})

	t.Run("model error", func(t *testing.T) {
		gen := &fakeGenerator{err: errors.New("quota exceeded")}
		svc := newTestService(t, newFakeStore(), func(d *Deps) { d.Advisor = gen })
		_, err := svc.AnalyzeSpending(context.Background(), uuid.New(), nil)
		if !errors.Is(err, ErrUpstream) || !isDomain(err, "AI analysis failed: quota exceeded") {
			t.Errorf("error = %v", err)
		}
	})
}

func TestChat(t *testing.T) {
	gen := &fakeGenerator{reply: "Smanjite tro\u0161kove za restorane."}
	store := newFakeStore()
	store.totals = []CategoryTotal{{Name: "Restorani", Total: decimal.NewFromInt(5000), Count: 2}}
	svc := newTestService(t, store, func(d *Deps) { d.Advisor = gen })
	ctx := context.Background()

	if _, err := svc.Chat(ctx, uuid.New(), "   ", nil); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("empty message error = %v", err)
	}

	got, err := svc.Chat(ctx, uuid.New(), "Kako da u\u0161tedim?", nil)
	if err != nil {
		t.Fatalf("Chat error: %v", err)
	}
	if got.Response != gen.reply {
		t.Errorf("Response = %q", got.Response)
	}
	if !strings.Contains(gen.prompts[0], "Pitanje korisnika: Kako da u\u0161tedim?") {
		t.Errorf("prompt = %q", gen.prompts[0])
	}

	gen.err = errors.New("boom")
	if _, err := svc.Chat(ctx, uuid.New(), "opet", nil); !isDomain(err, "AI chat failed: boom") {
		t.Errorf("model error = %v", err)
	}
}
