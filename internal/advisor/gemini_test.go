package advisor

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/genai"
)

type fakeModels struct {
	reply  string
	err    error
	model  string
	prompt string
}

func (f *fakeModels) GenerateContent(_ context.Context, model string, contents []*genai.Content, _ *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	f.model = model
	if len(contents) > 0 && len(contents[0].Parts) > 0 {
		f.prompt = contents[0].Parts[0].Text
	}
	if f.err != nil {
		return nil, f.err
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{Role: "model", Parts: []*genai.Part{{Text: f.reply}}},
		}},
	}, nil
}

func TestGemini_Generate(t *testing.T) {
	models := &fakeModels{reply: "  ANALIZA: sve u redu\n"}
	g := newGemini(models, "")

	got, err := g.Generate(context.Background(), "Analiziraj")
	if err != nil {
		t.Fatalf("Generate error: %v", err)
	}
	if got != "ANALIZA: sve u redu" {
		t.Errorf("Generate = %q", got)
	}
	if models.model != DefaultModel {
		t.Errorf("model = %q, want %q", models.model, DefaultModel)
	}
	if models.prompt != "Analiziraj" {
		t.Errorf("prompt = %q", models.prompt)
	}
}

func TestGemini_Errors(t *testing.T) {
	boom := errors.New("quota exceeded")
	if _, err := newGemini(&fakeModels{err: boom}, "m").Generate(context.Background(), "p"); !errors.Is(err, boom) {
		t.Errorf("error = %v, want wrapped %v", err, boom)
	}
	if _, err := newGemini(&fakeModels{reply: "   "}, "m").Generate(context.Background(), "p"); !errors.Is(err, errEmptyReply) {
		t.Errorf("error = %v, want errEmptyReply", err)
	}
}

func TestNewGemini_RequiresKey(t *testing.T) {
	if _, err := NewGemini(context.Background(), "", ""); err == nil {
		t.Error("expected error without api key")
	}
}
