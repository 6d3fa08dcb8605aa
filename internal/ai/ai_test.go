package ai

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/lshigami/toeic-practice-api/internal/apperror"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/googleapi"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type fakeGenerator struct {
	errs  map[string]error
	calls []string
}

func (f *fakeGenerator) Generate(_ context.Context, model, prompt string) (string, error) {
	f.calls = append(f.calls, model)
	if err := f.errs[model]; err != nil {
		return "", err
	}
	return "answer from " + model, nil
}

func (f *fakeGenerator) Close() error { return nil }

var models = []string{"gemini-2.5-flash", "gemini-2.0-flash", "gemini-1.5-flash"}

func TestGenerateTextFallsBackOnServerErrors(t *testing.T) {
	gen := &fakeGenerator{errs: map[string]error{
		"gemini-2.5-flash": &googleapi.Error{Code: 503, Message: "The model is overloaded"},
		"gemini-2.0-flash": status.Error(codes.Unavailable, "try later"),
	}}
	c := NewClient(gen, models)

	text, model, err := c.GenerateText(context.Background(), "hello")
	if err != nil {
		t.Fatalf("GenerateText: %v", err)
	}
	if model != "gemini-1.5-flash" || text != "answer from gemini-1.5-flash" {
		t.Errorf("got %q from %q", text, model)
	}
	if len(gen.calls) != 3 {
		t.Errorf("expected 3 calls, got %v", gen.calls)
	}
}

func TestGenerateTextStopsOnClientError(t *testing.T) {
	gen := &fakeGenerator{errs: map[string]error{
		"gemini-2.5-flash": &googleapi.Error{Code: 400, Message: "API key not valid"},
	}}
	c := NewClient(gen, models)

	_, _, err := c.GenerateText(context.Background(), "hello")
	if err == nil {
		t.Fatal("expected error")
	}
	if len(gen.calls) != 1 {
		t.Errorf("expected no fallback on a client error, calls %v", gen.calls)
	}
	if apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Errorf("client error should not be reported as unavailable: %v", err)
	}
}

func TestGenerateTextAllModelsDown(t *testing.T) {
	down := errors.New("503 Service Unavailable")
	gen := &fakeGenerator{errs: map[string]error{
		"gemini-2.5-flash": down, "gemini-2.0-flash": down, "gemini-1.5-flash": down,
	}}
	_, _, err := NewClient(gen, models).GenerateText(context.Background(), "hello")
	if !apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
	if !errors.Is(err, down) {
		t.Error("expected the last provider error to be kept")
	}
}

func TestGenerateTextDisabled(t *testing.T) {
	_, _, err := NewClient(disabledGenerator{}, models).GenerateText(context.Background(), "hello")
	if !apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Fatalf("expected upstream unavailable, got %v", err)
	}
}

func TestIsServerError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"googleapi 500", &googleapi.Error{Code: 500}, true},
		{"googleapi 429", &googleapi.Error{Code: 429}, false},
		{"openai 502", &openai.APIError{HTTPStatusCode: 502}, true},
		{"openai 401", &openai.APIError{HTTPStatusCode: 401}, false},
		{"openai request 503", &openai.RequestError{HTTPStatusCode: 503, Err: errors.New("bad gateway")}, true},
		{"grpc internal", status.Error(codes.Internal, "boom"), true},
		{"grpc invalid argument", status.Error(codes.InvalidArgument, "bad"), false},
		{"overloaded text", errors.New("model is overloaded"), true},
		{"plain", errors.New("bad request"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsServerError(tt.err); got != tt.want {
				t.Errorf("IsServerError() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLanguageName(t *testing.T) {
	tests := map[string]string{"vi": "Vietnamese", "ja": "Japanese", "en": "English"}
	for id, want := range tests {
		got, err := LanguageName(id)
		if err != nil || got != want {
			t.Errorf("LanguageName(%q) = %q, %v", id, got, err)
		}
	}
	if _, err := LanguageName("fr"); !apperror.Is(err, apperror.KindValidation) {
		t.Errorf("expected validation error for fr, got %v", err)
	}
}

func TestBuildPrompts(t *testing.T) {
	block := QuestionBlock{QuestionID: 12, QuestionContent: "Where is the meeting?", AnswerList: []string{"A. Room 1", "B. Room 2"}}
	prompt, err := BuildTranslationPrompt(block, "ja")
	if err != nil {
		t.Fatalf("BuildTranslationPrompt: %v", err)
	}
	for _, want := range []string{"Japanese", `"language_id"`, `"question_id":12`, "Where is the meeting?"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("translation prompt missing %q", want)
		}
	}

	explain := ExplainBlock{QuestionID: 12, QuestionContent: "Where is the meeting?", AnswerList: []ExplainAnswer{{IsCorrect: 1, AnswerContent: "A. Room 1"}}}
	prompt, err = BuildExplainPrompt(explain, "vi")
	if err != nil {
		t.Fatalf("BuildExplainPrompt: %v", err)
	}
	for _, want := range []string{"Vietnamese", "incorrect_answer_reason", `"is_correct":1`} {
		if !strings.Contains(prompt, want) {
			t.Errorf("explain prompt missing %q", want)
		}
	}

	if _, err := BuildExplainPrompt(explain, "xx"); err == nil {
		t.Error("expected error for unsupported language")
	}
}

func TestCleanModelResponse(t *testing.T) {
	tests := []struct {
		name, in, want string
	}{
		{"plain", ` {"a":1} `, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```\n", `{"a":1}`},
		{"unterminated fence", "```json\n{\"a\":1}", `{"a":1}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanModelResponse(tt.in); got != tt.want {
				t.Errorf("CleanModelResponse() = %q, want %q", got, tt.want)
			}
		})
	}

	var out struct{ A int }
	if err := DecodeJSON("```json\n{\"A\":3}\n```", &out); err != nil || out.A != 3 {
		t.Errorf("DecodeJSON = %+v, %v", out, err)
	}
	if err := DecodeJSON("not json", &out); !apperror.Is(err, apperror.KindUpstreamUnavailable) {
		t.Errorf("expected upstream error for malformed JSON, got %v", err)
	}
}
