package translate

import (
	"context"
	"errors"
	"strings"
	"testing"

	"cloud.google.com/go/translate"
	"github.com/sashabaranov/go-openai"
	"golang.org/x/text/language"
)

type stubGoogleAPI struct {
	inputs []string
	target language.Tag
	opts   *translate.Options
	result []translate.Translation
	err    error
}

func (s *stubGoogleAPI) Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error) {
	s.inputs = inputs
	s.target = target
	s.opts = opts
	return s.result, s.err
}

func TestGoogleTranslatePassThrough(t *testing.T) {
	api := &stubGoogleAPI{result: []translate.Translation{{Text: "bonjour"}}}
	c := &googleClient{api: api}

	got, err := c.Translate(context.Background(), "hello", "en", "fr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "bonjour" {
		t.Errorf("expected %q, got %q", "bonjour", got)
	}

	if len(api.inputs) != 1 || api.inputs[0] != "hello" {
		t.Errorf("backend received inputs %v", api.inputs)
	}
	if api.target != language.French {
		t.Errorf("expected target %v, got %v", language.French, api.target)
	}
	if api.opts == nil || api.opts.Source != language.English {
		t.Errorf("backend did not receive the source language")
	}
}

func TestGoogleTranslateBackendFailurePropagates(t *testing.T) {
	wantErr := errors.New("quota exceeded")
	c := &googleClient{api: &stubGoogleAPI{err: wantErr}}

	_, err := c.Translate(context.Background(), "hello", "en", "fr")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}

func TestGoogleTranslateRejectsBadLanguageCode(t *testing.T) {
	c := &googleClient{api: &stubGoogleAPI{}}

	if _, err := c.Translate(context.Background(), "hello", "??", "fr"); err == nil {
		t.Error("expected an error for a malformed source code")
	}
	if _, err := c.Translate(context.Background(), "hello", "en", "??"); err == nil {
		t.Error("expected an error for a malformed target code")
	}
}

type stubChatAPI struct {
	request openai.ChatCompletionRequest
	content string
	err     error
}

func (s *stubChatAPI) CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error) {
	s.request = request
	if s.err != nil {
		return openai.ChatCompletionResponse{}, s.err
	}
	return openai.ChatCompletionResponse{
		Choices: []openai.ChatCompletionChoice{
			{Message: openai.ChatCompletionMessage{Content: s.content}},
		},
	}, nil
}

func TestOpenAITranslate(t *testing.T) {
	api := &stubChatAPI{content: "  bonjour\n"}
	c := &openaiClient{api: api}

	got, err := c.Translate(context.Background(), "hello", "en", "fr")
	if err != nil {
		t.Fatalf("Translate failed: %v", err)
	}
	if got != "bonjour" {
		t.Errorf("expected %q, got %q", "bonjour", got)
	}

	if len(api.request.Messages) != 2 {
		t.Fatalf("expected system and user messages, got %d", len(api.request.Messages))
	}
	prompt := api.request.Messages[1].Content
	for _, want := range []string{"from en to fr", "hello"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt %q missing %q", prompt, want)
		}
	}
}

func TestOpenAITranslateBackendFailurePropagates(t *testing.T) {
	wantErr := errors.New("rate limited")
	c := &openaiClient{api: &stubChatAPI{err: wantErr}}

	_, err := c.Translate(context.Background(), "hello", "en", "fr")
	if !errors.Is(err, wantErr) {
		t.Fatalf("expected backend error to propagate, got %v", err)
	}
}

func TestSupportedLanguages(t *testing.T) {
	want := []string{"en", "fr", "es", "de", "it"}
	got := SupportedLanguages()
	if len(got) != len(want) {
		t.Fatalf("expected %d languages, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("language %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}
