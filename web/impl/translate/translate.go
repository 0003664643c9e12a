package translate

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
)

// Client translates text between two language codes. Implementations are
// pure pass-throughs to their backend: no chunking, no caching, no retry,
// and no restriction on the language codes beyond what the backend accepts.
type Client interface {
	Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error)
}

// SupportedLanguages returns the language codes the web UI exposes. The
// Translate implementations themselves accept any code their backend does.
func SupportedLanguages() []string {
	return []string{"en", "fr", "es", "de", "it"}
}

// googleAPI is the slice of *translate.Client used here, narrowed so tests
// can substitute a stub.
type googleAPI interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
}

type googleClient struct {
	api googleAPI
}

// NewGoogle wraps the Google Cloud Translation v2 client.
func NewGoogle(translateClient *translate.Client) Client {
	return &googleClient{api: translateClient}
}

func (c *googleClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	source, err := language.Parse(sourceLang)
	if err != nil {
		return "", fmt.Errorf("invalid source language %q: %w", sourceLang, err)
	}
	target, err := language.Parse(targetLang)
	if err != nil {
		return "", fmt.Errorf("invalid target language %q: %w", targetLang, err)
	}

	translations, err := c.api.Translate(ctx, []string{text}, target, &translate.Options{
		Source: source,
		Format: translate.Text,
	})
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(translations) == 0 {
		return "", errors.New("no translation response")
	}

	return translations[0].Text, nil
}
