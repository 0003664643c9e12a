package translate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// chatAPI is the slice of *openai.Client used here, narrowed so tests can
// substitute a stub.
type chatAPI interface {
	CreateChatCompletion(ctx context.Context, request openai.ChatCompletionRequest) (openai.ChatCompletionResponse, error)
}

type openaiClient struct {
	api chatAPI
}

// NewOpenAI wraps an OpenAI chat model as a translation backend. Selected
// with TRANSLATION_BACKEND=openai.
func NewOpenAI(chatClient *openai.Client) Client {
	return &openaiClient{api: chatClient}
}

func (c *openaiClient) Translate(ctx context.Context, text, sourceLang, targetLang string) (string, error) {
	prompt := fmt.Sprintf(`Translate the following text from %s to %s. Return only the translation. Do not include any explanations or additional text.

%s`, sourceLang, targetLang, text)

	request := openai.ChatCompletionRequest{
		Model: openai.GPT3Dot5Turbo,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a professional translator. Translate text accurately while preserving the original meaning and tone.",
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
		Temperature: 0.3,
	}

	response, err := c.api.CreateChatCompletion(ctx, request)
	if err != nil {
		return "", fmt.Errorf("translation failed: %w", err)
	}
	if len(response.Choices) == 0 {
		return "", errors.New("no translation response")
	}

	return strings.TrimSpace(response.Choices[0].Message.Content), nil
}
