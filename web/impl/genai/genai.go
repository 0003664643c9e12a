package genai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/generative-ai-go/genai"

	"github.com/Shruti30000/Document-Translation/web/impl/pdf"
)

// Client runs the two generative-model operations of the pipeline.
type Client interface {
	// ExtractText asks the vision model for all text in one page image and
	// returns the normalized result as a display string. Model-call errors
	// are not caught here; they propagate to the orchestrator.
	ExtractText(ctx context.Context, page pdf.PageImage) (string, error)

	// Summarize asks the text model to explain and summarize text. Unlike
	// ExtractText it never fails: model-call errors are converted into a
	// Failure result.
	Summarize(ctx context.Context, text string) Result
}

// generativeModel is the slice of *genai.GenerativeModel used here,
// narrowed so tests can substitute a stub.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
}

type client struct {
	visionModel generativeModel
	textModel   generativeModel
}

type GenaiModel string

const (
	GenaiModelFlash GenaiModel = "gemini-1.5-flash"
)

const extractInstruction = "Extract all the text from this image"

const summarizePrompt = `Please explain and summarize the following text in simple, easy-to-understand language.
Keep the summary concise but include all key points:

%s`

func New(genaiClient *genai.Client) Client {
	return &client{
		visionModel: genaiClient.GenerativeModel(string(GenaiModelFlash)),
		textModel:   genaiClient.GenerativeModel(string(GenaiModelFlash)),
	}
}

func newWithModels(visionModel, textModel generativeModel) Client {
	return &client{visionModel: visionModel, textModel: textModel}
}

func (c *client) ExtractText(ctx context.Context, page pdf.PageImage) (string, error) {
	data, err := base64.StdEncoding.DecodeString(page.Data)
	if err != nil {
		return "", fmt.Errorf("invalid page image payload: %w", err)
	}

	resp, err := c.visionModel.GenerateContent(ctx,
		genai.Blob{MIMEType: page.MIMEType, Data: data},
		genai.Text(extractInstruction),
	)
	if err != nil {
		return "", err
	}

	return Normalize(resp).Text(), nil
}

func (c *client) Summarize(ctx context.Context, text string) Result {
	resp, err := c.textModel.GenerateContent(ctx, genai.Text(fmt.Sprintf(summarizePrompt, text)))
	if err != nil {
		return Failure(fmt.Sprintf("An error occurred while generating the explanation: %v", err))
	}
	return Normalize(resp)
}
