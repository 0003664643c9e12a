package genai

import (
	"fmt"

	"github.com/google/generative-ai-go/genai"

	"github.com/Shruti30000/Document-Translation/pkg/utils"
)

// Kind classifies a normalized model response.
type Kind int

const (
	// KindSuccess carries text produced by the model.
	KindSuccess Kind = iota
	// KindBlocked means prompt feedback reported a non-negligible safety rating.
	KindBlocked
	// KindEmpty means the response had no usable candidates, content or text parts.
	KindEmpty
	// KindFailure means the model call itself failed.
	KindFailure
)

// Result is the normalized outcome of a generative model call. It always
// carries a displayable string, so callers can render it without further
// error handling; the diagnostic strings are the error channel.
type Result struct {
	kind Kind
	text string
}

func (r Result) Kind() Kind   { return r.kind }
func (r Result) Text() string { return r.text }

// Success wraps model-produced text.
func Success(text string) Result { return Result{kind: KindSuccess, text: text} }

// Blocked wraps a safety-block diagnostic.
func Blocked(text string) Result { return Result{kind: KindBlocked, text: text} }

// Empty wraps a missing-candidates/content/text diagnostic.
func Empty(text string) Result { return Result{kind: KindEmpty, text: text} }

// Failure wraps a model-call error as a displayable string.
func Failure(text string) Result { return Result{kind: KindFailure, text: text} }

// Normalize turns a raw model response into a Result. A response carries
// zero or more candidates; only the first is considered, even when the
// backend returns alternatives. Absence of candidates, content or text
// parts is a first-class case here, not an error, and this function never
// fails: every path yields a displayable string.
func Normalize(resp *genai.GenerateContentResponse) Result {
	if resp == nil || len(resp.Candidates) == 0 {
		if resp != nil && resp.PromptFeedback != nil {
			for _, rating := range resp.PromptFeedback.SafetyRatings {
				if rating.Probability != genai.HarmProbabilityNegligible {
					return Blocked(fmt.Sprintf("Content was blocked due to %v with %v probability.", rating.Category, rating.Probability))
				}
			}
		}
		return Empty("The response was blocked or empty.")
	}

	candidate := resp.Candidates[0]
	if candidate.Content == nil || len(candidate.Content.Parts) == 0 {
		return Empty("The response did not contain any content.")
	}

	// Parts without text, e.g. function calls, are skipped.
	texts := utils.Map(utils.Filter(candidate.Content.Parts, func(part genai.Part) bool {
		_, ok := part.(genai.Text)
		return ok
	}), func(part genai.Part) string {
		return string(part.(genai.Text))
	})
	if len(texts) == 0 {
		return Empty("The response did not contain any text parts.")
	}

	return Success(utils.Join(texts, " "))
}
