// Package summary generates short resume summaries from work experience text.
package summary

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"resume_portal_backend/platform/apperr"
)

// FallbackMessage is shown when summary generation fails.
const FallbackMessage = "Could not generate AI summary. Please try again later."

const (
	model          = "gemini-2.5-flash"
	promptTemplate = "Please summarize the following work experience in 2-3 concise bullet points for a resume. Focus on key achievements and technical skills demonstrated:\n\n---\n%s\n---"
)

// Summarizer condenses work experience text into a few bullet points.
type Summarizer interface {
	Summarize(ctx context.Context, experience string) (string, error)
}

// Gemini is a Summarizer backed by the Gemini API.
type Gemini struct {
	client *genai.Client
}

// NewGemini creates a Gemini summarizer with the given API key.
func NewGemini(ctx context.Context, apiKey string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "create gemini client", err)
	}
	return &Gemini{client: client}, nil
}

// Summarize implements Summarizer.
func (g *Gemini) Summarize(ctx context.Context, experience string) (string, error) {
	prompt := fmt.Sprintf(promptTemplate, experience)

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.3),
		TopP:            genai.Ptr[float32](0.9),
		MaxOutputTokens: 150,
	})
	if err != nil {
		return "", apperr.Wrap(apperr.KindUnavailable, "generate summary", err)
	}

	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", apperr.Internal("empty summary response")
	}
	return text, nil
}

// Static is a Summarizer that returns a fixed summary. Useful for tests and
// offline demos.
type Static struct {
	Text string
	Err  error
}

// Summarize implements Summarizer.
func (s Static) Summarize(context.Context, string) (string, error) {
	if s.Err != nil {
		return "", s.Err
	}
	return s.Text, nil
}
