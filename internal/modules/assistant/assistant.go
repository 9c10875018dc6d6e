// Package assistant drafts marketing copy for the admin panel.
package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

// Fallback texts returned when the model produces nothing or fails.
const (
	EmptyDescription  = "Could not generate description."
	FailedDescription = "Error generating content. Please check your API key."
	EmptyEmail        = "Could not generate email."
	FailedEmail       = "Error generating email."
)

// Generator is the provider-agnostic copywriting interface.
type Generator interface {
	// ProductDescription drafts a two-sentence pitch for a product.
	ProductDescription(ctx context.Context, productName, productType string) string
	// MarketingEmail drafts a thank-you email with a repeat-purchase discount.
	MarketingEmail(ctx context.Context, customerName, productName string) string
}

// TextModel turns a prompt into text.
type TextModel interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ── Gemini Adapter ────────────────────────────────────────────────────────────

type geminiModel struct {
	client *genai.Client
	model  string
}

// NewGeminiModel connects to the Gemini API.
func NewGeminiModel(ctx context.Context, apiKey, model string) (TextModel, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini api key is required")
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	return &geminiModel{client: client, model: model}, nil
}

func (m *geminiModel) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := m.client.Models.GenerateContent(ctx, m.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	return resp.Text(), nil
}

// ── Generator ────────────────────────────────────────────────────────────────

type generator struct {
	model  TextModel
	logger *zap.Logger
}

// NewGenerator wraps a TextModel. Model errors are logged and replaced with
// a fixed fallback text; callers never see them.
func NewGenerator(model TextModel, logger *zap.Logger) Generator {
	return &generator{model: model, logger: logger}
}

func (g *generator) ProductDescription(ctx context.Context, productName, productType string) string {
	prompt := fmt.Sprintf("Write a compelling, short marketing description (max 2 sentences) for a %s named %q. focus on benefits.",
		productType, productName)
	return g.run(ctx, "product_description", prompt, EmptyDescription, FailedDescription)
}

func (g *generator) MarketingEmail(ctx context.Context, customerName, productName string) string {
	prompt := fmt.Sprintf("Write a short, friendly email to %s thanking them for purchasing %s and offering a 10%% discount on their next order.",
		customerName, productName)
	return g.run(ctx, "marketing_email", prompt, EmptyEmail, FailedEmail)
}

func (g *generator) run(ctx context.Context, kind, prompt, empty, failed string) string {
	text, err := g.model.Generate(ctx, prompt)
	if err != nil {
		g.logger.Error("assistant generation failed", zap.String("kind", kind), zap.Error(err))
		return failed
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return empty
	}
	return text
}

// ── Offline fallback ──────────────────────────────────────────────────────────

type staticGenerator struct{}

// NewStaticGenerator is used when no API key is configured. It fills in
// simple templates so the admin form still gets a usable draft.
func NewStaticGenerator() Generator { return staticGenerator{} }

func (staticGenerator) ProductDescription(_ context.Context, productName, productType string) string {
	kind := strings.ToLower(strings.TrimSpace(productType))
	if kind == "" {
		kind = "product"
	}
	return fmt.Sprintf("%s is a thoughtfully chosen %s that makes everyday life easier. Order today and see the difference for yourself.",
		productName, kind)
}

func (staticGenerator) MarketingEmail(_ context.Context, customerName, productName string) string {
	return fmt.Sprintf("Hi %s,\n\nThank you for purchasing %s from IndiKart! As a small thank-you, enjoy 10%% off your next order.\n\nHappy shopping,\nTeam IndiKart",
		customerName, productName)
}
