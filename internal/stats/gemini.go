package stats

import (
	"context"
	"fmt"
	"net/http"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured
const DefaultModel = "gemini-2.5-pro"

// Prompt is the fixed instruction sent with every extraction
const Prompt = "Analyze the attached image(s) of a character's stats from Granado Espada M. " +
	"Extract all Basic Stats and Stance Information. " +
	"Format the output as a clean, well-structured HTML snippet using TailwindCSS classes. " +
	"The final output should be ONLY the HTML code, without any markdown formatting. " +
	"Use a structure like this: <div class='space-y-4'><div><h3 class='text-lg font-semibold text-amber-200'>Basic Stats</h3>...</div>" +
	"<div><h3 class='text-lg font-semibold text-amber-200'>Stance Information</h3>...</div></div>"

// ClientOptions configures the Gemini client
type ClientOptions struct {
	APIKey     string
	Model      string
	BaseURL    string // empty for the public endpoint
	HTTPClient *http.Client
}

// GeminiExtractor asks a Gemini model to transcribe stat screenshots
type GeminiExtractor struct {
	client *genai.Client
	model  string
}

// NewGeminiExtractor creates the client. An empty key is ErrNoAPIKey.
func NewGeminiExtractor(ctx context.Context, opts ClientOptions) (*GeminiExtractor, error) {
	if opts.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	if opts.Model == "" {
		opts.Model = DefaultModel
	}
	cfg := &genai.ClientConfig{
		APIKey:     opts.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: opts.HTTPClient,
	}
	if opts.BaseURL != "" {
		cfg.HTTPOptions = genai.HTTPOptions{BaseURL: opts.BaseURL}
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}
	return &GeminiExtractor{client: client, model: opts.Model}, nil
}

// Model returns the model name requests are sent to
func (g *GeminiExtractor) Model() string {
	return g.model
}

// Extract sends the prompt and the inline images and returns the reply text
func (g *GeminiExtractor) Extract(ctx context.Context, images []Image) (string, error) {
	if len(images) == 0 {
		return "", ErrNoImages
	}
	parts := make([]*genai.Part, 0, len(images)+1)
	parts = append(parts, genai.NewPartFromText(Prompt))
	for _, img := range images {
		parts = append(parts, genai.NewPartFromBytes(img.Data, img.MIME))
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model,
		[]*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}, nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}
	text := resp.Text()
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}
