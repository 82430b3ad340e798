package gemini

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/kaptinlin/jsonrepair"
	"google.golang.org/genai"

	"github.com/resumeparse/backend/config"
	"github.com/resumeparse/backend/utils"
)

// ErrUnavailable is reported when no API credential is configured. Callers
// treat it as a normal outcome and fall back to the degraded record.
var ErrUnavailable = errors.New("gemini backend unavailable: no API key configured")

// Client wraps the Gemini API for resume extraction
type Client struct {
	client    *genai.Client
	modelName string
	timeout   time.Duration
}

// NewClient creates a Gemini extraction client. A missing credential is not
// an error: the client comes up in unavailable mode and every Extract call
// returns ErrUnavailable without touching the network.
func NewClient(ctx context.Context, cfg *config.Config) (*Client, error) {
	c := &Client{
		modelName: cfg.GeminiModel,
		timeout:   time.Duration(cfg.HTTPTimeoutSeconds) * time.Second,
	}

	if cfg.GeminiAPIKey == "" {
		log.Println("[Gemini] no GEMINI_API_KEY/GOOGLE_API_KEY set, extraction disabled")
		return c, nil
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:     cfg.GeminiAPIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: utils.NewHTTPClient(c.timeout),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	c.client = client
	log.Printf("[Gemini] client ready, model %s", c.modelName)
	return c, nil
}

// Available reports whether a credential was configured
func (c *Client) Available() bool {
	return c.client != nil
}

// schemaExample is the single illustrative example embedded in the prompt
const schemaExample = `{"skills": ["Python", "AWS", "Docker"], ` +
	`"experience": [{"company": "Acme Inc", "role": "Software Engineer", "years": "2020-2023"}], ` +
	`"education": [{"degree": "BSc Computer Science", "institution": "XYZ University", "years": "2016-2020"}], ` +
	`"projects": [{"name": "Cool App", "description": "Built X", "tech": ["React", "FastAPI"]}]}`

// Extract sends free-form resume text to Gemini and returns the JSON object
// embedded in the reply. Single synchronous request, no retry, no streaming;
// the call is bounded by the configured HTTP timeout.
func (c *Client) Extract(ctx context.Context, rawText string) (map[string]any, error) {
	if c.client == nil {
		return nil, ErrUnavailable
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.2), // lower temperature for more consistent outputs
		TopP:            genai.Ptr[float32](0.8),
		MaxOutputTokens: 8192,
	}

	resp, err := c.client.Models.GenerateContent(ctx, c.modelName, genai.Text(buildPrompt(rawText)), genCfg)
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	obj, ok := decodeCandidate(resp.Text())
	if !ok {
		return nil, fmt.Errorf("gemini reply for model %s carried no usable JSON object", c.modelName)
	}

	return obj, nil
}

func buildPrompt(rawText string) string {
	return fmt.Sprintf(`You are a resume extraction engine. Given resume content (as raw text or a JSON dump), produce STRICT JSON only (no prose) matching this example shape:
%s
Rules: return a minimal, accurate summary; omit fields if unknown by leaving empty strings; keep skills concise.

INPUT:
%s

OUTPUT JSON:`, schemaExample, rawText)
}

// decodeCandidate isolates the JSON object embedded in a possibly
// prose-wrapped model reply. Markdown fences are stripped, then the span
// from the first '{' to the last '}' is taken as the candidate. A candidate
// that does not unmarshal cleanly gets one repair attempt.
func decodeCandidate(text string) (map[string]any, bool) {
	text = stripFences(text)

	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end <= start {
		return nil, false
	}
	candidate := text[start : end+1]

	var obj map[string]any
	if err := json.Unmarshal([]byte(candidate), &obj); err == nil {
		return obj, true
	}

	repaired, err := jsonrepair.JSONRepair(candidate)
	if err != nil {
		log.Printf("[Gemini] candidate JSON unrepairable: %v", err)
		return nil, false
	}
	if err := json.Unmarshal([]byte(repaired), &obj); err != nil {
		return nil, false
	}
	return obj, true
}

// stripFences removes markdown code blocks if present
func stripFences(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
