package gemini

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"nameplate-relay/internal/format"
	"nameplate-relay/internal/pipeline"
)

// Engine formats OCR text through the Gemini API. It is the alternate
// formatter; the fixed directive and the last-candidate rule are the
// same as for the OpenAI engine.
type Engine struct {
	APIKey string
	Model  string
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: strings.TrimSpace(key),
		Model:  strings.TrimSpace(model),
	}
}

func (e *Engine) Name() string { return "gemini" }

// Format implements pipeline.Formatter.
func (e *Engine) Format(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pipeline.NewInputError(format.Stage, "no text provided for formatting")
	}
	if e.APIKey == "" {
		return "", pipeline.NewUpstreamError(format.Stage, errors.New("GEMINI_API_KEY is empty"))
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(e.APIKey))
	if err != nil {
		return "", pipeline.NewUpstreamError(format.Stage, err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(e.Model)
	m.GenerationConfig = genai.GenerationConfig{Temperature: ptrFloat32(0)}
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(format.Directive)},
	}

	resp, err := m.GenerateContent(ctx, genai.Text(text))
	if err != nil {
		return "", pipeline.NewUpstreamError(format.Stage, err)
	}
	out := lastText(resp)
	if out == "" {
		return "", pipeline.NewUpstreamError(format.Stage, errors.New("gemini: empty response"))
	}
	return out, nil
}

// lastText returns the text of the final candidate with any content.
func lastText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	for i := len(resp.Candidates) - 1; i >= 0; i-- {
		c := resp.Candidates[i]
		if c.Content == nil {
			continue
		}
		var sb strings.Builder
		for _, p := range c.Content.Parts {
			if t, ok := p.(genai.Text); ok {
				sb.WriteString(string(t))
			}
		}
		if sb.Len() > 0 {
			return sb.String()
		}
	}
	return ""
}

func ptrFloat32(v float32) *float32 { return &v }
