package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"nameplate-relay/internal/format"
	"nameplate-relay/internal/pipeline"
)

const defaultURL = "https://api.openai.com/v1/chat/completions"

// Engine formats OCR text through the OpenAI chat completions API.
type Engine struct {
	APIKey string
	Model  string

	url   string
	httpc *http.Client
}

func New(key, model string) *Engine {
	return &Engine{
		APIKey: key,
		Model:  model,
		url:    defaultURL,
		httpc:  &http.Client{Timeout: 60 * time.Second},
	}
}

func (e *Engine) Name() string { return "openai" }

// Format implements pipeline.Formatter. It sends the fixed directive
// followed by the raw OCR text and returns the content of the last
// returned choice verbatim.
func (e *Engine) Format(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", pipeline.NewInputError(format.Stage, "no text provided for formatting")
	}
	if e.APIKey == "" {
		return "", pipeline.NewUpstreamError(format.Stage, errors.New("OPENAI_API_KEY is empty"))
	}

	body := map[string]any{
		"model": e.Model,
		"messages": []any{
			map[string]any{"role": "system", "content": format.Directive},
			map[string]any{"role": "system", "content": text},
		},
		"temperature": 0,
	}
	payload, _ := json.Marshal(body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.url, bytes.NewReader(payload))
	if err != nil {
		return "", pipeline.NewUpstreamError(format.Stage, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.APIKey)

	resp, err := e.httpc.Do(req)
	if err != nil {
		return "", pipeline.NewUpstreamError(format.Stage, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		x, _ := io.ReadAll(resp.Body)
		return "", pipeline.NewUpstreamError(format.Stage,
			fmt.Errorf("openai %d: %s", resp.StatusCode, strings.TrimSpace(string(x))))
	}

	var raw struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return "", pipeline.NewUpstreamError(format.Stage, err)
	}
	if len(raw.Choices) == 0 {
		return "", pipeline.NewUpstreamError(format.Stage, errors.New("openai: empty choice list"))
	}
	// Take the final candidate, not necessarily the first.
	return raw.Choices[len(raw.Choices)-1].Message.Content, nil
}
