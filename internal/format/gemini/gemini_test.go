package gemini

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nameplate-relay/internal/pipeline"
)

func TestFormat_EmptyText(t *testing.T) {
	e := New("test-key", "gemini-2.5-flash")

	_, err := e.Format(context.Background(), "\n\t ")
	require.Error(t, err)
	assert.True(t, pipeline.IsInput(err))
}

func TestFormat_MissingAPIKey(t *testing.T) {
	e := New("  ", "gemini-2.5-flash")

	_, err := e.Format(context.Background(), "RECAIR 6E")
	require.Error(t, err)
	assert.Equal(t, pipeline.KindUpstream, pipeline.KindOf(err))
}

func textCandidate(parts ...genai.Part) *genai.Candidate {
	return &genai.Candidate{Content: &genai.Content{Parts: parts}}
}

func TestLastText(t *testing.T) {
	testCases := []struct {
		name string
		resp *genai.GenerateContentResponse
		want string
	}{
		{"nil response", nil, ""},
		{"no candidates", &genai.GenerateContentResponse{}, ""},
		{
			"single candidate",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				textCandidate(genai.Text(`{"name": "TK1"}`)),
			}},
			`{"name": "TK1"}`,
		},
		{
			"last candidate wins",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				textCandidate(genai.Text("first")),
				textCandidate(genai.Text("second")),
			}},
			"second",
		},
		{
			"empty trailing candidate is skipped",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				textCandidate(genai.Text("usable")),
				{Content: nil},
			}},
			"usable",
		},
		{
			"multi-part candidate concatenates",
			&genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				textCandidate(genai.Text(`{"name": `), genai.Text(`"TK1"}`)),
			}},
			`{"name": "TK1"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, lastText(tc.resp))
		})
	}
}
