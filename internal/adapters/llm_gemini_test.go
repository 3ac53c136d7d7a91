package adapters

import (
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
)

func TestGeminiText(t *testing.T) {
	testCases := []struct {
		name        string
		resp        *genai.GenerateContentResponse
		expected    string
		expectError bool
	}{
		{
			name: "joins text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Text("Candidate A. "), genai.Text("Candidate B.")}}},
			}},
			expected: "Candidate A. Candidate B.",
		},
		{
			name: "skips non text parts",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{Parts: []genai.Part{genai.Blob{MIMEType: "image/png"}, genai.Text("report")}}},
			}},
			expected: "report",
		},
		{
			name:        "nil response",
			resp:        nil,
			expectError: true,
		},
		{
			name:        "no candidates",
			resp:        &genai.GenerateContentResponse{},
			expectError: true,
		},
		{
			name: "candidate without text",
			resp: &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
				{Content: &genai.Content{}},
			}},
			expectError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text, err := geminiText(tc.resp)

			if tc.expectError {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, text)
		})
	}
}
