package llm

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fit-analyzer/internal/types"
)

const goodPayload = `{
	"fit_score": 72,
	"recommendation": "Apply",
	"strengths": ["Technical sourcing depth", "Offer close rate", "Structured process"],
	"gaps": [{"dimension": "tenure", "description": "Two of seven required years"}],
	"your_move": {"summary": "Apply with a reframed resume", "actions": ["Lead with metrics"]}
}`

// scriptedClient returns canned responses in order. A nil error with an empty
// script entry blocks until the context expires, simulating a hung provider.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (c *scriptedClient) GenerateJSON(ctx context.Context, prompt string, tier ModelTier) (string, error) {
	i := c.calls
	c.calls++
	if i < len(c.errs) && c.errs[i] != nil {
		return "", c.errs[i]
	}
	if i < len(c.responses) {
		if c.responses[i] == "" {
			<-ctx.Done()
			return "", ctx.Err()
		}
		return c.responses[i], nil
	}
	return "", errors.New("script exhausted")
}

func (c *scriptedClient) Close() error { return nil }

func testResume() *types.ResumeRecord {
	return &types.ResumeRecord{Positions: []types.Position{
		{
			Company: "Acme",
			Title:   "Recruiter",
			Start:   "2022-01",
			End:     "2024-01",
			Bullets: []string{"Owned full-cycle recruiting for 30 roles per year"},
		},
	}}
}

func TestAnalyzeFit_ValidFirstAttempt(t *testing.T) {
	client := &scriptedClient{responses: []string{goodPayload}}
	analyzer := NewAnalyzer(client, nil)

	raw, err := analyzer.AnalyzeFit(context.Background(), testResume(), "Recruiter role")
	require.NoError(t, err)
	assert.Equal(t, 72, raw.FitScore)
	assert.Equal(t, "Apply", raw.Recommendation)
	assert.Len(t, raw.Strengths, 3)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeFit_MalformedThenValidRetriesOnce(t *testing.T) {
	client := &scriptedClient{responses: []string{`{"fit_score": 72}`, goodPayload}}
	analyzer := NewAnalyzer(client, nil)

	raw, err := analyzer.AnalyzeFit(context.Background(), testResume(), "Recruiter role")
	require.NoError(t, err)
	assert.Equal(t, 72, raw.FitScore)
	assert.Equal(t, 2, client.calls)
}

func TestAnalyzeFit_MalformedTwiceSurfacesTypedError(t *testing.T) {
	client := &scriptedClient{responses: []string{"not json at all", "still not json"}}
	analyzer := NewAnalyzer(client, nil)

	_, err := analyzer.AnalyzeFit(context.Background(), testResume(), "Recruiter role")

	var me *MalformedError
	require.ErrorAs(t, err, &me)
	assert.Equal(t, 2, client.calls)
}

func TestAnalyzeFit_TimeoutSurfacesTypedError(t *testing.T) {
	client := &scriptedClient{responses: []string{"", ""}}
	config := &Config{Models: DefaultConfig().Models, Timeout: 20 * time.Millisecond}
	analyzer := NewAnalyzer(client, config)

	_, err := analyzer.AnalyzeFit(context.Background(), testResume(), "Recruiter role")

	var te *TimeoutError
	require.ErrorAs(t, err, &te)
	assert.Equal(t, 2, client.calls)
}

func TestAnalyzeFit_CallerCancellationIsNotRetried(t *testing.T) {
	client := &scriptedClient{errs: []error{errors.New("boom")}}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	analyzer := NewAnalyzer(client, nil)
	_, err := analyzer.AnalyzeFit(ctx, testResume(), "Recruiter role")

	require.Error(t, err)
	assert.Equal(t, 1, client.calls)
}

func TestAnalyzeFit_ProviderErrorWrapped(t *testing.T) {
	client := &scriptedClient{errs: []error{errors.New("quota"), errors.New("quota")}}
	analyzer := NewAnalyzer(client, nil)

	_, err := analyzer.AnalyzeFit(context.Background(), testResume(), "Recruiter role")

	var ae *APICallError
	require.ErrorAs(t, err, &ae)
}

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"bare json untouched", `{"a": 1}`, `{"a": 1}`},
		{"json fence stripped", "```json\n{\"a\": 1}\n```", `{"a": 1}`},
		{"plain fence stripped", "```\n{\"a\": 1}\n```", `{"a": 1}`},
		{"surrounding whitespace trimmed", "  {\"a\": 1}  ", `{"a": 1}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}

func TestBuildFitPrompt_IncludesHistoryAndRole(t *testing.T) {
	prompt := buildFitPrompt(testResume(), "Director of Recruiting, 7+ years")

	assert.Contains(t, prompt, "Recruiter at Acme")
	assert.Contains(t, prompt, "Owned full-cycle recruiting")
	assert.Contains(t, prompt, "Director of Recruiting, 7+ years")
	assert.Contains(t, prompt, `"fit_score"`)
}
