package llm

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/schemas"
	"github.com/jonathan/fit-analyzer/internal/types"
)

// maxAttempts is the bounded retry policy for the generative call: at most
// one retry, no backoff, matching the quality-gate retry policy. No infinite
// regeneration loops.
const maxAttempts = 2

// Analyzer wraps a Client with the retry, timeout, and schema-validation
// policy the pipeline requires of its one external blocking call.
type Analyzer struct {
	client Client
	config *Config
}

// NewAnalyzer creates an Analyzer over an existing client.
func NewAnalyzer(client Client, config *Config) *Analyzer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Analyzer{client: client, config: config}
}

// AnalyzeFit asks the generative step for a raw fit assessment. The response
// is schema-validated before parsing; a timeout or a malformed payload is
// retried exactly once, then surfaced as a typed failure.
func (a *Analyzer) AnalyzeFit(ctx context.Context, resume *types.ResumeRecord, jobDescription string) (*types.RawAnalysis, error) {
	prompt := buildFitPrompt(resume, jobDescription)

	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		raw, err := a.generateOnce(ctx, prompt)
		if err == nil {
			return raw, nil
		}
		lastErr = err

		// Context cancellation from the caller is not retriable.
		if ctx.Err() != nil {
			break
		}
	}

	if errors.Is(lastErr, context.DeadlineExceeded) {
		return nil, &TimeoutError{Message: fmt.Sprintf("no response within %s after %d attempts", a.config.Timeout, maxAttempts), Cause: lastErr}
	}
	var ve *schemas.ValidationError
	if errors.As(lastErr, &ve) {
		return nil, &MalformedError{Message: fmt.Sprintf("payload failed contract after %d attempts", maxAttempts), Cause: lastErr}
	}
	var me *MalformedError
	if errors.As(lastErr, &me) {
		return nil, lastErr
	}
	return nil, &APICallError{Message: "generative analysis failed", Cause: lastErr}
}

// generateOnce performs a single bounded call plus schema validation.
func (a *Analyzer) generateOnce(ctx context.Context, prompt string) (*types.RawAnalysis, error) {
	callCtx, cancel := context.WithTimeout(ctx, a.config.Timeout)
	defer cancel()

	responseText, err := a.client.GenerateJSON(callCtx, prompt, TierAdvanced)
	if err != nil {
		if callCtx.Err() == context.DeadlineExceeded {
			return nil, context.DeadlineExceeded
		}
		return nil, err
	}

	if err := schemas.ValidateRawAnalysis(responseText); err != nil {
		return nil, err
	}

	var raw types.RawAnalysis
	if err := json.Unmarshal([]byte(responseText), &raw); err != nil {
		return nil, &MalformedError{Message: "payload passed schema but failed to decode", Cause: err}
	}
	if err := raw.Validate(); err != nil {
		return nil, &MalformedError{Message: "payload failed field constraints", Cause: err}
	}
	return &raw, nil
}

// buildFitPrompt constructs the analysis prompt from the structured resume
// and the raw job description.
func buildFitPrompt(resume *types.ResumeRecord, jobDescription string) string {
	var sb strings.Builder

	sb.WriteString("You are a career analyst assessing how well a candidate's history matches a target role.\n\n")
	sb.WriteString("## CANDIDATE HISTORY\n")
	for _, pos := range resume.Positions {
		sb.WriteString(fmt.Sprintf("- %s at %s (%s to %s)\n", pos.Title, pos.Company, pos.Start, pos.End))
		for _, bullet := range pos.Bullets {
			sb.WriteString(fmt.Sprintf("  * %s\n", bullet))
		}
	}

	sb.WriteString("\n## TARGET ROLE\n")
	sb.WriteString(jobDescription)

	sb.WriteString("\n\n## OUTPUT\n")
	sb.WriteString(`Return ONLY valid JSON:
{
  "fit_score": 0-100,
  "recommendation": "Strong Apply" | "Apply" | "Consider" | "Apply with Caution" | "Long Shot" | "Do Not Apply",
  "strengths": ["at least three specific strengths"],
  "gaps": [{"dimension": "short_key", "description": "specific weakness"}],
  "your_move": {"summary": "what the candidate should do next", "actions": ["concrete action"]}
}`)

	return sb.String()
}
