package pipeline

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fit-analyzer/internal/audit"
	"github.com/jonathan/fit-analyzer/internal/detection"
	"github.com/jonathan/fit-analyzer/internal/enforce"
	"github.com/jonathan/fit-analyzer/internal/experience"
	"github.com/jonathan/fit-analyzer/internal/extraction"
	"github.com/jonathan/fit-analyzer/internal/gaps"
	"github.com/jonathan/fit-analyzer/internal/llm"
	"github.com/jonathan/fit-analyzer/internal/types"
	"github.com/jonathan/fit-analyzer/internal/validation"
)

// Options holds the pipeline's external collaborators. Everything else is
// deterministic and owned by the pipeline itself.
type Options struct {
	Client    llm.Client
	LLMConfig *llm.Config
	Recorder  audit.Recorder
}

// Pipeline runs fit analyses. It is stateless between runs and reentrant:
// every intermediate entity is scoped to its run, so a caller may apply its
// own concurrency ceiling on top.
type Pipeline struct {
	analyzer *llm.Analyzer
	recorder audit.Recorder
}

// New creates a Pipeline. A nil Recorder falls back to an in-memory one.
func New(opts Options) *Pipeline {
	recorder := opts.Recorder
	if recorder == nil {
		recorder = audit.NewMemoryRecorder()
	}
	return &Pipeline{
		analyzer: llm.NewAnalyzer(opts.Client, opts.LLMConfig),
		recorder: recorder,
	}
}

// Analyze runs the full pipeline for one resume/job pair and returns either
// a complete, quality-gated AnalysisResult or a typed failure. Partial
// results are never returned.
func (p *Pipeline) Analyze(ctx context.Context, resume *types.ResumeRecord, jobDescription string) (*types.AnalysisResult, error) {
	started := time.Now()

	if resume.IsEmpty() {
		return nil, &InsufficientInputError{Message: "resume contains no positions"}
	}
	if strings.TrimSpace(jobDescription) == "" {
		return nil, &InsufficientInputError{Message: "job description is blank"}
	}

	runID := uuid.New().String()
	record := &types.AuditRecord{
		RunID:       runID,
		InputHashes: hashInputs(resume, jobDescription),
		CreatedAt:   started,
	}

	req := extraction.ParseJobRequirement(jobDescription)

	// The generative call and the detection layer are independent; run them
	// in parallel and join before anything downstream.
	var raw *types.RawAnalysis
	var findings *types.DetectionFindings

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		result, err := p.analyzer.AnalyzeFit(gCtx, resume, jobDescription)
		if err != nil {
			return err
		}
		raw = result
		return nil
	})
	g.Go(func() error {
		result, err := detection.RunAll(gCtx, resume, req)
		if err != nil {
			return err
		}
		findings = result
		return nil
	})
	if err := g.Wait(); err != nil {
		p.appendAudit(ctx, record, started)
		return nil, err
	}

	result, failure := p.merge(runID, resume, req, raw, findings, record)
	if failure != nil {
		// One retry of the generative merge, matching the bounded retry
		// policy everywhere else. A fresh payload often clears a gate
		// rejection caused by thin generative output.
		retryRaw, err := p.analyzer.AnalyzeFit(ctx, resume, jobDescription)
		if err == nil {
			result, failure = p.merge(runID, resume, req, retryRaw, findings, record)
		}
	}

	if failure != nil {
		record.ValidationErrors = failure.Fields()
		p.appendAudit(ctx, record, started)
		return nil, failure
	}

	p.appendAudit(ctx, record, started)
	return result, nil
}

// merge combines the untrusted generative payload with every deterministic
// signal and quality-gates the assembled result.
func (p *Pipeline) merge(runID string, resume *types.ResumeRecord, req *types.JobRequirement, raw *types.RawAnalysis, findings *types.DetectionFindings, record *types.AuditRecord) (*types.AnalysisResult, *validation.Failure) {
	assessment := experience.CalculateDomainYears(resume, req, findings.CompanyCredibility)

	unmet := extraction.UnmetConstraints(resume, req)
	credentialsMet := true
	constraintsMet := true
	for _, c := range unmet {
		if c == "certification" {
			credentialsMet = false
		} else {
			constraintsMet = false
		}
	}

	classified := gaps.Classify(raw.Gaps, findings, &assessment, req)

	enforced := enforce.Decide(enforce.Inputs{
		RawScore:          raw.FitScore,
		RawRecommendation: raw.Recommendation,
		Requirement:       req,
		Assessment:        &assessment,
		Findings:          findings,
		ConstraintsMet:    constraintsMet,
		CredentialsMet:    credentialsMet,
	})

	record.RawScore = raw.FitScore
	record.FinalScore = enforced.Decision.Score
	record.Corrections = enforced.Corrections

	result := &types.AnalysisResult{
		SpecVersion: types.SpecVersion,
		RunID:       runID,
		Decision:    enforced.Decision,
		Assessment:  assessment,
		Findings:    *findings,
		Gaps:        classified,
		Strengths:   raw.Strengths,
		YourMove:    raw.YourMove,
	}

	if failure := validation.ValidateResult(result); failure != nil {
		return nil, failure
	}
	return result, nil
}

// appendAudit finalizes and appends the run's audit record. Audit persistence
// never fails the run itself.
func (p *Pipeline) appendAudit(ctx context.Context, record *types.AuditRecord, started time.Time) {
	record.LatencyMS = time.Since(started).Milliseconds()
	_ = p.recorder.Append(ctx, record)
}

func hashInputs(resume *types.ResumeRecord, jobDescription string) types.InputHashes {
	resumeJSON, _ := json.Marshal(resume)
	return types.InputHashes{
		Resume:         audit.HashInput(resumeJSON),
		JobDescription: audit.HashInput([]byte(jobDescription)),
	}
}
