package detection

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// RunAll executes every analyzer in parallel and joins their findings.
// The analyzers are pure functions of the resume and requirement, so the only
// coordination needed is the join itself: all findings must be collected
// before the enforcer runs, and no analyzer can short-circuit the others.
func RunAll(ctx context.Context, resume *types.ResumeRecord, req *types.JobRequirement) (*types.DetectionFindings, error) {
	findings := &types.DetectionFindings{}

	g, _ := errgroup.WithContext(ctx)

	g.Go(func() error {
		findings.TitleInflation = DetectTitleInflation(resume)
		return nil
	})
	g.Go(func() error {
		findings.CareerSwitcher = RecognizeCareerSwitcher(resume, req)
		return nil
	})
	g.Go(func() error {
		findings.CompanyCredibility = AssessCompanyCredibility(resume)
		return nil
	})
	g.Go(func() error {
		findings.CompetencyMapping = MapCompetencyLevels(resume, req)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return findings, nil
}
