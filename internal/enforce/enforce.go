// Package enforce owns the final (score, recommendation) pair. It is the
// single writer of FitDecision: every deterministic signal and every value
// the generative step produced flows in here, and one internally consistent
// decision flows out.
package enforce

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// tierRange is the closed score range a recommendation owns.
type tierRange struct {
	floor   int
	ceiling int
}

// tierTable is the single source of truth for the score→recommendation
// mapping. No combination of score and recommendation outside these ranges
// can ever leave the pipeline.
var tierTable = map[types.Recommendation]tierRange{
	types.RecStrongApply:      {85, 100},
	types.RecApply:            {70, 84},
	types.RecConsider:         {55, 69},
	types.RecApplyWithCaution: {40, 54},
	types.RecLongShot:         {25, 39},
	types.RecDoNotApply:       {0, 24},
}

// Inputs carries everything the enforcer consumes. All fields are read-only;
// the enforcer never mutates its inputs.
type Inputs struct {
	RawScore          int
	RawRecommendation string
	Requirement       *types.JobRequirement
	Assessment        *types.ExperienceAssessment
	Findings          *types.DetectionFindings
	ConstraintsMet    bool // false when a hard requirement is known unmet
	CredentialsMet    bool // false when a mandatory credential is missing
}

// Result is the enforcer's output: the immutable decision plus the
// corrections applied while producing it.
type Result struct {
	Decision    types.FitDecision
	Corrections []types.Correction
}

// Decide produces the final FitDecision. Hard-override conditions are
// evaluated first and take precedence over the generic clamp; the generic
// clamp then guarantees the tier-table invariant for whatever recommendation
// survives. The invariant holds on every path, including the failure default.
func Decide(in Inputs) Result {
	var result Result

	score := clampToScale(in.RawScore, &result)
	rec := normalizeRecommendation(in.RawRecommendation, score, &result)

	if override, ok := hardOverride(in); ok {
		result.Corrections = append(result.Corrections, types.Correction{
			Field:  "recommendation",
			Before: fmt.Sprintf("%d / %s", score, rec),
			After:  fmt.Sprintf("<=%d / %s", tierTable[override.tier].ceiling, override.tier),
			Reason: override.reason,
		})
		rec = override.tier
		if score > tierTable[rec].ceiling {
			score = tierTable[rec].ceiling
		}
		if score < tierTable[rec].floor {
			score = tierTable[rec].floor
		}
		result.Decision = types.FitDecision{
			Score:           score,
			Recommendation:  rec,
			OverrideApplied: true,
			OverrideReason:  override.reason,
		}
		return result
	}

	score, clamped, reason := enforceLock(score, rec, &result)
	result.Decision = types.FitDecision{
		Score:           score,
		Recommendation:  rec,
		OverrideApplied: clamped,
		OverrideReason:  reason,
	}
	return result
}

// enforceLock looks up the valid range for the stated recommendation and, if
// the score falls outside it, clamps the score to the nearer bound while
// keeping the recommendation. Every clamp is recorded with before/after
// values and a human-readable reason.
func enforceLock(score int, rec types.Recommendation, result *Result) (int, bool, string) {
	r := tierTable[rec]

	if score >= r.floor && score <= r.ceiling {
		return score, false, ""
	}

	corrected := score
	var reason string
	if score > r.ceiling {
		corrected = r.ceiling
		reason = fmt.Sprintf("score %d exceeds the %q ceiling of %d; capped to keep score and recommendation consistent", score, rec, r.ceiling)
	} else {
		corrected = r.floor
		reason = fmt.Sprintf("score %d is below the %q floor of %d; raised to keep score and recommendation consistent", score, rec, r.floor)
	}

	result.Corrections = append(result.Corrections, types.Correction{
		Field:  "score",
		Before: strconv.Itoa(score),
		After:  strconv.Itoa(corrected),
		Reason: reason,
	})
	return corrected, true, reason
}

// hardOverrideResult names the forced tier and why it was forced.
type hardOverrideResult struct {
	tier   types.Recommendation
	reason string
}

// minimumExperienceRatio is the fraction of the required years below which
// the experience hard override fires.
const minimumExperienceRatio = 25.0

// hardOverride evaluates the four conditions that bypass scoring entirely.
// Order matters only for which reason is reported; every condition forces a
// capped tier regardless of the raw score.
func hardOverride(in Inputs) (hardOverrideResult, bool) {
	if in.Requirement != nil && len(in.Requirement.HardConstraints) > 0 && !in.ConstraintsMet {
		return hardOverrideResult{
			tier: types.RecDoNotApply,
			reason: fmt.Sprintf("eligibility gate failed: hard requirement unmet (%s)",
				strings.Join(in.Requirement.HardConstraints, ", ")),
		}, true
	}

	if !in.CredentialsMet {
		return hardOverrideResult{
			tier:   types.RecDoNotApply,
			reason: "mandatory credential missing",
		}, true
	}

	if in.Findings != nil && in.Findings.CareerSwitcher != nil {
		cs := in.Findings.CareerSwitcher
		if cs.IsSwitcher && cs.OwnershipLevel == types.OwnershipExposure {
			return hardOverrideResult{
				tier:   types.RecDoNotApply,
				reason: "non-transferable domain mismatch: evidence for the target function is exposure-level only",
			}, true
		}
	}

	if in.Requirement != nil && in.Requirement.HasExperienceGate() && in.Assessment != nil {
		if in.Assessment.YearsPercentOfRequirement < minimumExperienceRatio {
			return hardOverrideResult{
				tier: types.RecLongShot,
				reason: fmt.Sprintf("experience far below requirement: %.1f adjusted years is %.0f%% of the %.0f required",
					in.Assessment.CredibilityAdjustedYears,
					in.Assessment.YearsPercentOfRequirement,
					in.Requirement.RequiredYears),
			}, true
		}
	}

	return hardOverrideResult{}, false
}

// normalizeRecommendation maps the generative step's free-text recommendation
// onto a fixed tier. Unrecognized values fall back to the tier owning the
// clamped score, recorded as a correction.
func normalizeRecommendation(raw string, score int, result *Result) types.Recommendation {
	trimmed := strings.TrimSpace(raw)
	for _, rec := range types.AllRecommendations {
		if strings.EqualFold(trimmed, string(rec)) {
			return rec
		}
	}

	fallback := tierForScore(score)
	result.Corrections = append(result.Corrections, types.Correction{
		Field:  "recommendation",
		Before: raw,
		After:  string(fallback),
		Reason: fmt.Sprintf("unrecognized recommendation %q replaced with the tier owning score %d", raw, score),
	})
	return fallback
}

// tierForScore returns the recommendation whose range contains the score.
// The score is already clamped to 0-100, so a tier always exists.
func tierForScore(score int) types.Recommendation {
	for _, rec := range types.AllRecommendations {
		r := tierTable[rec]
		if score >= r.floor && score <= r.ceiling {
			return rec
		}
	}
	return types.RecConsider
}

// clampToScale forces the raw score onto the 0-100 scale before tier logic runs.
func clampToScale(score int, result *Result) int {
	if score >= 0 && score <= 100 {
		return score
	}
	corrected := score
	if corrected < 0 {
		corrected = 0
	}
	if corrected > 100 {
		corrected = 100
	}
	result.Corrections = append(result.Corrections, types.Correction{
		Field:  "score",
		Before: strconv.Itoa(score),
		After:  strconv.Itoa(corrected),
		Reason: "raw score outside the 0-100 scale",
	})
	return corrected
}

// TierRange exposes the floor and ceiling for a recommendation, primarily for
// validation and tests.
func TierRange(rec types.Recommendation) (floor, ceiling int, ok bool) {
	r, found := tierTable[rec]
	if !found {
		return 0, 0, false
	}
	return r.floor, r.ceiling, true
}
