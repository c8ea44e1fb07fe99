package extraction

import (
	"regexp"
	"strconv"
)

// Years requirement patterns, checked in order. "N-M years" must come before
// "N+ years" so the range form isn't half-consumed by the simpler pattern.
var (
	rangeYearsPattern = regexp.MustCompile(`(\d+)\s*(?:-|–|to)\s*(\d+)\+?\s*(?:\+\s*)?years?`)
	plusYearsPattern  = regexp.MustCompile(`(\d+)\s*\+\s*years?`)
	plainYearsPattern = regexp.MustCompile(`(\d+)\s*years?(?:\s+of)?\s+(?:experience|relevant|professional|hands-on)`)
)

// ExtractRequiredYears pulls the minimum years-of-experience requirement from
// job description text. Handles "N+ years", "N-M years" (takes N), and plain
// "N years of experience". Absence yields 0, which downstream treats as
// "no experience gate".
func ExtractRequiredYears(lower string) float64 {
	if m := rangeYearsPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return float64(n)
		}
	}
	if m := plusYearsPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return float64(n)
		}
	}
	if m := plainYearsPattern.FindStringSubmatch(lower); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil {
			return float64(n)
		}
	}
	return 0
}
