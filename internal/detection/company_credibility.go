package detection

import (
	"strings"

	"github.com/jonathan/fit-analyzer/internal/types"
)

// knownBrands are employers whose claimed scale is independently verifiable.
// Matching is substring on the lowercased company name.
var knownBrands = []string{
	"google", "meta", "facebook", "amazon", "apple", "microsoft", "netflix",
	"stripe", "airbnb", "uber", "lyft", "salesforce", "linkedin", "shopify",
	"datadog", "snowflake", "oracle", "ibm", "adobe", "atlassian", "spotify",
}

// fundingSignals mark companies with some external verification (investors,
// accelerators) but not public-scale proof.
var fundingSignals = []string{
	"series a", "series b", "series c", "series d", "yc ", "y combinator",
	"venture-backed", "venture backed", "funded",
}

// inflationRedFlags mark companies whose framing suggests the role itself is
// unverifiable: stealth shells, or operations-style titles dressed up with
// product/engineering claims.
var inflationRedFlags = []string{
	"stealth", "self-employed", "freelance", "consulting llc",
}

// opsStyleTitles paired with PM or engineering bullet claims are the classic
// title-washing pattern.
var opsStyleTitles = []string{
	"operations", "office manager", "administrative", "coordinator", "assistant",
}

var productClaimKeywords = []string{
	"product strategy", "roadmap", "engineering", "shipped", "technical architecture",
}

// AssessCompanyCredibility tiers every employer on the resume by how
// verifiable its claimed scale is. The resulting multipliers are applied by
// the credibility adjuster per position before summation; the tiers
// themselves never touch the score directly.
func AssessCompanyCredibility(resume *types.ResumeRecord) *types.CompanyCredibilityFinding {
	finding := &types.CompanyCredibilityFinding{
		Companies: make([]types.CompanyTier, 0, len(resume.Positions)),
	}

	seen := make(map[string]bool)
	for _, pos := range resume.Positions {
		if seen[pos.Company] {
			continue
		}
		seen[pos.Company] = true

		tier, signals := assessOne(&pos)
		finding.Companies = append(finding.Companies, types.CompanyTier{
			Company:             pos.Company,
			Tier:                tier,
			Multiplier:          tier.Multiplier(),
			VerificationSignals: signals,
		})
	}

	return finding
}

func assessOne(pos *types.Position) (types.CredibilityTier, []string) {
	companyLower := strings.ToLower(pos.Company)
	titleLower := strings.ToLower(pos.Title)
	bodyLower := pos.CombinedText()

	// Red flags are checked first: a stealth company named after a brand
	// keyword must not tier high.
	var signals []string
	for _, flag := range inflationRedFlags {
		if strings.Contains(companyLower, flag) || strings.Contains(bodyLower, flag) {
			signals = append(signals, "red_flag:"+flag)
		}
	}
	if containsAny(titleLower, opsStyleTitles) && containsAny(bodyLower, productClaimKeywords) {
		signals = append(signals, "red_flag:ops_title_with_product_claims")
	}
	if len(signals) > 0 {
		return types.CredibilityZero, signals
	}

	for _, brand := range knownBrands {
		if strings.Contains(companyLower, brand) {
			return types.CredibilityHigh, []string{"known_brand:" + brand}
		}
	}

	for _, signal := range fundingSignals {
		if strings.Contains(bodyLower, signal) {
			return types.CredibilityMedium, []string{"funding_signal:" + strings.TrimSpace(signal)}
		}
	}

	return types.CredibilityLow, nil
}
