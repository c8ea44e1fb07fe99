// Package types provides type definitions for structured data used throughout the fit-analyzer system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"strings"
	"time"
)

// Position represents a single employment entry in a resume.
type Position struct {
	Company string   `json:"company"`
	Title   string   `json:"title"`
	Start   string   `json:"start"` // "YYYY-MM"
	End     string   `json:"end"`   // "YYYY-MM" or "present"
	Bullets []string `json:"bullets"`
}

// ResumeRecord represents a structured resume as an ordered list of positions.
// The pipeline only reads it; ownership stays with the caller.
type ResumeRecord struct {
	Positions []Position `json:"positions"`
}

// IsEmpty reports whether the resume contains no usable positions.
func (r *ResumeRecord) IsEmpty() bool {
	if r == nil {
		return true
	}
	for _, p := range r.Positions {
		if strings.TrimSpace(p.Title) != "" || strings.TrimSpace(p.Company) != "" {
			return false
		}
	}
	return true
}

// CombinedText returns the position's title and bullets joined into a single
// lowercased string for keyword matching.
func (p *Position) CombinedText() string {
	var sb strings.Builder
	sb.WriteString(p.Title)
	for _, b := range p.Bullets {
		sb.WriteString(" ")
		sb.WriteString(b)
	}
	return strings.ToLower(sb.String())
}

// Years returns the tenure of the position in fractional years.
// Dates are "YYYY-MM"; End may be "present". Unparseable dates yield 0
// rather than an error so a single bad entry never fails the whole resume.
func (p *Position) Years(now time.Time) float64 {
	start, err := time.Parse("2006-01", strings.TrimSpace(p.Start))
	if err != nil {
		return 0
	}

	end := now
	endStr := strings.ToLower(strings.TrimSpace(p.End))
	if endStr != "" && endStr != "present" && endStr != "current" {
		parsed, err := time.Parse("2006-01", endStr)
		if err != nil {
			return 0
		}
		end = parsed
	}

	if end.Before(start) {
		return 0
	}

	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	return float64(months) / 12.0
}
