package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)

func TestPosition_Years(t *testing.T) {
	tests := []struct {
		name     string
		start    string
		end      string
		expected float64
	}{
		{"closed range", "2020-01", "2024-01", 4.0},
		{"partial year", "2023-01", "2023-07", 0.5},
		{"present runs to now", "2025-06", "present", 1.0},
		{"current runs to now", "2025-06", "current", 1.0},
		{"empty end runs to now", "2025-06", "", 1.0},
		{"unparseable start", "early 2020", "2024-01", 0},
		{"unparseable end", "2020-01", "sometime", 0},
		{"end before start", "2024-01", "2020-01", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Position{Start: tt.start, End: tt.end}
			assert.InDelta(t, tt.expected, p.Years(testNow), 0.001)
		})
	}
}

func TestResumeRecord_IsEmpty(t *testing.T) {
	var nilRecord *ResumeRecord
	assert.True(t, nilRecord.IsEmpty())
	assert.True(t, (&ResumeRecord{}).IsEmpty())
	assert.True(t, (&ResumeRecord{Positions: []Position{{Title: "  "}}}).IsEmpty())
	assert.False(t, (&ResumeRecord{Positions: []Position{{Title: "Recruiter"}}}).IsEmpty())
	assert.False(t, (&ResumeRecord{Positions: []Position{{Company: "Acme"}}}).IsEmpty())
}

func TestPosition_CombinedTextLowercases(t *testing.T) {
	p := Position{
		Title:   "Senior Recruiter",
		Bullets: []string{"Owned the PIPELINE"},
	}
	text := p.CombinedText()
	assert.Equal(t, "senior recruiter owned the pipeline", text)
}
