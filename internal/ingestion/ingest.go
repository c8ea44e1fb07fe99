// Package ingestion turns job description sources (files, URLs) into clean
// text for the requirement extractor.
package ingestion

import (
	"context"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/jonathan/fit-analyzer/internal/fetch"
)

var (
	// ErrHTTPRequestFailed is returned when the HTTP request fails
	ErrHTTPRequestFailed = fmt.Errorf("HTTP request failed")
	// ErrContentExtractionFailed is returned when content extraction fails
	ErrContentExtractionFailed = fmt.Errorf("content extraction failed")
	// ErrEmptyContent is returned when a source yields no usable text
	ErrEmptyContent = fmt.Errorf("empty content")
)

// IngestFromFile reads a job description from a text file and cleans it.
func IngestFromFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job file %s: %w", path, err)
	}

	cleaned := CleanText(string(data))
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyContent, path)
	}
	return cleaned, nil
}

// IngestFromURL fetches a job posting page, extracts its text, and cleans it.
// When useBrowser is set and the HTTP fetch yields too little content, the
// page is re-rendered in a headless browser before extraction.
func IngestFromURL(ctx context.Context, urlStr string, useBrowser bool) (string, error) {
	result, err := fetch.URL(ctx, urlStr)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHTTPRequestFailed, err)
	}

	text, err := fetch.ExtractJobText(result.HTML)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrContentExtractionFailed, err)
	}

	if useBrowser && fetch.ShouldUseBrowser(text) {
		browserHTML, browserErr := fetch.WithBrowser(ctx, urlStr)
		if browserErr == nil {
			if rendered, extractErr := fetch.ExtractJobText(browserHTML); extractErr == nil {
				text = rendered
			}
		}
		// On browser failure the HTTP content is used as-is.
	}

	cleaned := CleanText(text)
	if cleaned == "" {
		return "", fmt.Errorf("%w: %s", ErrEmptyContent, urlStr)
	}
	return cleaned, nil
}

var multiSpace = regexp.MustCompile(`\s+`)

// CleanText normalizes line endings and whitespace while preserving the
// line structure requirement extraction relies on.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blankRun := 0
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			blankRun++
			if blankRun > 1 {
				continue
			}
			cleaned = append(cleaned, "")
			continue
		}
		blankRun = 0
		cleaned = append(cleaned, multiSpace.ReplaceAllString(line, " "))
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
