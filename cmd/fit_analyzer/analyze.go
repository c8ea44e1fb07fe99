package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/fit-analyzer/internal/audit"
	"github.com/jonathan/fit-analyzer/internal/config"
	"github.com/jonathan/fit-analyzer/internal/extraction"
	"github.com/jonathan/fit-analyzer/internal/ingestion"
	"github.com/jonathan/fit-analyzer/internal/llm"
	"github.com/jonathan/fit-analyzer/internal/observability"
	"github.com/jonathan/fit-analyzer/internal/pipeline"
	"github.com/jonathan/fit-analyzer/internal/types"
	"github.com/jonathan/fit-analyzer/internal/validation"
)

var analyzeFlags struct {
	configPath string
	resumePath string
	jobPath    string
	jobURL     string
	apiKey     string
	useBrowser bool
	verbose    bool
	dbURL      string
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze how well a resume fits a job description",
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeFlags.configPath, "config", "", "Path to JSON config file")
	analyzeCmd.Flags().StringVar(&analyzeFlags.resumePath, "resume", "", "Path to structured resume JSON")
	analyzeCmd.Flags().StringVar(&analyzeFlags.jobPath, "job", "", "Path to job description text file")
	analyzeCmd.Flags().StringVar(&analyzeFlags.jobURL, "job-url", "", "URL to fetch the job posting from")
	analyzeCmd.Flags().StringVar(&analyzeFlags.apiKey, "api-key", "", "Gemini API key (or GEMINI_API_KEY env)")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.useBrowser, "use-browser", false, "Render JS-heavy job boards in a headless browser")
	analyzeCmd.Flags().BoolVar(&analyzeFlags.verbose, "verbose", false, "Print detailed progress")
	analyzeCmd.Flags().StringVar(&analyzeFlags.dbURL, "database-url", "", "PostgreSQL URL for the audit store (or DATABASE_URL env)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()

	cfg := config.Config{
		Resume:      analyzeFlags.resumePath,
		Job:         analyzeFlags.jobPath,
		JobURL:      analyzeFlags.jobURL,
		APIKey:      analyzeFlags.apiKey,
		UseBrowser:  analyzeFlags.useBrowser,
		Verbose:     analyzeFlags.verbose,
		DatabaseURL: analyzeFlags.dbURL,
	}
	if analyzeFlags.configPath != "" {
		fileCfg, err := config.LoadConfig(analyzeFlags.configPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.APIKey == "" {
		cfg.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return fmt.Errorf("one of --job or --job-url is required")
	}
	if cfg.APIKey == "" {
		return fmt.Errorf("API key is required (--api-key or GEMINI_API_KEY)")
	}

	resume, err := loadResume(cfg.Resume)
	if err != nil {
		return err
	}

	var jobText string
	if cfg.JobURL != "" {
		jobText, err = ingestion.IngestFromURL(ctx, cfg.JobURL, cfg.UseBrowser)
	} else {
		jobText, err = ingestion.IngestFromFile(cfg.Job)
	}
	if err != nil {
		return err
	}

	client, err := llm.NewGeminiClient(ctx, nil, cfg.APIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	var recorder audit.Recorder
	if cfg.DatabaseURL != "" {
		store, storeErr := audit.Connect(ctx, cfg.DatabaseURL)
		if storeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: audit store unavailable: %v\n", storeErr)
			fmt.Fprintf(os.Stderr, "Continuing with in-memory audit records...\n")
		} else {
			defer store.Close()
			recorder = store
		}
	}

	p := pipeline.New(pipeline.Options{Client: client, Recorder: recorder})

	var printer *observability.Printer
	if cfg.Verbose {
		printer = observability.NewPrinter(os.Stdout)
		printer.PrintRequirement(extraction.ParseJobRequirement(jobText))
	}

	result, err := p.Analyze(ctx, resume, jobText)
	if err != nil {
		return presentFailure(err)
	}

	if printer != nil {
		printer.PrintDecision(result)
	}

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}

func loadResume(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume file %s: %w", path, err)
	}
	var resume types.ResumeRecord
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume JSON: %w", err)
	}
	return &resume, nil
}

// presentFailure maps pipeline failures to short user-facing messages that
// distinguish "try again" from "insufficient input". Raw stack traces and
// partial results never reach the user.
func presentFailure(err error) error {
	var insufficient *pipeline.InsufficientInputError
	if errors.As(err, &insufficient) {
		return fmt.Errorf("insufficient input: %s", insufficient.Message)
	}

	var timeout *llm.TimeoutError
	if errors.As(err, &timeout) {
		return fmt.Errorf("the analysis service timed out; try again")
	}

	var malformed *llm.MalformedError
	if errors.As(err, &malformed) {
		return fmt.Errorf("the analysis service returned an unusable response; try again")
	}

	var gate *validation.Failure
	if errors.As(err, &gate) {
		return fmt.Errorf("analysis did not pass quality checks (%d issues); try again", len(gate.Errors))
	}

	return err
}
