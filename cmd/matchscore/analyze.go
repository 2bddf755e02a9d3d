package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/pipeline"
	"github.com/jonathan/resume-matcher/internal/requirements"
	"github.com/jonathan/resume-matcher/internal/skills"
	"github.com/jonathan/resume-matcher/internal/textproc"
	"github.com/jonathan/resume-matcher/internal/types"
)

var analyzeCommand = &cobra.Command{
	Use:   "analyze",
	Short: "Score a resume against a job description",
	Long: `Scores a resume against a job description and prints the final 0-100 score with its component breakdown, matched skills, and missing keywords.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	RunE: runAnalyzeCmd,
}

var (
	analyzeConfigPath   string
	analyzeResume       string
	analyzeJob          string
	analyzeSkills       string
	analyzeMode         string
	analyzeEmbeddingDim int
	analyzeVerbose      bool
	analyzeJSON         bool
)

func init() {
	// Config file flag (processed first)
	analyzeCommand.Flags().StringVar(&analyzeConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	analyzeCommand.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to resume text file")
	analyzeCommand.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to job posting text file")
	analyzeCommand.Flags().StringVar(&analyzeSkills, "skills", "", "Path to skill dictionary JSON (optional, embedded default otherwise)")
	analyzeCommand.Flags().StringVarP(&analyzeMode, "mode", "m", "classic", "Scoring pipeline: classic or premium")
	analyzeCommand.Flags().IntVar(&analyzeEmbeddingDim, "embedding-dim", 0, "Dimension of the local hashing embedder")
	analyzeCommand.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print detailed analysis breakdown")
	analyzeCommand.Flags().BoolVar(&analyzeJSON, "json", false, "Emit the full result as JSON")

	rootCmd.AddCommand(analyzeCommand)
}

func runAnalyzeCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if analyzeConfigPath != "" {
		loadedCfg, err := config.LoadConfig(analyzeConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	// CLI flags take priority over config file values. Mode has a non-empty
	// flag default, so only an explicitly set flag overrides the config.
	flags := config.Config{
		Resume:       analyzeResume,
		Job:          analyzeJob,
		Skills:       analyzeSkills,
		EmbeddingDim: analyzeEmbeddingDim,
		Verbose:      analyzeVerbose || cfg.Verbose,
		JSONOutput:   analyzeJSON || cfg.JSONOutput,
	}
	if cmd.Flags().Changed("mode") || cfg.Mode == "" {
		flags.Mode = analyzeMode
	}
	merged := flags.MergeWithDefaults(cfg)

	if merged.Resume == "" || merged.Job == "" {
		return fmt.Errorf("both --resume and --job are required")
	}

	mode, err := types.ParseMode(merged.Mode)
	if err != nil {
		return err
	}

	resumeText, err := os.ReadFile(merged.Resume)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}
	jobText, err := os.ReadFile(merged.Job)
	if err != nil {
		return fmt.Errorf("failed to read job file: %w", err)
	}

	dict, err := loadDictionary(merged.Skills)
	if err != nil {
		return err
	}

	// The CLI ships with the local hashing capabilities; an API deployment
	// would inject real model-backed implementations here instead.
	embedder := embedding.NewHashing(merged.EmbeddingDim)
	reranker := embedding.NewSimilarityReranker(embedder)

	analyzer, err := pipeline.New(dict, embedder, reranker)
	if err != nil {
		return err
	}

	result, err := analyzer.Analyze(ctx, types.AnalyzeRequest{
		ResumeText: string(resumeText),
		JobText:    string(jobText),
		Mode:       mode,
	})
	if err != nil {
		return err
	}

	if merged.JSONOutput {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	}

	if merged.Verbose {
		printVerbose(os.Stdout, dict, string(resumeText), string(jobText), result)
		return nil
	}

	fmt.Printf("Score: %.1f / 100 (%s)\n", result.Score, result.Mode)
	return nil
}

// printVerbose walks the intermediate stages for the user: both segmented
// documents, the extracted requirements, then the analysis itself.
func printVerbose(out io.Writer, dict *skills.Dictionary, resumeText, jobText string, result *types.AnalysisResult) {
	printer := observability.NewPrinter(out)

	resumeClean, resumeTruncated := textproc.Clean(resumeText)
	jobClean, jobTruncated := textproc.Clean(jobText)
	jobDoc := textproc.Segment(jobClean, jobTruncated)

	printer.PrintDocument("RESUME", textproc.Segment(resumeClean, resumeTruncated))
	printer.PrintDocument("JOB POSTING", jobDoc)
	printer.PrintRequirements(requirements.Extract(jobDoc, dict))
	printer.PrintAnalysis(result)
}

func loadDictionary(path string) (*skills.Dictionary, error) {
	if path == "" {
		return skills.Default()
	}
	return skills.Load(path)
}
