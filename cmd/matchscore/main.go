// Package main provides the entry point for the resume-matcher CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "matchscore",
	Short: "Resume-job match scoring",
	Long:  "matchscore scores how well a resume matches a job description using the hybrid Classic (keyword + semantic + evidence) or Premium (BM25 + semantic + rerank + evidence) pipeline and explains the result.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
