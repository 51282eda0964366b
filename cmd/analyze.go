package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillcoach/internal/analysis"
	"github.com/abhisek/skillcoach/internal/llm"
)

// languageByExt guesses the submission language from the file extension
// when --language is not given.
var languageByExt = map[string]string{
	".py":   "python",
	".js":   "javascript",
	".ts":   "typescript",
	".go":   "go",
	".rs":   "rust",
	".java": "java",
	".rb":   "ruby",
	".c":    "c",
	".cpp":  "c++",
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze <file>",
	Short: "Run AI code analysis on a file and update skill states",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		language, _ := cmd.Flags().GetString("language")
		diagnostics, _ := cmd.Flags().GetString("diagnostics")

		code, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read file: %w", err)
		}

		if language == "" {
			ext := strings.ToLower(filepath.Ext(args[0]))
			language = languageByExt[ext]
			if language == "" {
				return fmt.Errorf("cannot infer language from %q, use --language", args[0])
			}
		}

		s, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := resolveUser(cmd, cfg)
		if err != nil {
			return err
		}

		provider, err := llm.NewProvider(cmd.Context(), cfg.LLMSettings(), s.EventRepo())
		if err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}

		analyzer := analysis.NewAnalyzer(provider, analysis.DefaultAnalyzerConfig())
		result, err := analyzer.Analyze(cmd.Context(), language, string(code), diagnostics)
		if err != nil {
			return err
		}

		if err := analysis.NewService(s.StateRepo()).Apply(cmd.Context(), user, result); err != nil {
			return fmt.Errorf("apply analysis: %w", err)
		}

		fmt.Printf("Language:   %s\n", result.Language)
		fmt.Printf("Level:      %d/5\n", result.EstimatedLevel)
		fmt.Printf("Confidence: %.0f/100\n", result.ConfidenceScore)

		printList := func(header string, items []string) {
			if len(items) == 0 {
				return
			}
			fmt.Printf("\n%s:\n", header)
			for _, it := range items {
				fmt.Printf("  - %s\n", it)
			}
		}
		printList("Strengths", result.Strengths)
		printList("Skill gaps", result.SkillGaps)
		printList("Suggestions", result.Suggestions)

		return nil
	},
}

func init() {
	analyzeCmd.Flags().StringP("language", "l", "", "Language of the submission (inferred from extension when omitted)")
	analyzeCmd.Flags().String("diagnostics", "", "Compiler or runtime diagnostics to include in the analysis")
}
