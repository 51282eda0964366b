package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillcoach/internal/insight"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show the event-derived per-skill summary",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := resolveUser(cmd, cfg)
		if err != nil {
			return err
		}

		summary, err := insight.NewService(s.EventRepo()).Summarize(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("summarize events: %w", err)
		}

		if len(summary) == 0 {
			fmt.Println("No practice events recorded yet.")
			return nil
		}

		skills := make([]string, 0, len(summary))
		for skill := range summary {
			skills = append(skills, skill)
		}
		sort.Strings(skills)

		fmt.Printf("%-20s  %8s  %10s  %5s  %10s  %s\n",
			"Skill", "Attempts", "AvgDiff", "Gaps", "Confidence", "Recommendation")
		fmt.Println(strings.Repeat("─", 110))

		for _, skill := range skills {
			sum := summary[skill]
			fmt.Printf("%-20s  %8d  %10.2f  %5d  %10d  %s\n",
				skill, sum.Attempts, sum.AvgDifficulty, sum.GapsDetected,
				sum.ConfidenceScore, sum.Recommendation)
		}
		return nil
	},
}
