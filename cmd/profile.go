package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillcoach/internal/fusion"
	"github.com/abhisek/skillcoach/internal/insight"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show the fused skill profile, most actionable gaps first",
	RunE: func(cmd *cobra.Command, args []string) error {
		asJSON, _ := cmd.Flags().GetBool("json")

		s, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := resolveUser(cmd, cfg)
		if err != nil {
			return err
		}

		engine := fusion.NewEngine(s.StateRepo(), insight.NewService(s.EventRepo()))
		records, err := engine.Fuse(cmd.Context(), user)
		if err != nil {
			return fmt.Errorf("build skill profile: %w", err)
		}

		if asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}

		if len(records) == 0 {
			fmt.Println("No skill states recorded yet. Run `skillcoach analyze` first.")
			return nil
		}

		fmt.Printf("%-20s  %5s  %6s  %4s  %-8s  %7s  %7s  %7s  %-7s  %s\n",
			"Skill", "Level", "Target", "Gap", "Priority", "EvConf", "StConf", "Final", "Mastery", "Recommendation")
		fmt.Println(strings.Repeat("─", 130))

		for _, r := range records {
			rec := r.Recommendation
			if len(rec) > 40 {
				rec = rec[:37] + "..."
			}
			fmt.Printf("%-20s  %5d  %6d  %4d  %-8s  %7d  %7.2f  %7.2f  %-7s  %s\n",
				r.Skill, r.CurrentLevel, r.TargetLevel, r.Gap, r.Priority,
				r.EventConfidence, r.StateConfidence, r.FinalConfidence, r.Mastery, rec)
		}

		fmt.Printf("\n%d skills\n", len(records))
		return nil
	},
}

func init() {
	profileCmd.Flags().Bool("json", false, "Emit the profile as JSON")
}
