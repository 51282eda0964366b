package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/skillcoach/internal/events"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Append a practice event",
	RunE: func(cmd *cobra.Command, args []string) error {
		eventType, _ := cmd.Flags().GetString("type")
		language, _ := cmd.Flags().GetString("language")
		message, _ := cmd.Flags().GetString("message")

		s, cfg, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		user, err := resolveUser(cmd, cfg)
		if err != nil {
			return err
		}

		rec, err := events.NewIngestor(s.EventRepo()).Ingest(cmd.Context(), user, eventType, language, message)
		if err != nil {
			return fmt.Errorf("ingest event: %w", err)
		}

		fmt.Printf("Recorded %s event %s", rec.EventType, rec.ID)
		if rec.Skill != "" {
			fmt.Printf(" (skill: %s, difficulty: %d)", rec.Skill, rec.Difficulty)
		}
		fmt.Println()
		return nil
	},
}

func init() {
	ingestCmd.Flags().StringP("type", "t", "", "Event type (e.g. code_analysis, compile_error, runtime_error)")
	ingestCmd.Flags().StringP("language", "l", "", "Language / skill label of the event")
	ingestCmd.Flags().StringP("message", "m", "", "Free-text message attached to the event")
	ingestCmd.MarkFlagRequired("type")
}
