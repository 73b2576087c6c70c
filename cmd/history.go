package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/domain"
)

var (
	historyLimit int
	historyJSON  bool
)

// historyCmd lists recently completed phases.
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently completed phases",
	Long:  `List the most recent work and rest phases that ran to completion, newest first.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		if historyLimit <= 0 {
			return fmt.Errorf("--limit must be positive, got %d", historyLimit)
		}

		history, err := app.historyService()
		if err != nil {
			return err
		}
		if !history.Enabled() {
			fmt.Fprintln(out, `History is disabled. Enable it with "pomo config set history.enabled true".`)
			return nil
		}

		records, err := history.Recent(ctx, historyLimit)
		if err != nil {
			return fmt.Errorf("failed to list history: %w", err)
		}

		if historyJSON {
			list := make([]map[string]interface{}, 0, len(records))
			for _, r := range records {
				list = append(list, map[string]interface{}{
					"id":           r.ID,
					"phase":        string(r.Phase),
					"seconds":      r.Seconds,
					"started_at":   r.StartedAt.Format(time.RFC3339),
					"completed_at": r.CompletedAt.Format(time.RFC3339),
					"git_branch":   r.GitBranch,
				})
			}
			data := map[string]interface{}{
				"phases": list,
				"count":  len(list),
			}
			jsonData, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal history: %w", err)
			}
			fmt.Fprintln(out, string(jsonData))
			return nil
		}

		if len(records) == 0 {
			fmt.Fprintln(out, "No completed phases yet.")
			return nil
		}

		fmt.Fprintf(out, "🍅 Completed phases (%d):\n\n", len(records))
		for _, r := range records {
			fmt.Fprintf(out, "%s %-4s %6s  %s", phaseIcon(r.Phase), r.Phase.Label(), formatLength(r.Duration()), r.CompletedAt.Local().Format("2006-01-02 15:04"))
			if r.GitBranch != "" {
				fmt.Fprintf(out, "  (%s)", r.GitBranch)
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 10, "Number of phases to show")
	historyCmd.Flags().BoolVar(&historyJSON, "json", false, "Output results in JSON format")
	rootCmd.AddCommand(historyCmd)
}

func phaseIcon(p domain.Phase) string {
	if p == domain.PhaseRest {
		return "☕"
	}
	return "🍅"
}

// formatLength formats a phase length like "25m", "5m30s" or "5s".
func formatLength(d time.Duration) string {
	m := int(d.Minutes())
	s := int(d.Seconds()) % 60
	switch {
	case m == 0:
		return fmt.Sprintf("%ds", s)
	case s == 0:
		return fmt.Sprintf("%dm", m)
	default:
		return fmt.Sprintf("%dm%ds", m, s)
	}
}
