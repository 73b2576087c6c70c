package cmd

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/domain"
)

var statsDays int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show completed work phases per day",
	Long:  `Display a bar chart of completed work phases for each of the last N days, with totals.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := context.Background()
		out := cmd.OutOrStdout()

		if statsDays <= 0 {
			return fmt.Errorf("--days must be positive, got %d", statsDays)
		}

		history, err := app.historyService()
		if err != nil {
			return err
		}
		if !history.Enabled() {
			fmt.Fprintln(out, `History is disabled. Enable it with "pomo config set history.enabled true".`)
			return nil
		}

		days, err := history.Daily(ctx, statsDays)
		if err != nil {
			return fmt.Errorf("failed to get stats: %w", err)
		}

		fmt.Fprintln(out)
		renderDashboard(out, days, lipgloss.Color(app.config.Theme.ColorWork))
		return nil
	},
}

func init() {
	statsCmd.Flags().IntVarP(&statsDays, "days", "d", 7, "Number of days to show, today included")
	rootCmd.AddCommand(statsCmd)
}

// statsTotals sums a range of daily stats.
type statsTotals struct {
	WorkPhases int
	RestPhases int
	WorkTime   time.Duration
}

func sumStats(days []domain.DailyStats) statsTotals {
	var t statsTotals
	for _, d := range days {
		t.WorkPhases += d.WorkPhases
		t.RestPhases += d.RestPhases
		t.WorkTime += d.TotalWorkTime
	}
	return t
}

func renderDashboard(out io.Writer, days []domain.DailyStats, barColor lipgloss.Color) {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(barColor)
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
	valueStyle := lipgloss.NewStyle().Bold(true)

	label := "Today"
	if len(days) > 1 {
		label = fmt.Sprintf("Last %d days", len(days))
	}
	fmt.Fprintf(out, "  %s\n", titleStyle.Render(label))
	fmt.Fprintf(out, "  %s\n\n", dimStyle.Render(strings.Repeat("─", 40)))

	totals := sumStats(days)
	fmt.Fprintf(out, "  Total: %s work phases, %s rests, %s focused\n\n",
		valueStyle.Render(fmt.Sprintf("%d", totals.WorkPhases)),
		valueStyle.Render(fmt.Sprintf("%d", totals.RestPhases)),
		valueStyle.Render(formatHours(totals.WorkTime.Hours())),
	)

	if totals.WorkPhases == 0 {
		fmt.Fprintf(out, "  %s\n\n", dimStyle.Render("No completed work phases in this period."))
		return
	}

	fmt.Fprintln(out, renderChart(days, barColor))
	fmt.Fprintln(out)
}

// renderChart draws one bar per day, sized by completed work phases.
func renderChart(days []domain.DailyStats, barColor lipgloss.Color) string {
	width := len(days) * 7
	if width < 20 {
		width = 20
	}
	chart := barchart.New(width, 10)

	style := lipgloss.NewStyle().Foreground(barColor)
	bars := make([]barchart.BarData, 0, len(days))
	for _, d := range days {
		bars = append(bars, barchart.BarData{
			Label: d.Date.Format("Mon 02"),
			Values: []barchart.BarValue{{
				Name:  "work",
				Value: float64(d.WorkPhases),
				Style: style,
			}},
		})
	}

	chart.PushAll(bars)
	chart.Draw()
	return chart.View()
}

// formatHours formats fractional hours like "1h30m" or "45m".
func formatHours(hours float64) string {
	total := int(hours*60 + 0.5)
	h, m := total/60, total%60
	switch {
	case h == 0:
		return fmt.Sprintf("%dm", m)
	case m == 0:
		return fmt.Sprintf("%dh", h)
	default:
		return fmt.Sprintf("%dh%dm", h, m)
	}
}
