package cmd

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
	"github.com/xvierd/pomo/internal/config"
	"github.com/xvierd/pomo/internal/domain"
)

// setupChoices holds the answers of the setup form.
type setupChoices struct {
	Profile string
	History bool
	Git     bool
	Theme   string
}

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Pick a profile, history and colors interactively",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		profile := domain.ProfileStandard
		if p, err := domain.ValidateProfile(app.config.Profile); err == nil {
			profile = p
		}
		choices := setupChoices{
			Profile: string(profile),
			History: app.config.History.Enabled,
			Git:     app.config.Git.Enabled,
			Theme:   "tomato",
		}

		if err := newSetupForm(&choices).Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				fmt.Fprintln(cmd.OutOrStdout(), "  No changes made.")
				return nil
			}
			return err
		}

		if err := applySetup(app.config, choices); err != nil {
			return err
		}
		if err := config.Save(app.config); err != nil {
			return fmt.Errorf("failed to save config: %w", err)
		}

		app.logger.Info("setup saved", "profile", choices.Profile, "theme", choices.Theme)
		fmt.Fprintln(cmd.OutOrStdout(), "  Saved. Run \"pomo\" to start.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func newSetupForm(c *setupChoices) *huh.Form {
	themeOptions := make([]huh.Option[string], 0)
	for _, name := range config.ThemePresetNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().Title("Phase lengths").
				Options(
					huh.NewOption("Standard (25 min work / 5 min rest)", string(domain.ProfileStandard)),
					huh.NewOption("Demo (5 s / 5 s)", string(domain.ProfileDemo)),
				).Value(&c.Profile),
			huh.NewSelect[string]().Title("Colors").
				Options(themeOptions...).
				Value(&c.Theme),
		).Title("Timer"),
		huh.NewGroup(
			huh.NewConfirm().Title("Keep a history of completed phases?").Value(&c.History),
			huh.NewConfirm().Title("Tag history with the current git branch?").Value(&c.Git),
		).Title("History"),
	).WithShowHelp(true).WithShowErrors(true)
}

// applySetup copies the form answers into cfg.
func applySetup(cfg *config.Config, c setupChoices) error {
	p, err := domain.ValidateProfile(c.Profile)
	if err != nil {
		return err
	}
	if !cfg.ApplyThemePreset(c.Theme) {
		return fmt.Errorf("unknown theme %q", c.Theme)
	}
	cfg.Profile = string(p)
	cfg.History.Enabled = c.History
	cfg.Git.Enabled = c.Git
	return nil
}
