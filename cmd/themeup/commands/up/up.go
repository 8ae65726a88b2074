package up

import (
	"github.com/arthur-debert/themeup/internal/cli"
	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/spf13/cobra"
)

// NewCommand creates the up command
func NewCommand(app *cli.App) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "up",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := Overrides(cmd)
			if err != nil {
				return err
			}
			cfg, err := app.LoadConfig(overrides)
			if err != nil {
				return err
			}
			_, err = app.Setup(cmd.Context(), cfg, setup.RunAll)
			return err
		},
	}

	cmd.Flags().String("theme", "", MsgFlagTheme)
	cmd.Flags().Bool("force", false, MsgFlagForce)
	cmd.Flags().String("font", "", MsgFlagFont)
	cmd.Flags().Int("font-size", 0, MsgFlagFontSize)
	cmd.Flags().String("font-mode", "", MsgFlagFontMode)
	cmd.Flags().Bool("minimal", false, MsgFlagMinimal)
	cmd.Flags().Bool("no-verify", false, MsgFlagNoVerify)
	cmd.Flags().Bool("dry-run", false, MsgFlagDryRun)
	cmd.Flags().Bool("abort-on-failure", false, MsgFlagAbortOnFailure)
	cmd.Flags().Bool("allow-elevated", false, MsgFlagAllowElevated)

	_ = cmd.RegisterFlagCompletionFunc("font-mode", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{config.FontInstallAuto, config.FontInstallManual, config.FontInstallSkip}, cobra.ShellCompDirectiveNoFileComp
	})

	return cmd
}

// Overrides maps the flags given on the command line to config keys.
// Flags left at their defaults do not override lower layers.
func Overrides(cmd *cobra.Command) (map[string]interface{}, error) {
	flags := cmd.Flags()
	out := map[string]interface{}{}

	for flag, key := range map[string]string{
		"theme":     "theme",
		"font":      "font.family",
		"font-mode": "variant.font_install",
	} {
		if !flags.Changed(flag) {
			continue
		}
		v, err := flags.GetString(flag)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}

	for flag, key := range map[string]string{
		"force":            "force",
		"dry-run":          "dry_run",
		"abort-on-failure": "abort_on_failure",
		"allow-elevated":   "allow_elevated",
	} {
		if !flags.Changed(flag) {
			continue
		}
		v, err := flags.GetBool(flag)
		if err != nil {
			return nil, err
		}
		out[key] = v
	}

	if flags.Changed("font-size") {
		size, err := flags.GetInt("font-size")
		if err != nil {
			return nil, err
		}
		out["font.size"] = size
	}
	if minimal, _ := flags.GetBool("minimal"); minimal {
		out["variant.profile_style"] = config.ProfileStyleMinimal
	}
	if noVerify, _ := flags.GetBool("no-verify"); noVerify {
		out["variant.verify"] = false
	}
	return out, nil
}
