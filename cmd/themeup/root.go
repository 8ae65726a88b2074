package themeup

import (
	"fmt"

	"github.com/arthur-debert/themeup/cmd/themeup/commands/genconfig"
	"github.com/arthur-debert/themeup/cmd/themeup/commands/profile"
	"github.com/arthur-debert/themeup/cmd/themeup/commands/settings"
	"github.com/arthur-debert/themeup/cmd/themeup/commands/themes"
	"github.com/arthur-debert/themeup/cmd/themeup/commands/up"
	"github.com/arthur-debert/themeup/internal/cli"
	"github.com/arthur-debert/themeup/internal/version"
	"github.com/arthur-debert/themeup/pkg/logging"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command bound to the process streams
func NewRootCmd() *cobra.Command {
	return NewRootCmdWithApp(cli.NewApp())
}

// NewRootCmdWithApp creates the root command around an existing App
func NewRootCmdWithApp(app *cli.App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "themeup",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(app.Verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}
	rootCmd.SetOut(app.Stdout)
	rootCmd.SetErr(app.Stderr)

	// Defaults come from app so values set before parsing survive
	if app.Format == "" {
		app.Format = "auto"
	}
	rootCmd.PersistentFlags().CountVarP(&app.Verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&app.Format, "format", app.Format, MsgFlagFormat)
	rootCmd.PersistentFlags().StringVar(&app.ConfigFile, "config", app.ConfigFile, MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "SETUP:"})
	rootCmd.AddGroup(&cobra.Group{ID: "info", Title: "INFO:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIG:"})

	rootCmd.AddCommand(up.NewCommand(app))
	rootCmd.AddCommand(settings.NewCommand(app))
	rootCmd.AddCommand(profile.NewCommand(app))
	rootCmd.AddCommand(themes.NewCommand(app))
	rootCmd.AddCommand(genconfig.NewCommand(app))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		GroupID: "info",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		GroupID:               "config",
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}
