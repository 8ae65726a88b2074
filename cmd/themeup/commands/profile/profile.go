package profile

import (
	"github.com/arthur-debert/themeup/internal/cli"
	"github.com/arthur-debert/themeup/pkg/setup"
	"github.com/spf13/cobra"
)

// NewCommand creates the profile command
func NewCommand(app *cli.App) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "profile",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := app.LoadConfig(map[string]interface{}{"dry_run": dryRun})
			if err != nil {
				return err
			}
			_, err = app.Setup(cmd.Context(), cfg, setup.RunProfile)
			return err
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, MsgFlagDryRun)

	return cmd
}
