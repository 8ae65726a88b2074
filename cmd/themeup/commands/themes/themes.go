package themes

import (
	"github.com/arthur-debert/themeup/internal/cli"
	"github.com/arthur-debert/themeup/pkg/ui/display"
	"github.com/spf13/cobra"
)

// NewCommand creates the themes command
func NewCommand(app *cli.App) *cobra.Command {
	return &cobra.Command{
		Use:     "themes",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "info",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Render(display.NewThemeList())
		},
	}
}
