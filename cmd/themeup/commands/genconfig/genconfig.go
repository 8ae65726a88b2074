package genconfig

import (
	"fmt"

	"github.com/arthur-debert/themeup/internal/cli"
	"github.com/arthur-debert/themeup/pkg/config"
	"github.com/arthur-debert/themeup/pkg/errors"
	"github.com/arthur-debert/themeup/pkg/filesystem"
	"github.com/arthur-debert/themeup/pkg/ui/display"
	"github.com/spf13/cobra"
)

// NewCommand creates the genconfig command
func NewCommand(app *cli.App) *cobra.Command {
	var write, force, effective bool

	cmd := &cobra.Command{
		Use:     "genconfig",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if effective {
				cfg, err := app.LoadConfig(nil)
				if err != nil {
					return err
				}
				content, err := cfg.TOML()
				if err != nil {
					return err
				}
				return app.Render(&display.Text{Content: content})
			}

			content := config.GenerateConfigContent()
			if !write {
				return app.Render(&display.Text{Content: content})
			}

			path := app.ConfigFile
			if path == "" {
				path = config.DefaultConfigPath()
			}
			if err := writeConfig(app, path, content, force); err != nil {
				return err
			}
			return app.Message(fmt.Sprintf(MsgWrote, path))
		},
	}

	cmd.Flags().BoolVarP(&write, "write", "w", false, MsgFlagWrite)
	cmd.Flags().BoolVar(&force, "force", false, MsgFlagForce)
	cmd.Flags().BoolVar(&effective, "effective", false, MsgFlagEffective)
	cmd.MarkFlagsMutuallyExclusive("write", "effective")

	return cmd
}

func writeConfig(app *cli.App, path, content string, force bool) error {
	fsys := app.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	if _, err := fsys.Stat(path); err == nil && !force {
		return errors.Newf(errors.ErrInvalidInput, "%s already exists, use --force to overwrite", path).
			WithDetail("path", path)
	}
	if err := filesystem.EnsureParentDir(fsys, path); err != nil {
		return err
	}
	if err := filesystem.WriteFileAtomic(fsys, path, []byte(content), 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return nil
}
