// Package man implements the hidden man command.
package man

import (
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/pkg/constants"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
)

// NewCommand creates the man command. Packagers use it to ship man pages.
func NewCommand(app application.Application) *cobra.Command {
	var dir string
	cmd := &cobra.Command{
		Use:    "man",
		Short:  "Generate man pages",
		Hidden: true,
		Args:   cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root := cmd.Root()
			root.DisableAutoGenTag = true
			header := &doc.GenManHeader{
				Title:   "SQUADSELECTOR",
				Section: "1",
				Source:  "squadselector " + app.Version(),
				Manual:  "squadselector Manual",
			}

			if dir == "" {
				return doc.GenMan(root, header, cmd.OutOrStdout())
			}
			if err := os.MkdirAll(dir, constants.DirPermissions); err != nil {
				return errors.WrapIO("create", dir, err)
			}
			app.Logger().Debug().Str("dir", dir).Msg("Writing man pages")
			return doc.GenManTree(root, header, dir)
		},
	}
	cmd.Flags().StringVar(&dir, "dir", "", "Write one page per command into this directory")
	return cmd
}
