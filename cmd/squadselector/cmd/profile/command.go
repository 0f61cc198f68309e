// Package profile implements the profiles command.
package profile

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jpamies/worldcup-squad-selector/internal/cmd/alerts"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/application"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/cmdutil"
	"github.com/jpamies/worldcup-squad-selector/internal/cmd/output"
	"github.com/jpamies/worldcup-squad-selector/pkg/errors"
	"github.com/jpamies/worldcup-squad-selector/pkg/profiles"
)

// NewCommand creates the profiles command with app dependencies.
func NewCommand(app application.Application) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "profiles",
		GroupID: "management",
		Aliases: []string{"profile"},
		Short:   "Manage squad profiles",
		Long: `Profiles are independent sets of squads. The default profile always
exists and cannot be deleted; deleting a profile removes its squads.`,
		Example: `  squadselector profiles                      # List profiles
  squadselector profiles create "Plan B" --switch # Create and switch
  squadselector profiles duplicate default     # Copy every squad
  squadselector profiles use default`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listProfiles(cmd, app)
		},
	}

	cmd.AddCommand(newListCommand(app))
	cmd.AddCommand(newCreateCommand(app))
	cmd.AddCommand(newRenameCommand(app))
	cmd.AddCommand(newDeleteCommand(app))
	cmd.AddCommand(newDuplicateCommand(app))
	cmd.AddCommand(newUseCommand(app))

	return cmd
}

func newListCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List profiles",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return listProfiles(cmd, app)
		},
	}
}

func listProfiles(cmd *cobra.Command, app application.Application) error {
	sel, err := cmdutil.Selector(cmd, app)
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	all, err := sel.Profiles().List(ctx)
	if err != nil {
		return err
	}
	current, err := sel.Profiles().CurrentID(ctx)
	if err != nil {
		return err
	}
	return output.FormatProfiles(cmd.OutOrStdout(), profiles.Sorted(all), current, cmdutil.Flags(app))
}

func newCreateCommand(app application.Application) *cobra.Command {
	var switchTo bool
	cmd := &cobra.Command{
		Use:   "create [NAME]",
		Short: "Create an empty profile",
		Long:  `Create an empty profile. Without a name it is called "Mundial N".`,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 1 {
				name = args[0]
			}
			id, err := sel.Profiles().Create(cmd.Context(), name, switchTo)
			if err != nil {
				return err
			}
			msg := fmt.Sprintf("Profile %s created", id)
			if switchTo {
				msg += " and selected"
			}
			return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(msg))
		},
	}
	cmd.Flags().BoolVar(&switchTo, "switch", false, "Make the new profile current")
	return cmd
}

func newRenameCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:   "rename ID NAME",
		Short: "Rename a profile",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			ok, err := sel.Profiles().Rename(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewNotFoundError("profile", args[0])
			}
			return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(fmt.Sprintf("Profile %s renamed to %q", args[0], args[1])))
		},
	}
}

func newDeleteCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Aliases: []string{"rm"},
		Short:   "Delete a profile and its squads",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			id := args[0]
			p, found, err := sel.Profiles().Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			if !found {
				return errors.NewNotFoundError("profile", id)
			}
			if p.IsDefault() {
				return errors.NewValidationError("profile", id, "the default profile cannot be deleted")
			}
			if _, err := sel.Profiles().Delete(cmd.Context(), id); err != nil {
				return err
			}
			return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(fmt.Sprintf("Profile %q deleted", p.Name)))
		},
	}
}

func newDuplicateCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "duplicate ID [NAME]",
		Aliases: []string{"copy"},
		Short:   "Copy a profile with all its squads",
		Args:    cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			name := ""
			if len(args) == 2 {
				name = args[1]
			}
			id, ok, err := sel.Profiles().Duplicate(cmd.Context(), args[0], name)
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewNotFoundError("profile", args[0])
			}
			return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(fmt.Sprintf("Profile %s copied to %s", args[0], id)))
		},
	}
}

func newUseCommand(app application.Application) *cobra.Command {
	return &cobra.Command{
		Use:     "use ID",
		Aliases: []string{"switch"},
		Short:   "Make a profile current",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := cmdutil.Selector(cmd, app)
			if err != nil {
				return err
			}
			ok, err := sel.Profiles().SetCurrent(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if !ok {
				return errors.NewNotFoundError("profile", args[0])
			}
			return cmdutil.Alerts(cmd, app).Write(alerts.NewSuccess(fmt.Sprintf("Now using profile %s", args[0])))
		},
	}
}
