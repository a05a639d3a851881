package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *App) profileCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Manage profiles",
		Long: `A profile is an independent pair of plans, for example one per
semester. Exactly one profile is active.`,
	}
	cmd.AddCommand(a.profileListCmd())
	cmd.AddCommand(a.profileNewCmd())
	cmd.AddCommand(a.profileRenameCmd())
	cmd.AddCommand(a.profileDeleteCmd())
	cmd.AddCommand(a.profileUseCmd())
	return cmd
}

func (a *App) profileListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List profiles",
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, p := range a.ctrl.Snapshot().Profiles {
				mark := " "
				name := p.Name
				if p.Active {
					mark = "*"
					name = formatHeader(name)
				}
				fmt.Fprintf(out, "%s %s  %s  %s\n", mark, name,
					formatMuted(fmt.Sprintf("%d cell(s)", p.Cells)),
					formatMuted(p.UpdatedAt.Local().Format("2006-01-02 15:04")))
			}
			return nil
		}),
	}
}

func (a *App) profileNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "new [name]",
		Short: "Create a profile and make it active",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.CreateProfile(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created profile %s\n", a.ctrl.Snapshot().Profile.Name)
			return nil
		}),
	}
}

func (a *App) profileRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [name]",
		Short: "Rename the active profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.RenameProfile(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Renamed profile to %s\n", a.ctrl.Snapshot().Profile.Name)
			return nil
		}),
	}
}

func (a *App) profileDeleteCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete the active profile",
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			name := a.ctrl.Snapshot().Profile.Name
			if !yes && !promptYesNo(fmt.Sprintf("Delete profile %q and all its cells?", name)) {
				fmt.Fprintln(cmd.OutOrStdout(), "Cancelled.")
				return nil
			}
			res, err := a.ctrl.DeleteProfile(cmd.Context())
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s; active profile is now %s\n", name, a.ctrl.Snapshot().Profile.Name)
			return nil
		}),
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")
	return cmd
}

func (a *App) profileUseCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "use [name or id]",
		Short: "Switch the active profile",
		Args:  cobra.MinimumNArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.SwitchProfile(cmd.Context(), strings.Join(args, " "))
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active profile: %s\n", a.ctrl.Snapshot().Profile.Name)
			return nil
		}),
	}
}
