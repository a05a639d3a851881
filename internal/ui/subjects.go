package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) subjectsCmd() *cobra.Command {
	var hidden bool

	cmd := &cobra.Command{
		Use:   "subjects",
		Short: "List subjects",
		Long: `List the subjects of the active profile with their colours.

Subjects left behind by interrupted Hangul typing (for example "수하"
next to "수학") are hidden; list them with --hidden and remove them with
'timegrid subjects cleanup'.`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			out := cmd.OutOrStdout()

			names := snap.KnownSubjects()
			if hidden {
				names = snap.HiddenSubjects()
			}
			if len(names) == 0 {
				fmt.Fprintln(out, "No subjects.")
				return nil
			}
			for _, name := range names {
				c := snap.ColorFor(name)
				mark := " "
				if name == snap.UI.Subject {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %s %s  %s\n", mark, formatSwatch(c, "  "), formatMuted(c), name)
			}
			return nil
		}),
	}

	cmd.Flags().BoolVar(&hidden, "hidden", false, "List hidden subjects instead")

	cmd.AddCommand(a.subjectsCleanupCmd())
	cmd.AddCommand(a.subjectsDeleteCmd())
	cmd.AddCommand(a.subjectsSelectCmd())
	return cmd
}

func (a *App) subjectsCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Delete every hidden subject and its cells",
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			res, removed := a.ctrl.CleanupHidden(cmd.Context())
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(removed) == 0 {
				fmt.Fprintln(out, "Nothing to clean up.")
				return nil
			}
			fmt.Fprintf(out, "Removed %d subject(s) and %d cell(s): %v\n", len(removed), res.Erased, removed)
			return nil
		}),
	}
}

func (a *App) subjectsDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [subject]",
		Short: "Delete a subject from both plans",
		Args:  cobra.ExactArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.DeleteSubject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %q (%d cell(s))\n", args[0], res.Erased)
			return nil
		}),
	}
}

func (a *App) subjectsSelectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "select [subject]",
		Short: "Select the subject used by paint when --subject is omitted",
		Args:  cobra.ExactArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.SelectSubject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			snap := a.ctrl.Snapshot()
			fmt.Fprintf(cmd.OutOrStdout(), "Selected %s %s\n", snap.UI.Subject, formatSwatch(snap.UI.Color, "  "))
			return nil
		}),
	}
}

func (a *App) colorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "color [subject] [color]",
		Short: "Set a subject's colour",
		Long: `Store a colour for a subject. The colour is a palette name
(red, orange, yellow, green, blue, indigo, violet), its 1-based index,
or a #rrggbb value. Cells already painted keep their colour.`,
		Example: `  timegrid color 수학 blue
  timegrid color 영어 "#ff8800"`,
		Args: cobra.ExactArgs(2),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			res, err := a.ctrl.SetSubjectColor(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			c := a.ctrl.Snapshot().ColorFor(args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n", args[0], formatSwatch(c, "  "), c)
			return nil
		}),
	}
}
