package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/profile"
)

func (a *App) showCmd() *cobra.Command {
	var view string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the week grid",
		Long: `Print the active profile's week grid.

In the compare view, naesin-only cells are prefixed with "n:" and
slots used by both plans are marked with "!".`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			v := snap.Settings.ViewMode
			if view != "" {
				var err error
				if v, err = profile.ParseViewMode(view); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "=== %s (%s) ===\n\n", formatHeader(snap.Profile.Name), v)
			PrintGrid(out, snap, GridOpts{View: v})

			if n := len(snap.Conflicts()); n > 0 && v == profile.ViewCompare {
				fmt.Fprintf(out, "\n%s\n", formatConflict(fmt.Sprintf("%d conflict(s); see 'timegrid conflicts'", n)))
			}
			if snap.Settings.Locked {
				fmt.Fprintf(out, "%s\n", formatWarning("locked"))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&view, "view", "", "View: compare, regular or naesin (default: saved view)")
	return cmd
}
