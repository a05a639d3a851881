package ui

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/export"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func (a *App) entriesCmd() *cobra.Command {
	var (
		plan        string
		toClipboard bool
	)

	cmd := &cobra.Command{
		Use:   "entries",
		Short: "List compressed entries",
		Long: `List each run of consecutive slots with the same subject and colour
as one entry. Without --plan both plans are listed.`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			out := cmd.OutOrStdout()

			if toClipboard {
				if err := clipboard.WriteAll(export.Text(snap.Timetable())); err != nil {
					return fmt.Errorf("copying to clipboard: %w", err)
				}
				fmt.Fprintln(out, "Copied entries to clipboard.")
				return nil
			}

			plans := []schedule.Plan{schedule.PlanRegular, schedule.PlanNaesin}
			if plan != "" {
				p, err := schedule.ParsePlan(plan)
				if err != nil {
					return err
				}
				plans = []schedule.Plan{p}
			}
			for i, p := range plans {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "=== %s ===\n", formatPlan(p))
				PrintEntries(out, snap.Entries(p), snap.Settings.SlotMinutes)
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan: regular or naesin (default: both)")
	cmd.Flags().BoolVar(&toClipboard, "copy", false, "Copy entries and conflicts to the clipboard as text")
	return cmd
}

func (a *App) conflictsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "conflicts",
		Short: "List slots used by both plans",
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			PrintConflicts(cmd.OutOrStdout(), snap.Conflicts(), snap.Settings.SlotMinutes)
			return nil
		}),
	}
}
