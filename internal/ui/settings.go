package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/profile"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func (a *App) settingsCmd() *cobra.Command {
	var (
		slotMinutes    int
		preventOverlap bool
		autoColor      bool
		plan           string
		tool           string
		view           string
	)

	cmd := &cobra.Command{
		Use:   "settings",
		Short: "View or change editor settings",
		Long: `Without flags, print the current settings. Each flag changes one
setting. The slot duration can only change while every profile is empty.`,
		Example: `  timegrid settings
  timegrid settings --slot-minutes 30
  timegrid settings --plan naesin --prevent-overlap=false`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			flags := cmd.Flags()

			var steps []func() (app.Result, error)
			if flags.Changed("slot-minutes") {
				steps = append(steps, func() (app.Result, error) { return a.ctrl.SetSlotMinutes(ctx, slotMinutes) })
			}
			if flags.Changed("prevent-overlap") {
				steps = append(steps, func() (app.Result, error) { return a.ctrl.SetPreventOverlap(ctx, preventOverlap), nil })
			}
			if flags.Changed("auto-color") {
				steps = append(steps, func() (app.Result, error) { return a.ctrl.SetAutoColor(ctx, autoColor), nil })
			}
			if flags.Changed("plan") {
				steps = append(steps, func() (app.Result, error) {
					p, err := schedule.ParsePlan(plan)
					if err != nil {
						return app.Result{}, err
					}
					return a.ctrl.SetActivePlan(ctx, p)
				})
			}
			if flags.Changed("tool") {
				steps = append(steps, func() (app.Result, error) {
					t, err := profile.ParseTool(tool)
					if err != nil {
						return app.Result{}, err
					}
					return a.ctrl.SetTool(ctx, t)
				})
			}
			if flags.Changed("view") {
				steps = append(steps, func() (app.Result, error) {
					v, err := profile.ParseViewMode(view)
					if err != nil {
						return app.Result{}, err
					}
					return a.ctrl.SetViewMode(ctx, v)
				})
			}

			for _, step := range steps {
				res, err := step()
				if err != nil {
					return err
				}
				if err := checkResult(cmd, res); err != nil {
					return err
				}
			}

			PrintSettings(cmd.OutOrStdout(), a.ctrl.Snapshot().Settings)
			return nil
		}),
	}

	cmd.Flags().IntVar(&slotMinutes, "slot-minutes", 0, fmt.Sprintf("Slot duration in minutes %v", schedule.SlotOptions()))
	cmd.Flags().BoolVar(&preventOverlap, "prevent-overlap", true, "Skip slots used by the other plan when painting")
	cmd.Flags().BoolVar(&autoColor, "auto-color", true, "Assign subject colours automatically")
	cmd.Flags().StringVar(&plan, "plan", "", "Active plan: regular or naesin")
	cmd.Flags().StringVar(&tool, "tool", "", "Tool: paint or erase")
	cmd.Flags().StringVar(&view, "view", "", "View: compare, regular or naesin")
	return cmd
}

func (a *App) lockCmd(lock bool) *cobra.Command {
	use, short := "unlock", "Allow editing again"
	if lock {
		use, short = "lock", "Make the timetable read-only"
	}
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			res := a.ctrl.SetLocked(cmd.Context(), lock)
			if res.Warning != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s not saved: %v\n", formatWarning("warning:"), res.Warning)
			}
			state := "unlocked"
			if lock {
				state = "locked"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Editing %s\n", state)
			return nil
		}),
	}
}
