package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/app"
	"github.com/javiermolinar/timegrid/internal/schedule"
)

func (a *App) paintCmd() *cobra.Command {
	var (
		plan    string
		day     string
		start   string
		end     string
		subject string
		color   string
	)

	cmd := &cobra.Command{
		Use:   "paint",
		Short: "Paint a subject over a time range",
		Long: `Paint a subject into one plan for a range of slots on one day.

The range is half-open: --end is the time the last slot finishes.
With overlap prevention on, slots already used by the other plan are
skipped and reported as blocked.`,
		Example: `  timegrid paint --day mon --start 09:00 --end 11:00 --subject 수학
  timegrid paint --plan naesin --day 2 --start 13:00 --end 14:00 --subject 국어 --color blue`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			p, err := planOrActive(plan, snap)
			if err != nil {
				return err
			}
			d, first, last, err := slotRange(day, start, end, snap.Settings.SlotMinutes)
			if err != nil {
				return err
			}

			res, err := a.ctrl.Paint(cmd.Context(), app.PaintRequest{
				Plan:    p,
				Day:     d,
				From:    first,
				To:      last,
				Subject: subject,
				Color:   color,
			})
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Painted %d slot(s) of %s on %s %s-%s\n",
				res.Painted, formatPlan(p), schedule.DayName(d), start, end)
			if res.Blocked > 0 {
				fmt.Fprintf(out, "%s %d slot(s) blocked by the %s plan\n",
					formatWarning("!"), res.Blocked, formatPlan(p.Other()))
			}
			return nil
		}),
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan: regular or naesin (default: active plan)")
	cmd.Flags().StringVar(&day, "day", "", "Day: mon..sun or 0..6 (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")
	cmd.Flags().StringVar(&subject, "subject", "", "Subject (default: selected subject)")
	cmd.Flags().StringVar(&color, "color", "", "Colour: palette name or #rrggbb")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) eraseCmd() *cobra.Command {
	var (
		plan  string
		day   string
		start string
		end   string
	)

	cmd := &cobra.Command{
		Use:     "erase",
		Short:   "Erase a time range from one plan",
		Example: `  timegrid erase --plan naesin --day wed --start 13:00 --end 15:00`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			p, err := planOrActive(plan, snap)
			if err != nil {
				return err
			}
			d, first, last, err := slotRange(day, start, end, snap.Settings.SlotMinutes)
			if err != nil {
				return err
			}

			res, err := a.ctrl.Erase(cmd.Context(), p, d, first, last)
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Erased %d slot(s) of %s on %s %s-%s\n",
				res.Erased, formatPlan(p), schedule.DayName(d), start, end)
			return nil
		}),
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Plan: regular or naesin (default: active plan)")
	cmd.Flags().StringVar(&day, "day", "", "Day: mon..sun or 0..6 (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time (HH:MM, required)")
	cmd.Flags().StringVar(&end, "end", "", "End time (HH:MM, required)")

	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func (a *App) resolveCmd() *cobra.Command {
	var (
		plan  string
		day   string
		start string
	)

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a conflict by clearing one plan's side",
		Long: `Clear the given plan's cells for the conflict run starting at --start.
Use 'timegrid conflicts' to list the runs.`,
		Example: `  timegrid resolve --plan naesin --day wed --start 13:00`,
		RunE: a.controllerRunE(func(cmd *cobra.Command, _ []string) error {
			snap := a.ctrl.Snapshot()
			p, err := schedule.ParsePlan(plan)
			if err != nil {
				return err
			}
			d, err := schedule.ParseDay(day)
			if err != nil {
				return err
			}
			slot, err := schedule.SlotForTime(start, snap.Settings.SlotMinutes)
			if err != nil {
				return err
			}

			res, err := a.ctrl.ResolveConflict(cmd.Context(), p, d, slot)
			if err != nil {
				return err
			}
			if err := checkResult(cmd, res); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cleared %d slot(s) of %s on %s\n",
				res.Erased, formatPlan(p), schedule.DayName(d))
			return nil
		}),
	}

	cmd.Flags().StringVar(&plan, "plan", "", "Side to clear: regular or naesin (required)")
	cmd.Flags().StringVar(&day, "day", "", "Day: mon..sun or 0..6 (required)")
	cmd.Flags().StringVar(&start, "start", "", "Start time of the conflict (HH:MM, required)")

	_ = cmd.MarkFlagRequired("plan")
	_ = cmd.MarkFlagRequired("day")
	_ = cmd.MarkFlagRequired("start")

	return cmd
}
