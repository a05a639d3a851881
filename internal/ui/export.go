package ui

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/timegrid/internal/export"
)

func (a *App) exportCmd() *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "export [file.xlsx]",
		Short: "Export the timetable as a printable spreadsheet",
		Long: `Write the active profile to an .xlsx workbook: the compare grid with
subject colours and conflicts outlined, one entry sheet per plan, and a
conflict sheet.`,
		Args: cobra.ExactArgs(1),
		RunE: a.controllerRunE(func(cmd *cobra.Command, args []string) error {
			t := a.ctrl.Snapshot().Timetable()
			if cmd.Flags().Changed("title") {
				t.Title = title
			}
			if err := export.SaveTimetable(args[0], t); err != nil {
				return err
			}
			a.log.Debug("exported timetable", "path", args[0])
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %s\n", args[0])
			return nil
		}),
	}

	cmd.Flags().StringVar(&title, "title", "", "Sheet title (default: profile name)")
	return cmd
}
