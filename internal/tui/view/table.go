package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// GridContent contains the visible grid rows and a style per cell.
type GridContent struct {
	Rows       [][]string
	CellStyles [][]lipgloss.Style
}

// GridViewState holds what is needed to render the week grid.
type GridViewState struct {
	InnerW       int
	GridH        int
	Headers      []string
	HeaderStyles []lipgloss.Style
	Content      GridContent
	BorderStyle  lipgloss.Style
	Bg           lipgloss.Color
	Render       bool
}

// RenderGrid renders the week grid as a bordered lipgloss table. Only the
// rows in Content are drawn; scrolling is the caller's job.
func RenderGrid(state GridViewState) string {
	if !state.Render || state.GridH <= 0 {
		return ""
	}

	t := table.New().
		Headers(state.Headers...).
		Border(lipgloss.RoundedBorder()).
		BorderHeader(true).
		BorderColumn(true).
		BorderRow(false).
		BorderStyle(state.BorderStyle).
		Rows(state.Content.Rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				if col >= 0 && col < len(state.HeaderStyles) {
					return state.HeaderStyles[col]
				}
				return lipgloss.NewStyle()
			}
			if row < 0 || row >= len(state.Content.CellStyles) || col < 0 || col >= len(state.Content.CellStyles[row]) {
				return lipgloss.NewStyle()
			}
			return state.Content.CellStyles[row][col]
		})

	return PlaceBox(state.InnerW, state.GridH, lipgloss.Top, t.Render(), state.Bg)
}

// GridChromeLines is the number of lines the table adds around its rows:
// top border, header, header separator and bottom border.
const GridChromeLines = 4
