// Package export renders a profile's timetable as a printable .xlsx
// workbook.
package export

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/javiermolinar/timegrid/internal/schedule"
)

// Sheet names.
const (
	SheetTimetable = "Timetable"
	SheetRegular   = "Regular"
	SheetNaesin    = "Naesin"
	SheetConflicts = "Conflicts"
)

// maxSheetName is the Excel sheet name limit.
const maxSheetName = 31

// ErrNoSlots is returned when the timetable has an invalid slot duration.
var ErrNoSlots = errors.New("timetable has no slots")

// Timetable is the data rendered into a workbook.
type Timetable struct {
	Title       string
	SlotMinutes int
	Regular     schedule.SlotMap
	Naesin      schedule.SlotMap
}

// WriteTimetable renders t as an .xlsx workbook to w.
func WriteTimetable(w io.Writer, t Timetable) error {
	wb, err := build(t)
	if err != nil {
		return err
	}
	defer wb.close()
	if err := wb.file.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

// SaveTimetable renders t to the file at path.
func SaveTimetable(path string, t Timetable) error {
	wb, err := build(t)
	if err != nil {
		return err
	}
	defer wb.close()
	if err := wb.file.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func build(t Timetable) (*workbook, error) {
	if schedule.SlotCount(t.SlotMinutes) == 0 {
		return nil, ErrNoSlots
	}
	wb := newWorkbook()
	steps := []func(Timetable) error{
		wb.writeGrid,
		func(t Timetable) error { return wb.writeEntries(SheetRegular, t.Regular, t.SlotMinutes) },
		func(t Timetable) error { return wb.writeEntries(SheetNaesin, t.Naesin, t.SlotMinutes) },
		wb.writeConflicts,
	}
	for _, step := range steps {
		if err := step(t); err != nil {
			wb.close()
			return nil, err
		}
	}
	return wb, nil
}

// styleKey identifies a grid cell style; styles are shared between cells.
type styleKey struct {
	fill     string
	conflict bool
}

type workbook struct {
	file   *excelize.File
	sheet  string
	row    int
	styles map[styleKey]int
	bold   int
}

func newWorkbook() *workbook {
	return &workbook{
		file:   excelize.NewFile(),
		styles: make(map[styleKey]int),
		bold:   -1,
	}
}

func (w *workbook) close() {
	_ = w.file.Close()
}

func (w *workbook) addSheet(name string) error {
	if len(name) > maxSheetName {
		name = name[:maxSheetName]
	}
	if w.sheet == "" {
		if err := w.file.SetSheetName("Sheet1", name); err != nil {
			return fmt.Errorf("rename sheet %s: %w", name, err)
		}
	} else if _, err := w.file.NewSheet(name); err != nil {
		return fmt.Errorf("create sheet %s: %w", name, err)
	}
	w.sheet = name
	w.row = 1
	return nil
}

func (w *workbook) writeRow(values ...any) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, w.row)
		if err != nil {
			return err
		}
		if err := w.file.SetCellValue(w.sheet, cell, v); err != nil {
			return err
		}
	}
	w.row++
	return nil
}

func (w *workbook) writeHeader(columns ...string) error {
	values := make([]any, len(columns))
	for i, c := range columns {
		values[i] = c
	}
	row := w.row
	if err := w.writeRow(values...); err != nil {
		return err
	}
	style, err := w.boldStyle()
	if err != nil {
		return err
	}
	start, _ := excelize.CoordinatesToCellName(1, row)
	end, _ := excelize.CoordinatesToCellName(len(columns), row)
	return w.file.SetCellStyle(w.sheet, start, end, style)
}

func (w *workbook) boldStyle() (int, error) {
	if w.bold >= 0 {
		return w.bold, nil
	}
	style, err := w.file.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})
	if err != nil {
		return 0, fmt.Errorf("header style: %w", err)
	}
	w.bold = style
	return style, nil
}

// gridStyle returns a filled cell style. Conflicting cells get a thick red
// border so they stand out on paper.
func (w *workbook) gridStyle(key styleKey) (int, error) {
	if id, ok := w.styles[key]; ok {
		return id, nil
	}
	hex := strings.TrimPrefix(key.fill, "#")
	s := &excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{hex}},
		Font:      &excelize.Font{Color: textColor(hex), Size: 9},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center", WrapText: true},
	}
	if key.conflict {
		s.Font.Bold = true
		for _, side := range []string{"left", "top", "right", "bottom"} {
			s.Border = append(s.Border, excelize.Border{Type: side, Color: "D32F2F", Style: 5})
		}
	}
	id, err := w.file.NewStyle(s)
	if err != nil {
		return 0, fmt.Errorf("cell style %s: %w", key.fill, err)
	}
	w.styles[key] = id
	return id, nil
}

// writeGrid renders the compare view: one row per slot, one column per
// day, both plans in each cell.
func (w *workbook) writeGrid(t Timetable) error {
	if err := w.addSheet(SheetTimetable); err != nil {
		return err
	}
	if t.Title != "" {
		if err := w.writeRow(t.Title); err != nil {
			return err
		}
		end, _ := excelize.CoordinatesToCellName(schedule.DaysPerWeek+1, 1)
		if err := w.file.MergeCell(w.sheet, "A1", end); err != nil {
			return err
		}
	}

	header := []string{"Time"}
	for d := 0; d < schedule.DaysPerWeek; d++ {
		header = append(header, schedule.DayName(d))
	}
	if err := w.writeHeader(header...); err != nil {
		return err
	}

	for slot := 0; slot < schedule.SlotCount(t.SlotMinutes); slot++ {
		row := w.row
		label := schedule.SlotTime(slot, t.SlotMinutes)
		if err := w.writeRow(label); err != nil {
			return err
		}
		for day := 0; day < schedule.DaysPerWeek; day++ {
			if err := w.writeGridCell(t, day, slot, row); err != nil {
				return err
			}
		}
	}

	if err := w.file.SetColWidth(w.sheet, "A", "A", 8); err != nil {
		return err
	}
	last, _ := excelize.ColumnNumberToName(schedule.DaysPerWeek + 1)
	return w.file.SetColWidth(w.sheet, "B", last, 14)
}

func (w *workbook) writeGridCell(t Timetable, day, slot, row int) error {
	reg, hasReg := t.Regular.Get(day, slot)
	nae, hasNae := t.Naesin.Get(day, slot)
	if !hasReg && !hasNae {
		return nil
	}

	key := styleKey{conflict: hasReg && hasNae}
	var text string
	switch {
	case key.conflict:
		text = reg.Subject + "\n" + nae.Subject + " (naesin)"
		key.fill = reg.Color
	case hasReg:
		text = reg.Subject
		key.fill = reg.Color
	default:
		text = nae.Subject + " (naesin)"
		key.fill = nae.Color
	}

	cell, err := excelize.CoordinatesToCellName(day+2, row)
	if err != nil {
		return err
	}
	if err := w.file.SetCellStr(w.sheet, cell, text); err != nil {
		return err
	}
	style, err := w.gridStyle(key)
	if err != nil {
		return err
	}
	return w.file.SetCellStyle(w.sheet, cell, cell, style)
}

func (w *workbook) writeEntries(sheet string, m schedule.SlotMap, slotMinutes int) error {
	if err := w.addSheet(sheet); err != nil {
		return err
	}
	if err := w.writeHeader("Day", "Start", "End", "Subject", "Color"); err != nil {
		return err
	}
	for _, e := range schedule.BuildEntries(m, slotMinutes) {
		start, end := e.TimeRange(slotMinutes)
		if err := w.writeRow(schedule.DayName(e.Day), start, end, e.Subject, e.Color); err != nil {
			return err
		}
	}
	return w.file.SetColWidth(w.sheet, "A", "E", 12)
}

func (w *workbook) writeConflicts(t Timetable) error {
	if err := w.addSheet(SheetConflicts); err != nil {
		return err
	}
	if err := w.writeHeader("Day", "Start", "End", "Regular", "Naesin"); err != nil {
		return err
	}
	for _, c := range schedule.BuildConflicts(t.Regular, t.Naesin, t.SlotMinutes) {
		start, end := c.TimeRange(t.SlotMinutes)
		if err := w.writeRow(schedule.DayName(c.Day), start, end, c.Regular.Subject, c.Naesin.Subject); err != nil {
			return err
		}
	}
	return w.file.SetColWidth(w.sheet, "A", "E", 12)
}

// textColor picks black or white text for a fill colour.
func textColor(hex string) string {
	if len(hex) != 6 {
		return "000000"
	}
	var rgb [3]float64
	for i := range rgb {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return "000000"
		}
		rgb[i] = float64(v)
	}
	if 0.299*rgb[0]+0.587*rgb[1]+0.114*rgb[2] > 150 {
		return "000000"
	}
	return "FFFFFF"
}
