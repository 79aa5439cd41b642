package workbook

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/xuri/excelize/v2"
	"homework-groups-go/models"
)

const (
	// FrontSheet lists every TA group
	FrontSheet = "Groups"

	groupsPerBand = 6 // groups per row band on the front sheet
	bandHeight    = 6 // rows per band
)

// Options controls workbook layout
type Options struct {
	HeaderFontSize   float64 `yaml:"header_font_size"`
	TextFontSize     float64 `yaml:"text_font_size"`
	ColumnWidth      float64 `yaml:"column_width"`
	FrontColumnWidth float64 `yaml:"front_column_width"`
	RosterWidth      float64 `yaml:"roster_column_width"`
}

// DefaultOptions matches the layout the course staff are used to
func DefaultOptions() Options {
	return Options{
		HeaderFontSize:   14,
		TextFontSize:     11,
		ColumnWidth:      36,
		FrontColumnWidth: 26,
		RosterWidth:      40,
	}
}

// GroupSheetName returns the sheet name for a numbered group
func GroupSheetName(number int) string {
	return fmt.Sprintf("Group%d", number)
}

type styles struct {
	frontHeader int // bold header, front sheet
	frontText   int
	header      int // bold header, group sheets
	text        int
}

// Build lays out the result as an excel workbook. The caller owns the
// returned file and must Close it.
func Build(result models.Result, opts Options) (*excelize.File, error) {
	f := excelize.NewFile()

	st, err := newStyles(f, opts)
	if err != nil {
		f.Close()
		return nil, err
	}

	if err := f.SetSheetName(f.GetSheetName(0), FrontSheet); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to name front sheet: %w", err)
	}
	if err := writeFrontSheet(f, result, opts, st); err != nil {
		f.Close()
		return nil, err
	}

	for _, section := range result.Sections() {
		for _, group := range section.Groups {
			if err := writeGroupSheet(f, section, group, opts, st); err != nil {
				f.Close()
				return nil, err
			}
		}
		log.Printf("%s group sheets created (%d groups)", section.Section.Label(), len(section.Groups))
	}

	f.SetActiveSheet(0)
	return f, nil
}

// Write builds the workbook and writes it as xlsx to w
func Write(w io.Writer, result models.Result, opts Options) error {
	f, err := Build(result, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

// Save builds the workbook and saves it to path
func Save(path string, result models.Result, opts Options) error {
	f, err := Build(result, opts)
	if err != nil {
		return err
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing workbook: %v", err)
		}
	}()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook %s: %w", path, err)
	}
	log.Printf("Workbook saved to %s", path)
	return nil
}

func newStyles(f *excelize.File, opts Options) (styles, error) {
	center := &excelize.Alignment{Horizontal: "center"}
	var st styles
	var err error

	defs := []struct {
		dst  *int
		bold bool
		size float64
	}{
		{&st.frontHeader, true, opts.HeaderFontSize},
		{&st.frontText, false, opts.HeaderFontSize},
		{&st.header, true, opts.HeaderFontSize},
		{&st.text, false, opts.TextFontSize},
	}
	for _, d := range defs {
		*d.dst, err = f.NewStyle(&excelize.Style{
			Font:      &excelize.Font{Bold: d.bold, Size: d.size},
			Alignment: center,
		})
		if err != nil {
			return styles{}, fmt.Errorf("failed to create style: %w", err)
		}
	}
	return st, nil
}

// setCell writes value at the 1-based column and row with the given style
func setCell(f *excelize.File, sheet string, col, row int, value any, style int) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, cell, value); err != nil {
		return fmt.Errorf("failed to write %s!%s: %w", sheet, cell, err)
	}
	return f.SetCellStyle(sheet, cell, cell, style)
}

func writeFrontSheet(f *excelize.File, result models.Result, opts Options, st styles) error {
	if err := f.SetColWidth(FrontSheet, "B", "Z", opts.FrontColumnWidth); err != nil {
		return fmt.Errorf("failed to size front sheet: %w", err)
	}
	if err := setCell(f, FrontSheet, 1, 2, "Groups:", st.frontHeader); err != nil {
		return err
	}

	i := 0
	for _, section := range result.Sections() {
		for _, group := range section.Groups {
			band := i / groupsPerBand
			col := 2 + i%groupsPerBand
			row := 2 + band*bandHeight

			if err := setCell(f, FrontSheet, col, row, group.Number, st.frontHeader); err != nil {
				return err
			}
			for j, ta := range group.TAs {
				if err := setCell(f, FrontSheet, col, row+1+j, ta.TA.Name, st.frontText); err != nil {
					return err
				}
			}
			i++
		}
	}
	return nil
}

func writeGroupSheet(f *excelize.File, section models.SectionAssignment, group models.GroupAssignment, opts Options, st styles) error {
	sheet := GroupSheetName(group.Number)
	if _, err := f.NewSheet(sheet); err != nil {
		return fmt.Errorf("failed to create sheet %s: %w", sheet, err)
	}

	lastTACol, err := excelize.ColumnNumberToName(len(group.TAs))
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, "A", lastTACol, opts.ColumnWidth); err != nil {
		return fmt.Errorf("failed to size sheet %s: %w", sheet, err)
	}

	for i, ta := range group.TAs {
		col := i + 1
		if err := setCell(f, sheet, col, 1, ta.TA.Name, st.header); err != nil {
			return err
		}
		for j, student := range ta.Students {
			if err := setCell(f, sheet, col, j+2, student, st.text); err != nil {
				return err
			}
		}
	}

	// Full section roster one column past the TAs
	rosterCol := len(group.TAs) + 2
	rosterName, err := excelize.ColumnNumberToName(rosterCol)
	if err != nil {
		return err
	}
	if err := f.SetColWidth(sheet, rosterName, rosterName, opts.RosterWidth); err != nil {
		return fmt.Errorf("failed to size sheet %s: %w", sheet, err)
	}
	header := fmt.Sprintf("ALL %s STUDENTS", strings.ToUpper(section.Section.Label()))
	if err := setCell(f, sheet, rosterCol, 2, header, st.header); err != nil {
		return err
	}
	for j, student := range section.Roster {
		if err := setCell(f, sheet, rosterCol, j+3, student, st.text); err != nil {
			return err
		}
	}
	return nil
}
