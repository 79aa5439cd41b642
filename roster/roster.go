package roster

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/xuri/excelize/v2"
	"homework-groups-go/grouping"
)

const (
	nameHeader  = "Name"
	roleHeader  = "Role"
	studentRole = "Student"
)

var (
	// ErrNoSheets is returned for a workbook without worksheets.
	ErrNoSheets = errors.New("excel file does not contain any sheets")
	// ErrMissingColumn is returned when the Name or Role header is absent.
	ErrMissingColumn = errors.New("roster is missing a required column")
)

// TARoster is the TA list split into new and returning TAs
type TARoster struct {
	New       []string `json:"new"`
	Returning []string `json:"returning"`
}

// Total returns the number of TAs on the roster
func (r TARoster) Total() int {
	return len(r.New) + len(r.Returning)
}

// ReadStudentRoster reads a course roster export and returns the students,
// sorted by given name. Only rows whose Role column is "Student" are kept.
func ReadStudentRoster(file io.Reader) ([]string, error) {
	f, err := excelize.OpenReader(file)
	if err != nil {
		log.Printf("Error opening Excel reader: %v", err)
		return nil, fmt.Errorf("failed to open excel file: %w", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("Error closing excel file: %v", err)
		}
	}()

	// Roster exports carry a single sheet
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, ErrNoSheets
	}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to get rows from sheet %s: %w", sheetName, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: sheet %s is empty", ErrMissingColumn, sheetName)
	}

	nameCol, roleCol := -1, -1
	for i, header := range rows[0] {
		switch strings.TrimSpace(header) {
		case nameHeader:
			nameCol = i
		case roleHeader:
			roleCol = i
		}
	}
	if nameCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, nameHeader)
	}
	if roleCol < 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingColumn, roleHeader)
	}

	var students []string
	for i, row := range rows[1:] {
		if roleCol >= len(row) || strings.TrimSpace(row[roleCol]) != studentRole {
			continue
		}
		name := ""
		if nameCol < len(row) {
			name = strings.TrimSpace(row[nameCol])
		}
		if name == "" {
			log.Printf("Skipping row %d: student without a name", i+2)
			continue
		}
		students = append(students, name)
	}

	sorted, err := grouping.Normalize(students)
	if err != nil {
		return nil, fmt.Errorf("sheet %s: %w", sheetName, err)
	}
	return sorted, nil
}

// ReadStudentRosterFile opens path and reads it with ReadStudentRoster
func ReadStudentRosterFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open roster %s: %w", path, err)
	}
	defer file.Close()

	students, err := ReadStudentRoster(file)
	if err != nil {
		return nil, fmt.Errorf("roster %s: %w", path, err)
	}
	return students, nil
}

// ReadTARoster parses a plain-text TA list: one name per line, new TAs
// first, then a blank line, then returning TAs. Blank lines after the first
// are ignored.
func ReadTARoster(r io.Reader) (TARoster, error) {
	var roster TARoster
	isNew := true

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		name := strings.TrimSpace(scanner.Text())
		if name == "" {
			isNew = false
			continue
		}
		if isNew {
			roster.New = append(roster.New, name)
		} else {
			roster.Returning = append(roster.Returning, name)
		}
	}
	if err := scanner.Err(); err != nil {
		return TARoster{}, fmt.Errorf("failed to read TA roster: %w", err)
	}
	return roster, nil
}

// ReadTARosterFile opens path and reads it with ReadTARoster
func ReadTARosterFile(path string) (TARoster, error) {
	file, err := os.Open(path)
	if err != nil {
		return TARoster{}, fmt.Errorf("failed to open TA roster %s: %w", path, err)
	}
	defer file.Close()

	return ReadTARoster(file)
}
