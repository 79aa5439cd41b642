package workbook

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"homework-groups-go/grouping"
	"homework-groups-go/models"
)

func sampleResult(t *testing.T) models.Result {
	t.Helper()

	in := grouping.Input{}
	for i := 0; i < 90; i++ {
		in.Campus = append(in.Campus, fmt.Sprintf("Campus%02d, Given%02d", i, i))
	}
	for i := 0; i < 40; i++ {
		in.Online = append(in.Online, fmt.Sprintf("Online%02d, Given%02d", i, i))
	}
	for i := 0; i < 10; i++ {
		in.NewTAs = append(in.NewTAs, fmt.Sprintf("New %d", i+1))
	}
	for i := 0; i < 16; i++ {
		in.ReturningTAs = append(in.ReturningTAs, fmt.Sprintf("Returning %d", i+1))
	}

	result, err := grouping.Run(in, grouping.DefaultOptions())
	require.NoError(t, err)
	return result
}

func cellValue(t *testing.T, f *excelize.File, sheet string, col, row int) string {
	t.Helper()

	cell, err := excelize.CoordinatesToCellName(col, row)
	require.NoError(t, err)
	v, err := f.GetCellValue(sheet, cell)
	require.NoError(t, err)
	return v
}

func TestWrite(t *testing.T) {
	result := sampleResult(t)

	buf := &bytes.Buffer{}
	require.NoError(t, Write(buf, result, DefaultOptions()))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	t.Run("one front sheet and one sheet per group", func(t *testing.T) {
		sheets := f.GetSheetList()
		require.Len(t, sheets, 9)
		require.Equal(t, FrontSheet, sheets[0])
		for i := 1; i <= 8; i++ {
			require.Contains(t, sheets, GroupSheetName(i))
		}
	})

	t.Run("front sheet lists groups six per band", func(t *testing.T) {
		require.Equal(t, "Groups:", cellValue(t, f, FrontSheet, 1, 2))
		require.Equal(t, "1", cellValue(t, f, FrontSheet, 2, 2))
		require.Equal(t, "6", cellValue(t, f, FrontSheet, 7, 2))
		require.Equal(t, "7", cellValue(t, f, FrontSheet, 2, 8))
		require.Equal(t, "8", cellValue(t, f, FrontSheet, 3, 8))

		first := result.Campus.Groups[0]
		for j, ta := range first.TAs {
			require.Equal(t, ta.TA.Name, cellValue(t, f, FrontSheet, 2, 3+j))
		}
	})

	t.Run("group sheet has TA headers and their students", func(t *testing.T) {
		group := result.Online.Groups[0]
		sheet := GroupSheetName(group.Number)

		for i, ta := range group.TAs {
			require.Equal(t, ta.TA.Name, cellValue(t, f, sheet, i+1, 1))
			for j, student := range ta.Students {
				require.Equal(t, student, cellValue(t, f, sheet, i+1, j+2))
			}
		}

		rosterCol := len(group.TAs) + 2
		require.Equal(t, "ALL ONLINE STUDENTS", cellValue(t, f, sheet, rosterCol, 2))
		require.Equal(t, result.Online.Roster[0], cellValue(t, f, sheet, rosterCol, 3))
	})

	t.Run("campus sheets use the campus label", func(t *testing.T) {
		group := result.Campus.Groups[0]

		require.Equal(t, "ALL CAMPUS/HYBRID STUDENTS", cellValue(t, f, GroupSheetName(group.Number), len(group.TAs)+2, 2))
	})
}

func TestSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "HomeworkGroups.xlsx")

	require.NoError(t, Save(path, sampleResult(t), DefaultOptions()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	require.Equal(t, FrontSheet, f.GetSheetName(0))
}

func TestGroupSheetName(t *testing.T) {
	require.Equal(t, "Group12", GroupSheetName(12))
}
