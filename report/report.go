package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"homework-groups-go/models"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true).MarginTop(1)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	headerStyle  = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
)

// Render formats a result as a terminal summary: section sizes and TA
// targets, then one table row per group with its TAs and allotments.
// Returning TAs are marked with an asterisk.
func Render(result models.Result) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Homework groups"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "campus size: %d, online size: %d\n", len(result.Campus.Roster), len(result.Online.Roster))
	fmt.Fprintf(&b, "campus tas: %d, online tas: %d\n", result.CampusTAs, result.OnlineTAs)

	for _, section := range result.Sections() {
		b.WriteString(sectionStyle.Render(strings.ToUpper(section.Section.Label())))
		b.WriteString("\n")
		if len(section.Groups) == 0 {
			b.WriteString(mutedStyle.Render("no groups"))
			b.WriteString("\n")
			continue
		}
		b.WriteString(sectionTable(section))
		b.WriteString("\n")

		lo, hi := section.AllotmentRange()
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%d students, %d-%d per TA", section.StudentCount(), lo, hi)))
		b.WriteString("\n")
	}
	return b.String()
}

func sectionTable(section models.SectionAssignment) string {
	rows := make([][]string, 0, len(section.Groups))
	for _, g := range section.Groups {
		tas := make([]string, len(g.TAs))
		counts := make([]string, len(g.TAs))
		for i, ta := range g.TAs {
			tas[i] = ta.TA.Name
			if ta.TA.Returning {
				tas[i] += "*"
			}
			counts[i] = fmt.Sprint(len(ta.Students))
		}
		rows = append(rows, []string{
			fmt.Sprint(g.Number),
			strings.Join(tas, ", "),
			strings.Join(counts, "/"),
			fmt.Sprint(len(g.Students())),
		})
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Group", "TAs", "Per TA", "Students").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
