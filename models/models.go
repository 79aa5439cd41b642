package models

import "time"

// Section identifies a course delivery mode
type Section string

const (
	SectionCampus Section = "campus"
	SectionOnline Section = "online"
)

// Label is the human readable section name used in reports and sheets
func (s Section) Label() string {
	switch s {
	case SectionCampus:
		return "campus/hybrid"
	case SectionOnline:
		return "online"
	default:
		return string(s)
	}
}

// TA represents a teaching assistant
type TA struct {
	Name      string `json:"name"`      // Display name, no required format
	Returning bool   `json:"returning"` // True for TAs with prior experience in the course
}

// TAGroup is an ordered cluster of TAs that shares a block of students
type TAGroup struct {
	Members []TA `json:"members"`
}

// Size returns the number of TAs in the group
func (g TAGroup) Size() int {
	return len(g.Members)
}

// ReturningCount returns how many members are returning TAs
func (g TAGroup) ReturningCount() int {
	n := 0
	for _, ta := range g.Members {
		if ta.Returning {
			n++
		}
	}
	return n
}

// Names returns the member names in group order
func (g TAGroup) Names() []string {
	names := make([]string, len(g.Members))
	for i, ta := range g.Members {
		names[i] = ta.Name
	}
	return names
}

// GroupSet is the full, ordered list of TA groups built for one run
type GroupSet []TAGroup

// TotalTAs sums the sizes of the given groups
func TotalTAs(groups []TAGroup) int {
	total := 0
	for _, g := range groups {
		total += g.Size()
	}
	return total
}

// TAAssignment is one TA and the contiguous slice of the roster they grade
type TAAssignment struct {
	TA       TA       `json:"ta"`
	Students []string `json:"students"`
}

// GroupAssignment is one numbered TA group and its students, split per TA
type GroupAssignment struct {
	Number int            `json:"number"` // 1-based, unique across both sections
	TAs    []TAAssignment `json:"tas"`
}

// Students returns every student assigned to the group, in roster order
func (g GroupAssignment) Students() []string {
	var students []string
	for _, ta := range g.TAs {
		students = append(students, ta.Students...)
	}
	return students
}

// Group rebuilds the TAGroup this assignment was made for
func (g GroupAssignment) Group() TAGroup {
	members := make([]TA, len(g.TAs))
	for i, ta := range g.TAs {
		members[i] = ta.TA
	}
	return TAGroup{Members: members}
}

// SectionAssignment maps a section's TA groups to the students they grade
type SectionAssignment struct {
	Section   Section           `json:"section"`
	TargetTAs int               `json:"targetTAs"`
	Roster    []string          `json:"roster"` // Full section roster in assignment order
	Groups    []GroupAssignment `json:"groups"`
}

// StudentCount returns the number of students assigned across all groups
func (s SectionAssignment) StudentCount() int {
	n := 0
	for _, g := range s.Groups {
		for _, ta := range g.TAs {
			n += len(ta.Students)
		}
	}
	return n
}

// AllotmentRange returns the smallest and largest per-TA allotment
func (s SectionAssignment) AllotmentRange() (min, max int) {
	first := true
	for _, g := range s.Groups {
		for _, ta := range g.TAs {
			n := len(ta.Students)
			if first || n < min {
				min = n
			}
			if first || n > max {
				max = n
			}
			first = false
		}
	}
	return min, max
}

// Result is the terminal output of one planning run
type Result struct {
	CampusTAs int               `json:"campusTAs"`
	OnlineTAs int               `json:"onlineTAs"`
	Groups    GroupSet          `json:"groups"` // Build order
	Campus    SectionAssignment `json:"campus"`
	Online    SectionAssignment `json:"online"`
}

// Sections returns campus then online, the order groups are numbered in
func (r Result) Sections() []SectionAssignment {
	return []SectionAssignment{r.Campus, r.Online}
}

// Plan is a stored planning run
type Plan struct {
	ID        string    `json:"id"`        // Unique plan ID (uuid)
	Name      string    `json:"name"`      // Optional label, e.g. the course term
	NumGroups int       `json:"numGroups"` // Group count the run was made with
	CreatedAt time.Time `json:"createdAt"`
	Result    Result    `json:"result"`
}
