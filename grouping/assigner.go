package grouping

import (
	"fmt"

	"homework-groups-go/models"
)

// PartitionGroups splits groups between the sections so that each section's
// TA total hits its target exactly.
//
// Groups are walked from the end of the set, where the smaller groups sit
// after BuildGroups, and go online while the online total stays within
// targetOnline; everything else goes to campus. The walk is a heuristic: if
// either total misses its target a *GroupDistributionError is returned and no
// split is produced.
//
// Both returned slices keep the GroupSet order.
func PartitionGroups(groups models.GroupSet, targetCampus, targetOnline int) (campus, online []models.TAGroup, err error) {
	toOnline := make([]bool, len(groups))
	campusCount, onlineCount := 0, 0

	for i := len(groups) - 1; i >= 0; i-- {
		size := groups[i].Size()
		if onlineCount+size <= targetOnline {
			toOnline[i] = true
			onlineCount += size
		} else {
			campusCount += size
		}
	}

	if campusCount != targetCampus || onlineCount != targetOnline {
		return nil, nil, &GroupDistributionError{
			TargetCampus: targetCampus,
			TargetOnline: targetOnline,
			ActualCampus: campusCount,
			ActualOnline: onlineCount,
		}
	}

	for i, g := range groups {
		if toOnline[i] {
			online = append(online, g)
		} else {
			campus = append(campus, g)
		}
	}
	return campus, online, nil
}

// AssignStudents hands a section's roster out to its TA groups.
//
// Every TA gets len(students)/totalTAs students. The remainder is spread per
// group, front-loaded: group i receives remainder/len(groups) extra students,
// plus one more when i < remainder%len(groups), and its first TAs take one
// extra each. Extras a group cannot absorb because it has too few TAs move on
// to the next groups that still have a TA at the base allotment. Students are
// taken from the front of the roster, group by group and TA by TA.
//
// Groups are numbered from firstGroup; the number after the last one used is
// returned so the caller can continue numbering in the next section.
func AssignStudents(section models.Section, groups []models.TAGroup, totalTAs int, students []string, firstGroup int) (models.SectionAssignment, int, error) {
	assignment := models.SectionAssignment{
		Section:   section,
		TargetTAs: totalTAs,
		Roster:    students,
	}

	if sum := models.TotalTAs(groups); sum != totalTAs {
		return assignment, firstGroup, fmt.Errorf("%w: %s section expects %d TAs, groups hold %d", ErrSectionSize, section, totalTAs, sum)
	}
	if totalTAs == 0 {
		if len(students) > 0 {
			return assignment, firstGroup, fmt.Errorf("%w: %s section has %d students and no TAs", ErrSectionSize, section, len(students))
		}
		return assignment, firstGroup, nil
	}

	base := len(students) / totalTAs
	extras := groupExtras(groups, len(students)%totalTAs)

	next := 0
	number := firstGroup
	assignment.Groups = make([]models.GroupAssignment, 0, len(groups))
	for i, g := range groups {
		ga := models.GroupAssignment{Number: number, TAs: make([]models.TAAssignment, 0, g.Size())}
		extra := extras[i]
		for _, ta := range g.Members {
			n := base
			if extra > 0 {
				n++
				extra--
			}
			ga.TAs = append(ga.TAs, models.TAAssignment{TA: ta, Students: students[next : next+n : next+n]})
			next += n
		}
		assignment.Groups = append(assignment.Groups, ga)
		number++
	}

	return assignment, number, nil
}

// groupExtras returns how many remainder students each group takes.
// remainder is always smaller than the total TA count, so the overflow pass
// always finds room.
func groupExtras(groups []models.TAGroup, remainder int) []int {
	extras := make([]int, len(groups))
	if len(groups) == 0 {
		return extras
	}

	overflow := 0
	for i, g := range groups {
		extra := remainder / len(groups)
		if i < remainder%len(groups) {
			extra++
		}
		if extra > g.Size() {
			overflow += extra - g.Size()
			extra = g.Size()
		}
		extras[i] = extra
	}

	for i := 0; overflow > 0; i = (i + 1) % len(groups) {
		if extras[i] < groups[i].Size() {
			extras[i]++
			overflow--
		}
	}
	return extras
}
