package grouping

import (
	"fmt"

	"homework-groups-go/models"
)

// BuildGroups distributes the TA pool into numGroups groups.
//
// The algorithm:
//  1. Deal new TAs round-robin, the i-th one to group i mod numGroups
//  2. Visit the groups in reverse build order, so groups that got fewer new
//     TAs come first; the result keeps that reversed order
//  3. Give each visited group the last remaining returning TA, then a second
//     one from the tail if enough remain to still anchor every later group
//
// Every group ends with at least one returning TA and at most two. The group
// sizes themselves are not checked here; see GroupSet validation in Run.
func BuildGroups(newTAs, returningTAs []string, numGroups int) (models.GroupSet, error) {
	if numGroups <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidGroupCount, numGroups)
	}
	if len(returningTAs) < numGroups {
		return nil, &InsufficientReturningTAsError{Groups: numGroups, Returning: len(returningTAs)}
	}
	if len(returningTAs) > 2*numGroups {
		return nil, fmt.Errorf("%w: have %d returning TAs for %d groups", ErrSurplusReturningTAs, len(returningTAs), numGroups)
	}

	built := make([][]models.TA, numGroups)
	for i, name := range newTAs {
		built[i%numGroups] = append(built[i%numGroups], models.TA{Name: name})
	}

	groups := make(models.GroupSet, numGroups)
	next := len(returningTAs) - 1
	for k := 0; k < numGroups; k++ {
		members := built[numGroups-1-k]

		members = append(members, models.TA{Name: returningTAs[next], Returning: true})
		next--

		// groups after this one still need one returning TA each
		if next+1 > numGroups-1-k {
			members = append(members, models.TA{Name: returningTAs[next], Returning: true})
			next--
		}
		groups[k] = models.TAGroup{Members: members}
	}

	return groups, nil
}

// ValidateGroups checks the size bounds and the returning-TA anchor of every group.
func ValidateGroups(groups models.GroupSet, minSize, maxSize int) error {
	for i, g := range groups {
		if g.Size() < minSize || g.Size() > maxSize {
			return fmt.Errorf("%w: group %d has %d TAs, want %d-%d", ErrGroupSize, i+1, g.Size(), minSize, maxSize)
		}
		if g.ReturningCount() == 0 {
			return fmt.Errorf("group %d: %w", i+1, ErrInsufficientReturningTAs)
		}
	}
	return nil
}
