// Package grouping builds homework groups for a two-section course.
//
// A run takes the campus and online student rosters plus the TA roster split
// into new and returning TAs, and produces:
//
//   - NumGroups TA groups, each anchored by at least one returning TA
//   - a split of those groups between the two sections whose TA totals are
//     proportional to the section sizes
//   - a per-TA slice of each section's roster, with leftover students spread
//     one per group rather than one per TA
//
// The pipeline is pure and deterministic. Every failure is returned as an
// error that unwraps to one of the sentinels in errors.go; nothing is
// partially produced.
//
// Basic usage:
//
//	result, err := grouping.Run(grouping.Input{
//	    Campus:       campusRoster,
//	    Online:       onlineRoster,
//	    NewTAs:       newTAs,
//	    ReturningTAs: returningTAs,
//	}, grouping.DefaultOptions())
package grouping
