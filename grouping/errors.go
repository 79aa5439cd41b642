package grouping

import (
	"errors"
	"fmt"
)

// Sentinel errors for the planning pipeline.
//
// Every failure is a deterministic input or allocation problem; none of them
// is retryable. Use errors.Is to classify and errors.As to read the counts
// carried by the typed errors below.
var (
	// ErrInputFormat is returned when a student name lacks the "Last, First" delimiter.
	ErrInputFormat = errors.New("name is not in \"Last, First\" format")

	// ErrInsufficientReturningTAs is returned when there are fewer returning TAs than groups.
	ErrInsufficientReturningTAs = errors.New("not enough returning TAs to anchor every group")

	// ErrSurplusReturningTAs is returned when returning TAs exceed two per group.
	ErrSurplusReturningTAs = errors.New("more returning TAs than group slots")

	// ErrGroupDistribution is returned when groups cannot be split to match both section targets.
	ErrGroupDistribution = errors.New("groups cannot be distributed to match the required counts")

	// ErrGroupSize is returned when a built group falls outside the configured size bounds.
	ErrGroupSize = errors.New("group size out of bounds")

	// ErrInvalidGroupCount is returned for a non-positive number of groups.
	ErrInvalidGroupCount = errors.New("number of groups must be positive")

	// ErrEmptyRosters is returned when both student rosters are empty.
	ErrEmptyRosters = errors.New("both student rosters are empty")

	// ErrDistributionMismatch is returned when rounded section TA counts do not add up to the TA total.
	ErrDistributionMismatch = errors.New("section TA counts do not add up to total TAs")

	// ErrSectionSize is returned when a section's TA count disagrees with its groups.
	ErrSectionSize = errors.New("section TA count does not match its groups")
)

// InputFormatError reports a malformed roster name.
type InputFormatError struct {
	Index int
	Name  string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("roster entry %d %q: %s", e.Index, e.Name, ErrInputFormat)
}

func (e *InputFormatError) Unwrap() error {
	return ErrInputFormat
}

// InsufficientReturningTAsError reports how short the returning pool is.
type InsufficientReturningTAsError struct {
	Groups    int
	Returning int
}

func (e *InsufficientReturningTAsError) Error() string {
	return fmt.Sprintf("%s: have %d, need %d", ErrInsufficientReturningTAs, e.Returning, e.Groups)
}

func (e *InsufficientReturningTAsError) Unwrap() error {
	return ErrInsufficientReturningTAs
}

// GroupDistributionError carries the target and actual TA counts of a failed partition.
type GroupDistributionError struct {
	TargetCampus int
	TargetOnline int
	ActualCampus int
	ActualOnline int
}

func (e *GroupDistributionError) Error() string {
	return fmt.Sprintf("%s: target campus tas: %d, target online tas: %d, actual campus tas: %d, actual online tas: %d",
		ErrGroupDistribution, e.TargetCampus, e.TargetOnline, e.ActualCampus, e.ActualOnline)
}

func (e *GroupDistributionError) Unwrap() error {
	return ErrGroupDistribution
}
