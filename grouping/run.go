package grouping

import (
	"fmt"

	"homework-groups-go/models"
)

const (
	// DefaultNumGroups is the number of TA groups built per run.
	DefaultNumGroups = 8
	// DefaultMinGroupSize is the smallest allowed TA group.
	DefaultMinGroupSize = 3
	// DefaultMaxGroupSize is the largest allowed TA group.
	DefaultMaxGroupSize = 4
)

// Options tunes a planning run. It is read-only for the duration of a run.
type Options struct {
	NumGroups    int `yaml:"num_groups" json:"numGroups"`
	MinGroupSize int `yaml:"min_group_size" json:"minGroupSize"`
	MaxGroupSize int `yaml:"max_group_size" json:"maxGroupSize"`
}

// DefaultOptions returns 8 groups of 3 to 4 TAs.
func DefaultOptions() Options {
	return Options{
		NumGroups:    DefaultNumGroups,
		MinGroupSize: DefaultMinGroupSize,
		MaxGroupSize: DefaultMaxGroupSize,
	}
}

// Validate checks that the options describe a possible grouping.
func (o Options) Validate() error {
	if o.NumGroups <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidGroupCount, o.NumGroups)
	}
	if o.MinGroupSize < 1 || o.MaxGroupSize < o.MinGroupSize {
		return fmt.Errorf("invalid group size bounds %d-%d", o.MinGroupSize, o.MaxGroupSize)
	}
	return nil
}

// Input holds the rosters for one run. Student rosters are expected in
// "Last, First" form; Run normalizes them itself.
type Input struct {
	Campus       []string
	Online       []string
	NewTAs       []string
	ReturningTAs []string
}

// TotalTAs returns the size of the TA pool.
func (in Input) TotalTAs() int {
	return len(in.NewTAs) + len(in.ReturningTAs)
}

// Run executes the full pipeline: normalize rosters, plan the section split,
// build and validate groups, partition them and assign students. Campus
// groups are numbered first, online groups continue from there.
func Run(in Input, opts Options) (models.Result, error) {
	var result models.Result
	if err := opts.Validate(); err != nil {
		return models.Result{}, err
	}

	campus, err := Normalize(in.Campus)
	if err != nil {
		return models.Result{}, fmt.Errorf("campus roster: %w", err)
	}
	online, err := Normalize(in.Online)
	if err != nil {
		return models.Result{}, fmt.Errorf("online roster: %w", err)
	}

	totalTAs := in.TotalTAs()
	campusTAs, onlineTAs, err := PlanDistribution(len(campus), len(online), totalTAs)
	if err != nil {
		return models.Result{}, fmt.Errorf("plan distribution: %w", err)
	}
	if campusTAs+onlineTAs != totalTAs {
		return models.Result{}, fmt.Errorf("%w: campus %d + online %d != %d", ErrDistributionMismatch, campusTAs, onlineTAs, totalTAs)
	}
	result.CampusTAs, result.OnlineTAs = campusTAs, onlineTAs

	groups, err := BuildGroups(in.NewTAs, in.ReturningTAs, opts.NumGroups)
	if err != nil {
		return models.Result{}, fmt.Errorf("build groups: %w", err)
	}
	if err := ValidateGroups(groups, opts.MinGroupSize, opts.MaxGroupSize); err != nil {
		return models.Result{}, fmt.Errorf("build groups: %w", err)
	}
	result.Groups = groups

	campusGroups, onlineGroups, err := PartitionGroups(groups, campusTAs, onlineTAs)
	if err != nil {
		return models.Result{}, fmt.Errorf("partition groups: %w", err)
	}

	next := 1
	result.Campus, next, err = AssignStudents(models.SectionCampus, campusGroups, campusTAs, campus, next)
	if err != nil {
		return models.Result{}, fmt.Errorf("assign campus students: %w", err)
	}
	result.Online, _, err = AssignStudents(models.SectionOnline, onlineGroups, onlineTAs, online, next)
	if err != nil {
		return models.Result{}, fmt.Errorf("assign online students: %w", err)
	}

	return result, nil
}
