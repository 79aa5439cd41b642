package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"homework-groups-go/grouping"
	"homework-groups-go/models"
)

// Outcome labels for plan runs.
const (
	OutcomeSuccess      = "success"
	OutcomeInputError   = "input_error"
	OutcomeAllocation   = "allocation_error"
	OutcomeDistribution = "distribution_error"
	OutcomeOther        = "error"
)

// Collector records planning runs in Prometheus.
type Collector struct {
	runs             *prometheus.CounterVec
	runDuration      prometheus.Histogram
	studentsAssigned *prometheus.CounterVec
	groupSizes       *prometheus.HistogramVec
}

// NewPrometheus creates the collectors and registers them on reg.
//
// Parameters:
//   - reg: Prometheus registerer (uses prometheus.DefaultRegisterer if nil)
//   - namespace: metrics namespace (defaults to "homework_groups" if empty)
func NewPrometheus(reg prometheus.Registerer, namespace string) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "homework_groups"
	}

	c := &Collector{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "plan_runs_total",
			Help:      "Planning runs by outcome.",
		}, []string{"outcome"}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "plan_run_duration_seconds",
			Help:      "Time spent computing a plan.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		studentsAssigned: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "students_assigned_total",
			Help:      "Students assigned to TAs by section.",
		}, []string{"section"}),
		groupSizes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "group_size",
			Help:      "TA count of built groups by section.",
			Buckets:   prometheus.LinearBuckets(1, 1, 6),
		}, []string{"section"}),
	}

	for _, col := range []prometheus.Collector{c.runs, c.runDuration, c.studentsAssigned, c.groupSizes} {
		if err := reg.Register(col); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// ObserveRun records the outcome of one planning run. A nil Collector is a no-op.
func (c *Collector) ObserveRun(result models.Result, err error, elapsed time.Duration) {
	if c == nil {
		return
	}
	c.runDuration.Observe(elapsed.Seconds())
	c.runs.WithLabelValues(Outcome(err)).Inc()
	if err != nil {
		return
	}

	for _, section := range result.Sections() {
		label := string(section.Section)
		c.studentsAssigned.WithLabelValues(label).Add(float64(section.StudentCount()))
		for _, g := range section.Groups {
			c.groupSizes.WithLabelValues(label).Observe(float64(len(g.TAs)))
		}
	}
}

// Outcome classifies a run error into a metrics label.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.Is(err, grouping.ErrInputFormat), errors.Is(err, grouping.ErrEmptyRosters):
		return OutcomeInputError
	case errors.Is(err, grouping.ErrGroupDistribution), errors.Is(err, grouping.ErrDistributionMismatch):
		return OutcomeDistribution
	case errors.Is(err, grouping.ErrInsufficientReturningTAs),
		errors.Is(err, grouping.ErrSurplusReturningTAs),
		errors.Is(err, grouping.ErrGroupSize),
		errors.Is(err, grouping.ErrInvalidGroupCount),
		errors.Is(err, grouping.ErrSectionSize):
		return OutcomeAllocation
	default:
		return OutcomeOther
	}
}
