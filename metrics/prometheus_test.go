package metrics

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"homework-groups-go/grouping"
	"homework-groups-go/models"
)

func TestCollector_ObserveRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewPrometheus(reg, "test")
	require.NoError(t, err)

	result := models.Result{
		Campus: models.SectionAssignment{
			Section: models.SectionCampus,
			Groups: []models.GroupAssignment{{Number: 1, TAs: []models.TAAssignment{
				{Students: []string{"a", "b"}}, {Students: []string{"c"}}, {Students: []string{"d"}},
			}}},
		},
		Online: models.SectionAssignment{Section: models.SectionOnline},
	}

	c.ObserveRun(result, nil, 2*time.Millisecond)
	c.ObserveRun(models.Result{}, &grouping.GroupDistributionError{}, time.Millisecond)

	require.Equal(t, float64(1), testutil.ToFloat64(c.runs.WithLabelValues(OutcomeSuccess)))
	require.Equal(t, float64(1), testutil.ToFloat64(c.runs.WithLabelValues(OutcomeDistribution)))
	require.Equal(t, float64(4), testutil.ToFloat64(c.studentsAssigned.WithLabelValues("campus")))
	require.Equal(t, float64(0), testutil.ToFloat64(c.studentsAssigned.WithLabelValues("online")))
	require.Equal(t, 1, testutil.CollectAndCount(c.runDuration))
}

func TestCollector_Nil(t *testing.T) {
	var c *Collector

	require.NotPanics(t, func() { c.ObserveRun(models.Result{}, nil, time.Second) })
}

func TestNewPrometheus_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewPrometheus(reg, "")
	require.NoError(t, err)

	_, err = NewPrometheus(reg, "")
	require.Error(t, err)
}

func TestOutcome(t *testing.T) {
	cases := map[string]error{
		OutcomeSuccess:      nil,
		OutcomeInputError:   fmt.Errorf("campus roster: %w", &grouping.InputFormatError{Name: "x"}),
		OutcomeDistribution: fmt.Errorf("wrap: %w", grouping.ErrDistributionMismatch),
		OutcomeAllocation:   &grouping.InsufficientReturningTAsError{Groups: 8, Returning: 2},
		OutcomeOther:        errors.New("boom"),
	}
	for want, err := range cases {
		require.Equal(t, want, Outcome(err))
	}
}
