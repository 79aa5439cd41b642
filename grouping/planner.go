package grouping

import "fmt"

// PlanDistribution splits totalTAs between the sections in proportion to
// their student counts.
//
// Each share is rounded half-to-even on the exact ratio, so 9.5 becomes 10 and
// 8.5 becomes 8. The two shares are not adjusted to add up to totalTAs; a
// mismatch is left for the caller to reject (Run does, with
// ErrDistributionMismatch).
func PlanDistribution(campusCount, onlineCount, totalTAs int) (campusTAs, onlineTAs int, err error) {
	if campusCount < 0 || onlineCount < 0 || totalTAs < 0 {
		return 0, 0, fmt.Errorf("negative count (campus %d, online %d, tas %d)", campusCount, onlineCount, totalTAs)
	}
	students := campusCount + onlineCount
	if students == 0 {
		return 0, 0, ErrEmptyRosters
	}

	campusTAs = roundHalfEven(totalTAs*campusCount, students)
	onlineTAs = roundHalfEven(totalTAs*onlineCount, students)
	return campusTAs, onlineTAs, nil
}

// roundHalfEven returns num/den rounded to the nearest integer, ties to even.
// Both arguments must be non-negative and den positive.
func roundHalfEven(num, den int) int {
	q, r := num/den, num%den
	switch {
	case 2*r > den:
		return q + 1
	case 2*r == den && q%2 == 1:
		return q + 1
	default:
		return q
	}
}
