package geometry

import (
	"github.com/sitelayout/planner/pkg"
	"github.com/sitelayout/planner/pkg/geo"
)

// SegmentMetrics scalar metrics of one simplified centerline.
type SegmentMetrics struct {
	LengthM  float64
	AvgGrade float64
	MaxGrade float64
}

// CalculateSegmentMetrics sums consecutive great-circle distances and
// averages percent grades across consecutive vertex pairs. Pairs closer than
// 1 cm contribute length but no grade sample.
func CalculateSegmentMetrics(coords [][]float64) SegmentMetrics {
	if len(coords) < 2 {
		return SegmentMetrics{}
	}

	totalLength := 0.0
	gradeSum := 0.0
	gradeMax := 0.0
	gradeCount := 0

	for i := 0; i < len(coords)-1; i++ {
		lon1, lat1, elev1 := coords[i][0], coords[i][1], coords[i][2]
		lon2, lat2, elev2 := coords[i+1][0], coords[i+1][1], coords[i+1][2]

		segLength := geo.CalculateHaversineDistance(lat1, lon1, lat2, lon2)
		totalLength += segLength

		if segLength > pkg.MIN_GRADE_DISTANCE_M {
			grade := geo.CalculateGrade(lat1, lon1, elev1, lat2, lon2, elev2)
			gradeSum += grade
			if grade > gradeMax {
				gradeMax = grade
			}
			gradeCount++
		}
	}

	metrics := SegmentMetrics{LengthM: totalLength}
	if gradeCount > 0 {
		metrics.AvgGrade = gradeSum / float64(gradeCount)
		metrics.MaxGrade = gradeMax
	}
	return metrics
}
