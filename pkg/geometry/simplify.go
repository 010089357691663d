package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/simplify"

	"github.com/sitelayout/planner/pkg/geo"
)

// SimplifyPath reduces a raw lattice path ([lon, lat, elev] triples) to a
// minimal vertex chain within toleranceM meters, Douglas-Peucker. The
// elevation of each retained vertex is the one of the nearest original sample
// (by planar coordinate difference), not interpolated. Re-simplifying with the
// same tolerance is a no-op.
func SimplifyPath(coords [][]float64, toleranceM float64) [][]float64 {
	if len(coords) < 3 {
		return coords
	}

	line := make(orb.LineString, 0, len(coords))
	for _, c := range coords {
		line = append(line, orb.Point{c[0], c[1]})
	}

	centerLat := (coords[0][1] + coords[len(coords)-1][1]) / 2.0
	toleranceDeg := geo.MetersToDegrees(toleranceM, centerLat)

	simplified := simplify.DouglasPeucker(toleranceDeg).LineString(line)

	result := make([][]float64, 0, len(simplified))
	for _, p := range simplified {
		result = append(result, []float64{p.Lon(), p.Lat(), nearestElevation(coords, p)})
	}
	return result
}

// nearestElevation elevation of the original sample closest to p by
// |dlon| + |dlat|.
func nearestElevation(coords [][]float64, p orb.Point) float64 {
	bestElev := coords[0][2]
	minDist := math.Inf(1)
	for _, c := range coords {
		dist := math.Abs(c[0]-p.Lon()) + math.Abs(c[1]-p.Lat())
		if dist < minDist {
			minDist = dist
			bestElev = c[2]
		}
	}
	return bestElev
}
