package geo

import (
	"github.com/golang/geo/s2"

	"github.com/sitelayout/planner/pkg"
)

// RingAreaSquareMeters. spherical area of the ring enclosed by (lon, lat) pairs,
// in square meters. A closing point equal to the first is ignored.
func RingAreaSquareMeters(ring [][]float64) float64 {
	if len(ring) > 1 {
		first, last := ring[0], ring[len(ring)-1]
		if first[0] == last[0] && first[1] == last[1] {
			ring = ring[:len(ring)-1]
		}
	}
	if len(ring) < 3 {
		return 0
	}

	pts := make([]s2.Point, 0, len(ring))
	for _, c := range ring {
		pts = append(pts, s2.PointFromLatLng(s2.LatLngFromDegrees(c[1], c[0])))
	}

	loop := s2.LoopFromPoints(pts)
	loop.Normalize()
	return loop.Area() * pkg.EARTH_RADIUS_M * pkg.EARTH_RADIUS_M
}
