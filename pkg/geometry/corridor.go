package geometry

import (
	polyclip "github.com/ctessum/polyclip-go"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"github.com/sitelayout/planner/pkg/geo"
)

// BuildCorridor buffers a centerline ([lon, lat, ...] vertices) into the road
// footprint polygon of the given width: geodesic perpendicular offsets at
// roadWidthM/2 on both sides, flat (non-rounded) end caps. Returns false for
// degenerate centerlines (< 2 vertices).
func BuildCorridor(centerline [][]float64, roadWidthM float64) (orb.Polygon, bool) {
	if len(centerline) < 2 {
		return nil, false
	}

	half := roadWidthM / 2.0
	n := len(centerline)

	left := make([]orb.Point, 0, n)
	right := make([]orb.Point, 0, n)

	for i := 0; i < n; i++ {
		lon, lat := centerline[i][0], centerline[i][1]
		bearing := vertexBearing(centerline, i)

		lLat, lLon := geo.GetDestinationPoint(lat, lon, bearing-90, half)
		rLat, rLon := geo.GetDestinationPoint(lat, lon, bearing+90, half)

		left = append(left, orb.Point{lLon, lLat})
		right = append(right, orb.Point{rLon, rLat})
	}

	// left side forward, right side backward, closed: flat caps at both ends
	ring := make(orb.Ring, 0, 2*n+1)
	ring = append(ring, left...)
	for i := n - 1; i >= 0; i-- {
		ring = append(ring, right[i])
	}
	ring = append(ring, ring[0])

	return orb.Polygon{ring}, true
}

// vertexBearing tangent bearing at vertex i: segment bearing at the endpoints,
// chord bearing of the adjacent vertices in between (miter joint).
func vertexBearing(centerline [][]float64, i int) float64 {
	n := len(centerline)
	prev := i - 1
	next := i + 1
	if prev < 0 {
		prev = 0
	}
	if next > n-1 {
		next = n - 1
	}
	return geo.BearingTo(centerline[prev][1], centerline[prev][0],
		centerline[next][1], centerline[next][0])
}

// MergeCorridors unions all segment corridors into one multipolygon. Contours
// of the union are classified shell vs hole by containment parity.
func MergeCorridors(corridors []orb.Polygon) orb.MultiPolygon {
	if len(corridors) == 0 {
		return nil
	}

	union := toPolyclip(corridors[0])
	for _, c := range corridors[1:] {
		union = union.Construct(polyclip.UNION, toPolyclip(c))
	}

	return assembleMultiPolygon(union)
}

func toPolyclip(poly orb.Polygon) polyclip.Polygon {
	out := make(polyclip.Polygon, 0, len(poly))
	for _, ring := range poly {
		contour := make(polyclip.Contour, 0, len(ring))
		for i, p := range ring {
			if i == len(ring)-1 && p == ring[0] {
				break // polyclip contours are implicitly closed
			}
			contour = append(contour, polyclip.Point{X: p.Lon(), Y: p.Lat()})
		}
		out = append(out, contour)
	}
	return out
}

func toRing(contour polyclip.Contour) orb.Ring {
	ring := make(orb.Ring, 0, len(contour)+1)
	for _, p := range contour {
		ring = append(ring, orb.Point{p.X, p.Y})
	}
	if len(ring) > 0 && ring[0] != ring[len(ring)-1] {
		ring = append(ring, ring[0])
	}
	return ring
}

// assembleMultiPolygon groups the flat contour list of a boolean-op result
// into polygons: a contour contained by an odd number of others is a hole of
// its smallest enclosing shell.
func assembleMultiPolygon(p polyclip.Polygon) orb.MultiPolygon {
	rings := make([]orb.Ring, 0, len(p))
	for _, contour := range p {
		if len(contour) < 3 {
			continue
		}
		rings = append(rings, toRing(contour))
	}

	type shell struct {
		ring  orb.Ring
		area  float64
		holes []orb.Ring
	}

	shells := make([]*shell, 0, len(rings))
	holes := make([]orb.Ring, 0)

	for i, ring := range rings {
		depth := 0
		for j, other := range rings {
			if i == j {
				continue
			}
			if planar.RingContains(other, ring[0]) {
				depth++
			}
		}
		if depth%2 == 0 {
			shells = append(shells, &shell{ring: ring, area: planar.Area(ring)})
		} else {
			holes = append(holes, ring)
		}
	}

	for _, hole := range holes {
		var owner *shell
		for _, s := range shells {
			if planar.RingContains(s.ring, hole[0]) {
				if owner == nil || s.area < owner.area {
					owner = s
				}
			}
		}
		if owner != nil {
			owner.holes = append(owner.holes, hole)
		}
	}

	out := make(orb.MultiPolygon, 0, len(shells))
	for _, s := range shells {
		poly := orb.Polygon{s.ring}
		poly = append(poly, s.holes...)
		out = append(out, poly)
	}
	return out
}
