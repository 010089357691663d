package exclusion

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/tidwall/rtree"
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/geo"
)

// bufferedZone is one exclusion geometry expanded by the buffer distance,
// converted to degrees at the zone's own centroid latitude.
type bufferedZone struct {
	geom      orb.Geometry
	bufferDeg float64
}

// containsPoint reports whether p lies inside the buffered zone: inside the
// polygon itself, or within bufferDeg of its boundary.
func (z *bufferedZone) containsPoint(p orb.Point) bool {
	switch g := z.geom.(type) {
	case orb.Polygon:
		if planar.PolygonContains(g, p) {
			return true
		}
	case orb.MultiPolygon:
		if planar.MultiPolygonContains(g, p) {
			return true
		}
	default:
		return false
	}

	if z.bufferDeg <= 0 {
		return false
	}
	return planar.DistanceFrom(z.geom, p) <= z.bufferDeg
}

// Mask marks grid nodes that fall inside any buffered exclusion zone. Zones are
// indexed in an r-tree on their buffered bounding boxes so only nearby zones
// are tested per node.
type Mask struct {
	zones []bufferedZone
	tr    *rtree.RTreeG[int]
}

// NewMask buffers each zone independently by bufferMeters. Geometries that are
// not areas (points, lines) are skipped with a warning, matching the lenient
// parse behavior of the zone producer.
func NewMask(zones []orb.Geometry, bufferMeters float64, log *zap.Logger) *Mask {
	m := &Mask{}
	var tr rtree.RTreeG[int]
	m.tr = &tr

	for i, zone := range zones {
		if zone == nil {
			log.Warn("skipping nil exclusion zone", zap.Int("zone", i))
			continue
		}
		switch zone.(type) {
		case orb.Polygon, orb.MultiPolygon:
		default:
			log.Warn("skipping non-area exclusion zone",
				zap.Int("zone", i), zap.String("type", zone.GeoJSONType()))
			continue
		}

		centroid, _ := planar.CentroidArea(zone)
		bufferDeg := geo.MetersToDegrees(bufferMeters, centroid.Lat())

		bound := zone.Bound()
		min := [2]float64{bound.Min.Lon() - bufferDeg, bound.Min.Lat() - bufferDeg}
		max := [2]float64{bound.Max.Lon() + bufferDeg, bound.Max.Lat() + bufferDeg}

		m.tr.Insert(min, max, len(m.zones))
		m.zones = append(m.zones, bufferedZone{geom: zone, bufferDeg: bufferDeg})
	}

	return m
}

func (m *Mask) NumZones() int {
	return len(m.zones)
}

// Contains reports whether the point falls inside any buffered zone.
func (m *Mask) Contains(lon, lat float64) bool {
	p := orb.Point{lon, lat}
	hit := false
	m.tr.Search([2]float64{lon, lat}, [2]float64{lon, lat},
		func(_, _ [2]float64, zoneIdx int) bool {
			if m.zones[zoneIdx].containsPoint(p) {
				hit = true
				return false
			}
			return true
		})
	return hit
}

// Apply invalidates every grid node inside the merged buffered region. It only
// flips validity flags; nodes are never created or destroyed.
func (m *Mask) Apply(grid *datastructure.Grid) int {
	if len(m.zones) == 0 {
		return 0
	}

	invalidated := 0
	grid.ForNodes(func(_ datastructure.Index, node *datastructure.GridNode) {
		if !node.IsValid() {
			return
		}
		if m.Contains(node.GetLon(), node.GetLat()) {
			node.Invalidate()
			invalidated++
		}
	})
	return invalidated
}
