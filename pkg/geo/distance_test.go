package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculateHaversineDistance(t *testing.T) {
	testCases := []struct {
		name                   string
		lat1, lon1, lat2, lon2 float64
		want                   float64
		tolerance              float64
	}{
		{
			name: "same point",
			lat1: -6.2, lon1: 106.8, lat2: -6.2, lon2: 106.8,
			want: 0, tolerance: 1e-9,
		},
		{
			name: "one hundredth degree of longitude at the equator",
			lat1: 0, lon1: 0, lat2: 0, lon2: 0.01,
			want: 1112.0, tolerance: 1.0,
		},
		{
			name: "one hundredth degree of latitude",
			lat1: 0, lon1: 0, lat2: 0.01, lon2: 0,
			want: 1112.0, tolerance: 1.0,
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateHaversineDistance(tt.lat1, tt.lon1, tt.lat2, tt.lon2)
			assert.InDelta(t, tt.want, got, tt.tolerance)
		})
	}
}

func TestCalculateGrade(t *testing.T) {
	// ~100 m apart at the equator with 10 m of rise -> ~10% grade
	grade := CalculateGrade(0, 0, 0, 0, 0.0009, 10)
	assert.InDelta(t, 10.0, grade, 0.2)

	// direction of the elevation change does not matter
	down := CalculateGrade(0, 0, 10, 0, 0.0009, 0)
	assert.InDelta(t, grade, down, 1e-9)
}

func TestCalculateGradeBelowMinDistance(t *testing.T) {
	// under 1 cm of run the grade is undefined and reported flat
	grade := CalculateGrade(0, 0, 0, 0, 1e-9, 50)
	assert.Equal(t, 0.0, grade)
}

func TestMetersDegreesRoundTrip(t *testing.T) {
	testCases := []struct {
		name     string
		meters   float64
		latitude float64
	}{
		{name: "equator", meters: 111.32, latitude: 0},
		{name: "mid latitude", meters: 500, latitude: 45},
		{name: "high latitude", meters: 30, latitude: 60},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			deg := MetersToDegrees(tt.meters, tt.latitude)
			back := DegreesToMeters(deg, tt.latitude)
			assert.InDelta(t, tt.meters, back, 1e-9)
		})
	}

	// at the equator both scales are METERS_PER_DEGREE_LAT
	assert.InDelta(t, 0.001, MetersToDegrees(111.32, 0), 1e-12)
}

func TestBearingTo(t *testing.T) {
	assert.InDelta(t, 0.0, BearingTo(0, 0, 1, 0), 1e-6)    // due north
	assert.InDelta(t, 90.0, BearingTo(0, 0, 0, 1), 1e-6)   // due east
	assert.InDelta(t, 180.0, BearingTo(1, 0, 0, 0), 1e-6)  // due south
	assert.InDelta(t, 270.0, BearingTo(0, 1, 0, 0), 1e-6)  // due west
}

func TestGetDestinationPoint(t *testing.T) {
	// 1000 m due east from the origin lands ~0.009 degrees of longitude away
	lat, lon := GetDestinationPoint(0, 0, 90, 1000)
	assert.InDelta(t, 0.0, lat, 1e-6)
	assert.InDelta(t, 1000.0, CalculateHaversineDistance(0, 0, lat, lon), 0.01)
}

func TestRingAreaSquareMeters(t *testing.T) {
	// ~1113 m x ~1113 m square at the equator
	ring := [][]float64{
		{0, 0},
		{0.01, 0},
		{0.01, 0.01},
		{0, 0.01},
		{0, 0},
	}
	area := RingAreaSquareMeters(ring)
	side := CalculateHaversineDistance(0, 0, 0, 0.01)
	assert.InEpsilon(t, side*side, area, 0.01)
}
