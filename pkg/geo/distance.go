package geo

import (
	"math"

	"github.com/sitelayout/planner/pkg"
	"github.com/sitelayout/planner/pkg/util"
)

type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (c Coordinate) GetLat() float64 {
	return c.Lat
}

func (c Coordinate) GetLon() float64 {
	return c.Lon
}

func NewCoordinate(lat, lon float64) Coordinate {
	return Coordinate{
		Lat: lat,
		Lon: lon,
	}
}

func NewCoordinates(lat, lon []float64) []Coordinate {
	coords := make([]Coordinate, len(lat))
	for i := range lat {
		coords[i] = NewCoordinate(lat[i], lon[i])
	}
	return coords
}

func havFunction(angleRad float64) float64 {
	return (1 - math.Cos(angleRad)) / 2.0
}

// CalculateHaversineDistance. calculate haversine distance in meters
func CalculateHaversineDistance(latOne, longOne, latTwo, longTwo float64) float64 {
	latOne = util.DegreeToRadians(latOne)
	longOne = util.DegreeToRadians(longOne)
	latTwo = util.DegreeToRadians(latTwo)
	longTwo = util.DegreeToRadians(longTwo)

	a := havFunction(latOne-latTwo) + math.Cos(latOne)*math.Cos(latTwo)*havFunction(longOne-longTwo)
	c := 2.0 * math.Asin(math.Sqrt(a))
	return pkg.EARTH_RADIUS_M * c
}

// CalculateGrade. percent grade (rise over run * 100) between two surveyed points.
// returns 0 when the horizontal distance is below 1 cm (grade undefined).
func CalculateGrade(latOne, longOne, elevOne, latTwo, longTwo, elevTwo float64) float64 {
	horizontalDistance := CalculateHaversineDistance(latOne, longOne, latTwo, longTwo)
	if horizontalDistance < pkg.MIN_GRADE_DISTANCE_M {
		return 0.0
	}

	elevationChange := math.Abs(elevTwo - elevOne)
	return (elevationChange / horizontalDistance) * 100.0
}

// MetersToDegrees. convert a distance in meters to degrees at the given latitude,
// using the average of the lat and lon meters-per-degree scales.
func MetersToDegrees(meters, latitude float64) float64 {
	metersPerDegreeLon := pkg.METERS_PER_DEGREE_LAT * math.Cos(util.DegreeToRadians(latitude))
	avgMetersPerDegree := (pkg.METERS_PER_DEGREE_LAT + metersPerDegreeLon) / 2.0
	return meters / avgMetersPerDegree
}

// DegreesToMeters. inverse of MetersToDegrees at the given latitude.
func DegreesToMeters(degrees, latitude float64) float64 {
	metersPerDegreeLon := pkg.METERS_PER_DEGREE_LAT * math.Cos(util.DegreeToRadians(latitude))
	return degrees * (pkg.METERS_PER_DEGREE_LAT + metersPerDegreeLon) / 2.0
}
