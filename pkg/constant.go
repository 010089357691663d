package pkg

const (
	EARTH_RADIUS_M        float64 = 6371000.0
	METERS_PER_DEGREE_LAT float64 = 111320.0

	INF_WEIGHT float64 = 1e15

	// below this horizontal distance (1 cm) grade is undefined and treated as flat
	MIN_GRADE_DISTANCE_M float64 = 0.01

	DEFAULT_SIMPLIFY_TOLERANCE_M float64 = 2.0

	PIPELINE_TOTAL_STEPS = 6

	PATHFINDING_ALGORITHM = "astar"
)

const (
	DEBUG = false
)
