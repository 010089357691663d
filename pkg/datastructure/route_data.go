package datastructure

import (
	"github.com/paulmach/orb"
)

// RoadSegment is one successfully routed topology edge. Coordinates are
// [lon, lat, elevation] triples of the simplified centerline, source to target.
type RoadSegment struct {
	ID       int `json:"id"`
	FromNode int `json:"from_node"`
	ToNode   int `json:"to_node"`

	Coordinates [][]float64 `json:"coordinates"`

	LengthM  float64 `json:"length_m"`
	AvgGrade float64 `json:"avg_grade"`
	MaxGrade float64 `json:"max_grade"`

	// always 0 here; true earthwork is derived downstream by the volume
	// estimation service from these coordinates and the road width
	CutVolume  float64 `json:"cut_volume"`
	FillVolume float64 `json:"fill_volume"`
}

func NewRoadSegment(id, fromNode, toNode int, coordinates [][]float64,
	lengthM, avgGrade, maxGrade float64) RoadSegment {
	return RoadSegment{
		ID:          id,
		FromNode:    fromNode,
		ToNode:      toNode,
		Coordinates: coordinates,
		LengthM:     lengthM,
		AvgGrade:    avgGrade,
		MaxGrade:    maxGrade,
	}
}

// Intersection is reserved for computed road crossings. The engine never emits
// any today; the list stays empty so the result shape is stable.
type Intersection struct {
	ID       int       `json:"id"`
	Position []float64 `json:"position"`
}

type RoadDetails struct {
	Segments      []RoadSegment  `json:"segments"`
	Intersections []Intersection `json:"intersections"`
}

// RoadNetworkResult is the only entity exposed across the module boundary.
type RoadNetworkResult struct {
	Success bool `json:"success"`

	RoadCenterlines [][][]float64    `json:"road_centerlines,omitempty"`
	RoadPolygons    orb.MultiPolygon `json:"road_polygons,omitempty"`
	RoadDetails     RoadDetails      `json:"road_details"`

	TotalRoadLength    float64 `json:"total_road_length"`
	TotalSegments      int     `json:"total_segments"`
	TotalIntersections int     `json:"total_intersections"`

	AvgGrade       float64 `json:"avg_grade"`
	MaxGradeActual float64 `json:"max_grade_actual"`
	GradeCompliant bool    `json:"grade_compliant"`

	TotalCutVolume     float64 `json:"total_cut_volume"`
	TotalFillVolume    float64 `json:"total_fill_volume"`
	NetEarthworkVolume float64 `json:"net_earthwork_volume"`

	AssetsConnected  int     `json:"assets_connected"`
	ConnectivityRate float64 `json:"connectivity_rate"`

	ProcessingTime       float64 `json:"processing_time"`
	MemoryPeakMB         float64 `json:"memory_peak_mb"`
	AlgorithmIterations  int     `json:"algorithm_iterations"`
	PathfindingAlgorithm string  `json:"pathfinding_algorithm"`

	ErrorMessage string `json:"error_message,omitempty"`
}

// NewFailedResult failure result carrying a diagnostic message.
func NewFailedResult(errorMessage string, processingTime float64) RoadNetworkResult {
	return RoadNetworkResult{
		Success:        false,
		ErrorMessage:   errorMessage,
		ProcessingTime: processingTime,
		GradeCompliant: true,
		RoadDetails: RoadDetails{
			Segments:      []RoadSegment{},
			Intersections: []Intersection{},
		},
	}
}
