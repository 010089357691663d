package engine

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/paulmach/orb"
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg"
	"github.com/sitelayout/planner/pkg/costfunction"
	da "github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/engine/routing"
	"github.com/sitelayout/planner/pkg/exclusion"
	"github.com/sitelayout/planner/pkg/geo"
	"github.com/sitelayout/planner/pkg/geometry"
	"github.com/sitelayout/planner/pkg/terrain"
)

// GenerateParams is the full input of one road network generation request.
type GenerateParams struct {
	// (lon, lat) of every placed asset, owned by the asset placement
	// subsystem. Zero entries is a defined failure.
	AssetPositions []geo.Coordinate

	// optional site entry point, connected to its nearest asset
	EntryPoint *geo.Coordinate

	RoadWidth float64 `validate:"gt=0"`
	MaxGrade  float64 `validate:"gt=0"`

	// accepted for the configuration surface but not enforced by any stage
	MinCurveRadius float64 `validate:"gte=0"`

	GridResolution  float64 `validate:"gt=0"`
	ExclusionBuffer float64 `validate:"gte=0"`

	OptimizationCriteria costfunction.OptimizationCriteria

	// optional DEM raster path; empty means flat-terrain fallback
	DemPath string

	// polygon/multipolygon geometries in geographic coordinates
	ExclusionZones []orb.Geometry

	// reserved for future tuning, unused by the core algorithm
	AdvancedSettings map[string]interface{}
}

// RoadNetworkEngine synthesizes a grade-constrained road network connecting
// asset points over sampled terrain. Every invocation builds its own grid and
// graph; concurrent invocations share no mutable state.
type RoadNetworkEngine struct {
	log      *zap.Logger
	validate *validator.Validate
}

func NewRoadNetworkEngine(log *zap.Logger) *RoadNetworkEngine {
	return &RoadNetworkEngine{
		log:      log,
		validate: validator.New(),
	}
}

// GenerateRoadNetwork runs the full pipeline: grid, elevation, exclusions,
// cost graph, per-edge search, aggregation. It never returns a raw fault; any
// panic is converted into a failure result.
func (e *RoadNetworkEngine) GenerateRoadNetwork(params GenerateParams,
	reporter ProgressReporter) (result da.RoadNetworkResult) {

	startTime := time.Now()
	progress := newProgressTracker(reporter, e.log)
	algorithmIterations := 0

	defer func() {
		if r := recover(); r != nil {
			e.log.Error("panic during road network generation", zap.Any("panic", r))
			result = da.NewFailedResult(
				fmt.Sprintf("road network generation failed: %v", r),
				time.Since(startTime).Seconds())
		}
	}()

	if len(params.AssetPositions) < 1 {
		return da.NewFailedResult("No assets to connect", time.Since(startTime).Seconds())
	}
	if err := e.validate.Struct(params); err != nil {
		return da.NewFailedResult(fmt.Sprintf("invalid parameters: %v", err),
			time.Since(startTime).Seconds())
	}

	// step 1: bounds and pathfinding grid
	progress.update(1, "Generating pathfinding grid")

	allPoints := append([]geo.Coordinate{}, params.AssetPositions...)
	if params.EntryPoint != nil {
		allPoints = append(allPoints, *params.EntryPoint)
	}

	minLon, minLat := allPoints[0].GetLon(), allPoints[0].GetLat()
	maxLon, maxLat := minLon, minLat
	for _, p := range allPoints[1:] {
		if p.GetLon() < minLon {
			minLon = p.GetLon()
		}
		if p.GetLon() > maxLon {
			maxLon = p.GetLon()
		}
		if p.GetLat() < minLat {
			minLat = p.GetLat()
		}
		if p.GetLat() > maxLat {
			maxLat = p.GetLat()
		}
	}

	// 10% padding around the bounds, minimum 0.001 degree (~100 m)
	padding := (maxLon - minLon) * 0.1
	if padding < 0.001 {
		padding = 0.001
	}

	grid := da.BuildGrid(minLon-padding, minLat-padding, maxLon+padding, maxLat+padding,
		params.GridResolution)
	e.log.Info("generated pathfinding grid",
		zap.Int("nodes", grid.NumNodes()),
		zap.Int("rows", grid.NumRows()),
		zap.Int("cols", grid.NumCols()))

	// step 2: elevation
	progress.update(2, "Loading elevation data")
	terrain.SampleElevations(grid, params.DemPath, e.log)

	// step 3: exclusion zones
	progress.update(3, "Processing exclusion zones")
	mask := exclusion.NewMask(params.ExclusionZones, params.ExclusionBuffer, e.log)
	invalidated := mask.Apply(grid)
	if invalidated > 0 {
		e.log.Info("marked exclusion zones", zap.Int("invalidated_nodes", invalidated))
	}

	// step 4: cost graph
	progress.update(4, "Building pathfinding graph")
	costFn := costfunction.NewCostFunction(params.OptimizationCriteria)
	graph := routing.BuildCostGraph(grid, params.MaxGrade, costFn)
	e.log.Info("built pathfinding graph",
		zap.Int("vertices", graph.NumVertices()),
		zap.Int("edges", graph.NumEdges()),
		zap.String("criteria", params.OptimizationCriteria.String()))

	if graph.NumVertices() == 0 {
		return da.NewFailedResult("No valid path nodes (check exclusions/terrain)",
			time.Since(startTime).Seconds())
	}

	// step 5: route every topology edge
	progress.update(5, "Computing road paths")

	topologyEdges := routing.BuildMinimumSpanningTree(params.AssetPositions)

	allPositions := params.AssetPositions
	if params.EntryPoint != nil {
		nearestAsset := routing.NearestAsset(*params.EntryPoint, params.AssetPositions)
		entryIdx := len(params.AssetPositions)
		allPositions = append(append([]geo.Coordinate{}, params.AssetPositions...),
			*params.EntryPoint)
		topologyEdges = append(topologyEdges, routing.NewTopologyEdge(entryIdx, nearestAsset))
	}

	segments := make([]da.RoadSegment, 0, len(topologyEdges))
	centerlines := make([][][]float64, 0, len(topologyEdges))
	corridors := make([]orb.Polygon, 0, len(topologyEdges))

	totalLength := 0.0
	allGrades := make([]float64, 0, 2*len(topologyEdges))
	connectedAssets := make(map[int]struct{})
	segmentID := 0

	for _, edge := range topologyEdges {
		from := allPositions[edge.From]
		to := allPositions[edge.To]

		sourceIdx, okSource := routing.FindNearestNode(grid, graph, from.GetLon(), from.GetLat())
		targetIdx, okTarget := routing.FindNearestNode(grid, graph, to.GetLon(), to.GetLat())
		if !okSource || !okTarget {
			e.log.Warn("no graph nodes for topology edge",
				zap.Int("from", edge.From), zap.Int("to", edge.To))
			continue
		}

		search := routing.NewAstarSearch(graph, grid)
		path, found := search.ShortestPath(sourceIdx, targetIdx)
		algorithmIterations++

		if !found {
			e.log.Warn("no path found between assets",
				zap.Int("from", edge.From), zap.Int("to", edge.To))
			continue
		}

		coords := extractPathCoordinates(grid, path)
		coords = geometry.SimplifyPath(coords, pkg.DEFAULT_SIMPLIFY_TOLERANCE_M)

		metrics := geometry.CalculateSegmentMetrics(coords)

		segments = append(segments, da.NewRoadSegment(segmentID, edge.From, edge.To,
			coords, metrics.LengthM, metrics.AvgGrade, metrics.MaxGrade))

		totalLength += metrics.LengthM
		allGrades = append(allGrades, metrics.AvgGrade)
		if metrics.MaxGrade > 0 {
			allGrades = append(allGrades, metrics.MaxGrade)
		}

		connectedAssets[edge.From] = struct{}{}
		connectedAssets[edge.To] = struct{}{}

		centerline2D := make([][]float64, 0, len(coords))
		for _, c := range coords {
			centerline2D = append(centerline2D, []float64{c[0], c[1]})
		}
		centerlines = append(centerlines, centerline2D)

		if corridor, ok := geometry.BuildCorridor(coords, params.RoadWidth); ok {
			corridors = append(corridors, corridor)
		}

		segmentID++
	}

	// step 6: aggregate
	progress.update(6, "Compiling results")

	mergedCorridors := geometry.MergeCorridors(corridors)

	avgGradeOverall := 0.0
	maxGradeOverall := 0.0
	if len(allGrades) > 0 {
		sum := 0.0
		for _, g := range allGrades {
			sum += g
			if g > maxGradeOverall {
				maxGradeOverall = g
			}
		}
		avgGradeOverall = sum / float64(len(allGrades))
	}

	// entry point does not count toward connectivity
	numConnected := 0
	for idx := range connectedAssets {
		if idx < len(params.AssetPositions) {
			numConnected++
		}
	}
	connectivityRate := float64(numConnected) / float64(len(params.AssetPositions)) * 100.0

	return da.RoadNetworkResult{
		Success:         true,
		RoadCenterlines: centerlines,
		RoadPolygons:    mergedCorridors,
		RoadDetails: da.RoadDetails{
			Segments:      segments,
			Intersections: []da.Intersection{},
		},
		TotalRoadLength:      totalLength,
		TotalSegments:        len(segments),
		TotalIntersections:   0,
		AvgGrade:             avgGradeOverall,
		MaxGradeActual:       maxGradeOverall,
		GradeCompliant:       maxGradeOverall <= params.MaxGrade,
		AssetsConnected:      numConnected,
		ConnectivityRate:     connectivityRate,
		ProcessingTime:       time.Since(startTime).Seconds(),
		AlgorithmIterations:  algorithmIterations,
		PathfindingAlgorithm: pkg.PATHFINDING_ALGORITHM,
	}
}

func extractPathCoordinates(grid *da.Grid, path []da.Index) [][]float64 {
	coords := make([][]float64, 0, len(path))
	for _, idx := range path {
		node := grid.At(idx)
		elev, _ := node.GetElevation()
		coords = append(coords, []float64{node.GetLon(), node.GetLat(), elev})
	}
	return coords
}
