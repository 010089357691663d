package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/spf13/viper"
	"github.com/twpayne/go-polyline"
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg/costfunction"
	da "github.com/sitelayout/planner/pkg/datastructure"
	"github.com/sitelayout/planner/pkg/engine"
	"github.com/sitelayout/planner/pkg/geo"
	"github.com/sitelayout/planner/pkg/logger"
	"github.com/sitelayout/planner/pkg/util"
)

var (
	configPath = flag.String("config", "./data", "directory containing config.yaml (scenario definition)")
	outputPath = flag.String("output", "", "write the result JSON to this file instead of stdout")
)

// segmentOutput is a road segment plus its Google-encoded centerline, for
// operators inspecting results without a geometry viewer.
type segmentOutput struct {
	da.RoadSegment
	EncodedPolyline string `json:"encoded_polyline"`
}

type plannerOutput struct {
	Result   da.RoadNetworkResult `json:"result"`
	Segments []segmentOutput      `json:"segments"`
}

func main() {
	flag.Parse()

	log, err := logger.New()
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	if err := util.ReadConfig(*configPath); err != nil {
		log.Fatal("reading config", zap.Error(err))
	}

	params, err := paramsFromConfig(log)
	if err != nil {
		log.Fatal("invalid scenario config", zap.Error(err))
	}

	roadEngine := engine.NewRoadNetworkEngine(log)
	result := roadEngine.GenerateRoadNetwork(params, engine.NoopReporter{})

	if !result.Success {
		log.Warn("road network generation failed", zap.String("error", result.ErrorMessage))
	} else {
		log.Info("road network generated",
			zap.Int("segments", result.TotalSegments),
			zap.Float64("total_length_m", result.TotalRoadLength),
			zap.Float64("connectivity_rate", result.ConnectivityRate),
			zap.Float64("processing_time_s", result.ProcessingTime))
	}

	out := plannerOutput{
		Result:   result,
		Segments: encodeSegments(result.RoadDetails.Segments),
	}

	encoded, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		log.Fatal("marshalling result", zap.Error(err))
	}

	if *outputPath == "" {
		fmt.Println(string(encoded))
		return
	}
	if err := os.WriteFile(*outputPath, encoded, 0o644); err != nil {
		log.Fatal("writing output", zap.String("path", *outputPath), zap.Error(err))
	}
	log.Info("result written", zap.String("path", *outputPath))
}

func encodeSegments(segments []da.RoadSegment) []segmentOutput {
	out := make([]segmentOutput, 0, len(segments))
	for _, seg := range segments {
		latLngs := make([][]float64, 0, len(seg.Coordinates))
		for _, c := range seg.Coordinates {
			latLngs = append(latLngs, []float64{c[1], c[0]})
		}
		out = append(out, segmentOutput{
			RoadSegment:     seg,
			EncodedPolyline: string(polyline.EncodeCoords(latLngs)),
		})
	}
	return out
}

func paramsFromConfig(log *zap.Logger) (engine.GenerateParams, error) {
	var params engine.GenerateParams

	assets, err := coordinatesFromConfig(viper.Get("assets"))
	if err != nil {
		return params, fmt.Errorf("assets: %w", err)
	}
	params.AssetPositions = assets

	if viper.IsSet("entry_point") {
		entries, err := coordinatesFromConfig([]interface{}{viper.Get("entry_point")})
		if err != nil {
			return params, fmt.Errorf("entry_point: %w", err)
		}
		params.EntryPoint = &entries[0]
	}

	viper.SetDefault("road_width", 6.0)
	viper.SetDefault("max_grade", 12.0)
	viper.SetDefault("min_curve_radius", 15.0)
	viper.SetDefault("grid_resolution", 30.0)
	viper.SetDefault("exclusion_buffer", 0.0)

	params.RoadWidth = viper.GetFloat64("road_width")
	params.MaxGrade = viper.GetFloat64("max_grade")
	params.MinCurveRadius = viper.GetFloat64("min_curve_radius")
	params.GridResolution = viper.GetFloat64("grid_resolution")
	params.ExclusionBuffer = viper.GetFloat64("exclusion_buffer")
	params.DemPath = viper.GetString("dem_path")
	params.AdvancedSettings = viper.GetStringMap("advanced_settings")

	criteria, err := costfunction.ParseOptimizationCriteria(viper.GetString("optimization_criteria"))
	if err != nil {
		return params, err
	}
	params.OptimizationCriteria = criteria

	if exclusionFile := viper.GetString("exclusion_geojson"); exclusionFile != "" {
		zones, err := loadExclusionZones(exclusionFile)
		if err != nil {
			return params, fmt.Errorf("exclusion_geojson: %w", err)
		}
		params.ExclusionZones = zones
		log.Info("loaded exclusion zones", zap.Int("count", len(zones)),
			zap.String("path", exclusionFile))
	}

	return params, nil
}

// coordinatesFromConfig decodes a YAML list of [lon, lat] pairs.
func coordinatesFromConfig(raw interface{}) ([]geo.Coordinate, error) {
	list, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("expected a list of [lon, lat] pairs, got %T", raw)
	}

	coords := make([]geo.Coordinate, 0, len(list))
	for i, item := range list {
		pair, ok := item.([]interface{})
		if !ok || len(pair) != 2 {
			return nil, fmt.Errorf("entry %d: expected [lon, lat] pair", i)
		}
		lon, okLon := toFloat(pair[0])
		lat, okLat := toFloat(pair[1])
		if !okLon || !okLat {
			return nil, fmt.Errorf("entry %d: coordinates must be numeric", i)
		}
		coords = append(coords, geo.NewCoordinate(lat, lon))
	}
	return coords, nil
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func loadExclusionZones(path string) ([]orb.Geometry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, err
	}

	zones := make([]orb.Geometry, 0, len(fc.Features))
	for _, feature := range fc.Features {
		zones = append(zones, feature.Geometry)
	}
	return zones, nil
}
