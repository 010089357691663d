package terrain

import (
	"go.uber.org/zap"

	"github.com/sitelayout/planner/pkg/datastructure"
)

// SampleElevations attaches an elevation to every grid node.
//
// No DEM path: flat-terrain fallback, every node gets elevation 0 (non-fatal,
// logged). DEM unreadable: same fallback. A nodata sample leaves that node
// unsampled, which keeps it out of the cost graph.
func SampleElevations(grid *datastructure.Grid, demPath string, log *zap.Logger) {
	if demPath == "" {
		log.Warn("no DEM provided, using flat terrain (elevation=0)")
		flatFallback(grid)
		return
	}

	raster, err := OpenAsciiGrid(demPath)
	if err != nil {
		log.Error("error loading elevation data", zap.String("dem", demPath), zap.Error(err))
		flatFallback(grid)
		return
	}

	SampleElevationsFromRaster(grid, raster)
}

// SampleElevationsFromRaster samples an already opened raster backend.
func SampleElevationsFromRaster(grid *datastructure.Grid, raster Raster) {
	grid.ForNodes(func(_ datastructure.Index, node *datastructure.GridNode) {
		if elev, ok := raster.Sample(node.GetLon(), node.GetLat()); ok {
			node.SetElevation(elev)
		}
	})
}

func flatFallback(grid *datastructure.Grid) {
	grid.ForNodes(func(_ datastructure.Index, node *datastructure.GridNode) {
		node.SetElevation(0)
	})
}
