package terrain

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/sitelayout/planner/pkg/util"
)

// Raster is a read-only single-band elevation source sampled at arbitrary
// geographic coordinates. Sample reports false on out-of-coverage or nodata
// cells. Implementations must be safe for concurrent reads.
type Raster interface {
	Sample(lon, lat float64) (float64, bool)
}

// AsciiGridRaster reads an ESRI ASCII grid (.asc) DEM fully into memory.
// Values are stored row-major, first row = northernmost.
type AsciiGridRaster struct {
	ncols     int
	nrows     int
	xllcorner float64
	yllcorner float64
	cellsize  float64
	nodata    float64
	hasNodata bool

	values []float64
}

// OpenAsciiGrid parses the grid at path.
func OpenAsciiGrid(path string) (*AsciiGridRaster, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, util.WrapErrorf(err, util.ErrNotFound, "open dem %s", path)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 1024*1024), 1024*1024)

	r := &AsciiGridRaster{}

	// header: key value pairs until the first purely numeric row
	var pending []string
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) == 2 {
			if err := r.setHeaderField(fields[0], fields[1]); err == nil {
				continue
			}
		}
		pending = fields
		break
	}

	if r.ncols <= 0 || r.nrows <= 0 || r.cellsize <= 0 {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"invalid ascii grid header in %s", path)
	}

	r.values = make([]float64, 0, r.ncols*r.nrows)
	appendRow := func(fields []string) error {
		for _, fv := range fields {
			v, err := strconv.ParseFloat(fv, 64)
			if err != nil {
				return util.WrapErrorf(err, util.ErrBadParamInput,
					"invalid cell value %q in %s", fv, path)
			}
			r.values = append(r.values, v)
		}
		return nil
	}

	if pending != nil {
		if err := appendRow(pending); err != nil {
			return nil, err
		}
	}
	for sc.Scan() {
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		if err := appendRow(fields); err != nil {
			return nil, err
		}
	}
	if err := sc.Err(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrInternalServerError, "read dem %s", path)
	}

	if len(r.values) != r.ncols*r.nrows {
		return nil, util.WrapErrorf(nil, util.ErrBadParamInput,
			"ascii grid %s has %d values, want %d", path, len(r.values), r.ncols*r.nrows)
	}

	return r, nil
}

func (r *AsciiGridRaster) setHeaderField(key, value string) error {
	switch strings.ToLower(key) {
	case "ncols":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		r.ncols = n
	case "nrows":
		n, err := strconv.Atoi(value)
		if err != nil {
			return err
		}
		r.nrows = n
	case "xllcorner":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		r.xllcorner = v
	case "yllcorner":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		r.yllcorner = v
	case "cellsize":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		r.cellsize = v
	case "nodata_value":
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return err
		}
		r.nodata = v
		r.hasNodata = true
	default:
		return fmt.Errorf("unknown header field %q", key)
	}
	return nil
}

// Sample the cell containing (lon, lat).
func (r *AsciiGridRaster) Sample(lon, lat float64) (float64, bool) {
	col := int(math.Floor((lon - r.xllcorner) / r.cellsize))
	rowFromBottom := int(math.Floor((lat - r.yllcorner) / r.cellsize))

	if col < 0 || col >= r.ncols || rowFromBottom < 0 || rowFromBottom >= r.nrows {
		return 0, false
	}

	row := r.nrows - 1 - rowFromBottom
	v := r.values[row*r.ncols+col]

	if math.IsNaN(v) || (r.hasNodata && v == r.nodata) {
		return 0, false
	}
	return v, true
}
