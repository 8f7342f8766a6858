package lib

import (
	"github.com/cockroachdb/errors"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"
)

// ToGeom materializes a parsed geometry as a go-geom value. 2D geometries get
// the XY layout and 3D ones XYZ. A Triangle becomes a *geom.Polygon since
// go-geom has no triangle type.
func ToGeom(g Geometry) (geom.T, error) {
	layout := geomLayout(g.Dimension())

	switch typed := g.(type) {
	case Point:
		if typed.Empty {
			return geom.NewPointEmpty(layout), nil
		}
		return geom.NewPointFlat(layout, flatCoords(layout, []Coordinate{typed.Coord})), nil
	case LineString:
		return geom.NewLineStringFlat(layout, flatCoords(layout, typed.Coords)), nil
	case Polygon:
		flat, ends := flatRings(layout, typed.Rings)
		return geom.NewPolygonFlat(layout, flat, ends), nil
	case Triangle:
		flat, ends := flatRings(layout, typed.Rings)
		return geom.NewPolygonFlat(layout, flat, ends), nil
	case MultiPoint:
		return geom.NewMultiPointFlat(layout, flatCoords(layout, typed.Points)), nil
	case MultiLineString:
		rings := make([]Ring, 0, len(typed.Lines))
		for _, line := range typed.Lines {
			rings = append(rings, Ring(line))
		}
		flat, ends := flatRings(layout, rings)
		return geom.NewMultiLineStringFlat(layout, flat, ends), nil
	case MultiPolygon:
		flat := []float64{}
		endss := [][]int{}
		for _, rings := range typed.Polygons {
			var ends []int
			flat, ends = appendFlatRings(flat, layout, rings)
			endss = append(endss, ends)
		}
		return geom.NewMultiPolygonFlat(layout, flat, endss), nil
	case GeometryCollection:
		collection := geom.NewGeometryCollection()
		for i, member := range typed.Members {
			t, err := ToGeom(member)
			if err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
			if err := collection.Push(t); err != nil {
				return nil, errors.Wrapf(err, "collection member %d", i)
			}
		}
		return collection, nil
	default:
		return nil, errors.AssertionFailedf("cannot materialize %T", g)
	}
}

// MarshalGeoJSON encodes a parsed geometry as a GeoJSON geometry object.
func MarshalGeoJSON(g Geometry) ([]byte, error) {
	t, err := ToGeom(g)
	if err != nil {
		return nil, err
	}
	b, err := geojson.Marshal(t)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s as GeoJSON", g.Type())
	}
	return b, nil
}

func geomLayout(dim Dimension) geom.Layout {
	if dim == DimensionThreeD {
		return geom.XYZ
	}
	return geom.XY
}

func flatCoords(layout geom.Layout, coords []Coordinate) []float64 {
	return appendFlatCoords(make([]float64, 0, len(coords)*layout.Stride()), layout, coords)
}

func appendFlatCoords(flat []float64, layout geom.Layout, coords []Coordinate) []float64 {
	for _, c := range coords {
		flat = append(flat, c.X, c.Y)
		if layout == geom.XYZ {
			flat = append(flat, c.Z)
		}
	}
	return flat
}

// flatRings flattens rings go-geom style: one coordinate slice plus the end
// offset of every ring within it.
func flatRings(layout geom.Layout, rings []Ring) ([]float64, []int) {
	return appendFlatRings([]float64{}, layout, rings)
}

func appendFlatRings(flat []float64, layout geom.Layout, rings []Ring) ([]float64, []int) {
	ends := make([]int, 0, len(rings))
	for _, ring := range rings {
		flat = appendFlatCoords(flat, layout, ring)
		ends = append(ends, len(flat))
	}
	return flat, ends
}
