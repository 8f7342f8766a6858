package lib

// GeometryType enumerates every geometry the parser can produce.
type GeometryType int

const (
	GeometryTypePoint GeometryType = iota
	GeometryTypeLineString
	GeometryTypePolygon
	GeometryTypeTriangle
	GeometryTypeMultiPoint
	GeometryTypeMultiLineString
	GeometryTypeMultiPolygon
	GeometryTypeGeometryCollection
)

var geometryTypesByKeyword = map[string]GeometryType{
	"POINT":              GeometryTypePoint,
	"LINESTRING":         GeometryTypeLineString,
	"POLYGON":            GeometryTypePolygon,
	"TRIANGLE":           GeometryTypeTriangle,
	"MULTIPOINT":         GeometryTypeMultiPoint,
	"MULTILINESTRING":    GeometryTypeMultiLineString,
	"MULTIPOLYGON":       GeometryTypeMultiPolygon,
	"GEOMETRYCOLLECTION": GeometryTypeGeometryCollection,
}

// String returns the WKT keyword of the type.
func (t GeometryType) String() string {
	switch t {
	case GeometryTypePoint:
		return "POINT"
	case GeometryTypeLineString:
		return "LINESTRING"
	case GeometryTypePolygon:
		return "POLYGON"
	case GeometryTypeTriangle:
		return "TRIANGLE"
	case GeometryTypeMultiPoint:
		return "MULTIPOINT"
	case GeometryTypeMultiLineString:
		return "MULTILINESTRING"
	case GeometryTypeMultiPolygon:
		return "MULTIPOLYGON"
	case GeometryTypeGeometryCollection:
		return "GEOMETRYCOLLECTION"
	default:
		return "UNKNOWN"
	}
}

// Geometry is one parsed WKT geometry. The set of implementations is closed.
type Geometry interface {
	Type() GeometryType
	Dimension() Dimension
	// Coordinates is a flat view of the coordinates at the shallowest level
	// that makes sense for the type. Structural access goes through the
	// concrete type's fields. The returned slice is never shared with the
	// geometry.
	Coordinates() []Coordinate
	isGeometry()
}

func (p Point) isGeometry()              {}
func (l LineString) isGeometry()         {}
func (p Polygon) isGeometry()            {}
func (t Triangle) isGeometry()           {}
func (m MultiPoint) isGeometry()         {}
func (m MultiLineString) isGeometry()    {}
func (m MultiPolygon) isGeometry()       {}
func (c GeometryCollection) isGeometry() {}

// Ring is one boundary of a polygon. The first ring of a polygon is the
// outer boundary and the rest are holes. Closure is not checked.
type Ring []Coordinate

type Point struct {
	Dim   Dimension
	Coord Coordinate
	Empty bool
}

type LineString struct {
	Dim    Dimension
	Coords []Coordinate
}

type Polygon struct {
	Dim   Dimension
	Rings []Ring
}

// Triangle has the same structure as Polygon but is kept apart because it
// is materialized differently.
type Triangle struct {
	Dim   Dimension
	Rings []Ring
}

type MultiPoint struct {
	Dim    Dimension
	Points []Coordinate
}

type MultiLineString struct {
	Dim   Dimension
	Lines [][]Coordinate
}

type MultiPolygon struct {
	Dim      Dimension
	Polygons [][]Ring
}

// GeometryCollection members each carry their own dimension.
type GeometryCollection struct {
	Dim     Dimension
	Members []Geometry
}

func (p Point) Type() GeometryType              { return GeometryTypePoint }
func (l LineString) Type() GeometryType         { return GeometryTypeLineString }
func (p Polygon) Type() GeometryType            { return GeometryTypePolygon }
func (t Triangle) Type() GeometryType           { return GeometryTypeTriangle }
func (m MultiPoint) Type() GeometryType         { return GeometryTypeMultiPoint }
func (m MultiLineString) Type() GeometryType    { return GeometryTypeMultiLineString }
func (m MultiPolygon) Type() GeometryType       { return GeometryTypeMultiPolygon }
func (c GeometryCollection) Type() GeometryType { return GeometryTypeGeometryCollection }

func (p Point) Dimension() Dimension              { return p.Dim }
func (l LineString) Dimension() Dimension         { return l.Dim }
func (p Polygon) Dimension() Dimension            { return p.Dim }
func (t Triangle) Dimension() Dimension           { return t.Dim }
func (m MultiPoint) Dimension() Dimension         { return m.Dim }
func (m MultiLineString) Dimension() Dimension    { return m.Dim }
func (m MultiPolygon) Dimension() Dimension       { return m.Dim }
func (c GeometryCollection) Dimension() Dimension { return c.Dim }

func (p Point) Coordinates() []Coordinate {
	if p.Empty {
		return []Coordinate{}
	}
	return []Coordinate{p.Coord}
}

func (l LineString) Coordinates() []Coordinate {
	return append([]Coordinate{}, l.Coords...)
}

func (p Polygon) Coordinates() []Coordinate {
	return outerRing(p.Rings)
}

func (t Triangle) Coordinates() []Coordinate {
	return outerRing(t.Rings)
}

func (m MultiPoint) Coordinates() []Coordinate {
	return append([]Coordinate{}, m.Points...)
}

func (m MultiLineString) Coordinates() []Coordinate {
	coords := []Coordinate{}
	for _, line := range m.Lines {
		coords = append(coords, line...)
	}
	return coords
}

func (m MultiPolygon) Coordinates() []Coordinate {
	coords := []Coordinate{}
	for _, rings := range m.Polygons {
		coords = append(coords, outerRing(rings)...)
	}
	return coords
}

func (c GeometryCollection) Coordinates() []Coordinate {
	coords := []Coordinate{}
	for _, member := range c.Members {
		coords = append(coords, member.Coordinates()...)
	}
	return coords
}

func outerRing(rings []Ring) []Coordinate {
	if len(rings) == 0 {
		return []Coordinate{}
	}
	return append([]Coordinate{}, rings[0]...)
}
