package lib

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

// DefaultMaxDepth is how deeply GEOMETRYCOLLECTIONs may nest unless Options
// says otherwise.
const DefaultMaxDepth = 64

type Options struct {
	// MaxDepth is the deepest GEOMETRYCOLLECTION nesting accepted. Zero means
	// DefaultMaxDepth.
	MaxDepth int
}

// Parse parses a WKT document holding zero or more geometries, optionally
// separated by ';' or ','. Any syntax problem fails the whole document with
// a *ParseError; there is never a partial result.
func Parse(wkt string) ([]Geometry, error) {
	return ParseWithOptions(wkt, Options{})
}

func ParseWithOptions(wkt string, opts Options) ([]Geometry, error) {
	buffer := newTokenBuffer()
	lex(wkt, buffer.Write)

	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}

	p := parser{reader: buffer, source: wkt, maxDepth: maxDepth}
	return p.scan()
}

type parser struct {
	reader   tokenReader
	source   string
	depth    int
	maxDepth int
}

func (p *parser) scan() ([]Geometry, error) {
	geometries := []Geometry{}
	allowSeparator := false

	for {
		tok, done := p.reader.Peek()
		if done {
			break
		}

		if allowSeparator && isSeparator(tok) {
			p.advance()
			allowSeparator = false
			continue
		}

		g, err := p.scanGeometry()
		if err != nil {
			return nil, err
		}
		geometries = append(geometries, g)
		allowSeparator = true
	}

	return geometries, nil
}

func isSeparator(tok token) bool {
	return tok.tokType == tokenTypeSemicolon || tok.tokType == tokenTypeComma
}

// scanGeometry reads keyword, optional modifier and body. Collections call
// back into it for each member.
func (p *parser) scanGeometry() (Geometry, error) {
	tok, _ := p.reader.Next()
	if tok.tokType != tokenTypeWord {
		return nil, p.errorf(tok, "expected geometry type but got %s", tokenValueString(tok))
	}

	geomType, ok := geometryTypesByKeyword[strings.ToUpper(string(tok.value))]
	if !ok {
		return nil, errors.WithHint(
			p.errorf(tok, "unknown geometry type %q", string(tok.value)),
			"supported geometry types are "+supportedGeometryTypes())
	}

	layout, err := p.scanDimension()
	if err != nil {
		return nil, err
	}

	if p.checkWord("EMPTY") {
		return emptyGeometry(geomType, layout.dimension())
	}

	return p.scanGeometryText(geomType, layout)
}

func supportedGeometryTypes() string {
	names := []string{}
	for t := GeometryTypePoint; t <= GeometryTypeGeometryCollection; t++ {
		names = append(names, t.String())
	}
	return strings.Join(names, ", ")
}

// scanDimension consumes the modifier words after a geometry keyword: none,
// Z, M, ZM, MZ, or Z and M written apart.
func (p *parser) scanDimension() (ordinateLayout, error) {
	layout := ordinateLayout{}
	for {
		tok, _ := p.reader.Peek()
		if tok.tokType != tokenTypeWord {
			return layout, nil
		}

		modifier, ok := modifierLayout(string(tok.value))
		if !ok {
			return layout, nil
		}
		if (modifier.hasZ && layout.hasZ) || (modifier.hasM && layout.hasM) {
			return ordinateLayout{}, p.errorf(tok, "duplicate dimension modifier %q", string(tok.value))
		}

		p.advance()
		layout.hasZ = layout.hasZ || modifier.hasZ
		layout.hasM = layout.hasM || modifier.hasM
	}
}

func emptyGeometry(geomType GeometryType, dim Dimension) (Geometry, error) {
	switch geomType {
	case GeometryTypePoint:
		return Point{Dim: dim, Empty: true}, nil
	case GeometryTypeLineString:
		return LineString{Dim: dim, Coords: []Coordinate{}}, nil
	case GeometryTypePolygon:
		return Polygon{Dim: dim, Rings: []Ring{}}, nil
	case GeometryTypeTriangle:
		return Triangle{Dim: dim, Rings: []Ring{}}, nil
	case GeometryTypeMultiPoint:
		return MultiPoint{Dim: dim, Points: []Coordinate{}}, nil
	case GeometryTypeMultiLineString:
		return MultiLineString{Dim: dim, Lines: [][]Coordinate{}}, nil
	case GeometryTypeMultiPolygon:
		return MultiPolygon{Dim: dim, Polygons: [][]Ring{}}, nil
	case GeometryTypeGeometryCollection:
		return GeometryCollection{Dim: dim, Members: []Geometry{}}, nil
	default:
		return nil, errors.AssertionFailedf("no empty form for geometry type %d", geomType)
	}
}

func (p *parser) scanGeometryText(geomType GeometryType, layout ordinateLayout) (Geometry, error) {
	switch geomType {
	case GeometryTypePoint:
		return p.scanPoint(layout)
	case GeometryTypeLineString:
		return p.scanLineString(layout)
	case GeometryTypePolygon:
		rings, err := p.scanRings(layout)
		if err != nil {
			return nil, err
		}
		return Polygon{Dim: layout.dimension(), Rings: rings}, nil
	case GeometryTypeTriangle:
		rings, err := p.scanRings(layout)
		if err != nil {
			return nil, err
		}
		return Triangle{Dim: layout.dimension(), Rings: rings}, nil
	case GeometryTypeMultiPoint:
		return p.scanMultiPoint(layout)
	case GeometryTypeMultiLineString:
		return p.scanMultiLineString(layout)
	case GeometryTypeMultiPolygon:
		return p.scanMultiPolygon(layout)
	case GeometryTypeGeometryCollection:
		return p.scanGeometryCollection(layout)
	default:
		return nil, errors.AssertionFailedf("no production for geometry type %d", geomType)
	}
}

func (p *parser) scanPoint(layout ordinateLayout) (Geometry, error) {
	if _, err := p.requireToken(tokenTypeLParen); err != nil {
		return nil, err
	}
	coord, err := p.scanCoordinate(layout)
	if err != nil {
		return nil, err
	}
	if _, err := p.requireToken(tokenTypeRParen); err != nil {
		return nil, err
	}
	return Point{Dim: layout.dimension(), Coord: coord}, nil
}

func (p *parser) scanLineString(layout ordinateLayout) (Geometry, error) {
	if _, err := p.requireToken(tokenTypeLParen); err != nil {
		return nil, err
	}

	// LINESTRING ((1 2, 3 4)) is accepted as well as LINESTRING (1 2, 3 4).
	if _, wrapped := p.peekToken(tokenTypeLParen); wrapped {
		coords, err := p.scanCoordinateList(layout)
		if err != nil {
			return nil, err
		}
		if _, err := p.requireToken(tokenTypeRParen); err != nil {
			return nil, err
		}
		return LineString{Dim: layout.dimension(), Coords: coords}, nil
	}

	coords := []Coordinate{}
	err := p.scanListTail(func() error {
		coord, err := p.scanCoordinate(layout)
		if err != nil {
			return err
		}
		coords = append(coords, coord)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return LineString{Dim: layout.dimension(), Coords: coords}, nil
}

// scanMultiPoint accepts both MULTIPOINT (1 2, 3 4) and
// MULTIPOINT ((1 2), (3 4)), mixed freely.
func (p *parser) scanMultiPoint(layout ordinateLayout) (Geometry, error) {
	points := []Coordinate{}
	err := p.scanList(func() error {
		parenthesized := p.checkToken(tokenTypeLParen)
		coord, err := p.scanCoordinate(layout)
		if err != nil {
			return err
		}
		if parenthesized {
			if _, err := p.requireToken(tokenTypeRParen); err != nil {
				return err
			}
		}
		points = append(points, coord)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MultiPoint{Dim: layout.dimension(), Points: points}, nil
}

func (p *parser) scanMultiLineString(layout ordinateLayout) (Geometry, error) {
	lines := [][]Coordinate{}
	err := p.scanList(func() error {
		coords, err := p.scanCoordinateList(layout)
		if err != nil {
			return err
		}
		lines = append(lines, coords)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MultiLineString{Dim: layout.dimension(), Lines: lines}, nil
}

func (p *parser) scanMultiPolygon(layout ordinateLayout) (Geometry, error) {
	polygons := [][]Ring{}
	err := p.scanList(func() error {
		rings, err := p.scanRings(layout)
		if err != nil {
			return err
		}
		polygons = append(polygons, rings)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return MultiPolygon{Dim: layout.dimension(), Polygons: polygons}, nil
}

func (p *parser) scanGeometryCollection(layout ordinateLayout) (Geometry, error) {
	if p.depth >= p.maxDepth {
		tok, _ := p.reader.Peek()
		return nil, p.errorf(tok, "geometry collections nested deeper than %d", p.maxDepth)
	}
	p.depth++
	defer func() { p.depth-- }()

	members := []Geometry{}
	err := p.scanList(func() error {
		g, err := p.scanGeometry()
		if err != nil {
			return err
		}
		members = append(members, g)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return GeometryCollection{Dim: layout.dimension(), Members: members}, nil
}

// scanRings reads a polygon body: a list of rings, outer boundary first.
func (p *parser) scanRings(layout ordinateLayout) ([]Ring, error) {
	rings := []Ring{}
	err := p.scanList(func() error {
		coords, err := p.scanCoordinateList(layout)
		if err != nil {
			return err
		}
		rings = append(rings, Ring(coords))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rings, nil
}

func (p *parser) scanCoordinateList(layout ordinateLayout) ([]Coordinate, error) {
	coords := []Coordinate{}
	err := p.scanList(func() error {
		coord, err := p.scanCoordinate(layout)
		if err != nil {
			return err
		}
		coords = append(coords, coord)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return coords, nil
}

// scanCoordinate reads one whitespace separated tuple of numbers and checks
// it against the layout.
func (p *parser) scanCoordinate(layout ordinateLayout) (Coordinate, error) {
	first, _ := p.reader.Peek()

	ordinates := make([]float64, 0, 4)
	var tok token
	for {
		tok, _ = p.reader.Peek()
		if tok.tokType != tokenTypeNumber {
			break
		}
		p.advance()
		ordinates = append(ordinates, tok.number)
	}

	if len(ordinates) == 0 || tok.tokType == tokenTypeInvalid {
		return Coordinate{}, p.errorf(tok, "expected number but got %s", tokenValueString(tok))
	}

	coord, err := buildCoordinate(ordinates, layout)
	if err != nil {
		return Coordinate{}, errors.WithHint(
			p.errorf(first, "%s", err),
			fmt.Sprintf("a geometry with %s takes %d ordinates per coordinate", layout, layout.stride()))
	}
	return coord, nil
}

// scanList consumes '(' item {',' item} ')'.
func (p *parser) scanList(scanItem func() error) error {
	if _, err := p.requireToken(tokenTypeLParen); err != nil {
		return err
	}
	return p.scanListTail(scanItem)
}

// scanListTail is scanList once the opening parenthesis is consumed.
func (p *parser) scanListTail(scanItem func() error) error {
	for {
		if err := scanItem(); err != nil {
			return err
		}

		next, _ := p.reader.Next()
		switch next.tokType {
		case tokenTypeComma:
			continue
		case tokenTypeRParen:
			return nil
		default:
			return p.errorf(next, "expected ',' or ')' but got %s", tokenValueString(next))
		}
	}
}

func (p *parser) requireToken(tokType tokenType) (token, error) {
	next, _ := p.reader.Next()
	if next.tokType != tokType {
		return token{}, p.errorf(next,
			"expected %s but got %s",
			tokenValueString(token{tokType: tokType}),
			tokenValueString(next))
	}
	return next, nil
}

func (p *parser) advance() {
	_, _ = p.reader.Next()
}

func (p *parser) checkWord(word string) bool {
	next, done := p.reader.Peek()
	if done || next.tokType != tokenTypeWord || !strings.EqualFold(string(next.value), word) {
		return false
	}
	p.advance()
	return true
}

func (p *parser) peekToken(tokType tokenType) (token, bool) {
	next, _ := p.reader.Peek()
	if next.tokType != tokType {
		return token{}, false
	}
	return next, true
}

func (p *parser) checkToken(tokType tokenType) bool {
	_, found := p.peekToken(tokType)
	if found {
		p.advance()
	}
	return found
}

func (p *parser) errorf(tok token, format string, args ...interface{}) error {
	return newParseError(p.source, tok.location, fmt.Sprintf(format, args...))
}

func tokenValueString(tok token) string {
	switch tok.tokType {
	case tokenTypeWord:
		return fmt.Sprintf("keyword %s", string(tok.value))
	case tokenTypeNumber:
		return fmt.Sprintf("number %s", string(tok.value))
	case tokenTypeLParen:
		return "'('"
	case tokenTypeRParen:
		return "')'"
	case tokenTypeComma:
		return "','"
	case tokenTypeSemicolon:
		return "';'"
	case tokenTypeInvalid:
		return fmt.Sprintf("invalid token %q", string(tok.value))
	case tokenTypeEnd:
		return "end of input"
	default:
		return "?"
	}
}
