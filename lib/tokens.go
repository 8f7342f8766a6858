package lib

type tokenType int

const (
	tokenTypeWord tokenType = iota
	tokenTypeNumber
	tokenTypeLParen
	tokenTypeRParen
	tokenTypeComma
	tokenTypeSemicolon
	tokenTypeInvalid
	tokenTypeEnd
)

type charLocation struct {
	line   int
	col    int
	offset int
}

type token struct {
	tokType  tokenType
	value    []rune
	number   float64
	location charLocation
}
