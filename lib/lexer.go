package lib

import (
	"strconv"
	"strings"
	"unicode"
)

type charInfo struct {
	ch       rune
	location charLocation
}

// lex never fails. Anything it cannot classify is emitted as an invalid token
// and left for the parser to reject. The last token is always tokenTypeEnd.
func lex(wkt string, emit func(token)) {
	l := newLexer(wkt, emit)
	l.scan()
}

type lexer struct {
	text             []rune
	length           int
	currentCharIndex int
	currentLocation  charLocation
	emitCallback     func(token)
}

func newLexer(wkt string, emit func(token)) *lexer {
	text := []rune(wkt)
	return &lexer{
		text:             text,
		length:           len(text),
		currentCharIndex: 0,
		currentLocation:  charLocation{line: 1, col: 1, offset: 0},
		emitCallback:     emit,
	}
}

func (l *lexer) peek(offset int) (rune, bool) {
	i := l.currentCharIndex + offset
	if i >= l.length {
		return 0, false
	}
	return l.text[i], true
}

func (l *lexer) advance() (charInfo, bool) {
	if l.currentCharIndex >= l.length {
		return charInfo{}, false
	}
	info := charInfo{ch: l.text[l.currentCharIndex], location: l.currentLocation}
	l.currentCharIndex++
	l.currentLocation.offset++
	if info.ch == '\n' {
		l.currentLocation.line++
		l.currentLocation.col = 1
	} else {
		l.currentLocation.col++
	}
	return info, true
}

func (l *lexer) scan() {
	for l.next() {
	}
	l.emitCallback(token{tokType: tokenTypeEnd, location: l.currentLocation})
}

func (l *lexer) next() bool {
	ch, ok := l.peek(0)
	if !ok {
		return false
	}

	switch {
	case ch == '(':
		l.single(tokenTypeLParen)
	case ch == ')':
		l.single(tokenTypeRParen)
	case ch == ',':
		l.single(tokenTypeComma)
	case ch == ';':
		l.single(tokenTypeSemicolon)
	case unicode.IsSpace(ch):
		l.eatWhitespace()
	case unicode.IsLetter(ch):
		l.scanWord()
	case isNumberStart(ch):
		l.scanNumber()
	default:
		l.single(tokenTypeInvalid)
	}

	return true
}

func (l *lexer) single(tokType tokenType) {
	info, _ := l.advance()
	l.emitCallback(token{tokType: tokType, value: []rune{info.ch}, location: info.location})
}

func (l *lexer) eatWhitespace() {
	for {
		ch, ok := l.peek(0)
		if !ok || !unicode.IsSpace(ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) scanWord() {
	start := l.currentCharIndex
	startLoc := l.currentLocation

	for {
		ch, ok := l.peek(0)
		if !ok || !unicode.IsLetter(ch) {
			break
		}
		_, _ = l.advance()
	}
	word := l.text[start:l.currentCharIndex]

	// LINESTRINGZ has to reach the parser exactly like LINESTRING Z does.
	baseLen, fused := splitFusedModifier(word)
	if !fused {
		l.emitCallback(token{tokType: tokenTypeWord, value: word, location: startLoc})
		return
	}

	l.emitCallback(token{tokType: tokenTypeWord, value: word[:baseLen], location: startLoc})
	modifierLoc := startLoc
	modifierLoc.col += baseLen
	modifierLoc.offset += baseLen
	l.emitCallback(token{tokType: tokenTypeWord, value: word[baseLen:], location: modifierLoc})
}

// splitFusedModifier reports whether word is a geometry keyword with a
// dimension modifier glued to its end, and if so how many runes belong to
// the keyword.
func splitFusedModifier(word []rune) (int, bool) {
	upper := strings.ToUpper(string(word))
	for _, suffix := range []string{"ZM", "MZ", "Z", "M"} {
		if !strings.HasSuffix(upper, suffix) {
			continue
		}
		if _, ok := geometryTypesByKeyword[strings.TrimSuffix(upper, suffix)]; ok {
			return len(word) - len(suffix), true
		}
	}
	return 0, false
}

func isNumberStart(ch rune) bool {
	return isDigit(ch) || ch == '-' || ch == '+' || ch == '.'
}

func isDigit(ch rune) bool {
	return ch >= '0' && ch <= '9'
}

func isSign(ch rune) bool {
	return ch == '-' || ch == '+'
}

func isNumberRune(ch rune) bool {
	return isNumberStart(ch) || unicode.IsLetter(ch)
}

func (l *lexer) eatNumberRunes() {
	for {
		ch, ok := l.peek(0)
		if !ok || !isNumberRune(ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) eatDigits() {
	for {
		ch, ok := l.peek(0)
		if !ok || !isDigit(ch) {
			return
		}
		_, _ = l.advance()
	}
}

func (l *lexer) scanNumber() {
	start := l.currentCharIndex
	startLoc := l.currentLocation

	if ch, _ := l.peek(0); isSign(ch) {
		_, _ = l.advance()
	}
	l.eatDigits()
	if ch, ok := l.peek(0); ok && ch == '.' {
		_, _ = l.advance()
		l.eatDigits()
	}
	if l.atExponent() {
		_, _ = l.advance()
		if ch, _ := l.peek(0); isSign(ch) {
			_, _ = l.advance()
		}
		l.eatDigits()
	}

	// 1.2.3 and 1-2 are one malformed literal, not two numbers.
	if ch, ok := l.peek(0); ok && isNumberRune(ch) {
		l.eatNumberRunes()
		l.emitCallback(token{tokType: tokenTypeInvalid, value: l.text[start:l.currentCharIndex], location: startLoc})
		return
	}

	value := l.text[start:l.currentCharIndex]
	number, err := strconv.ParseFloat(string(value), 64)
	if err != nil {
		// A lone sign, a lone dot or an out of range literal.
		l.emitCallback(token{tokType: tokenTypeInvalid, value: value, location: startLoc})
		return
	}
	l.emitCallback(token{tokType: tokenTypeNumber, value: value, number: number, location: startLoc})
}

// atExponent only treats e/E as part of the number when digits follow it.
func (l *lexer) atExponent() bool {
	ch, ok := l.peek(0)
	if !ok || (ch != 'e' && ch != 'E') {
		return false
	}
	next, ok := l.peek(1)
	if ok && isSign(next) {
		next, ok = l.peek(2)
	}
	return ok && isDigit(next)
}
