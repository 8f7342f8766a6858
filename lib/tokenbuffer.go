package lib

// tokenBuffer holds the complete output of the lexer. The whole document is
// lexed before parsing starts, so reads never block.
type tokenBuffer struct {
	tokens []token
	pos    int
}

func newTokenBuffer() *tokenBuffer {
	return &tokenBuffer{
		tokens: []token{},
		pos:    0,
	}
}

// Next returns the next token. Once the end token is reached it is returned
// again on every call with done set.
func (tb *tokenBuffer) Next() (tok token, done bool) {
	tok, done = tb.Peek()
	if !done {
		tb.pos++
	}
	return tok, done
}

func (tb *tokenBuffer) Peek() (token, bool) {
	if tb.pos >= len(tb.tokens) {
		return token{tokType: tokenTypeEnd, location: tb.endLocation()}, true
	}
	tok := tb.tokens[tb.pos]
	return tok, tok.tokType == tokenTypeEnd
}

func (tb *tokenBuffer) Write(tok token) {
	tb.tokens = append(tb.tokens, tok)
}

func (tb *tokenBuffer) endLocation() charLocation {
	if len(tb.tokens) == 0 {
		return charLocation{line: 1, col: 1}
	}
	return tb.tokens[len(tb.tokens)-1].location
}
