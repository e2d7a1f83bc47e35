package toml

import (
	"github.com/doctree-format/doctree/ir"
)

// value parses one value.  The caller has skipped leading whitespace.
func (p *parser) value() (*ir.Value, error) {
	if p.eof() {
		return nil, p.errf(ErrValue, "unexpected end of input")
	}
	switch p.peek() {
	case '"':
		if p.peekAt(1) == '"' && p.peekAt(2) == '"' {
			s, err := p.multilineBasicString()
			if err != nil {
				return nil, err
			}
			return ir.FromString(s), nil
		}
		s, err := p.basicString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case '\'':
		if p.peekAt(1) == '\'' && p.peekAt(2) == '\'' {
			s, err := p.multilineLiteralString()
			if err != nil {
				return nil, err
			}
			return ir.FromString(s), nil
		}
		s, err := p.literalString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case '[':
		return p.array()
	case '{':
		return p.inlineTable()
	}
	return p.scalar()
}

// array parses [ v, v, ... ]; newlines and comments are allowed inside.
func (p *parser) array() (*ir.Value, error) {
	p.next() // '['
	arr := ir.Array()
	p.state[arr] = inlineValue
	for {
		p.skipBlank()
		if p.eof() {
			return nil, p.errf(ErrUnterminated, "array")
		}
		if p.peek() == ']' {
			p.next()
			return arr, nil
		}
		v, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Append(v)
		p.skipBlank()
		if p.eof() {
			return nil, p.errf(ErrUnterminated, "array")
		}
		switch p.peek() {
		case ',':
			p.next()
		case ']':
			p.next()
			return arr, nil
		default:
			return nil, p.errf(ErrSyntax, "expected , or ] in array, got %q", p.peek())
		}
	}
}

// inlineTable parses { k = v, ... }; newlines are not allowed.
func (p *parser) inlineTable() (*ir.Value, error) {
	p.next() // '{'
	tbl := ir.Table()
	p.state[tbl] = inlineValue
	p.skipWS()
	if p.eof() {
		return nil, p.errf(ErrUnterminated, "inline table")
	}
	if p.peek() == '}' {
		p.next()
		return tbl, nil
	}
	for {
		if err := p.keyval(tbl); err != nil {
			return nil, err
		}
		p.skipWS()
		if p.eof() {
			return nil, p.errf(ErrUnterminated, "inline table")
		}
		switch p.peek() {
		case ',':
			p.next()
			p.skipWS()
		case '}':
			p.next()
			return tbl, nil
		default:
			return nil, p.errf(ErrSyntax, "expected , or } in inline table, got %q", p.peek())
		}
	}
}

// scalar scans a bare token and classifies it as a boolean, date-time or
// number.
func (p *parser) scalar() (*ir.Value, error) {
	tok := p.scanToken()
	if len(tok) == 0 {
		return nil, p.errf(ErrValue, "got %q", p.peek())
	}
	switch string(tok) {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	}
	if isTimeToken(tok) {
		return p.timeOfDay(tok)
	}
	if isDateToken(tok) {
		// a full date may be followed by a space-separated time
		if len(tok) == dateTokenLen && !p.eof() && p.peek() == ' ' &&
			isTimeToken(p.timeLookahead()) {
			p.next()
			rest := p.scanToken()
			joined := make([]byte, 0, len(tok)+1+len(rest))
			joined = append(joined, tok...)
			joined = append(joined, 'T')
			joined = append(joined, rest...)
			return p.dateTime(joined)
		}
		return p.dateTime(tok)
	}
	return p.number(tok)
}

// scanToken consumes bytes up to a value delimiter.
func (p *parser) scanToken() []byte {
	start := p.pos
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r', '\n', ',', ']', '}', '#':
			return p.src[start:p.pos]
		}
		p.pos++
	}
	return p.src[start:p.pos]
}

// timeLookahead peeks at the token following a "date space" prefix
// without consuming anything.
func (p *parser) timeLookahead() []byte {
	k := 1 // past the space
	start := p.pos + k
	for {
		c := p.peekAt(k)
		switch c {
		case 0, ' ', '\t', '\r', '\n', ',', ']', '}', '#':
			end := p.pos + k
			if end > len(p.src) {
				end = len(p.src)
			}
			return p.src[start:end]
		}
		k++
	}
}
