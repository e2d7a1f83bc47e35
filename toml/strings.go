package toml

import (
	"bytes"
	"strconv"
	"unicode/utf8"
)

// basicString parses a single-line "..." string with escapes.
func (p *parser) basicString() (string, error) {
	p.next() // '"'
	var b bytes.Buffer
	for {
		if p.eof() {
			return "", p.errf(ErrUnterminated, "string")
		}
		c := p.peek()
		switch {
		case c == '"':
			p.next()
			return b.String(), nil
		case c == '\n':
			return "", p.errf(ErrUnterminated, "string")
		case c == '\\':
			p.next()
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case c < 0x20 && c != '\t':
			return "", p.errf(ErrControl, "0x%02x", c)
		default:
			b.WriteByte(p.next())
		}
	}
}

// literalString parses a single-line '...' string, no escapes.
func (p *parser) literalString() (string, error) {
	p.next() // '\''
	start := p.pos
	for {
		if p.eof() {
			return "", p.errf(ErrUnterminated, "string")
		}
		c := p.peek()
		switch {
		case c == '\'':
			s := string(p.src[start:p.pos])
			p.next()
			return s, nil
		case c == '\n':
			return "", p.errf(ErrUnterminated, "string")
		case c < 0x20 && c != '\t':
			return "", p.errf(ErrControl, "0x%02x", c)
		}
		p.pos++
	}
}

// multilineBasicString parses """...""".  A newline right after the
// opening delimiter is trimmed; a line-ending backslash eats all
// following whitespace.
func (p *parser) multilineBasicString() (string, error) {
	p.pos += 3
	p.trimFirstNewline()
	var b bytes.Buffer
	for {
		if p.eof() {
			return "", p.errf(ErrUnterminated, "multiline string")
		}
		c := p.peek()
		switch {
		case c == '"' && p.peekAt(1) == '"' && p.peekAt(2) == '"':
			// up to two extra quotes belong to the content
			q := 3
			for p.peekAt(q) == '"' {
				q++
			}
			if q > 5 {
				return "", p.errf(ErrSyntax, "too many quotes")
			}
			for i := 0; i < q-3; i++ {
				b.WriteByte('"')
			}
			p.pos += q
			return b.String(), nil
		case c == '\\':
			p.next()
			if p.eof() {
				return "", p.errf(ErrUnterminated, "multiline string")
			}
			if p.lineEndingBackslash() {
				continue
			}
			if err := p.escape(&b); err != nil {
				return "", err
			}
		case c == '\r' && p.peekAt(1) == '\n':
			p.pos++
			b.WriteByte(p.next())
		case c < 0x20 && c != '\t' && c != '\n':
			return "", p.errf(ErrControl, "0x%02x", c)
		default:
			b.WriteByte(p.next())
		}
	}
}

// multilineLiteralString parses '''...'''.
func (p *parser) multilineLiteralString() (string, error) {
	p.pos += 3
	p.trimFirstNewline()
	var b bytes.Buffer
	for {
		if p.eof() {
			return "", p.errf(ErrUnterminated, "multiline string")
		}
		c := p.peek()
		switch {
		case c == '\'' && p.peekAt(1) == '\'' && p.peekAt(2) == '\'':
			q := 3
			for p.peekAt(q) == '\'' {
				q++
			}
			if q > 5 {
				return "", p.errf(ErrSyntax, "too many quotes")
			}
			for i := 0; i < q-3; i++ {
				b.WriteByte('\'')
			}
			p.pos += q
			return b.String(), nil
		case c == '\r' && p.peekAt(1) == '\n':
			p.pos++
			b.WriteByte(p.next())
		case c < 0x20 && c != '\t' && c != '\n':
			return "", p.errf(ErrControl, "0x%02x", c)
		default:
			b.WriteByte(p.next())
		}
	}
}

func (p *parser) trimFirstNewline() {
	if !p.eof() && p.peek() == '\r' {
		p.pos++
	}
	if !p.eof() && p.peek() == '\n' {
		p.next()
	}
}

// lineEndingBackslash handles `\` followed by nothing but whitespace up
// to a newline: the backslash, the newline and all following whitespace
// vanish.  Reports whether it consumed anything.
func (p *parser) lineEndingBackslash() bool {
	k := 0
	for {
		switch p.peekAt(k) {
		case ' ', '\t', '\r':
			k++
		case '\n':
			for j := 0; j <= k; j++ {
				p.next()
			}
			for !p.eof() {
				switch p.peek() {
				case ' ', '\t', '\r':
					p.pos++
				case '\n':
					p.next()
				default:
					return true
				}
			}
			return true
		default:
			return false
		}
	}
}

// escape handles a single escape after the backslash was consumed.
func (p *parser) escape(b *bytes.Buffer) error {
	if p.eof() {
		return p.errf(ErrBadEscape, "unexpected end of input")
	}
	c := p.next()
	switch c {
	case '"':
		b.WriteByte('"')
	case '\\':
		b.WriteByte('\\')
	case 'b':
		b.WriteByte('\b')
	case 'f':
		b.WriteByte('\f')
	case 'n':
		b.WriteByte('\n')
	case 'r':
		b.WriteByte('\r')
	case 't':
		b.WriteByte('\t')
	case 'u':
		return p.unicodeEscape(b, 4)
	case 'U':
		return p.unicodeEscape(b, 8)
	default:
		return p.errf(ErrBadEscape, "\\%c", c)
	}
	return nil
}

func (p *parser) unicodeEscape(b *bytes.Buffer, n int) error {
	if p.pos+n > len(p.src) {
		return p.errf(ErrBadEscape, "truncated unicode escape")
	}
	hex := string(p.src[p.pos : p.pos+n])
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return p.errf(ErrBadEscape, "\\u%s", hex)
	}
	r := rune(v)
	if !utf8.ValidRune(r) {
		return p.errf(ErrBadEscape, "invalid rune U+%04X", v)
	}
	p.pos += n
	b.WriteRune(r)
	return nil
}
