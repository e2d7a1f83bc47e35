// Package toml parses TOML v1 documents into the ir value model.  Tables
// keep their members in source order; scalars come out typed, including
// offset and local date-times, dates and times.
package toml

import (
	"fmt"
	"os"

	"github.com/doctree-format/doctree/debug"
	"github.com/doctree-format/doctree/ir"
)

// tableState tracks how a table or array came to exist, which drives the
// redefinition rules.
type tableState int

const (
	// created on the way to a deeper header
	implicitTable tableState = iota
	// defined by a [header]
	explicitTable
	// created by a dotted key; headers may not reopen it
	dottedTable
	// an inline table or array value; closed to any extension
	inlineValue
	// a [[header]] array of tables
	arrayTable
)

type parser struct {
	src       []byte
	pos       int
	line      int
	lineStart int

	root  *ir.Value
	cur   *ir.Value
	state map[*ir.Value]tableState
}

// Parse parses src and returns the document's root table.
func Parse(src []byte) (*ir.Value, error) {
	p := &parser{
		src:   src,
		line:  1,
		root:  ir.Table(),
		state: map[*ir.Value]tableState{},
	}
	p.cur = p.root
	p.state[p.root] = explicitTable
	for {
		p.skipBlank()
		if p.eof() {
			break
		}
		var err error
		if p.peek() == '[' {
			err = p.header()
		} else {
			err = p.keyval(p.cur)
		}
		if err != nil {
			if debug.Parse() {
				debug.Logf("toml: %v\n", err)
			}
			return nil, err
		}
		if err := p.expectLineEnd(); err != nil {
			return nil, err
		}
	}
	return p.root, nil
}

// ParseFile reads and parses the named file.
func ParseFile(path string) (*ir.Value, error) {
	d, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", path, err)
	}
	v, err := Parse(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return v, nil
}

func (p *parser) eof() bool   { return p.pos >= len(p.src) }
func (p *parser) peek() byte  { return p.src[p.pos] }
func (p *parser) peekAt(k int) byte {
	if p.pos+k >= len(p.src) {
		return 0
	}
	return p.src[p.pos+k]
}

func (p *parser) next() byte {
	c := p.src[p.pos]
	p.pos++
	if c == '\n' {
		p.line++
		p.lineStart = p.pos
	}
	return c
}

func (p *parser) position() Pos {
	return Pos{Line: p.line, Col: p.pos - p.lineStart + 1}
}

func (p *parser) errf(sentinel error, format string, args ...any) error {
	return &Error{Err: sentinel, Pos: p.position(), Msg: fmt.Sprintf(format, args...)}
}

// skipWS skips spaces and tabs, never newlines.
func (p *parser) skipWS() {
	for !p.eof() && (p.peek() == ' ' || p.peek() == '\t') {
		p.pos++
	}
}

func (p *parser) skipComment() {
	for !p.eof() && p.peek() != '\n' {
		p.pos++
	}
}

// skipBlank skips whitespace, comments and newlines between expressions.
func (p *parser) skipBlank() {
	for !p.eof() {
		switch p.peek() {
		case ' ', '\t', '\r':
			p.pos++
		case '\n':
			p.next()
		case '#':
			p.skipComment()
		default:
			return
		}
	}
}

// expectLineEnd requires that nothing but whitespace and a comment follow
// on the current line.
func (p *parser) expectLineEnd() error {
	p.skipWS()
	if p.eof() {
		return nil
	}
	if p.peek() == '#' {
		p.skipComment()
	}
	if p.eof() {
		return nil
	}
	if p.peek() == '\r' {
		p.pos++
	}
	if p.eof() {
		return nil
	}
	if p.peek() != '\n' {
		return p.errf(ErrSyntax, "expected end of line, got %q", p.peek())
	}
	p.next()
	return nil
}

// header parses a [table] or [[array-of-tables]] line.
func (p *parser) header() error {
	p.next() // '['
	array := false
	if !p.eof() && p.peek() == '[' {
		p.next()
		array = true
	}
	keys, err := p.key()
	if err != nil {
		return err
	}
	p.skipWS()
	if p.eof() || p.peek() != ']' {
		return p.errf(ErrSyntax, "expected ]")
	}
	p.next()
	if array {
		if p.eof() || p.peek() != ']' {
			return p.errf(ErrSyntax, "expected ]]")
		}
		p.next()
	}

	last := keys[len(keys)-1]
	parent, err := p.descendHeader(keys[:len(keys)-1])
	if err != nil {
		return err
	}
	if array {
		arr := parent.Get(last)
		if arr == nil {
			arr = ir.Array()
			p.state[arr] = arrayTable
			parent.Put(last, arr)
		} else if arr.Kind != ir.ArrayKind || p.state[arr] != arrayTable {
			return p.errf(ErrRedefined, "%q is not an array of tables", last)
		}
		tbl := ir.Table()
		p.state[tbl] = explicitTable
		arr.Append(tbl)
		p.cur = tbl
		return nil
	}
	tbl := parent.Get(last)
	if tbl == nil {
		tbl = ir.Table()
		p.state[tbl] = explicitTable
		parent.Put(last, tbl)
		p.cur = tbl
		return nil
	}
	if tbl.Kind != ir.TableKind {
		return p.errf(ErrRedefined, "%q is not a table", last)
	}
	if p.state[tbl] != implicitTable {
		return p.errf(ErrRedefined, "table %q", last)
	}
	p.state[tbl] = explicitTable
	p.cur = tbl
	return nil
}

// descendHeader walks keys from the root, creating implicit tables, and
// stepping into the last element of any array of tables on the way.
func (p *parser) descendHeader(keys []string) (*ir.Value, error) {
	cur := p.root
	for _, k := range keys {
		next := cur.Get(k)
		if next == nil {
			nt := ir.Table()
			p.state[nt] = implicitTable
			cur.Put(k, nt)
			cur = nt
			continue
		}
		switch next.Kind {
		case ir.TableKind:
			if p.state[next] == inlineValue {
				return nil, p.errf(ErrRedefined, "inline table %q", k)
			}
			cur = next
		case ir.ArrayKind:
			if p.state[next] != arrayTable || len(next.Elems) == 0 {
				return nil, p.errf(ErrRedefined, "array %q", k)
			}
			cur = next.Elems[len(next.Elems)-1]
		default:
			return nil, p.errf(ErrRedefined, "%q is not a table", k)
		}
	}
	return cur, nil
}

// descendDotted walks the intermediate parts of a dotted key within tbl,
// creating tables as needed.  Tables defined by headers or inline values
// cannot be extended this way.
func (p *parser) descendDotted(tbl *ir.Value, keys []string) (*ir.Value, error) {
	cur := tbl
	for _, k := range keys {
		next := cur.Get(k)
		if next == nil {
			nt := ir.Table()
			p.state[nt] = dottedTable
			cur.Put(k, nt)
			cur = nt
			continue
		}
		if next.Kind != ir.TableKind {
			return nil, p.errf(ErrDuplicateKey, "%q is not a table", k)
		}
		switch p.state[next] {
		case dottedTable:
			cur = next
		default:
			return nil, p.errf(ErrRedefined, "table %q", k)
		}
	}
	return cur, nil
}

// keyval parses one `key = value` expression into tbl.
func (p *parser) keyval(tbl *ir.Value) error {
	keys, err := p.key()
	if err != nil {
		return err
	}
	p.skipWS()
	if p.eof() || p.peek() != '=' {
		return p.errf(ErrSyntax, "expected =")
	}
	p.next()
	p.skipWS()
	v, err := p.value()
	if err != nil {
		return err
	}
	last := keys[len(keys)-1]
	parent, err := p.descendDotted(tbl, keys[:len(keys)-1])
	if err != nil {
		return err
	}
	if parent.Get(last) != nil {
		return p.errf(ErrDuplicateKey, "%q", last)
	}
	parent.Put(last, v)
	return nil
}

// key parses a possibly dotted key and returns its parts.
func (p *parser) key() ([]string, error) {
	var keys []string
	for {
		p.skipWS()
		part, err := p.keyPart()
		if err != nil {
			return nil, err
		}
		keys = append(keys, part)
		p.skipWS()
		if p.eof() || p.peek() != '.' {
			return keys, nil
		}
		p.next()
	}
}

func (p *parser) keyPart() (string, error) {
	if p.eof() {
		return "", p.errf(ErrBadKey, "unexpected end of input")
	}
	switch p.peek() {
	case '"':
		return p.basicString()
	case '\'':
		return p.literalString()
	}
	start := p.pos
	for !p.eof() && isBareKeyByte(p.peek()) {
		p.pos++
	}
	if p.pos == start {
		return "", p.errf(ErrBadKey, "got %q", p.peek())
	}
	return string(p.src[start:p.pos]), nil
}

func isBareKeyByte(c byte) bool {
	return c >= 'a' && c <= 'z' ||
		c >= 'A' && c <= 'Z' ||
		c >= '0' && c <= '9' ||
		c == '_' || c == '-'
}
