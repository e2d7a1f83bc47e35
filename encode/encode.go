// Package encode renders document trees back to text.  YAML is the
// default format; JSON is compact.  Quoting follows the tree's ValQuo
// flag: flagged scalars are double-quoted, everything else is emitted as
// a plain token.
package encode

import (
	"bufio"
	"io"

	gojson "github.com/goccy/go-json"

	"github.com/doctree-format/doctree/debug"
	"github.com/doctree-format/doctree/format"
	"github.com/doctree-format/doctree/tree"
)

type EncState struct {
	t      *tree.Tree
	w      *bufio.Writer
	format format.Format
	indent int
	color  func(ColorAttr, string) string
	err    error
}

// Encode renders the whole tree to w.
func Encode(t *tree.Tree, w io.Writer, opts ...EncodeOption) error {
	return EncodeNode(t, t.Root(), w, opts...)
}

// EncodeNode renders the subtree rooted at id to w.
func EncodeNode(t *tree.Tree, id tree.NodeID, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		t:      t,
		w:      bufio.NewWriter(w),
		format: format.YAMLFormat,
		indent: 2,
		color:  func(_ ColorAttr, s string) string { return s },
	}
	for _, opt := range opts {
		opt(es)
	}
	if debug.Encode() {
		debug.Logf("encode node %d as %s\n", id, es.format)
	}
	if es.format.IsJSON() {
		es.jsonNode(id)
		es.write("\n")
	} else {
		es.yamlBlock(id, 0)
	}
	if es.err != nil {
		return es.err
	}
	return es.w.Flush()
}

func (es *EncState) write(s string) {
	if es.err != nil {
		return
	}
	_, es.err = es.w.WriteString(s)
}

func (es *EncState) pad(indent int) {
	for i := 0; i < indent*es.indent; i++ {
		es.write(" ")
	}
}

// yamlBlock writes the subtree at id in block style, cursor at a line
// start, one trailing newline per emitted line.
func (es *EncState) yamlBlock(id tree.NodeID, indent int) {
	t := es.t
	switch {
	case t.IsMap(id) && t.NumChildren(id) > 0:
		for _, c := range t.Children(id) {
			es.pad(indent)
			es.yamlKey(c)
			if blockChild(t, c) {
				es.write("\n")
				es.yamlBlock(c, indent+1)
				continue
			}
			es.write(" ")
			es.yamlInline(c)
			es.write("\n")
		}
	case t.IsSeq(id) && t.NumChildren(id) > 0:
		for _, c := range t.Children(id) {
			es.pad(indent)
			es.write(es.color(SepColor, "-"))
			if blockChild(t, c) {
				es.write("\n")
				es.yamlBlock(c, indent+1)
				continue
			}
			es.write(" ")
			es.yamlInline(c)
			es.write("\n")
		}
	default:
		es.pad(indent)
		es.yamlInline(id)
		es.write("\n")
	}
}

// blockChild reports whether c needs its own block rather than an inline
// rendering after the key or dash.
func blockChild(t *tree.Tree, c tree.NodeID) bool {
	return (t.IsMap(c) || t.IsSeq(c)) && t.NumChildren(c) > 0
}

func (es *EncState) yamlKey(id tree.NodeID) {
	key := string(es.t.Key(id))
	if needsQuote(key) {
		key = quote(key)
	}
	es.write(es.color(FieldColor, key))
	es.write(es.color(SepColor, ":"))
}

// yamlInline writes scalars and empty composites.
func (es *EncState) yamlInline(id tree.NodeID) {
	t := es.t
	switch {
	case t.IsMap(id):
		es.write("{}")
	case t.IsSeq(id):
		es.write("[]")
	case t.Flags(id).Has(tree.ValQuo):
		es.write(es.color(StringColor, quote(string(t.Value(id)))))
	default:
		es.write(es.color(ScalarColor, string(t.Value(id))))
	}
}

func (es *EncState) jsonNode(id tree.NodeID) {
	t := es.t
	switch {
	case t.IsMap(id):
		es.write("{")
		for i, c := range t.Children(id) {
			if i > 0 {
				es.write(",")
			}
			es.write(es.color(FieldColor, quote(string(t.Key(c)))))
			es.write(":")
			es.jsonNode(c)
		}
		es.write("}")
	case t.IsSeq(id):
		es.write("[")
		for i, c := range t.Children(id) {
			if i > 0 {
				es.write(",")
			}
			es.jsonNode(c)
		}
		es.write("]")
	default:
		val := t.Value(id)
		if !t.Flags(id).Has(tree.ValQuo) && gojson.Valid(val) {
			es.write(es.color(ScalarColor, string(val)))
			return
		}
		es.write(es.color(StringColor, quote(string(val))))
	}
}

// quote renders s as a JSON string, which is also a valid YAML
// double-quoted scalar.
func quote(s string) string {
	d, err := gojson.Marshal(s)
	if err != nil {
		return `""`
	}
	return string(d)
}

// needsQuote reports whether a map key cannot be written bare.
func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		ok := c >= 'a' && c <= 'z' ||
			c >= 'A' && c <= 'Z' ||
			c >= '0' && c <= '9' ||
			c == '_' || c == '-' || c == '.' || c == '/'
		if !ok {
			return true
		}
	}
	return false
}
