package encode

import (
	"bytes"
	"testing"

	gojson "github.com/goccy/go-json"

	"github.com/doctree-format/doctree/format"
	"github.com/doctree-format/doctree/tree"
)

// buildDoc constructs the tree for
//
//	title: "example"
//	server: {host: "localhost", port: 8080}
//	tags: ["a", "b"]
func buildDoc() *tree.Tree {
	t := tree.New()
	a := t.Arena()
	t.ToMap(t.Root())

	title := t.AppendChild(t.Root())
	t.ToKeyVal(title, a.CopyString("title"), a.CopyString("example"))
	t.AddFlags(title, tree.ValQuo)

	server := t.AppendChild(t.Root())
	t.ToKeyMap(server, a.CopyString("server"))
	host := t.AppendChild(server)
	t.ToKeyVal(host, a.CopyString("host"), a.CopyString("localhost"))
	t.AddFlags(host, tree.ValQuo)
	port := t.AppendChild(server)
	t.ToKeyVal(port, a.CopyString("port"), a.CopyString("8080"))

	tags := t.AppendChild(t.Root())
	t.ToKeySeq(tags, a.CopyString("tags"))
	for _, s := range []string{"a", "b"} {
		e := t.AppendChild(tags)
		t.ToVal(e, a.CopyString(s))
		t.AddFlags(e, tree.ValQuo)
	}
	return t
}

func TestEncodeYAML(t *testing.T) {
	tr := buildDoc()
	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf, EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	e := `title: "example"
server:
  host: "localhost"
  port: 8080
tags:
  - "a"
  - "b"
`
	if buf.String() != e {
		t.Fatalf("expected:\n%s\ngot:\n%s", e, buf.String())
	}
}

func TestEncodeJSON(t *testing.T) {
	tr := buildDoc()
	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	e := `{"title":"example","server":{"host":"localhost","port":8080},"tags":["a","b"]}` + "\n"
	if buf.String() != e {
		t.Fatalf("expected:\n%s\ngot:\n%s", e, buf.String())
	}
	if !gojson.Valid(bytes.TrimSpace(buf.Bytes())) {
		t.Fatal("json output not valid")
	}
}

func TestEncodeEmptyComposites(t *testing.T) {
	tr := tree.New()
	a := tr.Arena()
	tr.ToMap(tr.Root())
	em := tr.AppendChild(tr.Root())
	tr.ToKeyMap(em, a.CopyString("empty_map"))
	es := tr.AppendChild(tr.Root())
	tr.ToKeySeq(es, a.CopyString("empty_seq"))

	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf); err != nil {
		t.Fatal(err)
	}
	e := "empty_map: {}\nempty_seq: []\n"
	if buf.String() != e {
		t.Fatalf("expected %q, got %q", e, buf.String())
	}

	buf.Reset()
	if err := Encode(tr, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	ej := `{"empty_map":{},"empty_seq":[]}` + "\n"
	if buf.String() != ej {
		t.Fatalf("expected %q, got %q", ej, buf.String())
	}
}

func TestEncodeQuoting(t *testing.T) {
	tr := tree.New()
	a := tr.Arena()
	tr.ToMap(tr.Root())

	odd := tr.AppendChild(tr.Root())
	tr.ToKeyVal(odd, a.CopyString("odd key"), a.CopyString("line\nbreak"))
	tr.AddFlags(odd, tree.ValQuo)

	num := tr.AppendChild(tr.Root())
	tr.ToKeyVal(num, a.CopyString("n"), a.CopyString("42"))

	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf); err != nil {
		t.Fatal(err)
	}
	e := "\"odd key\": \"line\\nbreak\"\nn: 42\n"
	if buf.String() != e {
		t.Fatalf("expected %q, got %q", e, buf.String())
	}
}

func TestEncodeJSONNonNumericScalar(t *testing.T) {
	// unquoted scalars that are not valid json tokens must be quoted
	tr := tree.New()
	a := tr.Arena()
	tr.ToMap(tr.Root())
	d := tr.AppendChild(tr.Root())
	tr.ToKeyVal(d, a.CopyString("when"), a.CopyString("1979-05-27"))

	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	e := `{"when":"1979-05-27"}` + "\n"
	if buf.String() != e {
		t.Fatalf("expected %q, got %q", e, buf.String())
	}
}

func TestEncodeNodeSubtree(t *testing.T) {
	tr := buildDoc()
	server := tr.Get(tr.Root(), "server")
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(tr, server, buf, EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	e := `{"host":"localhost","port":8080}` + "\n"
	if buf.String() != e {
		t.Fatalf("expected %q, got %q", e, buf.String())
	}
}

func TestEncodeIndent(t *testing.T) {
	tr := buildDoc()
	buf := bytes.NewBuffer(nil)
	if err := Encode(tr, buf, EncodeIndent(4)); err != nil {
		t.Fatal(err)
	}
	e := `title: "example"
server:
    host: "localhost"
    port: 8080
tags:
    - "a"
    - "b"
`
	if buf.String() != e {
		t.Fatalf("expected:\n%s\ngot:\n%s", e, buf.String())
	}
}
