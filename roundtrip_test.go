package doctree_test

import (
	"bytes"
	"testing"

	"github.com/doctree-format/doctree"
	"github.com/doctree-format/doctree/encode"
	"github.com/doctree-format/doctree/format"
	"github.com/doctree-format/doctree/tree"
)

const roundtripDoc = `
title = "example"

[server]
host = "localhost"
port = 8080
tags = ["web", "prod"]
`

func TestRoundtripYAML(t *testing.T) {
	t1, err := doctree.ParseTOML([]byte(roundtripDoc))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t1, buf, encode.EncodeFormat(format.YAMLFormat)); err != nil {
		t.Fatal(err)
	}
	t2, err := doctree.ParseYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("reparsing %q: %v", buf.String(), err)
	}
	server := t2.Get(t2.Root(), "server")
	if server == tree.None {
		t.Fatal("no server")
	}
	host := t2.Get(server, "host")
	if host == tree.None || string(t2.Value(host)) != "localhost" {
		t.Fatalf("host: %q", t2.Value(host))
	}
	port := t2.Get(server, "port")
	if port == tree.None || string(t2.Value(port)) != "8080" {
		t.Fatalf("port: %q", t2.Value(port))
	}
	tags := t2.Get(server, "tags")
	if tags == tree.None || !t2.IsSeq(tags) || t2.NumChildren(tags) != 2 {
		t.Fatal("bad tags")
	}
}

func TestRoundtripJSON(t *testing.T) {
	t1, err := doctree.ParseTOML([]byte(roundtripDoc))
	if err != nil {
		t.Fatal(err)
	}
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(t1, buf, encode.EncodeFormat(format.JSONFormat)); err != nil {
		t.Fatal(err)
	}
	// json is a subset of yaml, so the yaml front end reparses it
	t2, err := doctree.ParseYAML(buf.Bytes())
	if err != nil {
		t.Fatalf("reparsing %q: %v", buf.String(), err)
	}
	title := t2.Get(t2.Root(), "title")
	if title == tree.None || string(t2.Value(title)) != "example" {
		t.Fatalf("title: %q", t2.Value(title))
	}
	if !t2.Flags(title).Has(tree.ValQuo) {
		t.Fatal("title lost string flag")
	}
}

func TestYAMLOrderPreserved(t *testing.T) {
	in := []byte("z: 1\na: 2\nm: 3\n")
	tr, err := doctree.ParseYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"z", "a", "m"}
	if tr.NumChildren(tr.Root()) != len(want) {
		t.Fatalf("expected %d children", len(want))
	}
	for i, k := range want {
		c := tr.Child(tr.Root(), i)
		if string(tr.Key(c)) != k {
			t.Fatalf("child %d: expected %q, got %q", i, k, tr.Key(c))
		}
	}
}

func TestYAMLScalars(t *testing.T) {
	in := []byte("s: hello\ni: 3\nf: 1.5\nb: true\nn: null\n")
	tr, err := doctree.ParseYAML(in)
	if err != nil {
		t.Fatal(err)
	}
	root := tr.Root()
	checks := []struct {
		key string
		val string
		quo bool
	}{
		{"s", "hello", true},
		{"i", "3", false},
		{"f", "1.5", false},
		{"b", "true", false},
		{"n", "null", false},
	}
	for _, c := range checks {
		id := tr.Get(root, c.key)
		if id == tree.None {
			t.Fatalf("no %s", c.key)
		}
		if string(tr.Value(id)) != c.val {
			t.Fatalf("%s: expected %q, got %q", c.key, c.val, tr.Value(id))
		}
		if tr.Flags(id).Has(tree.ValQuo) != c.quo {
			t.Fatalf("%s: quote flag mismatch", c.key)
		}
	}
}

func TestParseTOMLInto(t *testing.T) {
	tr := tree.New()
	tr.ToMap(tr.Root())
	sub := tr.AppendChild(tr.Root())
	tr.ToKeyVal(sub, tr.Arena().CopyString("loaded"), nil)
	if err := doctree.ParseTOMLInto([]byte("x = 1"), tr, sub); err != nil {
		t.Fatal(err)
	}
	if !tr.IsMap(sub) || string(tr.Key(sub)) != "loaded" {
		t.Fatal("subtree not keyed map")
	}
	x := tr.Get(sub, "x")
	if x == tree.None || string(tr.Value(x)) != "1" {
		t.Fatal("bad subtree content")
	}
}
