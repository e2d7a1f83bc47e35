package eval

import (
	"errors"
	"testing"
	"time"

	"github.com/doctree-format/doctree/ir"
	"github.com/doctree-format/doctree/toml"
)

func TestQuery(t *testing.T) {
	doc, err := toml.Parse([]byte(`
[server]
host = "localhost"
port = 8080
tags = ["web", "prod"]
`))
	if err != nil {
		t.Fatal(err)
	}
	qts := []struct {
		src string
		e   any
	}{
		{src: `server.port`, e: int64(8080)},
		{src: `server.host`, e: "localhost"},
		{src: `server.port > 1024`, e: true},
		{src: `server.tags[0]`, e: "web"},
		{src: `len(server.tags)`, e: 2},
		{src: `server.host + ":" + string(server.port)`, e: "localhost:8080"},
	}
	for _, qt := range qts {
		got, err := Query(qt.src, doc)
		if err != nil {
			t.Fatalf("%q: %v", qt.src, err)
		}
		if got != qt.e {
			t.Fatalf("%q: expected %v (%T), got %v (%T)", qt.src, qt.e, qt.e, got, got)
		}
	}
}

func TestQueryCompileError(t *testing.T) {
	doc := ir.Table()
	if _, err := Query(`1 +`, doc); err == nil {
		t.Fatal("expected compile error")
	}
}

func TestToAny(t *testing.T) {
	doc, err := toml.Parse([]byte("x = 1\nwhen = 1979-05-27T07:32:00Z"))
	if err != nil {
		t.Fatal(err)
	}
	m, ok := ToAny(doc).(map[string]any)
	if !ok {
		t.Fatalf("expected map, got %T", ToAny(doc))
	}
	if m["x"] != int64(1) {
		t.Fatalf("x: %v", m["x"])
	}
	when, ok := m["when"].(time.Time)
	if !ok {
		t.Fatalf("when: %T", m["when"])
	}
	if when.Year() != 1979 {
		t.Fatalf("when: %v", when)
	}
}

func TestFromAny(t *testing.T) {
	v, err := FromAny(map[string]any{
		"z": int64(1),
		"a": []any{"x", true, 1.5},
		"n": nil,
	})
	if err != nil {
		t.Fatal(err)
	}
	// keys sorted
	want := []string{"a", "n", "z"}
	for i, k := range want {
		if v.Entries[i].Key != k {
			t.Fatalf("expected key order %v", want)
		}
	}
	a := v.Get("a")
	if a.Kind != ir.ArrayKind || len(a.Elems) != 3 {
		t.Fatal("bad array")
	}
	if a.Elems[1].Kind != ir.BoolKind || !a.Elems[1].Bool {
		t.Fatal("bad bool elem")
	}
	if v.Get("n").Kind != ir.NullKind {
		t.Fatal("bad null")
	}
}

func TestFromAnyBadResult(t *testing.T) {
	if _, err := FromAny(struct{}{}); !errors.Is(err, ErrResult) {
		t.Fatalf("expected ErrResult, got %v", err)
	}
}
