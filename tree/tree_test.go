package tree

import (
	"bytes"
	"testing"
)

func TestAppendChildOrder(t *testing.T) {
	tr := New()
	tr.ToMap(tr.Root())
	keys := []string{"a", "b", "c", "d"}
	for _, k := range keys {
		c := tr.AppendChild(tr.Root())
		tr.ToKeyVal(c, tr.Arena().CopyString(k), tr.Arena().CopyString(k+"v"))
	}
	if tr.NumChildren(tr.Root()) != len(keys) {
		t.Fatalf("expected %d children, got %d", len(keys), tr.NumChildren(tr.Root()))
	}
	for i, k := range keys {
		c := tr.Child(tr.Root(), i)
		if string(tr.Key(c)) != k {
			t.Fatalf("child %d: expected key %q, got %q", i, k, tr.Key(c))
		}
		if tr.Parent(c) != tr.Root() {
			t.Fatalf("child %d: bad parent %d", i, tr.Parent(c))
		}
	}
}

func TestGet(t *testing.T) {
	tr := New()
	tr.ToMap(tr.Root())
	c := tr.AppendChild(tr.Root())
	tr.ToKeyVal(c, tr.Arena().CopyString("port"), tr.Arena().CopyString("8080"))
	got := tr.Get(tr.Root(), "port")
	if got != c {
		t.Fatalf("expected %d, got %d", c, got)
	}
	if tr.Get(tr.Root(), "host") != None {
		t.Fatal("expected None for missing key")
	}
}

func TestReassignKeepsKey(t *testing.T) {
	tr := New()
	tr.ToMap(tr.Root())
	c := tr.AppendChild(tr.Root())
	tr.ToKeyVal(c, tr.Arena().CopyString("server"), nil)
	// revisit the node as a map, as a nested table assignment does
	tr.ToKeyMap(c, tr.Key(c))
	if !tr.IsMap(c) {
		t.Fatal("expected map")
	}
	if !tr.HasKey(c) {
		t.Fatal("expected key to survive reassignment")
	}
	if string(tr.Key(c)) != "server" {
		t.Fatalf("expected key server, got %q", tr.Key(c))
	}
}

func TestFlags(t *testing.T) {
	tr := New()
	c := tr.AppendChild(tr.Root())
	tr.ToVal(c, tr.Arena().CopyString("hello"))
	tr.AddFlags(c, ValQuo)
	if !tr.Flags(c).Has(Val) || !tr.Flags(c).Has(ValQuo) {
		t.Fatalf("bad flags %s", tr.Flags(c))
	}
	if tr.HasKey(c) {
		t.Fatal("unexpected key flag")
	}
}

func TestArenaStability(t *testing.T) {
	var a Arena
	first := a.CopyString("first")
	// force growth past one chunk and check earlier spans survive
	for i := 0; i < 4096; i++ {
		a.CopyString("xxxxxxxxxxxxxxxx")
	}
	if string(first) != "first" {
		t.Fatalf("early span corrupted: %q", first)
	}
	if a.Size() < 4096 {
		t.Fatalf("expected arena to grow, size %d", a.Size())
	}
}

func TestArenaCopyIndependence(t *testing.T) {
	var a Arena
	src := []byte("mutate-me")
	cp := a.Copy(src)
	src[0] = 'X'
	if string(cp) != "mutate-me" {
		t.Fatalf("arena copy aliased source: %q", cp)
	}
}

func TestDump(t *testing.T) {
	tr := New()
	tr.ToMap(tr.Root())
	c := tr.AppendChild(tr.Root())
	tr.ToKeyVal(c, tr.Arena().CopyString("a"), tr.Arena().CopyString("1"))
	buf := bytes.NewBuffer(nil)
	if err := tr.Dump(buf, tr.Root()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected dump output")
	}
}
