package runtime

import "testing"

func TestSkipBOM(t *testing.T) {
	c := NewCursor([]byte("\xEF\xBB\xBF<Zusi>"))
	c.SkipBOM()
	if c.Pos() != 3 {
		t.Fatalf("Pos() = %d, want 3", c.Pos())
	}
	if c.peek() != '<' {
		t.Fatalf("peek() = %q, want '<'", c.peek())
	}
}

func TestSkipPrologue(t *testing.T) {
	in := `<?xml version="1.0" encoding="utf-8"?>` +
		`<!-- a comment --><!DOCTYPE Zusi [<!ELEMENT foo (#PCDATA)>]><Zusi>`
	c := NewCursor([]byte(in))
	if err := c.SkipProlog(); err != nil {
		t.Fatal(err)
	}
	if !c.hasPrefix("<Zusi>") {
		t.Fatalf("after SkipProlog, remaining = %q", c.Bytes()[c.Pos():])
	}
}

func TestReadName(t *testing.T) {
	c := NewCursor([]byte(`AutorID="12345"`))
	name := c.ReadName()
	if string(name) != "AutorID" {
		t.Fatalf("ReadName() = %q, want %q", name, "AutorID")
	}
	if err := c.ExpectByte('='); err != nil {
		t.Fatal(err)
	}
}

func TestAtElementEnd(t *testing.T) {
	c := NewCursor([]byte(`/>`))
	empty, ok := c.AtElementEnd()
	if !ok || !empty {
		t.Fatalf("AtElementEnd() = %v, %v, want true, true", empty, ok)
	}

	c = NewCursor([]byte(`>`))
	empty, ok = c.AtElementEnd()
	if !ok || empty {
		t.Fatalf("AtElementEnd() = %v, %v, want false, true", empty, ok)
	}
}
