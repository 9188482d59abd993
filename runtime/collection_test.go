package runtime

import "testing"

// TestIndexedCollectionDuplicateIndex reproduces spec.md section 8,
// scenario 5: three StrElement children with Nr 5, 3, 5 produce a
// vector of length 6 with indices 3 and 5 populated, and the first of
// the two Nr=5 children wins.
func TestIndexedCollectionDuplicateIndex(t *testing.T) {
	var ic IndexedCollection[string]
	ic.Put(5, "first-five")
	ic.Put(3, "three")
	ic.Put(5, "second-five")

	if got, want := ic.Len(), 6; got != want {
		t.Fatalf("Len() = %d, want %d", got, want)
	}
	if v, ok := ic.At(5); !ok || v != "first-five" {
		t.Errorf("At(5) = %q, %v, want %q, true", v, ok, "first-five")
	}
	if v, ok := ic.At(3); !ok || v != "three" {
		t.Errorf("At(3) = %q, %v, want %q, true", v, ok, "three")
	}
	for _, idx := range []int{0, 1, 2, 4} {
		if _, ok := ic.At(idx); ok {
			t.Errorf("At(%d) reported a placed value in a placeholder gap", idx)
		}
	}
}

func TestIndexedCollectionOutOfRange(t *testing.T) {
	var ic IndexedCollection[int]
	if _, ok := ic.At(0); ok {
		t.Fatal("At(0) on an empty collection reported a value")
	}
	ic.Put(-1, 7)
	if ic.Len() != 0 {
		t.Fatalf("Put(-1, ...) should be ignored, Len() = %d", ic.Len())
	}
}
