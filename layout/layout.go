// Package layout decides, for every child edge in a compiled schema,
// how the child record should be embedded in its parent (heap-owned,
// optionally-inlined, value-inlined, or a small-buffer vector), and
// computes the resulting byte size of every record type. See spec.md
// section 4.2.
//
// The decision is modeled as a closed sum type (Decision), not an
// interface hierarchy with one implementation per strategy — spec.md
// section 9 calls this out explicitly as the idiomatic re-architecture
// of the class-per-strategy pattern used by the original C++ generator.
package layout

import (
	"fmt"

	"github.com/zusi3/schemaparser/schema"
)

// Strategy names one of the four embedding strategies a child edge can
// use.
type Strategy int

const (
	// Heap stores the child behind an owned pointer. It is the only
	// legal strategy when the child's target type is the parent type
	// itself (self-recursion), and is the default when nothing more
	// specific applies.
	Heap Strategy = iota
	// Optional marks a singular child that may be absent. Codegen
	// renders it as a pointer to the child record, nil when absent;
	// the child is not stored inline in the parent. Only ever chosen
	// for singular edges.
	Optional
	// Inline stores the child's fields directly in the parent record,
	// with no indirection. Requires the child type to already be
	// fully laid out (topologically earlier).
	Inline
	// SmallVector marks a plural edge to one of the small-vector target
	// types, with capacity N. Codegen renders it as an ordinary slice of
	// child records; no children are stored inline in the parent.
	SmallVector
)

func (s Strategy) String() string {
	switch s {
	case Heap:
		return "Heap"
	case Optional:
		return "Optional"
	case Inline:
		return "Inline"
	case SmallVector:
		return "SmallVector"
	default:
		return "Strategy(?)"
	}
}

// Decision is the embedding strategy chosen for one child edge, plus
// the SmallVector capacity when applicable.
type Decision struct {
	Strategy Strategy
	// N is the small-vector capacity; meaningful only when
	// Strategy == SmallVector.
	N int
	// Multiple carries the child edge's own cardinality through to
	// codegen: a Heap edge with Multiple set is a growable collection
	// of owned pointers, not a single owned pointer (spec.md section
	// 4.2; Heap is the catch-all default and inherits the edge's
	// plurality rather than forcing every non-special-cased edge to
	// singular).
	Multiple bool
	// Indexed reports whether the child's target type places itself
	// into an IndexedCollection by an index attribute (spec.md section
	// 4.6) rather than an ordinary append-ordered slice. Only ever set
	// alongside Multiple.
	Indexed bool
}

// indexedChildren names the two target types that are placed into an
// IndexedCollection by the given attribute, instead of an ordinary
// append-ordered slice (spec.md section 4.6, "Indexed collections").
var indexedChildren = map[string]string{
	"StrElement":      "Nr",
	"ReferenzElement":  "ReferenzNr",
}

// IndexField returns the attribute name that places children of
// typeName into an IndexedCollection, or "" if typeName is not one of
// the indexed target types.
func IndexField(typeName string) string {
	return indexedChildren[typeName]
}

// inlineAlways is the hard-coded set of leaf-like named types that are
// always value-inlined when they appear as a singular child
// (spec.md section 4.2).
var inlineAlways = map[string]bool{
	"Vertex":             true,
	"Face":               true,
	"Vec2":               true,
	"Vec3":               true,
	"Quaternion":         true,
	"Dateiverknuepfung":  true,
	"Tastaturzuordnung":  true,
	"Bremsgewicht":       true,
	"MatrixEintrag":      true,
}

// smallVectorTargets is the hard-coded set of child-type names that
// cluster at 1-2 elements and are laid out as a SmallVector(2)
// (spec.md section 4.2).
var smallVectorTargets = map[string]bool{
	"NachfolgerSelbesModul":  true,
	"NachfolgerAnderesModul": true,
}

const smallVectorCapacity = 2

// Decide computes the embedding strategy for one child edge of parent.
// It implements the exact rule table of spec.md section 4.2.
func Decide(parent *schema.ElementType, c schema.ChildEdge) Decision {
	if c.Target == parent {
		return Decision{Strategy: Heap, Multiple: c.Multiple}
	}
	if !c.Multiple && inlineAlways[c.Target.Name.Local] {
		return Decision{Strategy: Inline}
	}
	if !c.Multiple && c.Target.Name.Local == "StreckenelementRichtungsInfo" {
		return Decision{Strategy: Optional}
	}
	if c.Multiple && smallVectorTargets[c.Target.Name.Local] {
		return Decision{Strategy: SmallVector, N: smallVectorCapacity, Multiple: true}
	}
	if c.Multiple && IndexField(c.Target.Name.Local) != "" {
		return Decision{Strategy: Heap, Multiple: true, Indexed: true}
	}
	return Decision{Strategy: Heap, Multiple: c.Multiple}
}

// Sizes gives the natural byte width of the scalar kinds this format's
// attribute decoders produce, and of a heap-owned pointer. These
// mirror Go's own natural alignment for the chosen Go representation of
// each AttributeKind (int32, int64, bool, string header, float32,
// a small date struct, uint32, a 3xuint32 struct, and a 4-byte packed
// color, respectively).
const (
	sizeInt32    = 4
	sizeInt64    = 8
	sizeBool     = 1
	sizeString   = 16 // two-word string header (ptr + len); borrowed or owned is the same shape
	sizeFloat32  = 4
	sizeDateTime = 8 // {Year int16; Month,Day,Hour,Minute,Second int8}, padded to 8
	sizeHexInt32 = 4
	sizeFaceIdx  = 12 // three uint32
	sizeArgb     = 4
	sizePointer  = 8
	// sizeSliceHeader is a Go slice header: pointer, length, capacity.
	sizeSliceHeader = 24
	// sizeIndexedCollection is runtime.IndexedCollection's two backing
	// slices (items and set).
	sizeIndexedCollection = 2 * sizeSliceHeader
)

func attributeSize(k schema.AttributeKind) int {
	switch k {
	case schema.Int32:
		return sizeInt32
	case schema.Int64:
		return sizeInt64
	case schema.Boolean:
		return sizeBool
	case schema.String:
		return sizeString
	case schema.Float:
		return sizeFloat32
	case schema.DateTime:
		return sizeDateTime
	case schema.HexInt32:
		return sizeHexInt32
	case schema.FaceIndexes:
		return sizeFaceIdx
	case schema.ArgbColor:
		return sizeArgb
	default:
		return sizeInt32
	}
}

// unknownSize is the conservative size assigned to a type whose size
// is not yet known at planning time (a forward reference after a
// cycle was broken). It is larger than every inline threshold, which
// forces Heap for any edge pointing at it (spec.md section 4.2,
// "Tie-breaks and edge cases").
const unknownSize = 1 << 30

// Plan is the result of planning every element type in a schema: the
// chosen Decision per (parent, child-edge) pair, and the computed byte
// size per element type.
type Plan struct {
	Decisions map[*schema.ElementType]map[string]Decision
	Sizes     map[*schema.ElementType]int
}

// DecisionFor returns the embedding decision for the named child edge
// of t, or the zero Decision (Heap) if none was planned. Build only
// records a decision against the type that directly declares the
// child edge, so an edge inherited from t.Base is looked up by
// walking the base chain rather than t itself — the decision was made
// once, on the declaring type, and every subtype shares it.
func (p *Plan) DecisionFor(t *schema.ElementType, childName string) Decision {
	for cur := t; cur != nil; cur = cur.Base {
		if m, ok := p.Decisions[cur]; ok {
			if d, ok := m[childName]; ok {
				return d
			}
		}
	}
	return Decision{Strategy: Heap}
}

// Build computes the layout decision for every child edge in the
// schema and the resulting size of every element type, visiting types
// in the order given (which must be a valid topological order: every
// type that can be value-inlined into another appears before it — see
// the internal/dependency package). Visiting in that order lets each
// type's size be computed before any type that might inline it needs
// that size.
func Build(order []*schema.ElementType) (*Plan, error) {
	p := &Plan{
		Decisions: make(map[*schema.ElementType]map[string]Decision),
		Sizes:     make(map[*schema.ElementType]int),
	}
	for _, t := range order {
		size := headerSize(t)
		if t.Base != nil {
			size += childSize(p, t.Base)
		}
		decisions := make(map[string]Decision)
		for _, c := range t.Children {
			d := Decide(t, c)
			decisions[c.Name] = d
			switch d.Strategy {
			case Heap:
				switch {
				case d.Indexed:
					size += sizeIndexedCollection
				case d.Multiple:
					size += sizeSliceHeader
				default:
					size += sizePointer
				}
			case Optional:
				size += childSize(p, c.Target) + sizeBool
			case Inline:
				size += childSize(p, c.Target)
			case SmallVector:
				size += d.N*childSize(p, c.Target) + sizeInt32
			default:
				return nil, fmt.Errorf("layout: %s.%s: unhandled strategy %v", t.Name.Local, c.Name, d.Strategy)
			}
		}
		p.Decisions[t] = decisions
		p.Sizes[t] = size
	}
	return p, nil
}

func headerSize(t *schema.ElementType) int {
	size := 0
	for _, a := range t.Attributes {
		size += attributeSize(a.Kind)
	}
	return size
}

func childSize(p *Plan, t *schema.ElementType) int {
	if size, ok := p.Sizes[t]; ok {
		return size
	}
	return unknownSize
}
