// Package zusi is a hand-authored stand-in for the output of
// cmd/zusigen run over a small real subset of the Zusi schema family:
// the root Zusi/Info/AutorEintrag chain, the shape-polymorphic Vec3
// type, the two indexed child types (StrElement, ReferenzElement), and
// a SmallVector target (NachfolgerSelbesModul). It exists to exercise
// the generated-code contract (codegen.Generate's output shape) end to
// end without invoking go/ast in tests: a checked-in, hand-authored
// stand-in for generator output, kept in sync by hand.
package zusi

import "github.com/zusi3/schemaparser/runtime"

// Zusi is the document root.
type Zusi struct {
	Info *Info `xml:"Info"`
}

// Info carries the file's format metadata and authorship records.
type Info struct {
	DateiTyp     string          `xml:"DateiTyp,attr"`
	Version      string          `xml:"Version,attr"`
	MinVersion   string          `xml:"MinVersion,attr"`
	AutorEintrag []*AutorEintrag `xml:"AutorEintrag"`
}

// AutorEintrag is one authorship record.
type AutorEintrag struct {
	AutorID   int32  `xml:"AutorID,attr"`
	AutorName string `xml:"AutorName,attr"`
}

// Vec3 is shape-polymorphic over its attribute names (X, Y, Z in any
// order).
type Vec3 struct {
	X, Y, Z float32
}

// StrElement is placed into its parent's collection by Nr, not by
// document order.
type StrElement struct {
	Nr int32 `xml:"Nr,attr"`
}

// StrElementListe holds an indexed collection of StrElement, keyed by
// Nr (spec.md section 4.6, "Indexed collections").
type StrElementListe struct {
	StrElement runtime.IndexedCollection[StrElement] `xml:"StrElement"`
}

// ReferenzElement is the sentinel children-first type: its field order
// swaps to children-before-attributes to match the companion binary
// mesh layout's index record.
type ReferenzElement struct {
	P          Vec3  `xml:"p"`
	ReferenzNr int32 `xml:"ReferenzNr,attr"`
}

// ReferenzElementListe holds an indexed collection of ReferenzElement,
// keyed by ReferenzNr.
type ReferenzElementListe struct {
	ReferenzElement runtime.IndexedCollection[ReferenzElement] `xml:"ReferenzElement"`
}

// NachfolgerSelbesModul names a successor element within the same
// route module. It is one of the hard-coded SmallVector(2) targets:
// almost every Streckenelement has zero, one, or two of them.
type NachfolgerSelbesModul struct {
	Nr int32 `xml:"Nr,attr"`
}

// Streckenelement demonstrates the SmallVector strategy: its
// NachfolgerSelbesModul children are stored as a plain slice of
// values, not pointers, with a small-capacity hint at the planning
// stage (layout.Decide special-cases this type name).
type Streckenelement struct {
	Nr                    int32                   `xml:"Nr,attr"`
	NachfolgerSelbesModul []NachfolgerSelbesModul `xml:"NachfolgerSelbesModul"`
}
