package layout

import (
	"encoding/xml"
	"testing"

	"github.com/zusi3/schemaparser/schema"
)

func named(name string) *schema.ElementType {
	return &schema.ElementType{Name: xml.Name{Local: name}}
}

func TestDecide_SelfRecursiveIsAlwaysHeap(t *testing.T) {
	t1 := named("Streckenelement")
	edge := schema.ChildEdge{Name: "next", Target: t1}
	d := Decide(t1, edge)
	if d.Strategy != Heap || d.Multiple || d.Indexed {
		t.Errorf("self-recursive edge = %+v, want plain Heap", d)
	}
}

func TestDecide_InlineAlways(t *testing.T) {
	parent := named("ReferenzElement")
	vec3 := named("Vec3")
	edge := schema.ChildEdge{Name: "p", Target: vec3}
	d := Decide(parent, edge)
	if d.Strategy != Inline {
		t.Errorf("Vec3 singular child = %+v, want Inline", d)
	}
}

func TestDecide_InlineAlwaysDoesNotApplyWhenMultiple(t *testing.T) {
	parent := named("Something")
	vec3 := named("Vec3")
	edge := schema.ChildEdge{Name: "p", Target: vec3, Multiple: true}
	d := Decide(parent, edge)
	if d.Strategy != Heap || !d.Multiple {
		t.Errorf("Vec3 plural child = %+v, want Heap+Multiple", d)
	}
}

func TestDecide_SmallVector(t *testing.T) {
	parent := named("Streckenelement")
	succ := named("NachfolgerSelbesModul")
	edge := schema.ChildEdge{Name: "NachfolgerSelbesModul", Target: succ, Multiple: true}
	d := Decide(parent, edge)
	if d.Strategy != SmallVector || d.N != smallVectorCapacity {
		t.Errorf("NachfolgerSelbesModul = %+v, want SmallVector(%d)", d, smallVectorCapacity)
	}
}

func TestDecide_IndexedCollection(t *testing.T) {
	parent := named("StrElementListe")
	strElement := named("StrElement")
	edge := schema.ChildEdge{Name: "StrElement", Target: strElement, Multiple: true}
	d := Decide(parent, edge)
	if d.Strategy != Heap || !d.Multiple || !d.Indexed {
		t.Errorf("StrElement plural child = %+v, want Heap+Multiple+Indexed", d)
	}
	if IndexField("StrElement") != "Nr" {
		t.Errorf("IndexField(StrElement) = %q, want Nr", IndexField("StrElement"))
	}
	if IndexField("ReferenzElement") != "ReferenzNr" {
		t.Errorf("IndexField(ReferenzElement) = %q, want ReferenzNr", IndexField("ReferenzElement"))
	}
	if IndexField("AutorEintrag") != "" {
		t.Errorf("IndexField(AutorEintrag) = %q, want empty", IndexField("AutorEintrag"))
	}
}

func TestDecide_OrdinaryMultipleIsGrowableSlice(t *testing.T) {
	parent := named("Info")
	autor := named("AutorEintrag")
	edge := schema.ChildEdge{Name: "AutorEintrag", Target: autor, Multiple: true}
	d := Decide(parent, edge)
	if d.Strategy != Heap || !d.Multiple || d.Indexed {
		t.Errorf("AutorEintrag plural child = %+v, want Heap+Multiple, not Indexed", d)
	}
}

func TestBuild_SizesGrowWithIndexedAndSliceChildren(t *testing.T) {
	autor := named("AutorEintrag")
	autor.Attributes = []schema.Attribute{
		{Name: "AutorID", Kind: schema.Int32},
		{Name: "AutorName", Kind: schema.String},
	}

	strElement := named("StrElement")
	strElement.Attributes = []schema.Attribute{{Name: "Nr", Kind: schema.Int32}}

	info := named("Info")
	info.Attributes = []schema.Attribute{{Name: "DateiTyp", Kind: schema.String}}
	info.Children = []schema.ChildEdge{{Name: "AutorEintrag", Target: autor, Multiple: true}}

	strListe := named("StrElementListe")
	strListe.Children = []schema.ChildEdge{{Name: "StrElement", Target: strElement, Multiple: true}}

	plan, err := Build([]*schema.ElementType{autor, strElement, info, strListe})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if got, want := plan.Sizes[info], sizeString+sizeSliceHeader; got != want {
		t.Errorf("Info size = %d, want %d", got, want)
	}
	if got, want := plan.Sizes[strListe], sizeIndexedCollection; got != want {
		t.Errorf("StrElementListe size = %d, want %d", got, want)
	}

	d := plan.DecisionFor(strListe, "StrElement")
	if !d.Indexed {
		t.Errorf("DecisionFor(StrElementListe, StrElement).Indexed = false, want true")
	}
}

func TestBuild_InheritedChildEdgeKeepsBaseDecision(t *testing.T) {
	succ := named("NachfolgerSelbesModul")

	base := named("StreckenelementBase")
	base.Children = []schema.ChildEdge{{Name: "NachfolgerSelbesModul", Target: succ, Multiple: true}}

	sub := named("Streckenelement")
	sub.Base = base
	sub.Attributes = []schema.Attribute{{Name: "Nr", Kind: schema.Int32}}

	plan, err := Build([]*schema.ElementType{succ, base, sub})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	d := plan.DecisionFor(sub, "NachfolgerSelbesModul")
	if d.Strategy != SmallVector || d.N != smallVectorCapacity {
		t.Errorf("DecisionFor(sub, inherited edge) = %+v, want the base's SmallVector(%d) decision", d, smallVectorCapacity)
	}

	if got, want := plan.Sizes[sub], plan.Sizes[base]+sizeInt32; got != want {
		t.Errorf("sub size = %d, want base size (%d) + own Nr attribute (%d) = %d", got, plan.Sizes[base], sizeInt32, want)
	}
}

func TestPlan_DecisionForUnknownEdgeDefaultsToHeap(t *testing.T) {
	var p Plan
	d := p.DecisionFor(named("Anything"), "missing")
	if d.Strategy != Heap || d.Multiple || d.Indexed {
		t.Errorf("DecisionFor on empty Plan = %+v, want zero-value Heap", d)
	}
}
