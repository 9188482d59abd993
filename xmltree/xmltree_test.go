package xmltree

import (
	"encoding/xml"
	"testing"
)

var doc = []byte(`<?xml version="1.0" encoding="utf-8"?>
<xs:schema xmlns:xs="http://www.w3.org/2001/XMLSchema" targetNamespace="http://zusi.de/schema/ls3">
  <xs:include schemaLocation="common.xsd"/>
  <xs:complexType name="Info">
    <xs:annotation><xs:documentation>file metadata</xs:documentation></xs:annotation>
    <xs:attribute name="DateiTyp" type="xs:string"/>
    <xs:sequence>
      <xs:element name="AutorEintrag" type="AutorEintrag" maxOccurs="unbounded"/>
    </xs:sequence>
  </xs:complexType>
  <xs:complexType name="AutorEintrag">
    <xs:attribute name="AutorID" type="xs:int"/>
    <xs:attribute name="AutorName" type="xs:string"/>
  </xs:complexType>
</xs:schema>`)

func TestParse(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	if root.Name.Local != "schema" {
		t.Fatalf("expected root element <schema>, got <%s>", root.Name.Local)
	}
	found := false
	root.walk(func(el *Element) {
		if el.Name.Local == "complexType" && el.Attr("", "name") == "AutorEintrag" {
			found = true
		}
	})
	if !found {
		t.Error("walk did not visit the AutorEintrag complexType")
	}
}

func TestSearch(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}

	result := root.Search("http://www.w3.org/2001/XMLSchema", "complexType")
	if len(result) != 2 {
		t.Errorf("Search(xs:complexType) returned %d results, want 2", len(result))
	}
}

func TestNSResolution(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}

	for _, el := range root.Search("http://www.w3.org/2001/XMLSchema", "complexType") {
		if name, ok := el.ResolveNS("xs:string"); !ok {
			t.Errorf("failed to resolve xs: prefix at <%s>", el.Name.Local)
		} else if name.Space != "http://www.w3.org/2001/XMLSchema" {
			t.Errorf("resolved xs:string to namespace %q, want the XML Schema namespace", name.Space)
		}
	}

	include := root.SearchFunc(func(el *Element) bool {
		return el.Name == xml.Name{Space: "http://www.w3.org/2001/XMLSchema", Local: "include"}
	})
	if len(include) != 1 {
		t.Fatalf("expected exactly one xs:include, got %d", len(include))
	}
	if include[0].Attr("", "schemaLocation") != "common.xsd" {
		t.Errorf("schemaLocation = %q, want %q", include[0].Attr("", "schemaLocation"), "common.xsd")
	}
}

func TestString(t *testing.T) {
	root, err := Parse(doc)
	if err != nil {
		t.Fatal(err)
	}
	s := root.String()
	if len(s) < 5 {
		t.Error(s)
	}
}
