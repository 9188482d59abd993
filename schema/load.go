package schema

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/zusi3/schemaparser/xmltree"
)

const (
	xsNS = "http://www.w3.org/2001/XMLSchema"

	// sentinelChildrenFirstType is the one type whose field order is
	// swapped to children-before-attributes, to match the companion
	// binary mesh layout's index record (spec.md section 4.4 item 2).
	sentinelChildrenFirstType = "ReferenzElement"
)

// Logger is satisfied by *log.Logger. Load uses it to report non-fatal
// schema warnings: unknown attribute types, duplicate type
// definitions, and unresolved references (spec.md section 4.1,
// section 7 "Schema errors").
type Logger interface {
	Printf(format string, v ...interface{})
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...interface{}) {}

// Option configures a Load call.
type Option func(*loader)

// ErrorLog sets the logger that Load reports warnings to. If unset,
// warnings are discarded.
func ErrorLog(l Logger) Option {
	return func(ld *loader) { ld.log = l }
}

type rawType struct {
	el *xmltree.Element
}

type loader struct {
	log Logger
	// visited canonicalized XSD file paths, to follow xs:include
	// transitively and uniquely.
	visited map[string]bool
	raw     map[string]rawType
	order   []string
}

// Load reads the XSD document at rootPath and every document it
// transitively xs:includes, and compiles them into a Schema. Included
// paths are canonicalized (via filepath.Abs + filepath.Clean) before
// deduping, so the same file reached via two different relative paths
// is only read once (spec.md section 4.1).
//
// An unreadable root XSD is reported and produces no output. A
// duplicate type definition logs a warning; the second definition is
// discarded.
func Load(rootPath string, opts ...Option) (*Schema, error) {
	ld := &loader{
		log:     nopLogger{},
		visited: make(map[string]bool),
		raw:     make(map[string]rawType),
	}
	for _, opt := range opts {
		opt(ld)
	}
	if err := ld.readFile(rootPath); err != nil {
		return nil, fmt.Errorf("schema: cannot read root XSD %s: %w", rootPath, err)
	}

	s := &Schema{Types: make(map[string]*ElementType)}
	for _, name := range ld.order {
		s.Types[name] = &ElementType{
			Name:          xml.Name{Local: name},
			ChildrenFirst: name == sentinelChildrenFirstType,
		}
	}
	// Second pass: now that every named type has a stub ElementType,
	// fill in attributes, base, and children, resolving forward
	// references through the map built above.
	for _, name := range ld.order {
		t := s.Types[name]
		if err := ld.fillType(s, t, ld.raw[name].el); err != nil {
			return nil, fmt.Errorf("schema: type %s: %w", name, err)
		}
	}
	s.Root = s.Types["Zusi"]
	return s, nil
}

func (ld *loader) readFile(path string) error {
	canon, err := canonicalize(path)
	if err != nil {
		return err
	}
	if ld.visited[canon] {
		return nil
	}
	ld.visited[canon] = true

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	root, err := xmltree.Parse(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	dir := filepath.Dir(path)
	for _, inc := range root.Search(xsNS, "include") {
		loc := inc.Attr("", "schemaLocation")
		if loc == "" {
			continue
		}
		if err := ld.readFile(filepath.Join(dir, loc)); err != nil {
			return fmt.Errorf("include %s: %w", loc, err)
		}
	}
	ld.collectTypes(root)
	return nil
}

func canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.Clean(abs), nil
}

// collectTypes records every complexType found anywhere under root,
// whether declared with an explicit name= attribute or anonymously as
// a direct child of a named xs:element (in which case it takes the
// enclosing element's name).
func (ld *loader) collectTypes(root *xmltree.Element) {
	for _, ct := range root.Search(xsNS, "complexType") {
		name := ct.Attr("", "name")
		if name == "" {
			// Anonymous complexType: the loop below records it under
			// the name of the xs:element that directly encloses it.
			continue
		}
		ld.addType(name, ct)
	}
	for _, el := range root.Search(xsNS, "element") {
		if el.Attr("", "name") == "" {
			continue
		}
		for i := range el.Children {
			if el.Children[i].Name == (xml.Name{Space: xsNS, Local: "complexType"}) {
				if el.Children[i].Attr("", "name") == "" {
					ld.addType(el.Attr("", "name"), &el.Children[i])
				}
			}
		}
	}
}

func (ld *loader) addType(name string, el *xmltree.Element) {
	if _, dup := ld.raw[name]; dup {
		ld.log.Printf("schema: duplicate type %q, keeping first definition", name)
		return
	}
	ld.raw[name] = rawType{el: el}
	ld.order = append(ld.order, name)
}

// fillType populates t's Doc, Base, Attributes, and Children from the
// raw xs:complexType element el.
func (ld *loader) fillType(s *Schema, t *ElementType, el *xmltree.Element) error {
	t.Doc = annotationText(el)

	content := el
	if ext := firstChild(el, xsNS, "complexContent"); ext != nil {
		if e := firstChild(ext, xsNS, "extension"); e != nil {
			baseName := e.Attr("", "base")
			baseName = localName(baseName)
			base, ok := s.Types[baseName]
			if !ok {
				ld.log.Printf("schema: type %s: dangling base %q", t.Name.Local, baseName)
			} else {
				t.Base = base
			}
			content = e
		}
	}

	for _, attr := range directChildren(content, xsNS, "attribute") {
		a, ok := ld.parseAttribute(&attr)
		if !ok {
			continue
		}
		t.Attributes = append(t.Attributes, a)
	}

	for _, el := range walkElements(content) {
		edge, ok := ld.parseChildEdge(s, &el)
		if !ok {
			continue
		}
		t.Children = append(t.Children, edge)
	}
	return nil
}

func (ld *loader) parseAttribute(el *xmltree.Element) (Attribute, bool) {
	name := el.Attr("", "name")
	typ := el.Attr("", "type")
	kind, ok := xsdKindTable[typ]
	if !ok {
		ld.log.Printf("schema: attribute %s: unknown type %q, dropped", name, typ)
		return Attribute{}, false
	}
	doc := annotationText(el)
	return Attribute{
		Name:       name,
		Doc:        doc,
		Kind:       kind,
		Deprecated: isDeprecated(doc),
	}, true
}

func (ld *loader) parseChildEdge(s *Schema, el *xmltree.Element) (ChildEdge, bool) {
	name := el.Attr("", "name")
	typ := el.Attr("", "type")
	if ref := el.Attr("", "ref"); ref != "" {
		name = ref
		typ = ref
	}
	typ = localName(typ)
	target, ok := s.Types[typ]
	if !ok {
		ld.log.Printf("schema: child %s: unknown target type %q, dropped", name, typ)
		return ChildEdge{}, false
	}
	doc := annotationText(el)
	return ChildEdge{
		Name:       name,
		Target:     target,
		Multiple:   isMultiple(el),
		Deprecated: isDeprecated(doc),
	}, true
}

// isMultiple reports whether an xs:element's maxOccurs allows more
// than one occurrence: either "unbounded" or a numeral greater than 1.
func isMultiple(el *xmltree.Element) bool {
	max := el.Attr("", "maxOccurs")
	if max == "" {
		return false
	}
	if max == "unbounded" {
		return true
	}
	n, err := strconv.Atoi(max)
	return err == nil && n > 1
}

func isDeprecated(doc string) bool {
	return strings.Contains(doc, "@deprecated")
}

func localName(qname string) string {
	if i := strings.IndexByte(qname, ':'); i >= 0 {
		return qname[i+1:]
	}
	return qname
}

func annotationText(el *xmltree.Element) string {
	var parts []string
	for _, ann := range el.Search(xsNS, "annotation") {
		for _, doc := range ann.Search(xsNS, "documentation") {
			parts = append(parts, strings.TrimSpace(string(doc.Content)))
		}
	}
	return strings.Join(parts, "\n\n")
}

func firstChild(el *xmltree.Element, space, local string) *xmltree.Element {
	for i := range el.Children {
		if el.Children[i].Name == (xml.Name{Space: space, Local: local}) {
			return &el.Children[i]
		}
	}
	return nil
}

func directChildren(el *xmltree.Element, space, local string) []xmltree.Element {
	var result []xmltree.Element
	for i := range el.Children {
		if el.Children[i].Name == (xml.Name{Space: space, Local: local}) {
			result = append(result, el.Children[i])
		}
	}
	return result
}

// walkElements flattens every descendant xs:element under el,
// regardless of the compositor (xs:sequence, xs:choice, xs:all) that
// groups them, matching spec.md section 4.1's "walk of all descendant
// <xs:element> nodes (flattening any compositor)".
func walkElements(el *xmltree.Element) []xmltree.Element {
	return dedupeElements(el.Search(xsNS, "element"))
}

func dedupeElements(els []*xmltree.Element) []xmltree.Element {
	result := make([]xmltree.Element, 0, len(els))
	for _, e := range els {
		result = append(result, *e)
	}
	return result
}
