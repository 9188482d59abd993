package codegen

import (
	"fmt"
	"go/ast"
	"go/token"
	"strings"

	"github.com/zusi3/schemaparser/internal/gen"
	"github.com/zusi3/schemaparser/layout"
	"github.com/zusi3/schemaparser/schema"
)

// decodeCall names the runtime package function that decodes one
// AttributeKind, and the Go expression (as source text) that reads its
// result directly into a given destination lvalue.
func decodeCall(k schema.AttributeKind, dst string) string {
	switch k {
	case schema.Int32:
		return fmt.Sprintf("v, err := runtime.DecodeInt32(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.Int64:
		return fmt.Sprintf("v, err := runtime.DecodeInt64(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.Boolean:
		return fmt.Sprintf("v, err := runtime.DecodeBool(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.String:
		return fmt.Sprintf("v, err := runtime.DecodeString(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.Float:
		return fmt.Sprintf("v, err := runtime.DecodeFloat32(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.DateTime:
		return fmt.Sprintf("if !runtime.DecodeDateTime(c, quote, &%s) {\nruntime.Warnf(c, \"malformed dateTime\")\n}", dst)
	case schema.HexInt32:
		return fmt.Sprintf("v, err := runtime.DecodeHexInt32(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.FaceIndexes:
		return fmt.Sprintf("v, err := runtime.DecodeFaceIndexes(c, quote)\nif err != nil { return err }\n%s = v", dst)
	case schema.ArgbColor:
		return fmt.Sprintf("v, err := runtime.DecodeArgbColor(c, quote)\nif err != nil { return err }\n%s = v", dst)
	default:
		return fmt.Sprintf("v, err := runtime.DecodeInt32(c, quote)\nif err != nil { return err }\n%s = v", dst)
	}
}

// legacyColorNames is the fixed set spec.md section 4.4 calls out by
// name; any attribute with one of these names is decoded with
// DecodeLegacyColor instead of the kind its declared AttributeKind
// (HexInt32 or ArgbColor) would otherwise select.
var legacyColorNames = map[string]bool{"C": true, "CA": true, "E": true}

// vectorShapeFields gives the ordered field list for the three
// shape-polymorphic record types (spec.md section 4.4, "Special
// vector/quaternion types"), and the byte that the first letter of the
// field name is offset from.
var vectorShapeFields = map[string]struct {
	fields []string
	base   byte
}{
	"Vec2":       {[]string{"X", "Y"}, 'X'},
	"Vec3":       {[]string{"X", "Y", "Z"}, 'X'},
	"Quaternion": {[]string{"W", "X", "Y", "Z"}, 'W'},
}

// ParserFuncName returns the name of the generated parse function for
// type name.
func ParserFuncName(name string) string {
	return "parse_element_" + name
}

// ParserFuncDecl builds the parse_element_T function for a concrete
// type (spec.md section 4.4 item 3, section 4.6 "Concrete types").
func ParserFuncDecl(t *schema.ElementType, plan *layout.Plan, w Whitelist) (*gen.Function, error) {
	if shape, ok := vectorShapeFields[t.Name.Local]; ok {
		return vectorShapeParserFunc(t, shape.fields, shape.base), nil
	}
	return genericParserFunc(t, plan, w)
}

func vectorShapeParserFunc(t *schema.ElementType, fields []string, base byte) *gen.Function {
	var ptrs []string
	for _, f := range fields {
		ptrs = append(ptrs, "&rec."+f)
	}
	body := fmt.Sprintf(`
fields := [%d]*float32{%s}
for c.AtAttributeStart() {
	name := c.ReadName()
	if err := c.ExpectByte('='); err != nil {
		return err
	}
	quote, err := c.ReadQuote()
	if err != nil {
		return err
	}
	if len(name) == 1 {
		idx := int(name[0] - %q)
		if idx >= 0 && idx < len(fields) {
			v, err := runtime.DecodeFloat32(c, quote)
			if err != nil {
				return err
			}
			*fields[idx] = v
		} else {
			if _, err := runtime.DecodeFloat32(c, quote); err != nil {
				return err
			}
		}
	} else {
		if _, err := runtime.DecodeFloat32(c, quote); err != nil {
			return err
		}
	}
	if err := c.ExpectByte(quote); err != nil {
		return err
	}
	c.SkipWhitespace()
}
empty, ok := c.AtElementEnd()
if !ok {
	return c.Fail("expected '>' or '/>'")
}
c.ConsumeElementEnd(empty)
if empty {
	return nil
}
return c.SkipElementBody()
`, len(fields), strings.Join(ptrs, ", "), base)

	return gen.Func(ParserFuncName(t.Name.Local)).
		Args("c *runtime.Cursor", "rec *"+t.Name.Local).
		Returns("error").
		Comment(fmt.Sprintf("%s is shape-polymorphic over attribute name; see vectorShapeFields.", ParserFuncName(t.Name.Local))).
		Body(body)
}

// genericParserFunc emits the ordinary attribute-name-dispatch,
// child-name-dispatch shape of spec.md section 4.4 item 3. Go's own
// string-equality switch is the idiomatic equivalent of the
// length-then-memcmp guard chain the original generator used; the
// compiler already lowers it to the same kind of comparison ladder.
func genericParserFunc(t *schema.ElementType, plan *layout.Plan, w Whitelist) (*gen.Function, error) {
	var b strings.Builder

	b.WriteString("for c.AtAttributeStart() {\n")
	b.WriteString("name := c.ReadName()\n")
	b.WriteString("if err := c.ExpectByte('='); err != nil {\nreturn err\n}\n")
	b.WriteString("quote, err := c.ReadQuote()\n")
	b.WriteString("if err != nil {\nreturn err\n}\n")
	b.WriteString("switch string(name) {\n")
	for _, a := range t.AllAttributes() {
		if a.Deprecated && !w.Listed(t.Name.Local, a.Name) {
			continue
		}
		if !w.Allow(t.Name.Local, a.Name) {
			continue
		}
		kind := a.Kind
		if legacyColorNames[a.Name] {
			fmt.Fprintf(&b, "case %q:\n%s\n", a.Name, fmt.Sprintf("v, err := runtime.DecodeLegacyColor(c, quote)\nif err != nil { return err }\nrec.%s = v", gen.Public(a.Name).Name))
			continue
		}
		fmt.Fprintf(&b, "case %q:\n%s\n", a.Name, decodeCall(kind, "rec."+gen.Public(a.Name).Name))
	}
	b.WriteString("default:\n")
	b.WriteString(fmt.Sprintf("runtime.Warnf(c, \"%s: unknown attribute %%s\", name)\n", t.Name.Local))
	// Skip the unknown value so the closing quote is next.
	b.WriteString("_, _ = runtime.DecodeString(c, quote)\n")
	b.WriteString("}\n")
	b.WriteString("if err := c.ExpectByte(quote); err != nil {\nreturn err\n}\n")
	b.WriteString("c.SkipWhitespace()\n")
	b.WriteString("}\n")

	b.WriteString("empty, ok := c.AtElementEnd()\n")
	b.WriteString("if !ok {\nreturn c.Fail(\"expected '>' or '/>'\")\n}\n")
	b.WriteString("c.ConsumeElementEnd(empty)\n")
	b.WriteString("if empty {\nreturn nil\n}\n")

	children := t.AllChildren()
	if len(children) == 0 {
		b.WriteString("return c.SkipElementBody()\n")
	} else {
		b.WriteString("for {\n")
		b.WriteString("c.SkipWhitespace()\n")
		b.WriteString("if done, err := c.AtClosingTag(); err != nil {\nreturn err\n} else if done {\nreturn nil\n}\n")
		b.WriteString("childName := c.ReadElementName()\n")
		b.WriteString("switch childName {\n")
		for _, child := range children {
			if child.Deprecated && !w.Listed(t.Name.Local, child.Name) {
				continue
			}
			if !w.Allow(t.Name.Local, child.Name) {
				continue
			}
			d := plan.DecisionFor(t, child.Name)
			fmt.Fprintf(&b, "case %q:\n%s\n", child.Name, childDispatchBody(t, child, d))
		}
		b.WriteString("default:\n")
		b.WriteString(fmt.Sprintf("runtime.Warnf(c, \"%s: unknown child %%s\", childName)\n", t.Name.Local))
		b.WriteString("if err := c.SkipElement(); err != nil {\nreturn err\n}\n")
		b.WriteString("}\n")
		b.WriteString("}\n")
	}

	return gen.Func(ParserFuncName(t.Name.Local)).
		Args("c *runtime.Cursor", "rec *"+t.Name.Local).
		Returns("error").
		Body(b.String()), nil
}

// childDispatchBody emits the code that constructs storage for one
// child edge per its planned embedding strategy, then recurses into
// that child's parser.
func childDispatchBody(parent *schema.ElementType, c schema.ChildEdge, d layout.Decision) string {
	field := "rec." + gen.Public(c.Name).Name
	parse := ParserFuncName(c.Target.Name.Local)
	switch d.Strategy {
	case layout.Heap:
		switch {
		case d.Indexed:
			indexField := layout.IndexField(c.Target.Name.Local)
			return fmt.Sprintf(`
var child %s
if err := %s(c, &child); err != nil {
	return err
}
%s.Put(int(child.%s), child)
`, c.Target.Name.Local, parse, field, indexField)
		case d.Multiple:
			return fmt.Sprintf(`
child := new(%s)
if err := %s(c, child); err != nil {
	return err
}
%s = append(%s, child)
`, c.Target.Name.Local, parse, field, field)
		default:
			return fmt.Sprintf(`
child := new(%s)
if err := %s(c, child); err != nil {
	return err
}
%s = child
`, c.Target.Name.Local, parse, field)
		}
	case layout.Optional:
		return fmt.Sprintf(`
var child %s
if err := %s(c, &child); err != nil {
	return err
}
%s = &child
`, c.Target.Name.Local, parse, field)
	case layout.Inline:
		return fmt.Sprintf(`
if err := %s(c, &%s); err != nil {
	return err
}
`, parse, field)
	case layout.SmallVector:
		return fmt.Sprintf(`
var child %s
if err := %s(c, &child); err != nil {
	return err
}
%s = append(%s, child)
`, c.Target.Name.Local, parse, field, field)
	default:
		return fmt.Sprintf(`
child := new(%s)
if err := %s(c, child); err != nil {
	return err
}
%s = child
`, c.Target.Name.Local, parse, field)
	}
}

// parserFiles builds the parsers_fwd.go (signatures only) and
// parsers.go (full bodies) artefacts for every type in order.
func parserFiles(cfg *Config, order []*schema.ElementType, plan *layout.Plan, w Whitelist) (fwd, defs *ast.File, err error) {
	var fwdDecls, defDecls []ast.Decl
	for _, t := range order {
		fn, err := ParserFuncDecl(t, plan, w)
		if err != nil {
			return nil, nil, fmt.Errorf("codegen: %s: %w", t.Name.Local, err)
		}
		decl, err := fn.Decl()
		if err != nil {
			return nil, nil, fmt.Errorf("codegen: %s: %w", t.Name.Local, err)
		}
		defDecls = append(defDecls, decl)
		fwdDecls = append(fwdDecls, &ast.GenDecl{
			Tok: token.VAR,
			Specs: []ast.Spec{
				&ast.ValueSpec{
					Names: []*ast.Ident{ast.NewIdent("_")},
					Type: &ast.FuncType{
						Params:  decl.Type.Params,
						Results: decl.Type.Results,
					},
				},
			},
		})
	}

	importDecl := &ast.GenDecl{
		Tok: token.IMPORT,
		Specs: []ast.Spec{
			&ast.ImportSpec{Path: gen.String("github.com/zusi3/schemaparser/runtime")},
		},
	}

	fwd = &ast.File{Name: ast.NewIdent(cfg.PackageName), Decls: append([]ast.Decl{importDecl}, fwdDecls...)}
	defs = &ast.File{Name: ast.NewIdent(cfg.PackageName), Decls: append([]ast.Decl{importDecl}, defDecls...)}
	return fwd, defs, nil
}
