package zusi

import "github.com/zusi3/schemaparser/runtime"

// Parse parses a complete Zusi document from data: BOM, prologue, then
// the root Zusi element. It is the hand-authored equivalent of the
// small driver a caller writes around the generated parse_element_*
// functions (spec.md section 4.6, "Entry point").
func Parse(data []byte) (*Zusi, error) {
	c := runtime.NewCursor(data)
	c.SkipBOM()
	if err := c.SkipProlog(); err != nil {
		return nil, err
	}
	if err := c.ExpectByte('<'); err != nil {
		return nil, err
	}
	name := c.ReadName()
	c.SkipWhitespace()
	if string(name) != "Zusi" {
		return nil, c.Fail("expected root element Zusi, got %q", name)
	}
	rec := new(Zusi)
	if err := parse_element_Zusi(c, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

func parse_element_Zusi(c *runtime.Cursor, rec *Zusi) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		default:
			runtime.Warnf(c, "Zusi: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "Info":
			child := new(Info)
			if err := parse_element_Info(c, child); err != nil {
				return err
			}
			rec.Info = child
		default:
			runtime.Warnf(c, "Zusi: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}

func parse_element_Info(c *runtime.Cursor, rec *Info) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "DateiTyp":
			v, err := runtime.DecodeString(c, quote)
			if err != nil {
				return err
			}
			rec.DateiTyp = v
		case "Version":
			v, err := runtime.DecodeString(c, quote)
			if err != nil {
				return err
			}
			rec.Version = v
		case "MinVersion":
			v, err := runtime.DecodeString(c, quote)
			if err != nil {
				return err
			}
			rec.MinVersion = v
		default:
			runtime.Warnf(c, "Info: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "AutorEintrag":
			child := new(AutorEintrag)
			if err := parse_element_AutorEintrag(c, child); err != nil {
				return err
			}
			rec.AutorEintrag = append(rec.AutorEintrag, child)
		default:
			runtime.Warnf(c, "Info: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}

func parse_element_AutorEintrag(c *runtime.Cursor, rec *AutorEintrag) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "AutorID":
			v, err := runtime.DecodeInt32(c, quote)
			if err != nil {
				return err
			}
			rec.AutorID = v
		case "AutorName":
			v, err := runtime.DecodeString(c, quote)
			if err != nil {
				return err
			}
			rec.AutorName = v
		default:
			runtime.Warnf(c, "AutorEintrag: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
}

// parse_element_Vec3 is shape-polymorphic over attribute name; see
// codegen's vectorShapeFields.
func parse_element_Vec3(c *runtime.Cursor, rec *Vec3) error {
	fields := [3]*float32{&rec.X, &rec.Y, &rec.Z}
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
			idx := int(name[0] - 'X')
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
}

func parse_element_StrElement(c *runtime.Cursor, rec *StrElement) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "Nr":
			v, err := runtime.DecodeInt32(c, quote)
			if err != nil {
				return err
			}
			rec.Nr = v
		default:
			runtime.Warnf(c, "StrElement: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
}

func parse_element_StrElementListe(c *runtime.Cursor, rec *StrElementListe) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		default:
			runtime.Warnf(c, "StrElementListe: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "StrElement":
			var child StrElement
			if err := parse_element_StrElement(c, &child); err != nil {
				return err
			}
			rec.StrElement.Put(int(child.Nr), child)
		default:
			runtime.Warnf(c, "StrElementListe: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}

func parse_element_ReferenzElement(c *runtime.Cursor, rec *ReferenzElement) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "ReferenzNr":
			v, err := runtime.DecodeInt32(c, quote)
			if err != nil {
				return err
			}
			rec.ReferenzNr = v
		default:
			runtime.Warnf(c, "ReferenzElement: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "p":
			if err := parse_element_Vec3(c, &rec.P); err != nil {
				return err
			}
		default:
			runtime.Warnf(c, "ReferenzElement: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}

func parse_element_ReferenzElementListe(c *runtime.Cursor, rec *ReferenzElementListe) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		default:
			runtime.Warnf(c, "ReferenzElementListe: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "ReferenzElement":
			var child ReferenzElement
			if err := parse_element_ReferenzElement(c, &child); err != nil {
				return err
			}
			rec.ReferenzElement.Put(int(child.ReferenzNr), child)
		default:
			runtime.Warnf(c, "ReferenzElementListe: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}

func parse_element_NachfolgerSelbesModul(c *runtime.Cursor, rec *NachfolgerSelbesModul) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "Nr":
			v, err := runtime.DecodeInt32(c, quote)
			if err != nil {
				return err
			}
			rec.Nr = v
		default:
			runtime.Warnf(c, "NachfolgerSelbesModul: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
}

func parse_element_Streckenelement(c *runtime.Cursor, rec *Streckenelement) error {
	for c.AtAttributeStart() {
		name := c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		switch string(name) {
		case "Nr":
			v, err := runtime.DecodeInt32(c, quote)
			if err != nil {
				return err
			}
			rec.Nr = v
		default:
			runtime.Warnf(c, "Streckenelement: unknown attribute %s", name)
			_, _ = runtime.DecodeString(c, quote)
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
	for {
		c.SkipWhitespace()
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		childName := c.ReadElementName()
		switch childName {
		case "NachfolgerSelbesModul":
			var child NachfolgerSelbesModul
			if err := parse_element_NachfolgerSelbesModul(c, &child); err != nil {
				return err
			}
			rec.NachfolgerSelbesModul = append(rec.NachfolgerSelbesModul, child)
		default:
			runtime.Warnf(c, "Streckenelement: unknown child %s", childName)
			if err := c.SkipElement(); err != nil {
				return err
			}
		}
	}
}
