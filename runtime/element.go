package runtime

import "log"

// ConsumeElementEnd advances past an opening tag's terminator, once
// AtElementEnd has reported which form it is: "/>" (empty) or the
// single '>' that precedes an element's content.
func (c *Cursor) ConsumeElementEnd(empty bool) {
	if empty {
		c.pos += 2
		return
	}
	c.pos++
}

// AtClosingTag reports whether the cursor is positioned at a closing
// tag ("</Name>"), consuming it if so. It does not check that Name
// matches the element currently being parsed; well-formed input
// guarantees the next closing tag an element's own child-dispatch loop
// sees is its own.
func (c *Cursor) AtClosingTag() (bool, error) {
	if c.peek() != '<' || c.peekAt(1) != '/' {
		return false, nil
	}
	c.pos += 2
	c.ReadName()
	c.SkipWhitespace()
	if err := c.ExpectByte('>'); err != nil {
		return false, err
	}
	return true, nil
}

// ReadElementName consumes the '<' that starts a child element's
// opening tag and returns its name, leaving the cursor positioned
// just after the name, ready to scan attributes.
func (c *Cursor) ReadElementName() string {
	c.TryByte('<')
	name := c.ReadName()
	c.SkipWhitespace()
	return string(name)
}

// skipPastByte advances the cursor until it reaches b, without
// consuming b itself.
func (c *Cursor) skipPastByte(b byte) error {
	for !c.atEnd() {
		if c.buf[c.pos] == b {
			return nil
		}
		c.pos++
	}
	return c.Fail("unexpected end of data")
}

// SkipElement discards an entire element whose opening tag's name has
// already been consumed (by ReadElementName or an equivalent manual
// '<' + ReadName): its attributes, and, if it is not empty, its full
// body up to and including the matching closing tag. Used to discard
// an unrecognized child element (spec.md section 4.6, unknown
// element/attribute handling).
func (c *Cursor) SkipElement() error {
	for c.AtAttributeStart() {
		c.ReadName()
		if err := c.ExpectByte('='); err != nil {
			return err
		}
		quote, err := c.ReadQuote()
		if err != nil {
			return err
		}
		if err := c.skipPastByte(quote); err != nil {
			return err
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

// SkipElementBody discards all content up to and including the
// matching closing tag. The cursor must be positioned just after the
// opening tag's '>' (a non-empty element). Each nested element is
// fully consumed by recursing through SkipElement, so same-named
// nested elements never get confused with the outer closing tag
// (spec.md section 4.6, unknown element/attribute handling).
func (c *Cursor) SkipElementBody() error {
	for {
		c.SkipWhitespace()
		if c.atEnd() {
			return c.Fail("unexpected end of data")
		}
		if c.peek() != '<' {
			c.pos++
			continue
		}
		if done, err := c.AtClosingTag(); err != nil {
			return err
		} else if done {
			return nil
		}
		c.pos++
		c.ReadName()
		if err := c.SkipElement(); err != nil {
			return err
		}
	}
}

// Warnf reports a non-fatal condition encountered while parsing:
// an unknown attribute or child element name, or a malformed lenient
// field such as a dateTime (spec.md section 7, "lenient" entries).
// Generated parser functions call this instead of failing outright.
var Warnf = func(c *Cursor, format string, args ...interface{}) {
	log.Printf("offset %d: "+format, append([]interface{}{c.Pos()}, args...)...)
}
