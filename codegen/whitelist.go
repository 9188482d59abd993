package codegen

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Whitelist is the optional parent-type-name -> {child-or-attribute
// name} gate of spec.md section 4.5. A nil or empty Whitelist allows
// everything.
type Whitelist map[string]map[string]bool

// alwaysRetained lists the members that stay in every generated record
// regardless of whitelist contents, because parser code elsewhere
// depends on their presence (spec.md section 4.5 and 4.6): the two
// index fields that back the indexed collections, and the three
// legacy colour attributes that are always retained and remapped
// (spec.md section 4.2's deprecated-attribute tie-break).
var alwaysRetained = map[string][]string{
	"StrElement":      {"Nr"},
	"ReferenzElement": {"ReferenzNr"},
}

var alwaysRetainedAttrs = []string{"C", "CA", "E"}

// NewWhitelist builds a Whitelist from "Parent::Name" entries. Name
// may itself contain "::" to express a nested key, in which case only
// the first separator splits parent from member and the remainder is
// kept as one member name (spec.md section 6, "--whitelist").
func NewWhitelist(entries ...string) (Whitelist, error) {
	w := make(Whitelist)
	for _, e := range entries {
		parts := strings.SplitN(e, "::", 2)
		if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
			return nil, fmt.Errorf("codegen: invalid whitelist entry %q, want Parent::Name", e)
		}
		w.add(parts[0], parts[1])
	}
	w.addDefaults()
	return w, nil
}

func (w Whitelist) add(parent, name string) {
	if w[parent] == nil {
		w[parent] = make(map[string]bool)
	}
	w[parent][name] = true
}

// addDefaults seeds the two structural index fields, whose parent type
// names are fixed and known up front, into a non-empty whitelist. An
// empty whitelist is left empty so that it keeps allowing everything.
// The legacy colour attributes (C, CA, E) are not seeded here because
// they can appear on any type; Allow and Listed grant them
// unconditionally instead.
func (w Whitelist) addDefaults() {
	if len(w) == 0 {
		return
	}
	for parent, names := range alwaysRetained {
		for _, n := range names {
			w.add(parent, n)
		}
	}
}

// whitelistFile is the shape of a --whitelist-file YAML document: a
// map from parent type name to a list of retained member names.
type whitelistFile map[string][]string

// LoadWhitelistFile reads a YAML document of the form
//
//	ParentName:
//	  - ChildOrAttr
//	  - AnotherOne
//
// and merges it into an existing Whitelist (or builds a fresh one if
// base is nil).
func LoadWhitelistFile(data []byte, base Whitelist) (Whitelist, error) {
	var doc whitelistFile
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("codegen: parsing whitelist file: %w", err)
	}
	w := base
	if w == nil {
		w = make(Whitelist)
	}
	for parent, names := range doc {
		for _, n := range names {
			w.add(parent, n)
		}
	}
	w.addDefaults()
	return w, nil
}

// Empty reports whether the whitelist has no entries at all, meaning
// "emit everything" (spec.md section 4.5).
func (w Whitelist) Empty() bool {
	return len(w) == 0
}

// Allow reports whether member name on parentType should be emitted.
// Legacy colour attributes are always allowed regardless of the
// whitelist's contents or emptiness, per spec.md section 4.2.
func (w Whitelist) Allow(parentType, name string) bool {
	for _, n := range alwaysRetainedAttrs {
		if name == n {
			return true
		}
	}
	if w.Empty() {
		return true
	}
	return w.Listed(parentType, name)
}

// Listed reports whether member name on parentType was explicitly
// named, regardless of whether the whitelist as a whole is empty. This
// is the check deprecated fields use: they are dropped even when no
// whitelist is in effect, unless individually named (spec.md
// section 4.2, "Tie-breaks and edge cases"). The legacy colour
// attributes count as named on every type, so they are kept even when
// deprecated.
func (w Whitelist) Listed(parentType, name string) bool {
	for _, n := range alwaysRetainedAttrs {
		if name == n {
			return true
		}
	}
	members, ok := w[parentType]
	if !ok {
		return false
	}
	return members[name]
}
