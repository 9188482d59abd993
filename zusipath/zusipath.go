// Package zusipath implements the schema path algebra spec.md section
// 6 describes: translating a Zusi-style path (backslash-separated,
// relative to one of two data roots) to and from a host OS path, and
// resolving one schema path against the schema path of the file that
// referenced it. None of this touches the filesystem itself — every
// function here is a pure string transform over roots and existence
// facts the caller supplies, keeping the algebra testable without a
// filesystem (grounded on the original's zusiPfadZuOsPfad and
// ZusiPfad::vonZusiPfad; ToOSPath/ToSchemaPath generalize the former
// across two data roots instead of its single root, and Resolve
// reimplements the latter's relative-to-enclosing-directory join).
package zusipath

import (
	"path/filepath"
	"strings"
)

const zusiSep = '\\'

// stripLeadingSep removes exactly one leading zusiSep, per spec.md
// section 6 "a leading \ is stripped".
func stripLeadingSep(p string) string {
	return strings.TrimPrefix(p, string(zusiSep))
}

// toOSSeparators rewrites every zusiSep to the host's
// filepath.Separator; on a host where the two already coincide this is
// a no-op pass.
func toOSSeparators(p string) string {
	if filepath.Separator == zusiSep {
		return p
	}
	return strings.ReplaceAll(p, string(zusiSep), string(filepath.Separator))
}

// ToOSPath translates a schema path into an OS path. userRootHasFile
// reports whether the caller already found zusiPath under userRoot
// (an os.Stat the caller performs before calling in); when true, the
// user root is preferred, otherwise the official root is used
// (spec.md section 6, "joining against a known user root if that file
// exists, else ... the official root").
func ToOSPath(zusiPath, userRoot, officialRoot string, userRootHasFile bool) string {
	root := officialRoot
	if userRootHasFile {
		root = userRoot
	}
	rel := toOSSeparators(stripLeadingSep(zusiPath))
	return filepath.Join(root, rel)
}

// ToSchemaPath translates an OS path back into a schema path relative
// to one of the two roots: the official root is tried first, then the
// user root, falling back to a canonicalised relative path (with no
// root prefix resolved) if osPath is under neither (spec.md section 6,
// "try the official prefix first, then the user prefix, falling back
// to a canonicalised relative computation").
func ToSchemaPath(osPath, userRoot, officialRoot string) string {
	if rel, ok := relativeTo(osPath, officialRoot); ok {
		return toZusiSeparators(rel)
	}
	if rel, ok := relativeTo(osPath, userRoot); ok {
		return toZusiSeparators(rel)
	}
	return toZusiSeparators(filepath.Clean(osPath))
}

func relativeTo(path, root string) (string, bool) {
	if root == "" {
		return "", false
	}
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return "", false
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", false
	}
	return rel, true
}

func toZusiSeparators(p string) string {
	if filepath.Separator == zusiSep {
		return p
	}
	return strings.ReplaceAll(p, string(filepath.Separator), string(zusiSep))
}

// Resolve joins a schema path against the schema path of the file that
// referenced it, both expressed in Zusi path syntax (spec.md section 6
// scenario 3: a bare relative path is resolved against enclosing's
// directory; a path that already contains a separator names its own
// location relative to the data root and enclosing is ignored
// entirely; a leading separator is always stripped).
func Resolve(zusiPath, enclosing string) string {
	p := stripLeadingSep(zusiPath)
	if p == "" {
		return ""
	}
	if strings.ContainsRune(p, zusiSep) {
		return p
	}
	return enclosingDir(stripLeadingSep(enclosing)) + p
}

// enclosingDir returns the directory portion of an already-stripped
// enclosing path: everything up to and including its last separator,
// or "" if enclosing names a bare filename with no directory.
func enclosingDir(enclosing string) string {
	if enclosing == "" || strings.HasSuffix(enclosing, string(zusiSep)) {
		return enclosing
	}
	idx := strings.LastIndexByte(enclosing, zusiSep)
	if idx < 0 {
		return ""
	}
	return enclosing[:idx+1]
}
