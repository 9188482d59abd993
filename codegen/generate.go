package codegen

import (
	"fmt"
	"go/ast"
	"os"
	"path/filepath"
	"sort"

	"github.com/zusi3/schemaparser/internal/dependency"
	"github.com/zusi3/schemaparser/internal/gen"
	"github.com/zusi3/schemaparser/layout"
	"github.com/zusi3/schemaparser/schema"
)

// glmAliases names the three shape-polymorphic vector/quaternion
// types whose record definition is replaced by a type alias into
// gentests/glmcompat when Config.UseGLM is set (spec.md section 6,
// "--use-glm").
var glmAliases = map[string]string{
	"Vec2":       "Vec2",
	"Vec3":       "Vec3",
	"Quaternion": "Quat",
}

// Generate compiles s into the four fixed-name artefacts spec.md
// section 4.4/6 describes and writes them under cfg.OutDir:
// records_fwd.go (forward declarations), records.go (record
// definitions), parsers_fwd.go (parser function signatures) and
// parsers.go (parser function bodies).
func Generate(s *schema.Schema, cfg *Config) error {
	order := topoOrder(s)

	plan, err := layout.Build(order)
	if err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	w := cfg.Whitelist
	if w == nil {
		w = make(Whitelist)
	}
	if !cfg.IgnoreUnknown {
		for _, msg := range validateWhitelist(w, s) {
			cfg.logf("codegen: whitelist: %s", msg)
		}
	}

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("codegen: %w", err)
	}

	fwdFile, err := recordForwardFile(cfg, order)
	if err != nil {
		return err
	}
	if err := writeGoFile(cfg, "records_fwd.go", fwdFile); err != nil {
		return err
	}

	recFile, err := recordDefinitionFile(cfg, order, plan, w)
	if err != nil {
		return err
	}
	if err := writeGoFile(cfg, "records.go", recFile); err != nil {
		return err
	}

	parserFwdFile, parserDefFile, err := parserFiles(cfg, order, plan, w)
	if err != nil {
		return err
	}
	if err := writeGoFile(cfg, "parsers_fwd.go", parserFwdFile); err != nil {
		return err
	}
	if err := writeGoFile(cfg, "parsers.go", parserDefFile); err != nil {
		return err
	}
	return nil
}

func writeGoFile(cfg *Config, name string, file *ast.File) error {
	out, err := gen.FormattedSource(file)
	if err != nil {
		return fmt.Errorf("codegen: formatting %s: %w", name, err)
	}
	return os.WriteFile(filepath.Join(cfg.OutDir, name), out, 0o644)
}

// topoOrder visits every element type in dependency order: a type
// that another type value-inlines, optionally-inlines, or
// small-vector-embeds (spec.md section 4.2) is ordered before that
// other type, so layout.Build can size each type before anything that
// might need its size. Self-recursive edges are excluded from the
// graph, matching the Heap strategy Decide always gives them. Types
// that appear in no edge at all (no base, no non-self child, and never
// a base or child of another type) are appended last, in alphabetical
// order, for a deterministic result.
func topoOrder(s *schema.Schema) []*schema.ElementType {
	g := &dependency.Graph{}
	for _, t := range s.Types {
		if t.Base != nil {
			g.Add(t.Name.Local, t.Base.Name.Local)
		}
		for _, c := range t.Children {
			if c.Target == t {
				continue
			}
			g.Add(t.Name.Local, c.Target.Name.Local)
		}
	}

	var names []string
	seen := make(map[string]bool)
	g.Flatten(func(name string) {
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	})

	var missing []string
	for name := range s.Types {
		if !seen[name] {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	names = append(names, missing...)

	order := make([]*schema.ElementType, 0, len(names))
	for _, name := range names {
		if t, ok := s.Types[name]; ok {
			order = append(order, t)
		}
	}
	return order
}

// validateWhitelist reports, as human-readable messages, every
// whitelist entry naming a parent type or member that the schema
// doesn't actually have. Per spec.md section 4.5, these are reported
// but non-fatal: a typo in a --whitelist flag shouldn't abort
// generation, only warn.
func validateWhitelist(w Whitelist, s *schema.Schema) []string {
	var msgs []string
	var parents []string
	for p := range w {
		parents = append(parents, p)
	}
	sort.Strings(parents)
	for _, parent := range parents {
		t, ok := s.Types[parent]
		if !ok {
			msgs = append(msgs, fmt.Sprintf("unknown parent type %q", parent))
			continue
		}
		known := make(map[string]bool)
		for _, a := range t.AllAttributes() {
			known[a.Name] = true
		}
		for _, c := range t.AllChildren() {
			known[c.Name] = true
		}
		var members []string
		for m := range w[parent] {
			members = append(members, m)
		}
		sort.Strings(members)
		for _, m := range members {
			if !known[m] {
				msgs = append(msgs, fmt.Sprintf("%s: unknown member %q", parent, m))
			}
		}
	}
	return msgs
}
