package zusipath

import "testing"

func TestToOSPath(t *testing.T) {
	cases := []struct {
		zusiPath                string
		userRoot, officialRoot  string
		userRootHasFile         bool
		want                    string
	}{
		{`test2.ls3`, `/data/user`, `/data/official`, false, `/data/official/test2.ls3`},
		{`test2.ls3`, `/data/user`, `/data/official`, true, `/data/user/test2.ls3`},
		{`\RollingStock\test2.ls3`, `/data/user`, `/data/official`, false, `/data/official/RollingStock/test2.ls3`},
	}
	for _, c := range cases {
		got := ToOSPath(c.zusiPath, c.userRoot, c.officialRoot, c.userRootHasFile)
		if got != c.want {
			t.Errorf("ToOSPath(%q, %q, %q, %v) = %q, want %q", c.zusiPath, c.userRoot, c.officialRoot, c.userRootHasFile, got, c.want)
		}
	}
}

func TestToSchemaPath(t *testing.T) {
	got := ToSchemaPath("/data/official/RollingStock/test2.ls3", "/data/user", "/data/official")
	want := `RollingStock\test2.ls3`
	if got != want {
		t.Errorf("ToSchemaPath = %q, want %q", got, want)
	}

	got = ToSchemaPath("/data/user/RollingStock/test2.ls3", "/data/user", "/data/official")
	want = `RollingStock\test2.ls3`
	if got != want {
		t.Errorf("ToSchemaPath = %q, want %q", got, want)
	}
}

func TestToSchemaPath_FallsBackToRelative(t *testing.T) {
	got := ToSchemaPath("/other/place/test2.ls3", "/data/user", "/data/official")
	want := `\other\place\test2.ls3`
	if got != want {
		t.Errorf("ToSchemaPath = %q, want %q", got, want)
	}
}

func TestResolve(t *testing.T) {
	cases := []struct {
		name, zusiPath, enclosing, want string
	}{
		{"bare filename enclosing", "test2.ls3", `RollingStock\Test`, `RollingStock\test2.ls3`},
		{"directory enclosing", "test2.ls3", `RollingStock\Test\`, `RollingStock\Test\test2.ls3`},
		{"file enclosing", "test2.ls3", `RollingStock\Test\test.ls3`, `RollingStock\Test\test2.ls3`},
		{"empty enclosing", "test2.ls3", "", "test2.ls3"},
		{"bare separator enclosing", "test2.ls3", `\`, "test2.ls3"},
		{"rooted child ignores enclosing", `Test2\test2.ls3`, `RollingStock\Test\test.ls3`, `Test2\test2.ls3`},
		{"leading separator stripped from rooted child", `\Test2\test2.ls3`, `RollingStock\Test\test.ls3`, `Test2\test2.ls3`},
		{"rooted directory child", `Test2\`, `RollingStock\Test\test.ls3`, `Test2\`},
		{"bare separator child", `\`, `RollingStock\Test\test.ls3`, ""},
		{"empty child", "", `RollingStock\Test\test.ls3`, ""},
	}
	for _, c := range cases {
		if got := Resolve(c.zusiPath, c.enclosing); got != c.want {
			t.Errorf("%s: Resolve(%q, %q) = %q, want %q", c.name, c.zusiPath, c.enclosing, got, c.want)
		}
	}
}
