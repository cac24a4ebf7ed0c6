package colorrule

import "testing"

func simpleGlob(pattern, name string) bool {
	ok, _ := matchSimple(pattern, name)
	return ok
}

// matchSimple is a tiny fnmatch stand-in (exact suffix/prefix/exact) used
// only by this package's own tests, which exercise cascade plumbing, not
// the real glob engine (internal/globmatch is tested separately).
func matchSimple(pattern, name string) (bool, error) {
	if pattern == name {
		return true, nil
	}
	if len(pattern) > 1 && pattern[0] == '*' {
		suffix := pattern[1:]
		return len(name) >= len(suffix) && name[len(name)-len(suffix):] == suffix, nil
	}
	return false, nil
}

func TestParseRulesBasic(t *testing.T) {
	table := NewTable()
	errs := ParseRules(table, `di=1;33:ln=1;34:*.zip=36:or=31`)
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}

	if len(table.Rules) != 4 {
		t.Fatalf("len(table.Rules) = %d, want 4", len(table.Rules))
	}

	// lookup on a directory entry with no other attributes returns "1;33"
	got := table.Lookup(EntryInfo{Name: "somedir", Attr: AttrDirectory}, simpleGlob)
	if got != "1;33" {
		t.Errorf("directory lookup = %q, want 1;33", got)
	}

	// lookup on a regular file named archive.ZIP returns "36"
	got = table.Lookup(EntryInfo{Name: "archive.ZIP"}, func(pattern, name string) bool {
		ok, _ := matchSimple(toLowerASCII(pattern), toLowerASCII(name))
		return ok
	})
	if got != "36" {
		t.Errorf("archive.ZIP lookup = %q, want 36", got)
	}

	// lookup on an orphaned reparse point returns "31"
	got = table.Lookup(EntryInfo{Name: "dangling.lnk", OrphanedReparse: true}, simpleGlob)
	if got != "31" {
		t.Errorf("orphan lookup = %q, want 31", got)
	}
}

func toLowerASCII(s string) string {
	b := []byte(s)
	for i, c := range b {
		if c >= 'A' && c <= 'Z' {
			b[i] = c + ('a' - 'A')
		}
	}
	return string(b)
}

func TestValidateSGRClosedSet(t *testing.T) {
	cases := []struct {
		in string
		ok bool
	}{
		{"1;33", true},
		{"38;5;200", true},
		{"38;5;300", false}, // out of range
		{"38;2;255;0;0", true},
		{"999", false}, // not in closed set
		{"", false},
	}
	for _, c := range cases {
		_, ok := ValidateSGR(c.in)
		if ok != c.ok {
			t.Errorf("ValidateSGR(%q) ok=%v, want %v", c.in, ok, c.ok)
		}
	}
}

func TestReadonlyAloneExcludesDirectory(t *testing.T) {
	table := NewTable()
	ParseRules(table, `ro=31`)
	got := table.Lookup(EntryInfo{Name: "dir", Attr: AttrDirectory | AttrReadonly}, simpleGlob)
	if got == "31" {
		t.Errorf("bare 'ro' rule matched a directory, want it excluded")
	}
}

func TestPatternRuleExcludesDirectoryByDefault(t *testing.T) {
	table := NewTable()
	ParseRules(table, `*.log=32`)
	got := table.Lookup(EntryInfo{Name: "build.log", Attr: AttrDirectory}, simpleGlob)
	if got == "32" {
		t.Errorf("bare pattern rule matched a directory, want it excluded")
	}
	got = table.Lookup(EntryInfo{Name: "build.log"}, simpleGlob)
	if got != "32" {
		t.Errorf("pattern rule on a regular file = %q, want 32", got)
	}
}

func TestResetClearsRules(t *testing.T) {
	table := NewTable()
	ParseRules(table, `di=1;33`)
	ParseRules(table, `reset:di=1;34`)
	got := table.Lookup(EntryInfo{Name: "d", Attr: AttrDirectory}, simpleGlob)
	if got != "1;34" {
		t.Errorf("got %q, want 1;34 after reset", got)
	}
}

func TestGradientIsDeterministic(t *testing.T) {
	base := RGB{R: 255, G: 0, B: 0}
	a := ApplyGradient(base, 50, 0, 100, 0.4)
	b := ApplyGradient(base, 50, 0, 100, 0.4)
	if a != b {
		t.Errorf("ApplyGradient not deterministic: %q vs %q", a, b)
	}
	if a == "" {
		t.Errorf("ApplyGradient returned empty string")
	}
}
