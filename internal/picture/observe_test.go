package picture

import (
	"testing"
	"time"

	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/locale"
)

func TestObserveEntrySettlesFilenameWidthFromLongestName(t *testing.T) {
	p, err := Parse("F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := DefaultContext(locale.Default())
	entries := []*direntry.Entry{
		{Name: "short"},
		{Name: "a-much-longer-filename.txt"},
	}

	st := NewWidthState()
	for _, e := range entries {
		p.ObserveEntry(st, e, ctx)
	}
	p.Settle(st, 0)

	if !p.Fields[0].AutoFilenameWidth {
		t.Fatal("bare F field should be an auto-width filename field")
	}
	want := len("a-much-longer-filename.txt")
	if p.Fields[0].Width != want {
		t.Errorf("filename field width = %d, want %d", p.Fields[0].Width, want)
	}
}

func TestObserveEntryDerivesPlainSizeTextWithoutColor(t *testing.T) {
	p, err := Parse("Sm F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := DefaultContext(locale.Default())
	e := &direntry.Entry{Name: "big.bin", LogicalSize: 5 * 1024 * 1024}

	st := NewWidthState()
	p.ObserveEntry(st, e, ctx)
	p.Settle(st, 0)

	if st.maxFilesize == 0 {
		t.Error("expected a non-zero observed size width")
	}
}

func TestObserveEntryUsesRelativeAgeWhenTimeFieldIsRelativeStyle(t *testing.T) {
	p, err := Parse("Dr F")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	ctx := DefaultContext(locale.Default())
	ctx.Now = time.Now()
	e := &direntry.Entry{Name: "recent.txt", Modified: ctx.Now.Add(-2 * time.Hour)}

	st := NewWidthState()
	p.ObserveEntry(st, e, ctx)
	if st.maxRelative == 0 {
		t.Error("expected a non-zero observed relative-time width")
	}
}
