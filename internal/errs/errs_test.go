package errs

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestArgSubstitutesInOrder(t *testing.T) {
	e := New("cannot open %1: %2").Arg("file.txt").Arg("access denied")
	want := "cannot open file.txt: access denied"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestArgLeavesUnmatchedPlaceholdersAlone(t *testing.T) {
	e := New("%1 of %9").Arg("1")
	want := "1 of %9"
	if got := e.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapPrependsSegment(t *testing.T) {
	inner := New("permission denied")
	outer := Wrap(inner, "scanning %1").Arg("/etc")
	want := "scanning /etc\npermission denied"
	if got := outer.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestWrapNonErrorBecomesCause(t *testing.T) {
	cause := errors.New("disk full")
	wrapped := Wrap(cause, "writing output")
	want := "writing output\ndisk full"
	if got := wrapped.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap() did not return the original cause")
	}
}

func TestWithKindOverridesAndSurvivesWrap(t *testing.T) {
	e := New("no such file").WithKind(KindFileNotFound)
	if e.Kind() != KindFileNotFound {
		t.Fatalf("Kind() = %v, want KindFileNotFound", e.Kind())
	}
	e.WithKind(KindAccessDenied)
	if e.Kind() != KindAccessDenied {
		t.Fatalf("Kind() after override = %v, want KindAccessDenied", e.Kind())
	}

	wrapped := Wrap(e, "scanning %1").Arg("/tmp")
	if wrapped.Kind() != KindAccessDenied {
		t.Errorf("Wrap did not carry Kind through: got %v", wrapped.Kind())
	}
}

func TestWithCodeFirstWins(t *testing.T) {
	e := New("boom").WithCode(5).WithCode(9)
	if e.Code() != 5 {
		t.Errorf("Code() = %d, want 5", e.Code())
	}
}

func TestErrorStripsCarriageReturns(t *testing.T) {
	e := New("line one\r\nline two\r")
	if strings.Contains(e.Error(), "\r") {
		t.Errorf("Error() = %q, contains a stray \\r", e.Error())
	}
}

func TestReportPlainWriterNoColor(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, New("bad glob pattern"))
	got := buf.String()
	if strings.Contains(got, "\x1b[") {
		t.Errorf("Report wrote an SGR escape to a non-terminal writer: %q", got)
	}
	if !strings.Contains(got, "bad glob pattern") {
		t.Errorf("Report output = %q, missing message", got)
	}
}

func TestReportNilIsNoOp(t *testing.T) {
	var buf bytes.Buffer
	Report(&buf, nil)
	if buf.Len() != 0 {
		t.Errorf("Report(nil) wrote %q, want nothing", buf.String())
	}
}
