// Package errs implements the tool's error taxonomy: a chained message
// list with "%1".."%9" positional argument substitution, matching the
// tool's visible error-message format, plus TTY-aware stderr reporting.
package errs

import (
	"fmt"
	"strings"
)

// Kind classifies an Error for exit-code and reporting purposes,
// matching the tool's error taxonomy (spec.md §7): a CLI entry point
// can switch on Kind instead of string-matching messages.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindUsageError
	KindFileNotFound
	KindAccessDenied
	KindPathTooLong
	KindMalformedPattern
	KindBadRegex
	KindBadGlob
	KindBadColorSyntax
	KindBadEscapeCode
	KindBadPicture
	KindSystemError
	KindGitUnavailable
)

// Error is a chained, positionally-substitutable error message. Wrap
// prepends a new segment onto an existing chain the way
// original_source/error.cpp's ErrorStr linked list stacks one message
// in front of the next; Arg fills in the "%1".."%9" placeholders left
// in the most recently added segment.
type Error struct {
	messages []string
	code     int
	kind     Kind
	cause    error
}

// New creates a one-segment Error from a message template. Use Arg to
// fill in "%1".."%9" placeholders before the message is reported.
func New(message string) *Error {
	return &Error{messages: []string{message}}
}

// Newf is a convenience wrapper around fmt.Sprintf + New, for messages
// with no "%N" placeholders left for the caller to fill in later.
func Newf(format string, args ...any) *Error {
	return New(fmt.Sprintf(format, args...))
}

// Wrap prepends a new message segment ahead of err's existing chain. If
// err is not already an *Error, it becomes the new Error's cause rather
// than a chain segment, so Error() still reports it.
func Wrap(err error, message string) *Error {
	if err == nil {
		return New(message)
	}
	if e, ok := err.(*Error); ok {
		messages := make([]string, 0, len(e.messages)+1)
		messages = append(messages, message)
		messages = append(messages, e.messages...)
		return &Error{messages: messages, code: e.code, kind: e.kind, cause: e.cause}
	}
	return &Error{messages: []string{message}, cause: err}
}

// Code returns the first system error code attached to this chain, or 0
// if none was ever set.
func (e *Error) Code() int { return e.code }

// Kind returns e's taxonomy classification, or KindUnknown if WithKind
// was never called.
func (e *Error) Kind() Kind { return e.kind }

// WithKind attaches a taxonomy classification to e and returns e, for
// chaining alongside WithCode. Unlike WithCode, a later WithKind call
// overrides an earlier one: Kind is assigned once by whoever raises the
// error, not accumulated through Wrap the way a system error code is.
func (e *Error) WithKind(kind Kind) *Error {
	e.kind = kind
	return e
}

// WithCode attaches a numeric error code to e. The first code ever set
// wins (original_source/error.cpp's UpdateCode: "if (!m_code) m_code =
// code"), so an outer Wrap can't clobber a more specific inner code.
func (e *Error) WithCode(code int) *Error {
	if e.code == 0 {
		e.code = code
	}
	return e
}

// Arg substitutes the lowest-numbered unfilled "%1".."%9" placeholder in
// the most recently added message segment with text, returning e so
// calls can chain (original_source/error.cpp's ErrorArgs::operator<<,
// expressed as method chaining instead of operator overloading). The
// most recently added segment is messages[0]: New's only segment, or
// whichever message a later Wrap call prepended.
func (e *Error) Arg(text string) *Error {
	if len(e.messages) == 0 {
		return e
	}
	e.messages[0] = replaceNextArg(e.messages[0], text)
	return e
}

func replaceNextArg(s, text string) string {
	for n := byte('1'); n <= '9'; n++ {
		token := "%" + string(n)
		if i := strings.Index(s, token); i >= 0 {
			return s[:i] + text + s[i+len(token):]
		}
	}
	return s
}

// Error flattens the chain into one block, one newline-terminated line
// per segment, trimming any stray "\r" (original_source/error.cpp's
// Error::Format).
func (e *Error) Error() string {
	var b strings.Builder
	for _, m := range e.messages {
		m = strings.ReplaceAll(m, "\r", "")
		b.WriteString(m)
		if !strings.HasSuffix(m, "\n") {
			b.WriteByte('\n')
		}
	}
	out := b.String()
	if e.cause != nil {
		out += e.cause.Error()
	}
	return strings.TrimRight(out, "\n")
}

// Unwrap exposes a non-*Error cause to errors.Is/errors.As chains.
func (e *Error) Unwrap() error { return e.cause }
