package colorrule

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseError reports a malformed rule; the caller drops just that one
// rule and continues (spec.md §4.2: "no rule is ever silently partially
// applied").
type ParseError struct {
	Rule string
	Msg  string
}

func (e *ParseError) Error() string { return fmt.Sprintf("bad color rule %q: %s", e.Rule, e.Msg) }

var attrKeys = map[string]Attr{
	"ro": AttrReadonly,
	"hi": AttrHidden,
	"sy": AttrSystem,
	"di": AttrDirectory,
	"ar": AttrArchive,
	"en": AttrEncrypted,
	"SP": AttrSparse,
	"tT": AttrTemporary,
	"cT": AttrCompressed,
	"of": AttrOffline,
	"NI": AttrNotContentIndexed,
	"ln": AttrReparsePoint,
}

var flagKeys = map[string]Flag{
	"do": FlagDocument,
	"im": FlagImage,
	"vi": FlagVideo,
	"mu": FlagMusic,
	"lo": FlagLossless,
	"co": FlagCompressedArchive,
	"bu": FlagBuild,
	"sc": FlagSourceCode,
	"cm": FlagCompiled,
	"cr": FlagCrypto,
	"ex": FlagExecutable,
	"tm": FlagTemporary,
}

// categoryKeys maps the two-letter keys that, when they are a rule's only
// token, also set a Table.Categories fallback color in addition to the
// rule itself (di, ro, hi, or, cT, tT, fi).
var categoryKeys = map[string]Category{
	"di": CategoryDirectory,
	"ro": CategoryReadonly,
	"hi": CategoryHidden,
	"fi": CategoryFile,
	"or": CategoryOrphan,
	"cT": CategoryCompressedAttribute,
	"tT": CategoryTemporaryAttribute,
}

// ParseRules parses the colon-separated rules string (LS_COLORS-style
// syntax from spec.md §4.2) and merges the result into t. A leading
// "reset" token clears previously loaded rules first; a bare "*" loads
// nothing here (callers wire built-in defaults themselves, since the
// defaults table is static data outside this package's scope).
func ParseRules(t *Table, rules string) []error {
	var errs []error

	for _, raw := range splitTopLevel(rules) {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		if raw == "reset" {
			t.Rules = nil
			t.Categories = map[Category]string{}
			t.ByKey = map[string]string{}
			continue
		}
		if raw == "*" {
			continue
		}
		if err := parseOneRule(t, raw); err != nil {
			errs = append(errs, err)
		}
	}

	applyOverlays(t)
	return errs
}

// splitTopLevel splits on ':' while honoring the quote/backslash escape
// states from the tokenizer, so a ':' inside "..." or after '\' does not
// end a rule.
func splitTopLevel(s string) []string {
	var out []string
	var cur strings.Builder
	const (
		stateText = iota
		stateQuote
		stateBackslash
	)
	state := stateText
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch state {
		case stateText:
			switch c {
			case ':':
				out = append(out, cur.String())
				cur.Reset()
			case '"':
				state = stateQuote
				cur.WriteByte(c)
			case '\\':
				state = stateBackslash
				cur.WriteByte(c)
			default:
				cur.WriteByte(c)
			}
		case stateQuote:
			cur.WriteByte(c)
			if c == '"' {
				state = stateText
			}
		case stateBackslash:
			cur.WriteByte(c)
			state = stateText
		}
	}
	out = append(out, cur.String())
	return out
}

// unescapeToken applies the backslash-escape rules from spec.md §4.2:
// \\, \", \_ -> space, \<space> -> space; any other escape is an error.
func unescapeToken(tok string) (string, error) {
	var out strings.Builder
	for i := 0; i < len(tok); i++ {
		c := tok[i]
		if c != '\\' {
			out.WriteByte(c)
			continue
		}
		if i+1 >= len(tok) {
			out.WriteByte('\\')
			break
		}
		next := tok[i+1]
		switch next {
		case '\\', '"':
			out.WriteByte(next)
		case '_', ' ':
			out.WriteByte(' ')
		default:
			return "", fmt.Errorf("unsupported escape '\\%c'", next)
		}
		i++
	}
	return out.String(), nil
}

// stripQuotes removes a single layer of "..." quoting, which preserves
// internal spaces verbatim.
func stripQuotes(tok string) string {
	if len(tok) >= 2 && tok[0] == '"' && tok[len(tok)-1] == '"' {
		return tok[1 : len(tok)-1]
	}
	return tok
}

func parseOneRule(t *Table, raw string) error {
	lhs, rhs, ok := splitAssignment(raw)
	if !ok {
		return &ParseError{Rule: raw, Msg: "missing '=' or RHS"}
	}

	sgr, ok := ValidateSGR(rhs)
	if !ok {
		return &ParseError{Rule: raw, Msg: "RHS is not a valid SGR sequence"}
	}

	tokens := strings.Fields(lhs)
	if len(tokens) == 0 {
		return &ParseError{Rule: raw, Msg: "empty LHS"}
	}

	var rule Rule
	rule.SGR = sgr
	hasAttrConstraint := false
	hasGlobConstraint := false
	pendingNeg := false

	for _, tokRaw := range tokens {
		tok, err := unescapeToken(stripQuotes(tokRaw))
		if err != nil {
			return &ParseError{Rule: raw, Msg: err.Error()}
		}
		if tok == "not" || tok == "!" {
			pendingNeg = true
			continue
		}
		neg := pendingNeg
		pendingNeg = false
		if strings.HasPrefix(tok, "!") {
			neg = true
			tok = tok[1:]
		}
		if tok == "or" {
			// "or" (orphaned reparse point) has no attribute bit of its
			// own; it is a derived per-entry state, so it gets its own
			// predicate field rather than an Attr bit.
			hasAttrConstraint = true
			rule.hasOrphanConstraint = true
			rule.ReqOrphan = !neg
			continue
		}
		if a, ok := attrKeys[tok]; ok {
			hasAttrConstraint = true
			if neg {
				rule.NotAttr |= a
			} else {
				rule.ReqAttr |= a
			}
			continue
		}
		if f, ok := flagKeys[tok]; ok {
			if neg {
				rule.NotFlags |= f
			} else {
				rule.ReqFlags |= f
			}
			continue
		}
		// Anything else is a glob pattern.
		hasGlobConstraint = true
		rule.Patterns = append(rule.Patterns, Pattern{Glob: tok, Not: neg})
	}

	rule.onlyReadonlyAttr = rule.ReqAttr == AttrReadonly && rule.NotAttr == 0 && !hasGlobConstraint
	rule.onlyGlobConstraint = hasGlobConstraint && !hasAttrConstraint

	// A single bare attribute/category token (no glob, no other
	// attribute) additionally seeds the category fallback slot so it's
	// available even when a later, more specific rule shadows it in the
	// cascade (spec.md §4.2 step 4).
	if len(tokens) == 1 && !hasGlobConstraint {
		if cat, ok := categoryKeys[strings.TrimPrefix(tokens[0], "!")]; ok {
			t.Categories[cat] = sgr
		}
	}

	t.Rules = append(t.Rules, rule)
	return nil
}

// splitAssignment splits "LHS=RHS" or "LHS RHS" (with no '=', RHS is
// whatever follows the last space; parseOneRule then validates it as an
// SGR sequence).
func splitAssignment(raw string) (lhs, rhs string, ok bool) {
	if i := strings.LastIndexByte(raw, '='); i >= 0 {
		return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:]), true
	}
	i := strings.LastIndexByte(raw, ' ')
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(raw[:i]), strings.TrimSpace(raw[i+1:]), true
}

// applyOverlays implements the Design Notes item: the "readonly alone
// implies not-directory" and "bare pattern implies not-directory"
// semantic overlays are a rewrite pass over the parsed rule list, run
// once after parsing, not an inline check at match time.
func applyOverlays(t *Table) {
	for i := range t.Rules {
		r := &t.Rules[i]
		if r.onlyReadonlyAttr || r.onlyGlobConstraint {
			r.impliesNotDirectory = true
		}
	}
}

// sgrStyleCodes, sgr4bit, sgr4bitBg are the closed sets from spec.md
// §4.2's RHS validation table.
var sgrStyleCodes = map[int]bool{
	0: true, 1: true, 2: true, 3: true, 4: true, 7: true, 9: true,
	21: true, 22: true, 23: true, 24: true, 25: true, 27: true, 29: true,
	53: true, 55: true, 59: true,
}

func isSGR4bitFg(n int) bool { return n >= 30 && n <= 37 || n == 39 || n >= 90 && n <= 97 }
func isSGR4bitBg(n int) bool { return n >= 40 && n <= 47 || n == 49 || n >= 100 && n <= 107 }

// ValidateSGR checks rhs against the closed set of SGR codes enumerated
// in spec.md §4.2 and returns the canonicalized string (semicolons, no
// surrounding whitespace) plus whether it validated.
func ValidateSGR(rhs string) (string, bool) {
	rhs = strings.TrimSpace(rhs)
	if rhs == "" {
		return "", false
	}
	parts := strings.Split(rhs, ";")
	nums := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return "", false
		}
		nums[i] = n
	}

	for i := 0; i < len(nums); i++ {
		n := nums[i]
		switch {
		case sgrStyleCodes[n], isSGR4bitFg(n), isSGR4bitBg(n):
			continue
		case n == 38 || n == 48:
			if i+1 >= len(nums) {
				return "", false
			}
			switch nums[i+1] {
			case 5:
				if i+2 >= len(nums) || nums[i+2] < 0 || nums[i+2] > 255 {
					return "", false
				}
				i += 2
			case 2:
				if i+4 >= len(nums) {
					return "", false
				}
				for k := 1; k <= 3; k++ {
					if nums[i+1+k] < 0 || nums[i+1+k] > 255 {
						return "", false
					}
				}
				i += 4
			default:
				return "", false
			}
		default:
			return "", false
		}
	}
	return rhs, true
}
