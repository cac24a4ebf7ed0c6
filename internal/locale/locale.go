// Package locale replaces the lazily-initialized function-local statics
// (month names, decimal separator) the original tool used with an
// explicit struct built once at startup and threaded through the render
// context (spec.md §9, Design Notes).
package locale

import "time"

// Locale bundles the locale-sensitive strings: month abbreviations and
// the thousands separator for the normal size style, both of which the
// picture renderer consults, and a decimal separator. DecimalPoint is not
// read by the picture renderer; its size formatters write '.'.
type Locale struct {
	MonthAbbrev  [12]string
	DecimalPoint string
	ThousandsSep string
}

// Default returns the built-in English/US locale used when no
// locale-aware system call is available, mirroring the teacher's
// fallback English catalog in pkg/i18n.
func Default() *Locale {
	return &Locale{
		MonthAbbrev: [12]string{
			"Jan", "Feb", "Mar", "Apr", "May", "Jun",
			"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
		},
		DecimalPoint: ".",
		ThousandsSep: ",",
	}
}

// Month returns the abbreviated month name for t, per l's catalog.
func (l *Locale) Month(t time.Time) string {
	m := int(t.Month()) - 1
	if m < 0 || m > 11 {
		return ""
	}
	return l.MonthAbbrev[m]
}

// GroupThousands inserts l.ThousandsSep every three digits from the right
// of the decimal-free integer string s (s must contain only ASCII
// digits, optionally preceded by '-').
func (l *Locale) GroupThousands(s string) string {
	neg := false
	if len(s) > 0 && s[0] == '-' {
		neg = true
		s = s[1:]
	}
	n := len(s)
	if n <= 3 {
		if neg {
			return "-" + s
		}
		return s
	}
	var out []byte
	lead := n % 3
	if lead == 0 {
		lead = 3
	}
	out = append(out, s[:lead]...)
	for i := lead; i < n; i += 3 {
		out = append(out, l.ThousandsSep...)
		out = append(out, s[i:i+3]...)
	}
	if neg {
		return "-" + string(out)
	}
	return string(out)
}
