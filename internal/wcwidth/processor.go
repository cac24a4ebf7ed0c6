package wcwidth

import (
	"strconv"
	"strings"
)

// ProcessorFlags selects which style information Processor strips from
// SGR sequences while passing text through.
type ProcessorFlags uint8

const (
	ProcessorNone ProcessorFlags = 0
	// ProcessorPlaintext drops every escape sequence, leaving bare text.
	ProcessorPlaintext ProcessorFlags = 1 << iota
	// ProcessorColorless keeps only non-color SGR parameters.
	ProcessorColorless
	// ProcessorLineless strips underline/overline/strikethrough (4, 9,
	// 21, 53) while preserving color.
	ProcessorLineless
)

var lineStyleCodes = map[int]bool{4: true, 9: true, 21: true, 53: true}

// Process rewrites in according to flags, returning the resulting text
// and its display-cell count. With ProcessorNone the count equals
// VisibleWidth(in) and the text keeps every sequence, except that an
// OSC 9;8 sequence is replaced by its variable's value and SGR parameters
// are re-emitted as plain decimals ("01" becomes "1").
func Process(in string, flags ProcessorFlags) (string, int) {
	var out strings.Builder
	cells := 0

	it := NewIterator(in)
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		switch c.Type {
		case CodeText:
			out.WriteString(c.Text)
			cells += StringWidth(c.Text)
		case CodeC1:
			if c.OSC == OSCVarOutput {
				out.WriteString(c.Text)
				cells += StringWidth(c.Text)
				continue
			}
			if flags&ProcessorPlaintext != 0 {
				continue
			}
			if isSGR(c.Raw) {
				rewritten, ok := rewriteSGR(c.Raw, flags)
				if ok {
					out.WriteString(rewritten)
				}
				continue
			}
			out.WriteString(c.Raw)
		default:
			if flags&ProcessorPlaintext != 0 {
				continue
			}
			out.WriteString(c.Raw)
		}
	}
	return out.String(), cells
}

func isSGR(raw string) bool {
	return strings.HasPrefix(raw, "\x1b[") && strings.HasSuffix(raw, "m")
}

// rewriteSGR parses the parameters of an SGR sequence and re-emits only
// the ones permitted by flags. Returns ok=false if nothing survives (the
// sequence can be dropped entirely).
func rewriteSGR(raw string, flags ProcessorFlags) (string, bool) {
	body := strings.TrimSuffix(strings.TrimPrefix(raw, "\x1b["), "m")
	if body == "" {
		return raw, true // bare reset
	}
	parts := strings.Split(body, ";")
	kept := make([]string, 0, len(parts))

	for i := 0; i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			kept = append(kept, parts[i])
			continue
		}
		switch {
		case flags&ProcessorColorless != 0 && isColorCode(n, parts, &i):
			continue
		case flags&ProcessorLineless != 0 && lineStyleCodes[n]:
			continue
		default:
			kept = append(kept, strconv.Itoa(n))
			if isExtendedColorPrefix(n) {
				// consume the following 2 (256-color) or 4 (truecolor)
				// parameters as part of this code, whether kept or
				// stripped above.
				extra := extendedColorParamCount(parts, i)
				for k := 0; k < extra && i+1 < len(parts); k++ {
					i++
					if flags&ProcessorColorless == 0 {
						kept = append(kept, parts[i])
					}
				}
			}
		}
	}
	if len(kept) == 0 {
		return "", false
	}
	return "\x1b[" + strings.Join(kept, ";") + "m", true
}

func isColorCode(n int, parts []string, i *int) bool {
	switch {
	case n >= 30 && n <= 39:
		consumeExtended(n, parts, i)
		return true
	case n >= 40 && n <= 49:
		consumeExtended(n, parts, i)
		return true
	case n >= 90 && n <= 97:
		return true
	case n >= 100 && n <= 107:
		return true
	}
	return false
}

func consumeExtended(n int, parts []string, i *int) {
	if n != 38 && n != 48 {
		return
	}
	extra := extendedColorParamCount(parts, *i)
	for k := 0; k < extra && *i+1 < len(parts); k++ {
		*i++
	}
}

func isExtendedColorPrefix(n int) bool { return n == 38 || n == 48 }

// extendedColorParamCount looks ahead from index i (which holds 38 or 48)
// to decide whether the mode byte selects 8-bit (`5;N`, 2 more params) or
// 24-bit (`2;R;G;B`, 4 more params) color.
func extendedColorParamCount(parts []string, i int) int {
	if i+1 >= len(parts) {
		return 0
	}
	switch parts[i+1] {
	case "5":
		return 2
	case "2":
		return 4
	default:
		return 0
	}
}
