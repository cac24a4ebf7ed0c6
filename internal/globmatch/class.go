package globmatch

// parseClass parses a "[...]" bracket expression starting at p[0] == '['.
// It returns a membership predicate, the pattern slice following the
// closing ']', and whether the expression was well-formed. A malformed
// (unterminated) expression returns ok == false so the caller falls back
// to treating '[' as a literal rune.
func (m *matcher) parseClass(p []rune) (pred func(rune) bool, rest []rune, ok bool) {
	i := 1
	neg := false
	if i < len(p) && (p[i] == '!' || p[i] == '^') {
		neg = true
		i++
	}

	var singles []rune
	var ranges [][2]rune
	var classes []string
	start := i
	first := true

	for i < len(p) {
		if p[i] == ']' && !first {
			break
		}
		first = false

		if p[i] == '[' && i+1 < len(p) && p[i+1] == ':' {
			end := indexPOSIXEnd(p, i+2)
			if end >= 0 {
				classes = append(classes, string(p[i+2:end]))
				i = end + 2
				continue
			}
		}

		if i+2 < len(p) && p[i+1] == '-' && p[i+2] != ']' {
			ranges = append(ranges, [2]rune{p[i], p[i+2]})
			i += 3
			continue
		}

		singles = append(singles, p[i])
		i++
	}

	if i >= len(p) || p[i] != ']' || i == start {
		return nil, nil, false
	}

	pred = func(r rune) bool {
		match := false
		for _, s := range singles {
			if m.eqRune(s, r) {
				match = true
				break
			}
		}
		if !match {
			for _, rg := range ranges {
				lo, hi := rg[0], rg[1]
				if inRange(r, lo, hi) || (m.flags.has(CaseFold) && inRange(foldASCII(r), foldASCII(lo), foldASCII(hi))) {
					match = true
					break
				}
			}
		}
		if !match {
			for _, c := range classes {
				if posixClassMatch(c, r) {
					match = true
					break
				}
			}
		}
		if neg {
			return !match
		}
		return match
	}
	return pred, p[i+1:], true
}

func inRange(r, lo, hi rune) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	return r >= lo && r <= hi
}

// indexPOSIXEnd finds the index of the ':' in a closing ":]" starting the
// search at from, or -1 if none is found before the pattern ends.
func indexPOSIXEnd(p []rune, from int) int {
	for i := from; i+1 < len(p); i++ {
		if p[i] == ':' && p[i+1] == ']' {
			return i
		}
	}
	return -1
}

// posixClassMatch implements the POSIX bracket class names enumerated in
// spec.md §4.3, restricted to the ASCII range (the tool's glob patterns
// are filename patterns, not general text).
func posixClassMatch(class string, r rune) bool {
	switch class {
	case "alnum":
		return isAlpha(r) || isDigit(r)
	case "alpha":
		return isAlpha(r)
	case "blank":
		return r == ' ' || r == '\t'
	case "cntrl":
		return r < 0x20 || r == 0x7f
	case "digit":
		return isDigit(r)
	case "graph":
		return r > 0x20 && r < 0x7f
	case "lower":
		return r >= 'a' && r <= 'z'
	case "print":
		return r >= 0x20 && r < 0x7f
	case "punct":
		return r > 0x20 && r < 0x7f && !isAlpha(r) && !isDigit(r)
	case "space":
		return r == ' ' || r == '\t' || r == '\n' || r == '\v' || r == '\f' || r == '\r'
	case "upper":
		return r >= 'A' && r <= 'Z'
	case "xdigit":
		return isDigit(r) || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
	default:
		return false
	}
}

func isAlpha(r rune) bool { return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }
