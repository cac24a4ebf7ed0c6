package wcwidth

// Truncate returns the longest prefix of s whose cell-width does not
// exceed width-CellWidth(glyph), preserving any embedded escape sequences
// verbatim (they occupy zero cells), and appending glyph if any visible
// content was dropped. Pass glyph=0 to truncate with no trailing glyph.
func Truncate(s string, width int, glyph rune) string {
	glyphWidth := CellWidth(glyph)
	if glyph == 0 {
		glyphWidth = 0
	}
	budget := width - glyphWidth
	if budget < 0 {
		budget = 0
	}

	var out []byte
	used := 0
	dropped := false

	it := NewIterator(s)
	for {
		c, ok := it.Next()
		if !ok {
			break
		}
		if c.Type != CodeText {
			out = append(out, c.Raw...)
			continue
		}
		if dropped {
			continue
		}
		runes := []rune(c.Text)
		i := 0
		for i < len(runes) {
			r := runes[i]
			w := CellWidth(r)
			extra := 1
			if i+1 < len(runes) && runes[i+1] == variationSelector16 {
				if w < 2 {
					w = 2
				}
				extra = 2
			}
			if used+w > budget {
				// The rest of the text is dropped; escape sequences in
				// later tokens are still copied above.
				dropped = true
				break
			}
			out = append(out, string(runes[i:i+extra])...)
			used += w
			i += extra
		}
	}
	if dropped && glyph != 0 {
		out = append(out, string(glyph)...)
	}
	return string(out)
}
