// Package columns packs a sequence of variable-width items into the
// widest grid of equal-height columns that still fits a maximum line
// width.
package columns

const (
	maxCandidateColumns = 50
	maxCandidateWidth   = 1024
)

// ItemWidthFunc reports the rendered cell width of item i.
type ItemWidthFunc func(i int) int

// Layout is the chosen per-column width vector, left to right.
type Layout []int

// candidate tracks one trial column count while items are consumed.
// widths has length k (the candidate's column count); line tracks the
// running total line width for quick invalidation.
type candidate struct {
	valid  bool
	line   int
	widths []int
	stride int
}

// Calculate chooses a number of columns and a per-column width vector
// for count items, given a lazy per-item width function, a packing
// direction, inter-column padding, and a maximum line width.
//
// vertical selects down-then-across placement (item i lands in column
// i/stride, filling a column before moving to the next); the default,
// horizontal placement fills a row before moving to the next (item i
// lands in column i%k).
//
// maxColumns bounds the search (0 means "no limit beyond count"); it is
// clamped to 50 internally, and maxWidth is clamped to 1024, matching
// the limits the candidate simulation below was designed around.
//
// Calculate evaluates every column count from 1 up to the bound as a
// parallel candidate, walking the item list once: each item updates
// every still-valid candidate's column width and running line width,
// and a candidate is dropped the moment its line width would exceed
// maxWidth (a single column, k=1, is never dropped, so a fallback
// always exists). The widest surviving candidate after the full pass
// wins.
func Calculate(itemWidth ItemWidthFunc, count int, vertical bool, padding, maxWidth, maxColumns int) Layout {
	if count <= 0 {
		return nil
	}
	if maxColumns <= 0 || maxColumns > count {
		maxColumns = count
	}
	if maxColumns > maxCandidateColumns {
		maxColumns = maxCandidateColumns
	}
	if maxWidth <= 0 || maxWidth > maxCandidateWidth {
		maxWidth = maxCandidateWidth
	}

	candidates := make([]candidate, maxColumns)
	for n := range candidates {
		c := &candidates[n]
		k := n + 1
		c.valid = true
		c.line = n*(1+padding) + 1
		c.widths = make([]int, k)
		for i := range c.widths {
			c.widths[i] = 1
		}
		c.stride = (count + n) / k
	}

	for i := 0; i < count; i++ {
		itemW := itemWidth(i)
		newMax := 0
		for n := range candidates {
			c := &candidates[n]
			if !c.valid {
				continue
			}

			var col int
			if vertical {
				col = i / c.stride
			} else {
				col = i % (n + 1)
			}

			if c.widths[col] < itemW {
				line := c.line - c.widths[col] + itemW
				if line > maxWidth && n > 0 {
					c.valid = false
					continue
				}
				c.line = line
				c.widths[col] = itemW
			}
			newMax = n + 1
		}
		candidates = candidates[:newMax]
	}

	if len(candidates) == 0 {
		return nil
	}
	best := candidates[len(candidates)-1]
	out := make(Layout, len(best.widths))
	copy(out, best.widths)
	return out
}

// Width returns the total line width a Layout occupies, including
// inter-column padding.
func (l Layout) Width(padding int) int {
	if len(l) == 0 {
		return 0
	}
	w := padding * (len(l) - 1)
	for _, c := range l {
		w += c
	}
	return w
}
