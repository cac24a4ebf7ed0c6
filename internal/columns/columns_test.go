package columns

import "testing"

func TestCalculateEmpty(t *testing.T) {
	if got := Calculate(func(int) int { return 1 }, 0, false, 2, 80, 0); got != nil {
		t.Errorf("Calculate(count=0) = %v, want nil", got)
	}
}

func TestCalculateFiveItemsHorizontal(t *testing.T) {
	widths := []int{3, 5, 4, 7, 2}
	layout := Calculate(func(i int) int { return widths[i] }, len(widths), false, 2, 20, 0)

	if len(layout) != 3 {
		t.Fatalf("Calculate() chose %d columns, want 3", len(layout))
	}
	if got := layout.Width(2); got != 20 {
		t.Errorf("Width(2) = %d, want 20", got)
	}

	// The three column maxima must be exactly {4, 5, 7} in some order
	// (horizontal/row-major placement assigns items 0,3 to column 0,
	// items 1,4 to column 1, item 2 to column 2).
	seen := map[int]bool{}
	for _, w := range layout {
		seen[w] = true
	}
	for _, want := range []int{4, 5, 7} {
		if !seen[want] {
			t.Errorf("layout %v missing expected column width %d", layout, want)
		}
	}
}

func TestCalculateSingleColumnFallback(t *testing.T) {
	// Every item is wider than the max width alone, so only k=1 survives.
	layout := Calculate(func(int) int { return 100 }, 5, false, 2, 20, 0)
	if len(layout) != 1 {
		t.Fatalf("Calculate() chose %d columns, want 1 (single-column fallback)", len(layout))
	}
	if layout[0] != 100 {
		t.Errorf("layout[0] = %d, want 100", layout[0])
	}
}

func TestCalculateUniformWidthsMaximizesColumns(t *testing.T) {
	// 10 items of width 1, padding 1, max width 19: each extra column
	// costs 2 cells (1 width + 1 padding) beyond the first, so as many
	// as fit should be chosen.
	layout := Calculate(func(int) int { return 1 }, 10, false, 1, 19, 0)
	if len(layout) != 10 {
		t.Fatalf("Calculate() chose %d columns, want 10", len(layout))
	}
	if got := layout.Width(1); got > 19 {
		t.Errorf("Width(1) = %d, exceeds max width 19", got)
	}
}

func TestCalculateVerticalPlacement(t *testing.T) {
	// 6 items, 2 columns: vertical placement fills column 0 with items
	// 0,1,2 and column 1 with items 3,4,5 (stride = ceil(6/2) = 3).
	widths := []int{1, 2, 9, 1, 1, 1}
	layout := Calculate(func(i int) int { return widths[i] }, len(widths), true, 0, 100, 2)
	if len(layout) != 2 {
		t.Fatalf("Calculate() chose %d columns, want 2", len(layout))
	}
	if layout[0] != 9 {
		t.Errorf("column 0 width = %d, want 9 (max of items 0-2)", layout[0])
	}
	if layout[1] != 1 {
		t.Errorf("column 1 width = %d, want 1 (max of items 3-5)", layout[1])
	}
}

func TestCalculateRespectsMaxColumns(t *testing.T) {
	layout := Calculate(func(int) int { return 1 }, 20, false, 1, 1000, 3)
	if len(layout) != 3 {
		t.Fatalf("Calculate() chose %d columns, want capped at 3", len(layout))
	}
}
