package picture

import (
	"github.com/chrisant996/dirx/internal/direntry"
	"github.com/chrisant996/dirx/internal/wcwidth"
)

// widthState accumulates the first-pass observations a deferred Picture
// needs before it can settle field widths (spec.md §4.4's "two-pass width
// protocol").
type widthState struct {
	maxFilename int
	maxBranch   int
	maxFilesize int
	maxOwner    int
	maxRelative int
}

// NewWidthState returns a fresh first-pass accumulator for Observe and
// ObserveEntry. The concrete type is unexported; callers outside this
// package hold it opaquely (`st := picture.NewWidthState()`) and only
// ever pass it back into Observe/ObserveEntry/Settle.
func NewWidthState() *widthState {
	return &widthState{}
}

// Observe feeds one entry into the first pass. branch and relativeAge are
// supplied by the caller when the picture needs them (empty/zero
// otherwise, which is harmless since the corresponding max simply stays
// at its current value).
func (p *Picture) Observe(st *widthState, e *direntry.Entry, renderedSize, branch, relativeAge string) {
	if p.NeedsFilenameWidth {
		if w := wcwidth.StringWidth(e.Name); w > st.maxFilename {
			st.maxFilename = w
		}
	}
	if p.NeedsFilesizeWidth {
		if w := wcwidth.StringWidth(renderedSize); w > st.maxFilesize {
			st.maxFilesize = w
		}
	}
	if p.NeedsOwnerWidth {
		if w := wcwidth.StringWidth(e.Owner); w > st.maxOwner {
			st.maxOwner = w
		}
	}
	if p.NeedsBranchWidth {
		w := wcwidth.StringWidth(branch)
		if w > 10 {
			w = 10
		}
		if w > st.maxBranch {
			st.maxBranch = w
		}
	}
	if p.NeedsRelativeTimeWidth {
		if w := wcwidth.StringWidth(relativeAge); w > st.maxRelative {
			st.maxRelative = w
		}
	}
}

// Settle finalizes every auto-width field's Width from the first pass's
// observations, then redistributes any leftover columns across auto
// filename fields (spec.md §3's settled-field invariant). availableWidth
// is the total cell budget for the picture's non-literal content; 0 means
// "no redistribution, just use observed widths as-is" (single-column
// mode).
func (p *Picture) Settle(st *widthState, availableWidth int) {
	autoFilenameIdx := -1
	usedByOthers := 0

	for i := range p.Fields {
		f := &p.Fields[i]
		switch f.Kind {
		case KindFilename:
			if f.AutoFilenameWidth {
				f.Width = st.maxFilename
				if autoFilenameIdx < 0 {
					autoFilenameIdx = i
				}
			}
		case KindSize:
			if f.Width == 0 && st.maxFilesize > 0 {
				f.Width = st.maxFilesize
			}
		case KindOwner:
			if f.Width == 0 && st.maxOwner > 0 {
				f.Width = st.maxOwner
			}
		case KindGitRepo:
			f.Width = st.maxBranch
		case KindTime:
			if f.Style == 'r' && st.maxRelative > 0 {
				f.Width = st.maxRelative
			}
		}
		if f.Kind != KindFilename || !f.AutoFilenameWidth {
			usedByOthers += f.Width
		}
	}

	if autoFilenameIdx >= 0 && availableWidth > 0 {
		leftover := availableWidth - usedByOthers
		if leftover > p.Fields[autoFilenameIdx].Width {
			p.Fields[autoFilenameIdx].Width = leftover
		}
	}
}
