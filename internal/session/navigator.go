// Package session holds the booklet viewing state: which page is shown,
// which highlight each day displays, and the input/loading/view lifecycle.
package session

// Navigator tracks the current page of a booklet with one cover page followed
// by one page per day. Page 0 is the cover.
type Navigator struct {
	page  int
	total int
}

// NewNavigator returns a navigator on the cover for a booklet of days days.
// Negative counts are treated as zero.
func NewNavigator(days int) *Navigator {
	if days < 0 {
		days = 0
	}
	return &Navigator{total: days + 1}
}

// Page returns the current page index.
func (n *Navigator) Page() int { return n.page }

// TotalPages returns 1 + number of days.
func (n *Navigator) TotalPages() int { return n.total }

// Next moves forward one page, stopping at the last. It reports whether the
// page changed.
func (n *Navigator) Next() bool {
	if n.page >= n.total-1 {
		return false
	}
	n.page++
	return true
}

// Previous moves back one page, stopping at the cover. It reports whether the
// page changed.
func (n *Navigator) Previous() bool {
	if n.page == 0 {
		return false
	}
	n.page--
	return true
}

// IsCover reports whether the cover is shown.
func (n *Navigator) IsCover() bool { return n.page == 0 }

// IsLast reports whether the last page is shown.
func (n *Navigator) IsLast() bool { return n.page == n.total-1 }

// CanFinish reports whether the finish action is available. With no days the
// cover is also the last page.
func (n *Navigator) CanFinish() bool { return n.IsLast() }

// DayIndex returns the index into Days for the current page, or -1 on the cover.
func (n *Navigator) DayIndex() int { return n.page - 1 }
