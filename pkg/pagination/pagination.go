// Package pagination computes the page-button window the feed renders:
// up to five numbered buttons centered on the current page, with the first
// and last page always reachable and ellipses where the window detaches
// from an edge.
package pagination

const windowSize = 5

// Button is one rendered pagination control. Ellipsis buttons carry no page.
type Button struct {
	Page     int  `json:"page,omitempty"`
	Ellipsis bool `json:"ellipsis,omitempty"`
}

// Clamp restricts page to [1, totalPages]. A non-positive totalPages
// clamps to page 1.
func Clamp(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// TotalPages returns the number of pages needed for totalItems at pageSize.
// Zero items still produce one (empty) page.
func TotalPages(totalItems, pageSize int) int {
	if pageSize < 1 || totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// Window returns the button row for the given position. The window holds up
// to five consecutive pages centered on current, shifted inward at the
// boundaries, with page 1 and totalPages appended outside it and ellipsis
// markers filling any gap.
func Window(current, totalPages int) []Button {
	if totalPages < 1 {
		return nil
	}
	current = Clamp(current, totalPages)

	start := current - windowSize/2
	end := current + windowSize/2
	if start < 1 {
		end += 1 - start
		start = 1
	}
	if end > totalPages {
		start -= end - totalPages
		end = totalPages
		if start < 1 {
			start = 1
		}
	}

	buttons := make([]Button, 0, windowSize+4)
	if start > 1 {
		buttons = append(buttons, Button{Page: 1})
		if start > 2 {
			buttons = append(buttons, Button{Ellipsis: true})
		}
	}
	for p := start; p <= end; p++ {
		buttons = append(buttons, Button{Page: p})
	}
	if end < totalPages {
		if end < totalPages-1 {
			buttons = append(buttons, Button{Ellipsis: true})
		}
		buttons = append(buttons, Button{Page: totalPages})
	}
	return buttons
}
