package dataset

import (
	"slices"

	"reviewer/model"
)

// Page is one contiguous slice of a filtered view.
type Page struct {
	Records    []*model.Record
	Number     int
	Size       int
	Total      int
	TotalPages int
	// Start and End are 1-based display indices, both 0 for an empty view.
	Start int
	End   int
}

// ClampPageSize snaps a requested size onto the fixed menu, falling back
// to the default for anything else.
func ClampPageSize(size int) int {
	if slices.Contains(model.PageSizes, size) {
		return size
	}
	return model.DefaultPageSize
}

// Paginate slices the filtered view. The 1-based page number is clamped
// to [1, ceil(total/size)]; out-of-range requests never error.
func Paginate(records []*model.Record, number int, size int) Page {
	size = ClampPageSize(size)
	total := len(records)

	totalPages := (total + size - 1) / size
	if totalPages < 1 {
		totalPages = 1
	}
	if number < 1 {
		number = 1
	}
	if number > totalPages {
		number = totalPages
	}

	start := (number - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > total {
		start = total
	}

	page := Page{
		Records:    records[start:end],
		Number:     number,
		Size:       size,
		Total:      total,
		TotalPages: totalPages,
	}
	if total > 0 {
		page.Start = start + 1
		page.End = end
	}
	return page
}
