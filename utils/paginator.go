package utils

import (
	"strconv"

	"gorm.io/gorm"
)

// Page is a 1-indexed slice of an ordered feed, plus enough metadata
// for the templates to render pager links.
type Page struct {
	Number    int
	PageCount int
	PerPage   int
	Total     int64
}

func (p Page) HasPrevious() bool { return p.Number > 1 }
func (p Page) HasNext() bool     { return p.Number < p.PageCount }
func (p Page) Previous() int     { return p.Number - 1 }
func (p Page) Next() int         { return p.Number + 1 }

// PageCount returns ceil(total/perPage), never less than 1 — an empty
// feed still has exactly one (empty) page.
func PageCount(total int64, perPage int) int {
	if total <= 0 {
		return 1
	}
	count := int((total + int64(perPage) - 1) / int64(perPage))
	if count < 1 {
		count = 1
	}
	return count
}

// ClampPage resolves a raw ?page= parameter to a valid page number.
// Non-numeric or missing values mean page 1, out-of-range values snap
// to the nearest valid page instead of failing.
func ClampPage(raw string, pageCount int) int {
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 1
	}
	if page > pageCount {
		return pageCount
	}
	return page
}

// Paginated computes the page for the raw ?page= value and applies the
// matching offset/limit to the query.
func Paginated(tx *gorm.DB, rawPage string, perPage int, total int64) (*gorm.DB, Page) {
	page := Page{
		PageCount: PageCount(total, perPage),
		PerPage:   perPage,
		Total:     total,
	}
	page.Number = ClampPage(rawPage, page.PageCount)
	return tx.Offset((page.Number - 1) * perPage).Limit(perPage), page
}
