package utils

import "time"

var dateLayouts = []string{
	"2006-01-02",
	"02-01-2006",
	"2006/01/02",
	"02/01/2006",
}

// NormalizeDate brings a date-of-birth string to YYYY-MM-DD when it matches a
// known layout. Unparseable input is stored as given.
func NormalizeDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02")
		}
	}
	return s
}

// Pagination converts page/per_page query values into an offset/limit pair.
// Both are floored at 1; per_page defaults to 10 when unset.
func Pagination(page, perPage int) (offset, limit int) {
	if page < 1 {
		page = 1
	}
	if perPage == 0 {
		perPage = 10
	}
	if perPage < 1 {
		perPage = 1
	}
	return (page - 1) * perPage, perPage
}
