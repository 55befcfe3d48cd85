package utils

import (
	"fmt"
	"net/url"
	"strconv"
)

// ListingURL builds the address of one page of a day's front page archive.
// page is 0-based; the site numbers its pages from 1.
func ListingURL(base, day string, page int) (string, error) {
	u, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("invalid listing base url %q: %w", base, err)
	}
	if page < 0 {
		return "", fmt.Errorf("invalid page %d", page)
	}
	q := u.Query()
	q.Set("day", day)
	q.Set("p", strconv.Itoa(page+1))
	u.RawQuery = q.Encode()
	return u.String(), nil
}
