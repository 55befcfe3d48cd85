package frontpage

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/user/frontpage-archiver/internal/entity"
	"golang.org/x/net/html"
)

// ErrListingNotFound means the page has no listing table at all, as opposed
// to a listing table without rows.
var ErrListingNotFound = errors.New("listing table not found")

// ListingSelector matches the table holding the ranked rows. Older pages
// mark it with the itemlist class; current ones only nest it under #bigbox.
const ListingSelector = "table.itemlist, #bigbox table"

// Page is the decoded content of one listing page.
type Page struct {
	Posts   []entity.Post
	Rows    int
	HasMore bool
}

// ParseString is Parse over an in-memory document.
func ParseString(body string) (Page, error) {
	return Parse(strings.NewReader(body))
}

// Parse locates the listing table, classifies each of its rows in order and
// assembles the posts.
func Parse(r io.Reader) (Page, error) {
	root, err := html.Parse(r)
	if err != nil {
		return Page{}, fmt.Errorf("failed to parse listing html: %w", err)
	}
	doc := goquery.NewDocumentFromNode(root)

	table := doc.Find(ListingSelector).First()
	if table.Length() == 0 {
		return Page{}, ErrListingNotFound
	}

	// Rows of nested tables belong to their own table.
	rows := table.Find("tr").FilterFunction(func(_ int, tr *goquery.Selection) bool {
		return tr.Closest("table").IsSelection(table)
	})

	page := Page{Rows: rows.Length()}
	page.Posts = Assemble(func(yield func(Row) bool) {
		for i := range rows.Length() {
			row := Classify(Wrap(rows.Eq(i)))
			if _, ok := row.(MoreRow); ok {
				page.HasMore = true
			}
			if !yield(row) {
				return
			}
		}
	})
	return page, nil
}
