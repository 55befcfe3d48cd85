package entity

// Thing is the listing half of a post: the row carrying rank, title and link.
// Rank and TitleLine keep their inner markup as found in the page.
type Thing struct {
	ID        string
	Rank      string
	TitleLine string
	Link      string
}

// Info is the subline half of a post. Date is the age element's title
// attribute, not its relative visible text.
type Info struct {
	Score    string
	User     string
	Date     string
	Comments string
}

// Post is one Thing merged with the Info row that immediately follows it.
// Every field is opaque text copied from the source page.
type Post struct {
	ID        string `json:"id"`
	Rank      string `json:"rank"`
	TitleLine string `json:"title_line"`
	Link      string `json:"link"`
	Score     string `json:"score"`
	User      string `json:"user"`
	Date      string `json:"date"`
	Comments  string `json:"comments"`
}

// NewPost flattens a Thing and its Info into a Post.
func NewPost(t Thing, i Info) Post {
	return Post{
		ID:        t.ID,
		Rank:      t.Rank,
		TitleLine: t.TitleLine,
		Link:      t.Link,
		Score:     i.Score,
		User:      i.User,
		Date:      i.Date,
		Comments:  i.Comments,
	}
}

// PageParams identifies one fetchable page of one day's archive.
// Page is 0-based.
type PageParams struct {
	Day  string
	Page int
}
