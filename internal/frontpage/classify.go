package frontpage

import (
	"strings"

	"github.com/user/frontpage-archiver/internal/entity"
)

const (
	thingClass  = "athing"
	spacerClass = "spacer"

	titleAnchorSelector = "td > span > a"
	rankSelector        = ".rank"
	moreSelector        = "a.morelink"
	sublineSelector     = ".subline"
	scoreSelector       = ".score"
	userSelector        = ".hnuser"
	ageSelector         = ".age"

	commentsMarker = "comments"
)

// Row is the classification of one listing table row. The concrete
// types are ThingRow, InfoRow, SpacerRow, MoreRow and UnrecognizedRow.
type Row interface {
	Kind() string
}

type ThingRow struct {
	Thing entity.Thing
}

type InfoRow struct {
	Info entity.Info
}

type SpacerRow struct{}

type MoreRow struct{}

type UnrecognizedRow struct{}

func (ThingRow) Kind() string        { return "thing" }
func (InfoRow) Kind() string         { return "info" }
func (SpacerRow) Kind() string       { return "spacer" }
func (MoreRow) Kind() string         { return "more" }
func (UnrecognizedRow) Kind() string { return "unrecognized" }

// Classify decides what a single table row is. It never fails: rows that
// cannot be fully decoded come back as UnrecognizedRow.
func Classify(row Element) Row {
	class, _ := row.Attr("class")
	classes := strings.Fields(class)

	if hasClass(classes, spacerClass) {
		return SpacerRow{}
	}
	if hasClass(classes, thingClass) {
		if thing, ok := parseThing(row); ok {
			return ThingRow{Thing: thing}
		}
		return UnrecognizedRow{}
	}
	if _, ok := row.Find(moreSelector); ok {
		return MoreRow{}
	}

	subline, ok := row.Find(sublineSelector)
	if !ok {
		return UnrecognizedRow{}
	}
	if info, ok := parseInfo(subline); ok {
		return InfoRow{Info: info}
	}
	return UnrecognizedRow{}
}

func parseThing(row Element) (entity.Thing, bool) {
	id, ok := row.Attr("id")
	if !ok || id == "" {
		return entity.Thing{}, false
	}
	anchor, ok := row.Find(titleAnchorSelector)
	if !ok {
		return entity.Thing{}, false
	}
	link, ok := anchor.Attr("href")
	if !ok {
		return entity.Thing{}, false
	}
	rankEl, ok := row.Find(rankSelector)
	if !ok {
		return entity.Thing{}, false
	}
	rank, ok := rankEl.InnerHTML()
	if !ok {
		return entity.Thing{}, false
	}
	title, ok := anchor.InnerHTML()
	if !ok {
		return entity.Thing{}, false
	}

	return entity.Thing{
		ID:        id,
		Rank:      rank,
		TitleLine: title,
		Link:      link,
	}, true
}

func parseInfo(subline Element) (entity.Info, bool) {
	score, ok := subline.Find(scoreSelector)
	if !ok {
		return entity.Info{}, false
	}
	user, ok := subline.Find(userSelector)
	if !ok {
		return entity.Info{}, false
	}
	age, ok := subline.Find(ageSelector)
	if !ok {
		return entity.Info{}, false
	}
	date, ok := age.Attr("title")
	if !ok {
		return entity.Info{}, false
	}
	comments, ok := commentsAnchor(subline)
	if !ok {
		return entity.Info{}, false
	}

	return entity.Info{
		Score:    score.Text(),
		User:     user.Text(),
		Date:     date,
		Comments: comments,
	}, true
}

// commentsAnchor returns the text of the first anchor mentioning comments.
func commentsAnchor(subline Element) (string, bool) {
	for _, a := range subline.FindAll("a") {
		text := a.Text()
		if strings.Contains(text, commentsMarker) {
			return text, true
		}
	}
	return "", false
}

func hasClass(classes []string, want string) bool {
	for _, c := range classes {
		if c == want {
			return true
		}
	}
	return false
}
