package frontpage

import (
	"iter"

	"github.com/user/frontpage-archiver/internal/entity"
)

// Assemble pairs every ThingRow with the row that immediately follows it.
// When that row is an InfoRow a Post is emitted; otherwise the Thing is
// dropped and the row is considered again on its own. Only one pending
// Thing is ever held.
func Assemble(rows iter.Seq[Row]) []entity.Post {
	posts := []entity.Post{}
	var pending *entity.Thing

	for row := range rows {
		if pending != nil {
			thing := *pending
			pending = nil
			if info, ok := row.(InfoRow); ok {
				posts = append(posts, entity.NewPost(thing, info.Info))
				continue
			}
		}
		if thing, ok := row.(ThingRow); ok {
			t := thing.Thing
			pending = &t
		}
	}
	return posts
}
