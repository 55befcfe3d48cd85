package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

// listing renders a listing page holding one post per id.
func listing(ids ...int) string {
	var b strings.Builder
	b.WriteString(`<html><body><table class="itemlist">`)
	for i, id := range ids {
		fmt.Fprintf(&b, `<tr class="athing" id="%d"><td><span class="rank">%d.</span></td>`+
			`<td><span class="titleline"><a href="http://example.com/%d">Post %d</a></span></td></tr>`,
			id, i+1, id, id)
		fmt.Fprintf(&b, `<tr><td class="subtext"><span class="subline">`+
			`<span class="score">%d points</span> by <a class="hnuser">user%d</a> `+
			`<span class="age" title="2007-10-01T00:00:00">1 day ago</span> | `+
			`<a href="item?id=%d">%d comments</a></span></td></tr>`,
			id, id, id, id)
		b.WriteString(`<tr class="spacer"></tr>`)
	}
	b.WriteString(`</table></body></html>`)
	return b.String()
}

// fakePages serves canned bodies keyed by day and page. A page without an
// entry has no listing table at all.
type fakePages struct {
	mu     sync.Mutex
	bodies map[entity.PageParams]string
	errs   map[entity.PageParams]error
	calls  []entity.PageParams
	onCall func(entity.PageParams)
}

func newFakePages() *fakePages {
	return &fakePages{
		bodies: make(map[entity.PageParams]string),
		errs:   make(map[entity.PageParams]error),
	}
}

func (f *fakePages) set(day string, page int, body string) {
	f.bodies[entity.PageParams{Day: day, Page: page}] = body
}

func (f *fakePages) fail(day string, page int, err error) {
	f.errs[entity.PageParams{Day: day, Page: page}] = err
}

func (f *fakePages) Fetch(_ context.Context, params entity.PageParams) (string, error) {
	f.mu.Lock()
	f.calls = append(f.calls, params)
	onCall := f.onCall
	f.mu.Unlock()
	if onCall != nil {
		onCall(params)
	}

	if err, ok := f.errs[params]; ok {
		return "", err
	}
	if body, ok := f.bodies[params]; ok {
		return body, nil
	}
	return "<html><body><p>No such page.</p></body></html>", nil
}

func (f *fakePages) fetched(day string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c.Day == day {
			n++
		}
	}
	return n
}

type fakeArchive struct {
	mu      sync.Mutex
	days    map[string][]entity.Post
	saveErr map[string]error
	saves   []string
}

func newFakeArchive() *fakeArchive {
	return &fakeArchive{days: make(map[string][]entity.Post), saveErr: make(map[string]error)}
}

func (f *fakeArchive) Save(_ context.Context, day string, posts []entity.Post) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.saves = append(f.saves, day)
	if err := f.saveErr[day]; err != nil {
		return 0, err
	}
	f.days[day] = append([]entity.Post{}, posts...)
	return len(posts), nil
}

func (f *fakeArchive) Load(_ context.Context, day string) ([]entity.Post, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	posts, ok := f.days[day]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return posts, nil
}

func (f *fakeArchive) Days(_ context.Context) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	days := make([]string, 0, len(f.days))
	for day := range f.days {
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

type fakeFailedPages struct {
	mu      sync.Mutex
	records []*entity.FailedPage
	deleted []string
}

func (f *fakeFailedPages) SaveOrUpdate(_ context.Context, failed *entity.FailedPage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.records = append(f.records, failed)
	return nil
}

func (f *fakeFailedPages) FindByDay(_ context.Context, day string) ([]*entity.FailedPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.FailedPage
	for _, r := range f.records {
		if r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeFailedPages) DeleteDay(_ context.Context, day string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, day)
	return nil
}

type fakePosts struct {
	days map[string][]entity.Post
	err  error
}

func (f *fakePosts) ReplaceDay(_ context.Context, day string, posts []entity.Post) error {
	if f.err != nil {
		return f.err
	}
	if f.days == nil {
		f.days = make(map[string][]entity.Post)
	}
	f.days[day] = posts
	return nil
}

func (f *fakePosts) FindByDay(_ context.Context, day string) ([]entity.Post, error) {
	return f.days[day], nil
}
