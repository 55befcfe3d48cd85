package frontpage

import (
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/user/frontpage-archiver/internal/entity"
)

func thingRow(id string) Row {
	return ThingRow{Thing: entity.Thing{ID: id, Rank: id + ".", TitleLine: "title " + id, Link: "http://" + id}}
}

func infoRow(user string) Row {
	return InfoRow{Info: entity.Info{Score: "1 point", User: user, Date: "2007-10-01T00:00:00", Comments: "2 comments"}}
}

func post(id, user string) entity.Post {
	return entity.NewPost(
		entity.Thing{ID: id, Rank: id + ".", TitleLine: "title " + id, Link: "http://" + id},
		entity.Info{Score: "1 point", User: user, Date: "2007-10-01T00:00:00", Comments: "2 comments"},
	)
}

func TestAssemble(t *testing.T) {
	testCases := []struct {
		name     string
		rows     []Row
		expected []entity.Post
	}{
		{
			name:     "empty",
			rows:     nil,
			expected: []entity.Post{},
		},
		{
			name:     "thing info spacer",
			rows:     []Row{thingRow("1"), infoRow("alice"), SpacerRow{}},
			expected: []entity.Post{post("1", "alice")},
		},
		{
			name: "several pairs keep order",
			rows: []Row{
				thingRow("1"), infoRow("a"), SpacerRow{},
				thingRow("2"), infoRow("b"), SpacerRow{},
				thingRow("3"), infoRow("c"), SpacerRow{},
				UnrecognizedRow{}, MoreRow{},
			},
			expected: []entity.Post{post("1", "a"), post("2", "b"), post("3", "c")},
		},
		{
			name:     "thing followed by thing drops the first",
			rows:     []Row{thingRow("1"), thingRow("2"), infoRow("b")},
			expected: []entity.Post{post("2", "b")},
		},
		{
			name:     "spacer between thing and info breaks the pair",
			rows:     []Row{thingRow("1"), SpacerRow{}, infoRow("a")},
			expected: []entity.Post{},
		},
		{
			name:     "unrecognized between thing and info breaks the pair",
			rows:     []Row{thingRow("1"), UnrecognizedRow{}, infoRow("a"), thingRow("2"), infoRow("b")},
			expected: []entity.Post{post("2", "b")},
		},
		{
			name:     "info without thing",
			rows:     []Row{infoRow("a"), SpacerRow{}, infoRow("b")},
			expected: []entity.Post{},
		},
		{
			name:     "trailing thing",
			rows:     []Row{thingRow("1"), infoRow("a"), thingRow("2")},
			expected: []entity.Post{post("1", "a")},
		},
		{
			name:     "info is consumed once",
			rows:     []Row{thingRow("1"), infoRow("a"), infoRow("b")},
			expected: []entity.Post{post("1", "a")},
		},
	}

	for _, test := range testCases {
		t.Run(test.name, func(t *testing.T) {
			got := Assemble(slices.Values(test.rows))
			if diff := cmp.Diff(test.expected, got); diff != "" {
				t.Fatalf("posts mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Every emitted post must come from a Thing at position i and an Info at i+1.
func TestAssembleOnlyAdjacentPairs(t *testing.T) {
	kinds := []func(i int) Row{
		func(i int) Row { return thingRow(string(rune('a' + i%26))) },
		func(i int) Row { return infoRow(string(rune('A' + i%26))) },
		func(int) Row { return SpacerRow{} },
		func(int) Row { return UnrecognizedRow{} },
		func(int) Row { return MoreRow{} },
	}

	// deterministic pseudo-random sequences
	seed := uint32(7)
	for round := 0; round < 200; round++ {
		rows := make([]Row, 0, 30)
		for i := 0; i < 30; i++ {
			seed = seed*1664525 + 1013904223
			rows = append(rows, kinds[int(seed>>24)%len(kinds)](i))
		}

		var expected []entity.Post
		for i := 0; i < len(rows)-1; i++ {
			thing, ok := rows[i].(ThingRow)
			if !ok {
				continue
			}
			if info, ok := rows[i+1].(InfoRow); ok {
				expected = append(expected, entity.NewPost(thing.Thing, info.Info))
				i++
			}
		}

		got := Assemble(slices.Values(rows))
		if len(expected) == 0 {
			expected = []entity.Post{}
		}
		if diff := cmp.Diff(expected, got); diff != "" {
			t.Fatalf("round %d mismatch (-want +got):\n%s", round, diff)
		}
	}
}
