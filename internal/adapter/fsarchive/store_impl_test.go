package fsarchive

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
)

var samplePosts = []entity.Post{
	{
		ID:        "1",
		Rank:      "1.",
		TitleLine: `<a href="http://a">A &amp; B</a>`,
		Link:      "http://a",
		Score:     "5 points",
		User:      "pg",
		Date:      "2007-10-01T00:00:00",
		Comments:  "3 comments",
	},
	{ID: "2", Rank: "2.", TitleLine: "B", Link: "http://b", Score: "1 point", User: "rtm", Date: "2007-10-01T01:00:00", Comments: "1 comments"},
}

func TestSaveAndLoad(t *testing.T) {
	ctx := context.Background()
	store := NewStore(filepath.Join(t.TempDir(), "data"))

	n, err := store.Save(ctx, "2007-10-01", samplePosts)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	got, err := store.Load(ctx, "2007-10-01")
	require.NoError(t, err)
	if diff := cmp.Diff(samplePosts, got); diff != "" {
		t.Errorf("loaded posts mismatch (-want +got):\n%s", diff)
	}
}

func TestSaveWritesReadableJSON(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	_, err := store.Save(ctx, "2007-10-01", samplePosts[:1])
	require.NoError(t, err)

	data, err := os.ReadFile(store.Path("2007-10-01"))
	require.NoError(t, err)
	require.Contains(t, string(data), `"title_line": "<a href=\"http://a\">A &amp; B</a>"`)
	require.Contains(t, string(data), "\n  {\n    \"id\": \"1\",")
}

func TestSaveEmptyDay(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	n, err := store.Save(ctx, "2007-10-01", nil)
	require.NoError(t, err)
	require.Zero(t, n)

	data, err := os.ReadFile(store.Path("2007-10-01"))
	require.NoError(t, err)
	require.Equal(t, "[]\n", string(data))

	got, err := store.Load(ctx, "2007-10-01")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestSaveIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	_, err := store.Save(ctx, "2007-10-01", samplePosts)
	require.NoError(t, err)
	first, err := os.ReadFile(store.Path("2007-10-01"))
	require.NoError(t, err)

	_, err = store.Save(ctx, "2007-10-01", samplePosts)
	require.NoError(t, err)
	second, err := os.ReadFile(store.Path("2007-10-01"))
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestSaveOverwritesPreviousArchive(t *testing.T) {
	ctx := context.Background()
	store := NewStore(t.TempDir())

	_, err := store.Save(ctx, "2007-10-01", samplePosts)
	require.NoError(t, err)
	_, err = store.Save(ctx, "2007-10-01", samplePosts[1:])
	require.NoError(t, err)

	got, err := store.Load(ctx, "2007-10-01")
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "2", got[0].ID)

	entries, err := os.ReadDir(filepath.Dir(store.Path("2007-10-01")))
	require.NoError(t, err)
	require.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestSaveFailures(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid day", func(t *testing.T) {
		store := NewStore(t.TempDir())
		_, err := store.Save(ctx, "../escape", samplePosts)
		require.ErrorIs(t, err, repository.ErrArchiveFailed)
	})

	t.Run("directory is a file", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "blocker")
		require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

		store := NewStore(blocker)
		_, err := store.Save(ctx, "2007-10-01", samplePosts)
		require.ErrorIs(t, err, repository.ErrArchiveFailed)
	})
}

func TestLoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())
	_, err := store.Load(context.Background(), "2007-10-01")
	require.ErrorIs(t, err, repository.ErrNotFound)
}

func TestDays(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	store := NewStore(dir)

	days, err := NewStore(filepath.Join(dir, "missing")).Days(ctx)
	require.NoError(t, err)
	require.Empty(t, days)

	for _, day := range []string{"2007-10-03", "2007-10-01", "2007-10-02"} {
		_, err := store.Save(ctx, day, nil)
		require.NoError(t, err)
	}
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.json"), []byte("{}"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2007-10-04.txt"), []byte(""), 0o644))

	days, err = store.Days(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"2007-10-01", "2007-10-02", "2007-10-03"}, days)
}
