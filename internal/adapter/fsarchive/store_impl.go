package fsarchive

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/pkg/utils"
)

const ext = ".json"

// Store keeps one JSON file per day, named after the day, in a single directory.
type Store struct {
	dir string
}

var _ repository.ArchiveRepository = (*Store)(nil)

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Path returns the file a day is archived to.
func (s *Store) Path(day string) string {
	return filepath.Join(s.dir, day+ext)
}

// Save writes posts as a pretty-printed JSON array, replacing any previous
// archive of day. The file is renamed into place so readers never see a
// half-written archive.
func (s *Store) Save(_ context.Context, day string, posts []entity.Post) (int, error) {
	if _, err := utils.ParseDay(day); err != nil {
		return 0, fmt.Errorf("%w: %w", repository.ErrArchiveFailed, err)
	}
	if posts == nil {
		posts = []entity.Post{}
	}

	data, err := encode(posts)
	if err != nil {
		return 0, fmt.Errorf("%w: encode %s: %w", repository.ErrArchiveFailed, day, err)
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return 0, fmt.Errorf("%w: %w", repository.ErrArchiveFailed, err)
	}
	if err := writeFile(s.dir, s.Path(day), data); err != nil {
		return 0, fmt.Errorf("%w: %w", repository.ErrArchiveFailed, err)
	}
	return len(posts), nil
}

func (s *Store) Load(_ context.Context, day string) ([]entity.Post, error) {
	if _, err := utils.ParseDay(day); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.Path(day))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	var posts []entity.Post
	if err := json.Unmarshal(data, &posts); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.Path(day), err)
	}
	if posts == nil {
		posts = []entity.Post{}
	}
	return posts, nil
}

func (s *Store) Days(_ context.Context) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return []string{}, nil
		}
		return nil, err
	}

	days := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ext) {
			continue
		}
		day := strings.TrimSuffix(name, ext)
		if _, err := utils.ParseDay(day); err != nil {
			continue
		}
		days = append(days, day)
	}
	sort.Strings(days)
	return days, nil
}

func encode(posts []entity.Post) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(posts); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFile(dir, path string, data []byte) error {
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmpName, path); err != nil {
		return err
	}

	if d, err := os.Open(dir); err == nil {
		_ = d.Sync()
		d.Close()
	}
	return nil
}
