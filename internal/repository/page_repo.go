package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/user/frontpage-archiver/internal/entity"
)

var (
	ErrFetchFailed  = errors.New("failed to fetch page")
	ErrFetchTimeout = errors.New("timed out fetching page")
)

// PageRepository defines the contract for retrieving one listing page.
type PageRepository interface {
	// Fetch returns the raw HTML of a page. It makes at most one attempt.
	Fetch(ctx context.Context, params entity.PageParams) (string, error)
}

// FetchError carries the details of a failed fetch. It matches ErrFetchFailed
// (or ErrFetchTimeout) with errors.Is.
type FetchError struct {
	URL        string
	StatusCode int
	Timeout    bool
	Err        error
}

func (e *FetchError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("fetch %s: unexpected status code %d", e.URL, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("fetch %s: %v", e.URL, e.Err)
	default:
		return fmt.Sprintf("fetch %s failed", e.URL)
	}
}

func (e *FetchError) Unwrap() []error {
	kind := ErrFetchFailed
	if e.Timeout {
		kind = ErrFetchTimeout
	}
	if e.Err == nil {
		return []error{kind}
	}
	return []error{kind, e.Err}
}
