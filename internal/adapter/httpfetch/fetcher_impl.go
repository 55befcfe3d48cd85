package httpfetch

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/user/frontpage-archiver/internal/entity"
	"github.com/user/frontpage-archiver/internal/repository"
	"github.com/user/frontpage-archiver/pkg/utils"
)

// Options configures a PageFetcher.
type Options struct {
	BaseURL   string
	UserAgent string
	Timeout   time.Duration
	// Delay is the pause between the end of one request and the start of the next.
	Delay time.Duration
}

// PageFetcher implements repository.PageRepository over plain HTTP.
type PageFetcher struct {
	client  *resty.Client
	pacer   *utils.Pacer
	baseURL string
}

var _ repository.PageRepository = (*PageFetcher)(nil)

// NewPageFetcher creates a fetcher that makes one attempt per page and pauses
// opts.Delay after every request before starting the next.
func NewPageFetcher(opts Options) *PageFetcher {
	client := resty.New()
	client.SetTimeout(opts.Timeout)
	client.SetRetryCount(0)
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &PageFetcher{
		client:  client,
		pacer:   utils.NewPacer(opts.Delay),
		baseURL: opts.BaseURL,
	}
}

// Fetch waits for its turn, then GETs the listing page. Cancellation is
// honoured while waiting; a request that has started runs to completion or
// to the client timeout.
func (f *PageFetcher) Fetch(ctx context.Context, params entity.PageParams) (string, error) {
	link, err := utils.ListingURL(f.baseURL, params.Day, params.Page)
	if err != nil {
		return "", err
	}

	if err := f.pacer.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", err
	}
	defer f.pacer.Done()

	res, err := f.client.R().
		SetContext(context.WithoutCancel(ctx)).
		Get(link)
	if err != nil {
		return "", &repository.FetchError{URL: link, Timeout: isTimeout(err), Err: err}
	}
	if !res.IsSuccess() {
		return "", &repository.FetchError{URL: link, StatusCode: res.StatusCode()}
	}

	slog.Debug("Fetched listing page", "url", link, "bytes", len(res.Body()), "duration_ms", res.Time().Milliseconds())
	return string(res.Body()), nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
