package hnapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultBaseURL is the public Firebase endpoint of the API.
const DefaultBaseURL = "https://hacker-news.firebaseio.com/v0"

// DefaultTimeout bounds every API request.
const DefaultTimeout = 10 * time.Second

// Client reads items, users and story lists from the JSON API.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetHeader("Accept", "application/json"),
	}
}

// GetItem returns the item with the given id, or nil when there is none.
func (c *Client) GetItem(ctx context.Context, id int) (Item, error) {
	body, err := c.get(ctx, fmt.Sprintf("/item/%d.json", id))
	if err != nil || body == nil {
		return nil, err
	}
	item, err := decodeItem(body)
	if err != nil {
		return nil, fmt.Errorf("decode item %d: %w", id, err)
	}
	return item, nil
}

// GetUser returns the named user, or nil when there is none.
func (c *Client) GetUser(ctx context.Context, name string) (*User, error) {
	body, err := c.get(ctx, "/user/"+url.PathEscape(name)+".json")
	if err != nil || body == nil {
		return nil, err
	}
	var user User
	if err := json.Unmarshal(body, &user); err != nil {
		return nil, fmt.Errorf("decode user %s: %w", name, err)
	}
	return &user, nil
}

// GetMaxItemID returns the id of the newest item.
func (c *Client) GetMaxItemID(ctx context.Context) (int, error) {
	var id int
	err := c.getJSON(ctx, "/maxitem.json", &id)
	return id, err
}

func (c *Client) GetTopStories(ctx context.Context) ([]int, error)  { return c.ids(ctx, "/topstories.json") }
func (c *Client) GetNewStories(ctx context.Context) ([]int, error)  { return c.ids(ctx, "/newstories.json") }
func (c *Client) GetBestStories(ctx context.Context) ([]int, error) { return c.ids(ctx, "/beststories.json") }

// GetAskStories returns up to 200 of the latest Ask HN stories.
func (c *Client) GetAskStories(ctx context.Context) ([]int, error) { return c.ids(ctx, "/askstories.json") }

// GetShowStories returns up to 200 of the latest Show HN stories.
func (c *Client) GetShowStories(ctx context.Context) ([]int, error) {
	return c.ids(ctx, "/showstories.json")
}

// GetJobStories returns up to 200 of the latest job stories.
func (c *Client) GetJobStories(ctx context.Context) ([]int, error) { return c.ids(ctx, "/jobstories.json") }

// GetUpdates returns recently changed items and profiles.
func (c *Client) GetUpdates(ctx context.Context) (*Updates, error) {
	var updates Updates
	if err := c.getJSON(ctx, "/updates.json", &updates); err != nil {
		return nil, err
	}
	return &updates, nil
}

// Stories resolves a list name (top, new, best, ask, show, job) to its ids.
func (c *Client) Stories(ctx context.Context, list string) ([]int, error) {
	switch list {
	case "top":
		return c.GetTopStories(ctx)
	case "new":
		return c.GetNewStories(ctx)
	case "best":
		return c.GetBestStories(ctx)
	case "ask":
		return c.GetAskStories(ctx)
	case "show":
		return c.GetShowStories(ctx)
	case "job":
		return c.GetJobStories(ctx)
	}
	return nil, fmt.Errorf("unknown story list %q", list)
}

func (c *Client) ids(ctx context.Context, path string) ([]int, error) {
	ids := []int{}
	if err := c.getJSON(ctx, path, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	body, err := c.get(ctx, path)
	if err != nil {
		return err
	}
	if body == nil {
		return fmt.Errorf("GET %s: empty response", path)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// get returns the response body, or nil when the API answered null.
func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	res, err := c.http.R().SetContext(ctx).Get(path)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", path, err)
	}
	if !res.IsSuccess() {
		return nil, fmt.Errorf("GET %s: unexpected status code %d", path, res.StatusCode())
	}

	body := bytes.TrimSpace(res.Body())
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return nil, nil
	}
	return body, nil
}
