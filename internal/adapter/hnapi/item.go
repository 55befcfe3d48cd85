package hnapi

import (
	"encoding/json"
	"fmt"
)

// Item is one of Story, Comment, Job, Poll or PollOpt.
type Item interface {
	ItemID() int
	ItemType() string
}

type Story struct {
	ID          int    `json:"id"`
	Descendants int    `json:"descendants"`
	By          string `json:"by"`
	Kids        []int  `json:"kids,omitempty"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	URL         string `json:"url,omitempty"`
	Text        string `json:"text,omitempty"`
	Time        int64  `json:"time"`
}

type Comment struct {
	ID     int    `json:"id"`
	By     string `json:"by"`
	Kids   []int  `json:"kids,omitempty"`
	Parent int    `json:"parent"`
	Text   string `json:"text"`
	Time   int64  `json:"time"`
}

type Job struct {
	ID    int    `json:"id"`
	Score int    `json:"score"`
	Text  string `json:"text,omitempty"`
	Time  int64  `json:"time"`
	Title string `json:"title"`
	URL   string `json:"url,omitempty"`
}

type Poll struct {
	ID          int    `json:"id"`
	By          string `json:"by"`
	Descendants int    `json:"descendants"`
	Kids        []int  `json:"kids,omitempty"`
	Parts       []int  `json:"parts,omitempty"`
	Score       int    `json:"score"`
	Title       string `json:"title"`
	Text        string `json:"text,omitempty"`
	Time        int64  `json:"time"`
}

type PollOpt struct {
	ID    int    `json:"id"`
	By    string `json:"by"`
	Poll  int    `json:"poll"`
	Score int    `json:"score"`
	Text  string `json:"text,omitempty"`
	Time  int64  `json:"time"`
}

func (s *Story) ItemID() int   { return s.ID }
func (c *Comment) ItemID() int { return c.ID }
func (j *Job) ItemID() int     { return j.ID }
func (p *Poll) ItemID() int    { return p.ID }
func (o *PollOpt) ItemID() int { return o.ID }

func (*Story) ItemType() string   { return "story" }
func (*Comment) ItemType() string { return "comment" }
func (*Job) ItemType() string     { return "job" }
func (*Poll) ItemType() string    { return "poll" }
func (*PollOpt) ItemType() string { return "pollopt" }

// Title returns the title of stories, jobs and polls.
func Title(item Item) (string, bool) {
	switch it := item.(type) {
	case *Story:
		return it.Title, true
	case *Job:
		return it.Title, true
	case *Poll:
		return it.Title, true
	}
	return "", false
}

// Author returns who posted the item. Jobs carry no author.
func Author(item Item) (string, bool) {
	switch it := item.(type) {
	case *Story:
		return it.By, true
	case *Comment:
		return it.By, true
	case *Poll:
		return it.By, true
	case *PollOpt:
		return it.By, true
	}
	return "", false
}

// User is a user profile.
type User struct {
	ID        string `json:"id"`
	Created   int64  `json:"created"`
	Karma     int    `json:"karma"`
	Delay     *int   `json:"delay,omitempty"`
	About     string `json:"about,omitempty"`
	Submitted []int  `json:"submitted"`
}

// Updates lists recently changed items and profiles.
type Updates struct {
	Items    []int    `json:"items"`
	Profiles []string `json:"profiles"`
}

// decodeItem picks the concrete item type from the "type" field.
func decodeItem(data []byte) (Item, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return nil, err
	}

	var item Item
	switch head.Type {
	case "story":
		item = &Story{}
	case "comment":
		item = &Comment{}
	case "job":
		item = &Job{}
	case "poll":
		item = &Poll{}
	case "pollopt":
		item = &PollOpt{}
	default:
		return nil, fmt.Errorf("unknown item type %q", head.Type)
	}

	if err := json.Unmarshal(data, item); err != nil {
		return nil, err
	}
	return item, nil
}
