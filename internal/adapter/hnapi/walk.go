package hnapi

import (
	"context"
	"fmt"

	"github.com/user/frontpage-archiver/pkg/utils"
)

// Walk visits items from id `from` downwards to 1, calling fn with each
// item. A from of zero or less starts at the newest item, and a positive
// count limits how many ids are visited. Null items reach fn as nil.
// Every request waits on pacer, so walkers sharing one pacer stay polite
// together.
func (c *Client) Walk(ctx context.Context, from, count int, pacer *utils.Pacer, fn func(id int, item Item) error) error {
	if from <= 0 {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		maxID, err := c.GetMaxItemID(ctx)
		pacer.Done()
		if err != nil {
			return fmt.Errorf("resolve newest item: %w", err)
		}
		from = maxID
	}

	for id, visited := from, 0; id >= 1 && (count <= 0 || visited < count); id, visited = id-1, visited+1 {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		item, err := c.GetItem(ctx, id)
		pacer.Done()
		if err != nil {
			return err
		}
		if err := fn(id, item); err != nil {
			return err
		}
	}
	return nil
}
