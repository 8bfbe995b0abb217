// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

package stats

import (
	"context"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/longpd/folio/internal/platform/constants"
)

// Delta is one buffered counter increment batch.
type Delta struct {
	ItemType string
	ItemID   string
	Count    int64
}

// Buffer accumulates view increments in Redis so a page view never touches
// Postgres. Keys are "<prefix><item_type>:<item_id>".
type Buffer struct {
	client *redis.Client
}

func NewBuffer(client *redis.Client) *Buffer {
	return &Buffer{client: client}
}

func bufferKey(itemType, itemID string) string {
	return constants.RedisPrefixViewCount + itemType + ":" + itemID
}

// Increment adds one buffered view.
func (buffer *Buffer) Increment(context context.Context, itemType, itemID string) error {
	if err := buffer.client.Incr(context, bufferKey(itemType, itemID)).Err(); err != nil {
		return fmt.Errorf("stats: buffer increment: %w", err)
	}
	return nil
}

// Restore puts a delta back after a failed flush so no views are lost.
func (buffer *Buffer) Restore(context context.Context, delta Delta) error {
	return buffer.client.IncrBy(context, bufferKey(delta.ItemType, delta.ItemID), delta.Count).Err()
}

// Drain atomically removes and returns every buffered delta. Each key is
// consumed with GETDEL, so increments racing the drain land in a fresh key
// and survive for the next sweep.
func (buffer *Buffer) Drain(context context.Context) ([]Delta, error) {
	var deltas []Delta

	iter := buffer.client.Scan(context, 0, constants.RedisPrefixViewCount+"*", 100).Iterator()
	for iter.Next(context) {
		key := iter.Val()

		raw, err := buffer.client.GetDel(context, key).Int64()
		if err == redis.Nil {
			continue // another drainer got here first
		}
		if err != nil {
			return deltas, fmt.Errorf("stats: buffer drain %q: %w", key, err)
		}

		itemType, itemID, ok := parseBufferKey(key)
		if !ok || raw == 0 {
			continue
		}

		deltas = append(deltas, Delta{ItemType: itemType, ItemID: itemID, Count: raw})
	}
	if err := iter.Err(); err != nil {
		return deltas, fmt.Errorf("stats: buffer scan: %w", err)
	}

	return deltas, nil
}

func parseBufferKey(key string) (itemType, itemID string, ok bool) {
	rest, found := strings.CutPrefix(key, constants.RedisPrefixViewCount)
	if !found {
		return "", "", false
	}

	itemType, itemID, found = strings.Cut(rest, ":")
	if !found || itemType == "" || itemID == "" {
		return "", "", false
	}
	return itemType, itemID, true
}
