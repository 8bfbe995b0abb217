// Copyright (c) 2026 Folio. All rights reserved.
// Author: pd.long.dev@gmail.com

/*
Package fallback centralizes the read-with-fallback rule shared by every
content entity.

The public site must always render something: when the relational store is
unconfigured the bundled static snapshot is served, and collections with
guaranteed fallback content (projects, achievements, gallery, profile
sections) also substitute the snapshot when the store is reachable but
empty or failing. Keeping the rule in one higher-order helper guarantees it
is applied uniformly and can be unit-tested in isolation.
*/
package fallback

import (
	"context"
	"log/slog"
)

// Fetch resolves a read operation against the remote store with static
// fallback semantics.
//
// # Resolution Order
//
//  1. query == nil (store unconfigured): transform and return the static rows.
//  2. query error: guaranteed collections degrade to the static rows (the
//     error is logged, never surfaced to the public page); others propagate.
//  3. query empty + guaranteed: substitute the static rows.
//  4. otherwise: transform and return the queried rows, empty or not.
//
// The same row→view-model transform is applied to both sources, so callers
// can never observe a shape difference between live and fallback data.
func Fetch[R any, V any](
	ctx context.Context,
	logger *slog.Logger,
	query func(context.Context) ([]R, error),
	static []R,
	transform func(R) V,
	guaranteed bool,
) ([]V, error) {
	if query == nil {
		return mapRows(static, transform), nil
	}

	rows, err := query(ctx)
	if err != nil {
		if guaranteed {
			logger.Warn("read_degraded_to_fallback", slog.Any("error", err))
			return mapRows(static, transform), nil
		}
		return nil, err
	}

	if len(rows) == 0 && guaranteed {
		return mapRows(static, transform), nil
	}

	return mapRows(rows, transform), nil
}

// mapRows applies the transform, always returning a non-nil slice so JSON
// list endpoints encode [] rather than null.
func mapRows[R any, V any](rows []R, transform func(R) V) []V {
	result := make([]V, len(rows))
	for i, r := range rows {
		result[i] = transform(r)
	}
	return result
}
