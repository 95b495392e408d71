package orchestrator

import (
	"context"
	"encoding/json"
	"seoaudit/pkg/domain"
	"seoaudit/pkg/logger"
	"seoaudit/pkg/serrors"
	"time"

	"go.uber.org/zap"
)

// ItemFunc processes one item of a batch.
type ItemFunc[T any] func(ctx context.Context, item T) (any, error)

// RunBatch processes items in order and records every outcome. A failing item
// does not stop the batch; cancellation of ctx does. Progress is reported
// after each item. itemDeadline bounds a single item when positive.
func RunBatch[T any](ctx context.Context,
	items []T,
	itemDeadline time.Duration,
	progress ProgressFunc,
	fn ItemFunc[T]) (*domain.BatchResult, error) {
	result := &domain.BatchResult{
		Total: len(items),
		Items: make([]domain.BatchItemResult, 0, len(items)),
	}
	if err := progress(ctx, 0, len(items)); err != nil {
		return nil, err
	}

	for i, item := range items {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		raw, err := json.Marshal(item)
		if err != nil {
			return nil, serrors.Wrap(serrors.ErrValidation, err, "could not encode batch item %d", i)
		}
		entry := domain.BatchItemResult{Item: raw}

		value, err := runItem(ctx, itemDeadline, item, fn)
		if err == nil {
			entry.Result, err = json.Marshal(value)
		}
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			entry.Error = err.Error()
			result.Failed++
			logger.Warn(ctx, "batch item failed", zap.Int("item", i), zap.Error(err))
		} else {
			entry.Success = true
			result.Successful++
		}
		result.Items = append(result.Items, entry)

		if err := progress(ctx, i+1, len(items)); err != nil {
			return nil, err
		}
	}

	return result, nil
}

func runItem[T any](ctx context.Context, deadline time.Duration, item T, fn ItemFunc[T]) (value any, err error) {
	if deadline > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, deadline)
		defer cancel()
	}
	defer func() {
		if r := recover(); r != nil {
			err = serrors.With(serrors.ErrInternal, "batch item panicked: %v", r)
		}
	}()

	return fn(ctx, item)
}
