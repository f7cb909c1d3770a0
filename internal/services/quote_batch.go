package services

import (
	"context"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/obs"
	"errors"
	"fmt"
	"sync"
)

const (
	// Upper bound on quotes priced in one batch call.
	MaxBatchQuotes = 50

	batchConcurrency = 5
)

var ErrBatchTooLarge = fmt.Errorf("batch exceeds %d quotes", MaxBatchQuotes)

// BatchItem is the outcome for one entry of a batch, in request order. Err is
// set when that entry failed validation; the rest of the batch is unaffected.
type BatchItem struct {
	Quote Quote
	Err   error
}

// QuoteMany prices every params entry independently, each with its own single
// live distance lookup, at most batchConcurrency at a time.
func (s *QuoteService) QuoteMany(ctx context.Context, params []domain.QuoteParams) (_ []BatchItem, err error) {
	defer obs.Time(ctx, "quote.QuoteMany")(&err)

	if len(params) > MaxBatchQuotes {
		return nil, fmt.Errorf("quote many: %w", ErrBatchTooLarge)
	}

	out := make([]BatchItem, len(params))
	if len(params) == 0 {
		return out, nil
	}

	sem := make(chan struct{}, batchConcurrency)
	var wg sync.WaitGroup

	for i, p := range params {
		wg.Add(1)
		go func(i int, p domain.QuoteParams) {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
			case <-ctx.Done():
				out[i].Err = ctx.Err()
				return
			}
			defer func() { <-sem }()

			q, err := s.Quote(ctx, p)
			out[i] = BatchItem{Quote: q, Err: err}
		}(i, p)
	}
	wg.Wait()

	// A cancelled request returns nothing rather than a partial batch.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("quote many: %w", err)
	}

	for i, item := range out {
		if item.Err != nil && !errors.Is(item.Err, ErrInvalidParams) {
			return nil, fmt.Errorf("quote many: item %d: %w", i, item.Err)
		}
	}

	return out, nil
}
