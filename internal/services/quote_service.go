package services

import (
	"context"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/platform/obs"
	"errors"
	"fmt"
)

// ErrInvalidParams wraps every QuoteParams validation failure.
var ErrInvalidParams = errors.New("invalid quote parameters")

// Quote is the engine's result plus where the distance came from and the
// enriched destination warehouse used for wait time (nil when unknown).
type Quote struct {
	Result         domain.QuoteResult
	DistanceSource DistanceSource
	Warehouse      *domain.Warehouse
}

// QuoteService validates a request, performs the single live distance lookup
// and hands the outcome to the QuotingEngine.
type QuoteService struct {
	catalog  *Catalog
	engine   *QuotingEngine
	resolver *DistanceResolver
}

func NewQuoteService(catalog *Catalog, resolver *DistanceResolver) *QuoteService {
	return &QuoteService{
		catalog:  catalog,
		engine:   NewQuotingEngine(catalog),
		resolver: resolver,
	}
}

func (s *QuoteService) Quote(ctx context.Context, params domain.QuoteParams) (_ Quote, err error) {
	defer obs.Time(ctx, "quote.Quote")(&err)

	if err := params.Validate(); err != nil {
		return Quote{}, fmt.Errorf("%w: %w", ErrInvalidParams, err)
	}

	var live *domain.RouteDistance
	port, hasPort := s.catalog.Port(params.Origin)
	wh, hasWh := s.catalog.Warehouse(params.DestinationCode)
	if hasPort && hasWh {
		live = s.resolver.Resolve(ctx, port.FullAddress(), wh.FullAddress())
	}

	// A cancelled request returns nothing rather than a partially resolved quote.
	if err := ctx.Err(); err != nil {
		return Quote{}, fmt.Errorf("quote: %w", err)
	}

	result, detail := s.engine.calculate(params, live)
	return Quote{
		Result:         result,
		DistanceSource: detail.source,
		Warehouse:      detail.warehouse,
	}, nil
}
