package ports

import (
	"context"
	"drayage-quote-service/internal/domain"
)

// Port: read-only access to port and warehouse reference data.
type ReferenceRepository interface {
	// Ports in display order.
	ListPorts(ctx context.Context) ([]domain.Port, error)
	// Base warehouse records, without congestion enrichment.
	ListWarehouses(ctx context.Context) ([]domain.Warehouse, error)
}
