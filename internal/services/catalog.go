package services

import (
	"context"
	"drayage-quote-service/internal/domain"
	"drayage-quote-service/internal/ports"
	"fmt"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Catalog holds the port and warehouse reference tables for the lifetime of
// the process. It is read-only after construction and safe for concurrent use
// as long as the WaitSampler is.
type Catalog struct {
	ports      []domain.Port
	warehouses []domain.Warehouse
	portIdx    map[string]int
	whIdx      map[string]int
	sampler    domain.WaitSampler
}

func NewCatalog(ps []domain.Port, whs []domain.Warehouse, sampler domain.WaitSampler) *Catalog {
	c := &Catalog{
		ports:      append([]domain.Port(nil), ps...),
		warehouses: append([]domain.Warehouse(nil), whs...),
		portIdx:    make(map[string]int, len(ps)),
		whIdx:      make(map[string]int, len(whs)),
		sampler:    sampler,
	}
	// First occurrence wins if reference data repeats a code.
	for i, p := range c.ports {
		if _, ok := c.portIdx[p.Code]; !ok {
			c.portIdx[p.Code] = i
		}
	}
	for i, w := range c.warehouses {
		if _, ok := c.whIdx[w.Code]; !ok {
			c.whIdx[w.Code] = i
		}
	}
	return c
}

// LoadCatalog reads ports and warehouses concurrently from repo.
func LoadCatalog(ctx context.Context, repo ports.ReferenceRepository, sampler domain.WaitSampler) (*Catalog, error) {
	var (
		ps  []domain.Port
		whs []domain.Warehouse
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ps, err = repo.ListPorts(gctx)
		if err != nil {
			return fmt.Errorf("list ports: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		whs, err = repo.ListWarehouses(gctx)
		if err != nil {
			return fmt.Errorf("list warehouses: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return NewCatalog(ps, whs, sampler), nil
}

func (c *Catalog) Ports() []domain.Port {
	return append([]domain.Port(nil), c.ports...)
}

func (c *Catalog) Port(code string) (domain.Port, bool) {
	i, ok := c.portIdx[code]
	if !ok {
		return domain.Port{}, false
	}
	return c.ports[i], true
}

// Warehouse returns the base record without congestion fields.
func (c *Catalog) Warehouse(code string) (domain.Warehouse, bool) {
	i, ok := c.whIdx[code]
	if !ok {
		return domain.Warehouse{}, false
	}
	return c.warehouses[i], true
}

// EnrichedWarehouse returns the warehouse with freshly sampled congestion fields.
func (c *Catalog) EnrichedWarehouse(code string) (domain.Warehouse, bool) {
	w, ok := c.Warehouse(code)
	if !ok {
		return domain.Warehouse{}, false
	}
	return w.Enrich(c.sampler), true
}

func (c *Catalog) EnrichedWarehouses() []domain.Warehouse {
	return domain.EnrichAll(c.warehouses, c.sampler)
}

// SearchWarehouses returns enriched warehouses whose code or city contains
// query, case-insensitively. An empty query matches everything.
func (c *Catalog) SearchWarehouses(query string) []domain.Warehouse {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return c.EnrichedWarehouses()
	}

	out := make([]domain.Warehouse, 0)
	for _, w := range c.warehouses {
		if strings.Contains(strings.ToLower(w.Code), q) || strings.Contains(strings.ToLower(w.City), q) {
			out = append(out, w.Enrich(c.sampler))
		}
	}
	return out
}

// CongestionWatch returns enriched warehouses, optionally only the Critical ones.
func (c *Catalog) CongestionWatch(criticalOnly bool) []domain.Warehouse {
	all := c.EnrichedWarehouses()
	if !criticalOnly {
		return all
	}

	out := make([]domain.Warehouse, 0, len(all))
	for _, w := range all {
		if w.CongestionLevel == domain.CongestionCritical {
			out = append(out, w)
		}
	}
	return out
}

// RemoteWarehouses returns the set of warehouse codes flagged as remote.
func (c *Catalog) RemoteWarehouses() map[string]bool {
	out := make(map[string]bool)
	for _, w := range c.warehouses {
		if w.IsRemote {
			out[w.Code] = true
		}
	}
	return out
}
