package api

import (
	"drayage-quote-service/internal/api/handlers"
	"drayage-quote-service/internal/ports"
	"drayage-quote-service/internal/services"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(
	quotes *services.QuoteService,
	catalog *services.Catalog,
	dispatch ports.DispatchRepository,
) http.Handler {
	r := chi.NewRouter()

	r.Use(requestIDMiddleware)
	r.Use(loggingMiddleware)
	r.Use(middleware.Recoverer)

	r.NotFound(handlers.NotFound)
	r.MethodNotAllowed(handlers.MethodNotAllowed)

	quoteHandler := &handlers.QuoteHandler{Service: quotes}
	refHandler := &handlers.ReferenceHandler{Catalog: catalog}
	dispatchHandler := &handlers.DispatchHandler{Repo: dispatch, Catalog: catalog}

	r.Get("/health", handlers.Health)
	r.Post("/quotes", quoteHandler.Create)
	r.Post("/quotes/batch", quoteHandler.CreateBatch)
	r.Get("/ports", refHandler.Ports)
	r.Get("/warehouses", refHandler.Warehouses)
	r.Get("/congestion", refHandler.Congestion)
	r.Get("/dispatch", dispatchHandler.Board)

	return r
}
