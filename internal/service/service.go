// Package service holds the print shop's order logic: catalog, customers,
// estimates and invoices.
package service

import (
	"context"
	"errors"
	"log"
	"strings"

	"demo/printshop/internal/cache"
	"demo/printshop/internal/events"
	"demo/printshop/internal/files"
	"demo/printshop/internal/model"
	"demo/printshop/internal/store"
)

// SearchLimit bounds customer search results.
const SearchLimit = 10

// UnnamedCustomer is stored when a customer is upserted by company only.
const UnnamedCustomer = "Unnamed"

var ErrNoDocumentStore = errors.New("document storage is not configured")

type Service struct {
	repo   store.Repository
	events events.Publisher
	docs   files.Store
	items  *cache.Cache[int64, []model.LineItem]
}

type Option func(*Service)

func WithEvents(p events.Publisher) Option { return func(s *Service) { s.events = p } }

func WithDocuments(d files.Store) Option { return func(s *Service) { s.docs = d } }

// WithInvoiceItemCache caches invoice line items. Entries are evicted when
// the invoice is deleted and flushed when any variation is repriced or
// removed.
func WithInvoiceItemCache() Option {
	return func(s *Service) { s.items = cache.New[int64, []model.LineItem]() }
}

func New(repo store.Repository, opts ...Option) *Service {
	s := &Service{repo: repo, events: events.Nop{}}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Saved is returned by estimate and invoice writes.
type Saved struct {
	ID    int64   `json:"id"`
	Total float64 `json:"total"`
}

func (s *Service) Ping(ctx context.Context) error {
	if err := s.repo.Ping(ctx); err != nil {
		return storeErr("ping", err)
	}
	return nil
}

func (s *Service) publish(ctx context.Context, typ string, id int64, total *float64) {
	if err := s.events.Publish(ctx, events.New(typ, id, total)); err != nil {
		log.Printf("publish %s id=%d: %v", typ, id, err)
	}
}

func trimCustomer(in model.CustomerInput) model.Customer {
	c := model.Customer{
		Name:    strings.TrimSpace(in.Name),
		Company: strings.TrimSpace(in.Company),
		Email:   strings.TrimSpace(in.Email),
		Phone:   strings.TrimSpace(in.Phone),
		Address: strings.TrimSpace(in.Address),
	}
	if c.Name == "" {
		c.Name = UnnamedCustomer
	}
	return c
}
