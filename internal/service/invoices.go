package service

import (
	"context"
	"errors"
	"fmt"

	"demo/printshop/internal/events"
	"demo/printshop/internal/files"
	"demo/printshop/internal/model"
)

// CreateInvoice prices and persists an invoice. The total is fixed from
// here on; reads return it unchanged.
func (s *Service) CreateInvoice(ctx context.Context, in model.DraftInput) (Saved, error) {
	d, err := s.priceDraft(ctx, in)
	if err != nil {
		return Saved{}, err
	}
	id, err := s.repo.CreateInvoice(ctx, d)
	if err != nil {
		return Saved{}, refErr("create invoice", err, "customer", d.CustomerID)
	}
	s.publish(ctx, events.InvoiceCreated, id, &d.Total)
	return Saved{ID: id, Total: d.Total}, nil
}

func (s *Service) GetInvoice(ctx context.Context, id int64) (model.Invoice, error) {
	inv, ok, err := s.repo.GetInvoice(ctx, id)
	if err != nil {
		return model.Invoice{}, storeErr("get invoice", err)
	}
	if !ok {
		return model.Invoice{}, &NotFoundError{Entity: "invoice", ID: id}
	}
	return inv, nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	invs, err := s.repo.ListInvoices(ctx)
	if err != nil {
		return nil, storeErr("list invoices", err)
	}
	return invs, nil
}

// InvoiceItems lists an invoice's lines. Variation lines reflect the current
// catalog, so cached entries are dropped whenever a variation changes.
func (s *Service) InvoiceItems(ctx context.Context, id int64) ([]model.LineItem, error) {
	var gen uint64
	if s.items != nil {
		if items, ok := s.items.Get(id); ok {
			return items, nil
		}
		gen = s.items.Gen()
	}
	items, err := s.repo.InvoiceItems(ctx, id)
	if err != nil {
		return nil, storeErr("invoice items", err)
	}
	if s.items != nil && len(items) > 0 {
		// A delete or catalog change that raced this read wins.
		s.items.SetIfGen(id, items, gen)
	}
	return items, nil
}

func (s *Service) DeleteInvoice(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteInvoice(ctx, id)
	if err != nil {
		return storeErr("delete invoice", err)
	}
	if s.items != nil {
		s.items.Delete(id)
	}
	if deleted {
		s.publish(ctx, events.InvoiceDeleted, id, nil)
	}
	return nil
}

// AttachInvoicePDF stores a rendered invoice document and records its link.
func (s *Service) AttachInvoicePDF(ctx context.Context, id int64, pdf []byte) (string, error) {
	if s.docs == nil {
		return "", storeErr("attach invoice pdf", ErrNoDocumentStore)
	}
	if len(pdf) == 0 {
		return "", &ValidationError{Err: errors.New("document: empty body")}
	}
	if _, err := s.GetInvoice(ctx, id); err != nil {
		return "", err
	}
	link, err := s.docs.Store(ctx, fmt.Sprintf("invoice-%d.pdf", id), pdf)
	if err != nil {
		return "", storeErr("store invoice pdf", err)
	}
	ok, err := s.repo.SetInvoicePDF(ctx, id, link)
	if err != nil {
		return "", storeErr("record invoice pdf", err)
	}
	if !ok {
		return "", &NotFoundError{Entity: "invoice", ID: id}
	}
	return link, nil
}

// ErrDocumentNotFound is returned by Document for unknown names.
var ErrDocumentNotFound = files.ErrNotFound

func (s *Service) Document(ctx context.Context, name string) ([]byte, error) {
	if s.docs == nil {
		return nil, ErrDocumentNotFound
	}
	b, err := s.docs.Open(ctx, name)
	if err != nil {
		if errors.Is(err, files.ErrNotFound) || errors.Is(err, files.ErrInvalidName) {
			return nil, ErrDocumentNotFound
		}
		return nil, storeErr("open document", err)
	}
	return b, nil
}
