package service

import (
	"context"

	"demo/printshop/internal/events"
	"demo/printshop/internal/model"
	"demo/printshop/internal/pricing"

	"github.com/shopspring/decimal"
)

func (s *Service) CreateEstimate(ctx context.Context, in model.DraftInput) (Saved, error) {
	d, err := s.priceDraft(ctx, in)
	if err != nil {
		return Saved{}, err
	}
	id, err := s.repo.CreateEstimate(ctx, d)
	if err != nil {
		return Saved{}, refErr("create estimate", err, "customer", d.CustomerID)
	}
	s.publish(ctx, events.EstimateCreated, id, &d.Total)
	return Saved{ID: id, Total: d.Total}, nil
}

// UpdateEstimate recomputes the total and replaces the estimate's items.
func (s *Service) UpdateEstimate(ctx context.Context, id int64, in model.DraftInput) (Saved, error) {
	d, err := s.priceDraft(ctx, in)
	if err != nil {
		return Saved{}, err
	}
	ok, err := s.repo.UpdateEstimate(ctx, id, d)
	if err != nil {
		return Saved{}, refErr("update estimate", err, "customer", d.CustomerID)
	}
	if !ok {
		return Saved{}, &NotFoundError{Entity: "estimate", ID: id}
	}
	s.publish(ctx, events.EstimateUpdated, id, &d.Total)
	return Saved{ID: id, Total: d.Total}, nil
}

func (s *Service) GetEstimate(ctx context.Context, id int64) (model.Estimate, error) {
	e, ok, err := s.repo.GetEstimate(ctx, id)
	if err != nil {
		return model.Estimate{}, storeErr("get estimate", err)
	}
	if !ok {
		return model.Estimate{}, &NotFoundError{Entity: "estimate", ID: id}
	}
	return e, nil
}

// ListEstimates reports each estimate's total at today's catalog prices,
// which may differ from the total persisted when it was saved.
func (s *Service) ListEstimates(ctx context.Context) ([]model.Estimate, error) {
	es, err := s.repo.ListEstimates(ctx)
	if err != nil {
		return nil, storeErr("list estimates", err)
	}
	for i := range es {
		es[i].Total = pricing.Taxed(decimal.NewFromFloat(es[i].Subtotal))
	}
	return es, nil
}

func (s *Service) EstimateItems(ctx context.Context, id int64) ([]model.LineItem, error) {
	items, err := s.repo.EstimateItems(ctx, id)
	if err != nil {
		return nil, storeErr("estimate items", err)
	}
	return items, nil
}

// DeleteEstimate removes the estimate and all its items. Deleting an unknown
// id succeeds.
func (s *Service) DeleteEstimate(ctx context.Context, id int64) error {
	deleted, err := s.repo.DeleteEstimate(ctx, id)
	if err != nil {
		return storeErr("delete estimate", err)
	}
	if deleted {
		s.publish(ctx, events.EstimateDeleted, id, nil)
	}
	return nil
}
