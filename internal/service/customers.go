package service

import (
	"context"
	"strings"

	"demo/printshop/internal/events"
	"demo/printshop/internal/model"
	"demo/printshop/internal/validate"
)

// SearchCustomers matches q against name, email, phone and company, case
// insensitively, returning at most SearchLimit distinct (name, company)
// customers, newest first.
func (s *Service) SearchCustomers(ctx context.Context, q string) ([]model.Customer, error) {
	cs, err := s.repo.SearchCustomers(ctx, strings.TrimSpace(q), SearchLimit)
	if err != nil {
		return nil, storeErr("search customers", err)
	}
	return cs, nil
}

// UpsertCustomer keeps one record per trimmed (name, company): an existing
// match gets its contact fields overwritten, otherwise a row is inserted.
func (s *Service) UpsertCustomer(ctx context.Context, in model.CustomerInput) (int64, error) {
	if err := validate.Customer(in); err != nil {
		return 0, &ValidationError{Err: err}
	}
	id, err := s.repo.UpsertCustomer(ctx, trimCustomer(in))
	if err != nil {
		return 0, storeErr("upsert customer", err)
	}
	s.publish(ctx, events.CustomerUpserted, id, nil)
	return id, nil
}
