package service

import (
	"context"
	"strings"

	"demo/printshop/internal/model"
	"demo/printshop/internal/validate"
)

// ListProducts returns every product with its variations, including
// products that have none.
func (s *Service) ListProducts(ctx context.Context) ([]model.Product, error) {
	ps, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, storeErr("list products", err)
	}
	return ps, nil
}

func (s *Service) AddVariation(ctx context.Context, productID int64, in model.VariationInput) (model.Variation, error) {
	if err := validate.Variation(in); err != nil {
		return model.Variation{}, &ValidationError{Err: err}
	}
	acc := strings.TrimSpace(in.Accessory)
	if acc == "" {
		acc = model.DefaultAccessory
	}
	v, err := s.repo.AddVariation(ctx, model.Variation{
		ProductID: productID,
		Quantity:  in.Quantity,
		Size:      strings.TrimSpace(in.Size),
		Accessory: acc,
		Price:     *in.Price,
	})
	if err != nil {
		return model.Variation{}, refErr("add variation", err, "product", productID)
	}
	return v, nil
}

// UpdateVariationPrice overwrites the price; an unknown id is not an error.
func (s *Service) UpdateVariationPrice(ctx context.Context, id int64, in model.PriceInput) error {
	if err := validate.Price(in); err != nil {
		return &ValidationError{Err: err}
	}
	n, err := s.repo.UpdateVariationPrice(ctx, id, *in.Price)
	if err != nil {
		return storeErr("update variation price", err)
	}
	if n > 0 {
		s.flushItems()
	}
	return nil
}

// DeleteVariation removes the variation; an unknown id is not an error.
func (s *Service) DeleteVariation(ctx context.Context, id int64) error {
	n, err := s.repo.DeleteVariation(ctx, id)
	if err != nil {
		return storeErr("delete variation", err)
	}
	if n > 0 {
		s.flushItems()
	}
	return nil
}

func (s *Service) flushItems() {
	if s.items != nil {
		s.items.Clear()
	}
}
