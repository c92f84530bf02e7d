package service

import (
	"context"
	"strings"

	"demo/printshop/internal/model"
	"demo/printshop/internal/pricing"
	"demo/printshop/internal/validate"
)

// priceDraft validates the input and totals it against current catalog
// prices. Client-side prices for variations are never consulted.
func (s *Service) priceDraft(ctx context.Context, in model.DraftInput) (model.Draft, error) {
	if err := validate.Draft(in); err != nil {
		return model.Draft{}, &ValidationError{Err: err}
	}

	ids := make([]int64, 0, len(in.VariationItems))
	seen := make(map[int64]bool, len(in.VariationItems))
	for _, it := range in.VariationItems {
		if !seen[it.VariationID] {
			seen[it.VariationID] = true
			ids = append(ids, it.VariationID)
		}
	}
	prices, err := s.repo.VariationPrices(ctx, ids)
	if err != nil {
		return model.Draft{}, storeErr("variation prices", err)
	}

	varLines := make([]pricing.Line, 0, len(in.VariationItems))
	for _, it := range in.VariationItems {
		p, ok := prices[it.VariationID]
		if !ok {
			return model.Draft{}, &NotFoundError{Entity: "variation", ID: it.VariationID}
		}
		varLines = append(varLines, pricing.Line{Price: p, Quantity: it.Quantity})
	}

	custom := make([]model.CustomItem, 0, len(in.CustomItems))
	customLines := make([]pricing.Line, 0, len(in.CustomItems))
	for _, it := range in.CustomItems {
		it.ProductName = strings.TrimSpace(it.ProductName)
		it.Size = strings.TrimSpace(it.Size)
		if strings.TrimSpace(it.Accessory) == "" {
			it.Accessory = model.DefaultAccessory
		}
		custom = append(custom, it)
		customLines = append(customLines, pricing.Line{Price: it.Price, Quantity: it.Quantity})
	}

	return model.Draft{
		CustomerID:   *in.CustomerID,
		CustomerInfo: in.CustomerInfo,
		Items:        in.VariationItems,
		CustomItems:  custom,
		Total:        pricing.Total(varLines, customLines),
	}, nil
}
