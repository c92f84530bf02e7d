package validate

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"demo/printshop/internal/model"
)

type multiErr []error

func (m multiErr) Error() string {
	var b strings.Builder
	for i, e := range m {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(e.Error())
	}
	return b.String()
}
func (m multiErr) OrNil() error {
	if len(m) == 0 {
		return nil
	}
	return m
}

func badPrice(p float64) bool { return p < 0 || math.IsNaN(p) || math.IsInf(p, 0) }

// Quantities are stored in INTEGER columns.
const maxQuantity = math.MaxInt32

func badQuantity(q int) bool { return q <= 0 || q > maxQuantity }

func Variation(v model.VariationInput) error {
	var errs multiErr
	if strings.TrimSpace(v.Size) == "" {
		errs = append(errs, errors.New("size: required"))
	}
	if v.Price == nil {
		errs = append(errs, errors.New("price: required"))
	} else if badPrice(*v.Price) {
		errs = append(errs, errors.New("price: must be >= 0"))
	}
	if v.Quantity != nil && (*v.Quantity < 0 || *v.Quantity > maxQuantity) {
		errs = append(errs, fmt.Errorf("quantity: must be between 0 and %d", maxQuantity))
	}
	return errs.OrNil()
}

func Price(p model.PriceInput) error {
	if p.Price == nil {
		return multiErr{errors.New("price: required")}
	}
	if badPrice(*p.Price) {
		return multiErr{errors.New("price: must be >= 0")}
	}
	return nil
}

// Customer requires a name or a company.
func Customer(c model.CustomerInput) error {
	if strings.TrimSpace(c.Name) == "" && strings.TrimSpace(c.Company) == "" {
		return multiErr{errors.New("name or company: required")}
	}
	return nil
}

func Draft(d model.DraftInput) error {
	var errs multiErr

	if d.CustomerID == nil {
		errs = append(errs, errors.New("customerId: required"))
	}

	// Items
	for i, it := range d.VariationItems {
		if it.VariationID <= 0 {
			errs = append(errs, fmt.Errorf("variationItems[%d].variation_id: must be > 0", i))
		}
		if badQuantity(it.Quantity) {
			errs = append(errs, fmt.Errorf("variationItems[%d].quantity: must be between 1 and %d", i, maxQuantity))
		}
	}
	for i, it := range d.CustomItems {
		if strings.TrimSpace(it.ProductName) == "" {
			errs = append(errs, fmt.Errorf("customItems[%d].product_name: required", i))
		}
		if badPrice(it.Price) {
			errs = append(errs, fmt.Errorf("customItems[%d].price: must be >= 0", i))
		}
		if badQuantity(it.Quantity) {
			errs = append(errs, fmt.Errorf("customItems[%d].quantity: must be between 1 and %d", i, maxQuantity))
		}
	}

	return errs.OrNil()
}
