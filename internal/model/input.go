package model

// Request payloads. Pointer fields distinguish "absent" from zero.

type VariationInput struct {
	Size      string   `json:"size"`
	Price     *float64 `json:"price"`
	Accessory string   `json:"accessory"`
	Quantity  *int     `json:"quantity"`
}

type PriceInput struct {
	Price *float64 `json:"price"`
}

type CustomerInput struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// DraftInput is the body of estimate and invoice writes. Any client total is
// ignored.
type DraftInput struct {
	CustomerID     *int64          `json:"customerId"`
	CustomerInfo   *CustomerInfo   `json:"customerInfo"`
	VariationItems []VariationItem `json:"variationItems"`
	CustomItems    []CustomItem    `json:"customItems"`
}
