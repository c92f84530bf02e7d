package model

import "time"

// DefaultAccessory is stored when a variation or custom item has no accessory.
const DefaultAccessory = "None"

type Product struct {
	ID           int64       `json:"id"`
	Name         string      `json:"name"`
	Description  string      `json:"description"`
	BasePrice    float64     `json:"base_price"`
	ExampleImage string      `json:"example_image"`
	Variations   []Variation `json:"variations"`
}

type Variation struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"product_id"`
	Quantity  *int    `json:"quantity"`
	Size      string  `json:"size"`
	Accessory string  `json:"accessory"`
	Price     float64 `json:"price"`
}

type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Company   string    `json:"company"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Address   string    `json:"address"`
	CreatedAt time.Time `json:"created_at"`
}

// CustomerInfo is the denormalized customer snapshot kept on estimates and invoices.
type CustomerInfo struct {
	Name    string `json:"name"`
	Company string `json:"company"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type VariationItem struct {
	VariationID int64 `json:"variation_id"`
	Quantity    int   `json:"quantity"`
}

type CustomItem struct {
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	Accessory   string  `json:"accessory"`
}

// Draft is the priced content of an estimate or invoice ready to be written.
type Draft struct {
	CustomerID   int64
	CustomerInfo *CustomerInfo
	Items        []VariationItem
	CustomItems  []CustomItem
	Total        float64
}

type Estimate struct {
	ID           int64         `json:"id"`
	CustomerID   *int64        `json:"customer_id"`
	CustomerInfo *CustomerInfo `json:"customer_info"`
	CustomerName string        `json:"customer_name,omitempty"`
	Company      string        `json:"company,omitempty"`
	EstimateDate time.Time     `json:"estimate_date"`
	Total        float64       `json:"total"`

	// Subtotal is the untaxed sum at current prices, filled by listings only.
	Subtotal float64 `json:"-"`
}

type Invoice struct {
	ID           int64         `json:"id"`
	CustomerID   *int64        `json:"customer_id"`
	CustomerInfo *CustomerInfo `json:"customer_info"`
	CustomerName string        `json:"customer_name,omitempty"`
	Company      string        `json:"company,omitempty"`
	InvoiceDate  time.Time     `json:"invoice_date"`
	Total        float64       `json:"total"`
	PDFLink      *string       `json:"pdf_link"`
}

// Line item kinds in a combined item listing.
const (
	LineVariation = "variation"
	LineCustom    = "custom"
)

type LineItem struct {
	Type        string  `json:"type"`
	VariationID *int64  `json:"variation_id"`
	ProductName string  `json:"product_name"`
	Size        string  `json:"size"`
	Price       float64 `json:"price"`
	Accessory   string  `json:"accessory"`
	Quantity    int     `json:"quantity"`
}
