package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"demo/printshop/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

//go:generate mockgen -destination=storemock/mock_repository.go -package=storemock demo/printshop/internal/store Repository

// ErrMissingReference is returned when a write points at a customer or
// product that does not exist.
var ErrMissingReference = errors.New("referenced row does not exist")

type Repository interface {
	Ping(ctx context.Context) error

	ListProducts(ctx context.Context) ([]model.Product, error)
	CreateProduct(ctx context.Context, p model.Product) (model.Product, error)
	AddVariation(ctx context.Context, v model.Variation) (model.Variation, error)
	UpdateVariationPrice(ctx context.Context, id int64, price float64) (int64, error)
	DeleteVariation(ctx context.Context, id int64) (int64, error)
	VariationPrices(ctx context.Context, ids []int64) (map[int64]float64, error)

	SearchCustomers(ctx context.Context, q string, limit int) ([]model.Customer, error)
	UpsertCustomer(ctx context.Context, c model.Customer) (int64, error)

	CreateEstimate(ctx context.Context, d model.Draft) (int64, error)
	UpdateEstimate(ctx context.Context, id int64, d model.Draft) (bool, error)
	GetEstimate(ctx context.Context, id int64) (model.Estimate, bool, error)
	ListEstimates(ctx context.Context) ([]model.Estimate, error)
	EstimateItems(ctx context.Context, id int64) ([]model.LineItem, error)
	DeleteEstimate(ctx context.Context, id int64) (bool, error)

	CreateInvoice(ctx context.Context, d model.Draft) (int64, error)
	GetInvoice(ctx context.Context, id int64) (model.Invoice, bool, error)
	ListInvoices(ctx context.Context) ([]model.Invoice, error)
	InvoiceItems(ctx context.Context, id int64) ([]model.LineItem, error)
	DeleteInvoice(ctx context.Context, id int64) (bool, error)
	SetInvoicePDF(ctx context.Context, id int64, link string) (bool, error)
}

type Repo struct {
	Pool PgxIface
}

type PgxIface interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

// execer is satisfied by both the pool and a pgx.Tx.
type execer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

func New(pool PgxIface) *Repo { return &Repo{Pool: pool} }

var _ Repository = (*Repo)(nil)

func (r *Repo) Ping(ctx context.Context) error { return r.Pool.Ping(ctx) }

func (r *Repo) ListProducts(ctx context.Context) ([]model.Product, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT p.id, p.name, COALESCE(p.description, ''), p.base_price, COALESCE(p.example_image, ''),
		       v.id, v.quantity, v.size, v.accessory, v.price
		FROM products p
		LEFT JOIN product_variations v ON v.product_id = p.id
		ORDER BY p.id, v.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Product, 0)
	for rows.Next() {
		var (
			p         model.Product
			vid       *int64
			qty       *int
			size, acc *string
			price     *float64
		)
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.BasePrice, &p.ExampleImage,
			&vid, &qty, &size, &acc, &price); err != nil {
			return nil, err
		}
		if n := len(out); n == 0 || out[n-1].ID != p.ID {
			p.Variations = make([]model.Variation, 0)
			out = append(out, p)
		}
		if vid == nil {
			continue
		}
		last := &out[len(out)-1]
		last.Variations = append(last.Variations, model.Variation{
			ID: *vid, ProductID: p.ID, Quantity: qty, Size: deref(size), Accessory: deref(acc), Price: derefFloat(price),
		})
	}
	return out, rows.Err()
}

func (r *Repo) CreateProduct(ctx context.Context, p model.Product) (model.Product, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return model.Product{}, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO products (name, description, base_price, example_image)
		VALUES ($1, $2, $3, $4) RETURNING id`,
		p.Name, p.Description, p.BasePrice, p.ExampleImage).Scan(&p.ID)
	if err != nil {
		return model.Product{}, err
	}

	for i := range p.Variations {
		v := &p.Variations[i]
		v.ProductID = p.ID
		v.Accessory = accessoryOrDefault(v.Accessory)
		if err := tx.QueryRow(ctx, `
			INSERT INTO product_variations (product_id, quantity, size, accessory, price)
			VALUES ($1, $2, $3, $4, $5) RETURNING id`,
			v.ProductID, v.Quantity, v.Size, v.Accessory, v.Price).Scan(&v.ID); err != nil {
			return model.Product{}, err
		}
	}
	return p, tx.Commit(ctx)
}

func (r *Repo) AddVariation(ctx context.Context, v model.Variation) (model.Variation, error) {
	var out model.Variation
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO product_variations (product_id, quantity, size, accessory, price)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, product_id, quantity, size, accessory, price`,
		v.ProductID, v.Quantity, v.Size, v.Accessory, v.Price).
		Scan(&out.ID, &out.ProductID, &out.Quantity, &out.Size, &out.Accessory, &out.Price)
	if err != nil {
		return model.Variation{}, mapRefErr(err)
	}
	return out, nil
}

func (r *Repo) UpdateVariationPrice(ctx context.Context, id int64, price float64) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE product_variations SET price=$2 WHERE id=$1`, id, price)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) DeleteVariation(ctx context.Context, id int64) (int64, error) {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM product_variations WHERE id=$1`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repo) VariationPrices(ctx context.Context, ids []int64) (map[int64]float64, error) {
	out := make(map[int64]float64, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.Pool.Query(ctx, `SELECT id, price FROM product_variations WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		var (
			id    int64
			price float64
		)
		if err := rows.Scan(&id, &price); err != nil {
			return nil, err
		}
		out[id] = price
	}
	return out, rows.Err()
}

func (r *Repo) SearchCustomers(ctx context.Context, q string, limit int) ([]model.Customer, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT id, name, company, email, phone, address, created_at FROM (
		  SELECT DISTINCT ON (name, COALESCE(company, ''))
		         id, name, COALESCE(company, '') AS company, COALESCE(email, '') AS email,
		         COALESCE(phone, '') AS phone, COALESCE(address, '') AS address, created_at
		  FROM customers
		  WHERE name ILIKE $1 OR email ILIKE $1 OR phone ILIKE $1 OR company ILIKE $1
		  ORDER BY name, COALESCE(company, ''), created_at DESC, id DESC
		) latest
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, likePattern(q), limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Customer, 0, limit)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Address, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertCustomer matches on exact (name, company) and overwrites contact
// fields, or inserts a new row. An advisory lock on the identity serializes
// concurrent upserts of the same customer.
func (r *Repo) UpsertCustomer(ctx context.Context, c model.Customer) (int64, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1 || chr(31) || $2))`, c.Name, c.Company); err != nil {
		return 0, err
	}

	var id int64
	err = tx.QueryRow(ctx, `
		SELECT id FROM customers
		WHERE name=$1 AND COALESCE(company, '')=$2
		ORDER BY created_at DESC, id DESC
		LIMIT 1`, c.Name, c.Company).Scan(&id)
	switch {
	case err == nil:
		if _, err := tx.Exec(ctx, `UPDATE customers SET email=$2, phone=$3, address=$4 WHERE id=$1`,
			id, c.Email, c.Phone, c.Address); err != nil {
			return 0, err
		}
	case errors.Is(err, pgx.ErrNoRows):
		if err := tx.QueryRow(ctx, `
			INSERT INTO customers (name, company, email, phone, address)
			VALUES ($1, NULLIF($2, ''), $3, $4, $5) RETURNING id`,
			c.Name, c.Company, c.Email, c.Phone, c.Address).Scan(&id); err != nil {
			return 0, err
		}
	default:
		return 0, err
	}
	return id, tx.Commit(ctx)
}

func (r *Repo) CreateEstimate(ctx context.Context, d model.Draft) (int64, error) {
	return r.createDraft(ctx, estimateTables, d)
}

func (r *Repo) UpdateEstimate(ctx context.Context, id int64, d model.Draft) (bool, error) {
	return r.replaceDraft(ctx, estimateTables, id, d)
}

func (r *Repo) DeleteEstimate(ctx context.Context, id int64) (bool, error) {
	return r.deleteDraft(ctx, estimateTables, id)
}

func (r *Repo) EstimateItems(ctx context.Context, id int64) ([]model.LineItem, error) {
	return r.lineItems(ctx, estimateTables, id)
}

func (r *Repo) GetEstimate(ctx context.Context, id int64) (model.Estimate, bool, error) {
	var e model.Estimate
	err := r.Pool.QueryRow(ctx, `
		SELECT e.id, e.customer_id, e.customer_info, e.estimate_date, e.total,
		       COALESCE(c.name, ''), COALESCE(c.company, '')
		FROM estimates e
		LEFT JOIN customers c ON c.id = e.customer_id
		WHERE e.id=$1`, id).
		Scan(&e.ID, &e.CustomerID, &e.CustomerInfo, &e.EstimateDate, &e.Total, &e.CustomerName, &e.Company)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Estimate{}, false, nil
		}
		return model.Estimate{}, false, err
	}
	return e, true, nil
}

// ListEstimates returns estimates newest first with Subtotal computed from
// current variation prices; Total holds the persisted value.
func (r *Repo) ListEstimates(ctx context.Context) ([]model.Estimate, error) {
	rows, err := r.Pool.Query(ctx, `
		SELECT e.id, e.customer_id, e.customer_info, e.estimate_date, e.total,
		       COALESCE(c.name, ''), COALESCE(c.company, ''),
		       COALESCE((SELECT SUM(v.price * i.quantity)
		                 FROM estimate_items i
		                 JOIN product_variations v ON v.id = i.product_variation_id
		                 WHERE i.estimate_id = e.id), 0)
		     + COALESCE((SELECT SUM(ci.price * ci.quantity)
		                 FROM custom_estimate_items ci
		                 WHERE ci.estimate_id = e.id), 0) AS subtotal
		FROM estimates e
		LEFT JOIN customers c ON c.id = e.customer_id
		ORDER BY e.estimate_date DESC, e.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Estimate, 0)
	for rows.Next() {
		var e model.Estimate
		if err := rows.Scan(&e.ID, &e.CustomerID, &e.CustomerInfo, &e.EstimateDate, &e.Total,
			&e.CustomerName, &e.Company, &e.Subtotal); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (r *Repo) CreateInvoice(ctx context.Context, d model.Draft) (int64, error) {
	return r.createDraft(ctx, invoiceTables, d)
}

func (r *Repo) DeleteInvoice(ctx context.Context, id int64) (bool, error) {
	return r.deleteDraft(ctx, invoiceTables, id)
}

func (r *Repo) InvoiceItems(ctx context.Context, id int64) ([]model.LineItem, error) {
	return r.lineItems(ctx, invoiceTables, id)
}

const invoiceColumns = `
		SELECT inv.id, inv.customer_id, inv.customer_info, inv.invoice_date, inv.total, inv.pdf_link,
		       COALESCE(c.name, ''), COALESCE(c.company, '')
		FROM invoices inv
		LEFT JOIN customers c ON c.id = inv.customer_id`

func scanInvoice(row pgx.Row) (model.Invoice, error) {
	var inv model.Invoice
	err := row.Scan(&inv.ID, &inv.CustomerID, &inv.CustomerInfo, &inv.InvoiceDate, &inv.Total, &inv.PDFLink,
		&inv.CustomerName, &inv.Company)
	return inv, err
}

func (r *Repo) GetInvoice(ctx context.Context, id int64) (model.Invoice, bool, error) {
	inv, err := scanInvoice(r.Pool.QueryRow(ctx, invoiceColumns+` WHERE inv.id=$1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.Invoice{}, false, nil
		}
		return model.Invoice{}, false, err
	}
	return inv, true, nil
}

func (r *Repo) ListInvoices(ctx context.Context) ([]model.Invoice, error) {
	rows, err := r.Pool.Query(ctx, invoiceColumns+` ORDER BY inv.invoice_date DESC, inv.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Invoice, 0)
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, inv)
	}
	return out, rows.Err()
}

func (r *Repo) SetInvoicePDF(ctx context.Context, id int64, link string) (bool, error) {
	tag, err := r.Pool.Exec(ctx, `UPDATE invoices SET pdf_link=$2 WHERE id=$1`, id, link)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func accessoryOrDefault(a string) string {
	if a = strings.TrimSpace(a); a == "" {
		return model.DefaultAccessory
	}
	return a
}

func likePattern(q string) string {
	q = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
	return "%" + q + "%"
}

func mapRefErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23503" {
		return fmt.Errorf("%w: %s", ErrMissingReference, pgErr.ConstraintName)
	}
	return err
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
