package store

import (
	"context"
	"fmt"

	"demo/printshop/internal/model"
)

// draftTables names the header and child tables of one document family.
// Estimates and invoices share a layout and differ only in names.
type draftTables struct {
	header string
	items  string
	custom string
	fk     string
}

var (
	estimateTables = draftTables{header: "estimates", items: "estimate_items", custom: "custom_estimate_items", fk: "estimate_id"}
	invoiceTables  = draftTables{header: "invoices", items: "invoice_items", custom: "custom_invoice_items", fk: "invoice_id"}
)

func (r *Repo) createDraft(ctx context.Context, t draftTables, d model.Draft) (int64, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var id int64
	err = tx.QueryRow(ctx, fmt.Sprintf(`
		INSERT INTO %s (customer_id, customer_info, total)
		VALUES ($1, $2, $3) RETURNING id`, t.header),
		d.CustomerID, d.CustomerInfo, d.Total).Scan(&id)
	if err != nil {
		return 0, mapRefErr(err)
	}

	if err := insertItems(ctx, tx, t, id, d); err != nil {
		return 0, err
	}
	return id, tx.Commit(ctx)
}

// replaceDraft overwrites the header and swaps the full item set. It reports
// false, writing nothing, when the header row does not exist.
func (r *Repo) replaceDraft(ctx context.Context, t draftTables, id int64, d model.Draft) (bool, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, fmt.Sprintf(`
		UPDATE %s SET customer_id=$2, customer_info=$3, total=$4 WHERE id=$1`, t.header),
		id, d.CustomerID, d.CustomerInfo, d.Total)
	if err != nil {
		return false, mapRefErr(err)
	}
	if tag.RowsAffected() == 0 {
		return false, nil
	}

	if err := deleteItems(ctx, tx, t, id); err != nil {
		return false, err
	}
	if err := insertItems(ctx, tx, t, id, d); err != nil {
		return false, err
	}
	return true, tx.Commit(ctx)
}

// deleteDraft removes both child kinds before the header.
func (r *Repo) deleteDraft(ctx context.Context, t draftTables, id int64) (bool, error) {
	tx, err := r.Pool.Begin(ctx)
	if err != nil {
		return false, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if err := deleteItems(ctx, tx, t, id); err != nil {
		return false, err
	}
	tag, err := tx.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id=$1`, t.header), id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, tx.Commit(ctx)
}

func insertItems(ctx context.Context, db execer, t draftTables, id int64, d model.Draft) error {
	for _, it := range d.Items {
		_, err := db.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (%s, product_variation_id, quantity) VALUES ($1, $2, $3)`, t.items, t.fk),
			id, it.VariationID, it.Quantity)
		if err != nil {
			return err
		}
	}
	for _, it := range d.CustomItems {
		_, err := db.Exec(ctx, fmt.Sprintf(`
			INSERT INTO %s (%s, product_name, size, price, quantity, accessory)
			VALUES ($1, $2, $3, $4, $5, $6)`, t.custom, t.fk),
			id, it.ProductName, it.Size, it.Price, it.Quantity, it.Accessory)
		if err != nil {
			return err
		}
	}
	return nil
}

func deleteItems(ctx context.Context, db execer, t draftTables, id int64) error {
	if _, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s=$1`, t.items, t.fk), id); err != nil {
		return err
	}
	_, err := db.Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s=$1`, t.custom, t.fk), id)
	return err
}

// lineItems lists variation items, joined with the catalog, followed by
// custom items. Items whose variation was deleted keep their quantity with
// blank catalog fields.
func (r *Repo) lineItems(ctx context.Context, t draftTables, id int64) ([]model.LineItem, error) {
	out := make([]model.LineItem, 0)

	rows, err := r.Pool.Query(ctx, fmt.Sprintf(`
		SELECT i.product_variation_id, COALESCE(p.name, ''), COALESCE(v.size, ''),
		       COALESCE(v.price, 0), COALESCE(v.accessory, 'None'), i.quantity
		FROM %s i
		LEFT JOIN product_variations v ON v.id = i.product_variation_id
		LEFT JOIN products p ON p.id = v.product_id
		WHERE i.%s=$1
		ORDER BY i.id`, t.items, t.fk), id)
	if err != nil {
		return nil, err
	}
	for rows.Next() {
		var (
			li  = model.LineItem{Type: model.LineVariation}
			vid int64
		)
		if err := rows.Scan(&vid, &li.ProductName, &li.Size, &li.Price, &li.Accessory, &li.Quantity); err != nil {
			rows.Close()
			return nil, err
		}
		li.VariationID = &vid
		out = append(out, li)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	rows, err = r.Pool.Query(ctx, fmt.Sprintf(`
		SELECT product_name, COALESCE(size, ''), price, accessory, quantity
		FROM %s WHERE %s=$1 ORDER BY id`, t.custom, t.fk), id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	for rows.Next() {
		li := model.LineItem{Type: model.LineCustom}
		if err := rows.Scan(&li.ProductName, &li.Size, &li.Price, &li.Accessory, &li.Quantity); err != nil {
			return nil, err
		}
		out = append(out, li)
	}
	return out, rows.Err()
}
