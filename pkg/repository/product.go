package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/umputun/feedsync/pkg/domain"
)

// ProductRepository is the catalog store, products keyed by id and sku with metadata and tags
type ProductRepository struct {
	db *sqlx.DB
}

// productSQL represents a product for SQL operations
type productSQL struct {
	ID          int64     `db:"id"`
	SKU         string    `db:"sku"`
	Name        string    `db:"name"`
	Description string    `db:"description"`
	Status      string    `db:"status"`
	Price       float64   `db:"price"`
	StockStatus string    `db:"stock_status"`
	ManageStock bool      `db:"manage_stock"`
	Brand       string    `db:"brand"`
	ImageID     int64     `db:"image_id"`
	GalleryIDs  idsSQL    `db:"gallery_ids"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

// idsSQL is a JSON array of asset ids for SQL operations
type idsSQL []int64

// Value implements driver.Valuer for database storage
func (ids idsSQL) Value() (driver.Value, error) {
	if ids == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]int64(ids))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner for database retrieval
func (ids *idsSQL) Scan(value interface{}) error {
	if value == nil {
		*ids = idsSQL{}
		return nil
	}

	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		*ids = idsSQL{}
		return nil
	}

	return json.Unmarshal(data, (*[]int64)(ids))
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sqlx.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

// FindBySKU returns the id of the product with the given sku, found is false if there is none
func (r *ProductRepository) FindBySKU(ctx context.Context, sku string) (id int64, found bool, err error) {
	if sku == "" {
		return 0, false, nil
	}
	err = r.db.GetContext(ctx, &id, "SELECT id FROM products WHERE sku = ? LIMIT 1", sku)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("find product by sku %s: %w", sku, err)
	}
	return id, true, nil
}

// Load retrieves a product by id with its metadata and tags, ErrNotFound if missing
func (r *ProductRepository) Load(ctx context.Context, id int64) (*domain.Product, error) {
	var row productSQL
	err := r.db.GetContext(ctx, &row, "SELECT * FROM products WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("load product %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("load product %d: %w", id, err)
	}

	p := r.toDomainProduct(&row)

	var meta []struct {
		Key   string `db:"key"`
		Value string `db:"value"`
	}
	if err := r.db.SelectContext(ctx, &meta, "SELECT key, value FROM product_meta WHERE product_id = ?", id); err != nil {
		return nil, fmt.Errorf("load product %d meta: %w", id, err)
	}
	for _, m := range meta {
		p.Meta[m.Key] = m.Value
	}

	var tags []struct {
		Taxonomy string `db:"taxonomy"`
		Value    string `db:"value"`
	}
	query := "SELECT taxonomy, value FROM product_tags WHERE product_id = ? ORDER BY taxonomy, value"
	if err := r.db.SelectContext(ctx, &tags, query, id); err != nil {
		return nil, fmt.Errorf("load product %d tags: %w", id, err)
	}
	for _, t := range tags {
		p.Tags = append(p.Tags, domain.Tag{Taxonomy: t.Taxonomy, Value: t.Value})
	}

	return p, nil
}

// Create inserts a new product together with its metadata and tags and sets p.ID
func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) (int64, error) {
	row := r.toSQLProduct(p)
	if row.Status == "" {
		row.Status = domain.StatusDraft
	}
	if row.StockStatus == "" {
		row.StockStatus = domain.StockOut
	}

	err := withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		query := `
			INSERT INTO products (
				sku, name, description, status, price, stock_status,
				manage_stock, brand, image_id, gallery_ids
			) VALUES (
				:sku, :name, :description, :status, :price, :stock_status,
				:manage_stock, :brand, :image_id, :gallery_ids
			)
		`
		res, err := tx.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("get insert id: %w", err)
		}

		for k, v := range p.Meta {
			if _, err := tx.ExecContext(ctx, "INSERT INTO product_meta (product_id, key, value) VALUES (?, ?, ?)", id, k, v); err != nil {
				return err
			}
		}
		for _, t := range p.Tags {
			query := "INSERT OR IGNORE INTO product_tags (product_id, taxonomy, value) VALUES (?, ?, ?)"
			if _, err := tx.ExecContext(ctx, query, id, t.Taxonomy, t.Value); err != nil {
				return err
			}
		}

		if err := tx.Commit(); err != nil {
			return err
		}
		row.ID = id
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("create product %s: %w", p.SKU, err)
	}

	p.ID = row.ID
	return row.ID, nil
}

// Update saves product columns, metadata and tags are managed separately
func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	row := r.toSQLProduct(p)
	query := `
		UPDATE products SET
			sku = :sku, name = :name, description = :description, status = :status,
			price = :price, stock_status = :stock_status, manage_stock = :manage_stock,
			brand = :brand, image_id = :image_id, gallery_ids = :gallery_ids
		WHERE id = :id
	`
	var affected int64
	err := withRetry(ctx, func() error {
		res, err := r.db.NamedExecContext(ctx, query, row)
		if err != nil {
			return err
		}
		affected, err = res.RowsAffected()
		return err
	})
	if err != nil {
		return fmt.Errorf("update product %d: %w", p.ID, err)
	}
	if affected == 0 {
		return fmt.Errorf("update product %d: %w", p.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a product with its metadata and tags
func (r *ProductRepository) Delete(ctx context.Context, id int64) error {
	var affected int64
	err := withRetry(ctx, func() error {
		tx, err := r.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin: %w", err)
		}
		defer tx.Rollback() //nolint:errcheck // rollback after commit is a no-op

		// foreign_keys pragma is per connection, don't rely on cascade
		if _, err := tx.ExecContext(ctx, "DELETE FROM product_meta WHERE product_id = ?", id); err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM product_tags WHERE product_id = ?", id); err != nil {
			return err
		}
		res, err := tx.ExecContext(ctx, "DELETE FROM products WHERE id = ?", id)
		if err != nil {
			return err
		}
		if affected, err = res.RowsAffected(); err != nil {
			return err
		}
		return tx.Commit()
	})
	if err != nil {
		return fmt.Errorf("delete product %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("delete product %d: %w", id, ErrNotFound)
	}
	return nil
}

// SetMeta sets a metadata value on the product
func (r *ProductRepository) SetMeta(ctx context.Context, id int64, key, value string) error {
	query := `
		INSERT INTO product_meta (product_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT(product_id, key) DO UPDATE SET value = excluded.value
	`
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, id, key, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("set meta %s on product %d: %w", key, id, err)
	}
	return nil
}

// DeleteMeta removes a metadata key from the product
func (r *ProductRepository) DeleteMeta(ctx context.Context, id int64, key string) error {
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, "DELETE FROM product_meta WHERE product_id = ? AND key = ?", id, key)
		return err
	})
	if err != nil {
		return fmt.Errorf("delete meta %s on product %d: %w", key, id, err)
	}
	return nil
}

// Tag attaches a taxonomy term to the product, no-op if already attached
func (r *ProductRepository) Tag(ctx context.Context, id int64, taxonomy, value string) error {
	query := "INSERT OR IGNORE INTO product_tags (product_id, taxonomy, value) VALUES (?, ?, ?)"
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, id, taxonomy, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("tag product %d with %s: %w", id, value, err)
	}
	return nil
}

// Untag removes a taxonomy term from the product
func (r *ProductRepository) Untag(ctx context.Context, id int64, taxonomy, value string) error {
	query := "DELETE FROM product_tags WHERE product_id = ? AND taxonomy = ? AND value = ?"
	err := withRetry(ctx, func() error {
		_, err := r.db.ExecContext(ctx, query, id, taxonomy, value)
		return err
	})
	if err != nil {
		return fmt.Errorf("untag product %d from %s: %w", id, value, err)
	}
	return nil
}

// QueryByMeta returns up to limit product ids with the given metadata value, ordered by id and
// starting after afterID. Callers page by passing the last id of the previous page.
func (r *ProductRepository) QueryByMeta(ctx context.Context, key, value string, afterID int64, limit int) ([]int64, error) {
	query := `
		SELECT product_id FROM product_meta
		WHERE key = ? AND value = ? AND product_id > ?
		ORDER BY product_id
		LIMIT ?
	`
	var ids []int64
	if err := r.db.SelectContext(ctx, &ids, query, key, value, afterID, limit); err != nil {
		return nil, fmt.Errorf("query products by meta %s: %w", key, err)
	}
	return ids, nil
}

// Count returns the number of products
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM products"); err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	return count, nil
}

// toDomainProduct converts productSQL to domain.Product
func (r *ProductRepository) toDomainProduct(row *productSQL) *domain.Product {
	return &domain.Product{
		ID:          row.ID,
		SKU:         row.SKU,
		Name:        row.Name,
		Description: row.Description,
		Status:      row.Status,
		Price:       row.Price,
		StockStatus: row.StockStatus,
		ManageStock: row.ManageStock,
		Brand:       row.Brand,
		ImageID:     row.ImageID,
		GalleryIDs:  []int64(row.GalleryIDs),
		Meta:        map[string]string{},
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

// toSQLProduct converts domain.Product to productSQL
func (r *ProductRepository) toSQLProduct(p *domain.Product) *productSQL {
	return &productSQL{
		ID:          p.ID,
		SKU:         p.SKU,
		Name:        p.Name,
		Description: p.Description,
		Status:      p.Status,
		Price:       p.Price,
		StockStatus: p.StockStatus,
		ManageStock: p.ManageStock,
		Brand:       p.Brand,
		ImageID:     p.ImageID,
		GalleryIDs:  idsSQL(p.GalleryIDs),
	}
}
