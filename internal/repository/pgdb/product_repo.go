package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ProductRepo реализует репозиторий продуктов поверх PostgreSQL.
// Все инварианты (уникальность SKU, цена, остаток, авто-статус)
// проверяются ограничениями и триггерами самой БД.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

const productColumns = `id, vendor_id, vendor_product_id, name, category, subcategory, description, sku, brand, price_cents, compare_at_price_cents, stock_quantity, unit, weight_grams, dimensions, image_s3_key, status, upload_id, created_at, updated_at`

// Create добавляет продукт. RETURNING отдаёт строку уже после
// срабатывания триггера derive_stock_status.
func (p *ProductRepo) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := p.conv.ToModel(product)
	query := `
		INSERT INTO products (
			vendor_id, vendor_product_id, name, category, subcategory,
			description, sku, brand, price_cents, compare_at_price_cents,
			stock_quantity, unit, weight_grams, dimensions, image_s3_key,
			status, upload_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING ` + productColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		model.VendorID, model.VendorProductID, model.Name, model.Category, model.Subcategory,
		model.Description, model.SKU, model.Brand, model.PriceCents, model.CompareAtPriceCents,
		model.StockQuantity, model.Unit, model.WeightGrams, model.Dimensions, model.ImageS3Key,
		model.Status, model.UploadID,
	)

	created, err := scanProduct(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return p.conv.ToEntity(created), nil
}

// GetByID возвращает продукт по внутреннему идентификатору.
func (p *ProductRepo) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1;`

	row := p.pool.QueryRow(ctx, query, id)

	model, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return p.conv.ToEntity(model), nil
}

// UpdateStock меняет остаток. Переход active <-> out_of_stock делает
// триггер, RETURNING возвращает уже пересчитанную строку.
func (p *ProductRepo) UpdateStock(ctx context.Context, id int64, quantity int32) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products SET stock_quantity = $2
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	row := tx.QueryRow(ctx, query, id, quantity)

	model, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return p.conv.ToEntity(model), nil
}

// SetStatus вручную выставляет статус продукта (inactive, discontinued).
// Триггер по остатку такие статусы не перетирает.
func (p *ProductRepo) SetStatus(ctx context.Context, id int64, status domain.ProductStatus) (*domain.Product, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE products SET status = $2
		WHERE id = $1
		RETURNING ` + productColumns + `;
	`

	row := tx.QueryRow(ctx, query, id, string(status))

	model, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return p.conv.ToEntity(model), nil
}

func scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.VendorID, &model.VendorProductID, &model.Name, &model.Category,
		&model.Subcategory, &model.Description, &model.SKU, &model.Brand, &model.PriceCents,
		&model.CompareAtPriceCents, &model.StockQuantity, &model.Unit, &model.WeightGrams,
		&model.Dimensions, &model.ImageS3Key, &model.Status, &model.UploadID,
		&model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
