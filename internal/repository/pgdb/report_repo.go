package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ReportRepo читает отчётные представления PostgreSQL.
// Представления только для чтения, конвертер не нужен: строки
// сканируются сразу в отчётные модели.
type ReportRepo struct {
	pool *pgxpool.Pool
}

func NewReportRepo(pool *pgxpool.Pool) *ReportRepo {
	return &ReportRepo{
		pool: pool,
	}
}

const vendorSummaryColumns = `vendor_id, vendor_name, email, status, product_count, upload_count, total_errors, last_upload_date`

// VendorSummaries возвращает агрегаты по всем поставщикам.
func (r *ReportRepo) VendorSummaries(ctx context.Context) ([]usecase.VendorSummary, error) {
	query := `SELECT ` + vendorSummaryColumns + ` FROM vendor_summary ORDER BY vendor_id;`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var summaries []usecase.VendorSummary
	for rows.Next() {
		summary, err := scanVendorSummary(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		summaries = append(summaries, *summary)
	}
	if err = rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return summaries, nil
}

// VendorSummaryByID возвращает агрегаты одного поставщика.
func (r *ReportRepo) VendorSummaryByID(ctx context.Context, vendorID string) (*usecase.VendorSummary, error) {
	query := `SELECT ` + vendorSummaryColumns + ` FROM vendor_summary WHERE vendor_id = $1;`

	summary, err := scanVendorSummary(r.pool.QueryRow(ctx, query, vendorID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVendorNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return summary, nil
}

// RecentUploads возвращает последние загрузки, не больше limit строк.
func (r *ReportRepo) RecentUploads(ctx context.Context, limit int) ([]usecase.RecentUpload, error) {
	query := `
		SELECT upload_id, vendor_id, vendor_name, file_name,
		       total_records, valid_records, error_records, status,
		       upload_date, processing_duration_seconds, success_rate
		FROM recent_uploads
		LIMIT $1;
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var uploads []usecase.RecentUpload
	for rows.Next() {
		var u usecase.RecentUpload
		err = rows.Scan(
			&u.UploadID, &u.VendorID, &u.VendorName, &u.FileName,
			&u.TotalRecords, &u.ValidRecords, &u.ErrorRecords, &u.Status,
			&u.UploadDate, &u.DurationSeconds, &u.SuccessRate,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		uploads = append(uploads, u)
	}
	if err = rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return uploads, nil
}

// ProductCatalog возвращает активные продукты каталога.
// Пустой vendorID означает каталог целиком.
func (r *ReportRepo) ProductCatalog(ctx context.Context, vendorID string) ([]usecase.CatalogProduct, error) {
	query := `
		SELECT id, vendor_id, vendor_name, vendor_product_id, name,
		       category, subcategory, sku, brand, price_cents,
		       compare_at_price_cents, stock_quantity, unit, status, created_at
		FROM product_catalog
		WHERE $1 = '' OR vendor_id = $1
		ORDER BY vendor_id, name;
	`

	rows, err := r.pool.Query(ctx, query, vendorID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var products []usecase.CatalogProduct
	for rows.Next() {
		var p usecase.CatalogProduct
		err = rows.Scan(
			&p.ID, &p.VendorID, &p.VendorName, &p.VendorProductID, &p.Name,
			&p.Category, &p.Subcategory, &p.SKU, &p.Brand, &p.PriceCents,
			&p.CompareAtPriceCents, &p.StockQuantity, &p.Unit, &p.Status, &p.CreatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		products = append(products, p)
	}
	if err = rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

func scanVendorSummary(row pgx.Row) (*usecase.VendorSummary, error) {
	var s usecase.VendorSummary
	err := row.Scan(
		&s.VendorID, &s.VendorName, &s.Email, &s.Status,
		&s.ProductCount, &s.UploadCount, &s.TotalErrors, &s.LastUploadDate,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
