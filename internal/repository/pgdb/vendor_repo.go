package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// VendorRepo реализует репозиторий поставщиков поверх PostgreSQL.
type VendorRepo struct {
	pool *pgxpool.Pool
	conv converter.VendorConverter
}

func NewVendorRepo(pool *pgxpool.Pool, conv converter.VendorConverter) *VendorRepo {
	return &VendorRepo{
		pool: pool,
		conv: conv,
	}
}

const vendorColumns = `vendor_id, vendor_name, email, business_name, tax_id, address, city, state, country, postal_code, status, created_at, updated_at`

// Create регистрирует поставщика. Дубликаты vendor_id и email отклоняет БД.
func (v *VendorRepo) Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := v.conv.ToModel(vendor)
	query := `
		INSERT INTO vendors (
			vendor_id, vendor_name, email, business_name, tax_id,
			address, city, state, country, postal_code, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + vendorColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		model.ID, model.Name, model.Email, model.BusinessName, model.TaxID,
		model.Address, model.City, model.State, model.Country, model.PostalCode,
		model.Status,
	)

	created, err := scanVendor(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return v.conv.ToEntity(created), nil
}

// GetByID возвращает поставщика по идентификатору.
func (v *VendorRepo) GetByID(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors WHERE vendor_id = $1;`

	row := v.pool.QueryRow(ctx, query, vendorID)

	model, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVendorNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToEntity(model), nil
}

// List возвращает всех поставщиков в порядке регистрации.
func (v *VendorRepo) List(ctx context.Context) ([]domain.Vendor, error) {
	query := `SELECT ` + vendorColumns + ` FROM vendors ORDER BY created_at;`

	rows, err := v.pool.Query(ctx, query)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.VendorModel
	for rows.Next() {
		model, err := scanVendor(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, model)
	}

	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToArrEntity(models), nil
}

// UpdateStatus меняет статус поставщика; updated_at обновляет триггер.
func (v *VendorRepo) UpdateStatus(ctx context.Context, vendorID string, status domain.VendorStatus) (*domain.Vendor, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE vendors SET status = $2
		WHERE vendor_id = $1
		RETURNING ` + vendorColumns + `;
	`

	row := tx.QueryRow(ctx, query, vendorID, string(status))

	model, err := scanVendor(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrVendorNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return v.conv.ToEntity(model), nil
}

// Delete удаляет поставщика. Загрузки удаляются каскадом; при
// наличии продуктов БД возвращает нарушение внешнего ключа (RESTRICT).
func (v *VendorRepo) Delete(ctx context.Context, vendorID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	result, err := tx.Exec(ctx, `DELETE FROM vendors WHERE vendor_id = $1;`, vendorID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolationCode {
			return e.Wrap(whereami.WhereAmI(), e.ErrRestrictViolation)
		}
		return e.Wrap(whereami.WhereAmI(), err)
	}

	if result.RowsAffected() == 0 {
		return e.Wrap(whereami.WhereAmI(), e.ErrVendorNotFound)
	}

	return nil
}

func scanVendor(row pgx.Row) (*converter.VendorModel, error) {
	var model converter.VendorModel
	err := row.Scan(
		&model.ID, &model.Name, &model.Email, &model.BusinessName, &model.TaxID,
		&model.Address, &model.City, &model.State, &model.Country, &model.PostalCode,
		&model.Status, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
