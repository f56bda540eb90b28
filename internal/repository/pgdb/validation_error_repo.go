package pgdb

import (
	"context"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/tr"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// ValidationErrorRepo реализует репозиторий ошибок валидации поверх PostgreSQL.
type ValidationErrorRepo struct {
	pool *pgxpool.Pool
	conv converter.ValidationErrorConverter
}

func NewValidationErrorRepo(pool *pgxpool.Pool, conv converter.ValidationErrorConverter) *ValidationErrorRepo {
	return &ValidationErrorRepo{
		pool: pool,
		conv: conv,
	}
}

const validationErrorColumns = `id, upload_id, vendor_id, row_number, vendor_product_id, error_type, error_field, error_message, raw_data, created_at`

// Create сохраняет запись об ошибке валидации строки загрузки.
func (v *ValidationErrorRepo) Create(ctx context.Context, ve *domain.ValidationError) (*domain.ValidationError, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := v.conv.ToModel(ve)
	query := `
		INSERT INTO validation_errors (
			upload_id, vendor_id, row_number, vendor_product_id,
			error_type, error_field, error_message, raw_data
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + validationErrorColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		model.UploadID, model.VendorID, model.RowNumber, model.VendorProductID,
		model.ErrorType, model.ErrorField, model.ErrorMessage, model.RawData,
	)

	var created converter.ValidationErrorModel
	err = row.Scan(
		&created.ID, &created.UploadID, &created.VendorID, &created.RowNumber,
		&created.VendorProductID, &created.ErrorType, &created.ErrorField,
		&created.ErrorMessage, &created.RawData, &created.CreatedAt,
	)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return v.conv.ToEntity(&created), nil
}

// ListByUpload возвращает ошибки валидации загрузки в порядке номеров строк.
func (v *ValidationErrorRepo) ListByUpload(ctx context.Context, uploadID string) ([]domain.ValidationError, error) {
	query := `SELECT ` + validationErrorColumns + ` FROM validation_errors WHERE upload_id = $1 ORDER BY row_number;`

	rows, err := v.pool.Query(ctx, query, uploadID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}
	defer rows.Close()

	var models []*converter.ValidationErrorModel
	for rows.Next() {
		var model converter.ValidationErrorModel
		err = rows.Scan(
			&model.ID, &model.UploadID, &model.VendorID, &model.RowNumber,
			&model.VendorProductID, &model.ErrorType, &model.ErrorField,
			&model.ErrorMessage, &model.RawData, &model.CreatedAt,
		)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), err)
		}
		models = append(models, &model)
	}
	if err = rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return v.conv.ToArrEntity(models), nil
}
