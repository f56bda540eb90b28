package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UploadRepo реализует репозиторий пакетных загрузок поверх PostgreSQL.
type UploadRepo struct {
	pool *pgxpool.Pool
	conv converter.UploadConverter
}

func NewUploadRepo(pool *pgxpool.Pool, conv converter.UploadConverter) *UploadRepo {
	return &UploadRepo{
		pool: pool,
		conv: conv,
	}
}

const uploadColumns = `upload_id, vendor_id, file_name, s3_key, total_records, valid_records, error_records, status, error_file_s3_key, upload_date, processing_started_at, processing_completed_at, processing_duration_seconds, metadata`

// Create создаёт запись загрузки со статусом processing.
func (u *UploadRepo) Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	model := u.conv.ToModel(upload)
	query := `
		INSERT INTO upload_history (
			upload_id, vendor_id, file_name, s3_key, status,
			processing_started_at, metadata
		) VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + uploadColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		model.ID, model.VendorID, model.FileName, model.S3Key, model.Status,
		model.ProcessingStartedAt, model.Metadata,
	)

	created, err := scanUpload(row)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return u.conv.ToEntity(created), nil
}

// GetByID возвращает загрузку по идентификатору.
func (u *UploadRepo) GetByID(ctx context.Context, uploadID string) (*domain.Upload, error) {
	query := `SELECT ` + uploadColumns + ` FROM upload_history WHERE upload_id = $1;`

	row := u.pool.QueryRow(ctx, query, uploadID)

	model, err := scanUpload(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUploadNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

// Complete записывает итоговые счётчики, статус и отметку завершения.
// Инварианты счётчиков и файла ошибок проверяют CHECK-ограничения,
// processing_duration_seconds пересчитывает триггер.
func (u *UploadRepo) Complete(ctx context.Context, uploadID string, res *usecase.UploadResult, completedAt time.Time) (*domain.Upload, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		UPDATE upload_history SET
			total_records = $2,
			valid_records = $3,
			error_records = $4,
			status = $5,
			error_file_s3_key = $6,
			processing_completed_at = $7,
			metadata = COALESCE($8, metadata)
		WHERE upload_id = $1
		RETURNING ` + uploadColumns + `;
	`

	row := tx.QueryRow(ctx, query,
		uploadID, res.TotalRecords, res.ValidRecords, res.ErrorRecords,
		res.Status, res.ErrorFileS3Key, completedAt, converter.MapToJSON(res.Metadata),
	)

	model, err := scanUpload(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrUploadNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), constraintErr(err))
	}

	return u.conv.ToEntity(model), nil
}

func scanUpload(row pgx.Row) (*converter.UploadModel, error) {
	var model converter.UploadModel
	err := row.Scan(
		&model.ID, &model.VendorID, &model.FileName, &model.S3Key,
		&model.TotalRecords, &model.ValidRecords, &model.ErrorRecords, &model.Status,
		&model.ErrorFileS3Key, &model.UploadDate, &model.ProcessingStartedAt,
		&model.ProcessingCompletedAt, &model.ProcessingDurationSeconds, &model.Metadata,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
