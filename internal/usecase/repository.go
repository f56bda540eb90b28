package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
)

type VendorRepository interface {
	Create(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	GetByID(ctx context.Context, vendorID string) (*domain.Vendor, error)
	List(ctx context.Context) ([]domain.Vendor, error)
	UpdateStatus(ctx context.Context, vendorID string, status domain.VendorStatus) (*domain.Vendor, error)
	Delete(ctx context.Context, vendorID string) error
}

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	GetByID(ctx context.Context, id int64) (*domain.Product, error)
	// UpdateStock меняет остаток; статус пересчитывает триггер БД,
	// возвращается строка после срабатывания триггера.
	UpdateStock(ctx context.Context, id int64, quantity int32) (*domain.Product, error)
	SetStatus(ctx context.Context, id int64, status domain.ProductStatus) (*domain.Product, error)
}

type UploadRepository interface {
	Create(ctx context.Context, upload *domain.Upload) (*domain.Upload, error)
	GetByID(ctx context.Context, uploadID string) (*domain.Upload, error)
	// Complete записывает итоговые счётчики и отметку завершения;
	// processing_duration_seconds пересчитывает триггер БД.
	Complete(ctx context.Context, uploadID string, res *UploadResult, completedAt time.Time) (*domain.Upload, error)
}

type ValidationErrorRepository interface {
	Create(ctx context.Context, ve *domain.ValidationError) (*domain.ValidationError, error)
	ListByUpload(ctx context.Context, uploadID string) ([]domain.ValidationError, error)
}

type CategoryRepository interface {
	ListActive(ctx context.Context) ([]domain.Category, error)
}

// ReportRepository читает представления vendor_summary, recent_uploads, product_catalog.
type ReportRepository interface {
	VendorSummaries(ctx context.Context) ([]VendorSummary, error)
	VendorSummaryByID(ctx context.Context, vendorID string) (*VendorSummary, error)
	RecentUploads(ctx context.Context, limit int) ([]RecentUpload, error)
	ProductCatalog(ctx context.Context, vendorID string) ([]CatalogProduct, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *OutboxEvent) (*OutboxEvent, error)
	GetAndMarkAsProcessing(ctx context.Context, limit int) ([]*OutboxEvent, error)
	MarkAsProcessed(ctx context.Context, id int64) error
}

type CacheRepository interface {
	GetSummaries(ctx context.Context, vendorIDs []string) (map[string]VendorSummary, error)
	SetSummaries(ctx context.Context, summaries []VendorSummary) error
	DeleteSummaries(ctx context.Context, vendorIDs []string) error
}

type FileRepository interface {
	Upload(ctx context.Context, file *domain.BatchFile) (string, error)
	Delete(ctx context.Context, key string) error
}
