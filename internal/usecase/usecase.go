package usecase

import (
	"context"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
)

type VendorUC interface {
	CreateVendor(ctx context.Context, req *CreateVendorReq) (*domain.Vendor, error)
	GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error)
	ListVendors(ctx context.Context) ([]domain.Vendor, error)
	SetVendorStatus(ctx context.Context, vendorID string, status string) (*domain.Vendor, error)
	DeleteVendor(ctx context.Context, vendorID string) error
}

type IngestUC interface {
	BeginUpload(ctx context.Context, req *BeginUploadReq) (*domain.Upload, error)
	CompleteUpload(ctx context.Context, req *CompleteUploadReq) (*domain.Upload, error)
	GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error)
	AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error)
	GetProduct(ctx context.Context, productID int64) (*domain.Product, error)
	UpdateStock(ctx context.Context, productID int64, quantity int32) (*domain.Product, error)
	SetProductStatus(ctx context.Context, productID int64, status string) (*domain.Product, error)
	RecordValidationError(ctx context.Context, req *RecordErrorReq) (*domain.ValidationError, error)
	ListUploadErrors(ctx context.Context, uploadID string) ([]domain.ValidationError, error)
}

type ReportUC interface {
	VendorSummaries(ctx context.Context) ([]VendorSummary, error)
	VendorSummary(ctx context.Context, vendorID string) (*VendorSummary, error)
	RecentUploads(ctx context.Context, limit int) ([]RecentUpload, error)
	Catalog(ctx context.Context, vendorID string) ([]CatalogProduct, error)
	Categories(ctx context.Context) ([]domain.Category, error)
}
