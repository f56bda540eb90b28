package usecase

import (
	"errors"
	"testing"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
)

func errorFile(size int) *BatchFilePayload {
	return NewBatchFilePayload(make([]byte, size), "text/csv", int64(size), "errors.csv")
}

func TestValidateCompletion(t *testing.T) {
	uc := &IngestUseCase{}

	clean := &CompleteUploadReq{UploadID: "UPL-1", TotalRecords: 10, ValidRecords: 10}
	if err := uc.validateCompletion(clean); err != nil {
		t.Fatalf("validateCompletion(clean) error = %v", err)
	}

	withErrors := &CompleteUploadReq{
		UploadID:     "UPL-1",
		TotalRecords: 10,
		ValidRecords: 7,
		ErrorRecords: 3,
		ErrorFile:    errorFile(42),
	}
	if err := uc.validateCompletion(withErrors); err != nil {
		t.Fatalf("validateCompletion(with errors) error = %v", err)
	}

	noID := &CompleteUploadReq{TotalRecords: 1, ValidRecords: 1}
	if err := uc.validateCompletion(noID); !errors.Is(err, e.ErrUploadNotFound) {
		t.Fatalf("validateCompletion(no id) error = %v, want ErrUploadNotFound", err)
	}

	negative := &CompleteUploadReq{UploadID: "UPL-1", TotalRecords: -1, ValidRecords: -1}
	if err := uc.validateCompletion(negative); !errors.Is(err, e.ErrRecordCountMismatch) {
		t.Fatalf("validateCompletion(negative) error = %v, want ErrRecordCountMismatch", err)
	}

	mismatch := &CompleteUploadReq{UploadID: "UPL-1", TotalRecords: 10, ValidRecords: 5, ErrorRecords: 3}
	if err := uc.validateCompletion(mismatch); !errors.Is(err, e.ErrRecordCountMismatch) {
		t.Fatalf("validateCompletion(mismatch) error = %v, want ErrRecordCountMismatch", err)
	}
}

func TestValidateCompletionErrorFileInvariant(t *testing.T) {
	uc := &IngestUseCase{}

	// Есть ошибки, но нет файла отчёта
	noFile := &CompleteUploadReq{UploadID: "UPL-1", TotalRecords: 10, ValidRecords: 7, ErrorRecords: 3}
	if err := uc.validateCompletion(noFile); !errors.Is(err, e.ErrErrorFileMismatch) {
		t.Fatalf("validateCompletion(errors without file) error = %v, want ErrErrorFileMismatch", err)
	}

	emptyFile := &CompleteUploadReq{
		UploadID:     "UPL-1",
		TotalRecords: 10,
		ValidRecords: 7,
		ErrorRecords: 3,
		ErrorFile:    errorFile(0),
	}
	if err := uc.validateCompletion(emptyFile); !errors.Is(err, e.ErrErrorFileMismatch) {
		t.Fatalf("validateCompletion(empty error file) error = %v, want ErrErrorFileMismatch", err)
	}

	// Файл отчёта без единой ошибки
	orphanFile := &CompleteUploadReq{
		UploadID:     "UPL-1",
		TotalRecords: 10,
		ValidRecords: 10,
		ErrorFile:    errorFile(42),
	}
	if err := uc.validateCompletion(orphanFile); !errors.Is(err, e.ErrErrorFileMismatch) {
		t.Fatalf("validateCompletion(file without errors) error = %v, want ErrErrorFileMismatch", err)
	}
}

func TestDeriveUploadStatus(t *testing.T) {
	completed := &CompleteUploadReq{TotalRecords: 10, ValidRecords: 10}
	if got := deriveUploadStatus(completed); got != domain.UploadCompleted {
		t.Fatalf("deriveUploadStatus(no errors) = %q, want %q", got, domain.UploadCompleted)
	}

	// Пустой пакет тоже считается завершённым
	empty := &CompleteUploadReq{}
	if got := deriveUploadStatus(empty); got != domain.UploadCompleted {
		t.Fatalf("deriveUploadStatus(empty batch) = %q, want %q", got, domain.UploadCompleted)
	}

	failed := &CompleteUploadReq{TotalRecords: 10, ErrorRecords: 10}
	if got := deriveUploadStatus(failed); got != domain.UploadFailed {
		t.Fatalf("deriveUploadStatus(all errors) = %q, want %q", got, domain.UploadFailed)
	}

	partial := &CompleteUploadReq{TotalRecords: 10, ValidRecords: 7, ErrorRecords: 3}
	if got := deriveUploadStatus(partial); got != domain.UploadPartial {
		t.Fatalf("deriveUploadStatus(mixed) = %q, want %q", got, domain.UploadPartial)
	}
}

func validProductReq() *AddProductReq {
	return &AddProductReq{
		VendorID:        "VEND001",
		VendorProductID: "P-100",
		Name:            "Organic Apples",
		Category:        "Produce",
		SKU:             "VEND001-P-100",
		PriceCents:      59999,
		StockQuantity:   25,
	}
}

func TestValidateProduct(t *testing.T) {
	uc := &IngestUseCase{}

	if err := uc.validateProduct(validProductReq()); err != nil {
		t.Fatalf("validateProduct(valid) error = %v", err)
	}

	cases := []struct {
		name   string
		mutate func(*AddProductReq)
		want   error
	}{
		{"no vendor", func(r *AddProductReq) { r.VendorID = "  " }, e.ErrVendorIDRequired},
		{"no name", func(r *AddProductReq) { r.Name = "" }, e.ErrProductNameRequired},
		{"no sku", func(r *AddProductReq) { r.SKU = "" }, e.ErrSKURequired},
		{"zero price", func(r *AddProductReq) { r.PriceCents = 0 }, e.ErrPriceMustBePositive},
		{"negative price", func(r *AddProductReq) { r.PriceCents = -100 }, e.ErrPriceMustBePositive},
		{"compare-at below price", func(r *AddProductReq) {
			below := int64(100)
			r.CompareAtPriceCents = &below
		}, e.ErrCompareAtBelowPrice},
		{"negative stock", func(r *AddProductReq) { r.StockQuantity = -1 }, e.ErrNegativeStock},
	}

	for _, tc := range cases {
		req := validProductReq()
		tc.mutate(req)
		if err := uc.validateProduct(req); !errors.Is(err, tc.want) {
			t.Fatalf("validateProduct(%s) error = %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestValidateProductCompareAtEqualPrice(t *testing.T) {
	uc := &IngestUseCase{}

	req := validProductReq()
	equal := req.PriceCents
	req.CompareAtPriceCents = &equal
	if err := uc.validateProduct(req); err != nil {
		t.Fatalf("validateProduct(compare-at equal) error = %v", err)
	}
}

func TestNewProductFromReq(t *testing.T) {
	compareAt := int64(79999)
	weight := int64(500)
	uploadID := "UPL-1"

	req := validProductReq()
	req.Subcategory = "Fruit"
	req.Brand = "FreshCo"
	req.CompareAtPriceCents = &compareAt
	req.Unit = "kg"
	req.WeightGrams = &weight
	req.UploadID = &uploadID

	product := NewProductFromReq(req)

	if product.VendorID != req.VendorID || product.SKU != req.SKU {
		t.Fatalf("NewProductFromReq identity = (%q, %q), want (%q, %q)",
			product.VendorID, product.SKU, req.VendorID, req.SKU)
	}
	if product.PriceCents != req.PriceCents {
		t.Fatalf("NewProductFromReq price = %d, want %d", product.PriceCents, req.PriceCents)
	}
	if product.CompareAtPriceCents == nil || *product.CompareAtPriceCents != compareAt {
		t.Fatalf("NewProductFromReq compare-at = %v, want %d", product.CompareAtPriceCents, compareAt)
	}
	if product.Subcategory != "Fruit" || product.Brand != "FreshCo" || product.Unit != "kg" {
		t.Fatalf("NewProductFromReq optional fields = (%q, %q, %q)",
			product.Subcategory, product.Brand, product.Unit)
	}
	if product.UploadID == nil || *product.UploadID != uploadID {
		t.Fatalf("NewProductFromReq upload id = %v, want %q", product.UploadID, uploadID)
	}
	if product.Status != domain.ProductActive {
		t.Fatalf("NewProductFromReq status = %q, want %q", product.Status, domain.ProductActive)
	}
}
