package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type fakeReportRepo struct {
	summaries    []VendorSummary
	byID         map[string]*VendorSummary
	byIDCalls    int
	uploads      []RecentUpload
	uploadsLimit int
	catalog      []CatalogProduct
}

func (f *fakeReportRepo) VendorSummaries(ctx context.Context) ([]VendorSummary, error) {
	return f.summaries, nil
}

func (f *fakeReportRepo) VendorSummaryByID(ctx context.Context, vendorID string) (*VendorSummary, error) {
	f.byIDCalls++
	summary, ok := f.byID[vendorID]
	if !ok {
		return nil, e.ErrVendorNotFound
	}
	return summary, nil
}

func (f *fakeReportRepo) RecentUploads(ctx context.Context, limit int) ([]RecentUpload, error) {
	f.uploadsLimit = limit
	return f.uploads, nil
}

func (f *fakeReportRepo) ProductCatalog(ctx context.Context, vendorID string) ([]CatalogProduct, error) {
	return f.catalog, nil
}

type fakeCategoryRepo struct {
	categories []domain.Category
}

func (f *fakeCategoryRepo) ListActive(ctx context.Context) ([]domain.Category, error) {
	return f.categories, nil
}

type fakeCacheRepo struct {
	mu      sync.Mutex
	data    map[string]VendorSummary
	setDone chan struct{}
}

func newFakeCacheRepo() *fakeCacheRepo {
	return &fakeCacheRepo{
		data:    make(map[string]VendorSummary),
		setDone: make(chan struct{}, 8),
	}
}

func (f *fakeCacheRepo) GetSummaries(ctx context.Context, vendorIDs []string) (map[string]VendorSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	found := make(map[string]VendorSummary)
	for _, id := range vendorIDs {
		if summary, ok := f.data[id]; ok {
			found[id] = summary
		}
	}
	return found, nil
}

func (f *fakeCacheRepo) SetSummaries(ctx context.Context, summaries []VendorSummary) error {
	f.mu.Lock()
	for _, summary := range summaries {
		f.data[summary.VendorID] = summary
	}
	f.mu.Unlock()

	f.setDone <- struct{}{}
	return nil
}

func (f *fakeCacheRepo) DeleteSummaries(ctx context.Context, vendorIDs []string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, id := range vendorIDs {
		delete(f.data, id)
	}
	return nil
}

func setupReportUC(repo *fakeReportRepo, cache *fakeCacheRepo) *ReportUseCase {
	return NewReportUC(repo, &fakeCategoryRepo{}, cache, nopLogger{})
}

func TestVendorSummaryRequiresID(t *testing.T) {
	uc := setupReportUC(&fakeReportRepo{}, newFakeCacheRepo())

	if _, err := uc.VendorSummary(context.Background(), "   "); !errors.Is(err, e.ErrVendorIDRequired) {
		t.Fatalf("VendorSummary(blank id) error = %v, want ErrVendorIDRequired", err)
	}
}

func TestVendorSummaryCacheHitSkipsRepo(t *testing.T) {
	cache := newFakeCacheRepo()
	cache.data["VEND001"] = VendorSummary{VendorID: "VEND001", VendorName: "Fresh Farms Ltd", ProductCount: 3}

	repo := &fakeReportRepo{byID: map[string]*VendorSummary{}}
	uc := setupReportUC(repo, cache)

	summary, err := uc.VendorSummary(context.Background(), "VEND001")
	if err != nil {
		t.Fatalf("VendorSummary(cached) error = %v", err)
	}
	if summary.ProductCount != 3 {
		t.Fatalf("VendorSummary(cached) product count = %d, want 3", summary.ProductCount)
	}
	if repo.byIDCalls != 0 {
		t.Fatalf("VendorSummary(cached) hit the repository %d times", repo.byIDCalls)
	}
}

func TestVendorSummaryMissWarmsCache(t *testing.T) {
	cache := newFakeCacheRepo()
	repo := &fakeReportRepo{byID: map[string]*VendorSummary{
		"VEND001": {VendorID: "VEND001", VendorName: "Fresh Farms Ltd", UploadCount: 5},
	}}
	uc := setupReportUC(repo, cache)

	summary, err := uc.VendorSummary(context.Background(), "VEND001")
	if err != nil {
		t.Fatalf("VendorSummary(miss) error = %v", err)
	}
	if summary.UploadCount != 5 {
		t.Fatalf("VendorSummary(miss) upload count = %d, want 5", summary.UploadCount)
	}
	if repo.byIDCalls != 1 {
		t.Fatalf("VendorSummary(miss) repo calls = %d, want 1", repo.byIDCalls)
	}

	// Прогрев выполняется в фоне
	select {
	case <-cache.setDone:
	case <-time.After(time.Second):
		t.Fatalf("VendorSummary(miss) did not warm the cache")
	}

	cached, _ := cache.GetSummaries(context.Background(), []string{"VEND001"})
	if cached["VEND001"].UploadCount != 5 {
		t.Fatalf("warmed summary = %+v", cached["VEND001"])
	}
}

func TestVendorSummaryUnknownVendor(t *testing.T) {
	uc := setupReportUC(&fakeReportRepo{byID: map[string]*VendorSummary{}}, newFakeCacheRepo())

	if _, err := uc.VendorSummary(context.Background(), "VEND404"); !errors.Is(err, e.ErrVendorNotFound) {
		t.Fatalf("VendorSummary(unknown) error = %v, want ErrVendorNotFound", err)
	}
}

func TestRecentUploadsLimitBounds(t *testing.T) {
	repo := &fakeReportRepo{}
	uc := setupReportUC(repo, newFakeCacheRepo())
	ctx := context.Background()

	if _, err := uc.RecentUploads(ctx, 0); err != nil {
		t.Fatalf("RecentUploads(0) error = %v", err)
	}
	if repo.uploadsLimit != 50 {
		t.Fatalf("RecentUploads(0) limit = %d, want 50", repo.uploadsLimit)
	}

	if _, err := uc.RecentUploads(ctx, 1000); err != nil {
		t.Fatalf("RecentUploads(1000) error = %v", err)
	}
	if repo.uploadsLimit != 500 {
		t.Fatalf("RecentUploads(1000) limit = %d, want 500", repo.uploadsLimit)
	}

	if _, err := uc.RecentUploads(ctx, 10); err != nil {
		t.Fatalf("RecentUploads(10) error = %v", err)
	}
	if repo.uploadsLimit != 10 {
		t.Fatalf("RecentUploads(10) limit = %d, want 10", repo.uploadsLimit)
	}
}

func TestCategoriesPassthrough(t *testing.T) {
	categoryRepo := &fakeCategoryRepo{categories: []domain.Category{
		{ID: 1, Name: "Produce", IsActive: true},
		{ID: 2, Name: "Dairy", IsActive: true},
	}}
	uc := NewReportUC(&fakeReportRepo{}, categoryRepo, newFakeCacheRepo(), nopLogger{})

	categories, err := uc.Categories(context.Background())
	if err != nil {
		t.Fatalf("Categories() error = %v", err)
	}
	if len(categories) != 2 || categories[0].Name != "Produce" {
		t.Fatalf("Categories() = %+v", categories)
	}
}
