package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
)

// ReportUseCase отдаёт представления для дашбордов.
// Представления вычисляются при чтении; сводка по одному поставщику
// дополнительно кэшируется в Redis с коротким TTL.
type ReportUseCase struct {
	reportRepo   ReportRepository
	categoryRepo CategoryRepository
	cacheRepo    CacheRepository
	logger       logger.Logger
}

func NewReportUC(
	reportRepo ReportRepository,
	categoryRepo CategoryRepository,
	cacheRepo CacheRepository,
	logger logger.Logger,
) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:   reportRepo,
		categoryRepo: categoryRepo,
		cacheRepo:    cacheRepo,
		logger:       logger,
	}
}

// VendorSummaries возвращает сводку по всем поставщикам, включая тех,
// у кого нет ни продуктов, ни загрузок (нулевые счётчики).
func (r *ReportUseCase) VendorSummaries(ctx context.Context) ([]VendorSummary, error) {
	const op = "ReportUseCase.VendorSummaries"

	summaries, err := r.reportRepo.VendorSummaries(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return summaries, nil
}

// VendorSummary возвращает сводку по одному поставщику: сначала кэш,
// при промахе — представление БД с фоновым прогревом кэша.
func (r *ReportUseCase) VendorSummary(ctx context.Context, vendorID string) (*VendorSummary, error) {
	const op = "ReportUseCase.VendorSummary"

	if strings.TrimSpace(vendorID) == "" {
		return nil, e.Wrap(op, e.ErrVendorIDRequired)
	}

	cached, err := r.cacheRepo.GetSummaries(ctx, []string{vendorID})
	if err == nil {
		if summary, ok := cached[vendorID]; ok {
			return &summary, nil
		}
	}

	summary, err := r.reportRepo.VendorSummaryByID(ctx, vendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	// Фоновый прогрев кэша
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
		defer cancel()

		if err := r.cacheRepo.SetSummaries(bgCtx, []VendorSummary{*summary}); err != nil {
			r.logger.Warnf("Failed to cache vendor summary in background: %v", e.Wrap(op, err))
		}
	}()

	return summary, nil
}

// RecentUploads возвращает последние загрузки с процентом успешности.
func (r *ReportUseCase) RecentUploads(ctx context.Context, limit int) ([]RecentUpload, error) {
	const (
		op           = "ReportUseCase.RecentUploads"
		defaultLimit = 50
		maxLimit     = 500
	)

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	uploads, err := r.reportRepo.RecentUploads(ctx, limit)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return uploads, nil
}

// Catalog возвращает активные продукты, при необходимости по одному поставщику.
func (r *ReportUseCase) Catalog(ctx context.Context, vendorID string) ([]CatalogProduct, error) {
	const op = "ReportUseCase.Catalog"

	products, err := r.reportRepo.ProductCatalog(ctx, vendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return products, nil
}

// Categories возвращает активный белый список категорий для процесса валидации.
func (r *ReportUseCase) Categories(ctx context.Context) ([]domain.Category, error) {
	const op = "ReportUseCase.Categories"

	categories, err := r.categoryRepo.ListActive(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return categories, nil
}
