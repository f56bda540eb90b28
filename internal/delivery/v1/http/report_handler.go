package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ReportHandler struct {
	reportUsecase usecase.ReportUC
	logger        logger.Logger
}

func NewReportHandler(reportUsecase usecase.ReportUC, logger logger.Logger) *ReportHandler {
	return &ReportHandler{reportUsecase: reportUsecase, logger: logger}
}

type VendorSummaryResponse struct {
	VendorID       string     `json:"vendor_id"`
	VendorName     string     `json:"vendor_name"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	ProductCount   int64      `json:"product_count"`
	UploadCount    int64      `json:"upload_count"`
	TotalErrors    int64      `json:"total_errors"`
	LastUploadDate *time.Time `json:"last_upload_date,omitempty"`
}

type RecentUploadResponse struct {
	UploadID        string    `json:"upload_id"`
	VendorID        string    `json:"vendor_id"`
	VendorName      string    `json:"vendor_name"`
	FileName        string    `json:"file_name"`
	TotalRecords    int32     `json:"total_records"`
	ValidRecords    int32     `json:"valid_records"`
	ErrorRecords    int32     `json:"error_records"`
	Status          string    `json:"status"`
	UploadDate      time.Time `json:"upload_date"`
	DurationSeconds *int32    `json:"processing_duration_seconds,omitempty"`
	SuccessRate     *float64  `json:"success_rate"`
}

type CatalogProductResponse struct {
	ID              int64     `json:"id"`
	VendorID        string    `json:"vendor_id"`
	VendorName      string    `json:"vendor_name"`
	VendorProductID string    `json:"vendor_product_id"`
	Name            string    `json:"name"`
	Category        string    `json:"category"`
	Subcategory     *string   `json:"subcategory,omitempty"`
	SKU             string    `json:"sku"`
	Brand           *string   `json:"brand,omitempty"`
	PriceCents      int64     `json:"price_cents"`
	CompareAtCents  *int64    `json:"compare_at_price_cents,omitempty"`
	StockQuantity   int32     `json:"stock_quantity"`
	Unit            *string   `json:"unit,omitempty"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"created_at"`
}

type CategoryResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	ParentCategory *string `json:"parent_category,omitempty"`
	Description    string  `json:"description,omitempty"`
}

func newVendorSummaryResponse(s *usecase.VendorSummary) *VendorSummaryResponse {
	return &VendorSummaryResponse{
		VendorID:       s.VendorID,
		VendorName:     s.VendorName,
		Email:          s.Email,
		Status:         s.Status,
		ProductCount:   s.ProductCount,
		UploadCount:    s.UploadCount,
		TotalErrors:    s.TotalErrors,
		LastUploadDate: s.LastUploadDate,
	}
}

// vendorSummaries
//
//	@Summary	Сводка по всем поставщикам
//	@Tags		reports
//	@Produce	json
//	@Success	200	{array}	VendorSummaryResponse
//	@Router		/reports/vendor-summary [get]
func (h *ReportHandler) vendorSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := h.reportUsecase.VendorSummaries(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]VendorSummaryResponse, 0, len(summaries))
	for i := range summaries {
		resp = append(resp, *newVendorSummaryResponse(&summaries[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// vendorSummary
//
//	@Summary	Сводка по одному поставщику
//	@Tags		reports
//	@Produce	json
//	@Param		vendorID	path		string	true	"ID поставщика"
//	@Success	200			{object}	VendorSummaryResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/reports/vendor-summary/{vendorID} [get]
func (h *ReportHandler) vendorSummary(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")

	summary, err := h.reportUsecase.VendorSummary(r.Context(), vendorID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVendorSummaryResponse(summary))
}

// recentUploads
//
//	@Summary	Последние загрузки
//	@Tags		reports
//	@Produce	json
//	@Param		limit	query	integer	false	"Максимум строк (по умолчанию 50, максимум 500)"
//	@Success	200		{array}	RecentUploadResponse
//	@Router		/reports/recent-uploads [get]
func (h *ReportHandler) recentUploads(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if s := r.URL.Query().Get("limit"); s != "" {
		v, err := strconv.Atoi(s)
		if err == nil {
			limit = v
		}
	}

	uploads, err := h.reportUsecase.RecentUploads(r.Context(), limit)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]RecentUploadResponse, 0, len(uploads))
	for _, u := range uploads {
		resp = append(resp, RecentUploadResponse{
			UploadID:        u.UploadID,
			VendorID:        u.VendorID,
			VendorName:      u.VendorName,
			FileName:        u.FileName,
			TotalRecords:    u.TotalRecords,
			ValidRecords:    u.ValidRecords,
			ErrorRecords:    u.ErrorRecords,
			Status:          u.Status,
			UploadDate:      u.UploadDate,
			DurationSeconds: u.DurationSeconds,
			SuccessRate:     u.SuccessRate,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// catalog
//
//	@Summary	Каталог активных продуктов
//	@Tags		reports
//	@Produce	json
//	@Param		vendor_id	query	string	false	"Фильтр по поставщику"
//	@Success	200			{array}	CatalogProductResponse
//	@Router		/reports/catalog [get]
func (h *ReportHandler) catalog(w http.ResponseWriter, r *http.Request) {
	vendorID := r.URL.Query().Get("vendor_id")

	products, err := h.reportUsecase.Catalog(r.Context(), vendorID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]CatalogProductResponse, 0, len(products))
	for _, p := range products {
		resp = append(resp, CatalogProductResponse{
			ID:              p.ID,
			VendorID:        p.VendorID,
			VendorName:      p.VendorName,
			VendorProductID: p.VendorProductID,
			Name:            p.Name,
			Category:        p.Category,
			Subcategory:     p.Subcategory,
			SKU:             p.SKU,
			Brand:           p.Brand,
			PriceCents:      p.PriceCents,
			CompareAtCents:  p.CompareAtPriceCents,
			StockQuantity:   p.StockQuantity,
			Unit:            p.Unit,
			Status:          p.Status,
			CreatedAt:       p.CreatedAt,
		})
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// categories
//
//	@Summary	Активные категории справочника
//	@Tags		categories
//	@Produce	json
//	@Success	200	{array}	CategoryResponse
//	@Router		/categories [get]
func (h *ReportHandler) categories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.reportUsecase.Categories(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, newCategoryResponse(c))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

func newCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:             c.ID,
		Name:           c.Name,
		ParentCategory: c.ParentCategory,
		Description:    c.Description,
	}
}
