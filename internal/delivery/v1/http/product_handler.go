package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type ProductHandler struct {
	ingestUsecase usecase.IngestUC
	logger        logger.Logger
}

func NewProductHandler(ingestUsecase usecase.IngestUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{ingestUsecase: ingestUsecase, logger: logger}
}

// AddProductRequest — провалидированная строка каталога.
// Цены передаются строками с точностью до 2 знаков ("599.99").
type AddProductRequest struct {
	VendorID        string  `json:"vendor_id"`
	VendorProductID string  `json:"vendor_product_id"`
	Name            string  `json:"name"`
	Category        string  `json:"category"`
	Subcategory     string  `json:"subcategory,omitempty"`
	Description     string  `json:"description,omitempty"`
	SKU             string  `json:"sku"`
	Brand           string  `json:"brand,omitempty"`
	Price           string  `json:"price"`
	CompareAtPrice  string  `json:"compare_at_price,omitempty"`
	StockQuantity   int32   `json:"stock_quantity"`
	Unit            string  `json:"unit,omitempty"`
	WeightGrams     *int64  `json:"weight_grams,omitempty"`
	Dimensions      *string `json:"dimensions,omitempty"`
	ImageS3Key      *string `json:"image_s3_key,omitempty"`
	UploadID        *string `json:"upload_id,omitempty"`
}

type UpdateStockRequest struct {
	StockQuantity int32 `json:"stock_quantity"`
}

type SetProductStatusRequest struct {
	Status string `json:"status"`
}

type ProductResponse struct {
	ID              int64      `json:"id"`
	VendorID        string     `json:"vendor_id"`
	VendorProductID string     `json:"vendor_product_id"`
	Name            string     `json:"name"`
	Category        string     `json:"category"`
	Subcategory     string     `json:"subcategory,omitempty"`
	Description     string     `json:"description,omitempty"`
	SKU             string     `json:"sku"`
	Brand           string     `json:"brand,omitempty"`
	PriceCents      int64      `json:"price_cents"`
	CompareAtCents  *int64     `json:"compare_at_price_cents,omitempty"`
	StockQuantity   int32      `json:"stock_quantity"`
	Unit            string     `json:"unit,omitempty"`
	WeightGrams     *int64     `json:"weight_grams,omitempty"`
	Dimensions      *string    `json:"dimensions,omitempty"`
	ImageS3Key      *string    `json:"image_s3_key,omitempty"`
	Status          string     `json:"status"`
	UploadID        *string    `json:"upload_id,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}

func newProductResponse(p *domain.Product) *ProductResponse {
	return &ProductResponse{
		ID:              p.ID,
		VendorID:        p.VendorID,
		VendorProductID: p.VendorProductID,
		Name:            p.Name,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Description:     p.Description,
		SKU:             p.SKU,
		Brand:           p.Brand,
		PriceCents:      p.PriceCents,
		CompareAtCents:  p.CompareAtPriceCents,
		StockQuantity:   p.StockQuantity,
		Unit:            p.Unit,
		WeightGrams:     p.WeightGrams,
		Dimensions:      p.Dimensions,
		ImageS3Key:      p.ImageS3Key,
		Status:          string(p.Status),
		UploadID:        p.UploadID,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// addProduct
//
//	@Summary		Добавление провалидированного продукта
//	@Description	Вызывается процессом валидации для каждой принятой строки загрузки
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			product	body		AddProductRequest	true	"Данные продукта"
//	@Success		201		{object}	ProductResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Дубликат SKU или vendor_product_id"
//	@Failure		422		{object}	ErrorResponse	"Нарушение CHECK-ограничения"
//	@Router			/products [post]
func (h *ProductHandler) addProduct(w http.ResponseWriter, r *http.Request) {
	var req AddProductRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid product body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	priceCents, err := parsePriceToCents(req.Price)
	if err != nil {
		h.logger.Warnf("%d invalid price %q: %s", http.StatusBadRequest, req.Price, err.Error())
		WriteError(w, err)
		return
	}

	var compareAtCents *int64
	if req.CompareAtPrice != "" {
		cents, err := parsePriceToCents(req.CompareAtPrice)
		if err != nil {
			h.logger.Warnf("%d invalid compare_at_price %q: %s", http.StatusBadRequest, req.CompareAtPrice, err.Error())
			WriteError(w, err)
			return
		}
		compareAtCents = &cents
	}

	product, err := h.ingestUsecase.AddProduct(r.Context(), &usecase.AddProductReq{
		VendorID:            req.VendorID,
		VendorProductID:     req.VendorProductID,
		Name:                req.Name,
		Category:            req.Category,
		Subcategory:         req.Subcategory,
		Description:         req.Description,
		SKU:                 req.SKU,
		Brand:               req.Brand,
		PriceCents:          priceCents,
		CompareAtPriceCents: compareAtCents,
		StockQuantity:       req.StockQuantity,
		Unit:                req.Unit,
		WeightGrams:         req.WeightGrams,
		Dimensions:          req.Dimensions,
		ImageS3Key:          req.ImageS3Key,
		UploadID:            req.UploadID,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newProductResponse(product))
}

// getProduct
//
//	@Summary	Получение продукта
//	@Tags		products
//	@Produce	json
//	@Param		productID	path		integer	true	"ID продукта"
//	@Success	200			{object}	ProductResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/products/{productID} [get]
func (h *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	product, err := h.ingestUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// setProductStatus
//
//	@Summary		Ручная смена статуса продукта
//	@Description	Выставляет статус (inactive, discontinued и т.п.); автопереходы по остатку такие статусы не трогают
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		integer					true	"ID продукта"
//	@Param			status		body		SetProductStatusRequest	true	"Новый статус"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Недопустимый статус"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{productID}/status [patch]
func (h *ProductHandler) setProductStatus(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req SetProductStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid status body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.ingestUsecase.SetProductStatus(r.Context(), productID, req.Status)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}

// updateStock
//
//	@Summary		Изменение остатка продукта
//	@Description	Статус active/out_of_stock пересчитывается автоматически по новому остатку
//	@Tags			products
//	@Accept			json
//	@Produce		json
//	@Param			productID	path		integer				true	"ID продукта"
//	@Param			stock		body		UpdateStockRequest	true	"Новый остаток"
//	@Success		200			{object}	ProductResponse
//	@Failure		400			{object}	ErrorResponse	"Отрицательный остаток"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/products/{productID}/stock [patch]
func (h *ProductHandler) updateStock(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil {
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	var req UpdateStockRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid stock body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	product, err := h.ingestUsecase.UpdateStock(r.Context(), productID, req.StockQuantity)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newProductResponse(product))
}
