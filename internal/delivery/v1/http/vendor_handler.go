package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type VendorHandler struct {
	vendorUsecase usecase.VendorUC
	logger        logger.Logger
}

func NewVendorHandler(vendorUsecase usecase.VendorUC, logger logger.Logger) *VendorHandler {
	return &VendorHandler{vendorUsecase: vendorUsecase, logger: logger}
}

type CreateVendorRequest struct {
	VendorID     string `json:"vendor_id"`
	VendorName   string `json:"vendor_name"`
	Email        string `json:"email"`
	BusinessName string `json:"business_name,omitempty"`
	TaxID        string `json:"tax_id,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	Country      string `json:"country,omitempty"`
	PostalCode   string `json:"postal_code,omitempty"`
}

type SetVendorStatusRequest struct {
	Status string `json:"status"`
}

type VendorResponse struct {
	VendorID     string     `json:"vendor_id"`
	VendorName   string     `json:"vendor_name"`
	Email        string     `json:"email"`
	BusinessName string     `json:"business_name,omitempty"`
	TaxID        string     `json:"tax_id,omitempty"`
	Address      string     `json:"address,omitempty"`
	City         string     `json:"city,omitempty"`
	State        string     `json:"state,omitempty"`
	Country      string     `json:"country,omitempty"`
	PostalCode   string     `json:"postal_code,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    *time.Time `json:"updated_at,omitempty"`
}

func newVendorResponse(v *domain.Vendor) *VendorResponse {
	return &VendorResponse{
		VendorID:     v.ID,
		VendorName:   v.Name,
		Email:        v.Email,
		BusinessName: v.BusinessName,
		TaxID:        v.TaxID,
		Address:      v.Address,
		City:         v.City,
		State:        v.State,
		Country:      v.Country,
		PostalCode:   v.PostalCode,
		Status:       string(v.Status),
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

// createVendor
//
//	@Summary		Регистрация поставщика
//	@Description	Создает поставщика со статусом pending_approval
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			vendor	body		CreateVendorRequest	true	"Данные поставщика"
//	@Success		201		{object}	VendorResponse
//	@Failure		400		{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409		{object}	ErrorResponse	"Дубликат vendor_id или email"
//	@Router			/vendors [post]
func (h *VendorHandler) createVendor(w http.ResponseWriter, r *http.Request) {
	var req CreateVendorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid create vendor body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	ucReq := usecase.NewCreateVendorReq(req.VendorID, req.VendorName, req.Email)
	ucReq.BusinessName = req.BusinessName
	ucReq.TaxID = req.TaxID
	ucReq.Address = req.Address
	ucReq.City = req.City
	ucReq.State = req.State
	ucReq.Country = req.Country
	ucReq.PostalCode = req.PostalCode

	vendor, err := h.vendorUsecase.CreateVendor(r.Context(), ucReq)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newVendorResponse(vendor))
}

// getVendor
//
//	@Summary	Карточка поставщика
//	@Tags		vendors
//	@Produce	json
//	@Param		vendorID	path		string	true	"ID поставщика"
//	@Success	200			{object}	VendorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/vendors/{vendorID} [get]
func (h *VendorHandler) getVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")

	vendor, err := h.vendorUsecase.GetVendor(r.Context(), vendorID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVendorResponse(vendor))
}

// listVendors
//
//	@Summary	Список поставщиков
//	@Tags		vendors
//	@Produce	json
//	@Success	200	{array}	VendorResponse
//	@Router		/vendors [get]
func (h *VendorHandler) listVendors(w http.ResponseWriter, r *http.Request) {
	vendors, err := h.vendorUsecase.ListVendors(r.Context())
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]VendorResponse, 0, len(vendors))
	for i := range vendors {
		resp = append(resp, *newVendorResponse(&vendors[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// setVendorStatus
//
//	@Summary		Смена статуса поставщика
//	@Description	Переводит поставщика в один из статусов: active, suspended, inactive, pending_approval
//	@Tags			vendors
//	@Accept			json
//	@Produce		json
//	@Param			vendorID	path		string					true	"ID поставщика"
//	@Param			status		body		SetVendorStatusRequest	true	"Новый статус"
//	@Success		200			{object}	VendorResponse
//	@Failure		400			{object}	ErrorResponse	"Недопустимый статус"
//	@Failure		404			{object}	ErrorResponse
//	@Router			/vendors/{vendorID}/status [patch]
func (h *VendorHandler) setVendorStatus(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")

	var req SetVendorStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid status body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	vendor, err := h.vendorUsecase.SetVendorStatus(r.Context(), vendorID, req.Status)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newVendorResponse(vendor))
}

// deleteVendor
//
//	@Summary		Удаление поставщика
//	@Description	Отклоняется с 409, если у поставщика остались продукты
//	@Tags			vendors
//	@Produce		json
//	@Param			vendorID	path	string	true	"ID поставщика"
//	@Success		204
//	@Failure		404	{object}	ErrorResponse
//	@Failure		409	{object}	ErrorResponse	"Есть зависимые продукты"
//	@Router			/vendors/{vendorID} [delete]
func (h *VendorHandler) deleteVendor(w http.ResponseWriter, r *http.Request) {
	vendorID := chi.URLParam(r, "vendorID")

	if err := h.vendorUsecase.DeleteVendor(r.Context(), vendorID); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
