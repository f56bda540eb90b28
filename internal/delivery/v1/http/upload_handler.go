package http

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type UploadHandler struct {
	ingestUsecase usecase.IngestUC
	logger        logger.Logger
}

func NewUploadHandler(ingestUsecase usecase.IngestUC, logger logger.Logger) *UploadHandler {
	return &UploadHandler{ingestUsecase: ingestUsecase, logger: logger}
}

type UploadResponse struct {
	UploadID                  string         `json:"upload_id"`
	VendorID                  string         `json:"vendor_id"`
	FileName                  string         `json:"file_name"`
	S3Key                     string         `json:"s3_key"`
	TotalRecords              int32          `json:"total_records"`
	ValidRecords              int32          `json:"valid_records"`
	ErrorRecords              int32          `json:"error_records"`
	Status                    string         `json:"status"`
	ErrorFileS3Key            *string        `json:"error_file_s3_key,omitempty"`
	UploadDate                time.Time      `json:"upload_date"`
	ProcessingStartedAt       *time.Time     `json:"processing_started_at,omitempty"`
	ProcessingCompletedAt     *time.Time     `json:"processing_completed_at,omitempty"`
	ProcessingDurationSeconds *int32         `json:"processing_duration_seconds,omitempty"`
	Metadata                  map[string]any `json:"metadata,omitempty"`
}

func newUploadResponse(u *domain.Upload) *UploadResponse {
	return &UploadResponse{
		UploadID:                  u.ID,
		VendorID:                  u.VendorID,
		FileName:                  u.FileName,
		S3Key:                     u.S3Key,
		TotalRecords:              u.TotalRecords,
		ValidRecords:              u.ValidRecords,
		ErrorRecords:              u.ErrorRecords,
		Status:                    string(u.Status),
		ErrorFileS3Key:            u.ErrorFileS3Key,
		UploadDate:                u.UploadDate,
		ProcessingStartedAt:       u.ProcessingStartedAt,
		ProcessingCompletedAt:     u.ProcessingCompletedAt,
		ProcessingDurationSeconds: u.ProcessingDurationSeconds,
		Metadata:                  u.Metadata,
	}
}

type ValidationErrorResponse struct {
	ID              int64          `json:"id"`
	UploadID        string         `json:"upload_id"`
	VendorID        string         `json:"vendor_id"`
	RowNumber       int32          `json:"row_number"`
	VendorProductID string         `json:"vendor_product_id,omitempty"`
	ErrorType       string         `json:"error_type"`
	ErrorField      string         `json:"error_field,omitempty"`
	ErrorMessage    string         `json:"error_message"`
	RawData         map[string]any `json:"raw_data,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
}

type RecordValidationErrorRequest struct {
	VendorID        string         `json:"vendor_id"`
	RowNumber       int32          `json:"row_number"`
	VendorProductID string         `json:"vendor_product_id,omitempty"`
	ErrorType       string         `json:"error_type"`
	ErrorField      string         `json:"error_field,omitempty"`
	ErrorMessage    string         `json:"error_message"`
	RawData         map[string]any `json:"raw_data,omitempty"`
}

func newValidationErrorResponse(ve *domain.ValidationError) *ValidationErrorResponse {
	return &ValidationErrorResponse{
		ID:              ve.ID,
		UploadID:        ve.UploadID,
		VendorID:        ve.VendorID,
		RowNumber:       ve.RowNumber,
		VendorProductID: ve.VendorProductID,
		ErrorType:       ve.ErrorType,
		ErrorField:      ve.ErrorField,
		ErrorMessage:    ve.ErrorMessage,
		RawData:         ve.RawData,
		CreatedAt:       ve.CreatedAt,
	}
}

// beginUpload
//
//	@Summary		Начало пакетной загрузки
//	@Description	Сохраняет исходный файл в S3 и создает запись загрузки со статусом processing
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			vendorID	path		string	true	"ID поставщика"
//	@Param			file		formData	file	true	"Файл каталога (csv, xlsx, json)"
//	@Param			metadata	formData	string	false	"Произвольный JSON-объект"
//	@Success		201			{object}	UploadResponse
//	@Failure		400			{object}	ErrorResponse	"Ошибка валидации"
//	@Failure		409			{object}	ErrorResponse	"Поставщик не существует"
//	@Router			/vendors/{vendorID}/uploads [post]
func (h *UploadHandler) beginUpload(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	vendorID := chi.URLParam(r, "vendorID")
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	file, err := parseBatchFile(r.MultipartForm.File["file"])
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	metadata, err := parseMetadataField(r.FormValue("metadata"))
	if err != nil {
		h.logger.Warnf("%d invalid metadata: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	upload, err := h.ingestUsecase.BeginUpload(r.Context(), usecase.NewBeginUploadReq(vendorID, *file, metadata))
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newUploadResponse(upload))
}

// completeUpload
//
//	@Summary		Завершение пакетной загрузки
//	@Description	Фиксирует итоговые счётчики; файл отчёта обязателен ровно тогда, когда error_records > 0
//	@Tags			uploads
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			uploadID		path		string	true	"ID загрузки"
//	@Param			total_records	formData	integer	true	"Всего строк"
//	@Param			valid_records	formData	integer	true	"Принятых строк"
//	@Param			error_records	formData	integer	true	"Отбракованных строк"
//	@Param			error_file		formData	file	false	"Отчёт об ошибках"
//	@Success		200				{object}	UploadResponse
//	@Failure		400				{object}	ErrorResponse	"Счётчики не сходятся или файл отчёта не согласован"
//	@Failure		404				{object}	ErrorResponse
//	@Router			/uploads/{uploadID}/complete [post]
func (h *UploadHandler) completeUpload(w http.ResponseWriter, r *http.Request) {
	const (
		maxTotalRequestSize = 150 << 20
		maxMemory           = 32 << 20
	)

	uploadID := chi.URLParam(r, "uploadID")
	r.Body = http.MaxBytesReader(w, r.Body, maxTotalRequestSize)

	if err := ensureMultipartForm(r, maxMemory); err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), r.Header.Get("Content-Type"))
		WriteError(w, err)
		return
	}

	total, err := parseCountField(r.FormValue("total_records"))
	if err != nil {
		WriteError(w, err)
		return
	}
	valid, err := parseCountField(r.FormValue("valid_records"))
	if err != nil {
		WriteError(w, err)
		return
	}
	errCount, err := parseCountField(r.FormValue("error_records"))
	if err != nil {
		WriteError(w, err)
		return
	}

	var errorFile *usecase.BatchFilePayload
	if files := r.MultipartForm.File["error_file"]; len(files) > 0 {
		errorFile, err = parseBatchFile(files)
		if err != nil {
			h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
			WriteError(w, err)
			return
		}
	}

	metadata, err := parseMetadataField(r.FormValue("metadata"))
	if err != nil {
		h.logger.Warnf("%d invalid metadata: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	upload, err := h.ingestUsecase.CompleteUpload(r.Context(), &usecase.CompleteUploadReq{
		UploadID:     uploadID,
		TotalRecords: total,
		ValidRecords: valid,
		ErrorRecords: errCount,
		ErrorFile:    errorFile,
		Metadata:     metadata,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newUploadResponse(upload))
}

// getUpload
//
//	@Summary	Карточка загрузки
//	@Tags		uploads
//	@Produce	json
//	@Param		uploadID	path		string	true	"ID загрузки"
//	@Success	200			{object}	UploadResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/uploads/{uploadID} [get]
func (h *UploadHandler) getUpload(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")

	upload, err := h.ingestUsecase.GetUpload(r.Context(), uploadID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, newUploadResponse(upload))
}

// recordValidationError
//
//	@Summary		Регистрация отбракованной строки
//	@Description	Вызывается процессом валидации для каждой строки, не прошедшей проверки
//	@Tags			uploads
//	@Accept			json
//	@Produce		json
//	@Param			uploadID	path		string							true	"ID загрузки"
//	@Param			error		body		RecordValidationErrorRequest	true	"Описание ошибки"
//	@Success		201			{object}	ValidationErrorResponse
//	@Failure		400			{object}	ErrorResponse
//	@Failure		409			{object}	ErrorResponse	"Загрузка не существует"
//	@Router			/uploads/{uploadID}/errors [post]
func (h *UploadHandler) recordValidationError(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")

	var req RecordValidationErrorRequest
	if err := decodeJSON(r, &req); err != nil {
		h.logger.Warnf("%d invalid validation error body: %s", http.StatusBadRequest, err.Error())
		WriteError(w, err)
		return
	}

	ve, err := h.ingestUsecase.RecordValidationError(r.Context(), &usecase.RecordErrorReq{
		UploadID:        uploadID,
		VendorID:        req.VendorID,
		RowNumber:       req.RowNumber,
		VendorProductID: req.VendorProductID,
		ErrorType:       req.ErrorType,
		ErrorField:      req.ErrorField,
		ErrorMessage:    req.ErrorMessage,
		RawData:         req.RawData,
	})
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, newValidationErrorResponse(ve))
}

// listUploadErrors
//
//	@Summary	Ошибки валидации загрузки
//	@Tags		uploads
//	@Produce	json
//	@Param		uploadID	path		string	true	"ID загрузки"
//	@Success	200			{array}		ValidationErrorResponse
//	@Failure	404			{object}	ErrorResponse
//	@Router		/uploads/{uploadID}/errors [get]
func (h *UploadHandler) listUploadErrors(w http.ResponseWriter, r *http.Request) {
	uploadID := chi.URLParam(r, "uploadID")

	errorsList, err := h.ingestUsecase.ListUploadErrors(r.Context(), uploadID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	resp := make([]ValidationErrorResponse, 0, len(errorsList))
	for i := range errorsList {
		resp = append(resp, *newValidationErrorResponse(&errorsList[i]))
	}

	WriteSuccess(w, http.StatusOK, resp)
}

// parseCountField читает неотрицательный счётчик из поля формы.
func parseCountField(s string) (int32, error) {
	if s == "" {
		return 0, e.ErrMissingFields
	}

	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil || v < 0 {
		return 0, e.ErrStatusBadRequest
	}

	return int32(v), nil
}

// parseMetadataField разбирает необязательное поле metadata как JSON-объект.
func parseMetadataField(s string) (map[string]any, error) {
	if s == "" {
		return nil, nil
	}

	var metadata map[string]any
	if err := json.Unmarshal([]byte(s), &metadata); err != nil {
		return nil, e.ErrStatusBadRequest
	}

	return metadata, nil
}
