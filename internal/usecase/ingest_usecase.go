package usecase

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// IngestUseCase — граница записи для внешнего процесса валидации:
// жизненный цикл пакетной загрузки, продукты, ошибки валидации.
// Ограничения целостности при этом проверяет сама БД, слой лишь
// отсеивает заведомо некорректный ввод до начала транзакции.
type IngestUseCase struct {
	uploadRepo  UploadRepository
	productRepo ProductRepository
	errorRepo   ValidationErrorRepository
	outboxRepo  OutboxRepository
	cacheRepo   CacheRepository
	filesInfra  FilesInfra
	dbPool      transaction.Transactional
	logger      logger.Logger
}

func NewIngestUC(
	uploadRepo UploadRepository,
	productRepo ProductRepository,
	errorRepo ValidationErrorRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	filesInfra FilesInfra,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *IngestUseCase {
	return &IngestUseCase{
		uploadRepo:  uploadRepo,
		productRepo: productRepo,
		errorRepo:   errorRepo,
		outboxRepo:  outboxRepo,
		cacheRepo:   cacheRepo,
		filesInfra:  filesInfra,
		dbPool:      dbPool,
		logger:      logger,
	}
}

// BeginUpload сохраняет исходный файл пакета в S3, создаёт запись upload_history
// со статусом processing и публикует upload.started через outbox.
// При откате транзакции загруженный файл зачищается в фоне.
func (i *IngestUseCase) BeginUpload(ctx context.Context, req *BeginUploadReq) (*domain.Upload, error) {
	const op = "IngestUseCase.BeginUpload"

	var err error
	if strings.TrimSpace(req.VendorID) == "" {
		return nil, e.Wrap(op, e.ErrVendorIDRequired)
	}
	if len(req.File.Data) == 0 {
		return nil, e.Wrap(op, e.ErrNoFile)
	}

	uploadID := "UPL-" + uuid.NewString()

	var (
		fileRes  *StoreFileRes
		uploaded bool
	)

	fileRes, err = i.filesInfra.StoreSourceFile(ctx, NewStoreFileReq(req.VendorID, uploadID, req.File))
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	uploaded = true

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		i.cleanupOnFailure(uploaded, fileRes, req.VendorID, op, err)
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			i.cleanupOnFailure(uploaded, fileRes, req.VendorID, op, err)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	upload := domain.NewUpload(uploadID, req.VendorID, req.File.Name, fileRes.Key)
	now := time.Now().UTC()
	upload.ProcessingStartedAt = &now
	upload.Metadata = req.Metadata

	created, err := i.uploadRepo.Create(ctx, upload)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = i.emitUploadEvent(ctx, UploadStarted, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	i.invalidateSummary(ctx, req.VendorID)

	return created, nil
}

// CompleteUpload записывает итоговые счётчики и завершает загрузку.
// Статус выводится из счётчиков: completed при нуле ошибок, failed
// при нуле валидных строк, иначе partial. Файл отчёта об ошибках
// обязателен ровно тогда, когда error_records > 0 (инвариант БД).
func (i *IngestUseCase) CompleteUpload(ctx context.Context, req *CompleteUploadReq) (*domain.Upload, error) {
	const op = "IngestUseCase.CompleteUpload"

	var err error
	if err = i.validateCompletion(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	existing, err := i.uploadRepo.GetByID(ctx, req.UploadID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	var (
		errorFileKey *string
		fileRes      *StoreFileRes
		uploaded     bool
	)

	if req.ErrorRecords > 0 {
		fileRes, err = i.filesInfra.StoreErrorFile(ctx, NewStoreFileReq(existing.VendorID, req.UploadID, *req.ErrorFile))
		if err != nil {
			return nil, e.Wrap(op, err)
		}
		uploaded = true
		errorFileKey = &fileRes.Key
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		i.cleanupOnFailure(uploaded, fileRes, existing.VendorID, op, err)
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil {
			if tx.IsActive() {
				tx.Rollback(ctx)
			}
			i.cleanupOnFailure(uploaded, fileRes, existing.VendorID, op, err)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	result := &UploadResult{
		TotalRecords:   req.TotalRecords,
		ValidRecords:   req.ValidRecords,
		ErrorRecords:   req.ErrorRecords,
		Status:         string(deriveUploadStatus(req)),
		ErrorFileS3Key: errorFileKey,
		Metadata:       req.Metadata,
	}

	completed, err := i.uploadRepo.Complete(ctx, req.UploadID, result, time.Now().UTC())
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = i.emitUploadEvent(ctx, UploadCompleted, completed); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	i.invalidateSummary(ctx, completed.VendorID)

	return completed, nil
}

// GetUpload возвращает запись загрузки по идентификатору.
func (i *IngestUseCase) GetUpload(ctx context.Context, uploadID string) (*domain.Upload, error) {
	const op = "IngestUseCase.GetUpload"

	if strings.TrimSpace(uploadID) == "" {
		return nil, e.Wrap(op, e.ErrUploadNotFound)
	}

	upload, err := i.uploadRepo.GetByID(ctx, uploadID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return upload, nil
}

// AddProduct добавляет провалидированный продукт и публикует product.created.
// Коллизии SKU и пары (vendor, vendor_product_id) отклоняет БД.
func (i *IngestUseCase) AddProduct(ctx context.Context, req *AddProductReq) (*domain.Product, error) {
	const op = "IngestUseCase.AddProduct"

	var err error
	if err = i.validateProduct(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	created, err := i.productRepo.Create(ctx, NewProductFromReq(req))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = i.emitProductEvent(ctx, ProductCreated, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	i.invalidateSummary(ctx, created.VendorID)

	return created, nil
}

// GetProduct возвращает продукт по внутреннему идентификатору.
func (i *IngestUseCase) GetProduct(ctx context.Context, productID int64) (*domain.Product, error) {
	const op = "IngestUseCase.GetProduct"

	product, err := i.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return product, nil
}

// SetProductStatus вручную выставляет статус продукта (inactive,
// discontinued и т.п.). Автопереходы по остатку такие статусы не трогают.
func (i *IngestUseCase) SetProductStatus(ctx context.Context, productID int64, status string) (*domain.Product, error) {
	const op = "IngestUseCase.SetProductStatus"

	var err error
	parsed, ok := domain.ParseProductStatus(status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := i.productRepo.SetStatus(ctx, productID, parsed)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = i.emitProductEvent(ctx, ProductStatusChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	i.invalidateSummary(ctx, updated.VendorID)

	return updated, nil
}

// UpdateStock меняет остаток продукта. Переход active <-> out_of_stock
// выполняет триггер БД, возвращается уже пересчитанная строка.
func (i *IngestUseCase) UpdateStock(ctx context.Context, productID int64, quantity int32) (*domain.Product, error) {
	const op = "IngestUseCase.UpdateStock"

	var err error
	if quantity < 0 {
		return nil, e.Wrap(op, e.ErrNegativeStock)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := i.productRepo.UpdateStock(ctx, productID, quantity)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = i.emitProductEvent(ctx, ProductStockChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return updated, nil
}

// RecordValidationError регистрирует отбракованную строку пакета.
func (i *IngestUseCase) RecordValidationError(ctx context.Context, req *RecordErrorReq) (*domain.ValidationError, error) {
	const op = "IngestUseCase.RecordValidationError"

	var err error
	if strings.TrimSpace(req.UploadID) == "" || strings.TrimSpace(req.VendorID) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}
	if strings.TrimSpace(req.ErrorType) == "" || strings.TrimSpace(req.ErrorMessage) == "" {
		return nil, e.Wrap(op, e.ErrMissingFields)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, i.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	ve := domain.NewValidationError(req.UploadID, req.VendorID, req.RowNumber, req.ErrorType, req.ErrorField, req.ErrorMessage)
	ve.VendorProductID = req.VendorProductID
	ve.RawData = req.RawData

	created, err := i.errorRepo.Create(ctx, ve)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	return created, nil
}

// ListUploadErrors возвращает ошибки валидации одной загрузки.
func (i *IngestUseCase) ListUploadErrors(ctx context.Context, uploadID string) ([]domain.ValidationError, error) {
	const op = "IngestUseCase.ListUploadErrors"

	if strings.TrimSpace(uploadID) == "" {
		return nil, e.Wrap(op, e.ErrUploadNotFound)
	}

	errors, err := i.errorRepo.ListByUpload(ctx, uploadID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return errors, nil
}

// cleanupOnFailure запускает фоновую зачистку файла после отката транзакции.
func (i *IngestUseCase) cleanupOnFailure(uploaded bool, fileRes *StoreFileRes, vendorID, op string, err error) {
	if !uploaded || fileRes == nil {
		return
	}

	i.logger.Warnf(
		"Cleaning up orphaned batch file after transaction failure. vendor_id: %s, error: %v",
		vendorID,
		e.Wrap(op, err),
	)
	i.filesInfra.CleanupFiles([]string{fileRes.Key})
}

func (i *IngestUseCase) emitUploadEvent(ctx context.Context, eventType OutboxEventType, upload *domain.Upload) error {
	payload, err := json.Marshal(map[string]any{
		"upload_id":     upload.ID,
		"vendor_id":     upload.VendorID,
		"file_name":     upload.FileName,
		"status":        upload.Status,
		"total_records": upload.TotalRecords,
		"valid_records": upload.ValidRecords,
		"error_records": upload.ErrorRecords,
	})
	if err != nil {
		return err
	}

	_, err = i.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, upload.ID, payload))
	return err
}

func (i *IngestUseCase) emitProductEvent(ctx context.Context, eventType OutboxEventType, product *domain.Product) error {
	payload, err := json.Marshal(map[string]any{
		"product_id":        product.ID,
		"vendor_id":         product.VendorID,
		"vendor_product_id": product.VendorProductID,
		"sku":               product.SKU,
		"status":            product.Status,
		"stock_quantity":    product.StockQuantity,
	})
	if err != nil {
		return err
	}

	_, err = i.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, product.SKU, payload))
	return err
}

func (i *IngestUseCase) invalidateSummary(ctx context.Context, vendorID string) {
	if err := i.cacheRepo.DeleteSummaries(ctx, []string{vendorID}); err != nil {
		i.logger.Warnf("Failed to invalidate vendor summary cache: %v", err)
	}
}

// validateCompletion проверяет инварианты счётчиков до обращения к БД.
func (i *IngestUseCase) validateCompletion(req *CompleteUploadReq) error {
	if strings.TrimSpace(req.UploadID) == "" {
		return e.ErrUploadNotFound
	}

	if req.TotalRecords < 0 || req.ValidRecords < 0 || req.ErrorRecords < 0 {
		return e.ErrRecordCountMismatch
	}

	if req.ValidRecords+req.ErrorRecords != req.TotalRecords {
		return e.ErrRecordCountMismatch
	}

	// Отчёт об ошибках обязателен ровно тогда, когда есть ошибки
	if (req.ErrorRecords > 0) != (req.ErrorFile != nil && len(req.ErrorFile.Data) > 0) {
		return e.ErrErrorFileMismatch
	}

	return nil
}

// validateProduct проверяет корректность входных данных запроса на добавление продукта.
func (i *IngestUseCase) validateProduct(req *AddProductReq) error {
	if strings.TrimSpace(req.VendorID) == "" {
		return e.ErrVendorIDRequired
	}

	if strings.TrimSpace(req.Name) == "" {
		return e.ErrProductNameRequired
	}

	if strings.TrimSpace(req.SKU) == "" {
		return e.ErrSKURequired
	}

	if req.PriceCents <= 0 {
		return e.ErrPriceMustBePositive
	}

	if req.CompareAtPriceCents != nil && *req.CompareAtPriceCents < req.PriceCents {
		return e.ErrCompareAtBelowPrice
	}

	if req.StockQuantity < 0 {
		return e.ErrNegativeStock
	}

	return nil
}

// deriveUploadStatus выводит итоговый статус загрузки из счётчиков.
func deriveUploadStatus(req *CompleteUploadReq) domain.UploadStatus {
	switch {
	case req.ErrorRecords == 0:
		return domain.UploadCompleted
	case req.ValidRecords == 0 && req.TotalRecords > 0:
		return domain.UploadFailed
	default:
		return domain.UploadPartial
	}
}

func NewProductFromReq(req *AddProductReq) *domain.Product {
	product := domain.NewProduct(req.VendorID, req.VendorProductID, req.Name, req.Category, req.SKU, req.PriceCents, req.StockQuantity)
	product.Subcategory = req.Subcategory
	product.Description = req.Description
	product.Brand = req.Brand
	product.CompareAtPriceCents = req.CompareAtPriceCents
	product.Unit = req.Unit
	product.WeightGrams = req.WeightGrams
	product.Dimensions = req.Dimensions
	product.ImageS3Key = req.ImageS3Key
	product.UploadID = req.UploadID

	return product
}
