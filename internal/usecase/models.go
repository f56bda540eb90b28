package usecase

import "time"

// VENDOR USECASE

// CreateVendorReq — запрос на регистрацию поставщика.
type CreateVendorReq struct {
	VendorID     string
	Name         string
	Email        string
	BusinessName string
	TaxID        string
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
}

// INGEST USECASE

// BatchFilePayload представляет файл, загруженный через multipart/form-data.
type BatchFilePayload struct {
	Data     []byte // байты файла
	MimeType string // Content-Type из multipart (text/csv)
	Size     int64  // фактический размер в байтах
	Name     string // оригинальное имя файла (для логов)
}

// BeginUploadReq — запрос на начало пакетной загрузки.
type BeginUploadReq struct {
	VendorID string
	File     BatchFilePayload
	Metadata map[string]any
}

// CompleteUploadReq — итог пакетной загрузки.
// Статус выводится из счётчиков; файл отчёта обязателен при ErrorRecords > 0.
type CompleteUploadReq struct {
	UploadID     string
	TotalRecords int32
	ValidRecords int32
	ErrorRecords int32
	ErrorFile    *BatchFilePayload
	Metadata     map[string]any
}

// UploadResult — итоговые значения для записи upload_history.
type UploadResult struct {
	TotalRecords   int32
	ValidRecords   int32
	ErrorRecords   int32
	Status         string
	ErrorFileS3Key *string
	Metadata       map[string]any
}

// AddProductReq — запрос на добавление провалидированного продукта.
type AddProductReq struct {
	VendorID            string
	VendorProductID     string
	Name                string
	Category            string
	Subcategory         string
	Description         string
	SKU                 string
	Brand               string
	PriceCents          int64
	CompareAtPriceCents *int64
	StockQuantity       int32
	Unit                string
	WeightGrams         *int64
	Dimensions          *string
	ImageS3Key          *string
	UploadID            *string
}

// RecordErrorReq — запрос на регистрацию отбракованной строки.
type RecordErrorReq struct {
	UploadID        string
	VendorID        string
	RowNumber       int32
	VendorProductID string
	ErrorType       string
	ErrorField      string
	ErrorMessage    string
	RawData         map[string]any
}

// REPORTS

// VendorSummary — строка представления vendor_summary.
type VendorSummary struct {
	VendorID       string
	VendorName     string
	Email          string
	Status         string
	ProductCount   int64
	UploadCount    int64
	TotalErrors    int64
	LastUploadDate *time.Time
}

// RecentUpload — строка представления recent_uploads.
type RecentUpload struct {
	UploadID        string
	VendorID        string
	VendorName      string
	FileName        string
	TotalRecords    int32
	ValidRecords    int32
	ErrorRecords    int32
	Status          string
	UploadDate      time.Time
	DurationSeconds *int32
	SuccessRate     *float64 // NULL при total_records = 0
}

// CatalogProduct — строка представления product_catalog.
type CatalogProduct struct {
	ID                  int64
	VendorID            string
	VendorName          string
	VendorProductID     string
	Name                string
	Category            string
	Subcategory         *string
	SKU                 string
	Brand               *string
	PriceCents          int64
	CompareAtPriceCents *int64
	StockQuantity       int32
	Unit                *string
	Status              string
	CreatedAt           time.Time
}

// INFRASTRUCTURE

// StoreFileReq — запрос на сохранение файла загрузки в S3.
type StoreFileReq struct {
	VendorID string
	UploadID string
	File     BatchFilePayload
}

type StoreFileRes struct {
	Key string
}

type WriteRawMessageReq struct {
	Key     string
	Payload []byte
}

// MAPPERS

func NewCreateVendorReq(vendorID, name, email string) *CreateVendorReq {
	return &CreateVendorReq{
		VendorID: vendorID,
		Name:     name,
		Email:    email,
	}
}

func NewBeginUploadReq(vendorID string, file BatchFilePayload, metadata map[string]any) *BeginUploadReq {
	return &BeginUploadReq{
		VendorID: vendorID,
		File:     file,
		Metadata: metadata,
	}
}

func NewBatchFilePayload(data []byte, mimeType string, size int64, name string) *BatchFilePayload {
	return &BatchFilePayload{
		Data:     data,
		MimeType: mimeType,
		Size:     size,
		Name:     name,
	}
}

func NewStoreFileReq(vendorID, uploadID string, file BatchFilePayload) *StoreFileReq {
	return &StoreFileReq{
		VendorID: vendorID,
		UploadID: uploadID,
		File:     file,
	}
}

func NewStoreFileRes(key string) *StoreFileRes {
	return &StoreFileRes{Key: key}
}

func NewWriteRawMessageReq(key string, payload []byte) *WriteRawMessageReq {
	return &WriteRawMessageReq{
		Key:     key,
		Payload: payload,
	}
}
