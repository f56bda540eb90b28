package domain

import "time"

// UploadStatus — статус пакетной загрузки.
type UploadStatus string

const (
	UploadProcessing UploadStatus = "processing"
	UploadCompleted  UploadStatus = "completed"
	UploadFailed     UploadStatus = "failed"
	UploadPartial    UploadStatus = "partial"
)

// Upload описывает одну попытку пакетной загрузки каталога поставщиком.
// Инвариант: ValidRecords + ErrorRecords = TotalRecords,
// ErrorFileS3Key заполнен тогда и только тогда, когда ErrorRecords > 0.
type Upload struct {
	ID                        string // например "UPL-<uuid>"
	VendorID                  string
	FileName                  string
	S3Key                     string
	TotalRecords              int32
	ValidRecords              int32
	ErrorRecords              int32
	Status                    UploadStatus
	ErrorFileS3Key            *string
	UploadDate                time.Time
	ProcessingStartedAt       *time.Time
	ProcessingCompletedAt     *time.Time
	ProcessingDurationSeconds *int32 // вычисляется триггером
	Metadata                  map[string]any
}

func NewUpload(id, vendorID, fileName, s3Key string) *Upload {
	return &Upload{
		ID:       id,
		VendorID: vendorID,
		FileName: fileName,
		S3Key:    s3Key,
		Status:   UploadProcessing,
	}
}

// ParseUploadStatus проверяет, что строка является допустимым статусом загрузки.
func ParseUploadStatus(s string) (UploadStatus, bool) {
	switch UploadStatus(s) {
	case UploadProcessing, UploadCompleted, UploadFailed, UploadPartial:
		return UploadStatus(s), true
	default:
		return "", false
	}
}
