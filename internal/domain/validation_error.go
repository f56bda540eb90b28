package domain

import "time"

// ValidationError описывает одну отбракованную строку пакетной загрузки.
// Записи создаются внешним процессом валидации и далее только читаются.
type ValidationError struct {
	ID              int64
	UploadID        string
	VendorID        string
	RowNumber       int32
	VendorProductID string
	ErrorType       string // например "missing_field", "invalid_price"
	ErrorField      string
	ErrorMessage    string
	RawData         map[string]any // исходная строка файла
	CreatedAt       time.Time
}

func NewValidationError(uploadID, vendorID string, rowNumber int32, errorType, errorField, errorMessage string) *ValidationError {
	return &ValidationError{
		UploadID:     uploadID,
		VendorID:     vendorID,
		RowNumber:    rowNumber,
		ErrorType:    errorType,
		ErrorField:   errorField,
		ErrorMessage: errorMessage,
	}
}
