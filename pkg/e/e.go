package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки конфигурации
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")

	// Нарушения ограничений хранилища (классифицируются по SQLSTATE)
	ErrUniqueViolation     = fmt.Errorf("unique constraint violation")
	ErrCheckViolation      = fmt.Errorf("check constraint violation")
	ErrForeignKeyViolation = fmt.Errorf("foreign key violation")
	ErrRestrictViolation   = fmt.Errorf("delete restricted by dependent rows")

	// 400 Bad Request
	ErrStatusBadRequest    = fmt.Errorf("bad request")
	ErrExpectedMultipart   = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields       = fmt.Errorf("missing required fields")
	ErrInvalidPrice        = fmt.Errorf("invalid price")
	ErrPricePrecision      = fmt.Errorf("price must have at most 2 decimal places")
	ErrCompareAtBelowPrice = fmt.Errorf("compare-at price must be greater than or equal to price")
	ErrNegativeStock       = fmt.Errorf("stock quantity must be non-negative")
	ErrInvalidEmail        = fmt.Errorf("invalid email address")
	ErrInvalidStatus       = fmt.Errorf("invalid status value")
	ErrRecordCountMismatch = fmt.Errorf("valid_records + error_records must equal total_records")
	ErrErrorFileMismatch   = fmt.Errorf("error file key must be set exactly when error_records > 0")
	ErrVendorIDRequired    = fmt.Errorf("vendor id is required")
	ErrVendorNameRequired  = fmt.Errorf("vendor name is required")
	ErrSKURequired         = fmt.Errorf("sku is required")
	ErrProductNameRequired = fmt.Errorf("product name is required")
	ErrPriceMustBePositive = fmt.Errorf("price must be positive")
	ErrNoFile              = fmt.Errorf("no file provided")
	ErrFileTooLarge        = fmt.Errorf("file too large")

	// 415 Unsupported Media Type
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")

	// 404 Not Found
	ErrVendorNotFound  = fmt.Errorf("vendor not found")
	ErrUploadNotFound  = fmt.Errorf("upload not found")
	ErrProductNotFound = fmt.Errorf("product not found")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
