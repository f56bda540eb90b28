package infrastructure

import "github.com/DRSN-tech/vendor-onboarding/pkg/e"

// GetExtensionFromMIME возвращает расширение файла по MIME-типу файла загрузки.
// Поддерживает csv, xlsx, json. Возвращает ошибку e.ErrUnsupportedMediaType для неподдерживаемых типов.
func GetExtensionFromMIME(mime string) (string, error) {
	switch mime {
	case "text/csv", "application/csv":
		return "csv", nil
	case "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet":
		return "xlsx", nil
	case "application/json":
		return "json", nil
	default:
		return "bin", e.ErrUnsupportedMediaType
	}
}
