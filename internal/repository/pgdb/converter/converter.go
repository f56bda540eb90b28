//go:generate goverter gen github.com/DRSN-tech/vendor-onboarding/internal/repository/pgdb/converter
package converter

import (
	"encoding/json"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
)

// VendorConverter преобразует сущности Vendor между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend PtrToString
// goverter:extend StringToPtr
// goverter:extend ConvertVendorStatus
// goverter:extend ConvertToVendorStatus
type VendorConverter interface {
	ToModel(entity *domain.Vendor) *VendorModel
	ToEntity(model *VendorModel) *domain.Vendor
	ToArrEntity(models []*VendorModel) []domain.Vendor
}

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend PtrToString
// goverter:extend StringToPtr
// goverter:extend ConvertProductStatus
// goverter:extend ConvertToProductStatus
type ProductConverter interface {
	ToModel(entity *domain.Product) *ProductModel
	ToEntity(model *ProductModel) *domain.Product
}

// UploadConverter преобразует сущности Upload между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertUploadStatus
// goverter:extend ConvertToUploadStatus
// goverter:extend JSONToMap
// goverter:extend MapToJSON
type UploadConverter interface {
	ToModel(entity *domain.Upload) *UploadModel
	ToEntity(model *UploadModel) *domain.Upload
}

// ValidationErrorConverter преобразует сущности ValidationError между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend PtrToString
// goverter:extend StringToPtr
// goverter:extend JSONToMap
// goverter:extend MapToJSON
type ValidationErrorConverter interface {
	ToModel(entity *domain.ValidationError) *ValidationErrorModel
	ToEntity(model *ValidationErrorModel) *domain.ValidationError
	ToArrEntity(models []*ValidationErrorModel) []domain.ValidationError
}

// CategoryConverter преобразует сущности Category между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend PtrToString
// goverter:extend StringToPtr
type CategoryConverter interface {
	ToEntity(model *CategoryModel) *domain.Category
	ToArrEntity(models []*CategoryModel) []domain.Category
}

// OutboxEventConverter преобразует сущности OutboxEvent между usecase и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
// goverter:extend ConvertOutBoxStatus
// goverter:extend ConvertToOutBoxStatus
// goverter:extend ConvertOutboxEventType
// goverter:extend ConvertToOutboxEventType
type OutboxEventConverter interface {
	ToModel(entity *usecase.OutboxEvent) *OutboxEventModel
	ToEntity(model *OutboxEventModel) *usecase.OutboxEvent
	ToArrEntity(models []*OutboxEventModel) []*usecase.OutboxEvent
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}

// PtrToString разворачивает nullable-колонку в строку.
func PtrToString(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// StringToPtr сворачивает пустую строку в NULL.
func StringToPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func ConvertVendorStatus(s domain.VendorStatus) string {
	return string(s)
}

func ConvertToVendorStatus(s string) domain.VendorStatus {
	return domain.VendorStatus(s)
}

func ConvertProductStatus(s domain.ProductStatus) string {
	return string(s)
}

func ConvertToProductStatus(s string) domain.ProductStatus {
	return domain.ProductStatus(s)
}

func ConvertUploadStatus(s domain.UploadStatus) string {
	return string(s)
}

func ConvertToUploadStatus(s string) domain.UploadStatus {
	return domain.UploadStatus(s)
}

func ConvertOutBoxStatus(s usecase.OutboxStatus) string {
	return string(s)
}

func ConvertToOutBoxStatus(s string) usecase.OutboxStatus {
	return usecase.OutboxStatus(s)
}

func ConvertOutboxEventType(t usecase.OutboxEventType) string {
	return string(t)
}

func ConvertToOutboxEventType(s string) usecase.OutboxEventType {
	return usecase.OutboxEventType(s)
}

// JSONToMap разбирает JSONB-колонку; не-JSON содержимое отдаётся как nil.
func JSONToMap(b []byte) map[string]any {
	if len(b) == 0 {
		return nil
	}

	var m map[string]any
	if err := json.Unmarshal(b, &m); err != nil {
		return nil
	}
	return m
}

func MapToJSON(m map[string]any) []byte {
	if m == nil {
		return nil
	}

	b, err := json.Marshal(m)
	if err != nil {
		return nil
	}
	return b
}
