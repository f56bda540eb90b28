package domain

import "time"

// ProductStatus — статус продукта в каталоге.
// Переходы active <-> out_of_stock выполняет триггер по остатку,
// остальные значения выставляются только вручную.
type ProductStatus string

const (
	ProductActive       ProductStatus = "active"
	ProductInactive     ProductStatus = "inactive"
	ProductOutOfStock   ProductStatus = "out_of_stock"
	ProductDiscontinued ProductStatus = "discontinued"
)

// Product описывает провалидированный продукт поставщика.
type Product struct {
	ID                  int64
	VendorID            string
	VendorProductID     string // идентификатор в системе поставщика
	Name                string
	Category            string
	Subcategory         string
	Description         string
	SKU                 string // уникален в рамках всей платформы
	Brand               string
	PriceCents          int64 // цена хранится в копейках
	CompareAtPriceCents *int64
	StockQuantity       int32
	Unit                string
	WeightGrams         *int64
	Dimensions          *string
	ImageS3Key          *string
	Status              ProductStatus
	UploadID            *string
	CreatedAt           time.Time
	UpdatedAt           *time.Time
}

func NewProduct(vendorID, vendorProductID, name, category, sku string, priceCents int64, stock int32) *Product {
	return &Product{
		VendorID:        vendorID,
		VendorProductID: vendorProductID,
		Name:            name,
		Category:        category,
		SKU:             sku,
		PriceCents:      priceCents,
		StockQuantity:   stock,
		Status:          ProductActive,
	}
}

// ParseProductStatus проверяет, что строка является допустимым статусом продукта.
func ParseProductStatus(s string) (ProductStatus, bool) {
	switch ProductStatus(s) {
	case ProductActive, ProductInactive, ProductOutOfStock, ProductDiscontinued:
		return ProductStatus(s), true
	default:
		return "", false
	}
}
