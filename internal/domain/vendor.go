package domain

import "time"

// VendorStatus — статус поставщика, управляется только администратором.
type VendorStatus string

const (
	VendorActive          VendorStatus = "active"
	VendorSuspended       VendorStatus = "suspended"
	VendorInactive        VendorStatus = "inactive"
	VendorPendingApproval VendorStatus = "pending_approval"
)

// Vendor описывает поставщика — корневой агрегат, на который ссылаются
// продукты, загрузки и ошибки валидации.
type Vendor struct {
	ID           string // бизнес-ключ, например "VEND001"
	Name         string
	Email        string
	BusinessName string
	TaxID        string
	Address      string
	City         string
	State        string
	Country      string
	PostalCode   string
	Status       VendorStatus
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

func NewVendor(id, name, email string) *Vendor {
	return &Vendor{
		ID:     id,
		Name:   name,
		Email:  email,
		Status: VendorPendingApproval,
	}
}

// ParseVendorStatus проверяет, что строка является допустимым статусом поставщика.
func ParseVendorStatus(s string) (VendorStatus, bool) {
	switch VendorStatus(s) {
	case VendorActive, VendorSuspended, VendorInactive, VendorPendingApproval:
		return VendorStatus(s), true
	default:
		return "", false
	}
}
