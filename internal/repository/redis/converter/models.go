package converter

import "time"

type VendorSummaryRedisModel struct {
	VendorID       string     `json:"vendor_id"`
	VendorName     string     `json:"vendor_name"`
	Email          string     `json:"email"`
	Status         string     `json:"status"`
	ProductCount   int64      `json:"product_count"`
	UploadCount    int64      `json:"upload_count"`
	TotalErrors    int64      `json:"total_errors"`
	LastUploadDate *time.Time `json:"last_upload_date,omitempty"`
}
