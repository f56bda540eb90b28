package converter

import "time"

// VendorModel представляет запись таблицы vendors в PostgreSQL.
type VendorModel struct {
	ID           string     `db:"vendor_id"`
	Name         string     `db:"vendor_name"`
	Email        string     `db:"email"`
	BusinessName *string    `db:"business_name"`
	TaxID        *string    `db:"tax_id"`
	Address      *string    `db:"address"`
	City         *string    `db:"city"`
	State        *string    `db:"state"`
	Country      *string    `db:"country"`
	PostalCode   *string    `db:"postal_code"`
	Status       string     `db:"status"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    *time.Time `db:"updated_at"`
}

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID                  int64      `db:"id"`
	VendorID            string     `db:"vendor_id"`
	VendorProductID     string     `db:"vendor_product_id"`
	Name                string     `db:"name"`
	Category            string     `db:"category"`
	Subcategory         *string    `db:"subcategory"`
	Description         *string    `db:"description"`
	SKU                 string     `db:"sku"`
	Brand               *string    `db:"brand"`
	PriceCents          int64      `db:"price_cents"`
	CompareAtPriceCents *int64     `db:"compare_at_price_cents"`
	StockQuantity       int32      `db:"stock_quantity"`
	Unit                *string    `db:"unit"`
	WeightGrams         *int64     `db:"weight_grams"`
	Dimensions          *string    `db:"dimensions"`
	ImageS3Key          *string    `db:"image_s3_key"`
	Status              string     `db:"status"`
	UploadID            *string    `db:"upload_id"`
	CreatedAt           time.Time  `db:"created_at"`
	UpdatedAt           *time.Time `db:"updated_at"`
}

// UploadModel представляет запись таблицы upload_history в PostgreSQL.
type UploadModel struct {
	ID                        string     `db:"upload_id"`
	VendorID                  string     `db:"vendor_id"`
	FileName                  string     `db:"file_name"`
	S3Key                     string     `db:"s3_key"`
	TotalRecords              int32      `db:"total_records"`
	ValidRecords              int32      `db:"valid_records"`
	ErrorRecords              int32      `db:"error_records"`
	Status                    string     `db:"status"`
	ErrorFileS3Key            *string    `db:"error_file_s3_key"`
	UploadDate                time.Time  `db:"upload_date"`
	ProcessingStartedAt       *time.Time `db:"processing_started_at"`
	ProcessingCompletedAt     *time.Time `db:"processing_completed_at"`
	ProcessingDurationSeconds *int32     `db:"processing_duration_seconds"`
	Metadata                  []byte     `db:"metadata"`
}

// ValidationErrorModel представляет запись таблицы validation_errors в PostgreSQL.
type ValidationErrorModel struct {
	ID              int64     `db:"id"`
	UploadID        string    `db:"upload_id"`
	VendorID        string    `db:"vendor_id"`
	RowNumber       int32     `db:"row_number"`
	VendorProductID *string   `db:"vendor_product_id"`
	ErrorType       string    `db:"error_type"`
	ErrorField      *string   `db:"error_field"`
	ErrorMessage    string    `db:"error_message"`
	RawData         []byte    `db:"raw_data"`
	CreatedAt       time.Time `db:"created_at"`
}

// CategoryModel представляет запись таблицы categories в PostgreSQL.
type CategoryModel struct {
	ID             int64     `db:"id"`
	Name           string    `db:"name"`
	ParentCategory *string   `db:"parent_category"`
	Description    *string   `db:"description"`
	IsActive       bool      `db:"is_active"`
	CreatedAt      time.Time `db:"created_at"`
}

// OutboxEventModel представляет запись таблицы outbox_events в PostgreSQL.
type OutboxEventModel struct {
	ID          int64      `db:"id"`
	EventID     string     `db:"event_id"`
	EventType   string     `db:"event_type"`
	AggregateID string     `db:"aggregate_id"`
	Payload     []byte     `db:"payload"`
	Status      string     `db:"status"`
	CreatedAt   time.Time  `db:"created_at"`
	ProcessedAt *time.Time `db:"processed_at"`
}
