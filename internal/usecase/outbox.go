package usecase

import "time"

type OutboxStatus string

const (
	Pending    OutboxStatus = "pending"
	Processing OutboxStatus = "processing"
	Processed  OutboxStatus = "processed"
)

// OutboxEventType — тип события изменения строки, публикуемого в Kafka.
type OutboxEventType string

const (
	VendorCreated        OutboxEventType = "vendor.created"
	VendorStatusChanged  OutboxEventType = "vendor.status_changed"
	VendorDeleted        OutboxEventType = "vendor.deleted"
	ProductCreated       OutboxEventType = "product.created"
	ProductStockChanged  OutboxEventType = "product.stock_changed"
	ProductStatusChanged OutboxEventType = "product.status_changed"
	UploadStarted        OutboxEventType = "upload.started"
	UploadCompleted      OutboxEventType = "upload.completed"
)

// OutboxEvent — событие в транзакционном outbox.
// Записывается в той же транзакции, что и породившее его изменение.
type OutboxEvent struct {
	ID          int64
	EventID     string // uuid
	EventType   OutboxEventType
	AggregateID string // ключ партиционирования Kafka (vendor_id, upload_id, product id)
	Payload     []byte // JSON
	Status      OutboxStatus
	CreatedAt   time.Time
	ProcessedAt *time.Time
}

func NewOutboxEvent(eventID string, eventType OutboxEventType, aggregateID string, payload []byte) *OutboxEvent {
	return &OutboxEvent{
		EventID:     eventID,
		EventType:   eventType,
		AggregateID: aggregateID,
		Payload:     payload,
		Status:      Pending,
	}
}
