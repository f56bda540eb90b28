package domain

// BatchFile описывает файл пакетной загрузки, который хранится в S3
type BatchFile struct {
	ID        string // uuid
	Bucket    string
	ObjectKey string
	Bytes     []byte
	// Передайте значение -1 в Size, если размер потока неизвестен
	// (внимание: при передаче значения -1 будет выделен большой объем памяти).
	Size        *int64
	ContentType *string // Example: "text/csv"
}

func NewBatchFile(id string, bucket string, objectKey string, data []byte, size *int64, contentType *string) *BatchFile {
	return &BatchFile{
		ID:          id,
		Bucket:      bucket,
		ObjectKey:   objectKey,
		Bytes:       data,
		Size:        size,
		ContentType: contentType,
	}
}
