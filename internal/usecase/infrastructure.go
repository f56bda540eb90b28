package usecase

import (
	"context"
	"time"
)

// FilesInfra управляет файлами пакетных загрузок (исходники и отчёты об ошибках) в S3.
type FilesInfra interface {
	StoreSourceFile(ctx context.Context, req *StoreFileReq) (*StoreFileRes, error)
	StoreErrorFile(ctx context.Context, req *StoreFileReq) (*StoreFileRes, error)
	CleanupFiles(keys []string)
	WaitForCleanup(ctx context.Context) error
}

type MessageProducer interface {
	WriteRawMessage(ctx context.Context, req *WriteRawMessageReq) error
	EnsureTopic(timeout time.Duration) error
	Close() error
}
