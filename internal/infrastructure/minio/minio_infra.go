package minio

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/cfg"
	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/internal/infrastructure"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/jitter"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"

	"github.com/google/uuid"
)

// MinioInfrastructure управляет хранением и очисткой файлов пакетных загрузок в MinIO.
type MinioInfrastructure struct {
	fileRepo    usecase.FileRepository
	cfg         *cfg.MinIOCfg
	logger      logger.Logger
	shutdownCtx context.Context
	wg          sync.WaitGroup
}

func NewMinioInfrastructure(fileRepo usecase.FileRepository, cfg *cfg.MinIOCfg, logger logger.Logger, shutdownCtx context.Context) *MinioInfrastructure {
	return &MinioInfrastructure{
		fileRepo:    fileRepo,
		cfg:         cfg,
		logger:      logger,
		shutdownCtx: shutdownCtx,
		wg:          sync.WaitGroup{},
	}
}

// StoreSourceFile сохраняет исходный файл пакетной загрузки.
// Ключ объекта: vendors/{vendorID}/uploads/{uploadID}/source-{uuid}.{ext}
func (m *MinioInfrastructure) StoreSourceFile(ctx context.Context, req *usecase.StoreFileReq) (*usecase.StoreFileRes, error) {
	const op = "MinioInfrastructure.StoreSourceFile"

	key, err := m.storeFile(ctx, req, "source")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &usecase.StoreFileRes{Key: key}, nil
}

// StoreErrorFile сохраняет файл отчёта об ошибках валидации.
// Ключ объекта: vendors/{vendorID}/uploads/{uploadID}/errors-{uuid}.{ext}
func (m *MinioInfrastructure) StoreErrorFile(ctx context.Context, req *usecase.StoreFileReq) (*usecase.StoreFileRes, error) {
	const op = "MinioInfrastructure.StoreErrorFile"

	key, err := m.storeFile(ctx, req, "errors")
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return &usecase.StoreFileRes{Key: key}, nil
}

func (m *MinioInfrastructure) storeFile(ctx context.Context, req *usecase.StoreFileReq, kind string) (string, error) {
	fileID := uuid.NewString()
	ext, err := infrastructure.GetExtensionFromMIME(req.File.MimeType)
	if err != nil {
		return "", fmt.Errorf("invalid mime type %s for %s: %w", req.File.MimeType, req.File.Name, err)
	}

	objKey := fmt.Sprintf("vendors/%s/uploads/%s/%s-%s.%s", req.VendorID, req.UploadID, kind, fileID, ext)
	file := domain.NewBatchFile(fileID, m.cfg.BucketName, objKey, req.File.Data, &req.File.Size, &req.File.MimeType)

	key, err := m.fileRepo.Upload(ctx, file)
	if err != nil {
		return "", fmt.Errorf("upload %s failed: %w", req.File.Name, err)
	}

	return key, nil
}

// CleanupFiles запускает фоновую очистку указанных ключей MinIO
func (m *MinioInfrastructure) CleanupFiles(keys []string) {
	if len(keys) == 0 {
		return
	}
	m.wg.Add(1)
	go m.cleanupUploadedKeys(keys)
}

// cleanupUploadedKeys удаляет указанные объекты из MinIO с экспоненциальной задержкой и jitter.
func (m *MinioInfrastructure) cleanupUploadedKeys(keys []string) {
	defer m.wg.Done() // сигнализируем завершение компенсации
	const op = "MinioInfrastructure.cleanupUploadedKeys"
	m.logger.Infof("%s: Cleaning up uploaded keys", op)

	// Создаём контекст с таймаутом на основе shutdownCtx
	ctx, cancel := context.WithTimeout(m.shutdownCtx, 30*time.Second)
	defer cancel()

	for _, key := range keys {
		for attempt := 0; attempt < 3; attempt++ {
			if err := m.fileRepo.Delete(ctx, key); err == nil {
				break // Успешно удалено
			}

			// Проверяем, не отменён ли контекст
			select {
			case <-ctx.Done():
				m.logger.Warnf("cleanup interrupted by shutdown, key=%v", key)
				return
			default:
			}

			if attempt < 2 {
				// Jitter распределяет нагрузку между конкурирующими компенсациями
				sleepTime := jitter.ExponentialBackoff(time.Second, 10*time.Second, attempt, jitter.DefaultJitter)

				select {
				case <-time.After(sleepTime):
				case <-ctx.Done():
					m.logger.Warnf("cleanup interrupted by shutdown during backoff, key=%v", key)
					return
				}
			}
		}
	}
}

// WaitForCleanup ожидает завершения всех фоновых задач очистки с учётом таймаута завершения приложения.
func (m *MinioInfrastructure) WaitForCleanup(shutdownTimeoutCtx context.Context) error {
	done := make(chan struct{})
	go func() {
		m.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-shutdownTimeoutCtx.Done():
		return fmt.Errorf("minio cleanup timeout during shutdown: %w", shutdownTimeoutCtx.Err())
	}
}
