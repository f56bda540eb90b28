package usecase

import (
	"context"
	"encoding/json"
	"regexp"
	"strings"
	"time"

	"github.com/DRSN-tech/vendor-onboarding/internal/domain"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// Формат совпадает с CHECK-ограничением vendors_email_format в БД.
var emailRe = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// VendorUseCase реализует бизнес-логику управления поставщиками.
// Статус поставщика меняется только административно, автопереходов нет.
type VendorUseCase struct {
	vendorRepo VendorRepository
	outboxRepo OutboxRepository
	cacheRepo  CacheRepository
	dbPool     transaction.Transactional
	logger     logger.Logger
}

func NewVendorUC(
	vendorRepo VendorRepository,
	outboxRepo OutboxRepository,
	cacheRepo CacheRepository,
	dbPool transaction.Transactional,
	logger logger.Logger,
) *VendorUseCase {
	return &VendorUseCase{
		vendorRepo: vendorRepo,
		outboxRepo: outboxRepo,
		cacheRepo:  cacheRepo,
		dbPool:     dbPool,
		logger:     logger,
	}
}

// CreateVendor регистрирует поставщика и публикует событие vendor.created через outbox.
func (v *VendorUseCase) CreateVendor(ctx context.Context, req *CreateVendorReq) (*domain.Vendor, error) {
	const op = "VendorUseCase.CreateVendor"

	var err error
	if err = v.validateVendor(req); err != nil {
		return nil, e.Wrap(op, err)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	vendor := NewVendorFromReq(req)

	created, err := v.vendorRepo.Create(ctx, vendor)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = v.emitVendorEvent(ctx, VendorCreated, created); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	v.invalidateSummary(ctx, created.ID)

	return created, nil
}

// GetVendor возвращает поставщика по идентификатору.
func (v *VendorUseCase) GetVendor(ctx context.Context, vendorID string) (*domain.Vendor, error) {
	const op = "VendorUseCase.GetVendor"

	if strings.TrimSpace(vendorID) == "" {
		return nil, e.Wrap(op, e.ErrVendorIDRequired)
	}

	vendor, err := v.vendorRepo.GetByID(ctx, vendorID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return vendor, nil
}

// ListVendors возвращает всех поставщиков.
func (v *VendorUseCase) ListVendors(ctx context.Context) ([]domain.Vendor, error) {
	const op = "VendorUseCase.ListVendors"

	vendors, err := v.vendorRepo.List(ctx)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	return vendors, nil
}

// SetVendorStatus административно меняет статус поставщика.
func (v *VendorUseCase) SetVendorStatus(ctx context.Context, vendorID string, status string) (*domain.Vendor, error) {
	const op = "VendorUseCase.SetVendorStatus"

	var err error
	if strings.TrimSpace(vendorID) == "" {
		return nil, e.Wrap(op, e.ErrVendorIDRequired)
	}

	parsed, ok := domain.ParseVendorStatus(status)
	if !ok {
		return nil, e.Wrap(op, e.ErrInvalidStatus)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	updated, err := v.vendorRepo.UpdateStatus(ctx, vendorID, parsed)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = v.emitVendorEvent(ctx, VendorStatusChanged, updated); err != nil {
		return nil, e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, e.Wrap(op, err)
	}

	v.invalidateSummary(ctx, vendorID)

	return updated, nil
}

// DeleteVendor удаляет поставщика. Загрузки и ошибки валидации удаляются
// каскадом; при наличии продуктов БД отклоняет удаление (RESTRICT).
func (v *VendorUseCase) DeleteVendor(ctx context.Context, vendorID string) error {
	const op = "VendorUseCase.DeleteVendor"

	var err error
	if strings.TrimSpace(vendorID) == "" {
		return e.Wrap(op, e.ErrVendorIDRequired)
	}

	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, v.dbPool)
	if err != nil {
		return e.Wrap(op, err)
	}
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = v.vendorRepo.Delete(ctx, vendorID); err != nil {
		return e.Wrap(op, err)
	}

	payload, err := json.Marshal(map[string]any{
		"vendor_id":  vendorID,
		"deleted_at": time.Now().UTC(),
	})
	if err != nil {
		return e.Wrap(op, err)
	}

	if _, err = v.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), VendorDeleted, vendorID, payload)); err != nil {
		return e.Wrap(op, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(op, err)
	}

	v.invalidateSummary(ctx, vendorID)

	return nil
}

// emitVendorEvent пишет событие об изменении поставщика в outbox в текущей транзакции.
func (v *VendorUseCase) emitVendorEvent(ctx context.Context, eventType OutboxEventType, vendor *domain.Vendor) error {
	payload, err := json.Marshal(map[string]any{
		"vendor_id":   vendor.ID,
		"vendor_name": vendor.Name,
		"email":       vendor.Email,
		"status":      vendor.Status,
	})
	if err != nil {
		return err
	}

	_, err = v.outboxRepo.Create(ctx, NewOutboxEvent(uuid.NewString(), eventType, vendor.ID, payload))
	return err
}

// invalidateSummary сбрасывает кэш vendor_summary, ошибки только логируются.
func (v *VendorUseCase) invalidateSummary(ctx context.Context, vendorID string) {
	if err := v.cacheRepo.DeleteSummaries(ctx, []string{vendorID}); err != nil {
		v.logger.Warnf("Failed to invalidate vendor summary cache: %v", err)
	}
}

// validateVendor проверяет корректность входных данных запроса на регистрацию.
func (v *VendorUseCase) validateVendor(req *CreateVendorReq) error {
	if strings.TrimSpace(req.VendorID) == "" {
		return e.ErrVendorIDRequired
	}

	if strings.TrimSpace(req.Name) == "" {
		return e.ErrVendorNameRequired
	}

	if !emailRe.MatchString(req.Email) {
		return e.ErrInvalidEmail
	}

	return nil
}

func NewVendorFromReq(req *CreateVendorReq) *domain.Vendor {
	vendor := domain.NewVendor(req.VendorID, req.Name, req.Email)
	vendor.BusinessName = req.BusinessName
	vendor.TaxID = req.TaxID
	vendor.Address = req.Address
	vendor.City = req.City
	vendor.State = req.State
	vendor.Country = req.Country
	vendor.PostalCode = req.PostalCode

	return vendor
}
