package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/DRSN-tech/vendor-onboarding/internal/cfg"
	"github.com/DRSN-tech/vendor-onboarding/internal/repository/redis/converter"
	"github.com/DRSN-tech/vendor-onboarding/internal/usecase"
	"github.com/DRSN-tech/vendor-onboarding/pkg/clients"
	"github.com/DRSN-tech/vendor-onboarding/pkg/e"
	"github.com/DRSN-tech/vendor-onboarding/pkg/logger"
	"github.com/jimlawless/whereami"
)

type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.VendorSummaryConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.VendorSummaryConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetSummaries возвращает закэшированные сводки по поставщикам,
// игнорируя промахи и логируя их
func (r *CacheRepo) GetSummaries(ctx context.Context, vendorIDs []string) (map[string]usecase.VendorSummary, error) {
	keys := r.buildSummaryCacheKeys(vendorIDs)

	values, err := r.client.Client.MGet(ctx, keys...).Result()
	if err != nil {
		r.logger.Warnf("Redis MGET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	result := make(map[string]usecase.VendorSummary, len(values))
	for i, val := range values {
		data, err := redisValueToBytes(val, keys[i])
		if err != nil {
			r.logger.Warnf("%v", e.Wrap(whereami.WhereAmI(), err))
		}

		if data == nil {
			continue // cache miss
		}

		model, err := r.unmarshalSummaryFromCache(data)
		if err != nil {
			r.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		if model.VendorID != vendorIDs[i] {
			r.logger.Warnf("Cache ID mismatch: key_id: %s, model_id: %s", vendorIDs[i], model.VendorID)
			if err := r.client.Client.Del(context.Background(), keys[i]).Err(); err != nil {
				r.logger.Warnf("Redis del failed: %v", e.Wrap(whereami.WhereAmI(), err))
			}
			continue // cache miss
		}
		result[vendorIDs[i]] = *r.conv.ToUseCase(model)
	}

	return result, nil
}

// SetSummaries атомарно кэширует несколько сводок с заданным TTL.
// Игнорирует ошибки сериализации/записи, логируя их.
func (r *CacheRepo) SetSummaries(ctx context.Context, summaries []usecase.VendorSummary) error {
	models := r.conv.ToArrRedisModel(summaries)

	pipeline := r.client.Client.Pipeline()
	for _, model := range models {
		data, err := r.marshalSummaryForCache(model)
		if err != nil {
			r.logger.Warnf("Failed to marshal summary for caching (Vendor ID: %s): %v", model.VendorID, e.Wrap(whereami.WhereAmI(), err))
			continue
		}

		key := r.summaryKey(model.VendorID)
		pipeline.Set(ctx, key, data, r.cfg.SummaryTTL)
	}

	if _, err := pipeline.Exec(ctx); err != nil {
		r.logger.Warnf("Cache pipeline failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteSummaries удаляет сводки из кэша по ID поставщиков
func (r *CacheRepo) DeleteSummaries(ctx context.Context, vendorIDs []string) error {
	keys := r.buildSummaryCacheKeys(vendorIDs)

	if err := r.client.Client.Del(ctx, keys...).Err(); err != nil {
		r.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// marshalSummaryForCache сериализует сводку в JSON для кэша
func (r *CacheRepo) marshalSummaryForCache(model converter.VendorSummaryRedisModel) ([]byte, error) {
	data, err := json.Marshal(model)
	if err != nil {
		return nil, err
	}

	return data, nil
}

// unmarshalSummaryFromCache десериализует JSON из кэша в модель сводки
func (r *CacheRepo) unmarshalSummaryFromCache(data []byte) (*converter.VendorSummaryRedisModel, error) {
	var model converter.VendorSummaryRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		return nil, err
	}

	return &model, nil
}

// buildSummaryCacheKeys формирует Redis-ключи из ID поставщиков
func (r *CacheRepo) buildSummaryCacheKeys(vendorIDs []string) []string {
	keys := make([]string, len(vendorIDs))
	for i, id := range vendorIDs {
		keys[i] = r.summaryKey(id)
	}

	return keys
}

// summaryKey возвращает Redis-ключ для сводки одного поставщика
func (r *CacheRepo) summaryKey(vendorID string) string {
	return fmt.Sprintf("vendor_summary:%s", vendorID)
}

// redisValueToBytes конвертирует значение из Redis в []byte.
// Поддерживает string и []byte, возвращает ошибку для неизвестных типов.
func redisValueToBytes(val interface{}, key string) ([]byte, error) {
	switch v := val.(type) {
	case string:
		return []byte(v), nil
	case []byte:
		return v, nil
	case nil:
		return nil, nil // cache miss
	default:
		return nil, fmt.Errorf("unexpected Redis value type for key %s: %T", key, val)
	}
}
