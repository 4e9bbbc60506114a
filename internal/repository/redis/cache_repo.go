package redis

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/storefront-backend/internal/cfg"
	"github.com/DRSN-tech/storefront-backend/internal/repository/redis/converter"
	"github.com/DRSN-tech/storefront-backend/internal/usecase"
	"github.com/DRSN-tech/storefront-backend/pkg/clients"
	"github.com/DRSN-tech/storefront-backend/pkg/e"
	"github.com/DRSN-tech/storefront-backend/pkg/logger"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const catalogMetaKey = "catalog:meta"

// CacheRepo кэширует агрегаты каталога (диапазон цен, множество цветов)
// с TTL. Промах и ошибка Redis неразличимы для вызывающей стороны.
type CacheRepo struct {
	client *clients.RedisClient
	conv   converter.CatalogMetaConverter
	cfg    *cfg.RedisCfg
	logger logger.Logger
}

func NewCacheRepo(client *clients.RedisClient, conv converter.CatalogMetaConverter,
	cfg *cfg.RedisCfg, logger logger.Logger) *CacheRepo {
	return &CacheRepo{
		client: client,
		conv:   conv,
		cfg:    cfg,
		logger: logger,
	}
}

// GetCatalogMeta возвращает закэшированные агрегаты или (nil, err) при промахе.
func (c *CacheRepo) GetCatalogMeta(ctx context.Context) (*usecase.CatalogMeta, error) {
	data, err := c.client.Client.Get(ctx, catalogMetaKey).Bytes()
	if err != nil {
		if !errors.Is(err, r.Nil) {
			c.logger.Warnf("Redis GET failed: %v", e.Wrap(whereami.WhereAmI(), err))
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var model converter.CatalogMetaRedisModel
	if err := json.Unmarshal(data, &model); err != nil {
		c.logger.Warnf("Redis unmarshal failed: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return c.conv.ToUseCase(&model), nil
}

// SetCatalogMeta кэширует агрегаты с заданным TTL.
// Ошибки сериализации/записи логируются, но не возвращаются как фатальные.
func (c *CacheRepo) SetCatalogMeta(ctx context.Context, meta *usecase.CatalogMeta) error {
	model := c.conv.ToRedisModel(meta)

	data, err := json.Marshal(model)
	if err != nil {
		c.logger.Warnf("Failed to marshal catalog meta: %v", e.Wrap(whereami.WhereAmI(), err))
		return nil
	}

	if err := c.client.Client.Set(ctx, catalogMetaKey, data, c.cfg.CatalogTTL).Err(); err != nil {
		c.logger.Warnf("Redis SET failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}

// DeleteCatalogMeta сбрасывает кэш агрегатов после мутации каталога.
func (c *CacheRepo) DeleteCatalogMeta(ctx context.Context) error {
	if err := c.client.Client.Del(ctx, catalogMetaKey).Err(); err != nil {
		c.logger.Warnf("Redis DEL failed: %v", e.Wrap(whereami.WhereAmI(), err))
	}

	return nil
}
