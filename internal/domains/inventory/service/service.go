package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reception/config"
	"reception/infras/otel"
	"reception/internal/domains/inventory/model"
	"reception/internal/domains/inventory/model/dto"
	"reception/internal/domains/inventory/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetItem    = "inventory:get"
	cacheGetAllItem = "inventory:gets"
	cacheCountItem  = "inventory:count"
)

type Inventory interface {
	Create(ctx context.Context, req dto.CreateInventoryItemRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetInventoryItemsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.InventoryItemResponse, error)
	Update(ctx context.Context, req dto.UpdateInventoryItemRequest, id string) error
	Delete(ctx context.Context, id string) error
	UnitCostsByCode(ctx context.Context, codes []string) (map[string]int64, error)
	ConsumeStock(ctx context.Context, code string, quantity int) error
	ListLowStock(ctx context.Context) ([]dto.InventoryItemResponse, error)
}

type serviceImpl struct {
	repo  repository.Inventory
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Inventory, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Inventory {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateInventoryItemRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByField(model.FieldCode, model.TableName, req.Code))
	if err != nil {
		log.Error().Err(err).Msg("failed to check item code")

		return fmt.Errorf("failed to check item code: %w", err)
	}

	if exist {
		return failure.Conflict("item code already registered") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetInventoryItemsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory items")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items")

		return res, fmt.Errorf("failed to get inventory items: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory items to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountItem, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count inventory items")

		return res, fmt.Errorf("failed to count inventory items: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.InventoryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetItem, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for inventory item")

		return res, nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item")

		return res, fmt.Errorf("failed to get inventory item: %w", err)
	}

	if item.ID == constant.Empty {
		return res, failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	res.FromModel(item)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save inventory item to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateInventoryItemRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check inventory item existence")

		return fmt.Errorf("failed to check inventory item existence: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	if err := s.repo.Update(ctx, shared.TransformFields(req, user), filter); err != nil {
		log.Error().Err(err).Msg("failed to update inventory item")

		return fmt.Errorf("failed to update inventory item: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if inventory item exists")

		return fmt.Errorf("failed to check if inventory item exists: %w", err)
	}

	if !exist {
		return failure.NotFound("inventory item not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete inventory item")

		return fmt.Errorf("failed to delete inventory item: %w", err)
	}

	s.invalidateItem(ctx, id)

	return nil
}

// UnitCostsByCode resolves part codes to unit costs in one round trip. Codes
// with no matching item are simply absent from the result, callers decide how
// to treat the gap.
func (s *serviceImpl) UnitCostsByCode(ctx context.Context, codes []string) (res map[string]int64, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UnitCostsByCode")
	defer scope.End()
	defer scope.TraceIfError(err)

	res = map[string]int64{}
	if len(codes) == 0 {
		return res, nil
	}

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldCode,
				Operator: gDto.FilterOperatorIn,
				Value:    codes,
			},
		},
	}

	items, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory items by code")

		return nil, fmt.Errorf("failed to get inventory items by code: %w", err)
	}

	for _, item := range items {
		res[item.Code] = item.UnitCost
	}

	return res, nil
}

// ConsumeStock decrements the on-hand count for a part. Unknown codes are
// ignored so part consumption never blocks a completed repair.
func (s *serviceImpl) ConsumeStock(ctx context.Context, code string, quantity int) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ConsumeStock")
	defer scope.End()
	defer scope.TraceIfError(err)

	if quantity <= 0 {
		return nil
	}

	item, err := s.repo.Get(ctx, shared.FilterByField(model.FieldCode, model.TableName, code))
	if err != nil {
		log.Error().Err(err).Msg("failed to get inventory item for stock consumption")

		return fmt.Errorf("failed to get inventory item for stock consumption: %w", err)
	}

	if item.ID == constant.Empty {
		log.Warn().Str("code", code).Msg("stock consumption skipped, unknown part code")

		return nil
	}

	remaining := item.CurrentStock - quantity
	if remaining < 0 {
		remaining = 0
	}

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldCurrentStock: remaining,
		"modified_at":           timezone.Now(),
		"modified_by":           constant.SystemActor,
	}, shared.FilterByID(item.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to decrement stock")

		return fmt.Errorf("failed to decrement stock: %w", err)
	}

	if remaining <= item.ReorderPoint {
		log.Warn().
			Str("code", item.Code).
			Int("remaining", remaining).
			Int("reorderPoint", item.ReorderPoint).
			Msg("inventory item reached reorder point")
	}

	s.invalidateItem(ctx, item.ID)

	return nil
}

// ListLowStock returns every item at or below its reorder point.
func (s *serviceImpl) ListLowStock(ctx context.Context) (res []dto.InventoryItemResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListLowStock")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Operator: gDto.FilterPlainQuery,
				Value:    "inventory_items.current_stock <= inventory_items.reorder_point",
			},
		},
	}

	items, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list low stock items")

		return nil, fmt.Errorf("failed to list low stock items: %w", err)
	}

	res = make([]dto.InventoryItemResponse, len(items))
	for i, item := range items {
		res[i].FromModel(item)
	}

	return res, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()
}

func (s *serviceImpl) invalidateItem(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetItem, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete inventory item from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllItem)
		shared.InvalidateCaches(c, s.cache, cacheCountItem)
	}()
}
