package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"reception/config"
	"reception/infras/otel"
	notifDto "reception/internal/domains/notification/model/dto"
	notifService "reception/internal/domains/notification/service"
	"reception/internal/domains/request/model"
	"reception/internal/domains/request/model/dto"
	"reception/internal/domains/request/repository"
	roomModel "reception/internal/domains/room/model"
	roomService "reception/internal/domains/room/service"
	staffModel "reception/internal/domains/staff/model"
	staffRepository "reception/internal/domains/staff/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetRequest    = "request:get"
	cacheGetAllRequest = "request:gets"
	cacheCountRequest  = "request:count"
)

type Request interface {
	Create(ctx context.Context, req dto.CreateRequestRequest) (dto.RequestResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRequestsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RequestResponse, error)
	Cancel(ctx context.Context, id string) error

	GetModel(ctx context.Context, id string) (model.MaintenanceRequest, error)
	ListUnassignedUrgent(ctx context.Context) ([]model.MaintenanceRequest, error)
	MarkAssigned(ctx context.Context, id, technicianID string, scheduledStart time.Time, actor string) error
	MarkInProgress(ctx context.Context, id string, actor string) error
	MarkCompleted(ctx context.Context, id string, actualCost int64, actor string) error
	MarkClosed(ctx context.Context, id string, actor string) error
}

type serviceImpl struct {
	repo      repository.Request
	staffRepo staffRepository.Staff
	roomSvc   roomService.Room
	notifier  notifService.Notifier
	cfg       *config.Config
	cache     cache.RedisCache
	otel      otel.Otel
}

func New(
	repo repository.Request,
	staffRepo staffRepository.Staff,
	roomSvc roomService.Room,
	notifier notifService.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Request {
	return &serviceImpl{
		repo:      repo,
		staffRepo: staffRepo,
		roomSvc:   roomSvc,
		notifier:  notifier,
		cfg:       cfg,
		cache:     cache,
		otel:      otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequestRequest) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	reporter, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if reporter == constant.Empty {
		reporter = constant.SystemActor
	}

	if _, err = s.roomSvc.Get(ctx, req.RoomID); err != nil {
		log.Error().Err(err).Str("roomID", req.RoomID).Msg("room lookup failed for maintenance request")

		return res, failure.BadRequestFromString("room reference is invalid") // nolint:wrapcheck
	}

	if reporter != constant.SystemActor {
		exist, existErr := s.staffRepo.Exist(ctx, shared.FilterByID(reporter, staffModel.FieldID, staffModel.TableName))
		if existErr != nil {
			log.Error().Err(existErr).Msg("failed to check reporter")

			return res, fmt.Errorf("failed to check reporter: %w", existErr)
		}

		if !exist {
			return res, failure.BadRequestFromString("reporter reference is invalid") // nolint:wrapcheck
		}
	}

	request := req.ToModel(reporter)

	if err = s.repo.Insert(ctx, request); err != nil {
		return res, err
	}

	s.notifier.SendToDepartment(
		ctx,
		constant.DepartmentMaintenance,
		"New maintenance request",
		fmt.Sprintf("Room %s reported a %s issue (%s priority)", request.RoomID, request.Category, request.Priority),
		notificationType(request.Priority),
	)

	if !request.RoomAvailable {
		if eventErr := s.roomSvc.ApplyMaintenanceEvent(ctx, request.RoomID, roomModel.EventMaintenanceRequired); eventErr != nil {
			log.Warn().Err(eventErr).Str("roomID", request.RoomID).Msg("failed to move room into maintenance")
		}
	}

	s.invalidateLists(ctx)

	res.FromModel(request)

	return res, nil
}

func notificationType(priority model.Priority) string {
	if priority.Urgent() {
		return notifDto.TypeUrgent
	}

	return notifDto.TypeInfo
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRequestsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance requests")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance requests")

		return res, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance requests")

		return res, fmt.Errorf("failed to get maintenance requests: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance requests to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountRequest, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count maintenance requests")

		return res, fmt.Errorf("failed to count maintenance requests: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance request count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RequestResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetRequest, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for maintenance request")

		return res, nil
	}

	request, err := s.GetModel(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(request)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save maintenance request to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetModel(ctx context.Context, id string) (res model.MaintenanceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetModel")
	defer scope.End()
	defer scope.TraceIfError(err)

	request, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get maintenance request")

		return res, fmt.Errorf("failed to get maintenance request: %w", err)
	}

	if request.ID == constant.Empty {
		return res, failure.NotFound("maintenance request not found") // nolint:wrapcheck
	}

	return request, nil
}

// Cancel aborts a request from any non-terminal state. The guarded write
// keeps a racing transition from resurrecting cancelled work.
func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	request, err := s.GetModel(ctx, id)
	if err != nil {
		return err
	}

	if request.Status.Terminal() {
		return failure.Conflict(fmt.Sprintf("request in status %s cannot be cancelled", request.Status)) // nolint:wrapcheck
	}

	return s.transition(ctx, id, request.Status, model.StatusCancelled, map[string]any{}, user)
}

// ListUnassignedUrgent feeds the urgent-request sweep: open requests with
// high or emergency priority and nobody assigned, in insertion order.
func (s *serviceImpl) ListUnassignedUrgent(ctx context.Context) (res []model.MaintenanceRequest, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ListUnassignedUrgent")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusOpen,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldPriority,
				Operator: gDto.FilterOperatorIn,
				Value:    []string{string(model.PriorityHigh), string(model.PriorityEmergency)},
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldAssignedTo,
				Operator: gDto.FilterIsNull,
			},
		},
	}

	res, err = s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list unassigned urgent requests")

		return nil, fmt.Errorf("failed to list unassigned urgent requests: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) MarkAssigned(ctx context.Context, id, technicianID string, scheduledStart time.Time, actor string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkAssigned")
	defer scope.End()

	return s.transition(ctx, id, model.StatusOpen, model.StatusAssigned, map[string]any{
		model.FieldAssignedTo:    technicianID,
		model.FieldScheduledDate: scheduledStart,
	}, actor)
}

func (s *serviceImpl) MarkInProgress(ctx context.Context, id string, actor string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkInProgress")
	defer scope.End()

	return s.transition(ctx, id, model.StatusAssigned, model.StatusInProgress, map[string]any{
		model.FieldStartedAt: timezone.Now(),
	}, actor)
}

func (s *serviceImpl) MarkCompleted(ctx context.Context, id string, actualCost int64, actor string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCompleted")
	defer scope.End()

	return s.transition(ctx, id, model.StatusInProgress, model.StatusCompleted, map[string]any{
		model.FieldCompletedAt: timezone.Now(),
		model.FieldActualCost:  actualCost,
	}, actor)
}

func (s *serviceImpl) MarkClosed(ctx context.Context, id string, actor string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkClosed")
	defer scope.End()

	return s.transition(ctx, id, model.StatusCompleted, model.StatusClosed, map[string]any{}, actor)
}

// transition performs a compare-and-set status move. The expected status
// rides in the WHERE clause so only one of two racing writers wins.
func (s *serviceImpl) transition(ctx context.Context, id string, from, to model.Status, extra map[string]any, actor string) error {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Table:    model.TableName,
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    from,
	})

	fields := map[string]any{
		model.FieldStatus: to,
		"modified_at":     timezone.Now(),
		"modified_by":     actor,
	}
	for k, v := range extra {
		fields[k] = v
	}

	affected, err := s.repo.UpdateChecked(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update maintenance request status")

		return fmt.Errorf("failed to update maintenance request status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(fmt.Sprintf("request is no longer in status %s", from)) // nolint:wrapcheck
	}

	s.invalidateRequest(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()
}

func (s *serviceImpl) invalidateRequest(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetRequest, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete maintenance request from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllRequest)
		shared.InvalidateCaches(c, s.cache, cacheCountRequest)
	}()
}
