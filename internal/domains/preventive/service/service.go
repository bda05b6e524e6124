package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reception/config"
	"reception/infras/otel"
	"reception/internal/domains/preventive/model"
	"reception/internal/domains/preventive/model/dto"
	"reception/internal/domains/preventive/repository"
	requestDto "reception/internal/domains/request/model/dto"
	requestService "reception/internal/domains/request/service"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetSchedule    = "preventive:get"
	cacheGetAllSchedule = "preventive:gets"
	cacheCountSchedule  = "preventive:count"
)

type Preventive interface {
	Create(ctx context.Context, req dto.CreateScheduleRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetSchedulesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ScheduleResponse, error)
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Scan(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo       repository.Preventive
	requestSvc requestService.Request
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Preventive,
	requestSvc requestService.Request,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Preventive {
	return &serviceImpl{
		repo:       repo,
		requestSvc: requestSvc,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateScheduleRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		return err
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetSchedulesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for preventive schedules")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count preventive schedules")

		return res, fmt.Errorf("failed to count preventive schedules: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get preventive schedules")

		return res, fmt.Errorf("failed to get preventive schedules: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save preventive schedules to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountSchedule, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count preventive schedules")

		return res, fmt.Errorf("failed to count preventive schedules: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save preventive schedule count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ScheduleResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetSchedule, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for preventive schedule")

		return res, nil
	}

	schedule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get preventive schedule")

		return res, fmt.Errorf("failed to get preventive schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return res, failure.NotFound("preventive schedule not found") // nolint:wrapcheck
	}

	res.FromModel(schedule)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save preventive schedule to cache")
		}
	}()

	return res, nil
}

// MarkCompleted closes the current cycle: last_performed moves to now, the
// next due date comes from the frequency, and the item returns to scheduled.
func (s *serviceImpl) MarkCompleted(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".MarkCompleted")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if user == constant.Empty {
		user = constant.SystemActor
	}

	schedule, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get preventive schedule")

		return fmt.Errorf("failed to get preventive schedule: %w", err)
	}

	if schedule.ID == constant.Empty {
		return failure.NotFound("preventive schedule not found") // nolint:wrapcheck
	}

	now := timezone.Now()

	if err := s.repo.Update(ctx, map[string]any{
		model.FieldLastPerformed: now,
		model.FieldNextDue:       schedule.Frequency.NextFrom(now),
		model.FieldStatus:        model.StatusScheduled,
		"modified_at":            now,
		"modified_by":            user,
	}, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to complete preventive schedule")

		return fmt.Errorf("failed to complete preventive schedule: %w", err)
	}

	s.invalidateSchedule(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check preventive schedule")

		return fmt.Errorf("failed to check preventive schedule: %w", err)
	}

	if !exist {
		return failure.NotFound("preventive schedule not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete preventive schedule")

		return fmt.Errorf("failed to delete preventive schedule: %w", err)
	}

	s.invalidateSchedule(ctx, id)

	return nil
}

// Scan finds schedules whose due date has passed while still in scheduled
// status, flips each to overdue, and raises one maintenance request per flip.
// The guarded status write is what makes repeated sweeps safe: an item
// already overdue no longer matches, so it never spawns a second request.
// Returns the number of requests raised.
func (s *serviceImpl) Scan(ctx context.Context) (generated int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Scan")
	defer scope.End()
	defer scope.TraceIfError(err)

	now := timezone.Now()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldNextDue,
				Operator: gDto.FilterOperatorLessEq,
				Value:    now,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorEq,
				Value:    model.StatusScheduled,
			},
		},
	}

	due, err := s.repo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to list due preventive schedules")

		return 0, fmt.Errorf("failed to list due preventive schedules: %w", err)
	}

	for _, schedule := range due {
		markFilter := shared.FilterByID(schedule.ID, model.FieldID, model.TableName)
		markFilter.Filters = append(markFilter.Filters, gDto.Filter{
			Table:    model.TableName,
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    model.StatusScheduled,
		})

		affected, markErr := s.repo.UpdateChecked(ctx, map[string]any{
			model.FieldStatus: model.StatusOverdue,
			"modified_at":     now,
			"modified_by":     constant.SystemActor,
		}, markFilter)
		if markErr != nil {
			log.Error().Err(markErr).Str("scheduleID", schedule.ID).Msg("failed to mark schedule overdue")

			continue
		}

		if affected == 0 {
			continue
		}

		createReq := requestDto.CreateRequestRequest{
			RoomID:      schedule.RoomID,
			Category:    schedule.MaintenanceType,
			Description: fmt.Sprintf("Preventive maintenance due: %s (%s cycle)", schedule.MaintenanceType, schedule.Frequency),
			Priority:    "normal",
		}

		if _, createErr := s.requestSvc.Create(ctx, createReq); createErr != nil {
			log.Error().Err(createErr).Str("scheduleID", schedule.ID).Msg("failed to raise preventive request")

			// Without a request the overdue flip must not stick, or the
			// schedule falls out of every future sweep.
			if revertErr := s.repo.Update(ctx, map[string]any{
				model.FieldStatus: model.StatusScheduled,
				"modified_at":     now,
				"modified_by":     constant.SystemActor,
			}, shared.FilterByID(schedule.ID, model.FieldID, model.TableName)); revertErr != nil {
				log.Error().Err(revertErr).Str("scheduleID", schedule.ID).Msg("failed to revert overdue schedule")
			}

			continue
		}

		generated++
	}

	if generated > 0 {
		s.invalidateLists(ctx)
	}

	return generated, nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
		shared.InvalidateCaches(c, s.cache, cacheCountSchedule)
	}()
}

func (s *serviceImpl) invalidateSchedule(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetSchedule, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete preventive schedule from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllSchedule)
		shared.InvalidateCaches(c, s.cache, cacheCountSchedule)
	}()
}
