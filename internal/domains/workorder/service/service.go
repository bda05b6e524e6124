package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"reception/config"
	"reception/infras/otel"
	"reception/internal/domains/catalog"
	inventoryService "reception/internal/domains/inventory/service"
	notifDto "reception/internal/domains/notification/model/dto"
	notifService "reception/internal/domains/notification/service"
	requestService "reception/internal/domains/request/service"
	roomModel "reception/internal/domains/room/model"
	roomService "reception/internal/domains/room/service"
	staffService "reception/internal/domains/staff/service"
	"reception/internal/domains/workorder/model"
	"reception/internal/domains/workorder/model/dto"
	"reception/internal/domains/workorder/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/failure"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetOrder    = "workorder:get"
	cacheGetAllOrder = "workorder:gets"
	cacheCountOrder  = "workorder:count"
)

type WorkOrder interface {
	Assign(ctx context.Context, req dto.AssignRequest) (dto.WorkOrderResponse, error)
	Start(ctx context.Context, id string, req dto.StartWorkRequest) error
	Complete(ctx context.Context, id string, req dto.CompleteWorkRequest) error
	Verify(ctx context.Context, id string, req dto.VerifyWorkRequest) error
	Get(ctx context.Context, id string) (dto.WorkOrderResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetWorkOrdersResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	IsAvailable(ctx context.Context, technicianID string) bool
	AssignUrgent(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo         repository.WorkOrder
	requestSvc   requestService.Request
	staffSvc     staffService.Staff
	inventorySvc inventoryService.Inventory
	roomSvc      roomService.Room
	notifier     notifService.Notifier
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.WorkOrder,
	requestSvc requestService.Request,
	staffSvc staffService.Staff,
	inventorySvc inventoryService.Inventory,
	roomSvc roomService.Room,
	notifier notifService.Notifier,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) WorkOrder {
	return &serviceImpl{
		repo:         repo,
		requestSvc:   requestSvc,
		staffSvc:     staffSvc,
		inventorySvc: inventorySvc,
		roomSvc:      roomSvc,
		notifier:     notifier,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// IsAvailable reports whether a technician has spare capacity. A technician
// is full at the configured cap of scheduled plus in-progress orders. Store
// errors count as unavailable so an unknown load never gets more work.
func (s *serviceImpl) IsAvailable(ctx context.Context, technicianID string) bool {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()

	count, err := s.repo.Count(ctx, activeOrdersFilter(technicianID))
	if err != nil {
		log.Error().Err(err).Str("technicianID", technicianID).Msg("failed to count active work orders")

		return false
	}

	return count < s.cfg.TechnicianCap()
}

func activeOrdersFilter(technicianID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldTechnicianID,
				Operator: gDto.FilterOperatorEq,
				Value:    technicianID,
			},
			gDto.Filter{
				Table:    model.TableName,
				Field:    model.FieldStatus,
				Operator: gDto.FilterOperatorIn,
				Value:    model.ActiveStatuses(),
			},
		},
	}
}

// Assign creates a work order for an open request. The capacity cap applies
// here the same as in the urgent sweep; required parts and tools come from
// the category catalog.
func (s *serviceImpl) Assign(ctx context.Context, req dto.AssignRequest) (res dto.WorkOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	if actor == constant.Empty {
		actor = constant.SystemActor
	}

	request, err := s.requestSvc.GetModel(ctx, req.RequestID)
	if err != nil {
		return res, err
	}

	if _, err = s.staffSvc.Get(ctx, req.TechnicianID); err != nil {
		return res, err
	}

	if !s.IsAvailable(ctx, req.TechnicianID) {
		return res, failure.Conflict("technician is at capacity") // nolint:wrapcheck
	}

	requirements := catalog.Lookup(request.Category)
	order := req.ToModel(requirements.RequiredParts, requirements.RequiredTools, actor)

	if err = s.repo.Insert(ctx, order); err != nil {
		return res, err
	}

	// Losing the request CAS leaves the freshly inserted order orphaned in
	// scheduled status, where it would count against the technician's cap.
	if err = s.requestSvc.MarkAssigned(ctx, req.RequestID, req.TechnicianID, req.ScheduledStart, actor); err != nil {
		if delErr := s.repo.Delete(ctx, shared.FilterByID(order.ID, model.FieldID, model.TableName)); delErr != nil {
			log.Error().Err(delErr).
				Str("workOrderID", order.ID).
				Str("requestID", req.RequestID).
				Msg("failed to remove work order after losing the assignment race")
		}

		return res, err
	}

	s.notifier.SendToUser(
		ctx,
		req.TechnicianID,
		"Work order assigned",
		fmt.Sprintf("You have been assigned a %s job for room %s", request.Category, request.RoomID),
		notifDto.TypeInfo,
		[]string{notifDto.ChannelPush},
	)

	s.invalidateLists(ctx)

	res.FromModel(order)

	return res, nil
}

// Start moves the order into execution. Ownership is part of the lookup, a
// technician cannot start someone else's order.
func (s *serviceImpl) Start(ctx context.Context, id string, req dto.StartWorkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getOwnedOrder(ctx, id, req.TechnicianID)
	if err != nil {
		return err
	}

	if err = s.transition(ctx, order.ID, model.StatusScheduled, model.StatusInProgress, map[string]any{
		model.FieldActualStart: timezone.Now(),
	}, req.TechnicianID); err != nil {
		return err
	}

	return s.requestSvc.MarkInProgress(ctx, order.RequestID, req.TechnicianID)
}

// Complete records the executed work and settles the cost. Part lines with
// unknown inventory codes contribute zero, logged but never fatal.
func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteWorkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer scope.TraceIfError(err)

	order, err := s.getOwnedOrder(ctx, id, req.TechnicianID)
	if err != nil {
		return err
	}

	actualCost, err := s.calculateCost(ctx, req.PartsUsed, req.LaborHours)
	if err != nil {
		return err
	}

	if err = s.transition(ctx, order.ID, model.StatusInProgress, model.StatusCompleted, map[string]any{
		model.FieldActualEnd:     timezone.Now(),
		model.FieldWorkPerformed: req.WorkPerformed,
		model.FieldPartsUsed:     model.PartUsageList(req.PartsUsed),
		model.FieldLaborHours:    req.LaborHours,
	}, req.TechnicianID); err != nil {
		return err
	}

	if err = s.requestSvc.MarkCompleted(ctx, order.RequestID, actualCost, req.TechnicianID); err != nil {
		return err
	}

	for _, part := range req.PartsUsed {
		if consumeErr := s.inventorySvc.ConsumeStock(ctx, part.Code, part.Quantity); consumeErr != nil {
			log.Warn().Err(consumeErr).Str("code", part.Code).Msg("failed to consume part stock")
		}
	}

	request, err := s.requestSvc.GetModel(ctx, order.RequestID)
	if err != nil {
		return err
	}

	if eventErr := s.roomSvc.ApplyMaintenanceEvent(ctx, request.RoomID, roomModel.EventMaintenanceCompleted); eventErr != nil {
		log.Warn().Err(eventErr).Str("roomID", request.RoomID).Msg("failed to release room after maintenance")
	}

	return nil
}

// calculateCost prices the completion: part quantities times inventory unit
// cost, plus labor hours at the configured rate, in currency minor units.
func (s *serviceImpl) calculateCost(ctx context.Context, partsUsed []model.PartUsage, laborHours float64) (int64, error) {
	codes := make([]string, len(partsUsed))
	for i, part := range partsUsed {
		codes[i] = part.Code
	}

	unitCosts, err := s.inventorySvc.UnitCostsByCode(ctx, codes)
	if err != nil {
		return 0, err
	}

	total := decimal.Zero

	for _, part := range partsUsed {
		unitCost, ok := unitCosts[part.Code]
		if !ok {
			log.Warn().Str("code", part.Code).Msg("unknown part code priced at zero")

			continue
		}

		total = total.Add(decimal.NewFromInt(int64(part.Quantity)).Mul(decimal.NewFromInt(unitCost)))
	}

	labor := decimal.NewFromFloat(laborHours).Mul(decimal.NewFromInt(s.cfg.LaborRate()))

	return total.Add(labor).Round(0).IntPart(), nil
}

// Verify closes out a completed order. Anything not exactly in completed is
// reported as absent, the caller cannot tell an unstarted order from a
// mismatched one.
func (s *serviceImpl) Verify(ctx context.Context, id string, req dto.VerifyWorkRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Verify")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Table:    model.TableName,
		Field:    model.FieldStatus,
		Operator: gDto.FilterOperatorEq,
		Value:    model.StatusCompleted,
	})

	order, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work order for verification")

		return fmt.Errorf("failed to get work order for verification: %w", err)
	}

	if order.ID == constant.Empty {
		return failure.NotFound("completed work order not found") // nolint:wrapcheck
	}

	if err = s.transition(ctx, order.ID, model.StatusCompleted, model.StatusVerified, map[string]any{
		model.FieldVerifiedBy:        req.InspectorID,
		model.FieldVerificationNotes: req.Notes,
	}, req.InspectorID); err != nil {
		return err
	}

	return s.requestSvc.MarkClosed(ctx, order.RequestID, req.InspectorID)
}

// AssignUrgent sweeps open high and emergency priority requests and hands
// each to the first technician with spare capacity. Requests stay unassigned
// when the whole roster is full. Returns the number of assignments made.
func (s *serviceImpl) AssignUrgent(ctx context.Context) (assigned int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignUrgent")
	defer scope.End()
	defer scope.TraceIfError(err)

	requests, err := s.requestSvc.ListUnassignedUrgent(ctx)
	if err != nil {
		return 0, err
	}

	if len(requests) == 0 {
		return 0, nil
	}

	technicians, err := s.staffSvc.ListTechnicians(ctx)
	if err != nil {
		return 0, err
	}

	for _, request := range requests {
		for _, technician := range technicians {
			if !s.IsAvailable(ctx, technician.ID) {
				continue
			}

			assignReq := dto.AssignRequest{
				RequestID:      request.ID,
				TechnicianID:   technician.ID,
				ScheduledStart: timezone.Now(),
			}

			if _, assignErr := s.Assign(ctx, assignReq); assignErr != nil {
				log.Warn().Err(assignErr).Str("requestID", request.ID).Msg("urgent assignment failed")

				continue
			}

			assigned++

			break
		}
	}

	if assigned > 0 {
		s.notifier.SendToDepartment(
			ctx,
			constant.DepartmentMaintenance,
			"Urgent requests assigned",
			fmt.Sprintf("%d urgent maintenance requests were auto-assigned", assigned),
			notifDto.TypeWarning,
		)
	}

	return assigned, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.WorkOrderResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetOrder, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for work order")

		return res, nil
	}

	order, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get work order")

		return res, fmt.Errorf("failed to get work order: %w", err)
	}

	if order.ID == constant.Empty {
		return res, failure.NotFound("work order not found") // nolint:wrapcheck
	}

	res.FromModel(order)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work order to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetWorkOrdersResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for work orders")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count work orders")

		return res, fmt.Errorf("failed to count work orders: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work orders")

		return res, fmt.Errorf("failed to get work orders: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work orders to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountOrder, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count work orders")

		return res, fmt.Errorf("failed to count work orders: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save work order count to cache")
		}
	}()

	return res, nil
}

// getOwnedOrder fetches an order by id and owning technician. A mismatch on
// either keys is reported as not found.
func (s *serviceImpl) getOwnedOrder(ctx context.Context, id, technicianID string) (model.WorkOrder, error) {
	filter := shared.FilterByID(id, model.FieldID, model.TableName)
	filter.Filters = append(filter.Filters, gDto.Filter{
		Table:    model.TableName,
		Field:    model.FieldTechnicianID,
		Operator: gDto.FilterOperatorEq,
		Value:    technicianID,
	})

	order, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work order")

		return order, fmt.Errorf("failed to get work order: %w", err)
	}

	if order.ID == constant.Empty {
		return order, failure.NotFound("work order not found") // nolint:wrapcheck
	}

	return order, nil
}

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
		log.Error().Err(err).Msg("failed to update work order status")

		return fmt.Errorf("failed to update work order status: %w", err)
	}

	if affected == 0 {
		return failure.Conflict(fmt.Sprintf("work order is no longer in status %s", from)) // nolint:wrapcheck
	}

	s.invalidateOrder(ctx, id)

	return nil
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()
}

func (s *serviceImpl) invalidateOrder(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetOrder, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete work order from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllOrder)
		shared.InvalidateCaches(c, s.cache, cacheCountOrder)
	}()
}
