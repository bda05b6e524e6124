package workorder

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/workorder/model"
	"reception/internal/domains/workorder/model/dto"
	"reception/internal/domains/workorder/service"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/validator"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.WorkOrder
	otel    otel.Otel
}

func New(service service.WorkOrder, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance/work-orders", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AssignWorkOrder)
		routerGroup.Get("/", handler.GetWorkOrders)
		routerGroup.Get("/{id}", handler.GetWorkOrderByID)
		routerGroup.Post("/{id}/start", handler.StartWork)
		routerGroup.Post("/{id}/complete", handler.CompleteWork)
		routerGroup.Post("/{id}/verify", handler.VerifyWork)
	})
}

// AssignWorkOrder assigns an open request to a technician.
// @Summary Assign a work order
// @Description Create a work order for an open request and schedule a technician.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param request body dto.AssignRequest true "Assign Request"
// @Success 201 {object} response.Data[dto.WorkOrderResponse] "Work order created successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders [post]
// @Security BearerAuth
func (handler *Handler) AssignWorkOrder(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignWorkOrder")
	defer scope.End()

	req := dto.AssignRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Assign(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign work order")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Work order assigned successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetWorkOrders lists work orders.
// @Summary Get work orders
// @Description Retrieve work orders with optional filtering and pagination.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param technician_id query string false "Filter by technician"
// @Param request_id query string false "Filter by request"
// @Success 200 {object} response.Data[dto.WorkOrderResponse] "List of work orders"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders [get]
// @Security BearerAuth
func (handler *Handler) GetWorkOrders(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkOrders")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldTechnicianID, model.FieldRequestID} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	orders, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work orders")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work orders retrieved successfully")

	response.WithJSON(w, http.StatusOK, orders)
}

// GetWorkOrderByID retrieves a work order.
// @Summary Get a work order by ID
// @Description Retrieve a work order by its unique identifier.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param id path string true "Work Order ID"
// @Success 200 {object} response.Data[dto.WorkOrderResponse] "Work order details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetWorkOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetWorkOrderByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	order, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get work order by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work order retrieved successfully")

	response.WithJSON(w, http.StatusOK, order)
}

// StartWork moves a work order into execution.
// @Summary Start a work order
// @Description Mark the technician's work order as in progress.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param id path string true "Work Order ID"
// @Param request body dto.StartWorkRequest true "Start Work Request"
// @Success 200 {object} response.Message "Work started successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders/{id}/start [post]
// @Security BearerAuth
func (handler *Handler) StartWork(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartWork")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.StartWorkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Start(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to start work order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work order started successfully")

	response.WithMessage(w, http.StatusOK, "Work started successfully")
}

// CompleteWork records the executed work and settles its cost.
// @Summary Complete a work order
// @Description Record the performed work, consumed parts, and labor hours.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param id path string true "Work Order ID"
// @Param request body dto.CompleteWorkRequest true "Complete Work Request"
// @Success 200 {object} response.Message "Work completed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteWork(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteWork")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CompleteWorkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Complete(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete work order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work order completed successfully")

	response.WithMessage(w, http.StatusOK, "Work completed successfully")
}

// VerifyWork verifies a completed work order and closes the request.
// @Summary Verify a work order
// @Description Verify a completed work order, closing its request.
// @Tags WorkOrder
// @Accept json
// @Produce json
// @Param id path string true "Work Order ID"
// @Param request body dto.VerifyWorkRequest true "Verify Work Request"
// @Success 200 {object} response.Message "Work verified successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/work-orders/{id}/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyWork(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyWork")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.VerifyWorkRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Verify(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to verify work order")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Work order verified successfully")

	response.WithMessage(w, http.StatusOK, "Work verified successfully")
}
