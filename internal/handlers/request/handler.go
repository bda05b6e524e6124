package request

import (
	"net/http"
	"reception/infras/otel"
	"reception/internal/domains/request/model"
	"reception/internal/domains/request/model/dto"
	"reception/internal/domains/request/service"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/validator"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Request
	otel    otel.Otel
}

func New(service service.Request, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/maintenance/requests", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateRequest)
		routerGroup.Get("/", handler.GetRequests)
		routerGroup.Get("/{id}", handler.GetRequestByID)
		routerGroup.Post("/{id}/cancel", handler.CancelRequest)
	})
}

// CreateRequest files a new maintenance request.
// @Summary Create a maintenance request
// @Description Report a maintenance issue for a room.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param request body dto.CreateRequestRequest true "Create Request"
// @Success 201 {object} response.Data[dto.RequestResponse] "Request created successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/requests [post]
// @Security BearerAuth
func (handler *Handler) CreateRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateRequest")
	defer scope.End()

	req := dto.CreateRequestRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create maintenance request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance request created successfully by user " + user)

	response.WithJSON(w, http.StatusCreated, res)
}

// GetRequests lists maintenance requests.
// @Summary Get maintenance requests
// @Description Retrieve maintenance requests with optional filtering and pagination.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param priority query string false "Filter by priority"
// @Param room_id query string false "Filter by room"
// @Param assigned_to query string false "Filter by technician"
// @Success 200 {object} response.Data[dto.RequestResponse] "List of requests"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/requests [get]
// @Security BearerAuth
func (handler *Handler) GetRequests(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequests")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	for _, field := range []string{model.FieldStatus, model.FieldPriority, model.FieldRoomID, model.FieldAssignedTo} {
		if value := r.URL.Query().Get(field); value != "" {
			filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
				Field:    field,
				Operator: gDto.FilterOperatorEq,
				Value:    value,
				Table:    model.TableName,
			})
		}
	}

	requests, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance requests")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance requests retrieved successfully")

	response.WithJSON(w, http.StatusOK, requests)
}

// GetRequestByID retrieves a maintenance request.
// @Summary Get a maintenance request by ID
// @Description Retrieve a maintenance request by its unique identifier.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Data[dto.RequestResponse] "Request details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/requests/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetRequestByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRequestByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	request, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get maintenance request by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Maintenance request retrieved successfully")

	response.WithJSON(w, http.StatusOK, request)
}

// CancelRequest cancels a request from any non-terminal state.
// @Summary Cancel a maintenance request
// @Description Cancel a request that has not yet reached a terminal state.
// @Tags Maintenance
// @Accept json
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} response.Message "Request cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/maintenance/requests/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelRequest(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelRequest")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel maintenance request")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Maintenance request cancelled successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Request cancelled successfully")
}
