package report

import (
	"net/http"
	"time"

	"reception/infras/otel"
	"reception/internal/domains/report/service"
	"reception/shared"
	"reception/shared/constant"
	"reception/shared/timezone"
	"reception/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/daily", handler.GetDailyReport)
		routerGroup.Get("/technicians/{id}", handler.GetTechnicianPerformance)
	})
}

// GetDailyReport aggregates one day of maintenance activity.
// @Summary Get the daily maintenance report
// @Description Aggregate request counts and completion rate for one day.
// @Tags Report
// @Accept json
// @Produce json
// @Param date query string false "Report date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} response.Data[dto.DailyReportResponse] "Daily report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/daily [get]
// @Security BearerAuth
func (handler *Handler) GetDailyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetDailyReport")
	defer scope.End()

	date := timezone.Now()

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		parsed, err := timezone.Parse(time.DateOnly, dateStr)
		if err != nil {
			scope.TraceError(err)
			log.Error().Err(err).Str("date", dateStr).Msg("invalid report date")

			response.WithError(w, err)

			return
		}

		date = parsed
	}

	report, err := handler.service.Daily(ctx, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build daily report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Daily report built successfully")

	response.WithJSON(w, http.StatusOK, report)
}

// GetTechnicianPerformance scores a technician over a trailing window.
// @Summary Get technician performance
// @Description Score one technician's completed work over a trailing window of days.
// @Tags Report
// @Accept json
// @Produce json
// @Param id path string true "Technician ID"
// @Param days query integer false "Window size in days, defaults to 30"
// @Success 200 {object} response.Data[dto.TechnicianPerformanceResponse] "Technician performance"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/technicians/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetTechnicianPerformance(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTechnicianPerformance")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	days := constant.DefaultPerformanceWindowDays
	if daysStr := r.URL.Query().Get("days"); daysStr != "" {
		if parsed, err := shared.ConvertStringToInt(daysStr); err == nil && parsed > 0 {
			days = parsed
		}
	}

	performance, err := handler.service.TechnicianPerformance(ctx, id, days)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to build technician performance report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Technician performance report built successfully")

	response.WithJSON(w, http.StatusOK, performance)
}
