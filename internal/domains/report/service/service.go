package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"reception/config"
	"reception/infras/otel"
	"reception/infras/s3"
	"reception/internal/domains/report/model/dto"
	requestModel "reception/internal/domains/request/model"
	requestRepository "reception/internal/domains/request/repository"
	staffService "reception/internal/domains/staff/service"
	workorderModel "reception/internal/domains/workorder/model"
	workorderRepository "reception/internal/domains/workorder/repository"
	"reception/shared"
	"reception/shared/cache"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/timezone"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheDailyReport = "report:daily"

	archiveDirectory   = "reports"
	archiveContentType = "application/json"
)

type Report interface {
	Daily(ctx context.Context, date time.Time) (dto.DailyReportResponse, error)
	ArchiveDaily(ctx context.Context, date time.Time) (dto.DailyReportResponse, error)
	TechnicianPerformance(ctx context.Context, technicianID string, days int) (dto.TechnicianPerformanceResponse, error)
}

type serviceImpl struct {
	requestRepo   requestRepository.Request
	workorderRepo workorderRepository.WorkOrder
	staffSvc      staffService.Staff
	s3            s3.S3
	cfg           *config.Config
	cache         cache.RedisCache
	otel          otel.Otel
}

func New(
	requestRepo requestRepository.Request,
	workorderRepo workorderRepository.WorkOrder,
	staffSvc staffService.Staff,
	s3Client s3.S3,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Report {
	return &serviceImpl{
		requestRepo:   requestRepo,
		workorderRepo: workorderRepo,
		staffSvc:      staffSvc,
		s3:            s3Client,
		cfg:           cfg,
		cache:         cache,
		otel:          otel,
	}
}

// Daily aggregates the requests reported on one day. The output is a pure
// function of the persisted rows, so two calls without intervening writes
// return identical reports.
func (s *serviceImpl) Daily(ctx context.Context, date time.Time) (res dto.DailyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Daily")
	defer scope.End()
	defer scope.TraceIfError(err)

	day := timezone.Format(date, time.DateOnly)
	cacheKey := shared.BuildCacheKey(cacheDailyReport, day)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for daily report")

		return res, nil
	}

	dayFilter := reportedOnFilter(date)

	total, err := s.requestRepo.Count(ctx, dayFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count requests for daily report")

		return res, fmt.Errorf("failed to count requests for daily report: %w", err)
	}

	completedFilter := reportedOnFilter(date)
	completedFilter.Filters = append(completedFilter.Filters, gDto.Filter{
		Table:    requestModel.TableName,
		Field:    requestModel.FieldStatus,
		Operator: gDto.FilterOperatorIn,
		Value:    []string{string(requestModel.StatusCompleted), string(requestModel.StatusClosed)},
	})

	completed, err := s.requestRepo.Count(ctx, completedFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count completed requests for daily report")

		return res, fmt.Errorf("failed to count completed requests for daily report: %w", err)
	}

	urgentFilter := reportedOnFilter(date)
	urgentFilter.Filters = append(urgentFilter.Filters, gDto.Filter{
		Table:    requestModel.TableName,
		Field:    requestModel.FieldPriority,
		Operator: gDto.FilterOperatorIn,
		Value:    []string{string(requestModel.PriorityHigh), string(requestModel.PriorityEmergency)},
	})

	urgent, err := s.requestRepo.Count(ctx, urgentFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count urgent requests for daily report")

		return res, fmt.Errorf("failed to count urgent requests for daily report: %w", err)
	}

	res = dto.DailyReportResponse{
		Date:              day,
		TotalRequests:     total,
		CompletedRequests: completed,
		UrgentRequests:    urgent,
		CompletionRate:    rate(completed, total),
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save daily report to cache")
		}
	}()

	return res, nil
}

// ArchiveDaily computes the daily report and stores a JSON copy in object
// storage for the records retention trail.
func (s *serviceImpl) ArchiveDaily(ctx context.Context, date time.Time) (res dto.DailyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ArchiveDaily")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.Daily(ctx, date)
	if err != nil {
		return res, err
	}

	raw, err := json.Marshal(res)
	if err != nil {
		return res, fmt.Errorf("failed to marshal daily report: %w", err)
	}

	fileName := fmt.Sprintf("daily-%s.json", res.Date)

	url, err := s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, archiveDirectory, fileName, archiveContentType, raw)
	if err != nil {
		log.Error().Err(err).Str("fileName", fileName).Msg("failed to archive daily report")

		return res, fmt.Errorf("failed to archive daily report: %w", err)
	}

	res.ArchiveURL = url

	return res, nil
}

// TechnicianPerformance scores one technician over a trailing window. The
// rating buckets on completed volume, with the top tier also requiring the
// average turnaround to beat the typical completion time.
func (s *serviceImpl) TechnicianPerformance(ctx context.Context, technicianID string, days int) (res dto.TechnicianPerformanceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".TechnicianPerformance")
	defer scope.End()
	defer scope.TraceIfError(err)

	if _, err = s.staffSvc.Get(ctx, technicianID); err != nil {
		return res, err
	}

	if days <= 0 {
		days = constant.DefaultPerformanceWindowDays
	}

	windowStart := timezone.Now().AddDate(0, 0, -days)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Table:    workorderModel.TableName,
				Field:    workorderModel.FieldTechnicianID,
				Operator: gDto.FilterOperatorEq,
				Value:    technicianID,
			},
			gDto.Filter{
				Table:    workorderModel.TableName,
				Field:    "created_at",
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    windowStart,
			},
		},
	}

	orders, err := s.workorderRepo.GetAll(ctx, gDto.QueryParams{}, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get work orders for performance report")

		return res, fmt.Errorf("failed to get work orders for performance report: %w", err)
	}

	completedCount := 0
	totalMinutes := 0.0
	measured := 0

	for _, order := range orders {
		if order.Status != workorderModel.StatusCompleted && order.Status != workorderModel.StatusVerified {
			continue
		}

		completedCount++

		if minutes := order.CompletionMinutes(); minutes > 0 {
			totalMinutes += minutes
			measured++
		}
	}

	avgMinutes := 0.0
	if measured > 0 {
		avgMinutes = totalMinutes / float64(measured)
	}

	res = dto.TechnicianPerformanceResponse{
		TechnicianID:         technicianID,
		WindowDays:           days,
		TotalOrders:          len(orders),
		CompletedOrders:      completedCount,
		CompletionRate:       rate(completedCount, len(orders)),
		AvgCompletionMinutes: avgMinutes,
		Rating:               ratingFor(completedCount, avgMinutes),
	}

	return res, nil
}

func ratingFor(completed int, avgMinutes float64) string {
	switch {
	case completed >= 20 && avgMinutes <= constant.DefaultTypicalCompletionMins:
		return dto.RatingExcellent
	case completed >= 10:
		return dto.RatingGood
	case completed >= 5:
		return dto.RatingAverage
	default:
		return dto.RatingNeedsImprovement
	}
}

// rate returns a percentage with two decimal places, zero when the
// denominator is zero.
func rate(part, total int) float64 {
	if total == 0 {
		return 0
	}

	value, _ := decimal.NewFromInt(int64(part)).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(int64(total))).
		Round(2).
		Float64()

	return value
}

func reportedOnFilter(date time.Time) gDto.FilterGroup {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, timezone.GetLocation())
	end := start.AddDate(0, 0, 1)

	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				ArgName:  "reported_from",
				Table:    requestModel.TableName,
				Field:    requestModel.FieldReportedAt,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    start,
			},
			gDto.Filter{
				ArgName:  "reported_to",
				Table:    requestModel.TableName,
				Field:    requestModel.FieldReportedAt,
				Operator: gDto.FilterOperatorLessEq,
				Value:    end.Add(-time.Nanosecond),
			},
		},
	}
}
