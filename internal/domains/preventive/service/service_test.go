package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	preventiveMocks "reception/internal/domains/preventive/mocks"
	"reception/internal/domains/preventive/model"
	"reception/internal/domains/preventive/service"
	requestDto "reception/internal/domains/request/model/dto"
	requestMocks "reception/internal/domains/request/service/mocks"
	cacheMocks "reception/shared/cache/mocks"
	gDto "reception/shared/dto"
	"reception/shared/timezone"
)

func newPreventiveService(ctrl *gomock.Controller) (service.Preventive, *preventiveMocks.MockPreventive, *requestMocks.MockRequest, *cacheMocks.MockRedisCache) {
	mockRepo := preventiveMocks.NewMockPreventive(ctrl)
	mockRequest := requestMocks.NewMockRequest(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, mockRequest, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockRequest, mockCache
}

func dueSchedule(id string) model.PreventiveSchedule {
	return model.PreventiveSchedule{
		ID:              id,
		RoomID:          "3f8d2c1a-9b0e-4f5a-8c7d-6e5f4a3b2c10",
		MaintenanceType: "hvac",
		Frequency:       model.FrequencyMonthly,
		NextDue:         timezone.Now().AddDate(0, 0, -1),
		Status:          model.StatusScheduled,
	}
}

func TestPreventiveService_Scan(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockRequest, mockCache := newPreventiveService(ctrl)

	expectListInvalidation := func() {
		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name          string
		setupMock     func()
		wantGenerated int
		wantErr       bool
	}{
		{
			name: "nothing due",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, nil)
			},
			wantGenerated: 0,
		},
		{
			name: "each due schedule raises one request",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.PreventiveSchedule{dueSchedule("sched-1"), dueSchedule("sched-2")}, nil)

				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil).
					Times(2)

				mockRequest.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req requestDto.CreateRequestRequest) (requestDto.RequestResponse, error) {
						assert.Equal(t, "hvac", req.Category)
						assert.Equal(t, "normal", req.Priority)

						return requestDto.RequestResponse{}, nil
					}).
					Times(2)

				expectListInvalidation()
			},
			wantGenerated: 2,
		},
		{
			name: "schedule already flipped by a concurrent sweep",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.PreventiveSchedule{dueSchedule("sched-1")}, nil)

				// the guarded write finds no scheduled row, so no
				// duplicate request is raised
				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantGenerated: 0,
		},
		{
			name: "request creation failure reverts the overdue flip",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.PreventiveSchedule{dueSchedule("sched-1")}, nil)

				mockRepo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				mockRequest.EXPECT().
					Create(gomock.Any(), gomock.Any()).
					Return(requestDto.RequestResponse{}, errors.New("room reference is invalid"))

				// the schedule goes back to scheduled so the next sweep
				// retries it
				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
						assert.Equal(t, model.StatusScheduled, fields[model.FieldStatus])

						f, ok := filter.Filters[0].(gDto.Filter)
						assert.True(t, ok)
						assert.Equal(t, "sched-1", f.Value)

						return nil
					})
			},
			wantGenerated: 0,
		},
		{
			name: "listing error",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			generated, err := svc.Scan(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantGenerated, generated)
			}
		})
	}
}

func TestPreventiveService_MarkCompleted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newPreventiveService(ctrl)

	id := "7e6d5c4b-3a2b-4c1d-8e9f-0a1b2c3d4e05"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "completion reschedules the next cycle",
			setupMock: func() {
				schedule := dueSchedule(id)

				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(schedule, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusScheduled, fields[model.FieldStatus])

						performed, ok := fields[model.FieldLastPerformed].(time.Time)
						assert.True(t, ok)

						nextDue, ok := fields[model.FieldNextDue].(time.Time)
						assert.True(t, ok)
						assert.Equal(t, schedule.Frequency.NextFrom(performed), nextDue)

						return nil
					})

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "schedule not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.PreventiveSchedule{}, nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(dueSchedule(id), nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.MarkCompleted(context.Background(), id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPreventiveService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, mockCache := newPreventiveService(ctrl)

	id := "7e6d5c4b-3a2b-4c1d-8e9f-0a1b2c3d4e05"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "schedule not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "delete error",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
