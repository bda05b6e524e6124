package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	notifMocks "reception/internal/domains/notification/mocks"
	requestMocks "reception/internal/domains/request/mocks"
	"reception/internal/domains/request/model"
	"reception/internal/domains/request/model/dto"
	"reception/internal/domains/request/service"
	roomModel "reception/internal/domains/room/model"
	roomDto "reception/internal/domains/room/model/dto"
	roomMocks "reception/internal/domains/room/service/mocks"
	staffMocks "reception/internal/domains/staff/mocks"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/constant"
	"reception/shared/timezone"
)

type requestMockSet struct {
	repo      *requestMocks.MockRequest
	staffRepo *staffMocks.MockStaff
	room      *roomMocks.MockRoom
	notifier  *notifMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
}

func newRequestService(ctrl *gomock.Controller) (service.Request, requestMockSet) {
	m := requestMockSet{
		repo:      requestMocks.NewMockRequest(ctrl),
		staffRepo: staffMocks.NewMockStaff(ctrl),
		room:      roomMocks.NewMockRoom(ctrl),
		notifier:  notifMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.staffRepo, m.room, m.notifier, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

func boolPtr(b bool) *bool {
	return &b
}

func intPtr(i int) *int {
	return &i
}

func TestRequestService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	roomID := "3f8d2c1a-9b0e-4f5a-8c7d-6e5f4a3b2c10"
	reporterID := "test-user-id"

	expectListInvalidation := func() {
		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name       string
		req        dto.CreateRequestRequest
		asReporter bool
		setupMock  func()
		wantErr    bool
		wantStatus string
	}{
		{
			name: "room stays available",
			req: dto.CreateRequestRequest{
				RoomID:      roomID,
				Category:    "electrical",
				Description: "Bedside lamp socket is dead",
				Priority:    "normal",
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.staffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notifier.EXPECT().
					SendToDepartment(gomock.Any(), constant.DepartmentMaintenance, gomock.Any(), gomock.Any(), gomock.Any())

				expectListInvalidation()
			},
			wantErr:    false,
			wantStatus: string(model.StatusOpen),
		},
		{
			name: "downtime estimate is persisted",
			req: dto.CreateRequestRequest{
				RoomID:            roomID,
				Category:          "hvac",
				Description:       "AC compressor rattling, unit must be opened up",
				Priority:          "normal",
				EstimatedDowntime: intPtr(45),
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.staffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, request model.MaintenanceRequest) error {
						assert.NotNil(t, request.EstimatedDowntime)
						assert.Equal(t, 45, *request.EstimatedDowntime)

						return nil
					})

				m.notifier.EXPECT().
					SendToDepartment(gomock.Any(), constant.DepartmentMaintenance, gomock.Any(), gomock.Any(), gomock.Any())

				expectListInvalidation()
			},
			wantErr:    false,
			wantStatus: string(model.StatusOpen),
		},
		{
			name: "unavailable room is pushed into maintenance",
			req: dto.CreateRequestRequest{
				RoomID:        roomID,
				Category:      "plumbing",
				Description:   "Burst pipe under the sink",
				Priority:      "emergency",
				RoomAvailable: boolPtr(false),
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.staffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notifier.EXPECT().
					SendToDepartment(gomock.Any(), constant.DepartmentMaintenance, gomock.Any(), gomock.Any(), gomock.Any())

				m.room.EXPECT().
					ApplyMaintenanceEvent(gomock.Any(), roomID, roomModel.EventMaintenanceRequired).
					Return(nil)

				expectListInvalidation()
			},
			wantErr:    false,
			wantStatus: string(model.StatusOpen),
		},
		{
			name: "system actor skips the reporter check",
			req: dto.CreateRequestRequest{
				RoomID:      roomID,
				Category:    "hvac",
				Description: "Scheduled filter replacement",
			},
			asReporter: false,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.notifier.EXPECT().
					SendToDepartment(gomock.Any(), constant.DepartmentMaintenance, gomock.Any(), gomock.Any(), gomock.Any())

				expectListInvalidation()
			},
			wantErr:    false,
			wantStatus: string(model.StatusOpen),
		},
		{
			name: "invalid room reference",
			req: dto.CreateRequestRequest{
				RoomID:      roomID,
				Category:    "electrical",
				Description: "Bedside lamp socket is dead",
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, errors.New("room not found"))
			},
			wantErr: true,
		},
		{
			name: "unknown reporter",
			req: dto.CreateRequestRequest{
				RoomID:      roomID,
				Category:    "electrical",
				Description: "Bedside lamp socket is dead",
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.staffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			req: dto.CreateRequestRequest{
				RoomID:      roomID,
				Category:    "electrical",
				Description: "Bedside lamp socket is dead",
			},
			asReporter: true,
			setupMock: func() {
				m.room.EXPECT().
					Get(gomock.Any(), roomID).
					Return(roomDto.RoomResponse{}, nil)

				m.staffRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.Background()
			if tt.asReporter {
				ctx = context.WithValue(ctx, constant.ContextKeyUserID, reporterID)
			}

			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantStatus, result.Status)
				assert.Equal(t, roomID, result.RoomID)
			}
		})
	}
}

func TestRequestService_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	id := "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201"

	requestIn := func(status model.Status) model.MaintenanceRequest {
		return model.MaintenanceRequest{
			ID:     id,
			RoomID: "3f8d2c1a-9b0e-4f5a-8c7d-6e5f4a3b2c10",
			Status: status,
		}
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancel an open request",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(requestIn(model.StatusOpen), nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cancel an assigned request",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(requestIn(model.StatusAssigned), nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "closed request cannot be cancelled",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(requestIn(model.StatusClosed), nil)
			},
			wantErr: true,
		},
		{
			name: "cancelled request stays cancelled",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(requestIn(model.StatusCancelled), nil)
			},
			wantErr: true,
		},
		{
			name: "request not found",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.MaintenanceRequest{}, nil)
			},
			wantErr: true,
		},
		{
			name: "cancellation race lost",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(requestIn(model.StatusOpen), nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Cancel(ctx, id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestService_MarkAssigned(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	id := "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201"
	technicianID := "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101"

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful assignment",
			setupMock: func() {
				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.cache.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "request already left the open status",
			setupMock: func() {
				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), nil)
			},
			wantErr: true,
		},
		{
			name: "update error",
			setupMock: func() {
				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(0), errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.MarkAssigned(context.Background(), id, technicianID, timezone.Now(), "test-user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRequestService_ListUnassignedUrgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRequestService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "returns the urgent backlog",
			setupMock: func() {
				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.MaintenanceRequest{
						{ID: "req-1", Priority: model.PriorityEmergency, Status: model.StatusOpen},
						{ID: "req-2", Priority: model.PriorityHigh, Status: model.StatusOpen},
					}, nil)
			},
			wantErr: false,
			wantLen: 2,
		},
		{
			name: "repository error",
			setupMock: func() {
				m.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.ListUnassignedUrgent(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}
