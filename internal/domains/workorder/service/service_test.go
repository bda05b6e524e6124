package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	inventoryMocks "reception/internal/domains/inventory/service/mocks"
	notifMocks "reception/internal/domains/notification/mocks"
	requestModel "reception/internal/domains/request/model"
	requestMocks "reception/internal/domains/request/service/mocks"
	roomModel "reception/internal/domains/room/model"
	roomMocks "reception/internal/domains/room/service/mocks"
	staffModel "reception/internal/domains/staff/model"
	staffDto "reception/internal/domains/staff/model/dto"
	staffMocks "reception/internal/domains/staff/service/mocks"
	orderMocks "reception/internal/domains/workorder/mocks"
	"reception/internal/domains/workorder/model"
	"reception/internal/domains/workorder/model/dto"
	"reception/internal/domains/workorder/service"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/constant"
	gDto "reception/shared/dto"
	"reception/shared/timezone"
)

type orderMockSet struct {
	repo      *orderMocks.MockWorkOrder
	request   *requestMocks.MockRequest
	staff     *staffMocks.MockStaff
	inventory *inventoryMocks.MockInventory
	room      *roomMocks.MockRoom
	notifier  *notifMocks.MockNotifier
	cache     *cacheMocks.MockRedisCache
}

func newOrderService(ctrl *gomock.Controller) (service.WorkOrder, orderMockSet) {
	m := orderMockSet{
		repo:      orderMocks.NewMockWorkOrder(ctrl),
		request:   requestMocks.NewMockRequest(ctrl),
		staff:     staffMocks.NewMockStaff(ctrl),
		inventory: inventoryMocks.NewMockInventory(ctrl),
		room:      roomMocks.NewMockRoom(ctrl),
		notifier:  notifMocks.NewMockNotifier(ctrl),
		cache:     cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Maintenance.TechnicianActiveCap = 3
	cfg.Maintenance.LaborRateMinorUnits = 50000

	svc := service.New(m.repo, m.request, m.staff, m.inventory, m.room, m.notifier, cfg, m.cache, mocks.NewOtel())

	return svc, m
}

// technicianFromFilter digs the technician id out of the active-orders filter
// so a single Count expectation can answer per technician.
func technicianFromFilter(filter gDto.FilterGroup) string {
	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		if f.Field == model.FieldTechnicianID {
			id, _ := f.Value.(string)

			return id
		}
	}

	return ""
}

func TestWorkOrderService_IsAvailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		want      bool
	}{
		{
			name: "below cap",
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(2, nil)
			},
			want: true,
		},
		{
			name: "exactly at cap",
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			want: false,
		},
		{
			name: "over cap",
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(4, nil)
			},
			want: false,
		},
		{
			name: "count error treated as unavailable",
			setupMock: func() {
				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got := svc.IsAvailable(context.Background(), "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101")

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWorkOrderService_Assign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	req := dto.AssignRequest{
		RequestID:      "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		TechnicianID:   "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101",
		ScheduledStart: timezone.Now(),
	}

	openRequest := requestModel.MaintenanceRequest{
		ID:       req.RequestID,
		RoomID:   "room-101",
		Category: "plumbing",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful assignment",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(openRequest, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), req.TechnicianID).
					Return(staffDto.StaffResponse{}, nil)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.request.EXPECT().
					MarkAssigned(gomock.Any(), req.RequestID, req.TechnicianID, req.ScheduledStart, "test-user-id").
					Return(nil)

				m.notifier.EXPECT().
					SendToUser(gomock.Any(), req.TechnicianID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "request not found",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(requestModel.MaintenanceRequest{}, errors.New("request not found"))
			},
			wantErr: true,
		},
		{
			name: "unknown technician",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(openRequest, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), req.TechnicianID).
					Return(staffDto.StaffResponse{}, errors.New("staff not found"))
			},
			wantErr: true,
		},
		{
			name: "technician at capacity",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(openRequest, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), req.TechnicianID).
					Return(staffDto.StaffResponse{}, nil)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(3, nil)
			},
			wantErr: true,
		},
		{
			name: "insert error",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(openRequest, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), req.TechnicianID).
					Return(staffDto.StaffResponse{}, nil)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "lost assignment race removes the inserted order",
			setupMock: func() {
				m.request.EXPECT().
					GetModel(gomock.Any(), req.RequestID).
					Return(openRequest, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), req.TechnicianID).
					Return(staffDto.StaffResponse{}, nil)

				m.repo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				var insertedID string
				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, order model.WorkOrder) error {
						insertedID = order.ID

						return nil
					})

				m.request.EXPECT().
					MarkAssigned(gomock.Any(), req.RequestID, req.TechnicianID, req.ScheduledStart, "test-user-id").
					Return(errors.New("request already assigned"))

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) error {
						f, ok := filter.Filters[0].(gDto.Filter)
						assert.True(t, ok)
						assert.Equal(t, model.FieldID, f.Field)
						assert.Equal(t, insertedID, f.Value)

						return nil
					})
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			result, err := svc.Assign(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.RequestID, result.RequestID)
				assert.Equal(t, req.TechnicianID, result.TechnicianID)
				assert.Equal(t, string(model.StatusScheduled), result.Status)
			}
		})
	}
}

func TestWorkOrderService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	technicianID := "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101"
	order := model.WorkOrder{
		ID:           "4d2b1c3e-7f8a-4b2c-9d1e-5a6f7b8c9d01",
		RequestID:    "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		TechnicianID: technicianID,
		Status:       model.StatusScheduled,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful start",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.request.EXPECT().
					MarkInProgress(gomock.Any(), order.RequestID, technicianID).
					Return(nil)

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
			name: "order not owned by technician",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WorkOrder{}, nil)
			},
			wantErr: true,
		},
		{
			name: "order already started elsewhere",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

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

			err := svc.Start(context.Background(), order.ID, dto.StartWorkRequest{TechnicianID: technicianID})

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkOrderService_Complete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	technicianID := "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101"
	order := model.WorkOrder{
		ID:           "4d2b1c3e-7f8a-4b2c-9d1e-5a6f7b8c9d01",
		RequestID:    "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		TechnicianID: technicianID,
		Status:       model.StatusInProgress,
	}

	request := requestModel.MaintenanceRequest{
		ID:     order.RequestID,
		RoomID: "room-101",
	}

	expectCacheInvalidation := func() {
		m.cache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		m.cache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		req       dto.CompleteWorkRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "parts plus labor settle the cost",
			req: dto.CompleteWorkRequest{
				TechnicianID:  technicianID,
				WorkPerformed: "Replaced the supply valve and resealed the joint",
				PartsUsed:     []model.PartUsage{{Code: "PIPE-01", Quantity: 2}},
				LaborHours:    1.5,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.inventory.EXPECT().
					UnitCostsByCode(gomock.Any(), []string{"PIPE-01"}).
					Return(map[string]int64{"PIPE-01": 1000}, nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				// 2 x 1000 parts plus 1.5h x 50000 labor.
				m.request.EXPECT().
					MarkCompleted(gomock.Any(), order.RequestID, int64(77000), technicianID).
					Return(nil)

				m.inventory.EXPECT().
					ConsumeStock(gomock.Any(), "PIPE-01", 2).
					Return(nil)

				m.request.EXPECT().
					GetModel(gomock.Any(), order.RequestID).
					Return(request, nil)

				m.room.EXPECT().
					ApplyMaintenanceEvent(gomock.Any(), request.RoomID, roomModel.EventMaintenanceCompleted).
					Return(nil)

				expectCacheInvalidation()
			},
			wantErr: false,
		},
		{
			name: "unknown part codes price at zero",
			req: dto.CompleteWorkRequest{
				TechnicianID:  technicianID,
				WorkPerformed: "Tightened the fitting, no parts on record",
				PartsUsed:     []model.PartUsage{{Code: "GHOST-99", Quantity: 3}},
				LaborHours:    1,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.inventory.EXPECT().
					UnitCostsByCode(gomock.Any(), []string{"GHOST-99"}).
					Return(map[string]int64{}, nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.request.EXPECT().
					MarkCompleted(gomock.Any(), order.RequestID, int64(50000), technicianID).
					Return(nil)

				m.inventory.EXPECT().
					ConsumeStock(gomock.Any(), "GHOST-99", 3).
					Return(errors.New("inventory item not found"))

				m.request.EXPECT().
					GetModel(gomock.Any(), order.RequestID).
					Return(request, nil)

				m.room.EXPECT().
					ApplyMaintenanceEvent(gomock.Any(), request.RoomID, roomModel.EventMaintenanceCompleted).
					Return(nil)

				expectCacheInvalidation()
			},
			wantErr: false,
		},
		{
			name: "order not owned by technician",
			req: dto.CompleteWorkRequest{
				TechnicianID:  technicianID,
				WorkPerformed: "n/a",
				LaborHours:    1,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WorkOrder{}, nil)
			},
			wantErr: true,
		},
		{
			name: "unit cost lookup error",
			req: dto.CompleteWorkRequest{
				TechnicianID:  technicianID,
				WorkPerformed: "Replaced the supply valve",
				PartsUsed:     []model.PartUsage{{Code: "PIPE-01", Quantity: 2}},
				LaborHours:    1.5,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.inventory.EXPECT().
					UnitCostsByCode(gomock.Any(), gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
		{
			name: "order no longer in progress",
			req: dto.CompleteWorkRequest{
				TechnicianID:  technicianID,
				WorkPerformed: "Replaced the supply valve",
				LaborHours:    1.5,
			},
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.inventory.EXPECT().
					UnitCostsByCode(gomock.Any(), gomock.Any()).
					Return(map[string]int64{}, nil)

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

			err := svc.Complete(context.Background(), order.ID, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkOrderService_Verify(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	inspectorID := "0b1c2d3e-4f5a-4b6c-8d7e-9f0a1b2c3d04"
	completed := model.WorkOrder{
		ID:        "4d2b1c3e-7f8a-4b2c-9d1e-5a6f7b8c9d01",
		RequestID: "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		Status:    model.StatusCompleted,
	}

	req := dto.VerifyWorkRequest{
		InspectorID: inspectorID,
		Notes:       "Checked the repair, room is serviceable",
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful verification",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)

				m.repo.EXPECT().
					UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(int64(1), nil)

				m.request.EXPECT().
					MarkClosed(gomock.Any(), completed.RequestID, inspectorID).
					Return(nil)

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
			name: "order not in completed status",
			setupMock: func() {
				// The status filter excludes scheduled and in-progress
				// orders, the repository simply finds nothing.
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WorkOrder{}, nil)
			},
			wantErr: true,
		},
		{
			name: "verification race lost",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completed, nil)

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

			err := svc.Verify(context.Background(), completed.ID, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestWorkOrderService_AssignUrgent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	urgent := requestModel.MaintenanceRequest{
		ID:       "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		RoomID:   "room-101",
		Category: "electrical",
		Priority: requestModel.PriorityEmergency,
	}

	busyTech := staffModel.Staff{ID: "1a2b3c4d-5e6f-4a7b-8c9d-0e1f2a3b4c01"}
	freeTech := staffModel.Staff{ID: "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101"}

	activeCounts := func(counts map[string]int) {
		m.repo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
				return counts[technicianFromFilter(filter)], nil
			}).
			AnyTimes()
	}

	tests := []struct {
		name         string
		setupMock    func()
		wantAssigned int
	}{
		{
			name: "nothing urgent",
			setupMock: func() {
				m.request.EXPECT().
					ListUnassignedUrgent(gomock.Any()).
					Return(nil, nil)
			},
			wantAssigned: 0,
		},
		{
			name: "skips the full technician",
			setupMock: func() {
				m.request.EXPECT().
					ListUnassignedUrgent(gomock.Any()).
					Return([]requestModel.MaintenanceRequest{urgent}, nil)

				m.staff.EXPECT().
					ListTechnicians(gomock.Any()).
					Return([]staffModel.Staff{busyTech, freeTech}, nil)

				activeCounts(map[string]int{busyTech.ID: 3, freeTech.ID: 0})

				m.request.EXPECT().
					GetModel(gomock.Any(), urgent.ID).
					Return(urgent, nil)

				m.staff.EXPECT().
					Get(gomock.Any(), freeTech.ID).
					Return(staffDto.StaffResponse{}, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				m.request.EXPECT().
					MarkAssigned(gomock.Any(), urgent.ID, freeTech.ID, gomock.Any(), constant.SystemActor).
					Return(nil)

				m.notifier.EXPECT().
					SendToUser(gomock.Any(), freeTech.ID, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any())

				m.notifier.EXPECT().
					SendToDepartment(gomock.Any(), constant.DepartmentMaintenance, gomock.Any(), gomock.Any(), gomock.Any())

				m.cache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantAssigned: 1,
		},
		{
			name: "whole roster is full",
			setupMock: func() {
				m.request.EXPECT().
					ListUnassignedUrgent(gomock.Any()).
					Return([]requestModel.MaintenanceRequest{urgent}, nil)

				m.staff.EXPECT().
					ListTechnicians(gomock.Any()).
					Return([]staffModel.Staff{busyTech, freeTech}, nil)

				activeCounts(map[string]int{busyTech.ID: 3, freeTech.ID: 3})
			},
			wantAssigned: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			assigned, err := svc.AssignUrgent(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.wantAssigned, assigned)
		})
	}
}

func TestWorkOrderService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newOrderService(ctrl)

	order := model.WorkOrder{
		ID:        "4d2b1c3e-7f8a-4b2c-9d1e-5a6f7b8c9d01",
		RequestID: "9c1c2f2a-8a9b-4a62-b2ff-0f17f8b0d201",
		Status:    model.StatusScheduled,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "cache hit",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, found in db",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(order, nil)

				m.cache.EXPECT().
					Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantID:  order.ID,
		},
		{
			name: "work order not found",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.WorkOrder{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background(), order.ID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				if tt.wantID != "" {
					assert.Equal(t, tt.wantID, result.ID)
				}
			}
		})
	}
}
