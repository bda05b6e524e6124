package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	inventorySvcMocks "reception/internal/domains/inventory/service/mocks"
	notifSvcMocks "reception/internal/domains/notification/mocks"
	requestRepoMocks "reception/internal/domains/request/mocks"
	requestModel "reception/internal/domains/request/model"
	requestDto "reception/internal/domains/request/model/dto"
	requestService "reception/internal/domains/request/service"
	roomRepoMocks "reception/internal/domains/room/mocks"
	roomModel "reception/internal/domains/room/model"
	roomService "reception/internal/domains/room/service"
	staffRepoMocks "reception/internal/domains/staff/mocks"
	staffModel "reception/internal/domains/staff/model"
	staffSvcDto "reception/internal/domains/staff/model/dto"
	staffSvcMocks "reception/internal/domains/staff/service/mocks"
	orderRepoMocks "reception/internal/domains/workorder/mocks"
	"reception/internal/domains/workorder/model"
	"reception/internal/domains/workorder/model/dto"
	"reception/internal/domains/workorder/service"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/constant"
	gDto "reception/shared/dto"
)

func boolPtr(b bool) *bool {
	return &b
}

// filterValue digs a single filter value out of a filter group by field name.
func filterValue(filter gDto.FilterGroup, field string) any {
	for _, raw := range filter.Filters {
		f, ok := raw.(gDto.Filter)
		if !ok {
			continue
		}

		if f.Field == field {
			return f.Value
		}
	}

	return nil
}

// TestWorkOrderService_FullLifecycle drives one request through the real
// request, room, and work-order services over stateful repository stubs:
// reported for an unavailable room, picked up by the urgent sweep, started,
// completed at one labor hour without parts, and verified. The end state has
// the request closed, the cost settled at the labor rate, and the room back
// to vacant.
func TestWorkOrderService_FullLifecycle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	roomID := "3f8d2c1a-9b0e-4f5a-8c7d-6e5f4a3b2c10"
	reporterID := "0b1c2d3e-4f5a-6b7c-8d9e-0f1a2b3c4d50"
	technicianID := "6a0f7f6e-3f6d-4a5b-9a57-1f62d7a0c101"
	supervisorID := "8c7b6a5d-4e3f-2a1b-9c8d-7e6f5a4b3c20"

	room := roomModel.Room{ID: roomID, Number: "101", Status: roomModel.StatusVacant}

	var request requestModel.MaintenanceRequest

	var order model.WorkOrder

	cacheMock := cacheMocks.NewMockRedisCache(ctrl)
	cacheMock.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	cacheMock.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cacheMock.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cacheMock.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	notifier := notifSvcMocks.NewMockNotifier(ctrl)
	notifier.EXPECT().
		SendToDepartment(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()
	notifier.EXPECT().
		SendToUser(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		AnyTimes()

	roomRepo := roomRepoMocks.NewMockRoom(ctrl)
	roomRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (roomModel.Room, error) {
			return room, nil
		}).
		AnyTimes()
	roomRepo.EXPECT().
		UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
			expected, _ := filterValue(filter, roomModel.FieldStatus).(roomModel.Status)
			if room.Status != expected {
				return 0, nil
			}

			room.Status, _ = fields[roomModel.FieldStatus].(roomModel.Status)

			return 1, nil
		}).
		AnyTimes()

	requestRepo := requestRepoMocks.NewMockRequest(ctrl)
	requestRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored requestModel.MaintenanceRequest) error {
			request = stored

			return nil
		})
	requestRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.FilterGroup, _ ...string) (requestModel.MaintenanceRequest, error) {
			return request, nil
		}).
		AnyTimes()
	requestRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]requestModel.MaintenanceRequest, error) {
			if request.Status == requestModel.StatusOpen && request.AssignedTo == nil && request.Priority.Urgent() {
				return []requestModel.MaintenanceRequest{request}, nil
			}

			return nil, nil
		}).
		AnyTimes()
	requestRepo.EXPECT().
		UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
			expected, _ := filterValue(filter, requestModel.FieldStatus).(requestModel.Status)
			if request.Status != expected {
				return 0, nil
			}

			request.Status, _ = fields[requestModel.FieldStatus].(requestModel.Status)

			if v, ok := fields[requestModel.FieldAssignedTo].(string); ok {
				request.AssignedTo = &v
			}

			if v, ok := fields[requestModel.FieldScheduledDate].(time.Time); ok {
				request.ScheduledDate = &v
			}

			if v, ok := fields[requestModel.FieldStartedAt].(time.Time); ok {
				request.StartedAt = &v
			}

			if v, ok := fields[requestModel.FieldCompletedAt].(time.Time); ok {
				request.CompletedAt = &v
			}

			if v, ok := fields[requestModel.FieldActualCost].(int64); ok {
				request.ActualCost = v
			}

			return 1, nil
		}).
		AnyTimes()

	orderRepo := orderRepoMocks.NewMockWorkOrder(ctrl)
	orderRepo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ gDto.FilterGroup) (int, error) {
			if order.ID != constant.Empty && (order.Status == model.StatusScheduled || order.Status == model.StatusInProgress) {
				return 1, nil
			}

			return 0, nil
		}).
		AnyTimes()
	orderRepo.EXPECT().
		Insert(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, stored model.WorkOrder) error {
			order = stored

			return nil
		})
	orderRepo.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, filter gDto.FilterGroup, _ ...string) (model.WorkOrder, error) {
			if v, ok := filterValue(filter, model.FieldTechnicianID).(string); ok && v != order.TechnicianID {
				return model.WorkOrder{}, nil
			}

			if v, ok := filterValue(filter, model.FieldStatus).(model.Status); ok && v != order.Status {
				return model.WorkOrder{}, nil
			}

			return order, nil
		}).
		AnyTimes()
	orderRepo.EXPECT().
		UpdateChecked(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) (int64, error) {
			expected, _ := filterValue(filter, model.FieldStatus).(model.Status)
			if order.Status != expected {
				return 0, nil
			}

			order.Status, _ = fields[model.FieldStatus].(model.Status)

			if v, ok := fields[model.FieldActualStart].(time.Time); ok {
				order.ActualStart = &v
			}

			if v, ok := fields[model.FieldActualEnd].(time.Time); ok {
				order.ActualEnd = &v
			}

			if v, ok := fields[model.FieldWorkPerformed].(string); ok {
				order.WorkPerformed = v
			}

			if v, ok := fields[model.FieldPartsUsed].(model.PartUsageList); ok {
				order.PartsUsed = v
			}

			if v, ok := fields[model.FieldLaborHours].(float64); ok {
				order.LaborHours = v
			}

			if v, ok := fields[model.FieldVerifiedBy].(string); ok {
				order.VerifiedBy = &v
			}

			if v, ok := fields[model.FieldVerificationNotes].(string); ok {
				order.VerificationNotes = v
			}

			return 1, nil
		}).
		AnyTimes()

	staffRepo := staffRepoMocks.NewMockStaff(ctrl)
	staffRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(true, nil).
		AnyTimes()

	staffSvc := staffSvcMocks.NewMockStaff(ctrl)
	staffSvc.EXPECT().
		Get(gomock.Any(), technicianID).
		Return(staffSvcDto.StaffResponse{ID: technicianID}, nil).
		AnyTimes()
	staffSvc.EXPECT().
		ListTechnicians(gomock.Any()).
		Return([]staffModel.Staff{{
			ID:         technicianID,
			Role:       constant.RoleTechnician,
			Department: constant.DepartmentMaintenance,
			Active:     true,
		}}, nil).
		AnyTimes()

	inventorySvc := inventorySvcMocks.NewMockInventory(ctrl)
	inventorySvc.EXPECT().
		UnitCostsByCode(gomock.Any(), gomock.Any()).
		Return(map[string]int64{}, nil).
		AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.Maintenance.TechnicianActiveCap = 3
	cfg.Maintenance.LaborRateMinorUnits = 50000

	roomSvc := roomService.New(roomRepo, cfg, cacheMock, mocks.NewOtel())
	requestSvc := requestService.New(requestRepo, staffRepo, roomSvc, notifier, cfg, cacheMock, mocks.NewOtel())
	orderSvc := service.New(orderRepo, requestSvc, staffSvc, inventorySvc, roomSvc, notifier, cfg, cacheMock, mocks.NewOtel())

	reporterCtx := context.WithValue(context.Background(), constant.ContextKeyUserID, reporterID)

	// an urgent request for an unavailable room pulls the room into maintenance
	created, err := requestSvc.Create(reporterCtx, requestDto.CreateRequestRequest{
		RoomID:        roomID,
		Category:      "plumbing",
		Description:   "Burst pipe under the sink, bathroom flooded",
		Priority:      "high",
		RoomAvailable: boolPtr(false),
	})
	require.NoError(t, err)
	assert.Equal(t, string(requestModel.StatusOpen), created.Status)
	assert.Equal(t, roomModel.StatusMaintenance, room.Status)

	// the sweep hands it to the only technician with spare capacity
	assigned, err := orderSvc.AssignUrgent(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, assigned)
	assert.Equal(t, requestModel.StatusAssigned, request.Status)
	require.NotNil(t, request.AssignedTo)
	assert.Equal(t, technicianID, *request.AssignedTo)
	assert.Equal(t, model.StatusScheduled, order.Status)

	err = orderSvc.Start(context.Background(), order.ID, dto.StartWorkRequest{TechnicianID: technicianID})
	require.NoError(t, err)
	assert.Equal(t, model.StatusInProgress, order.Status)
	assert.Equal(t, requestModel.StatusInProgress, request.Status)

	// no parts, one labor hour: the cost is exactly the labor rate
	err = orderSvc.Complete(context.Background(), order.ID, dto.CompleteWorkRequest{
		TechnicianID:  technicianID,
		WorkPerformed: "Replaced the burst pipe section and resealed the joint",
		LaborHours:    1,
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusCompleted, order.Status)
	assert.Equal(t, requestModel.StatusCompleted, request.Status)
	assert.Equal(t, int64(50000), request.ActualCost)
	assert.Equal(t, roomModel.StatusVacant, room.Status)

	err = orderSvc.Verify(context.Background(), order.ID, dto.VerifyWorkRequest{
		InspectorID: supervisorID,
		Notes:       "Pressure tested, no leaks",
	})
	require.NoError(t, err)
	assert.Equal(t, model.StatusVerified, order.Status)
	require.NotNil(t, order.VerifiedBy)
	assert.Equal(t, supervisorID, *order.VerifiedBy)
	assert.Equal(t, requestModel.StatusClosed, request.Status)
}
