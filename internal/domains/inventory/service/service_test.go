package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"reception/config"
	"reception/infras/otel/mocks"
	inventoryMocks "reception/internal/domains/inventory/mocks"
	"reception/internal/domains/inventory/model"
	"reception/internal/domains/inventory/model/dto"
	"reception/internal/domains/inventory/service"
	cacheMocks "reception/shared/cache/mocks"
	"reception/shared/constant"
	gDto "reception/shared/dto"
)

func newInventoryService(ctrl *gomock.Controller) (service.Inventory, *inventoryMocks.MockInventory, *cacheMocks.MockRedisCache) {
	mockRepo := inventoryMocks.NewMockInventory(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	return service.New(mockRepo, cfg, mockCache, mocks.NewOtel()), mockRepo, mockCache
}

func TestInventoryService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newInventoryService(ctrl)

	req := dto.CreateInventoryItemRequest{
		Code:         "PIPE-01",
		Name:         "15mm copper pipe",
		Category:     "plumbing",
		UnitCost:     1000,
		CurrentStock: 40,
		ReorderPoint: 10,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				mockCache.EXPECT().
					Clear(gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "duplicate item code",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryService_UnitCostsByCode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newInventoryService(ctrl)

	tests := []struct {
		name      string
		codes     []string
		setupMock func()
		wantErr   bool
		want      map[string]int64
	}{
		{
			name:      "no codes short-circuits",
			codes:     nil,
			setupMock: func() {},
			want:      map[string]int64{},
		},
		{
			name:  "missing codes are absent from the result",
			codes: []string{"PIPE-01", "GHOST-99"},
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.InventoryItem{
						{ID: "item-1", Code: "PIPE-01", UnitCost: 1000},
					}, nil)
			},
			want: map[string]int64{"PIPE-01": 1000},
		},
		{
			name:  "repository error",
			codes: []string{"PIPE-01"},
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

			result, err := svc.UnitCostsByCode(context.Background(), tt.codes)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.want, result)
			}
		})
	}
}

func TestInventoryService_ConsumeStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newInventoryService(ctrl)

	item := model.InventoryItem{
		ID:           "item-1",
		Code:         "PIPE-01",
		UnitCost:     1000,
		CurrentStock: 5,
		ReorderPoint: 2,
	}

	expectInvalidation := func() {
		mockCache.EXPECT().
			Delete(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()

		mockCache.EXPECT().
			Clear(gomock.Any(), gomock.Any()).
			Return(nil).
			AnyTimes()
	}

	tests := []struct {
		name      string
		quantity  int
		setupMock func()
		wantErr   bool
	}{
		{
			name:     "decrements the on-hand count",
			quantity: 2,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(item, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 3, fields[model.FieldCurrentStock])

						return nil
					})

				expectInvalidation()
			},
			wantErr: false,
		},
		{
			name:     "stock never goes negative",
			quantity: 9,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(item, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, 0, fields[model.FieldCurrentStock])

						return nil
					})

				expectInvalidation()
			},
			wantErr: false,
		},
		{
			name:      "zero quantity is a no-op",
			quantity:  0,
			setupMock: func() {},
			wantErr:   false,
		},
		{
			name:     "unknown code is skipped",
			quantity: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.InventoryItem{}, nil)
			},
			wantErr: false,
		},
		{
			name:     "lookup error",
			quantity: 1,
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.InventoryItem{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.ConsumeStock(context.Background(), "PIPE-01", tt.quantity)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestInventoryService_ListLowStock(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newInventoryService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantLen   int
	}{
		{
			name: "returns items at the reorder point",
			setupMock: func() {
				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.InventoryItem{
						{ID: "item-1", Code: "PIPE-01", CurrentStock: 2, ReorderPoint: 2},
						{ID: "item-2", Code: "FUSE-10", CurrentStock: 0, ReorderPoint: 5},
					}, nil)
			},
			wantLen: 2,
		},
		{
			name: "repository error",
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

			result, err := svc.ListLowStock(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Len(t, result, tt.wantLen)
			}
		})
	}
}
