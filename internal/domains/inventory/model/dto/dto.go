package dto

import (
	"reception/internal/domains/inventory/model"
	"reception/shared"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type CreateInventoryItemRequest struct {
	Code         string `json:"code"          validate:"required,max=50"`
	Name         string `json:"name"          validate:"required,max=100"`
	Category     string `json:"category"      validate:"required,max=50"`
	UnitCost     int64  `json:"unit_cost"     validate:"required,min=0"`
	CurrentStock int    `json:"current_stock" validate:"omitempty,min=0"`
	MinStock     int    `json:"min_stock"     validate:"omitempty,min=0"`
	MaxStock     int    `json:"max_stock"     validate:"omitempty,min=0"`
	ReorderPoint int    `json:"reorder_point" validate:"omitempty,min=0"`
}

func (c *CreateInventoryItemRequest) ToModel(user string) model.InventoryItem {
	return model.InventoryItem{
		ID:           uuid.NewString(),
		Code:         c.Code,
		Name:         c.Name,
		Category:     c.Category,
		UnitCost:     c.UnitCost,
		CurrentStock: c.CurrentStock,
		MinStock:     c.MinStock,
		MaxStock:     c.MaxStock,
		ReorderPoint: c.ReorderPoint,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateInventoryItemRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Category     string `db:"category"      json:"category"      validate:"omitempty,max=50"`
	UnitCost     *int64 `db:"unit_cost"     json:"unit_cost"     validate:"omitempty,min=0"`
	CurrentStock *int   `db:"current_stock" json:"current_stock" validate:"omitempty,min=0"`
	MinStock     *int   `db:"min_stock"     json:"min_stock"     validate:"omitempty,min=0"`
	MaxStock     *int   `db:"max_stock"     json:"max_stock"     validate:"omitempty,min=0"`
	ReorderPoint *int   `db:"reorder_point" json:"reorder_point" validate:"omitempty,min=0"`
}

type InventoryItemResponse struct {
	ID           string `json:"id"`
	Code         string `json:"code"`
	Name         string `json:"name"`
	Category     string `json:"category"`
	UnitCost     int64  `json:"unit_cost"`
	CurrentStock int    `json:"current_stock"`
	MinStock     int    `json:"min_stock"`
	MaxStock     int    `json:"max_stock"`
	ReorderPoint int    `json:"reorder_point"`
	LowStock     bool   `json:"low_stock"`
	gDto.Metadata
}

func (r *InventoryItemResponse) FromModel(mod model.InventoryItem) {
	r.ID = mod.ID
	r.Code = mod.Code
	r.Name = mod.Name
	r.Category = mod.Category
	r.UnitCost = mod.UnitCost
	r.CurrentStock = mod.CurrentStock
	r.MinStock = mod.MinStock
	r.MaxStock = mod.MaxStock
	r.ReorderPoint = mod.ReorderPoint
	r.LowStock = mod.BelowReorderPoint()
	r.Metadata.FromModel(mod.Metadata)
}

type GetInventoryItemsResponse struct {
	Items     []InventoryItemResponse `json:"items"`
	TotalPage int                     `json:"total_page"`
	TotalData int                     `json:"total_data"`
}

func (r *GetInventoryItemsResponse) FromModels(models []model.InventoryItem, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Items = make([]InventoryItemResponse, len(models))
	for i, mod := range models {
		r.Items[i].FromModel(mod)
	}
}
