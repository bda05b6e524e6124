package model

import "reception/shared/model"

const (
	TableName  = "inventory_items"
	EntityName = "inventory_item"

	FieldID           = "id"
	FieldCode         = "code"
	FieldName         = "name"
	FieldCategory     = "category"
	FieldUnitCost     = "unit_cost"
	FieldCurrentStock = "current_stock"
	FieldMinStock     = "min_stock"
	FieldMaxStock     = "max_stock"
	FieldReorderPoint = "reorder_point"
)

type InventoryItem struct {
	ID           string `db:"id"`
	Code         string `db:"code"`
	Name         string `db:"name"`
	Category     string `db:"category"`
	UnitCost     int64  `db:"unit_cost"`
	CurrentStock int    `db:"current_stock"`
	MinStock     int    `db:"min_stock"`
	MaxStock     int    `db:"max_stock"`
	ReorderPoint int    `db:"reorder_point"`
	model.Metadata
}

func (i *InventoryItem) BelowReorderPoint() bool {
	return i.CurrentStock <= i.ReorderPoint
}
