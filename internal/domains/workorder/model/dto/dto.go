package dto

import (
	"time"

	"reception/internal/domains/workorder/model"
	"reception/shared"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type AssignRequest struct {
	RequestID      string    `json:"request_id"      validate:"required,uuid"`
	TechnicianID   string    `json:"technician_id"   validate:"required,uuid"`
	ScheduledStart time.Time `json:"scheduled_start" validate:"required"`
}

func (a *AssignRequest) ToModel(requiredParts, requiredTools []string, actor string) model.WorkOrder {
	return model.WorkOrder{
		ID:             uuid.NewString(),
		RequestID:      a.RequestID,
		TechnicianID:   a.TechnicianID,
		ScheduledStart: a.ScheduledStart,
		RequiredParts:  requiredParts,
		RequiredTools:  requiredTools,
		PartsUsed:      model.PartUsageList{},
		Status:         model.StatusScheduled,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type StartWorkRequest struct {
	TechnicianID string `json:"technician_id" validate:"required,uuid"`
}

type CompleteWorkRequest struct {
	TechnicianID  string            `json:"technician_id"  validate:"required,uuid"`
	WorkPerformed string            `json:"work_performed" validate:"required,max=2000"`
	PartsUsed     []model.PartUsage `json:"parts_used"     validate:"omitempty,dive"`
	LaborHours    float64           `json:"labor_hours"    validate:"required,min=0"`
}

type VerifyWorkRequest struct {
	InspectorID string `json:"inspector_id" validate:"required,uuid"`
	Notes       string `json:"notes"        validate:"omitempty,max=2000"`
}

type WorkOrderResponse struct {
	ID                string            `json:"id"`
	RequestID         string            `json:"request_id"`
	TechnicianID      string            `json:"technician_id"`
	ScheduledStart    time.Time         `json:"scheduled_start"`
	ActualStart       *time.Time        `json:"actual_start,omitempty"`
	ActualEnd         *time.Time        `json:"actual_end,omitempty"`
	RequiredParts     []string          `json:"required_parts"`
	RequiredTools     []string          `json:"required_tools"`
	WorkPerformed     string            `json:"work_performed"`
	PartsUsed         []model.PartUsage `json:"parts_used"`
	LaborHours        float64           `json:"labor_hours"`
	VerifiedBy        *string           `json:"verified_by,omitempty"`
	VerificationNotes string            `json:"verification_notes"`
	Status            string            `json:"status"`
	gDto.Metadata
}

func (r *WorkOrderResponse) FromModel(mod model.WorkOrder) {
	r.ID = mod.ID
	r.RequestID = mod.RequestID
	r.TechnicianID = mod.TechnicianID
	r.ScheduledStart = mod.ScheduledStart
	r.ActualStart = mod.ActualStart
	r.ActualEnd = mod.ActualEnd
	r.RequiredParts = mod.RequiredParts
	r.RequiredTools = mod.RequiredTools
	r.WorkPerformed = mod.WorkPerformed
	r.PartsUsed = mod.PartsUsed
	r.LaborHours = mod.LaborHours
	r.VerifiedBy = mod.VerifiedBy
	r.VerificationNotes = mod.VerificationNotes
	r.Status = string(mod.Status)
	r.Metadata.FromModel(mod.Metadata)
}

type GetWorkOrdersResponse struct {
	WorkOrders []WorkOrderResponse `json:"work_orders"`
	TotalPage  int                 `json:"total_page"`
	TotalData  int                 `json:"total_data"`
}

func (r *GetWorkOrdersResponse) FromModels(models []model.WorkOrder, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.WorkOrders = make([]WorkOrderResponse, len(models))
	for i, mod := range models {
		r.WorkOrders[i].FromModel(mod)
	}
}
