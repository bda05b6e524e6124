package dto

import (
	"time"

	"reception/internal/domains/request/model"
	"reception/shared"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type CreateRequestRequest struct {
	RoomID            string `json:"room_id"                    validate:"required,uuid"`
	Category          string `json:"category"                   validate:"required,oneof=electrical plumbing hvac furniture appliances other"`
	Description       string `json:"description"                validate:"required,max=1000"`
	Priority          string `json:"priority"                   validate:"omitempty,oneof=low normal high emergency"`
	RoomAvailable     *bool  `json:"room_available"             validate:"omitempty"`
	EstimatedDowntime *int   `json:"estimated_downtime_minutes" validate:"omitempty,min=0"`
	EstimatedCost     int64  `json:"estimated_cost"             validate:"omitempty,min=0"`
}

func (c *CreateRequestRequest) ToModel(reporter string) model.MaintenanceRequest {
	priority := model.PriorityNormal
	if c.Priority != "" {
		priority = model.Priority(c.Priority)
	}

	roomAvailable := true
	if c.RoomAvailable != nil {
		roomAvailable = *c.RoomAvailable
	}

	return model.MaintenanceRequest{
		ID:                uuid.NewString(),
		RoomID:            c.RoomID,
		ReportedBy:        reporter,
		Category:          c.Category,
		Description:       c.Description,
		Priority:          priority,
		Status:            model.StatusOpen,
		ReportedAt:        timezone.Now(),
		RoomAvailable:     roomAvailable,
		EstimatedDowntime: c.EstimatedDowntime,
		EstimatedCost:     c.EstimatedCost,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  reporter,
			ModifiedBy: reporter,
		},
	}
}

type RequestResponse struct {
	ID                string     `json:"id"`
	RoomID            string     `json:"room_id"`
	ReportedBy        string     `json:"reported_by"`
	Category          string     `json:"category"`
	Description       string     `json:"description"`
	Priority          string     `json:"priority"`
	Status            string     `json:"status"`
	AssignedTo        *string    `json:"assigned_to,omitempty"`
	ReportedAt        time.Time  `json:"reported_at"`
	ScheduledDate     *time.Time `json:"scheduled_date,omitempty"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
	RoomAvailable     bool       `json:"room_available"`
	EstimatedDowntime *int       `json:"estimated_downtime_minutes,omitempty"`
	EstimatedCost     int64      `json:"estimated_cost"`
	ActualCost        int64      `json:"actual_cost"`
	gDto.Metadata
}

func (r *RequestResponse) FromModel(mod model.MaintenanceRequest) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.ReportedBy = mod.ReportedBy
	r.Category = mod.Category
	r.Description = mod.Description
	r.Priority = string(mod.Priority)
	r.Status = string(mod.Status)
	r.AssignedTo = mod.AssignedTo
	r.ReportedAt = mod.ReportedAt
	r.ScheduledDate = mod.ScheduledDate
	r.StartedAt = mod.StartedAt
	r.CompletedAt = mod.CompletedAt
	r.RoomAvailable = mod.RoomAvailable
	r.EstimatedDowntime = mod.EstimatedDowntime
	r.EstimatedCost = mod.EstimatedCost
	r.ActualCost = mod.ActualCost
	r.Metadata.FromModel(mod.Metadata)
}

type GetRequestsResponse struct {
	Requests  []RequestResponse `json:"requests"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetRequestsResponse) FromModels(models []model.MaintenanceRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Requests = make([]RequestResponse, len(models))
	for i, mod := range models {
		r.Requests[i].FromModel(mod)
	}
}
