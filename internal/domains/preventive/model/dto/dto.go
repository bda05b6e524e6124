package dto

import (
	"time"

	"reception/internal/domains/preventive/model"
	"reception/shared"
	gDto "reception/shared/dto"
	gModel "reception/shared/model"
	"reception/shared/timezone"

	"github.com/google/uuid"
)

type CreateScheduleRequest struct {
	RoomID          string   `json:"room_id"          validate:"required,uuid"`
	MaintenanceType string   `json:"maintenance_type" validate:"required,oneof=electrical plumbing hvac furniture appliances other"`
	Frequency       string   `json:"frequency"        validate:"required,oneof=daily weekly monthly quarterly yearly"`
	NextDue         string   `json:"next_due"         validate:"required,datetime=2006-01-02"`
	Checklist       []string `json:"checklist"        validate:"omitempty,dive,max=200"`
}

func (c *CreateScheduleRequest) ToModel(user string) model.PreventiveSchedule {
	nextDue, _ := timezone.Parse(time.DateOnly, c.NextDue)

	return model.PreventiveSchedule{
		ID:              uuid.NewString(),
		RoomID:          c.RoomID,
		MaintenanceType: c.MaintenanceType,
		Frequency:       model.Frequency(c.Frequency),
		NextDue:         nextDue,
		Status:          model.StatusScheduled,
		Checklist:       c.Checklist,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type ScheduleResponse struct {
	ID              string     `json:"id"`
	RoomID          string     `json:"room_id"`
	MaintenanceType string     `json:"maintenance_type"`
	Frequency       string     `json:"frequency"`
	LastPerformed   *time.Time `json:"last_performed,omitempty"`
	NextDue         time.Time  `json:"next_due"`
	Status          string     `json:"status"`
	Checklist       []string   `json:"checklist"`
	gDto.Metadata
}

func (r *ScheduleResponse) FromModel(mod model.PreventiveSchedule) {
	r.ID = mod.ID
	r.RoomID = mod.RoomID
	r.MaintenanceType = mod.MaintenanceType
	r.Frequency = string(mod.Frequency)
	r.LastPerformed = mod.LastPerformed
	r.NextDue = mod.NextDue
	r.Status = string(mod.Status)
	r.Checklist = mod.Checklist
	r.Metadata.FromModel(mod.Metadata)
}

type GetSchedulesResponse struct {
	Schedules []ScheduleResponse `json:"schedules"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetSchedulesResponse) FromModels(models []model.PreventiveSchedule, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Schedules = make([]ScheduleResponse, len(models))
	for i, mod := range models {
		r.Schedules[i].FromModel(mod)
	}
}
